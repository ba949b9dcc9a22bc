package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 50x50 grid of
// 40px cells with the bottom 12 rows trimmed, giving a 2000x1520 field.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			CellSize:  40,
			Cols:      50,
			Rows:      50,
			RowMargin: 12,
		},
		Start: CellConfig{Col: 4, Row: 5},
		// Right edge, half height: the head re-enters at column 0 on the first tick.
		Restart: CellConfig{Col: 50, Row: 19},
		ResetButton: RectConfig{
			X: 700,
			Y: 1000,
			W: 600,
			H: 200,
		},
		Tick: TickConfig{IntervalMS: 16},
		Window: WindowConfig{
			Title: "Wrap Snake",
			Scale: 0.5,
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
