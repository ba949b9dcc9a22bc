// Package config provides YAML-based configuration loading for the game and
// its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Field       FieldConfig  `yaml:"field"`
	Start       CellConfig   `yaml:"start"`
	Restart     CellConfig   `yaml:"restart"`
	ResetButton RectConfig   `yaml:"reset_button"`
	Tick        TickConfig   `yaml:"tick"`
	Window      WindowConfig `yaml:"window"`
	SSH         SSHConfig    `yaml:"ssh"`
}

// FieldConfig defines the grid. The playable height is Rows-RowMargin rows.
type FieldConfig struct {
	CellSize  int `yaml:"cell_size"`  // Pixels per cell
	Cols      int `yaml:"cols"`       // Grid columns
	Rows      int `yaml:"rows"`       // Grid rows before the margin is removed
	RowMargin int `yaml:"row_margin"` // Rows trimmed from the bottom of the grid
}

// CellConfig addresses a grid cell by column and row.
type CellConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// RectConfig is a rectangle in field pixels.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// TickConfig defines the fixed simulation rate.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window size relative to the field size
}

// SSHConfig defines the SSH server used by "wrapsnake serve".
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// PlayRows returns the number of playable rows.
func (f FieldConfig) PlayRows() int {
	return f.Rows - f.RowMargin
}

// Width returns the field width in pixels.
func (f FieldConfig) Width() int {
	return f.Cols * f.CellSize
}

// Height returns the playable field height in pixels.
func (f FieldConfig) Height() int {
	return f.PlayRows() * f.CellSize
}

// Interval returns the tick interval as a duration.
func (t TickConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// Rect converts the config to a core.Rect.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Validate checks that the configuration describes a playable field.
func (c SnakeConfig) Validate() error {
	f := c.Field
	var errs []error
	if f.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("field.cell_size must be positive, got %d", f.CellSize))
	}
	if f.Cols <= 0 || f.Rows <= 0 {
		errs = append(errs, fmt.Errorf("field.cols and field.rows must be positive, got %dx%d", f.Cols, f.Rows))
	}
	if f.RowMargin < 0 || f.RowMargin >= f.Rows {
		errs = append(errs, fmt.Errorf("field.row_margin must be in [0, rows), got %d", f.RowMargin))
	}
	if f.Cols*f.PlayRows() < 2 {
		errs = append(errs, errors.New("field must have room for the head and an apple"))
	}
	if c.ResetButton.W <= 0 || c.ResetButton.H <= 0 {
		errs = append(errs, fmt.Errorf("reset_button must have a positive size, got %dx%d", c.ResetButton.W, c.ResetButton.H))
	} else if f.CellSize > 0 {
		field := core.NewRect(0, 0, f.Width(), f.Height())
		if !field.Intersects(c.ResetButton.Rect()) {
			errs = append(errs, errors.New("reset_button lies outside the field"))
		}
	}
	if c.Tick.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("tick.interval_ms must be positive, got %d", c.Tick.IntervalMS))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
