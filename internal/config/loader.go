package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Loaded is the result of LoadSnake.
type Loaded struct {
	Config SnakeConfig
	Source string  // File path, SourceEmbedded or SourceBuiltin
	Skip   []error // Candidate files that existed but could not be used
}

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.wrapsnake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the built-in defaults, so partial files are allowed.
// An explicit customPath that cannot be read, parsed or validated is an error;
// broken files further down the search order are skipped and reported in Loaded.Skip.
func LoadSnake(customPath string) (Loaded, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	var res Loaded
	candidates := []string{HomePath("config.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			res.Skip = append(res.Skip, err)
			continue
		}
		res.Config = cfg
		res.Source = path
		return res, nil
	}

	cfg, err := decode(defaultSnakeYAML)
	if err != nil {
		// Fallback to hardcoded if embed fails
		res.Skip = append(res.Skip, fmt.Errorf("config: embedded default: %w", err))
		res.Config = DefaultSnakeConfig()
		res.Source = SourceBuiltin
		return res, nil
	}
	res.Config = cfg
	res.Source = SourceEmbedded
	return res, nil
}

// loadFile reads, decodes and validates a config file.
func loadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals data over the built-in defaults and validates the result.
func decode(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// HomePath returns the path to a file under ~/.wrapsnake, or empty if home is unavailable.
func HomePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wrapsnake", filename)
}
