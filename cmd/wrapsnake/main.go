// wrapsnake is a snake game on a wrap-around grid.
//
// Usage:
//
//	wrapsnake                - Play in a window
//	wrapsnake tui            - Play in the current terminal
//	wrapsnake serve          - Start SSH server for remote play
//	wrapsnake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Set up by loadConfig before any command runs
	logger *log.Logger
	loaded config.Loaded
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wrapsnake",
	Short: "Wrap Snake - a snake game on a wrap-around grid",
	Long: `Wrap Snake opens a window with a snake on a grid whose edges wrap around.
Steer with the arrow keys and eat the red apples. Running into your own body
ends the game; hold the mouse button on Reset to play again.

Available commands:
  tui      - Play in the current terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  wrapsnake
  wrapsnake --seed 42
  wrapsnake tui --config ./configs/snake-terminal.yaml
  wrapsnake serve --ssh :2222`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	Run:               runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig sets up logging and loads the configuration.
func loadConfig(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wrapsnake",
		Level:           level,
	})

	loaded, err = config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	for _, skipped := range loaded.Skip {
		logger.Warn("ignoring config file", "error", skipped)
	}
	logger.Debug("config loaded", "source", loaded.Source)
	return nil
}

// runtimeConfig builds the host runtime config from flags and the loaded config.
func runtimeConfig(screenW, screenH int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if screenW > 0 && screenH > 0 {
		rc.ScreenW, rc.ScreenH = screenW, screenH
	}
	rc.TickInterval = loaded.Config.Tick.Interval()
	rc.Seed = flagSeed
	return rc
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := window.Run(loaded.Config, runtimeConfig(0, 0), logger); err != nil {
		logger.Fatal("window failed", "error", err)
	}
}
