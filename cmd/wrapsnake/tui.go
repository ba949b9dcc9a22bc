package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wrapsnake/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the current terminal",
	Long: `Play Wrap Snake in the current terminal.

Each grid cell is two characters wide, so the default 50x38 field needs a
terminal of at least 102x41. Use configs/snake-terminal.yaml for an 80x24
terminal.

Controls:
  Arrows/WASD  - Steer
  Mouse        - Hold the left button on Reset after game over
  Q/Ctrl+C     - Quit`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	if err := tui.Run(loaded.Config, runtimeConfig(width, height), logger); err != nil {
		logger.Fatal("terminal game failed", "error", err)
	}
}
