package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-highway/internal/core"
	"github.com/vovakirdan/neon-highway/internal/platform/tui"
	"github.com/vovakirdan/neon-highway/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: racer).

Modes:
  racer            - Endless: survive as long as you can
  racer_timetrial  - Score as much as possible in two minutes
  racer_zen        - No traffic, no crashes

Controls:
  A/D, Left/Right  - Steer
  W/S, Up/Down     - Move forward/back
  Space            - Nitro boost
  P/Esc            - Pause
  Enter            - Start run
  R                - Restart (after game over)
  B                - Back to title / quit to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower road, more power-ups, faster nitro recharge
  normal - Default tuning with level progression
  hard   - Faster road, extra traffic, starts at level 3
  fixed  - No progression, stays at config's initial level

Examples:
  neonhighway play
  neonhighway play racer_zen --weather fog
  neonhighway play racer --difficulty hard
  neonhighway play racer --config ./my-racer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := "racer"
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'neonhighway modes' to see available modes.")
		os.Exit(1)
	}

	// Open the store before creating the game so it picks it up.
	store := openStore()

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
