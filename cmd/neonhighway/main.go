// neonhighway is a neon arcade racer for the terminal.
//
// Usage:
//
//	neonhighway modes            - List game modes
//	neonhighway play [mode]      - Play a mode (default: racer)
//	neonhighway menu             - Start with the mode picker menu
//	neonhighway serve            - Start SSH server for remote play
//	neonhighway scores [mode]    - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set display frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.neonhighway/scores.db)
//	--config <path>       - Custom racer config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--weather <kind>      - clear, rain, fog
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/games/racer"
	"github.com/vovakirdan/neon-highway/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWeather    string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured in the root command's pre-run hook.
var logger = log.New(io.Discard)

// logFile is the --log-file handle, closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonhighway",
	Short: "Neon Highway - a synthwave racer in your terminal",
	Long: `Neon Highway is a top-down arcade racer: weave through traffic,
chain close calls into combos and grab power-ups on a neon highway.

Available commands:
  modes    - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  neonhighway play
  neonhighway play racer_timetrial --difficulty hard
  neonhighway menu --weather rain
  neonhighway serve --ssh :2222
  neonhighway scores racer`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { closeLogFile() },
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display frame rate (the simulation always steps at 60 Hz)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonhighway/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagWeather, "weather", "", "Weather override: clear, rain, fog")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while a game is on screen")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup validates global flags and applies them to the racer package.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("invalid --difficulty %q: want easy, normal, hard or fixed", flagDifficulty)
	}
	switch flagWeather {
	case "", "clear", "rain", "fog":
	default:
		return fmt.Errorf("invalid --weather %q: want clear, rain or fog", flagWeather)
	}
	if flagConfig != "" {
		if _, err := config.LoadRacer(flagConfig); err != nil {
			return err
		}
	}

	// The TUI owns the terminal, so interactive commands log to a file
	// or nowhere. The server logs to stderr.
	var out io.Writer = io.Discard
	switch {
	case cmd == serveCmd:
		out = os.Stderr
	case flagLogFile != "":
		path, pathErr := storage.ExpandPath(flagLogFile)
		if pathErr != nil {
			return pathErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		out = f
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonhighway",
		Level:           level,
	})

	racer.SetLogger(logger)
	racer.SetConfigPath(flagConfig)
	racer.SetDifficultyPreset(flagDifficulty)
	racer.SetWeather(flagWeather)
	return nil
}

// closeLogFile closes the --log-file handle if one is open.
func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not close log file: %v\n", err)
	}
	logFile = nil
}

// openStore opens the score database and attaches it to new games.
// A missing store is not fatal: the game runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without persistence", "db", flagDBPath, "error", err)
		return nil
	}
	racer.SetPersistence(store)
	return store
}
