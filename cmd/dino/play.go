package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/session"
	"github.com/vovakirdan/dino-runner/internal/platform/tcellhost"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagBackend string
	flagSound   bool
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Start, jump
  Down/S       - Duck
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Esc        - Quit

Backends:
  tui    - Bubble Tea renderer (default)
  tcell  - Direct tcell renderer

Examples:
  dino play
  dino play --backend tcell
  dino play --sound --player rex
  dino play --config ./fast.yaml --log dino.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Renderer: tui or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play tones on score milestones and game over")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name stored with each run")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := runGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runGame owns every resource of a terminal game and releases them before returning.
func runGame() error {
	if flagBackend != "tui" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}

	game, err := config.LoadDino(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	// Terminal hosts own stdout, so logs go to a file or nowhere
	logger, logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close() //nolint:errcheck
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close() //nolint:errcheck
	}

	var player *sound.Player
	if flagSound {
		player = sound.New()
		if sndErr := player.Init(); sndErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", sndErr)
		}
		defer player.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := play(game, cfg, store, player, logger); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

// openLogFile appends debug logs to path. An empty path disables logging and
// returns a nil file.
func openLogFile(path string) (*log.Logger, *os.File, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// play creates a session sized for the chosen backend and runs it.
func play(game config.DinoConfig, cfg core.RuntimeConfig, store *storage.Store, player *sound.Player, logger *log.Logger) error {
	opts := session.Options{
		Config:    game,
		AssetPath: flagAssets,
		Seed:      cfg.Seed,
		TickRate:  cfg.TickRate,
		Player:    flagPlayer,
		Store:     store,
		Sound:     player,
		Logger:    logger,
	}

	if flagBackend == "tcell" {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		cols, rows := tcellhost.FieldSize(screen.Size())
		s, err := session.New(cols, rows, opts)
		if err != nil {
			return err
		}
		return tcellhost.New(screen, s, cfg.TickRate).Run()
	}

	cols, rows := tui.FieldSize(cfg.ScreenW, cfg.ScreenH)
	s, err := session.New(cols, rows, opts)
	if err != nil {
		return err
	}
	return tui.Run(s, cfg)
}
