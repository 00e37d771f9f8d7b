package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/halcyard/calmdeck/card"
	"github.com/halcyard/calmdeck/config"
	"github.com/halcyard/calmdeck/content"
	"github.com/halcyard/calmdeck/haptic"
	"github.com/halcyard/calmdeck/service"
)

var (
	configFlag   = flag.String("config", "", "Path to config file (default: ./calmdeck.toml)")
	deckFlag     = flag.String("deck", "", "Path to a TOML deck file (default: builtin deck)")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256")
	autoFlipFlag = flag.Bool("autoflip", false, "Flip each card once after the configured delay")
	muteFlag     = flag.Bool("mute", false, "Disable audio click feedback")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger()

	deck, err := loadDeck(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: %v\n", err)
		os.Exit(1)
	}

	// tcell reads this before attaching; degrading to 256 colors must
	// happen ahead of screen init
	if cfg.UI.ColorMode == "256" {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	// Haptic backend behind the service hub: a missing audio device means
	// silent mode, never a startup failure
	hapticSvc := haptic.NewService()
	hub := service.NewHub()
	if err := hub.Register(hapticSvc); err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: %v\n", err)
		os.Exit(1)
	}
	if err := hub.InitAll(cfg.Audio.Muted); err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "calmdeck: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Panic recovery: restore the terminal to a sane state before the
	// stack trace hits stderr, or the trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ncalmdeck crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	app := newApp(screen, deck, cfg, hapticSvc, logger)
	app.run()
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	// Flags override file and environment
	if *deckFlag != "" {
		cfg.Deck.Path = *deckFlag
	}
	if *colorFlag != "" {
		cfg.UI.ColorMode = *colorFlag
	}
	if *autoFlipFlag {
		cfg.Flip.AutoFlip = true
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}
	return cfg, nil
}

// setupLogger writes diagnostics to a file; stdout belongs to the terminal UI
func setupLogger() *slog.Logger {
	dir, err := os.UserCacheDir()
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}

	path := filepath.Join(dir, "calmdeck")
	if err := os.MkdirAll(path, 0o755); err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}

	f, err := os.OpenFile(filepath.Join(path, "calmdeck.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}

	return slog.New(slog.NewTextHandler(f, nil))
}

func loadDeck(cfg *config.Config, logger *slog.Logger) (*card.Deck, error) {
	if cfg.Deck.Path != "" {
		d, err := content.LoadDeck(cfg.Deck.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded deck", "path", cfg.Deck.Path, "cards", d.Len())
		return d, nil
	}

	d := content.BuiltinDeck()
	logger.Info("using builtin deck", "cards", d.Len())
	return d, nil
}
