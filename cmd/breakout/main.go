// cmd/breakout/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-breakout/pkg/config"
	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/render"
	engorender "github.com/opd-ai/go-breakout/pkg/render/engo"
)

type options struct {
	configPath    string
	createDefault bool
	renderer      string
	seed          uint64
	frames        int
	width         int
	height        int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.yaml", "Path to configuration file (.json, .yaml or .yml)")
	flag.BoolVar(&opts.createDefault, "default", false, "Write the default configuration to -config and exit")
	flag.StringVar(&opts.renderer, "renderer", "terminal", "Renderer type: 'terminal', 'engo' or 'null'")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed (overrides config when non-zero)")
	flag.IntVar(&opts.frames, "frames", 600, "Frames to simulate with the null renderer")
	flag.IntVar(&opts.width, "width", 800, "Window width (Engo only)")
	flag.IntVar(&opts.height, "height", 600, "Window height (Engo only)")
	flag.Parse()

	logger := logging.NewLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithCorrelationID(ctx, "")

	err := run(ctx, opts, logger)
	stop()
	if err != nil {
		logger.Error(ctx, "breakout failed", err, "renderer", opts.renderer)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *logging.Logger) error {
	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			return logging.WrapError(err, "failed to create default configuration at %s", opts.configPath)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", opts.configPath)
		return nil
	}

	cfg, err := loadConfig(ctx, opts, logger)
	if err != nil {
		return err
	}

	game := engine.NewGame(cfg, engine.WithLogger(logger), engine.WithContext(ctx))
	logger.Info(ctx, "Starting game",
		"renderer", opts.renderer,
		"seed", cfg.Rules.Seed,
		"session_id", game.SessionID,
	)

	switch opts.renderer {
	case "null":
		digest := render.RunHeadless(ctx, game, render.NewNullRenderer(ctx, logger), opts.frames)
		logger.Info(ctx, "Headless run finished",
			"frames", game.Frame,
			"score", game.Score,
			"level", game.Level,
			"digest", digest,
		)
		return nil
	case "engo":
		engorender.Run(ctx, game, logger, opts.width, opts.height)
		return nil
	case "terminal":
		return runTerminal(ctx, game, logger)
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}

func loadConfig(ctx context.Context, opts options, logger *logging.Logger) (*config.GameConfig, error) {
	var cfg *config.GameConfig

	if _, err := os.Stat(opts.configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", opts.configPath,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, logging.WrapError(err, "failed to load configuration from %s", opts.configPath)
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}

	if opts.seed != 0 {
		cfg.Rules.Seed = opts.seed
	}
	return cfg, nil
}

func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialise terminal screen")
	}
	defer screen.Fini()

	screen.HideCursor()
	return render.NewTerminalHost(screen, game, logger).Run(ctx)
}
