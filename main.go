package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/soocke/square-crop-go/app"
	"github.com/soocke/square-crop-go/config"
	"github.com/soocke/square-crop-go/debug"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := NewLogger(slog.LevelInfo)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		logger = NewLogger(slog.LevelDebug)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		debug.StartHeapLogger(ctx, 5*time.Second, logger)
	}

	// One image at most; extra arguments are ignored like a multi-file drop.
	var initial string
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		initial = args[0]
	default:
		logger.Warn("expected a single image path, ignoring arguments", "count", len(args))
	}

	application := app.NewApp(cfg, *cfgPath, logger, initial)
	application.Start()
}
