package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"URLAnalyzer/internal/app"
	"URLAnalyzer/internal/config"
	"URLAnalyzer/internal/logging"
)

func main() {
	flags, err := ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "[FATAL]", err)
		os.Exit(2)
	}

	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[FATAL]", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, &logger)

	switch flags.Mode {
	case modeServe:
		err = application.Serve(ctx)
	default:
		err = application.RunPrompt(ctx, app.PromptOptions{InputFile: flags.InputFile})
	}

	if err != nil {
		logger.Error().Err(err).Str("mode", flags.Mode).Msg("application stopped")
		stop()
		os.Exit(1)
	}
}
