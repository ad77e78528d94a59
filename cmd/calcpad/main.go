package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calcpad/internal/server"
	"github.com/averycrespi/calcpad/pkg/project"
	"github.com/averycrespi/calcpad/pkg/types"
)

func main() {
	var (
		logLevel       = flag.String("log-level", types.DefaultLogLevel, "Log level (debug, info, warn, error)")
		maxCalculators = flag.Int("max-calculators", types.DefaultMaxCalculators, "Maximum number of named calculators")
		showVersion    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", project.Name, project.Version)
		return
	}

	config := types.Config{
		LogLevel:       *logLevel,
		MaxCalculators: *maxCalculators,
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Stdout carries MCP traffic, so logs go to stderr
	level, _ := types.ParseLogLevel(config.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calcServer := server.NewCalcServer(config, logger)
	if err := calcServer.Start(ctx); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
