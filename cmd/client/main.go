package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/resumeportal/internal/buildinfo"
	"github.com/dmitrijs2005/resumeportal/internal/client/cli"
	"github.com/dmitrijs2005/resumeportal/internal/client/config"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
