package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/users-service/internal/app"
	"github.com/bagdasarian/users-service/internal/config"
	"github.com/bagdasarian/users-service/internal/logging"
)

const usage = `Usage: app [command]

Commands:
  serve        apply migrations and start the HTTP server (default)
  migrate      apply pending migrations
  recreate-db  drop and recreate the users schema
  seed-db      insert the demo users
`

var commands = map[string]func(*app.App, context.Context) error{
	"serve":       (*app.App).Run,
	"migrate":     (*app.App).Migrate,
	"recreate-db": (*app.App).RecreateDB,
	"seed-db":     (*app.App).SeedDB,
}

func main() {
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	command := "serve"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}
	run, ok := commands[command]
	if !ok {
		flag.Usage()
		log.Fatalf("unknown command %q", command)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := run(a, ctx); err != nil {
		logger.Error("command failed", "command", command, "error", err)
		a.Close()
		closer.Close()
		os.Exit(1)
	}
}
