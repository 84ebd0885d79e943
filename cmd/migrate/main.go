// Command migrate applies the database schema migrations. It wraps goose
// with the application's configuration and structured logging, so the same
// environment variables that configure the service configure its schema
// management.
//
// Usage:
//
//	migrate [-verbose] <command> [args]
//
// where command is one of up, up-by-one, down, reset, status, version or
// create.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/potetoapp/poteto-api/internal/config"
	"github.com/potetoapp/poteto-api/internal/platform/logger"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Server.LogLevel = "debug"
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	// One correlation id for the whole run so the logs of a single
	// migration operation can be traced together.
	log = log.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("component", "migrations"),
	)

	if err := executeMigration(cfg, log, command, args...); err != nil {
		log.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate [-verbose] <command> [args]

Commands:
  up           apply all pending migrations
  up-by-one    apply the next pending migration
  down         roll back the most recent migration
  reset        roll back all migrations
  status       print the status of all migrations
  version      print the current migration version
  create NAME  create a new migration file

The database connection is taken from POTETO_DATABASE_URL.
`)
}
