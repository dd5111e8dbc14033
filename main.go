package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/cli"
	"github.com/mrlokans/wordbook/internal/config"
	"github.com/mrlokans/wordbook/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// wordCommand is implemented by every subcommand that operates on the
// vocabulary.
type wordCommand interface {
	ParseFlags(args []string) error
	Run(ctx context.Context, service cli.WordService) error
}

func main() {
	cfg := config.NewConfig()

	logger, err := entrypoint.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		if err := entrypoint.Run(cfg, logger, Version); err != nil {
			logger.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	var cmd wordCommand
	switch command {
	case "lookup":
		cmd = cli.NewLookupCommand()
	case "add":
		cmd = cli.NewAddCommand()
	case "list":
		cmd = cli.NewListCommand()
	case "delete":
		cmd = cli.NewDeleteCommand()

	case "version":
		fmt.Printf("wordbook %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := runWordCommand(cfg, logger, cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWordCommand(cfg *config.Config, logger *zap.Logger, cmd wordCommand, args []string) error {
	if err := cmd.ParseFlags(args); err != nil {
		return err
	}

	app, err := entrypoint.NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cmd.Run(ctx, app.Service)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  lookup    Look a word up in the dictionary and store it\n")
	fmt.Fprintf(os.Stderr, "  add       Store a word with your own definition\n")
	fmt.Fprintf(os.Stderr, "  list      List stored words\n")
	fmt.Fprintf(os.Stderr, "  delete    Delete a stored word by id\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
