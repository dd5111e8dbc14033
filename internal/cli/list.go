package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
)

type ListCommand struct {
	Raw bool
	Out  io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{Out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.BoolVar(&cmd.Raw, "raw", false, "Print stored rows as JSON instead of formatted definitions")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List all stored words in the order they were added.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run(ctx context.Context, service WordService) error {
	stored, err := service.ListWords(ctx)
	if err != nil {
		return err
	}

	if cmd.Raw {
		enc := json.NewEncoder(cmd.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(stored)
	}

	if len(stored) == 0 {
		fmt.Fprintln(cmd.Out, "No words stored yet.")
		return nil
	}

	for i, w := range stored {
		if i > 0 {
			fmt.Fprintln(cmd.Out)
		}
		printWord(cmd.Out, w)
	}
	dimColor.Fprintf(cmd.Out, "\n%d word(s)\n", len(stored))
	return nil
}
