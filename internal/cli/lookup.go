package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type LookupCommand struct {
	Word string
	Out  io.Writer
}

func NewLookupCommand() *LookupCommand {
	return &LookupCommand{Out: os.Stdout}
}

func (cmd *LookupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)

	fs.StringVar(&cmd.Word, "word", "", "Word to look up and store (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lookup -word <word>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Look a word up in the online dictionary and add it to the vocabulary.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s lookup -word serendipity\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s lookup serendipity\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Word == "" && fs.NArg() > 0 {
		cmd.Word = strings.Join(fs.Args(), " ")
	}
	if strings.TrimSpace(cmd.Word) == "" {
		fs.Usage()
		return fmt.Errorf("word is required")
	}

	return nil
}

func (cmd *LookupCommand) Run(ctx context.Context, service WordService) error {
	stored, err := service.AcquireWord(ctx, cmd.Word)
	if err != nil {
		return err
	}

	okColor.Fprintf(cmd.Out, "Added %q\n", stored.Word)
	printWord(cmd.Out, *stored)
	return nil
}
