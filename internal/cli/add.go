package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type AddCommand struct {
	Word       string
	Definition string
	Out        io.Writer
}

func NewAddCommand() *AddCommand {
	return &AddCommand{Out: os.Stdout}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	fs.StringVar(&cmd.Word, "word", "", "Word to add (required)")
	fs.StringVar(&cmd.Definition, "definition", "", "Definition text (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -word <word> -definition <text>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a word with your own definition, without a dictionary lookup.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add -word hello -definition \"a greeting\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Word) == "" {
		fs.Usage()
		return fmt.Errorf("word is required")
	}
	if strings.TrimSpace(cmd.Definition) == "" {
		fs.Usage()
		return fmt.Errorf("definition is required")
	}

	return nil
}

func (cmd *AddCommand) Run(ctx context.Context, service WordService) error {
	stored, err := service.ManualAdd(ctx, cmd.Word, cmd.Definition)
	if err != nil {
		return err
	}

	okColor.Fprintf(cmd.Out, "Added %q (id %d)\n", stored.Word, stored.ID)
	return nil
}
