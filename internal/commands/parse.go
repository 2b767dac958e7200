package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/financeflow-dev/financeflow/internal/bankparse"
	"github.com/financeflow-dev/financeflow/internal/clipparse"
	"github.com/financeflow-dev/financeflow/internal/model"
)

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse bank text into a transaction without saving it",
	}
	cmd.AddCommand(newParseEmailCommand())
	cmd.AddCommand(newParseClipCommand())
	return cmd
}

func newParseEmailCommand() *cobra.Command {
	var bank string
	var timestampMs string
	var messageID string

	cmd := &cobra.Command{
		Use:   "email [snippet]",
		Short: "Parse a bank notification email snippet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := textArg(cmd, args)
			if err != nil {
				return err
			}

			parsed, err := parseEmail(bank, snippet, timestampMs, messageID)
			if err != nil {
				return err
			}
			if parsed == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "format not recognized")
				return nil
			}
			printParsed(cmd, parsed)
			return nil
		},
	}

	cmd.Flags().StringVar(&bank, "bank", string(bankparse.Nubank), "bank the snippet came from")
	cmd.Flags().StringVar(&timestampMs, "timestamp", "", "message timestamp as millisecond epoch")
	cmd.Flags().StringVar(&messageID, "message-id", "", "source message id")

	return cmd
}

func newParseClipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip [text]",
		Short: "Parse clipboard or SMS text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}

			parsed := clipparse.Parse(text)
			if parsed == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "format not recognized")
				return nil
			}
			printParsed(cmd, parsed)
			return nil
		},
	}
	return cmd
}

func parseEmail(bank, snippet, timestampMs, messageID string) (*model.ParsedExpense, error) {
	parser, err := bankparse.DefaultRegistry().For(bankparse.Bank(strings.ToLower(bank)))
	if err != nil {
		return nil, err
	}
	return parser.Parse(snippet, timestampMs, messageID), nil
}

// textArg takes the input from the positional argument, or stdin when
// none is given (so snippets can be piped in).
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printParsed(cmd *cobra.Command, p *model.ParsedExpense) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "amount: %s\n", p.Amount)
	fmt.Fprintf(out, "note:   %s\n", p.Note)
	fmt.Fprintf(out, "date:   %s\n", p.Date.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "type:   %s\n", p.Type)
	if p.SourceID != "" {
		fmt.Fprintf(out, "source: %s\n", p.SourceID)
	}
}
