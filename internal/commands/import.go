package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/financeflow-dev/financeflow/internal/billing"
	"github.com/financeflow-dev/financeflow/internal/clipparse"
	"github.com/financeflow-dev/financeflow/internal/model"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Parse bank text and record it, skipping duplicates",
	}
	cmd.AddCommand(newImportEmailCommand())
	cmd.AddCommand(newImportClipCommand())
	return cmd
}

func newImportEmailCommand() *cobra.Command {
	var dir string
	var bank string
	var timestampMs string
	var messageID string
	var card string

	cmd := &cobra.Command{
		Use:   "email [snippet]",
		Short: "Import a bank notification email snippet",
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
			return importParsed(cmd, dir, card, parsed)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&bank, "bank", "nubank", "bank the snippet came from")
	cmd.Flags().StringVar(&timestampMs, "timestamp", "", "message timestamp as millisecond epoch")
	cmd.Flags().StringVar(&messageID, "message-id", "", "source message id")
	cmd.Flags().StringVar(&card, "card", "", "card name")

	return cmd
}

func newImportClipCommand() *cobra.Command {
	var dir string
	var card string

	cmd := &cobra.Command{
		Use:   "clip [text]",
		Short: "Import clipboard or SMS text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			return importParsed(cmd, dir, card, clipparse.Parse(text))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&card, "card", "", "card name")

	return cmd
}

// importParsed records a parsed expense unless an existing transaction
// with the same amount and calendar day is already in the ledger.
func importParsed(cmd *cobra.Command, dir, card string, parsed *model.ParsedExpense) error {
	if parsed == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "format not recognized")
		return nil
	}

	svcs, err := openServices(dir)
	if err != nil {
		return err
	}
	defer svcs.close()

	existing, err := svcs.ledger.ReadAll(svcs.userID)
	if err != nil {
		return err
	}

	if conflict := billing.FindConflict(*parsed, existing); conflict != nil {
		fmt.Fprintf(cmd.OutOrStdout(),
			"Skipped: conflicts with existing transaction %s (%s on %s)\n",
			conflict.ID, conflict.Note, conflict.Date.Format("2006-01-02"))
		return nil
	}

	tx, err := svcs.ledger.Append(svcs.userID, *parsed, card)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s, %s)\n", tx.ID, tx.Note, tx.Type)
	return nil
}
