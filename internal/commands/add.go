package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/financeflow-dev/financeflow/internal/amount"
	"github.com/financeflow-dev/financeflow/internal/model"
)

func newAddCommand() *cobra.Command {
	var dir string
	var amountStr string
	var note string
	var card string
	var txType string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction with an encrypted amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := amount.Decode(amountStr)
			if err != nil {
				return err
			}
			if !amt.IsPositive() {
				return fmt.Errorf("amount must be positive")
			}

			date := time.Now()
			if dateStr != "" {
				date, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}

			svcs, err := openServices(dir)
			if err != nil {
				return err
			}
			defer svcs.close()

			expense := model.ParsedExpense{
				Amount: amt,
				Note:   note,
				Date:   date,
				Type:   model.TransactionType(txType),
			}
			tx, err := svcs.ledger.Append(svcs.userID, expense, card)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s (%s)\n", tx.ID, tx.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&note, "note", "", "merchant or description")
	cmd.Flags().StringVar(&card, "card", "", "card name")
	cmd.Flags().StringVar(&txType, "type", string(model.TypeExpense), "expense or income")
	cmd.Flags().StringVar(&dateStr, "date", "", "occurrence date (YYYY-MM-DD, default today)")

	return cmd
}
