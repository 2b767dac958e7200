package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/financeflow-dev/financeflow/internal/billing"
	"github.com/financeflow-dev/financeflow/internal/model"
)

func newPeriodCommand() *cobra.Command {
	var dir string
	var cardName string

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Show a credit card's last closed billing period and balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openServices(dir)
			if err != nil {
				return err
			}
			defer svcs.close()

			cardCfg, ok := svcs.cfg.FindCard(cardName)
			if !ok {
				return fmt.Errorf("unknown card %q", cardName)
			}
			card := cardCfg.Card()
			if !card.IsCredit() {
				return fmt.Errorf("%q is not a credit card", card.Name)
			}
			if card.CutoffDay < 1 || card.CutoffDay > 31 {
				return fmt.Errorf("card %q has no valid cutoff day", card.Name)
			}

			period := billing.CurrentClosedPeriod(card.CutoffDay, time.Now())

			txns, err := svcs.ledger.ReadAll(svcs.userID)
			if err != nil {
				return err
			}

			var expenses, payments []decimal.Decimal
			for _, tx := range txns {
				if tx.Card != card.Name || !period.Contains(tx.Date) {
					continue
				}
				if tx.Type == model.TypeIncome {
					payments = append(payments, tx.Amount)
				} else {
					expenses = append(expenses, tx.Amount)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Card:    %s (cutoff day %d)\n", card.Name, card.CutoffDay)
			fmt.Fprintf(out, "Period:  %s\n", period)
			fmt.Fprintf(out, "Balance: %s %s\n", billing.Balance(expenses, payments).StringFixed(2), svcs.cfg.Currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&cardName, "card", "", "card name (required)")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}
