package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions with decrypted amounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openServices(dir)
			if err != nil {
				return err
			}
			defer svcs.close()

			txns, err := svcs.ledger.ReadAll(svcs.userID)
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tAMOUNT\tTYPE\tCARD\tNOTE")
			for _, tx := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					tx.Date.Format("2006-01-02"), tx.Amount, tx.Type, tx.Card, tx.Note)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}
