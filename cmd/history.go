// -- cmd/history.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freshsips/bobagen/internal/observability"
	"github.com/freshsips/bobagen/internal/store"
)

// newHistoryCmd creates the `history` subcommand, listing past orders with
// their dates, oldest first.
func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.New(cfg.Storage.Path, observability.GetLogger())
			if err != nil {
				return err
			}
			history, err := st.Load()
			if err != nil {
				return fmt.Errorf("failed to load order history: %w", err)
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders yet.")
				return nil
			}
			for _, rec := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", rec.Date, rec.Order())
			}
			return nil
		},
	}
}
