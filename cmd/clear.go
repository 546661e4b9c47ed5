// -- cmd/clear.go --
package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freshsips/bobagen/internal/observability"
	"github.com/freshsips/bobagen/internal/store"
)

// newClearCmd creates the `clear` subcommand, which empties the order history
// after an interactive confirmation. The default answer is No.
func newClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := observability.GetLogger()

			assumeYes, _ := cmd.Flags().GetBool("yes")
			if !assumeYes {
				fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to clear order history? [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				response, err := reader.ReadString('\n')
				if err != nil && response == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				response = strings.TrimSpace(response)
				if !strings.EqualFold(response, "y") && !strings.EqualFold(response, "yes") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			st, err := store.New(cfg.Storage.Path, logger)
			if err != nil {
				return err
			}
			if err := st.Clear(); err != nil {
				return fmt.Errorf("failed to clear order history: %w", err)
			}
			logger.Info("cleared order history", zap.String("path", st.Path()))
			fmt.Fprintln(cmd.OutOrStdout(), "Order history cleared.")
			return nil
		},
	}
	clearCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	return clearCmd
}
