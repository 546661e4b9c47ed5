// -- cmd/generate.go --
package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freshsips/bobagen/internal/generator"
	"github.com/freshsips/bobagen/internal/observability"
	"github.com/freshsips/bobagen/internal/store"
)

// newGenerateCmd creates the explicit `generate` subcommand. The root command
// shares its RunE, so `bobagen` and `bobagen generate` behave identically.
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a new order and add it to the history",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := observability.GetLogger()
	// Each generation gets a run ID so log lines from one invocation can be
	// correlated in the rotated log file.
	log := logger.With(zap.String("run_id", uuid.NewString()))

	seed, _ := cmd.Flags().GetInt64("seed")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	st, err := store.New(cfg.Storage.Path, logger)
	if err != nil {
		return err
	}

	history, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load order history: %w", err)
	}

	gen := generator.New(generator.Config{
		ResetDays:   cfg.Novelty.ResetDays,
		MinToppings: cfg.Order.MinToppings,
		MaxToppings: cfg.Order.MaxToppings,
		Seed:        seed,
	}, log)

	today := time.Now()
	ord := gen.Generate(history, today)
	log.Info("generated order",
		zap.Int("previous_orders", len(history)),
		zap.Strings("toppings", ord.Toppings),
		zap.String("tea_type", ord.TeaType),
		zap.Int("sugar_percentage", ord.SugarPercentage),
		zap.String("ice_category", ord.IceCategory),
		zap.Bool("dry_run", dryRun))

	fmt.Fprintln(cmd.OutOrStdout(), "Today's order:")
	fmt.Fprintln(cmd.OutOrStdout(), ord.String())

	if dryRun {
		return nil
	}
	if err := st.Append(ord.Record(today)); err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}
	return nil
}
