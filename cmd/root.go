// -- cmd/root.go --
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/freshsips/bobagen/internal/config"
	"github.com/freshsips/bobagen/internal/observability"
)

var (
	cfgFile string
	// cfg is the resolved configuration, populated by PersistentPreRunE
	// before any command body runs.
	cfg *config.Config
)

// rootCmd represents the base command. Invoked without a subcommand it
// generates a new order, matching the tool's original no-args behavior.
var rootCmd = &cobra.Command{
	Use:   "bobagen",
	Short: "bobagen generates maximally novel bubble tea orders.",
	Long: `bobagen generates bubble tea orders with the intent to keep them as
"novel" as possible against your recent order history. Having ordered an
ingredient D days ago penalizes re-picking it by

    max(1 - sqrt(N*D)/N, 0)

for novelty renewal period N, so yesterday's toppings are strongly avoided
and anything older than N days is fair game again. History lives in a small
JSON file and is appended to after every generated order.`,
	Version: Version,
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// This runs before any command, setting up config and logging.
		if err := initializeConfig(); err != nil {
			return err
		}

		var c config.Config
		if err := viper.Unmarshal(&c); err != nil {
			// Fall back to a default logger so the error is at least visible.
			observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "bobagen"})
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
		if err := c.Validate(); err != nil {
			observability.InitializeLogger(c.Logger)
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = &c

		observability.InitializeLogger(cfg.Logger)
		observability.GetLogger().Debug("starting bobagen", zap.String("version", Version))
		return nil
	},
	RunE: runGenerate,
}

// Execute runs the root command with a signal-aware context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("command execution failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	// Generation flags live on the root so that both the bare invocation and
	// the explicit generate subcommand accept them.
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed for reproducible orders (0 seeds from the clock)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "print the generated order without recording it")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newGenerateCmd(), newHistoryCmd(), newClearCmd())
}

// initializeConfig reads in the config file and environment variables if set.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("BOBAGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and env vars.
	}
	return nil
}
