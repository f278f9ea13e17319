// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"fjacquet/smartfinance/internal/config"
	"fjacquet/smartfinance/internal/container"
	"fjacquet/smartfinance/internal/logging"
)

// App holds the wired dependencies, available to every subcommand after the
// root's PersistentPreRunE has run.
var App *container.Container

// Log is the shared logger instance for commands. Replaced with the
// configured logger once the container is built.
var Log = logging.GetLogger()

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "smartfinance",
	Short: "A personal finance tracker with AI-assisted transaction entry.",
	Long: `smartfinance tracks income, expenses, budgets, savings goals and
personal loans. Transactions are entered in plain language and parsed into
structured records; recurring transactions and the monthly salary are
materialized automatically.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Log.Info("Welcome to smartfinance!")
		Log.Info("Use --help to see available commands")
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		App, err = container.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		Log = App.Logger()

		// Each invocation is one "load" of the app: materialize whatever
		// recurring transactions and salary came due since the last run.
		generated, err := App.Reconciler().Run(cmd.Context(), timeNow())
		if err != nil {
			Log.WithError(err).Warn("reconciliation pass failed")
			return nil
		}
		if generated > 0 {
			Log.Info("recurring transactions materialized",
				logging.Field{Key: logging.FieldCount, Value: generated})
		}
		return nil
	},
}
