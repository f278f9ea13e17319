// Package export writes the transaction list to a CSV file.
package export

import (
	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/analytics"
)

var (
	output        string
	includeRepaid bool
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to a CSV file",
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output file")
	Cmd.Flags().BoolVar(&includeRepaid, "include-repaid", true, "Include repaid loans")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	txs, err := root.App.Store().Transactions()
	if err != nil {
		return err
	}
	filtered, err := analytics.Filter(txs, analytics.Criteria{IncludeRepaid: includeRepaid})
	if err != nil {
		return err
	}

	if err := root.App.Exporter().WriteFile(output, filtered); err != nil {
		return err
	}
	cmd.Printf("Exported %d transactions to %s\n", len(filtered), output)
	return nil
}
