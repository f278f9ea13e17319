// Package reconcile triggers an explicit reconciliation pass.
package reconcile

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
)

// Cmd represents the reconcile command. A pass already runs on every
// invocation; this command exists to run one on demand and show the result.
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Materialize due recurring transactions now",
	RunE:  reconcileFunc,
}

func reconcileFunc(cmd *cobra.Command, args []string) error {
	generated, err := root.App.Reconciler().Run(cmd.Context(), time.Now())
	if err != nil {
		return err
	}
	if generated == 0 {
		cmd.Println("Nothing due")
		return nil
	}
	cmd.Printf("Generated %d transactions\n", generated)
	return nil
}
