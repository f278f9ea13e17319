// Package delete removes a transaction by id.
package delete

import (
	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
)

// Cmd represents the delete command.
var Cmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteFunc,
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	if err := root.App.Store().DeleteTransaction(args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
