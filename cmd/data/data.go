// Package data handles backup, restore, demo seeding and reset.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
)

var (
	output string
	input  string
	force  bool
)

// Cmd represents the data command.
var Cmd = &cobra.Command{
	Use:   "data",
	Short: "Backup, restore and reset the stored data",
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write all data to a JSON snapshot",
	RunE:  backupFunc,
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all data with a JSON snapshot",
	RunE:  restoreFunc,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replace all data with a demo dataset",
	RunE:  demoFunc,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data",
	RunE:  resetFunc,
}

func init() {
	backupCmd.Flags().StringVarP(&output, "output", "o", "smartfinance-backup.json", "Snapshot file to write")
	restoreCmd.Flags().StringVarP(&input, "input", "i", "", "Snapshot file to read")
	_ = restoreCmd.MarkFlagRequired("input")
	resetCmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation requirement")
	demoCmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation requirement")

	Cmd.AddCommand(backupCmd)
	Cmd.AddCommand(restoreCmd)
	Cmd.AddCommand(demoCmd)
	Cmd.AddCommand(resetCmd)
}

func backupFunc(cmd *cobra.Command, args []string) error {
	snapshot, err := root.App.Store().Export()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	cmd.Printf("Backup written to %s\n", output)
	return nil
}

func restoreFunc(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	if err := root.App.Store().Restore(data); err != nil {
		return err
	}
	cmd.Println("Data restored")
	return nil
}

func demoFunc(cmd *cobra.Command, args []string) error {
	if !force {
		return fmt.Errorf("demo replaces all existing data, re-run with --force")
	}
	if err := root.App.Store().FillDemoData(time.Now()); err != nil {
		return err
	}
	cmd.Println("Demo data loaded")
	return nil
}

func resetFunc(cmd *cobra.Command, args []string) error {
	if !force {
		return fmt.Errorf("reset deletes all data, re-run with --force")
	}
	if err := root.App.Store().ClearAll(); err != nil {
		return err
	}
	cmd.Println("All data deleted")
	return nil
}
