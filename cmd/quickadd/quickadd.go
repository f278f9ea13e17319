// Package quickadd manages stored shortcuts that feed the parser.
package quickadd

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/models"
)

var (
	label    string
	text     string
	category string
)

// Cmd represents the quickadd command.
var Cmd = &cobra.Command{
	Use:   "quickadd",
	Short: "Manage one-tap transaction shortcuts",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored shortcuts",
	RunE:  listFunc,
}

var useCmd = &cobra.Command{
	Use:   "use [label]",
	Short: "Run a shortcut through the parser and store the result",
	Args:  cobra.ExactArgs(1),
	RunE:  useFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a shortcut",
	RunE:  addFunc,
}

func init() {
	addCmd.Flags().StringVarP(&label, "label", "l", "", "Shortcut label")
	addCmd.Flags().StringVarP(&text, "text", "t", "", "Text fed to the parser")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category override")
	_ = addCmd.MarkFlagRequired("label")
	_ = addCmd.MarkFlagRequired("text")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(useCmd)
	Cmd.AddCommand(addCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	items, err := root.App.Store().QuickAdds()
	if err != nil {
		return err
	}
	for _, item := range items {
		cmd.Printf("%-12s %s\n", item.Label, item.Text)
	}
	return nil
}

func useFunc(cmd *cobra.Command, args []string) error {
	items, err := root.App.Store().QuickAdds()
	if err != nil {
		return err
	}

	var item *models.QuickAddItem
	for i := range items {
		if items[i].Label == args[0] {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return &apperror.ValidationError{Field: "quick add", Value: args[0], Reason: "not found"}
	}

	results, err := root.App.Parser().ParseText(cmd.Context(), item.Text, root.App.Config().AI.Language)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, result := range results {
		if item.Category != "" {
			result.Category = item.Category
		}
		if item.Amount != nil {
			result.Amount = *item.Amount
		}
		tx, err := result.ToTransaction(now)
		if err != nil {
			return err
		}
		if err := root.App.Store().AddTransaction(tx); err != nil {
			return err
		}
		cmd.Printf("Added %s: %s %s (%s)\n", tx.Type, tx.Amount.StringFixed(2), tx.Description, tx.Category)
	}
	return nil
}

func addFunc(cmd *cobra.Command, args []string) error {
	item := models.QuickAddItem{
		ID:       uuid.NewString(),
		Label:    label,
		Text:     text,
		Category: category,
	}
	if err := root.App.Store().AddQuickAdd(item); err != nil {
		return err
	}
	cmd.Printf("Shortcut %q saved\n", item.Label)
	return nil
}
