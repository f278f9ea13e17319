// Package budget manages monthly category budgets.
package budget

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/analytics"
	"fjacquet/smartfinance/internal/config"
)

var (
	category string
	limit    string
)

// Cmd represents the budget command.
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage monthly category budgets",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a category's monthly limit (0 removes it)",
	RunE:  setFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show budgets with this month's progress",
	RunE:  listFunc,
}

func init() {
	setCmd.Flags().StringVarP(&category, "category", "c", "", "Budget category")
	setCmd.Flags().StringVarP(&limit, "limit", "l", "", "Monthly limit")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("limit")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(listCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	amount, err := config.ParseDecimalFlag("limit", limit)
	if err != nil {
		return err
	}
	if err := root.App.Store().SetBudget(category, amount); err != nil {
		return err
	}
	if amount.IsPositive() {
		cmd.Printf("Budget for %s set to %s\n", category, amount.StringFixed(2))
	} else {
		cmd.Printf("Budget for %s removed\n", category)
	}
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	budgets, err := root.App.Store().Budgets()
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		cmd.Println("No budgets set")
		return nil
	}

	txs, err := root.App.Store().Transactions()
	if err != nil {
		return err
	}
	for _, status := range analytics.ComputeBudgetStatus(txs, budgets, time.Now()) {
		marker := ""
		switch {
		case status.IsOver:
			marker = "  OVER"
		case status.IsWarning:
			marker = "  warning"
		}
		cmd.Printf("%-16s %s / %s (%s%%)%s\n",
			status.Category, status.Spent.StringFixed(2), status.Limit.StringFixed(2),
			status.Percentage.StringFixed(0), marker)
	}
	return nil
}
