// Package report prints the monthly report with spending insights.
package report

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/analytics"
)

var month string

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show the monthly report, top categories and budget status",
	RunE:  reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month to report on (YYYY-MM, default current)")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, m := now.Year(), now.Month()
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM", month)
		}
		year, m = parsed.Year(), parsed.Month()
	}

	txs, err := root.App.Store().Transactions()
	if err != nil {
		return err
	}

	monthly := analytics.ComputeMonthlyReport(txs, year, m)
	cmd.Printf("Report for %s %d\n", m, year)
	cmd.Printf("  Income:  %s\n", monthly.Totals.Income.StringFixed(2))
	cmd.Printf("  Expense: %s\n", monthly.Totals.Expense.StringFixed(2))
	cmd.Printf("  Net:     %s\n", monthly.Totals.Balance.StringFixed(2))
	if monthly.Unnecessary.IsPositive() {
		cmd.Printf("  Unnecessary spending: %s\n", monthly.Unnecessary.StringFixed(2))
	}
	if monthly.Harmful.IsPositive() {
		cmd.Printf("  Harmful spending:     %s\n", monthly.Harmful.StringFixed(2))
	}

	if top := analytics.TopCategories(txs, now, 30, 3); len(top) > 0 {
		cmd.Println("\nTop categories (last 30 days):")
		for _, entry := range top {
			cmd.Printf("  %-16s %s\n", entry.Category, entry.Amount.StringFixed(2))
		}
	}

	if slices := analytics.SpendingBreakdown(txs, now); len(slices) > 0 {
		cmd.Println("\nThis month's spending:")
		hundred := 100.0
		for _, slice := range slices {
			share, _ := slice.Share.Float64()
			cmd.Printf("  %-16s %s (%.0f%%)\n", slice.Category, slice.Amount.StringFixed(2), share*hundred)
		}
	}

	budgets, err := root.App.Store().Budgets()
	if err != nil {
		return err
	}
	if statuses := analytics.ComputeBudgetStatus(txs, budgets, now); len(statuses) > 0 {
		cmd.Println("\nBudgets:")
		for _, status := range statuses {
			marker := ""
			switch {
			case status.IsOver:
				marker = "  OVER"
			case status.IsWarning:
				marker = "  warning"
			}
			cmd.Printf("  %-16s %s / %s%s\n",
				status.Category, status.Spent.StringFixed(2), status.Limit.StringFixed(2), marker)
		}
	}
	return nil
}
