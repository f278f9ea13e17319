// Package list prints the transaction list with filtering and totals.
package list

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/analytics"
	"fjacquet/smartfinance/internal/dateutils"
)

var (
	search        string
	typeFilter    string
	category      string
	from          string
	to            string
	includeRepaid bool
)

// Cmd represents the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions with optional filters",
	RunE:  listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&search, "search", "s", "", "Search in description, category and borrower")
	Cmd.Flags().StringVarP(&typeFilter, "type", "t", "all", "Filter by type: all, income or expense")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by exact category")
	Cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	Cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, inclusive)")
	Cmd.Flags().BoolVar(&includeRepaid, "include-repaid", false, "Include repaid loans")
}

func buildCriteria() (analytics.Criteria, error) {
	criteria := analytics.Criteria{
		Search:        search,
		Type:          analytics.TypeFilter(typeFilter),
		Category:      category,
		IncludeRepaid: includeRepaid,
	}
	if from != "" {
		start, err := dateutils.ParseDate(from)
		if err != nil {
			return analytics.Criteria{}, err
		}
		criteria.StartDate = &start
	}
	if to != "" {
		end, err := dateutils.ParseDate(to)
		if err != nil {
			return analytics.Criteria{}, err
		}
		criteria.EndDate = &end
	}
	return criteria, nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	criteria, err := buildCriteria()
	if err != nil {
		return err
	}

	txs, err := root.App.Store().Transactions()
	if err != nil {
		return err
	}
	filtered, err := analytics.Filter(txs, criteria)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tDESCRIPTION\tAMOUNT")
	for i := range filtered {
		tx := &filtered[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format("2006-01-02"), tx.Type, tx.Category, tx.Description, tx.Amount.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// Overall position is always computed over the full list; the filtered
	// sums are shown separately when a filter is active.
	totals := analytics.ComputeTotals(txs)
	cmd.Printf("\nIncome: %s  Expense: %s  Balance: %s\n",
		totals.Income.StringFixed(2), totals.Expense.StringFixed(2), totals.Balance.StringFixed(2))

	if len(filtered) != len(txs) {
		ft := analytics.ComputeTotals(filtered)
		cmd.Printf("Filtered: income %s, expense %s, net %s\n",
			ft.Income.StringFixed(2), ft.Expense.StringFixed(2), ft.Balance.StringFixed(2))
	}

	settings, err := root.App.Store().Settings()
	if err != nil {
		return err
	}
	if settings.LowBalanceThreshold.IsPositive() && totals.Balance.LessThan(settings.LowBalanceThreshold) {
		cmd.Printf("Warning: balance is below %s\n", settings.LowBalanceThreshold.StringFixed(2))
	}

	return nil
}
