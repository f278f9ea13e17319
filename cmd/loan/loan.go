// Package loan manages money lent out and its repayments.
package loan

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/config"
	"fjacquet/smartfinance/internal/ledger"
)

var (
	loanID string
	amount string
)

// Cmd represents the loan command.
var Cmd = &cobra.Command{
	Use:   "loan",
	Short: "Track loans and repayments",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show active loans and the receivable total",
	RunE:  listFunc,
}

var repayCmd = &cobra.Command{
	Use:   "repay",
	Short: "Record a repayment against a loan",
	RunE:  repayFunc,
}

func init() {
	repayCmd.Flags().StringVar(&loanID, "id", "", "Loan transaction id")
	repayCmd.Flags().StringVarP(&amount, "amount", "a", "", "Repayment amount")
	_ = repayCmd.MarkFlagRequired("id")
	_ = repayCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(repayCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	now := time.Now()
	loans, err := root.App.Ledger().ActiveLoans()
	if err != nil {
		return err
	}
	if len(loans) == 0 {
		cmd.Println("No active loans")
		return nil
	}

	for i := range loans {
		loan := &loans[i]
		remaining := ledger.RemainingAmount(loan)
		due := ""
		if loan.LoanDetails.RepaymentDate != nil {
			due = "  due " + loan.LoanDetails.RepaymentDate.Format("2006-01-02")
			if ledger.IsOverdue(loan, now) {
				due += " (overdue)"
			}
		}
		cmd.Printf("%s  %-12s lent %s, remaining %s%s\n",
			loan.ID, loan.LoanDetails.Borrower,
			loan.Amount.StringFixed(2), remaining.StringFixed(2), due)
	}

	summary, err := root.App.Ledger().Summarize(now)
	if err != nil {
		return err
	}
	cmd.Printf("\nReceivable: %s across %d loans",
		summary.TotalReceivable.StringFixed(2), summary.ActiveCount)
	if summary.OverdueCount > 0 {
		cmd.Printf(" (%d overdue)", summary.OverdueCount)
	}
	cmd.Println()
	return nil
}

func repayFunc(cmd *cobra.Command, args []string) error {
	value, err := config.ParseDecimalFlag("amount", amount)
	if err != nil {
		return err
	}

	loan, err := root.App.Ledger().RecordRepayment(loanID, value, time.Now())
	if err != nil {
		return err
	}

	if loan.LoanDetails.IsRepaid {
		cmd.Printf("Loan from %s fully repaid\n", loan.LoanDetails.Borrower)
	} else {
		cmd.Printf("Recorded %s from %s, remaining %s\n",
			value.StringFixed(2), loan.LoanDetails.Borrower,
			ledger.RemainingAmount(&loan).StringFixed(2))
	}
	return nil
}
