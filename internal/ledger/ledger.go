// Package ledger manages loans recorded inside transactions: repayments,
// settlement state and the receivable summary.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
	"fjacquet/smartfinance/internal/store"
)

// Ledger operates on the loan transactions held in the store.
type Ledger struct {
	store *store.Store
	log   logging.Logger
}

// New creates a ledger over the given store.
func New(s *store.Store, log logging.Logger) *Ledger {
	return &Ledger{store: s, log: log}
}

// RecordRepayment appends a repayment to the loan's ledger, recomputes its
// settled state and persists both the loan and the paired repayment income.
// The loan write and the income write are separate store operations: if the
// income write fails, the loan update stands and the returned error names
// the missing income record so the caller can retry just that write.
func (l *Ledger) RecordRepayment(loanID string, amount decimal.Decimal, now time.Time) (models.Transaction, error) {
	if !amount.IsPositive() {
		return models.Transaction{}, &apperror.ValidationError{
			Field: "amount", Value: amount.String(), Reason: "must be a positive number",
		}
	}

	loan, err := l.findLoan(loanID)
	if err != nil {
		return models.Transaction{}, err
	}
	if loan.LoanDetails.IsRepaid {
		return models.Transaction{}, &apperror.ValidationError{
			Field: "loan", Value: loanID, Reason: "already fully repaid",
		}
	}

	details := loan.LoanDetails
	details.Repayments = append(details.Repayments, models.Repayment{Amount: amount, Date: now})
	details.IsRepaid = details.RepaidTotal().GreaterThanOrEqual(loan.Amount)

	if err := l.store.UpdateTransaction(loan); err != nil {
		return models.Transaction{}, err
	}

	description := fmt.Sprintf("Partial repayment from %s", details.Borrower)
	if details.IsRepaid {
		description = fmt.Sprintf("Repayment from %s", details.Borrower)
	}
	income := models.NewTransaction(amount, description, models.CategoryLoans, models.TypeIncome, now)

	if err := l.store.AddTransaction(income); err != nil {
		return models.Transaction{}, &apperror.PersistenceError{
			Collection: "transactions",
			Op:         "add repayment income",
			Missing:    income.ID,
			Err:        err,
		}
	}

	l.log.Info("repayment recorded",
		logging.Field{Key: logging.FieldBorrower, Value: details.Borrower},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()})
	return loan, nil
}

func (l *Ledger) findLoan(id string) (models.Transaction, error) {
	txs, err := l.store.Transactions()
	if err != nil {
		return models.Transaction{}, err
	}
	for i := range txs {
		if txs[i].ID == id {
			if !txs[i].IsLoan() {
				return models.Transaction{}, &apperror.ValidationError{
					Field: "loan", Value: id, Reason: "transaction is not a loan",
				}
			}
			return txs[i], nil
		}
	}
	return models.Transaction{}, &apperror.ValidationError{
		Field: "loan", Value: id, Reason: "not found",
	}
}

// ActiveLoans returns the loans not yet fully repaid, in store order.
func (l *Ledger) ActiveLoans() ([]models.Transaction, error) {
	txs, err := l.store.Transactions()
	if err != nil {
		return nil, err
	}
	var loans []models.Transaction
	for i := range txs {
		if txs[i].IsLoan() && !txs[i].LoanDetails.IsRepaid {
			loans = append(loans, txs[i])
		}
	}
	return loans, nil
}

// RemainingAmount returns how much of the loan is still outstanding, never
// negative even when repayments overshoot the principal.
func RemainingAmount(loan *models.Transaction) decimal.Decimal {
	if !loan.IsLoan() {
		return decimal.Zero
	}
	remaining := loan.Amount.Sub(loan.LoanDetails.RepaidTotal())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsOverdue reports whether an unrepaid loan's due date has passed.
func IsOverdue(loan *models.Transaction, now time.Time) bool {
	return loan.IsLoan() && !loan.LoanDetails.IsRepaid &&
		loan.LoanDetails.RepaymentDate != nil && loan.LoanDetails.RepaymentDate.Before(now)
}

// Summary aggregates the outstanding position across all loans.
type Summary struct {
	TotalReceivable decimal.Decimal
	ActiveCount     int
	OverdueCount    int
}

// Summarize computes the receivable total and overdue count over the active
// loans.
func (l *Ledger) Summarize(now time.Time) (Summary, error) {
	loans, err := l.ActiveLoans()
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{TotalReceivable: decimal.Zero, ActiveCount: len(loans)}
	for i := range loans {
		summary.TotalReceivable = summary.TotalReceivable.Add(RemainingAmount(&loans[i]))
		if IsOverdue(&loans[i], now) {
			summary.OverdueCount++
		}
	}
	return summary, nil
}
