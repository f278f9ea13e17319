package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Recurrence represents how often a template transaction re-generates.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Repayment is one entry in a loan's append-only repayment ledger.
// Insertion order is the chronological order of recording.
type Repayment struct {
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Date   time.Time       `json:"date" yaml:"date"`
}

// LoanDetails tracks money lent to a third party, embedded in the
// transaction that recorded the loan.
type LoanDetails struct {
	IsLoan        bool            `json:"is_loan" yaml:"is_loan"`
	Borrower      string          `json:"borrower,omitempty" yaml:"borrower,omitempty"`
	RepaymentDate *time.Time      `json:"repayment_date,omitempty" yaml:"repayment_date,omitempty"`
	IsRepaid      bool            `json:"is_repaid" yaml:"is_repaid"`
	Repayments    []Repayment     `json:"repayments,omitempty" yaml:"repayments,omitempty"`
}

// RepaidTotal returns the sum of all recorded repayments.
func (l *LoanDetails) RepaidTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.Repayments {
		total = total.Add(r.Amount)
	}
	return total
}

// Transaction is the central, append-mostly entity of the system.
// Date is the timestamp of economic effect, not necessarily creation time.
type Transaction struct {
	ID                string          `json:"id" yaml:"id"`
	Amount            decimal.Decimal `json:"amount" yaml:"amount"`
	Description       string          `json:"description" yaml:"description"`
	Category          string          `json:"category" yaml:"category"`
	Type              TransactionType `json:"type" yaml:"type"`
	Date              time.Time       `json:"date" yaml:"date"`
	Recurrence        Recurrence      `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
	LastGenerated     *time.Time      `json:"last_generated,omitempty" yaml:"last_generated,omitempty"`
	IsHarmful         bool            `json:"is_harmful,omitempty" yaml:"is_harmful,omitempty"`
	IsUnnecessary     bool            `json:"is_unnecessary,omitempty" yaml:"is_unnecessary,omitempty"`
	AnalysisReasoning string          `json:"analysis_reasoning,omitempty" yaml:"analysis_reasoning,omitempty"`
	LoanDetails       *LoanDetails    `json:"loan_details,omitempty" yaml:"loan_details,omitempty"`
}

// NewTransaction creates a transaction with a fresh id and no recurrence.
func NewTransaction(amount decimal.Decimal, description, category string, txType TransactionType, date time.Time) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		Category:    category,
		Type:        txType,
		Date:        date,
		Recurrence:  RecurrenceNone,
	}
}

// IsTemplate reports whether this transaction periodically generates children.
func (t *Transaction) IsTemplate() bool {
	return t.Recurrence != "" && t.Recurrence != RecurrenceNone
}

// IsLoan reports whether this transaction records money lent out.
func (t *Transaction) IsLoan() bool {
	return t.LoanDetails != nil && t.LoanDetails.IsLoan
}

// IsRepaidLoan reports whether this is a loan whose ledger is settled.
func (t *Transaction) IsRepaidLoan() bool {
	return t.IsLoan() && t.LoanDetails.IsRepaid
}

// Validate checks the invariants every stored transaction must satisfy.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errMissing("id")
	}
	if !t.Amount.IsPositive() {
		return errNonPositive("amount", t.Amount.String())
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return errInvalid("type", string(t.Type), "must be income or expense")
	}
	switch t.Recurrence {
	case "", RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
	default:
		return errInvalid("recurrence", string(t.Recurrence), "unknown period")
	}
	return nil
}

// ParseAmount converts a string to a decimal amount, returning zero for
// unparseable input.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
