// Package analytics computes derived state over the transaction list:
// filtering, totals, category rankings, budget status and monthly reports.
// Everything here is a pure function of its inputs.
package analytics

import (
	"strings"
	"time"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/dateutils"
	"fjacquet/smartfinance/internal/models"
)

// TypeFilter selects which transaction direction a filter keeps.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = "income"
	TypeExpense TypeFilter = "expense"
)

// Criteria describes one filtered view over the transaction list. The zero
// value keeps everything except repaid loans.
type Criteria struct {
	Search        string
	Type          TypeFilter
	Category      string
	StartDate     *time.Time
	EndDate       *time.Time
	IncludeRepaid bool
}

// Validate rejects criteria that cannot match anything coherently.
func (c *Criteria) Validate() error {
	switch c.Type {
	case "", TypeAll, TypeIncome, TypeExpense:
	default:
		return &apperror.ValidationError{Field: "type", Value: string(c.Type), Reason: "must be all, income or expense"}
	}
	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		return &apperror.ValidationError{Field: "date range", Reason: "start date is after end date"}
	}
	return nil
}

func (c *Criteria) matches(tx *models.Transaction) bool {
	if !c.IncludeRepaid && tx.IsRepaidLoan() {
		return false
	}
	switch c.Type {
	case TypeIncome:
		if tx.Type != models.TypeIncome {
			return false
		}
	case TypeExpense:
		if tx.Type != models.TypeExpense {
			return false
		}
	}
	if c.Category != "" && tx.Category != c.Category {
		return false
	}
	if c.StartDate != nil && tx.Date.Before(dateutils.StartOfDay(*c.StartDate)) {
		return false
	}
	if c.EndDate != nil && tx.Date.After(dateutils.EndOfDay(*c.EndDate)) {
		return false
	}
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		haystack := strings.ToLower(tx.Description) + " " + strings.ToLower(tx.Category)
		if tx.LoanDetails != nil {
			haystack += " " + strings.ToLower(tx.LoanDetails.Borrower)
		}
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// Filter returns the transactions matching the criteria, preserving input
// order.
func Filter(txs []models.Transaction, c Criteria) ([]models.Transaction, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, 0, len(txs))
	for i := range txs {
		if c.matches(&txs[i]) {
			out = append(out, txs[i])
		}
	}
	return out, nil
}
