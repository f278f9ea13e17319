// Package models defines the entities shared across the application:
// transactions and their loan ledgers, budgets, savings goals, quick-add
// shortcuts, settings, and the parser result contract.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/smartfinance/internal/apperror"
)

// Reserved category names the engine itself writes to.
const (
	CategorySalary  = "Salary"
	CategoryLoans   = "Loans"
	CategorySavings = "Savings"
	CategoryGeneral = "General"
)

// DefaultCategories is the category set seeded into an empty store.
var DefaultCategories = []string{
	"Food", "Transport", CategorySalary, "Utilities",
	"Entertainment", "Housing", "Health", CategoryGeneral,
}

// DefaultIconKey is assigned to categories without an explicit icon.
const DefaultIconKey = "tag"

// IconKeys is the set of icon identifiers the presentation layer knows.
var IconKeys = map[string]bool{
	"tag": true, "food": true, "coffee": true, "shopping": true,
	"car": true, "home": true, "utilities": true, "health": true,
	"entertainment": true, "tech": true, "bank": true, "travel": true,
	"work": true, "education": true, "love": true, "music": true,
	"internet": true, "gift": true,
}

// IconKeyFor returns the icon for a category, falling back to the default.
func IconKeyFor(icons map[string]string, category string) string {
	if key, ok := icons[category]; ok && IconKeys[key] {
		return key
	}
	return DefaultIconKey
}

// Budget is a monthly spending limit for one category.
// A budget with a non-positive limit is removed rather than stored at zero.
type Budget struct {
	Category string          `json:"category" yaml:"category"`
	Limit    decimal.Decimal `json:"limit" yaml:"limit"`
}

// SavingsGoal accumulates deposits toward a target amount.
// CurrentAmount may exceed TargetAmount.
type SavingsGoal struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount" yaml:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" yaml:"current_amount"`
	Color         string          `json:"color" yaml:"color"`
	Icon          string          `json:"icon" yaml:"icon"`
}

// NewSavingsGoal creates a goal with a fresh id and zero balance.
func NewSavingsGoal(name string, target decimal.Decimal) (SavingsGoal, error) {
	if strings.TrimSpace(name) == "" {
		return SavingsGoal{}, errMissing("name")
	}
	if !target.IsPositive() {
		return SavingsGoal{}, errNonPositive("target amount", target.String())
	}
	return SavingsGoal{
		ID:           uuid.NewString(),
		Name:         name,
		TargetAmount: target,
		Color:        "indigo",
		Icon:         "bank",
	}, nil
}

// Reached reports whether the goal's target has been met.
func (g *SavingsGoal) Reached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// QuickAddItem is a stored shortcut whose text is fed to the parser.
type QuickAddItem struct {
	ID       string           `json:"id" yaml:"id"`
	Label    string           `json:"label" yaml:"label"`
	Text     string           `json:"text" yaml:"text"`
	Amount   *decimal.Decimal `json:"amount,omitempty" yaml:"amount,omitempty"`
	Category string           `json:"category,omitempty" yaml:"category,omitempty"`
	Color    string           `json:"color,omitempty" yaml:"color,omitempty"`
}

// DefaultQuickAdds is seeded into an empty store.
func DefaultQuickAdds() []QuickAddItem {
	return []QuickAddItem{
		{ID: uuid.NewString(), Label: "Coffee", Text: "Spent 20 on Coffee", Color: "amber"},
		{ID: uuid.NewString(), Label: "Lunch", Text: "Spent 50 on Lunch", Color: "orange"},
		{ID: uuid.NewString(), Label: "Transport", Text: "Spent 30 on Transport", Color: "blue"},
		{ID: uuid.NewString(), Label: "Groceries", Text: "Spent 100 on Groceries", Color: "emerald"},
	}
}

// AppSettings holds user-tunable behavior persisted in the store.
// MonthlySalary and SalaryDay together enable the auto-salary feature.
type AppSettings struct {
	LowBalanceThreshold decimal.Decimal  `json:"low_balance_threshold" yaml:"low_balance_threshold"`
	MonthlySalary       *decimal.Decimal `json:"monthly_salary,omitempty" yaml:"monthly_salary,omitempty"`
	SalaryDay           int              `json:"salary_day,omitempty" yaml:"salary_day,omitempty"`
}

// AutoSalaryEnabled reports whether both salary fields are configured.
func (s *AppSettings) AutoSalaryEnabled() bool {
	return s.MonthlySalary != nil && s.MonthlySalary.IsPositive() &&
		s.SalaryDay >= 1 && s.SalaryDay <= 31
}

// ParseResult is the structured output of the transaction parser boundary.
// One free-form input may yield several results; none signals "could not
// understand".
type ParseResult struct {
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Type              TransactionType `json:"type"`
	Recurrence        Recurrence      `json:"recurrence,omitempty"`
	IsHarmful         bool            `json:"is_harmful,omitempty"`
	IsUnnecessary     bool            `json:"is_unnecessary,omitempty"`
	AnalysisReasoning string          `json:"analysis_reasoning,omitempty"`
	IsLoan            bool            `json:"is_loan,omitempty"`
	Borrower          string          `json:"borrower,omitempty"`
	RepaymentDate     string          `json:"repayment_date,omitempty"`
}

// ToTransaction converts a parse result into a transaction dated now.
func (p *ParseResult) ToTransaction(now time.Time) (Transaction, error) {
	if !p.Amount.IsPositive() {
		return Transaction{}, errNonPositive("amount", p.Amount.String())
	}
	category := p.Category
	if category == "" {
		category = CategoryGeneral
	}
	txType := p.Type
	if txType == "" {
		txType = TypeExpense
	}
	tx := NewTransaction(p.Amount, p.Description, category, txType, now)
	if p.Recurrence != "" && p.Recurrence != RecurrenceNone {
		tx.Recurrence = p.Recurrence
	}
	tx.IsHarmful = p.IsHarmful
	tx.IsUnnecessary = p.IsUnnecessary
	tx.AnalysisReasoning = p.AnalysisReasoning
	if p.IsLoan {
		details := &LoanDetails{IsLoan: true, Borrower: p.Borrower}
		if p.RepaymentDate != "" {
			if due, err := time.Parse("2006-01-02", p.RepaymentDate); err == nil {
				details.RepaymentDate = &due
			}
		}
		tx.LoanDetails = details
	}
	return tx, tx.Validate()
}

func errMissing(field string) error {
	return &apperror.ValidationError{Field: field, Reason: "required"}
}

func errNonPositive(field, value string) error {
	return &apperror.ValidationError{Field: field, Value: value, Reason: "must be a positive number"}
}

func errInvalid(field, value, reason string) error {
	return &apperror.ValidationError{Field: field, Value: value, Reason: reason}
}
