package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/smartfinance/internal/dateutils"
	"fjacquet/smartfinance/internal/models"
)

// Totals is the income/expense/balance triple over a transaction list.
// Balance = Income - Expense always holds.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// ComputeTotals sums the whole list. Repaid loans stay in the sums: the money
// left and came back as separate transactions, so excluding them would
// double-count the repayment income.
func ComputeTotals(txs []models.Transaction) Totals {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for i := range txs {
		switch txs[i].Type {
		case models.TypeIncome:
			t.Income = t.Income.Add(txs[i].Amount)
		case models.TypeExpense:
			t.Expense = t.Expense.Add(txs[i].Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// FilteredTotals sums only the transactions matching the criteria.
func FilteredTotals(txs []models.Transaction, c Criteria) (Totals, error) {
	filtered, err := Filter(txs, c)
	if err != nil {
		return Totals{}, err
	}
	return ComputeTotals(filtered), nil
}

// CategoryTotal is one category's expense sum in a ranking.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// TopCategories ranks expense categories over the trailing window, largest
// first, and returns at most limit entries. Ties break alphabetically so the
// ranking is deterministic.
func TopCategories(txs []models.Transaction, now time.Time, windowDays, limit int) []CategoryTotal {
	cutoff := now.AddDate(0, 0, -windowDays)
	sums := map[string]decimal.Decimal{}
	for i := range txs {
		tx := &txs[i]
		if tx.Type != models.TypeExpense || tx.Date.Before(cutoff) || tx.Date.After(now) {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	ranked := make([]CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		ranked = append(ranked, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Category < ranked[j].Category
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// BudgetStatus describes how far into a category budget the current month's
// spending has progressed.
type BudgetStatus struct {
	Category   string
	Limit      decimal.Decimal
	Spent      decimal.Decimal
	Percentage decimal.Decimal
	IsOver     bool
	IsWarning  bool
}

var warningShare = decimal.NewFromFloat(0.8)

// ComputeBudgetStatus evaluates each budget against the current calendar
// month's expenses. Percentage is capped at 100.
func ComputeBudgetStatus(txs []models.Transaction, budgets []models.Budget, now time.Time) []BudgetStatus {
	spent := map[string]decimal.Decimal{}
	for i := range txs {
		tx := &txs[i]
		if tx.Type == models.TypeExpense && dateutils.SameMonth(tx.Date, now) {
			spent[tx.Category] = spent[tx.Category].Add(tx.Amount)
		}
	}

	hundred := decimal.NewFromInt(100)
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		if !b.Limit.IsPositive() {
			continue
		}
		used := spent[b.Category]
		pct := used.Div(b.Limit).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		statuses = append(statuses, BudgetStatus{
			Category:   b.Category,
			Limit:      b.Limit,
			Spent:      used,
			Percentage: pct,
			IsOver:     used.GreaterThan(b.Limit),
			IsWarning:  used.GreaterThan(b.Limit.Mul(warningShare)),
		})
	}
	return statuses
}

// breakdownPalette colors spending slices by rank.
var breakdownPalette = []string{
	"indigo", "emerald", "amber", "rose", "sky", "violet", "orange", "teal",
}

// BreakdownSlice is one category's share of the current month's spending.
type BreakdownSlice struct {
	Category string
	Amount   decimal.Decimal
	Share    decimal.Decimal
	Color    string
}

// SpendingBreakdown splits the current month's expenses by category,
// descending by amount, with each slice's share of the total and a palette
// color assigned by rank.
func SpendingBreakdown(txs []models.Transaction, now time.Time) []BreakdownSlice {
	sums := map[string]decimal.Decimal{}
	total := decimal.Zero
	for i := range txs {
		tx := &txs[i]
		if tx.Type == models.TypeExpense && dateutils.SameMonth(tx.Date, now) {
			sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
			total = total.Add(tx.Amount)
		}
	}
	if total.IsZero() {
		return nil
	}

	slices := make([]BreakdownSlice, 0, len(sums))
	for category, amount := range sums {
		slices = append(slices, BreakdownSlice{
			Category: category,
			Amount:   amount,
			Share:    amount.Div(total),
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Amount.Equal(slices[j].Amount) {
			return slices[i].Amount.GreaterThan(slices[j].Amount)
		}
		return slices[i].Category < slices[j].Category
	})
	for i := range slices {
		slices[i].Color = breakdownPalette[i%len(breakdownPalette)]
	}
	return slices
}

// MonthlyReport summarizes one calendar month.
type MonthlyReport struct {
	Year         int
	Month        time.Month
	Totals       Totals
	Unnecessary  decimal.Decimal
	Harmful      decimal.Decimal
	Transactions []models.Transaction
}

// ComputeMonthlyReport gathers the named month's transactions with their
// totals and the sums flagged as unnecessary or harmful spending.
func ComputeMonthlyReport(txs []models.Transaction, year int, month time.Month) MonthlyReport {
	report := MonthlyReport{
		Year:        year,
		Month:       month,
		Unnecessary: decimal.Zero,
		Harmful:     decimal.Zero,
	}
	for i := range txs {
		tx := &txs[i]
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		report.Transactions = append(report.Transactions, *tx)
		if tx.Type == models.TypeExpense {
			if tx.IsUnnecessary {
				report.Unnecessary = report.Unnecessary.Add(tx.Amount)
			}
			if tx.IsHarmful {
				report.Harmful = report.Harmful.Add(tx.Amount)
			}
		}
	}
	report.Totals = ComputeTotals(report.Transactions)
	return report
}
