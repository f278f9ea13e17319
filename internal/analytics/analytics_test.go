package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/smartfinance/internal/models"
)

func TestComputeTotalsBalanceIdentity(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		tx("salary", models.CategorySalary, models.TypeIncome, 5000, now),
		tx("rent", "Housing", models.TypeExpense, 1200, now),
		tx("food", "Food", models.TypeExpense, 300, now),
	}

	totals := ComputeTotals(txs)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(1500)))
	assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expense)))
}

func TestComputeTotalsIncludesRepaidLoans(t *testing.T) {
	now := time.Now()
	loan := tx("Lent to Bob", models.CategoryLoans, models.TypeExpense, 100, now)
	loan.LoanDetails = &models.LoanDetails{IsLoan: true, Borrower: "Bob", IsRepaid: true}
	repayment := tx("Repayment from Bob", models.CategoryLoans, models.TypeIncome, 100, now)

	totals := ComputeTotals([]models.Transaction{loan, repayment})
	// The loan out and the repayment in cancel; balance is net zero.
	assert.True(t, totals.Balance.IsZero())
}

func TestFilteredTotalsDiffersFromGlobal(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		tx("salary", models.CategorySalary, models.TypeIncome, 5000, now),
		tx("lunch", "Food", models.TypeExpense, 20, now),
	}

	filtered, err := FilteredTotals(txs, Criteria{Category: "Food"})
	require.NoError(t, err)
	assert.True(t, filtered.Income.IsZero())
	assert.True(t, filtered.Expense.Equal(decimal.NewFromInt(20)))

	global := ComputeTotals(txs)
	assert.False(t, global.Balance.Equal(filtered.Balance))
}

func TestTopCategories(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("rent", "Housing", models.TypeExpense, 1200, now.AddDate(0, 0, -5)),
		tx("groceries", "Food", models.TypeExpense, 300, now.AddDate(0, 0, -10)),
		tx("restaurant", "Food", models.TypeExpense, 100, now.AddDate(0, 0, -2)),
		tx("bus pass", "Transport", models.TypeExpense, 60, now.AddDate(0, 0, -1)),
		tx("cinema", "Entertainment", models.TypeExpense, 30, now.AddDate(0, 0, -3)),
		// Outside the window and wrong type: both ignored.
		tx("old vacation", "Travel", models.TypeExpense, 5000, now.AddDate(0, 0, -45)),
		tx("salary", models.CategorySalary, models.TypeIncome, 5000, now.AddDate(0, 0, -4)),
	}

	top := TopCategories(txs, now, 30, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Housing", top[0].Category)
	assert.Equal(t, "Food", top[1].Category)
	assert.True(t, top[1].Amount.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, "Transport", top[2].Category)
}

func TestComputeBudgetStatus(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("groceries", "Food", models.TypeExpense, 500, now.AddDate(0, 0, -1)),
		tx("last month", "Food", models.TypeExpense, 900, now.AddDate(0, -1, 0)),
		tx("cinema", "Entertainment", models.TypeExpense, 200, now),
	}
	budgets := []models.Budget{
		{Category: "Food", Limit: decimal.NewFromInt(600)},
		{Category: "Entertainment", Limit: decimal.NewFromInt(150)},
		{Category: "Transport", Limit: decimal.NewFromInt(100)},
	}

	statuses := ComputeBudgetStatus(txs, budgets, now)
	require.Len(t, statuses, 3)

	food := statuses[0]
	assert.True(t, food.Spent.Equal(decimal.NewFromInt(500)))
	assert.True(t, food.IsWarning)
	assert.False(t, food.IsOver)

	entertainment := statuses[1]
	assert.True(t, entertainment.IsOver)
	// Over-budget percentage is capped at 100.
	assert.True(t, entertainment.Percentage.Equal(decimal.NewFromInt(100)))

	transport := statuses[2]
	assert.True(t, transport.Spent.IsZero())
	assert.False(t, transport.IsWarning)
}

func TestSpendingBreakdown(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("rent", "Housing", models.TypeExpense, 600, now.AddDate(0, 0, -2)),
		tx("groceries", "Food", models.TypeExpense, 300, now.AddDate(0, 0, -1)),
		tx("bus", "Transport", models.TypeExpense, 100, now),
		tx("salary", models.CategorySalary, models.TypeIncome, 5000, now),
	}

	slices := SpendingBreakdown(txs, now)
	require.Len(t, slices, 3)
	assert.Equal(t, "Housing", slices[0].Category)
	assert.True(t, slices[0].Share.Equal(decimal.NewFromFloat(0.6)))
	assert.Equal(t, breakdownPalette[0], slices[0].Color)
	assert.Equal(t, breakdownPalette[2], slices[2].Color)

	// Shares sum to 1.
	sum := decimal.Zero
	for _, sl := range slices {
		sum = sum.Add(sl.Share)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)))
}

func TestSpendingBreakdownEmptyMonth(t *testing.T) {
	now := time.Now()
	assert.Nil(t, SpendingBreakdown(nil, now))
}

func TestComputeMonthlyReport(t *testing.T) {
	june := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	wasteful := tx("cigarettes", "Health", models.TypeExpense, 50, june)
	wasteful.IsHarmful = true
	wasteful.IsUnnecessary = true
	txs := []models.Transaction{
		tx("salary", models.CategorySalary, models.TypeIncome, 5000, june),
		tx("rent", "Housing", models.TypeExpense, 1200, june.AddDate(0, 0, 5)),
		wasteful,
		tx("may rent", "Housing", models.TypeExpense, 1200, june.AddDate(0, -1, 0)),
	}

	report := ComputeMonthlyReport(txs, 2026, time.June)
	assert.Len(t, report.Transactions, 3)
	assert.True(t, report.Totals.Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, report.Totals.Expense.Equal(decimal.NewFromInt(1250)))
	assert.True(t, report.Unnecessary.Equal(decimal.NewFromInt(50)))
	assert.True(t, report.Harmful.Equal(decimal.NewFromInt(50)))
}
