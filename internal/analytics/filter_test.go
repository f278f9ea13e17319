package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/smartfinance/internal/models"
)

func tx(desc, category string, txType models.TransactionType, amount int64, date time.Time) models.Transaction {
	return models.NewTransaction(decimal.NewFromInt(amount), desc, category, txType, date)
}

func TestFilterExcludesRepaidLoansByDefault(t *testing.T) {
	now := time.Now()
	loan := tx("Lent to Bob", models.CategoryLoans, models.TypeExpense, 100, now)
	loan.LoanDetails = &models.LoanDetails{IsLoan: true, Borrower: "Bob", IsRepaid: true}
	txs := []models.Transaction{loan, tx("lunch", "Food", models.TypeExpense, 10, now)}

	out, err := Filter(txs, Criteria{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "lunch", out[0].Description)

	out, err = Filter(txs, Criteria{IncludeRepaid: true})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestFilterSearchMatchesBorrower(t *testing.T) {
	now := time.Now()
	loan := tx("Lent money", models.CategoryLoans, models.TypeExpense, 100, now)
	loan.LoanDetails = &models.LoanDetails{IsLoan: true, Borrower: "Alice"}
	txs := []models.Transaction{loan, tx("lunch", "Food", models.TypeExpense, 10, now)}

	out, err := Filter(txs, Criteria{Search: "alice"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Lent money", out[0].Description)
}

func TestFilterTypeAndCategory(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		tx("salary", models.CategorySalary, models.TypeIncome, 5000, now),
		tx("lunch", "Food", models.TypeExpense, 10, now),
		tx("groceries", "Food", models.TypeExpense, 80, now),
	}

	out, err := Filter(txs, Criteria{Type: TypeIncome})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = Filter(txs, Criteria{Category: "Food"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = Filter(txs, Criteria{Type: "bogus"})
	assert.Error(t, err)
}

func TestFilterDateRangeIsEndOfDayInclusive(t *testing.T) {
	day := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	late := tx("late dinner", "Food", models.TypeExpense, 30, day.Add(23*time.Hour+30*time.Minute))
	nextDay := tx("breakfast", "Food", models.TypeExpense, 5, day.AddDate(0, 0, 1).Add(8*time.Hour))

	out, err := Filter([]models.Transaction{late, nextDay}, Criteria{StartDate: &day, EndDate: &day})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "late dinner", out[0].Description)
}

func TestFilterRejectsInvertedRange(t *testing.T) {
	start := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := Filter(nil, Criteria{StartDate: &start, EndDate: &end})
	assert.Error(t, err)
}

func TestFilterPreservesOrder(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		tx("c", "Food", models.TypeExpense, 3, now),
		tx("a", "Food", models.TypeExpense, 1, now),
		tx("b", "Food", models.TypeExpense, 2, now),
	}

	out, err := Filter(txs, Criteria{Category: "Food"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].Description)
	assert.Equal(t, "a", out[1].Description)
	assert.Equal(t, "b", out[2].Description)
}
