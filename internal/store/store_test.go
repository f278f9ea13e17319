package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), &logging.MockLogger{})
}

func TestEmptyStoreReads(t *testing.T) {
	s := newTestStore(t)

	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)

	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories, categories)

	quickAdds, err := s.QuickAdds()
	require.NoError(t, err)
	assert.Len(t, quickAdds, 4)

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.False(t, settings.AutoSalaryEnabled())
}

func TestAddTransactionPrepends(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	first := models.NewTransaction(decimal.NewFromInt(10), "first", "Food", models.TypeExpense, now)
	second := models.NewTransaction(decimal.NewFromInt(20), "second", "Food", models.TypeExpense, now)

	require.NoError(t, s.AddTransaction(first))
	require.NoError(t, s.AddTransaction(second))

	txs, err := s.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "second", txs[0].Description)
	assert.Equal(t, "first", txs[1].Description)
}

func TestAddTransactionRejectsInvalid(t *testing.T) {
	s := newTestStore(t)

	bad := models.NewTransaction(decimal.Zero, "free lunch", "Food", models.TypeExpense, time.Now())
	err := s.AddTransaction(bad)

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)

	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestUpdateTransaction(t *testing.T) {
	s := newTestStore(t)
	tx := models.NewTransaction(decimal.NewFromInt(10), "lunch", "Food", models.TypeExpense, time.Now())
	require.NoError(t, s.AddTransaction(tx))

	tx.Description = "dinner"
	require.NoError(t, s.UpdateTransaction(tx))

	txs, err := s.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "dinner", txs[0].Description)

	missing := models.NewTransaction(decimal.NewFromInt(5), "ghost", "Food", models.TypeExpense, time.Now())
	var pErr *apperror.PersistenceError
	assert.ErrorAs(t, s.UpdateTransaction(missing), &pErr)
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestStore(t)
	tx := models.NewTransaction(decimal.NewFromInt(10), "lunch", "Food", models.TypeExpense, time.Now())
	require.NoError(t, s.AddTransaction(tx))

	require.NoError(t, s.DeleteTransaction(tx.ID))
	require.NoError(t, s.DeleteTransaction("unknown-id"))

	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestSetBudget(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetBudget("Food", decimal.NewFromInt(500)))
	require.NoError(t, s.SetBudget("Food", decimal.NewFromInt(600)))

	budgets, err := s.Budgets()
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].Limit.Equal(decimal.NewFromInt(600)))

	// Non-positive limit removes the budget.
	require.NoError(t, s.SetBudget("Food", decimal.Zero))
	budgets, err = s.Budgets()
	require.NoError(t, err)
	assert.Empty(t, budgets)

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, s.SetBudget("", decimal.NewFromInt(100)), &vErr)
}

func TestAddCategoryDeduplicates(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddCategory("Pets"))
	require.NoError(t, s.AddCategory("Pets"))

	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, len(models.DefaultCategories)+1, len(categories))
	assert.Contains(t, categories, "Pets")
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	salary := decimal.NewFromInt(4500)
	in := models.AppSettings{
		LowBalanceThreshold: decimal.NewFromInt(200),
		MonthlySalary:       &salary,
		SalaryDay:           25,
	}
	require.NoError(t, s.SaveSettings(in))

	out, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, out.AutoSalaryEnabled())
	assert.Equal(t, 25, out.SalaryDay)
	assert.True(t, out.MonthlySalary.Equal(salary))
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := newTestStore(t)
	tx := models.NewTransaction(decimal.NewFromInt(42), "lunch", "Food", models.TypeExpense, time.Now().UTC())
	require.NoError(t, src.AddTransaction(tx))
	require.NoError(t, src.SetBudget("Food", decimal.NewFromInt(500)))

	snap, err := src.Export()
	require.NoError(t, err)
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	dst := newTestStore(t)
	require.NoError(t, dst.Restore(data))

	txs, err := dst.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(tx.Amount))

	budgets, err := dst.Budgets()
	require.NoError(t, err)
	require.Len(t, budgets, 1)
}

func TestRestoreRejectsMalformedPayload(t *testing.T) {
	s := newTestStore(t)
	tx := models.NewTransaction(decimal.NewFromInt(42), "lunch", "Food", models.TypeExpense, time.Now())
	require.NoError(t, s.AddTransaction(tx))

	var rErr *apperror.RestoreError
	err := s.Restore([]byte("{not json"))
	require.ErrorAs(t, err, &rErr)
	assert.False(t, rErr.Applied)

	// Existing data untouched.
	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestRestoreRejectsInvalidTransaction(t *testing.T) {
	s := newTestStore(t)

	snap := Snapshot{
		Transactions: []models.Transaction{
			{ID: "x", Amount: decimal.NewFromInt(-5), Type: models.TypeExpense},
		},
	}
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var rErr *apperror.RestoreError
	require.ErrorAs(t, s.Restore(data), &rErr)
	assert.False(t, rErr.Applied)
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.FillDemoData(time.Now()))

	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.NotEmpty(t, txs)

	require.NoError(t, s.ClearAll())

	txs, err = s.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)

	// Seeds come back after a clear.
	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories, categories)
}

func TestFillDemoData(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.FillDemoData(time.Now()))

	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.NotEmpty(t, txs)

	var loans, templates int
	for i := range txs {
		if txs[i].IsLoan() {
			loans++
		}
		if txs[i].IsTemplate() {
			templates++
		}
	}
	assert.Equal(t, 1, loans)
	assert.Equal(t, 1, templates)

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.AutoSalaryEnabled())
}
