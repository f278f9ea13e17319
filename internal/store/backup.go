package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

// Snapshot is the single-document JSON form of every collection, used for
// backup and restore.
type Snapshot struct {
	ExportedAt    time.Time             `json:"exported_at"`
	Transactions  []models.Transaction  `json:"transactions"`
	Categories    []string              `json:"categories"`
	CategoryIcons map[string]string     `json:"category_icons"`
	Budgets       []models.Budget       `json:"budgets"`
	Settings      models.AppSettings    `json:"settings"`
	Goals         []models.SavingsGoal  `json:"goals"`
	QuickAdds     []models.QuickAddItem `json:"quick_adds"`
}

// Export collects every collection into a snapshot.
func (s *Store) Export() (Snapshot, error) {
	snap := Snapshot{ExportedAt: time.Now()}

	var err error
	if snap.Transactions, err = s.Transactions(); err != nil {
		return Snapshot{}, err
	}
	if snap.Categories, err = s.Categories(); err != nil {
		return Snapshot{}, err
	}
	if snap.CategoryIcons, err = s.CategoryIcons(); err != nil {
		return Snapshot{}, err
	}
	if snap.Budgets, err = s.Budgets(); err != nil {
		return Snapshot{}, err
	}
	if snap.Settings, err = s.Settings(); err != nil {
		return Snapshot{}, err
	}
	if snap.Goals, err = s.Goals(); err != nil {
		return Snapshot{}, err
	}
	if snap.QuickAdds, err = s.QuickAdds(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Restore parses a snapshot and replaces every collection with its contents.
// The payload is fully parsed and validated before anything is written, so a
// malformed backup leaves the store untouched.
func (s *Store) Restore(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return &apperror.RestoreError{Err: err}
	}
	for i := range snap.Transactions {
		if err := snap.Transactions[i].Validate(); err != nil {
			return &apperror.RestoreError{Err: fmt.Errorf("transaction %d: %w", i, err)}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writes := []struct {
		name string
		data interface{}
	}{
		{transactionsFile, snap.Transactions},
		{categoriesFile, snap.Categories},
		{iconsFile, snap.CategoryIcons},
		{budgetsFile, snap.Budgets},
		{settingsFile, snap.Settings},
		{goalsFile, snap.Goals},
		{quickAddsFile, snap.QuickAdds},
	}
	for _, w := range writes {
		if err := s.saveYAML(w.name, w.data); err != nil {
			return &apperror.RestoreError{Collection: w.name, Applied: true, Err: err}
		}
	}

	s.log.Info("restored snapshot",
		logging.Field{Key: logging.FieldCount, Value: len(snap.Transactions)})
	return nil
}

// ClearAll removes every collection file, returning the store to the
// fresh-install state.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := []string{
		transactionsFile, categoriesFile, iconsFile,
		budgetsFile, settingsFile, goalsFile, quickAddsFile,
	}
	for _, name := range files {
		if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
			return &apperror.PersistenceError{Collection: name, Op: "remove", Err: err}
		}
	}
	s.log.Info("cleared all data")
	return nil
}

// FillDemoData replaces the store contents with a small, recognizable data
// set for trying the application out.
func (s *Store) FillDemoData(now time.Time) error {
	salary := decimal.NewFromInt(5000)
	due := now.AddDate(0, 1, 0)

	txs := []models.Transaction{
		func() models.Transaction {
			t := models.NewTransaction(salary, "Monthly salary", models.CategorySalary, models.TypeIncome, now.AddDate(0, 0, -20))
			t.Recurrence = models.RecurrenceMonthly
			return t
		}(),
		models.NewTransaction(decimal.NewFromInt(1200), "Rent", "Housing", models.TypeExpense, now.AddDate(0, 0, -18)),
		models.NewTransaction(decimal.NewFromInt(85), "Groceries", "Food", models.TypeExpense, now.AddDate(0, 0, -5)),
		models.NewTransaction(decimal.NewFromInt(40), "Taxi home", "Transport", models.TypeExpense, now.AddDate(0, 0, -3)),
		func() models.Transaction {
			t := models.NewTransaction(decimal.NewFromInt(15), "Streaming subscription", "Entertainment", models.TypeExpense, now.AddDate(0, 0, -2))
			t.IsUnnecessary = true
			t.AnalysisReasoning = "Recurring subscription with low usage"
			return t
		}(),
		func() models.Transaction {
			t := models.NewTransaction(decimal.NewFromInt(300), "Lent to Alex", models.CategoryLoans, models.TypeExpense, now.AddDate(0, 0, -10))
			t.LoanDetails = &models.LoanDetails{IsLoan: true, Borrower: "Alex", RepaymentDate: &due}
			return t
		}(),
	}

	budgets := []models.Budget{
		{Category: "Food", Limit: decimal.NewFromInt(600)},
		{Category: "Entertainment", Limit: decimal.NewFromInt(150)},
	}

	goal, err := models.NewSavingsGoal("Vacation", decimal.NewFromInt(2000))
	if err != nil {
		return err
	}
	goal.CurrentAmount = decimal.NewFromInt(450)

	settings := models.AppSettings{
		LowBalanceThreshold: decimal.NewFromInt(500),
		MonthlySalary:       &salary,
		SalaryDay:           25,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writes := []struct {
		name string
		data interface{}
	}{
		{transactionsFile, txs},
		{categoriesFile, models.DefaultCategories},
		{budgetsFile, budgets},
		{goalsFile, []models.SavingsGoal{goal}},
		{settingsFile, settings},
		{quickAddsFile, models.DefaultQuickAdds()},
	}
	for _, w := range writes {
		if err := s.saveYAML(w.name, w.data); err != nil {
			return err
		}
	}

	s.log.Info("filled demo data", logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return nil
}
