// Package store persists application data as one YAML file per collection
// under a data directory. A missing file reads as the collection's seed
// value, so a fresh directory behaves like a fresh install.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

// File names of the collections inside the data directory.
const (
	transactionsFile = "transactions.yaml"
	categoriesFile   = "categories.yaml"
	iconsFile        = "category_icons.yaml"
	budgetsFile      = "budgets.yaml"
	settingsFile     = "settings.yaml"
	goalsFile        = "goals.yaml"
	quickAddsFile    = "quick_adds.yaml"
)

// Store reads and writes the application's collections. All methods are safe
// for concurrent use; writes replace whole collection files.
type Store struct {
	dir string
	log logging.Logger
	mu  sync.RWMutex
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string, log logging.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// loadYAML reads one collection file into out. A missing file leaves out
// untouched and returns false.
func (s *Store) loadYAML(name string, out interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &apperror.PersistenceError{Collection: name, Op: "read", Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, &apperror.PersistenceError{Collection: name, Op: "parse", Err: err}
	}
	return true, nil
}

func (s *Store) saveYAML(name string, in interface{}) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &apperror.PersistenceError{Collection: name, Op: "mkdir", Err: err}
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return &apperror.PersistenceError{Collection: name, Op: "marshal", Err: err}
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return &apperror.PersistenceError{Collection: name, Op: "write", Err: err}
	}
	s.log.Debug("saved collection", logging.Field{Key: logging.FieldCollection, Value: name})
	return nil
}

// Transactions returns all stored transactions, newest first.
func (s *Store) Transactions() ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []models.Transaction
	if _, err := s.loadYAML(transactionsFile, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// SaveTransactions replaces the whole transaction collection.
func (s *Store) SaveTransactions(txs []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveYAML(transactionsFile, txs)
}

// AddTransaction validates and prepends a transaction, keeping the
// newest-first ordering of the collection.
func (s *Store) AddTransaction(tx models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	if _, err := s.loadYAML(transactionsFile, &txs); err != nil {
		return err
	}
	txs = append([]models.Transaction{tx}, txs...)
	return s.saveYAML(transactionsFile, txs)
}

// UpdateTransaction replaces the stored transaction with the same id.
func (s *Store) UpdateTransaction(tx models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	if _, err := s.loadYAML(transactionsFile, &txs); err != nil {
		return err
	}
	for i := range txs {
		if txs[i].ID == tx.ID {
			txs[i] = tx
			return s.saveYAML(transactionsFile, txs)
		}
	}
	return &apperror.PersistenceError{
		Collection: transactionsFile,
		Op:         "update",
		Err:        fmt.Errorf("transaction %s not found", tx.ID),
	}
}

// DeleteTransaction removes a transaction by id. Deleting an unknown id is
// not an error.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	if _, err := s.loadYAML(transactionsFile, &txs); err != nil {
		return err
	}
	kept := txs[:0]
	for _, tx := range txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return s.saveYAML(transactionsFile, kept)
}

// Categories returns the stored category names, seeding the defaults when no
// categories file exists yet.
func (s *Store) Categories() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var categories []string
	found, err := s.loadYAML(categoriesFile, &categories)
	if err != nil {
		return nil, err
	}
	if !found {
		return append([]string(nil), models.DefaultCategories...), nil
	}
	return categories, nil
}

// SaveCategories replaces the category list.
func (s *Store) SaveCategories(categories []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveYAML(categoriesFile, categories)
}

// AddCategory appends a category if it is not already present.
func (s *Store) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []string
	found, err := s.loadYAML(categoriesFile, &categories)
	if err != nil {
		return err
	}
	if !found {
		categories = append([]string(nil), models.DefaultCategories...)
	}
	for _, c := range categories {
		if c == name {
			return nil
		}
	}
	categories = append(categories, name)
	return s.saveYAML(categoriesFile, categories)
}

// CategoryIcons returns the category-to-icon mapping.
func (s *Store) CategoryIcons() (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	icons := map[string]string{}
	if _, err := s.loadYAML(iconsFile, &icons); err != nil {
		return nil, err
	}
	return icons, nil
}

// SaveCategoryIcons replaces the category-to-icon mapping.
func (s *Store) SaveCategoryIcons(icons map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveYAML(iconsFile, icons)
}

// Budgets returns all category budgets.
func (s *Store) Budgets() ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var budgets []models.Budget
	if _, err := s.loadYAML(budgetsFile, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SetBudget stores a monthly limit for a category. A non-positive limit
// removes the budget instead of storing it at zero.
func (s *Store) SetBudget(category string, limit decimal.Decimal) error {
	if category == "" {
		return &apperror.ValidationError{Field: "category", Reason: "required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var budgets []models.Budget
	if _, err := s.loadYAML(budgetsFile, &budgets); err != nil {
		return err
	}

	kept := budgets[:0]
	for _, b := range budgets {
		if b.Category != category {
			kept = append(kept, b)
		}
	}
	if limit.IsPositive() {
		kept = append(kept, models.Budget{Category: category, Limit: limit})
	}
	return s.saveYAML(budgetsFile, kept)
}

// Settings returns the stored settings, or zero-value settings when none
// have been saved yet.
func (s *Store) Settings() (models.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var settings models.AppSettings
	if _, err := s.loadYAML(settingsFile, &settings); err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}

// SaveSettings replaces the stored settings.
func (s *Store) SaveSettings(settings models.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveYAML(settingsFile, settings)
}

// Goals returns all savings goals.
func (s *Store) Goals() ([]models.SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var goals []models.SavingsGoal
	if _, err := s.loadYAML(goalsFile, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// SaveGoals replaces the goal collection.
func (s *Store) SaveGoals(goals []models.SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveYAML(goalsFile, goals)
}

// AddGoal appends a savings goal.
func (s *Store) AddGoal(goal models.SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []models.SavingsGoal
	if _, err := s.loadYAML(goalsFile, &goals); err != nil {
		return err
	}
	goals = append(goals, goal)
	return s.saveYAML(goalsFile, goals)
}

// UpdateGoal replaces the stored goal with the same id.
func (s *Store) UpdateGoal(goal models.SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []models.SavingsGoal
	if _, err := s.loadYAML(goalsFile, &goals); err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == goal.ID {
			goals[i] = goal
			return s.saveYAML(goalsFile, goals)
		}
	}
	return &apperror.PersistenceError{
		Collection: goalsFile,
		Op:         "update",
		Err:        fmt.Errorf("goal %s not found", goal.ID),
	}
}

// QuickAdds returns the stored quick-add shortcuts, seeding the defaults
// when no file exists yet.
func (s *Store) QuickAdds() ([]models.QuickAddItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.QuickAddItem
	found, err := s.loadYAML(quickAddsFile, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultQuickAdds(), nil
	}
	return items, nil
}

// SaveQuickAdds replaces the quick-add collection.
func (s *Store) SaveQuickAdds(items []models.QuickAddItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveYAML(quickAddsFile, items)
}

// AddQuickAdd appends a quick-add shortcut.
func (s *Store) AddQuickAdd(item models.QuickAddItem) error {
	if item.Label == "" || item.Text == "" {
		return &apperror.ValidationError{Field: "quick add", Reason: "label and text are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.QuickAddItem
	found, err := s.loadYAML(quickAddsFile, &items)
	if err != nil {
		return err
	}
	if !found {
		items = models.DefaultQuickAdds()
	}
	items = append(items, item)
	return s.saveYAML(quickAddsFile, items)
}
