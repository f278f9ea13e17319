// Package reconciler materializes due recurring transactions and the
// automatic monthly salary. It runs once per process start and on demand;
// running it repeatedly at the same instant is a no-op.
package reconciler

import (
	"context"
	"time"

	"fjacquet/smartfinance/internal/dateutils"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
	"fjacquet/smartfinance/internal/store"
)

// Reconciler advances recurrence templates and appends the auto-salary
// income when due.
type Reconciler struct {
	store *store.Store
	log   logging.Logger
}

// New creates a reconciler over the given store.
func New(s *store.Store, log logging.Logger) *Reconciler {
	return &Reconciler{store: s, log: log}
}

// Run performs one reconciliation pass at the given instant and returns the
// number of transactions it generated. Each template yields at most one
// child per pass; templates behind by several periods catch up one run at a
// time. All generated transactions are written in a single save, so a write
// failure loses the whole pass and the next trigger retries it.
func (r *Reconciler) Run(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	txs, err := r.store.Transactions()
	if err != nil {
		return 0, err
	}
	settings, err := r.store.Settings()
	if err != nil {
		return 0, err
	}

	var generated []models.Transaction
	for i := range txs {
		child, ok := r.generateDue(&txs[i], now)
		if ok {
			generated = append(generated, child)
		}
	}

	if salary, ok := r.autoSalary(txs, generated, settings, now); ok {
		generated = append(generated, salary)
	}

	if len(generated) == 0 {
		return 0, nil
	}

	updated := append(generated, txs...)
	if err := r.store.SaveTransactions(updated); err != nil {
		return 0, err
	}

	r.log.Info("reconciliation pass complete",
		logging.Field{Key: logging.FieldCount, Value: len(generated)})
	return len(generated), nil
}

// generateDue materializes one child for a template whose next occurrence
// has passed, stamping the template's lastGenerated in place.
func (r *Reconciler) generateDue(tmpl *models.Transaction, now time.Time) (models.Transaction, bool) {
	if !tmpl.IsTemplate() {
		return models.Transaction{}, false
	}

	lastRun := tmpl.Date
	if tmpl.LastGenerated != nil {
		lastRun = *tmpl.LastGenerated
	}
	nextRun := dateutils.NextOccurrence(lastRun, tmpl.Recurrence)
	if nextRun.After(now) {
		return models.Transaction{}, false
	}

	child := models.NewTransaction(tmpl.Amount, tmpl.Description, tmpl.Category, tmpl.Type, nextRun)
	child.IsHarmful = tmpl.IsHarmful
	child.IsUnnecessary = tmpl.IsUnnecessary
	child.AnalysisReasoning = tmpl.AnalysisReasoning

	stamp := nextRun
	tmpl.LastGenerated = &stamp

	r.log.Debug("generated recurring transaction",
		logging.Field{Key: logging.FieldTransaction, Value: child.ID},
		logging.Field{Key: logging.FieldCategory, Value: child.Category})
	return child, true
}

// autoSalary appends the configured monthly salary once the salary day has
// passed and no salary income exists yet this month. Children generated in
// this pass count: a monthly salary template that just fired suppresses the
// automatic one.
func (r *Reconciler) autoSalary(txs, generated []models.Transaction, settings models.AppSettings, now time.Time) (models.Transaction, bool) {
	if !settings.AutoSalaryEnabled() || now.Day() < settings.SalaryDay {
		return models.Transaction{}, false
	}

	for _, list := range [][]models.Transaction{txs, generated} {
		for i := range list {
			tx := &list[i]
			if tx.Type == models.TypeIncome && tx.Category == models.CategorySalary &&
				dateutils.SameMonth(tx.Date, now) {
				return models.Transaction{}, false
			}
		}
	}

	salary := models.NewTransaction(*settings.MonthlySalary, "Monthly salary",
		models.CategorySalary, models.TypeIncome, now)
	r.log.Info("auto salary recorded",
		logging.Field{Key: logging.FieldAmount, Value: salary.Amount.String()})
	return salary, true
}
