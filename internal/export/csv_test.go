package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

func sampleTransactions() []models.Transaction {
	date := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	flagged := models.NewTransaction(decimal.NewFromFloat(12.5), "Cigarettes", "Health", models.TypeExpense, date)
	flagged.IsHarmful = true
	flagged.AnalysisReasoning = "Health-damaging purchase"
	return []models.Transaction{
		models.NewTransaction(decimal.NewFromInt(5000), "Monthly salary", models.CategorySalary, models.TypeIncome, date),
		flagged,
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.Write(&buf, sampleTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Category,Description,Amount,Is Harmful,Is Unnecessary,Analysis Reasoning", lines[0])
	assert.Contains(t, lines[1], "2026-06-15,income,Salary,Monthly salary,5000.00,No,No,")
	assert.Contains(t, lines[2], "12.50,Yes,No,Health-damaging purchase")
}

func TestWriteCSVCustomDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(';', &logging.MockLogger{})

	require.NoError(t, w.Write(&buf, sampleTransactions()))
	assert.Contains(t, buf.String(), "Date;Type;Category")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.WriteFile(path, sampleTransactions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Monthly salary")
}

func TestWriteEmptyList(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.Write(&buf, nil))
	assert.Equal(t, "Date,Type,Category,Description,Amount,Is Harmful,Is Unnecessary,Analysis Reasoning",
		strings.TrimSpace(buf.String()))
}
