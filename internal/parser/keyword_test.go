package parser

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/models"
)

func TestKeywordParserExpense(t *testing.T) {
	p := NewKeywordParser()

	results, err := p.ParseText(context.Background(), "Spent 20 on Coffee", "en")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, r.Amount.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, models.TypeExpense, r.Type)
	assert.Equal(t, "Food", r.Category)
	assert.Equal(t, "Coffee", r.Description)
}

func TestKeywordParserIncome(t *testing.T) {
	p := NewKeywordParser()

	results, err := p.ParseText(context.Background(), "Received salary 5000", "en")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, models.TypeIncome, r.Type)
	assert.Equal(t, models.CategorySalary, r.Category)
	assert.True(t, r.Amount.Equal(decimal.NewFromInt(5000)))
}

func TestKeywordParserLoan(t *testing.T) {
	p := NewKeywordParser()

	results, err := p.ParseText(context.Background(), "Lent 300 to Alex", "en")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, r.IsLoan)
	assert.Equal(t, "Alex", r.Borrower)
	assert.Equal(t, models.CategoryLoans, r.Category)
	assert.Equal(t, models.TypeExpense, r.Type)
}

func TestKeywordParserRecurrence(t *testing.T) {
	p := NewKeywordParser()

	results, err := p.ParseText(context.Background(), "Pay 15 for netflix monthly", "en")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.RecurrenceMonthly, results[0].Recurrence)
	assert.Equal(t, "Entertainment", results[0].Category)
}

func TestKeywordParserDecimalAmount(t *testing.T) {
	p := NewKeywordParser()

	results, err := p.ParseText(context.Background(), "Spent 12,50 on lunch", "en")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Amount.Equal(decimal.NewFromFloat(12.5)))
}

func TestKeywordParserNoAmount(t *testing.T) {
	p := NewKeywordParser()

	_, err := p.ParseText(context.Background(), "bought some stuff", "en")
	var pErr *apperror.ParseError
	require.ErrorAs(t, err, &pErr)
	assert.ErrorIs(t, err, ErrNoParse)
}

func TestKeywordParserImageUnsupported(t *testing.T) {
	p := NewKeywordParser()

	_, err := p.ParseImage(context.Background(), []byte{0x1}, "image/png", "en")
	assert.ErrorIs(t, err, ErrNoParse)
}

func TestParseResultToTransaction(t *testing.T) {
	p := NewKeywordParser()

	results, err := p.ParseText(context.Background(), "Lent 300 to Alex", "en")
	require.NoError(t, err)

	tx, err := results[0].ToTransaction(time.Now())
	require.NoError(t, err)
	assert.True(t, tx.IsLoan())
	assert.Equal(t, "Alex", tx.LoanDetails.Borrower)
	require.NoError(t, tx.Validate())
}
