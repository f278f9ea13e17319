package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/models"
)

var (
	amountRegex   = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	borrowerRegex = regexp.MustCompile(`(?i)(?:lent|loaned)(?:\s+\d+(?:[.,]\d+)?)?\s+to\s+([A-Za-z]+)`)
	forRegex      = regexp.MustCompile(`(?i)(?:on|for|from)\s+(.+?)$`)
)

var incomeWords = []string{"salary", "received", "earned", "income", "got paid", "bonus", "refund"}

var recurrenceWords = map[string]models.Recurrence{
	"every day":   models.RecurrenceDaily,
	"daily":       models.RecurrenceDaily,
	"every week":  models.RecurrenceWeekly,
	"weekly":      models.RecurrenceWeekly,
	"every month": models.RecurrenceMonthly,
	"monthly":     models.RecurrenceMonthly,
}

var categoryWords = map[string][]string{
	"Food":          {"coffee", "lunch", "dinner", "breakfast", "groceries", "restaurant", "food"},
	"Transport":     {"taxi", "bus", "train", "fuel", "gas", "uber", "transport"},
	"Housing":       {"rent", "mortgage"},
	"Utilities":     {"electricity", "water bill", "internet", "phone bill", "utilities"},
	"Entertainment": {"cinema", "movie", "netflix", "spotify", "game", "concert"},
	"Health":        {"pharmacy", "doctor", "dentist", "gym", "medicine"},
}

// KeywordParser is a deterministic fallback that recognizes simple phrases
// like "spent 20 on coffee" or "lent 100 to Alex". It never calls out.
type KeywordParser struct{}

// NewKeywordParser creates the fallback parser.
func NewKeywordParser() *KeywordParser {
	return &KeywordParser{}
}

// ParseText extracts a single transaction from a simple phrase.
func (p *KeywordParser) ParseText(_ context.Context, text, _ string) ([]models.ParseResult, error) {
	lower := strings.ToLower(text)

	amountStr := amountRegex.FindString(lower)
	if amountStr == "" {
		return nil, &apperror.ParseError{Input: text, Err: ErrNoParse}
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", "."))
	if err != nil || !amount.IsPositive() {
		return nil, &apperror.ParseError{Input: text, Err: ErrNoParse}
	}

	result := models.ParseResult{
		Amount:      amount,
		Description: strings.TrimSpace(text),
		Type:        models.TypeExpense,
		Category:    models.CategoryGeneral,
	}

	for _, word := range incomeWords {
		if strings.Contains(lower, word) {
			result.Type = models.TypeIncome
			if strings.Contains(lower, "salary") {
				result.Category = models.CategorySalary
			}
			break
		}
	}

	for phrase, recurrence := range recurrenceWords {
		if strings.Contains(lower, phrase) {
			result.Recurrence = recurrence
			break
		}
	}

	if m := borrowerRegex.FindStringSubmatch(text); m != nil {
		result.IsLoan = true
		result.Borrower = m[1]
		result.Category = models.CategoryLoans
		result.Type = models.TypeExpense
	}

	if !result.IsLoan && result.Category == models.CategoryGeneral {
		result.Category = matchCategory(lower)
	}

	if m := forRegex.FindStringSubmatch(strings.TrimSpace(text)); m != nil && !result.IsLoan {
		result.Description = strings.TrimSpace(m[1])
	}

	return []models.ParseResult{result}, nil
}

// ParseImage is not supported without the AI backend.
func (p *KeywordParser) ParseImage(_ context.Context, _ []byte, _, _ string) ([]models.ParseResult, error) {
	return nil, &apperror.ParseError{Input: "image", Err: ErrNoParse}
}

func matchCategory(lower string) string {
	for category, words := range categoryWords {
		for _, word := range words {
			if strings.Contains(lower, word) {
				return category
			}
		}
	}
	return models.CategoryGeneral
}
