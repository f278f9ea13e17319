package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

// GeminiParser extracts transactions with the Gemini generative model.
type GeminiParser struct {
	client     *genai.Client
	model      *genai.GenerativeModel
	categories []string
	log        logging.Logger
	now        func() time.Time
}

// NewGeminiParser creates a parser backed by the Gemini API. categories
// steers the model toward the user's own category set.
func NewGeminiParser(ctx context.Context, apiKey, modelName string, categories []string, log logging.Logger) (*GeminiParser, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiParser{
		client:     client,
		model:      client.GenerativeModel(modelName),
		categories: categories,
		log:        log,
		now:        time.Now,
	}, nil
}

// Close releases the underlying API client.
func (p *GeminiParser) Close() error {
	return p.client.Close()
}

func (p *GeminiParser) prompt(lang string) string {
	return fmt.Sprintf(`You extract financial transactions from user input.
Today's date is %s. The user's language is %q.

Return ONLY a JSON array. Each element describes one transaction:
{
  "amount": number (positive),
  "description": string,
  "category": one of [%s],
  "type": "income" or "expense",
  "recurrence": "none", "daily", "weekly" or "monthly",
  "is_harmful": boolean (true for health-damaging spending),
  "is_unnecessary": boolean (true for avoidable spending),
  "analysis_reasoning": short string when either flag is set,
  "is_loan": boolean (true when money is lent to a person),
  "borrower": string (when is_loan),
  "repayment_date": "YYYY-MM-DD" (when mentioned)
}

Return [] when no transaction can be recognized.`,
		p.now().Format("2006-01-02"), lang, strings.Join(p.categories, ", "))
}

// ParseText asks the model to extract transactions from free-form text.
func (p *GeminiParser) ParseText(ctx context.Context, text, lang string) ([]models.ParseResult, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(p.prompt(lang)+"\n\nInput: "+text))
	if err != nil {
		return nil, &apperror.ParseError{Input: text, Err: err}
	}
	return p.decode(text, resp)
}

// ParseImage asks the model to extract transactions from a receipt or
// screenshot.
func (p *GeminiParser) ParseImage(ctx context.Context, data []byte, mimeType, lang string) ([]models.ParseResult, error) {
	format := strings.TrimPrefix(mimeType, "image/")
	resp, err := p.model.GenerateContent(ctx,
		genai.Text(p.prompt(lang)+"\n\nExtract every transaction from this image."),
		genai.ImageData(format, data))
	if err != nil {
		return nil, &apperror.ParseError{Input: "image", Err: err}
	}
	return p.decode("image", resp)
}

func (p *GeminiParser) decode(input string, resp *genai.GenerateContentResponse) ([]models.ParseResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &apperror.ParseError{Input: input, Err: ErrNoParse}
	}
	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	payload := extractJSON(text)
	if payload == "" {
		p.log.Warn("model response carried no JSON")
		return nil, &apperror.ParseError{Input: input, Err: ErrNoParse}
	}

	var results []models.ParseResult
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		return nil, &apperror.ParseError{Input: input, Err: err}
	}

	valid := results[:0]
	for _, r := range results {
		if r.Amount.IsPositive() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil, &apperror.ParseError{Input: input, Err: ErrNoParse}
	}

	p.log.Debug("parsed transactions from model response",
		logging.Field{Key: logging.FieldCount, Value: len(valid)})
	return valid, nil
}

// extractJSON pulls the first JSON array out of a model response that may be
// wrapped in prose or a markdown fence.
func extractJSON(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
