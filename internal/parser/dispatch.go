package parser

import (
	"context"
	"errors"
	"sync/atomic"

	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

// ErrSuperseded signals that a newer parse request was issued while this one
// was in flight; its result was dropped.
var ErrSuperseded = errors.New("parse request superseded")

// Dispatcher serializes parse requests by a monotonic id. When requests
// overlap, only the latest one's result is delivered; earlier results are
// dropped so a slow response can never overwrite a newer one.
type Dispatcher struct {
	parser Parser
	log    logging.Logger
	latest atomic.Uint64
}

// NewDispatcher wraps a parser with last-request-wins semantics.
func NewDispatcher(p Parser, log logging.Logger) *Dispatcher {
	return &Dispatcher{parser: p, log: log}
}

func (d *Dispatcher) next() uint64 {
	return d.latest.Add(1)
}

func (d *Dispatcher) deliver(id uint64, results []models.ParseResult, err error) ([]models.ParseResult, error) {
	if d.latest.Load() != id {
		d.log.Debug("dropping superseded parse result",
			logging.Field{Key: logging.FieldRequestID, Value: id})
		return nil, ErrSuperseded
	}
	return results, err
}

// ParseText forwards to the wrapped parser under a fresh request id.
func (d *Dispatcher) ParseText(ctx context.Context, text, lang string) ([]models.ParseResult, error) {
	id := d.next()
	results, err := d.parser.ParseText(ctx, text, lang)
	return d.deliver(id, results, err)
}

// ParseImage forwards to the wrapped parser under a fresh request id.
func (d *Dispatcher) ParseImage(ctx context.Context, data []byte, mimeType, lang string) ([]models.ParseResult, error) {
	id := d.next()
	results, err := d.parser.ParseImage(ctx, data, mimeType, lang)
	return d.deliver(id, results, err)
}
