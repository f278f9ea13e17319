// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/smartfinance/internal/config"
	"fjacquet/smartfinance/internal/export"
	"fjacquet/smartfinance/internal/ledger"
	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/parser"
	"fjacquet/smartfinance/internal/reconciler"
	"fjacquet/smartfinance/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation: fields are private and reached through getters, so components
// cannot swap each other's dependencies at runtime.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.Store
	parser     parser.Parser
	reconciler *reconciler.Reconciler
	ledger     *ledger.Ledger
	exporter   *export.Writer
}

// New creates and wires all application dependencies.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first: everything else logs through it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	dataStore := store.New(cfg.Data.Directory, logger)

	var p parser.Parser
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		categories, err := dataStore.Categories()
		if err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
		gemini, err := parser.NewGeminiParser(ctx, cfg.AI.APIKey, cfg.AI.Model, categories, logger)
		if err != nil {
			return nil, fmt.Errorf("creating AI parser: %w", err)
		}
		p = gemini
		logger.Info("AI parsing enabled")
	} else {
		p = parser.NewKeywordParser()
		logger.Info("AI parsing disabled, using keyword parser")
	}

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      dataStore,
		parser:     parser.NewDispatcher(p, logger),
		reconciler: reconciler.New(dataStore, logger),
		ledger:     ledger.New(dataStore, logger),
		exporter:   export.NewWriter([]rune(cfg.Export.Delimiter)[0], logger),
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the persistent store.
func (c *Container) Store() *store.Store { return c.store }

// Parser returns the transaction parser.
func (c *Container) Parser() parser.Parser { return c.parser }

// Reconciler returns the recurrence reconciler.
func (c *Container) Reconciler() *reconciler.Reconciler { return c.reconciler }

// Ledger returns the loan ledger.
func (c *Container) Ledger() *ledger.Ledger { return c.ledger }

// Exporter returns the CSV exporter.
func (c *Container) Exporter() *export.Writer { return c.exporter }
