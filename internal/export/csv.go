// Package export writes transaction lists to CSV for spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"fjacquet/smartfinance/internal/logging"
	"fjacquet/smartfinance/internal/models"
)

// csvRow maps one transaction to the spreadsheet columns.
type csvRow struct {
	Date              string `csv:"Date"`
	Type              string `csv:"Type"`
	Category          string `csv:"Category"`
	Description       string `csv:"Description"`
	Amount            string `csv:"Amount"`
	IsHarmful         string `csv:"Is Harmful"`
	IsUnnecessary     string `csv:"Is Unnecessary"`
	AnalysisReasoning string `csv:"Analysis Reasoning"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func toRow(tx *models.Transaction) csvRow {
	return csvRow{
		Date:              tx.Date.Format("2006-01-02"),
		Type:              string(tx.Type),
		Category:          tx.Category,
		Description:       tx.Description,
		Amount:            tx.Amount.StringFixed(2),
		IsHarmful:         yesNo(tx.IsHarmful),
		IsUnnecessary:     yesNo(tx.IsUnnecessary),
		AnalysisReasoning: tx.AnalysisReasoning,
	}
}

// Writer exports transactions as CSV with a configurable delimiter.
type Writer struct {
	delimiter rune
	log       logging.Logger
}

// NewWriter creates a CSV exporter.
func NewWriter(delimiter rune, log logging.Logger) *Writer {
	return &Writer{delimiter: delimiter, log: log}
}

// Write marshals the transactions to w, header row included.
func (e *Writer) Write(w io.Writer, txs []models.Transaction) error {
	rows := make([]csvRow, 0, len(txs))
	for i := range txs {
		rows = append(rows, toRow(&txs[i]))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		e.log.WithError(err).Error("failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	e.log.Info("wrote transactions to CSV",
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return nil
}

// WriteFile exports the transactions to a file path.
func (e *Writer) WriteFile(path string, txs []models.Transaction) error {
	file, err := os.Create(path)
	if err != nil {
		e.log.WithError(err).Error("failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.log.WithError(err).Warn("failed to close file")
		}
	}()

	return e.Write(file, txs)
}
