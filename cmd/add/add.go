// Package add handles natural-language transaction entry.
package add

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/models"
)

var (
	imagePath string
	lang      string
)

// Cmd represents the add command.
var Cmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add transactions from a plain-language description",
	Long: `Add parses a plain-language description like "spent 20 on coffee" or
"lent 300 to Alex" into one or more transactions and stores them. With
--image, transactions are extracted from a receipt photo instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Receipt image to parse instead of text")
	Cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language hint for the parser")
}

func addFunc(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" && imagePath == "" {
		return fmt.Errorf("provide a description or --image")
	}

	language := lang
	if language == "" {
		language = root.App.Config().AI.Language
	}

	var results []models.ParseResult
	var err error
	if imagePath != "" {
		data, readErr := os.ReadFile(imagePath)
		if readErr != nil {
			return fmt.Errorf("reading image: %w", readErr)
		}
		results, err = root.App.Parser().ParseImage(cmd.Context(), data, mimeTypeFor(imagePath), language)
	} else {
		results, err = root.App.Parser().ParseText(cmd.Context(), text, language)
	}
	if err != nil {
		return err
	}

	now := time.Now()
	for _, result := range results {
		tx, err := result.ToTransaction(now)
		if err != nil {
			return err
		}
		if err := root.App.Store().AddTransaction(tx); err != nil {
			return err
		}
		// New categories coming back from the parser join the user's set.
		if err := root.App.Store().AddCategory(tx.Category); err != nil {
			root.Log.WithError(err).Warn("failed to register category")
		}
		cmd.Printf("Added %s: %s %s (%s)\n", tx.Type, tx.Amount.StringFixed(2), tx.Description, tx.Category)
	}
	return nil
}

func mimeTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
