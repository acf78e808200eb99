package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rezonia/invoicemate/internal/render"
)

var (
	version = "1.0.0"

	// Global flags
	verbose     bool
	variantName string
)

var rootCmd = &cobra.Command{
	Use:   "invoicemate",
	Short: "Create, export and send invoices",
	Long: `Invoicemate is a CLI tool for authoring invoice documents.

Supports:
  - Rendering documents in a classic ledger or modern card layout
  - Exporting A4 PDFs named invoice-{number}.pdf
  - Emailing the PDF through the submission API

Examples:
  # Export a PDF from an invoice file
  invoicemate generate invoice.json

  # Export using the modern layout
  invoicemate generate invoice.json --variant modern

  # Email an invoice
  invoicemate send invoice.json --to client@example.com

  # Start the HTTP API
  invoicemate serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&variantName, "variant", "classic", "Document layout (classic, modern)")
}

func selectedVariant() (render.Variant, error) {
	switch render.Variant(variantName) {
	case render.Classic:
		return render.Classic, nil
	case render.Modern:
		return render.Modern, nil
	}
	return "", fmt.Errorf("unknown variant %q (want classic or modern)", variantName)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
