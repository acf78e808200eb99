package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoicemate/internal/pdf"
	"github.com/rezonia/invoicemate/internal/render"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate <invoice.json>",
	Short: "Export an invoice file as an A4 PDF",
	Long: `Render an invoice file and export it as a paginated A4 PDF.

The output file defaults to invoice-{invoiceNumber}.pdf in the current
directory.

Examples:
  # Export with the default classic layout
  invoicemate generate invoice.json

  # Export the modern layout to a chosen path
  invoicemate generate invoice.json --variant modern -o out.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOut, "output", "o", "", "Output path (default invoice-{number}.pdf)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	variant, err := selectedVariant()
	if err != nil {
		return err
	}

	inv, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	renderer, err := render.New(variant)
	if err != nil {
		return err
	}
	pipeline := pdf.NewPipeline(renderer)

	printVerbose("exporting %s (%d items, variant=%s)\n", inv.Number, len(inv.Items), variant)

	result, err := pipeline.Export(context.Background(), inv)
	if err != nil {
		return err
	}

	out := generateOut
	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.PDF, 0o644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d pages, %d bytes)\n", out, result.Pages, len(result.PDF))
	return nil
}
