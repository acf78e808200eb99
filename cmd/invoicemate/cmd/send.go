package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoicemate/internal/dispatch"
	"github.com/rezonia/invoicemate/internal/pdf"
	"github.com/rezonia/invoicemate/internal/render"
)

var (
	sendTo      string
	sendAPI     string
	sendTimeout time.Duration
)

var sendCmd = &cobra.Command{
	Use:   "send <invoice.json>",
	Short: "Email an invoice through the submission API",
	Long: `Export an invoice as a PDF and submit it to the email endpoint.

The PDF is generated locally and attached to the submission; the server
rebuilds the notification body and recomputes totals from the submitted
items.

Examples:
  invoicemate send invoice.json --to client@example.com
  invoicemate send invoice.json --to client@example.com --api http://invoices.internal:8080`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&sendTo, "to", "", "Recipient email address (required)")
	sendCmd.Flags().StringVar(&sendAPI, "api", "http://localhost:8080", "Submission API base URL")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", dispatch.DefaultTimeout, "Overall submission timeout")
	_ = sendCmd.MarkFlagRequired("to")
}

func runSend(cmd *cobra.Command, args []string) error {
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

	client := dispatch.NewClient(sendAPI, pdf.NewPipeline(renderer),
		dispatch.WithTimeout(sendTimeout),
		dispatch.WithLogger(newLogger()),
	)

	printVerbose("sending %s to %s via %s\n", inv.Number, sendTo, sendAPI)

	if err := client.Send(context.Background(), inv, sendTo); err != nil {
		return err
	}

	fmt.Printf("Sent %s #%s to %s\n", inv.Type, inv.Number, sendTo)
	return nil
}
