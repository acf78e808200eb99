// Package dispatch orchestrates the "send invoice" action: validate the
// recipient, snapshot the current document into a PDF, base64-encode it and
// submit everything to the email endpoint in one request.
//
// One send may be in flight at a time. The guard is a busy flag, not a
// queue: a second call while one is running fails immediately with
// ErrSendInFlight and the caller re-enables its trigger when the first
// resolves. In-flight sends cannot be aborted; they resolve or hit the
// overall timeout.
package dispatch

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/pdf"
)

// ErrSendInFlight reports that a previous send has not resolved yet.
var ErrSendInFlight = errors.New("a send is already in flight")

// DefaultTimeout bounds one whole submission, PDF generation included.
const DefaultTimeout = 30 * time.Second

// Client submits invoices to the email endpoint.
type Client struct {
	endpoint string
	httpc    *http.Client
	pipeline *pdf.Pipeline
	timeout  time.Duration
	busy     atomic.Bool
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout overrides the overall submission ceiling.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a dispatch client posting to the given API base URL.
func NewClient(endpoint string, pipeline *pdf.Pipeline, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    http.DefaultClient,
		pipeline: pipeline,
		timeout:  DefaultTimeout,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Busy reports whether a send is currently in flight.
func (c *Client) Busy() bool {
	return c.busy.Load()
}

// sendEmailPayload is the wire schema of the submission endpoint.
type sendEmailPayload struct {
	To            string          `json:"to"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceType   string          `json:"invoiceType"`
	FromDetails   string          `json:"fromDetails"`
	ToDetails     string          `json:"toDetails"`
	InvoiceDate   string          `json:"invoiceDate"`
	Items         []model.Item    `json:"items"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Discount      decimal.Decimal `json:"discount"`
	Shipping      decimal.Decimal `json:"shipping"`
	ExtraNotes    string          `json:"extraNotes,omitempty"`
	Logo          string          `json:"logo,omitempty"`
	PDFAttachment string          `json:"pdfAttachment,omitempty"`
}

// Send validates, exports and submits one invoice. Validation failures
// return *model.ValidationError before any rendering or network work.
func (c *Client) Send(ctx context.Context, inv *model.Invoice, to string) error {
	if strings.TrimSpace(to) == "" {
		return model.NewValidationError("to", nil, "required", "recipient email address is required")
	}
	if !strings.Contains(to, "@") {
		return model.NewValidationError("to", to, "email", "recipient email address is not valid")
	}
	if strings.TrimSpace(inv.FromDetails) == "" {
		return model.NewValidationError("fromDetails", nil, "required", "sender details are required")
	}
	if strings.TrimSpace(inv.ToDetails) == "" {
		return model.NewValidationError("toDetails", nil, "required", "recipient details are required")
	}

	if !c.busy.CompareAndSwap(false, true) {
		return ErrSendInFlight
	}
	defer c.busy.Store(false)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.pipeline.Export(ctx, inv)
	if err != nil {
		return err
	}

	payload := sendEmailPayload{
		To:            to,
		InvoiceNumber: inv.Number,
		InvoiceType:   string(inv.Type),
		FromDetails:   strings.TrimSpace(inv.FromDetails),
		ToDetails:     strings.TrimSpace(inv.ToDetails),
		InvoiceDate:   inv.Date.Format("2006-01-02"),
		Items:         inv.Items,
		TaxRate:       inv.TaxRate,
		Discount:      inv.Discount,
		Shipping:      inv.Shipping,
		ExtraNotes:    inv.Notes,
		Logo:          inv.Logo,
		PDFAttachment: base64.StdEncoding.EncodeToString(result.PDF),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v1/send-email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("email submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("email submission failed: %s", apiErr.Error)
		}
		return fmt.Errorf("email submission failed: status %d", resp.StatusCode)
	}

	c.log.Info().Str("to", to).Str("invoice", inv.Number).Msg("invoice submitted")
	return nil
}
