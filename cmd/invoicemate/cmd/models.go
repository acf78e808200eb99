package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoicemate/internal/items"
	"github.com/rezonia/invoicemate/internal/model"
)

// invoiceFile is the on-disk invoice schema consumed by generate and send.
// It matches the submission endpoint's wire shape; item amounts are derived
// here, never read from the file.
type invoiceFile struct {
	InvoiceType   string          `json:"invoiceType"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"`
	Terms         string          `json:"terms"`
	FromDetails   string          `json:"fromDetails"`
	ToDetails     string          `json:"toDetails"`
	Items         []itemFile      `json:"items"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Discount      decimal.Decimal `json:"discount"`
	Shipping      decimal.Decimal `json:"shipping"`
	ExtraNotes    string          `json:"extraNotes"`
	Logo          string          `json:"logo"`
}

type itemFile struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// loadInvoice reads and converts an invoice file into a document.
func loadInvoice(path string) (*model.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f invoiceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid invoice file %s: %w", path, err)
	}

	inv := model.Invoice{
		Type:        model.InvoiceType(f.InvoiceType),
		Number:      f.InvoiceNumber,
		Terms:       model.Terms(f.Terms),
		FromDetails: f.FromDetails,
		ToDetails:   f.ToDetails,
		TaxRate:     f.TaxRate,
		Discount:    f.Discount,
		Shipping:    f.Shipping,
		Notes:       f.ExtraNotes,
		Logo:        f.Logo,
	}
	if inv.Type == "" {
		inv.Type = model.TypeInvoice
	} else if !inv.Type.Valid() {
		return nil, fmt.Errorf("unknown invoice type %q", f.InvoiceType)
	}
	if inv.Number == "" {
		inv.Number = "001"
	}

	if f.InvoiceDate != "" {
		d, err := time.Parse("2006-01-02", f.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid invoiceDate %q: %w", f.InvoiceDate, err)
		}
		inv.Date = d
	} else {
		inv.Date = time.Now().UTC()
	}

	// The store applies the same defaults and amount recomputation the
	// editor uses; amounts are derived, never read from the file.
	store := items.NewStore(items.AllowEmpty)
	for _, it := range f.Items {
		added := store.Add()
		store.SetName(added.ID, it.Name)
		store.SetUnitPrice(added.ID, it.Price)
		if it.Quantity > 1 {
			store.SetQuantity(added.ID, it.Quantity)
		}
	}
	inv.Items = store.Items()

	return &inv, nil
}
