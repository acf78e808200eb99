package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The notification email is a summary, deliberately distinct from the PDF:
// it carries the provider, date, reference number and total only, and is
// always regenerated by whoever sends it rather than trusted from a client.

const notificationDateFormat = "January 2, 2006"

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Type}} - {{.Number}}</title>
  <style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa; }
    .email-container { background-color: white; padding: 40px; border-radius: 12px; border: 1px solid #e9ecef; }
    .header { text-align: center; border-bottom: 3px solid #007bff; padding-bottom: 25px; margin-bottom: 35px; }
    .header h1 { color: #007bff; margin: 0; font-size: 32px; font-weight: 600; }
    .detail-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #dee2e6; }
    .detail-label { font-weight: 600; color: #495057; }
    .total-section { background: #007bff; color: white; padding: 30px; border-radius: 10px; text-align: center; margin: 30px 0; }
    .total-amount { font-size: 36px; font-weight: 700; margin: 15px 0; }
    .footer { text-align: center; margin-top: 40px; padding-top: 25px; border-top: 2px solid #e9ecef; color: #6c757d; }
  </style>
</head>
<body>
  <div class="email-container">
    <div class="header">
      <h1>{{.Type}}</h1>
      <p>Document #{{.Number}}</p>
    </div>
    <p>Dear {{.ClientName}},</p>
    <p>We are pleased to present your {{.TypeLower}} for the services provided. Please find the detailed PDF document attached.</p>
    <div class="invoice-details">
      <div class="detail-row"><span class="detail-label">Service Provider:</span><span>{{.CompanyName}}</span></div>
      <div class="detail-row"><span class="detail-label">Document Date:</span><span>{{.DateText}}</span></div>
      <div class="detail-row"><span class="detail-label">Reference Number:</span><span>{{.Number}}</span></div>
    </div>
    <div class="total-section">
      <div>Total Amount Due</div>
      <div class="total-amount">{{.TotalText}}</div>
    </div>
    <p>Should you have any questions regarding this {{.TypeLower}}, please do not hesitate to contact us.</p>
    <div class="footer">
      <div>Best regards,<br><strong>{{.CompanyName}}</strong></div>
      <div style="font-size: 13px; font-style: italic; margin-top: 20px;">This is an automated message. Please do not reply directly to this email address.</div>
    </div>
  </div>
</body>
</html>
`))

// NotificationHTML builds the summary email body.
func NotificationHTML(invoiceType, invoiceNumber, fromDetails, toDetails string, total decimal.Decimal, invoiceDate time.Time) (string, error) {
	data := struct {
		Type        string
		TypeLower   string
		Number      string
		CompanyName string
		ClientName  string
		DateText    string
		TotalText   string
	}{
		Type:        invoiceType,
		TypeLower:   strings.ToLower(invoiceType),
		Number:      invoiceNumber,
		CompanyName: headLine(fromDetails, "Company Name"),
		ClientName:  headLine(toDetails, "Client Name"),
		DateText:    invoiceDate.Format(notificationDateFormat),
		TotalText:   "$" + total.StringFixed(2),
	}

	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Subject builds the email subject line.
func Subject(invoiceType, invoiceNumber, fromDetails string) string {
	return fmt.Sprintf("%s #%s - %s", invoiceType, invoiceNumber, headLine(fromDetails, "Invoice"))
}

func headLine(s, fallback string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
