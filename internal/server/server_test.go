package server_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoicemate/internal/mail"
	"github.com/rezonia/invoicemate/internal/server"
)

// captureTransport accepts every message and records it.
type captureTransport struct {
	sent []mail.Message
	err  error
}

func (c *captureTransport) Send(ctx context.Context, msg mail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *captureTransport) Verify(ctx context.Context) error { return c.err }
func (c *captureTransport) Close() error                     { return nil }

func newTestServer(t *captureTransport) *server.Server {
	return server.NewServer(&server.Config{Address: ":0"},
		server.WithTransportFactory(func() (mail.Transport, error) { return t, nil }),
	)
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"to":            "client@example.com",
		"invoiceNumber": "042",
		"invoiceType":   "Invoice",
		"fromDetails":   "Acme Corp\n1 Main St",
		"toDetails":     "Client Co\n2 Side St",
		"invoiceDate":   "2026-03-05",
		"items": []map[string]interface{}{
			{"id": "a", "name": "Widget", "price": "100", "quantity": 1, "amount": "100"},
			{"id": "b", "name": "Gadget", "price": "100", "quantity": 1, "amount": "100"},
		},
		"taxRate":  "10",
		"discount": "20",
		"shipping": "15",
	}
}

func postJSON(t *testing.T, srv *server.Server, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSendEmail_Success(t *testing.T) {
	ct := &captureTransport{}
	srv := newTestServer(ct)

	w := postJSON(t, srv, "/api/v1/send-email", validPayload())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.SendEmailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email sent successfully", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
	assert.NotEmpty(t, resp.Duration)

	require.Len(t, ct.sent, 1)
	msg := ct.sent[0]
	assert.Equal(t, "client@example.com", msg.To)
	assert.Equal(t, "Invoice #042 - Acme Corp", msg.Subject)
}

func TestSendEmail_RecomputesTotals(t *testing.T) {
	ct := &captureTransport{}
	srv := newTestServer(ct)

	// Subtotal 200, discount 20, tax 10% of 180 = 18, shipping 15 -> 213.
	// Any client-side total is ignored; the body carries the server's number.
	payload := validPayload()
	payload["total"] = "999999"

	w := postJSON(t, srv, "/api/v1/send-email", payload)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, ct.sent, 1)
	assert.Contains(t, ct.sent[0].HTML, "$213.00")
	assert.NotContains(t, ct.sent[0].HTML, "999999")
	assert.Contains(t, ct.sent[0].HTML, "March 5, 2026")
}

func TestSendEmail_MissingFields(t *testing.T) {
	srv := newTestServer(&captureTransport{})

	payload := validPayload()
	delete(payload, "to")
	delete(payload, "toDetails")
	delete(payload, "items")

	w := postJSON(t, srv, "/api/v1/send-email", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields: to, toDetails, items", resp.Error)
}

func TestSendEmail_EmptyItemsListAccepted(t *testing.T) {
	// A present-but-empty items list passes validation; only a missing list
	// fails it. Totals degrade to the adjustments alone.
	ct := &captureTransport{}
	srv := newTestServer(ct)

	payload := validPayload()
	payload["items"] = []map[string]interface{}{}
	payload["taxRate"] = "0"
	payload["discount"] = "10"
	payload["shipping"] = "5"

	w := postJSON(t, srv, "/api/v1/send-email", payload)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, ct.sent, 1)
	assert.Contains(t, ct.sent[0].HTML, "$-5.00")
}

func TestSendEmail_Attachment(t *testing.T) {
	ct := &captureTransport{}
	srv := newTestServer(ct)

	pdfContent := []byte("%PDF-1.4 fake")
	payload := validPayload()
	payload["pdfAttachment"] = base64.StdEncoding.EncodeToString(pdfContent)

	w := postJSON(t, srv, "/api/v1/send-email", payload)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, ct.sent, 1)
	require.Len(t, ct.sent[0].Attachments, 1)

	att := ct.sent[0].Attachments[0]
	assert.Equal(t, "invoice-042.pdf", att.Filename)
	assert.Equal(t, "application/pdf", att.ContentType)
	assert.Equal(t, pdfContent, att.Content)
}

func TestSendEmail_BadAttachment(t *testing.T) {
	srv := newTestServer(&captureTransport{})

	payload := validPayload()
	payload["pdfAttachment"] = "not base64!!!"

	w := postJSON(t, srv, "/api/v1/send-email", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "base64")
}

func TestSendEmail_DeliveryFailure(t *testing.T) {
	ct := &captureTransport{err: errors.New("rejected")}
	srv := newTestServer(ct)

	w := postJSON(t, srv, "/api/v1/send-email", validPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send email - check server logs for details", resp.Error)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&captureTransport{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestEmailHealth(t *testing.T) {
	srv := newTestServer(&captureTransport{})

	req := httptest.NewRequest(http.MethodGet, "/health/email", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestEmailHealth_Unhealthy(t *testing.T) {
	srv := newTestServer(&captureTransport{err: errors.New("connect timeout")})

	req := httptest.NewRequest(http.MethodGet, "/health/email", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}

func TestConfig_PresenceOnly(t *testing.T) {
	cfg := &server.Config{
		Address: ":0",
		SMTP: mail.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "mailer@example.com",
			Password: "hunter2",
		},
	}
	srv := server.NewServer(cfg,
		server.WithTransportFactory(func() (mail.Transport, error) { return &captureTransport{}, nil }),
	)

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"emailUser":"Set"`)
	assert.Contains(t, body, `"emailPass":"Set"`)
	// The endpoint reports presence only, never credential values.
	assert.NotContains(t, body, "hunter2")
	assert.NotContains(t, body, "mailer@example.com")
}
