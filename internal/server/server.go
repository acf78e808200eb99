// Package server exposes the email submission endpoint and the operational
// diagnostics over HTTP. The server never trusts client arithmetic: totals
// are recomputed from the submitted items and rates, and the notification
// body is regenerated here rather than echoing any client preview HTML.
package server

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/rezonia/invoicemate/internal/mail"
	"github.com/rezonia/invoicemate/internal/totals"
)

// Config holds server configuration
type Config struct {
	Address      string
	SMTP         mail.SMTPConfig
	SendTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config  *Config
	router  *gin.Engine
	factory mail.TransportFactory
	sender  *mail.Sender
	log     zerolog.Logger
}

// Option configures a Server beyond its Config, mainly for tests.
type Option func(*Server)

// WithTransportFactory substitutes the mail transport factory.
func WithTransportFactory(f mail.TransportFactory) Option {
	return func(s *Server) { s.factory = f }
}

// WithSender substitutes the retrying sender.
func WithSender(snd *mail.Sender) Option {
	return func(s *Server) { s.sender = snd }
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// NewServer creates a new API server
func NewServer(config *Config, opts ...Option) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.SendTimeout == 0 {
		config.SendTimeout = 30 * time.Second
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:  config,
		router:  router,
		factory: mail.SMTPFactory(config.SMTP),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sender == nil {
		s.sender = mail.NewSender(s.factory, mail.WithLogger(s.log))
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Diagnostics
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/health/email", s.handleEmailHealth)
	s.router.GET("/config", s.handleConfig)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/send-email", s.handleSendEmail)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSendEmail(c *gin.Context) {
	start := time.Now()

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if missing := missingFields(err); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Missing required fields: " + strings.Join(missing, ", "),
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// Recompute totals from the submitted items and rates; the client's
	// total is never used.
	t := totals.Calculate(req.ModelItems(), req.TaxRate, req.Discount, req.Shipping)

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		invoiceDate = time.Now().UTC()
	}

	html, err := mail.NotificationHTML(req.InvoiceType, req.InvoiceNumber, req.FromDetails, req.ToDetails, t.Total, invoiceDate)
	if err != nil {
		s.log.Error().Err(err).Msg("notification rendering failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build notification email"})
		return
	}

	var attachments []mail.Attachment
	if req.PDFAttachment != "" {
		content, err := base64.StdEncoding.DecodeString(req.PDFAttachment)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "pdfAttachment is not valid base64"})
			return
		}
		attachments = append(attachments, mail.Attachment{
			Filename:    strings.ToLower(req.InvoiceType) + "-" + req.InvoiceNumber + ".pdf",
			Content:     content,
			ContentType: "application/pdf",
		})
	}

	msg := mail.Message{
		To:          req.To,
		Subject:     mail.Subject(req.InvoiceType, req.InvoiceNumber, req.FromDetails),
		HTML:        html,
		Attachments: attachments,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.config.SendTimeout)
	defer cancel()

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("to", req.To).Msg("email delivery failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Failed to send email - check server logs for details",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Duration:  durationText(start),
		})
		return
	}

	c.JSON(http.StatusOK, SendEmailResponse{
		Message:   "Email sent successfully",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Duration:  durationText(start),
	})
}

func (s *Server) handleEmailHealth(c *gin.Context) {
	transport, err := s.factory()
	if err != nil {
		s.unhealthy(c, err)
		return
	}
	defer transport.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := transport.Verify(ctx); err != nil {
		s.unhealthy(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Email service is working",
		"emailUser": presence(s.config.SMTP.Username),
		"emailPass": presence(s.config.SMTP.Password),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) unhealthy(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":    "unhealthy",
		"message":   "Email service is not working",
		"error":     err.Error(),
		"emailUser": presence(s.config.SMTP.Username),
		"emailPass": presence(s.config.SMTP.Password),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleConfig echoes credential presence only, never values.
func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"emailUser": presence(s.config.SMTP.Username),
		"emailPass": presence(s.config.SMTP.Password),
		"smtpHost":  presence(s.config.SMTP.Host),
		"smtpPort":  strconv.Itoa(s.config.SMTP.Port),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func presence(v string) string {
	if v != "" {
		return "Set"
	}
	return "Not set"
}

func durationText(start time.Time) string {
	return strconv.FormatInt(time.Since(start).Milliseconds(), 10) + "ms"
}

// requiredOrder fixes the order missing fields are reported in.
var requiredOrder = []struct {
	field string
	json  string
}{
	{"To", "to"},
	{"InvoiceNumber", "invoiceNumber"},
	{"InvoiceType", "invoiceType"},
	{"FromDetails", "fromDetails"},
	{"ToDetails", "toDetails"},
	{"Items", "items"},
}

// missingFields maps binding failures on required fields back to their JSON
// names, in submission order.
func missingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			failed[fe.Field()] = true
		}
	}

	var missing []string
	for _, f := range requiredOrder {
		if failed[f.field] {
			missing = append(missing, f.json)
		}
	}
	return missing
}
