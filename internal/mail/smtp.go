package mail

import (
	"bytes"
	"context"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig is the transport configuration. Credentials are externally
// supplied secrets only; there are no fallback literals anywhere.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// Configured reports whether credentials are present.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// smtpTransport delivers over SMTP with STARTTLS.
type smtpTransport struct {
	cfg    SMTPConfig
	client *gomail.Client
}

// NewSMTPTransport opens a transport for the given config. Missing
// credentials fail fast with an authentication-class error.
func NewSMTPTransport(cfg SMTPConfig) (Transport, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, Unknown("configure", err)
	}
	return &smtpTransport{cfg: cfg, client: client}, nil
}

// SMTPFactory returns a factory producing a fresh SMTP transport per send.
func SMTPFactory(cfg SMTPConfig) TransportFactory {
	return func() (Transport, error) {
		return NewSMTPTransport(cfg)
	}
}

func (t *smtpTransport) Send(ctx context.Context, msg Message) error {
	m, err := t.compose(msg)
	if err != nil {
		return err
	}
	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return classify("send", err)
	}
	return nil
}

// compose assembles the wire message. Any failure aborts the whole send; a
// message never goes out missing its attachment.
func (t *smtpTransport) compose(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(t.cfg.FromName, t.cfg.Username); err != nil {
		return nil, Unknown("compose", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, Unknown("compose", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	for _, a := range msg.Attachments {
		if err := m.AttachReader(a.Filename, bytes.NewReader(a.Content),
			gomail.WithFileContentType(gomail.ContentType(a.ContentType))); err != nil {
			return nil, Unknown("compose", err)
		}
	}
	return m, nil
}

func (t *smtpTransport) Verify(ctx context.Context) error {
	if err := t.client.DialWithContext(ctx); err != nil {
		return classify("verify", err)
	}
	return t.client.Close()
}

func (t *smtpTransport) Close() error {
	// DialAndSend closes its own connection; nothing held open here.
	return nil
}
