// Package mail delivers invoice notifications over an injected transport
// with bounded, classified retries.
//
// The transport is obtained through a factory per send rather than a
// module-scope singleton, so tests substitute fakes and no authenticated
// connection outlives its send.
package mail

import "context"

// Attachment is one file carried by a message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is a fully assembled outbound email.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Transport is a configured, authenticated delivery channel. Send errors
// must be tagged SendErrors so the retrying sender can classify them.
type Transport interface {
	Send(ctx context.Context, msg Message) error
	Verify(ctx context.Context) error
	Close() error
}

// TransportFactory produces a fresh transport for one send or health check.
type TransportFactory func() (Transport, error)
