package mail

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

const (
	// DefaultAttempts is the delivery attempt ceiling.
	DefaultAttempts = 3
	// DefaultBackoff is the base delay before the first retry; it doubles
	// on each subsequent one.
	DefaultBackoff = 2 * time.Second
)

// Sender delivers messages through a transport factory, retrying transient
// failures with exponential backoff and failing fast on authentication
// errors.
type Sender struct {
	factory  TransportFactory
	attempts uint64
	backoff  time.Duration
	log      zerolog.Logger
}

// SenderOption configures a Sender.
type SenderOption func(*Sender)

// WithAttempts overrides the attempt ceiling.
func WithAttempts(n uint64) SenderOption {
	return func(s *Sender) { s.attempts = n }
}

// WithBackoff overrides the base backoff delay.
func WithBackoff(d time.Duration) SenderOption {
	return func(s *Sender) { s.backoff = d }
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) SenderOption {
	return func(s *Sender) { s.log = l }
}

// NewSender creates a retrying sender over the given transport factory.
func NewSender(factory TransportFactory, opts ...SenderOption) *Sender {
	s := &Sender{
		factory:  factory,
		attempts: DefaultAttempts,
		backoff:  DefaultBackoff,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// attempts-1 feeds retry.WithMaxRetries; a zero ceiling would underflow
	// into unbounded retries.
	if s.attempts == 0 {
		s.attempts = 1
	}
	return s
}

// Send delivers one message. Transient failures are retried up to the
// attempt ceiling; authentication and unknown failures return immediately.
// The returned error is always a tagged *SendError.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	transport, err := s.factory()
	if err != nil {
		se := classify("acquire", err)
		s.log.Error().Str("kind", se.Kind.String()).Err(se).Msg("mail transport unavailable")
		return se
	}
	defer transport.Close()

	attempt := 0
	b := retry.WithMaxRetries(s.attempts-1, retry.NewExponential(s.backoff))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		sendErr := transport.Send(ctx, msg)
		if sendErr == nil {
			if attempt > 1 {
				s.log.Info().Int("attempt", attempt).Str("to", msg.To).Msg("message delivered after retry")
			}
			return nil
		}

		se := classify("send", sendErr)
		switch se.Kind {
		case KindTransient:
			s.log.Warn().Int("attempt", attempt).Str("kind", se.Kind.String()).Err(se).Msg("transient delivery failure")
			return retry.RetryableError(se)
		case KindAuth:
			s.log.Error().Str("kind", se.Kind.String()).Err(se).Msg("authentication failure, not retrying")
			return se
		default:
			s.log.Error().Str("kind", se.Kind.String()).Err(se).Msg("delivery failed")
			return se
		}
	})
	if err == nil {
		return nil
	}

	var se *SendError
	if !errors.As(err, &se) {
		// Context expiry surfaces from retry.Do directly.
		se = classify("send", err)
	}
	return se
}
