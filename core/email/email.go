package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender delivers a prepared envelope through a concrete provider.
// One call maps to exactly one delivery attempt: implementations must not
// retry, batch, or queue.
type Sender interface {
	Send(ctx context.Context, env Envelope) (Receipt, error)
}

// Attachment is a local file attached to a message inline. ContentID lets
// the HTML body reference the image through a cid: URL; mail clients resolve
// the reference only when the attached part carries the matching Content-ID.
type Attachment struct {
	Filename  string
	Path      string
	ContentID string
}

// Envelope carries one outbound message. From and ReplyTo accept both bare
// addresses and the "Display Name <addr@host>" form.
type Envelope struct {
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Validate reports the first invalid field. Providers call it before opening
// any connection so malformed envelopes never reach the wire.
func (e Envelope) Validate() error {
	if _, err := mail.ParseAddress(e.From); err != nil {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if len(e.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}
	for _, to := range e.To {
		if _, err := mail.ParseAddress(to); err != nil {
			return fmt.Errorf("%w: invalid recipient %q", ErrInvalidParams, to)
		}
	}
	if e.ReplyTo != "" {
		if _, err := mail.ParseAddress(e.ReplyTo); err != nil {
			return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
		}
	}
	if e.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if e.HTML == "" && e.Text == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidParams)
	}
	for _, a := range e.Attachments {
		if a.Filename == "" {
			return fmt.Errorf("%w: attachment filename is required", ErrInvalidParams)
		}
		if a.Path == "" {
			return fmt.Errorf("%w: attachment %q: path is required", ErrInvalidParams, a.Filename)
		}
		if a.ContentID == "" {
			return fmt.Errorf("%w: attachment %q: content id is required", ErrInvalidParams, a.Filename)
		}
	}
	return nil
}

// Receipt confirms that a provider accepted a message for delivery. It is a
// terminal value handed back to the caller; nothing tracks the message
// afterwards.
type Receipt struct {
	// MessageID is the RFC 5322 identifier assigned to the outgoing message.
	MessageID string
	// Response is the provider's acknowledgement, opaque to callers.
	Response string
	// SentAt records when the provider accepted the message.
	SentAt time.Time
}

// NewMessageID returns a globally unique RFC 5322 Message-ID scoped to the
// sender's domain, falling back to localhost when the From address does not
// parse.
func NewMessageID(from string) string {
	domain := "localhost"
	if addr, err := mail.ParseAddress(from); err == nil {
		if at := strings.LastIndex(addr.Address, "@"); at >= 0 && at+1 < len(addr.Address) {
			domain = addr.Address[at+1:]
		}
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
