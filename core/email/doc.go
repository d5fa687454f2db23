// Package email defines the provider-independent pieces of outbound mail:
// the Sender interface, the Envelope that describes one message, and the
// Receipt acknowledging its acceptance.
//
// Concrete transports live under integration/email (SMTP relay, Postmark);
// message bodies come from core/email/templates. This package only holds
// what every provider shares, so composition code stays identical no matter
// how delivery happens.
//
// # Sending
//
// A Sender performs exactly one delivery attempt per call. It never
// retries, batches, or queues; callers own those policies:
//
//	type Sender interface {
//		Send(ctx context.Context, env Envelope) (Receipt, error)
//	}
//
// Typical composition renders a template, wraps it in an envelope, and
// hands it to whichever Sender was wired in:
//
//	doc, err := templates.Render(ctx, tmpl)
//	if err != nil {
//		return err
//	}
//
//	receipt, err := sender.Send(ctx, email.Envelope{
//		From:    "Immich <noreply@example.com>",
//		To:      []string{"user@example.com"},
//		Subject: tmpl.Subject(),
//		HTML:    doc.HTML,
//		Text:    doc.Text,
//	})
//
// # Envelopes
//
// Envelope fields accept both bare addresses and the
// "Display Name <addr@host>" form. Validate rejects malformed envelopes
// before any connection is opened; every provider calls it first:
//
//	if err := env.Validate(); err != nil {
//		// errors.Is(err, email.ErrInvalidParams) == true
//	}
//
// Attachments reference local files and carry a ContentID so HTML bodies
// can embed them through cid: URLs. Providers attach them inline.
//
// # Receipts
//
// A Receipt is a terminal value: the message identifier, the provider's
// acknowledgement, and the acceptance time. Nothing in the system tracks a
// message after its receipt is returned.
//
// # Development Mode
//
// DevSender implements Sender without any network: each message is written
// to a directory as an HTML file, a text file, and a JSON metadata sidecar,
// so emails can be inspected in a browser during development:
//
//	sender := email.NewDevSender("./dev_emails")
//	receipt, err := sender.Send(ctx, env)
//	// ./dev_emails/2025_08_25_143052_welcome_to_immich.html
//	// ./dev_emails/2025_08_25_143052_welcome_to_immich.txt
//	// ./dev_emails/2025_08_25_143052_welcome_to_immich.json
//
// # Errors
//
// All providers share three sentinels: ErrInvalidConfig for construction
// failures, ErrInvalidParams for rejected envelopes, and
// ErrFailedToSendEmail for transport or provider failures. Providers wrap
// them with detail via errors.Join, so errors.Is works on the sentinel
// while the message keeps the underlying cause.
package email
