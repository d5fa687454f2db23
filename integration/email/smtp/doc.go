// Package smtp delivers transactional email through a user-configured SMTP
// relay and verifies relay settings before they are saved.
//
// The package implements the email.Sender interface on top of a single-use
// session model: every send or verify resolves the stored settings into a
// complete transport configuration, opens its own connection, and closes it
// before returning. Nothing is pooled and nothing is retried.
//
// Basic usage:
//
//	import (
//		"context"
//
//		"github.com/lubomir-dlhy/immich/core/email"
//		"github.com/lubomir-dlhy/immich/integration/email/smtp"
//	)
//
//	client := smtp.New(smtp.Settings{
//		Host:     "mail.example.com",
//		Username: "immich",
//		Password: "app-password",
//	})
//
//	receipt, err := client.Send(ctx, email.Envelope{
//		From:    "Immich <noreply@example.com>",
//		To:      []string{"user@example.com"},
//		Subject: "Welcome to Immich",
//		HTML:    htmlBody,
//		Text:    textBody,
//	})
//
// # Settings Resolution
//
// Settings mirror what admins actually type into the server configuration
// form: only the host is usually present. Resolve fills in the rest:
//
//   - No port and no Secure flag: port 587 with a required STARTTLS upgrade.
//   - Secure=true and no port: port 465 with implicit TLS.
//   - Port 465 and no Secure flag: implicit TLS is inferred.
//   - Explicit values always win; Secure=false on port 465 stays plaintext.
//   - Credentials are attempted only when a username or password is set.
//
// Certificate verification is on unless IgnoreCertErrors is set, and every
// transport stage runs under a fixed 10-second timeout.
//
// # Verification
//
// Verify dials the relay, runs the greeting, the TLS negotiation, and AUTH
// when credentials are present, then closes the connection without sending
// anything. Failures come back as a *ConnectError carrying a stable machine
// code (auth, starttls, tls, dns, timeout, refused, connection, or smtp-NNN)
// plus the OS errno when one exists, so the settings UI can explain exactly
// what went wrong:
//
//	if err := client.Verify(ctx); err != nil {
//		var cerr *smtp.ConnectError
//		if errors.As(err, &cerr) {
//			// cerr.Code, cerr.Errno
//		}
//	}
//
// Verification logs a summary of the effective settings with the password
// replaced by a fixed placeholder; absent optional values are logged as
// "none". Raw credentials never reach the log output.
//
// # Environment Configuration
//
// NewFromEnv reads Settings from SMTP_* environment variables:
//
//	client, err := smtp.NewFromEnv(smtp.WithLogger(log))
package smtp
