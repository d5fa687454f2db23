// Package postmark delivers transactional email through Postmark's API as
// an alternative to running the SMTP transport.
//
// The package implements the core email.Sender interface, so provider
// selection is a wiring decision: composition code renders templates and
// builds envelopes the same way regardless of whether delivery goes through
// an SMTP relay or Postmark.
//
// Basic usage:
//
//	import (
//		"context"
//
//		"github.com/lubomir-dlhy/immich/core/email"
//		"github.com/lubomir-dlhy/immich/integration/email/postmark"
//	)
//
//	client, err := postmark.New(postmark.Config{
//		ServerToken: "your-server-token",
//	})
//	if err != nil {
//		return err
//	}
//
//	receipt, err := client.Send(ctx, email.Envelope{
//		From:    "Immich <noreply@example.com>",
//		To:      []string{"user@example.com"},
//		Subject: "Welcome to Immich",
//		HTML:    htmlBody,
//		Text:    textBody,
//	})
//
// # Inline Attachments
//
// Envelope attachments are read from disk, base64-encoded, and submitted
// with a cid-prefixed ContentID. HTML bodies referencing them through
// cid: URLs render the images inline, matching the SMTP transport's
// behavior.
//
// # Tracking
//
// TrackOpens is enabled and TrackLinks is set to HtmlOnly, so plain-text
// content is never rewritten by the provider.
//
// # Configuration
//
//	type Config struct {
//		ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
//		AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
//	}
//
// NewFromEnv loads the tokens from the environment; MustNewClient panics on
// invalid configuration for wiring during startup:
//
//	sender := postmark.MustNewClient(cfg)
//
// # Errors
//
// Failed deliveries wrap email.ErrFailedToSendEmail, including responses
// Postmark rejects with a non-zero ErrorCode, so callers can branch on the
// sentinel regardless of provider:
//
//	if errors.Is(err, email.ErrFailedToSendEmail) {
//		// schedule a retry, notify, etc.
//	}
package postmark
