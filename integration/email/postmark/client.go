package postmark

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrz1836/postmark"

	"github.com/lubomir-dlhy/immich/core/config"
	"github.com/lubomir-dlhy/immich/core/email"
	"github.com/lubomir-dlhy/immich/core/logger"
)

// Client delivers transactional email through Postmark's API. It implements
// email.Sender and is safe for concurrent use.
type Client struct {
	client *postmark.Client
	log    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for delivery debug lines. Defaults to a
// no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Postmark-backed sender. The server token is required; the
// account token is optional and only needed for account-level endpoints.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", email.ErrInvalidConfig)
	}

	c := &Client{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNewClient creates a Postmark client that panics on invalid config,
// for wiring during startup where a broken provider should stop the
// process.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// NewFromEnv creates a Client configured from POSTMARK_* environment
// variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Send implements email.Sender on top of Postmark's send endpoint.
// Attachments are read from disk and submitted inline under their
// Content-ID so cid: references in the HTML resolve. Tracking covers opens
// and HTML link clicks only, leaving plain-text content unrewritten.
func (c *Client) Send(ctx context.Context, env email.Envelope) (email.Receipt, error) {
	if err := env.Validate(); err != nil {
		return email.Receipt{}, err
	}

	msg := postmark.Email{
		From:       env.From,
		To:         strings.Join(env.To, ","),
		ReplyTo:    env.ReplyTo,
		Subject:    env.Subject,
		HTMLBody:   env.HTML,
		TextBody:   env.Text,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	}

	for _, a := range env.Attachments {
		attachment, err := inlineAttachment(a)
		if err != nil {
			return email.Receipt{}, errors.Join(email.ErrFailedToSendEmail, err)
		}
		msg.Attachments = append(msg.Attachments, attachment)
	}

	resp, err := c.client.SendEmail(ctx, msg)
	if err != nil {
		return email.Receipt{}, errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return email.Receipt{}, errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}

	sentAt := resp.SubmittedAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	c.log.DebugContext(ctx, "email accepted by postmark",
		logger.MessageID(resp.MessageID),
		logger.Recipients(env.To),
	)

	return email.Receipt{
		MessageID: resp.MessageID,
		Response:  resp.Message,
		SentAt:    sentAt,
	}, nil
}

// inlineAttachment reads the file behind an attachment and converts it to
// Postmark's representation: base64 content plus a cid-prefixed ContentID.
func inlineAttachment(a email.Attachment) (postmark.Attachment, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return postmark.Attachment{}, fmt.Errorf("read attachment %q: %w", a.Filename, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(a.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return postmark.Attachment{
		Name:        a.Filename,
		Content:     base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
		ContentID:   "cid:" + a.ContentID,
	}, nil
}
