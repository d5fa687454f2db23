package smtp

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/lubomir-dlhy/immich/core/config"
	"github.com/lubomir-dlhy/immich/core/email"
	"github.com/lubomir-dlhy/immich/core/logger"
)

// Client sends transactional email through an SMTP relay and verifies relay
// settings. It implements email.Sender. A Client is stateless: every call
// resolves a fresh transport configuration and opens its own single-use
// session, so it is safe for concurrent use.
type Client struct {
	settings Settings
	log      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for verification diagnostics and delivery
// debug lines. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client for the given settings. It is total: settings are
// completed via Resolve at call time and never validated here, so a Client
// can be constructed from whatever partial values the admin saved.
func New(settings Settings, opts ...Option) *Client {
	c := &Client{
		settings: settings,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromEnv creates a Client configured from SMTP_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	var settings Settings
	if err := config.Load(&settings); err != nil {
		return nil, err
	}
	return New(settings, opts...), nil
}

// Send delivers one envelope: it resolves the transport configuration,
// opens a session, performs a single SMTP transaction, and closes the
// session on every exit path. There is no retry and no batching; each call
// is an independent delivery attempt.
func (c *Client) Send(ctx context.Context, env email.Envelope) (email.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return email.Receipt{}, errors.Join(email.ErrFailedToSendEmail, err)
	}
	if err := env.Validate(); err != nil {
		return email.Receipt{}, err
	}

	cfg := c.settings.Resolve()

	session := Open(cfg)
	defer func() { _ = session.Close() }()

	receipt, err := session.Send(env)
	if err != nil {
		return email.Receipt{}, errors.Join(email.ErrFailedToSendEmail, err)
	}

	c.log.DebugContext(ctx, "email accepted for delivery",
		logger.Host(cfg.Host),
		logger.Port(cfg.Port),
		logger.MessageID(receipt.MessageID),
		logger.Recipients(env.To),
	)

	return receipt, nil
}

// Verify opens a session solely to run the protocol handshake, confirming
// the relay is reachable and the credentials are accepted. The settings
// summary is logged in redacted form; failures are classified into a
// ConnectError and logged before being returned.
func (c *Client) Verify(ctx context.Context) error {
	cfg := c.settings.Resolve()

	c.log.InfoContext(ctx, "verifying smtp connection",
		logger.Host(cfg.Host),
		logger.Port(cfg.Port),
		slog.Bool("implicit_tls", cfg.ImplicitTLS),
		slog.Bool("require_starttls", cfg.RequireStartTLS),
		logger.Optional("username", c.settings.Username),
		logger.Secret("password", c.settings.Password),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	session := Open(cfg)
	defer func() { _ = session.Close() }()

	if err := session.Verify(); err != nil {
		cerr := classify(err)
		c.log.ErrorContext(ctx, "smtp verification failed",
			logger.Host(cfg.Host),
			logger.Port(cfg.Port),
			logger.ErrorCode(cerr.Code),
			logger.Errno(cerr.Errno),
			logger.Error(cerr),
		)
		return cerr
	}

	c.log.InfoContext(ctx, "smtp connection verified",
		logger.Host(cfg.Host),
		logger.Port(cfg.Port),
	)
	return nil
}

// Verify checks the given settings without keeping a client around, for
// callers that validate a form submission and throw the result away.
func Verify(ctx context.Context, settings Settings, opts ...Option) error {
	return New(settings, opts...).Verify(ctx)
}
