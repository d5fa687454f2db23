package smtp

import (
	"crypto/tls"
	"net"
	"strconv"
	"time"

	mail "gopkg.in/mail.v2"

	"github.com/lubomir-dlhy/immich/core/email"
)

// mail.v2 arms the connection deadline only after the server greeting has
// been read, so a relay that accepts the connection and never greets would
// block the dial with no bound. The dial wrapper covers that gap: the
// deadline is armed on the fresh connection, and Dial re-arms it once the
// greeting is through.
func init() {
	mail.NetDialTimeout = func(network, address string, timeout time.Duration) (net.Conn, error) {
		conn, err := net.DialTimeout(network, address, timeout)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		return conn, nil
	}
}

// Session is a single-use handle to one SMTP connection. It belongs to the
// verify or send call that opened it and must be closed exactly once before
// that call returns; sessions are never reused or shared between calls.
type Session struct {
	cfg    TransportConfig
	dialer *mail.Dialer
	conn   mail.SendCloser
	closed bool
}

// Open prepares a session for the given transport configuration. No network
// I/O happens until Verify or Send dials the relay.
func Open(cfg TransportConfig) *Session {
	var username, password string
	if cfg.Credentials != nil {
		username = cfg.Credentials.Username
		password = cfg.Credentials.Password
	}

	dialer := mail.NewDialer(cfg.Host, cfg.Port, username, password)
	dialer.SSL = cfg.ImplicitTLS
	dialer.Timeout = cfg.Timeouts.Connect
	// NewDialer defaults to reconnecting and replaying a send that fails
	// mid-transaction; a delivery here is one connection, one transaction.
	dialer.RetryFailure = false
	dialer.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: !cfg.VerifyServerCert,
	}
	if cfg.RequireStartTLS {
		dialer.StartTLSPolicy = mail.MandatoryStartTLS
	}

	return &Session{cfg: cfg, dialer: dialer}
}

// dial connects on first use: TCP connect, greeting, implicit TLS or a
// STARTTLS upgrade per the configuration, then AUTH when credentials are
// present. The dialer's deadline bounds the whole exchange, DNS resolution
// included.
func (s *Session) dial() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.conn != nil {
		return nil
	}

	conn, err := s.dialer.Dial()
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

// Verify runs the protocol handshake without sending a message, confirming
// the relay is reachable and accepts the configured credentials.
func (s *Session) Verify() error {
	return s.dial()
}

// Send delivers the envelope over this session's connection and returns a
// receipt carrying the generated Message-ID.
func (s *Session) Send(env email.Envelope) (email.Receipt, error) {
	if err := s.dial(); err != nil {
		return email.Receipt{}, err
	}

	id := email.NewMessageID(env.From)
	if err := mail.Send(s.conn, message(env, id)); err != nil {
		return email.Receipt{}, err
	}

	return email.Receipt{
		MessageID: id,
		Response:  "accepted by " + net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)),
		SentAt:    time.Now(),
	}, nil
}

// Close releases the connection. It is idempotent: the first call quits the
// SMTP session, later calls are no-ops, and closing a session that never
// dialed succeeds. A closed session cannot be reused; Verify and Send fail
// with ErrSessionClosed afterwards.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return conn.Close()
}

// message builds the MIME message for an envelope: multipart/alternative
// text and HTML bodies, plus one inline part per attachment embedded under
// its Content-ID so cid: references in the HTML resolve.
func message(env email.Envelope, messageID string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", env.From)
	m.SetHeader("To", env.To...)
	if env.ReplyTo != "" {
		m.SetHeader("Reply-To", env.ReplyTo)
	}
	m.SetHeader("Subject", env.Subject)
	m.SetHeader("Message-ID", messageID)

	switch {
	case env.Text != "" && env.HTML != "":
		m.SetBody("text/plain", env.Text)
		m.AddAlternative("text/html", env.HTML)
	case env.HTML != "":
		m.SetBody("text/html", env.HTML)
	default:
		m.SetBody("text/plain", env.Text)
	}

	for _, a := range env.Attachments {
		m.Embed(a.Path,
			mail.Rename(a.Filename),
			mail.SetHeader(map[string][]string{"Content-ID": {"<" + a.ContentID + ">"}}),
		)
	}

	return m
}
