package smtp

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"syscall"

	mail "gopkg.in/mail.v2"
)

// Machine-readable failure classes carried by ConnectError.Code. SMTP
// rejections that are not authentication failures use the dynamic form
// "smtp-NNN" with the server's reply code.
const (
	CodeAuth       = "auth"
	CodeStartTLS   = "starttls"
	CodeTLS        = "tls"
	CodeDNS        = "dns"
	CodeTimeout    = "timeout"
	CodeRefused    = "refused"
	CodeConnection = "connection"
)

// ErrSessionClosed marks Verify or Send calls on a session that was already
// closed. Sessions are single-use: open a new one per operation.
var ErrSessionClosed = errors.New("smtp: session is closed")

// ConnectError explains why a relay could not be reached or rejected the
// session: a human-readable message, a stable machine code for the settings
// UI, and the OS error number when one exists.
type ConnectError struct {
	// Code classifies the failure: auth, starttls, tls, dns, timeout,
	// refused, connection, or smtp-NNN.
	Code string

	// Errno is the OS-level error number behind the failure, zero when the
	// failure was not a syscall error.
	Errno int

	// Err is the underlying cause.
	Err error
}

func (e *ConnectError) Error() string {
	if e.Err == nil {
		return "smtp: connection failed"
	}
	return "smtp: " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error { return e.Err }

// classify wraps a handshake failure in a ConnectError. Protocol rejections
// are matched first so an AUTH failure over a timed-out-looking connection
// still reports as auth; everything unmatched falls back to the generic
// connection class.
func classify(err error) *ConnectError {
	if err == nil {
		return nil
	}

	ce := &ConnectError{Code: CodeConnection, Err: err}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		ce.Errno = int(errno)
	}

	var (
		protoErr    *textproto.Error
		startTLSErr mail.StartTLSUnsupportedError
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		hostErr     x509.HostnameError
		caErr       x509.UnknownAuthorityError
		dnsErr      *net.DNSError
		netErr      net.Error
	)
	switch {
	case errors.As(err, &protoErr):
		switch protoErr.Code {
		case 530, 534, 535, 538:
			ce.Code = CodeAuth
		default:
			ce.Code = fmt.Sprintf("smtp-%d", protoErr.Code)
		}
	case errors.As(err, &startTLSErr):
		ce.Code = CodeStartTLS
	case errors.As(err, &verifyErr), errors.As(err, &recordErr),
		errors.As(err, &hostErr), errors.As(err, &caErr):
		ce.Code = CodeTLS
	case errors.As(err, &dnsErr):
		ce.Code = CodeDNS
	case errno == syscall.ECONNREFUSED:
		ce.Code = CodeRefused
	case errors.As(err, &netErr) && netErr.Timeout():
		ce.Code = CodeTimeout
	}

	return ce
}
