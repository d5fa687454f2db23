package smtp

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/mhale/smtpd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mail "gopkg.in/mail.v2"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantCode  string
		wantErrno int
	}{
		{
			name:     "auth required",
			err:      &textproto.Error{Code: 530, Msg: "5.7.0 Authentication required"},
			wantCode: CodeAuth,
		},
		{
			name:     "auth mechanism too weak",
			err:      &textproto.Error{Code: 534, Msg: "5.7.9 Mechanism too weak"},
			wantCode: CodeAuth,
		},
		{
			name:     "bad credentials",
			err:      &textproto.Error{Code: 535, Msg: "5.7.8 Authentication credentials invalid"},
			wantCode: CodeAuth,
		},
		{
			name:     "encryption required for auth",
			err:      &textproto.Error{Code: 538, Msg: "5.7.11 Encryption required"},
			wantCode: CodeAuth,
		},
		{
			name:     "other smtp rejection keeps reply code",
			err:      &textproto.Error{Code: 554, Msg: "5.7.1 Relay access denied"},
			wantCode: "smtp-554",
		},
		{
			name:     "transient smtp rejection",
			err:      &textproto.Error{Code: 421, Msg: "4.7.0 Try again later"},
			wantCode: "smtp-421",
		},
		{
			name:     "starttls unsupported",
			err:      mail.StartTLSUnsupportedError{Policy: mail.MandatoryStartTLS},
			wantCode: CodeStartTLS,
		},
		{
			name:     "certificate verification",
			err:      &tls.CertificateVerificationError{Err: x509.UnknownAuthorityError{}},
			wantCode: CodeTLS,
		},
		{
			name:     "unknown authority",
			err:      x509.UnknownAuthorityError{},
			wantCode: CodeTLS,
		},
		{
			name:     "plaintext server on tls port",
			err:      tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"},
			wantCode: CodeTLS,
		},
		{
			name:     "hostname mismatch",
			err:      x509.HostnameError{Certificate: &x509.Certificate{}, Host: "mail.example.com"},
			wantCode: CodeTLS,
		},
		{
			name:     "dns not found",
			err:      &net.DNSError{Err: "no such host", Name: "smtp.invalid", IsNotFound: true},
			wantCode: CodeDNS,
		},
		{
			name:     "read deadline",
			err:      &net.OpError{Op: "read", Net: "tcp", Err: os.ErrDeadlineExceeded},
			wantCode: CodeTimeout,
		},
		{
			name: "connection refused",
			err: &net.OpError{Op: "dial", Net: "tcp", Err: &os.SyscallError{
				Syscall: "connect",
				Err:     syscall.ECONNREFUSED,
			}},
			wantCode:  CodeRefused,
			wantErrno: int(syscall.ECONNREFUSED),
		},
		{
			name: "connection reset",
			err: &net.OpError{Op: "read", Net: "tcp", Err: &os.SyscallError{
				Syscall: "read",
				Err:     syscall.ECONNRESET,
			}},
			wantCode:  CodeConnection,
			wantErrno: int(syscall.ECONNRESET),
		},
		{
			name:     "anything else",
			err:      errors.New("unexpected EOF"),
			wantCode: CodeConnection,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ce := classify(tt.err)
			require.NotNil(t, ce)
			assert.Equal(t, tt.wantCode, ce.Code)
			assert.Equal(t, tt.wantErrno, ce.Errno)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, classify(nil))
}

func TestConnectError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("broken pipe")
	ce := classify(fmt.Errorf("dial relay: %w", cause))

	require.NotNil(t, ce)
	assert.ErrorIs(t, ce, cause)
	assert.Contains(t, ce.Error(), "smtp: ")
	assert.Contains(t, ce.Error(), "broken pipe")
}

// A relay that never advertises STARTTLS must fail a session that requires
// the upgrade, before any mail flows.
func TestClassify_MandatoryStartTLSOverWire(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	srv := &smtpd.Server{
		Appname:  "immich-test",
		Hostname: "localhost",
		Handler: func(_ net.Addr, _ string, _ []string, _ []byte) error {
			return nil
		},
	}
	go func() { _ = srv.Serve(ln) }()

	cfg := TransportConfig{
		Host:             "127.0.0.1",
		Port:             ln.Addr().(*net.TCPAddr).Port,
		RequireStartTLS:  true,
		VerifyServerCert: true,
		Timeouts:         Timeouts{Connect: 5 * time.Second},
	}

	session := Open(cfg)
	defer func() { _ = session.Close() }()

	verifyErr := session.Verify()
	require.Error(t, verifyErr)
	assert.Equal(t, CodeStartTLS, classify(verifyErr).Code)
}
