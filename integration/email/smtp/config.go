package smtp

import "time"

// Settings are the user-supplied SMTP coordinates, partial by design:
// admins usually provide just a host, sometimes a port or an explicit
// security toggle. Resolve completes them into an unambiguous transport
// configuration; nothing here validates reachability.
type Settings struct {
	Host string `env:"SMTP_HOST"`

	// Port selects the relay port. Zero means unset and lets Resolve infer
	// the port from Secure.
	Port int `env:"SMTP_PORT"`

	// Secure selects implicit TLS. Nil means unset, in which case Resolve
	// infers the mode from the port. An explicit false defeats the port-465
	// inference.
	Secure *bool `env:"SMTP_SECURE"`

	// Username and Password authenticate against the relay. When both are
	// empty the transport attempts no AUTH at all.
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`

	// IgnoreCertErrors disables server certificate verification, for relays
	// with self-signed certificates.
	IgnoreCertErrors bool `env:"SMTP_IGNORE_CERT_ERRORS"`
}

// Credentials authenticate a transport session against the relay.
type Credentials struct {
	Username string
	Password string
}

// Timeouts bound the stages of a transport session.
type Timeouts struct {
	Connect  time.Duration
	Greeting time.Duration
	Socket   time.Duration
	DNS      time.Duration
}

// transportTimeout bounds connection establishment, protocol greeting, idle
// socket reads, and DNS resolution. The value is fixed rather than
// user-configurable so a misconfigured relay fails within a known window.
const transportTimeout = 10 * time.Second

// TransportConfig is the complete, unambiguous form of Settings. It is
// derived per operation and owned by the call that derived it; it is never
// shared or mutated afterwards.
type TransportConfig struct {
	Host string
	Port int

	// ImplicitTLS negotiates TLS immediately on connect, conventionally on
	// port 465. Never true together with RequireStartTLS.
	ImplicitTLS bool

	// RequireStartTLS demands a STARTTLS upgrade after the plaintext
	// greeting, conventionally on port 587, and fails the session when the
	// relay does not offer the extension.
	RequireStartTLS bool

	// VerifyServerCert controls x509 verification of the relay certificate.
	VerifyServerCert bool

	// Credentials is nil when no AUTH should be attempted.
	Credentials *Credentials

	Timeouts Timeouts
}

// Resolve maps the partial settings onto a complete transport
// configuration. It is total: absent values get secure defaults and nothing
// is rejected. Explicit Port and Secure values always win over inference.
func (s Settings) Resolve() TransportConfig {
	port := s.Port
	if port == 0 {
		if s.Secure != nil && *s.Secure {
			port = 465
		} else {
			port = 587
		}
	}

	implicitTLS := port == 465
	if s.Secure != nil {
		implicitTLS = *s.Secure
	}

	cfg := TransportConfig{
		Host:             s.Host,
		Port:             port,
		ImplicitTLS:      implicitTLS,
		RequireStartTLS:  !implicitTLS && port == 587,
		VerifyServerCert: !s.IgnoreCertErrors,
		Timeouts: Timeouts{
			Connect:  transportTimeout,
			Greeting: transportTimeout,
			Socket:   transportTimeout,
			DNS:      transportTimeout,
		},
	}

	if s.Username != "" || s.Password != "" {
		cfg.Credentials = &Credentials{
			Username: s.Username,
			Password: s.Password,
		}
	}

	return cfg
}
