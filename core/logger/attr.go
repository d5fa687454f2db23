package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks,
// following the principle of making zero values useful.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Host creates an attribute for remote host names.
func Host(host string) slog.Attr {
	return slog.String("host", host)
}

// Port creates an attribute for network ports.
func Port(port int) slog.Attr {
	return slog.Int("port", port)
}

// MessageID creates an attribute for mail message identifiers.
// Returns empty Attr for empty IDs.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Recipients creates an attribute for the number of message recipients.
// The addresses themselves are deliberately not logged.
func Recipients(to []string) slog.Attr {
	return slog.Int("recipients", len(to))
}

// ErrorCode creates an attribute for machine-readable failure classes.
// Returns empty Attr for empty codes.
func ErrorCode(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("code", code)
}

// Errno creates an attribute for OS-level error numbers behind network
// failures. Returns empty Attr when errno is zero.
func Errno(errno int) slog.Attr {
	if errno == 0 {
		return slog.Attr{}
	}
	return slog.Int("errno", errno)
}

// Optional logs the value under the given key, or an explicit "none" marker
// when the value is empty, so logs show whether a field was configured.
func Optional(key, value string) slog.Attr {
	if value == "" {
		return slog.String(key, "none")
	}
	return slog.String(key, value)
}

// Secret masks a sensitive value under the given key. Present values are
// replaced with a fixed placeholder and absent values render as "none"; the
// raw value never reaches the log output.
func Secret(key, value string) slog.Attr {
	if value == "" {
		return slog.String(key, "none")
	}
	return slog.String(key, "*****")
}

// Stack captures and returns the current stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}
