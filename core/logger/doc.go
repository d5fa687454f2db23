// Package logger provides structured logging utilities built on Go's standard
// slog package: a configurable constructor with environment presets and a set
// of pre-built, nil-safe attribute helpers for common logging scenarios,
// including redacted attributes for credentials.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/lubomir-dlhy/immich/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("immich"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("immich"),
//		logger.WithAttr(slog.String("version", "v1.0.0")),
//	)
//
//	log.Info("smtp settings updated",
//		logger.Component("notifications"),
//		logger.Event("settings_changed"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, so they can be
// passed unconditionally:
//
//	log.Error("send failed",
//		logger.Error(err),        // omitted entirely when err == nil
//		logger.Host("smtp.example.com"),
//		logger.Port(587),
//		logger.MessageID(id),
//	)
//
// # Redaction
//
// Secret and Optional exist for logging connection settings without leaking
// credentials. Secret replaces a present value with a fixed placeholder and
// renders absent values as "none"; Optional logs the value itself or "none":
//
//	log.Info("verifying smtp connection",
//		logger.Optional("username", settings.Username),
//		logger.Secret("password", settings.Password),
//	)
//	// => username=none password=***** (nothing sensitive is emitted)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// # Global Logger
//
// Install a logger as the process-wide default used by plain slog calls:
//
//	logger.SetAsDefault(logger.New(logger.WithProduction("immich")))
package logger
