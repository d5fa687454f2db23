package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubomir-dlhy/immich/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("smtp", slog.String("host", "mail.example.com"), slog.Int("port", 587))
	require.Equal(t, "smtp", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "host", g[0].Key)
	assert.Equal(t, "port", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("smtp")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "smtp", attr.Value.String())
}

func TestHostPort(t *testing.T) {
	t.Parallel()
	host := logger.Host("mail.example.com")
	require.Equal(t, "host", host.Key)
	assert.Equal(t, "mail.example.com", host.Value.String())

	port := logger.Port(465)
	require.Equal(t, "port", port.Key)
	assert.EqualValues(t, 465, port.Value.Int64())
}

func TestMessageID(t *testing.T) {
	t.Parallel()
	attr := logger.MessageID("<abc@example.com>")
	require.Equal(t, "message_id", attr.Key)
	assert.Equal(t, "<abc@example.com>", attr.Value.String())

	empty := logger.MessageID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRecipients(t *testing.T) {
	t.Parallel()
	attr := logger.Recipients([]string{"a@example.com", "b@example.com"})
	require.Equal(t, "recipients", attr.Key)
	assert.EqualValues(t, 2, attr.Value.Int64())
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	attr := logger.ErrorCode("auth")
	require.Equal(t, "code", attr.Key)
	assert.Equal(t, "auth", attr.Value.String())

	empty := logger.ErrorCode("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrno(t *testing.T) {
	t.Parallel()
	attr := logger.Errno(111)
	require.Equal(t, "errno", attr.Key)
	assert.EqualValues(t, 111, attr.Value.Int64())

	empty := logger.Errno(0)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestOptional(t *testing.T) {
	t.Parallel()
	attr := logger.Optional("username", "mailer")
	require.Equal(t, "username", attr.Key)
	assert.Equal(t, "mailer", attr.Value.String())

	none := logger.Optional("username", "")
	assert.Equal(t, "none", none.Value.String())
}

func TestSecret(t *testing.T) {
	t.Parallel()
	attr := logger.Secret("password", "hunter2")
	require.Equal(t, "password", attr.Key)
	assert.Equal(t, "*****", attr.Value.String())
	assert.NotContains(t, attr.Value.String(), "hunter2")

	none := logger.Secret("password", "")
	assert.Equal(t, "none", none.Value.String())
}

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack()
	require.Equal(t, "stack", attr.Key)
	assert.True(t, strings.Contains(attr.Value.String(), "goroutine"))
}
