package email_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubomir-dlhy/immich/core/email"
)

func validEnvelope() email.Envelope {
	return email.Envelope{
		From:    "Immich <noreply@immich.test>",
		To:      []string{"ann@example.com"},
		ReplyTo: "support@immich.test",
		Subject: "Welcome to Immich",
		HTML:    "<p>hello</p>",
		Text:    "hello",
	}
}

func TestEnvelopeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.Envelope)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(_ *email.Envelope) {},
		},
		{
			name:   "valid with bare from",
			mutate: func(e *email.Envelope) { e.From = "noreply@immich.test" },
		},
		{
			name:   "valid text only",
			mutate: func(e *email.Envelope) { e.HTML = "" },
		},
		{
			name:   "valid html only",
			mutate: func(e *email.Envelope) { e.Text = "" },
		},
		{
			name:   "valid without reply-to",
			mutate: func(e *email.Envelope) { e.ReplyTo = "" },
		},
		{
			name:    "missing from",
			mutate:  func(e *email.Envelope) { e.From = "" },
			wantErr: "From must be a valid email address",
		},
		{
			name:    "malformed from",
			mutate:  func(e *email.Envelope) { e.From = "not-an-address" },
			wantErr: "From must be a valid email address",
		},
		{
			name:    "no recipients",
			mutate:  func(e *email.Envelope) { e.To = nil },
			wantErr: "at least one recipient is required",
		},
		{
			name:    "malformed recipient",
			mutate:  func(e *email.Envelope) { e.To = []string{"ann@example.com", "nope"} },
			wantErr: `invalid recipient "nope"`,
		},
		{
			name:    "malformed reply-to",
			mutate:  func(e *email.Envelope) { e.ReplyTo = "broken@" },
			wantErr: "ReplyTo must be a valid email address",
		},
		{
			name:    "missing subject",
			mutate:  func(e *email.Envelope) { e.Subject = "" },
			wantErr: "Subject is required",
		},
		{
			name: "missing body",
			mutate: func(e *email.Envelope) {
				e.HTML = ""
				e.Text = ""
			},
			wantErr: "message body is required",
		},
		{
			name: "attachment without filename",
			mutate: func(e *email.Envelope) {
				e.Attachments = []email.Attachment{{Path: "/tmp/cover.png", ContentID: "cover"}}
			},
			wantErr: "attachment filename is required",
		},
		{
			name: "attachment without path",
			mutate: func(e *email.Envelope) {
				e.Attachments = []email.Attachment{{Filename: "cover.png", ContentID: "cover"}}
			},
			wantErr: "path is required",
		},
		{
			name: "attachment without content id",
			mutate: func(e *email.Envelope) {
				e.Attachments = []email.Attachment{{Filename: "cover.png", Path: "/tmp/cover.png"}}
			},
			wantErr: "content id is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := validEnvelope()
			tt.mutate(&env)

			err := env.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewMessageID(t *testing.T) {
	t.Parallel()

	t.Run("scoped to sender domain", func(t *testing.T) {
		t.Parallel()

		id := email.NewMessageID("Immich <noreply@immich.test>")
		assert.Regexp(t, `^<[0-9a-f-]{36}@immich\.test>$`, id)
	})

	t.Run("bare address", func(t *testing.T) {
		t.Parallel()

		id := email.NewMessageID("noreply@photos.example.com")
		assert.True(t, strings.HasSuffix(id, "@photos.example.com>"), "got %q", id)
	})

	t.Run("falls back to localhost", func(t *testing.T) {
		t.Parallel()

		id := email.NewMessageID("not-an-address")
		assert.Regexp(t, `^<[0-9a-f-]{36}@localhost>$`, id)
	})

	t.Run("unique per call", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			id := email.NewMessageID("noreply@immich.test")
			_, dup := seen[id]
			require.False(t, dup, "duplicate message id %q", id)
			seen[id] = struct{}{}
		}
	})
}
