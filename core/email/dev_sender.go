package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. It writes each message
// to a directory (HTML body, plain-text body, and JSON metadata) instead of
// delivering it through a relay, so emails can be inspected in a browser.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that saves messages to
// disk. The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// devMetadata is the JSON sidecar written next to the message bodies.
type devMetadata struct {
	Timestamp   string       `json:"timestamp"`
	MessageID   string       `json:"message_id"`
	From        string       `json:"from"`
	To          []string     `json:"to"`
	ReplyTo     string       `json:"reply_to,omitempty"`
	Subject     string       `json:"subject"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Send saves the envelope's bodies and metadata to the configured directory
// and returns a receipt pointing at the written files.
func (d *DevSender) Send(ctx context.Context, env Envelope) (Receipt, error) {
	if err := env.Validate(); err != nil {
		return Receipt{}, err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	// Timestamp-based filenames keep messages in chronological order.
	now := time.Now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(env.Subject))
	basePath := filepath.Join(d.dir, base)

	if env.HTML != "" {
		if err := os.WriteFile(basePath+".html", []byte(env.HTML), 0o644); err != nil {
			return Receipt{}, fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
		}
	}
	if env.Text != "" {
		if err := os.WriteFile(basePath+".txt", []byte(env.Text), 0o644); err != nil {
			return Receipt{}, fmt.Errorf("%w: failed to write text file: %v", ErrFailedToSendEmail, err)
		}
	}

	id := NewMessageID(env.From)
	metadata := devMetadata{
		Timestamp:   now.Format(time.RFC3339),
		MessageID:   id,
		From:        env.From,
		To:          env.To,
		ReplyTo:     env.ReplyTo,
		Subject:     env.Subject,
		Attachments: env.Attachments,
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(basePath+".json", data, 0o644); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return Receipt{
		MessageID: id,
		Response:  "saved to " + basePath,
		SentAt:    now,
	}, nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject line into a safe filename: spaces
// become underscores, unsafe characters are dropped, and the result is
// lowercased and truncated.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
