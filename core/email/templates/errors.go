package templates

import "errors"

var (
	// ErrUnsupportedTemplate marks template identifiers that belong to the
	// enumeration but have no built-in body to render.
	ErrUnsupportedTemplate = errors.New("unsupported email template")

	// ErrRenderFailed wraps failures while producing the HTML or plain-text
	// rendition of a template.
	ErrRenderFailed = errors.New("failed to render email template")
)
