package templates

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/jaytaylor/html2text"
)

// Document is the rendered form of a template: the same logical content as
// compact HTML and as a plain-text fallback. Documents are recomputed on
// every call, never cached.
type Document struct {
	HTML string
	Text string
}

// Render produces the HTML and plain-text renditions of the given template.
// Rendering is pure: identical input yields an identical Document and no
// I/O happens here. Variants without a built-in body fail with
// ErrUnsupportedTemplate.
func Render(ctx context.Context, t Template) (Document, error) {
	var (
		body templ.Component
		vars map[string]string
	)

	switch v := t.(type) {
	case Test:
		body, vars = v.body(), v.variables()
	case Welcome:
		body, vars = v.body(), v.variables()
	case AlbumInvite:
		body, vars = v.body(), v.variables()
	case AlbumUpdate:
		body, vars = v.body(), v.variables()
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedTemplate, t.ID())
	}

	html, err := renderHTML(ctx, t.base(), body, vars)
	if err != nil {
		return Document{}, errors.Join(ErrRenderFailed, err)
	}

	text, err := html2text.FromString(html)
	if err != nil {
		return Document{}, errors.Join(ErrRenderFailed, err)
	}

	return Document{HTML: html, Text: text}, nil
}

// renderHTML returns the admin-supplied custom body when one is configured,
// interpolated from the template's variables, and the built-in component
// rendering otherwise.
func renderHTML(ctx context.Context, base Base, body templ.Component, vars map[string]string) (string, error) {
	if base.CustomTemplate != "" {
		return interpolate(base.CustomTemplate, vars), nil
	}

	var sb strings.Builder
	if err := body.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// tagPattern matches {tag} placeholders in custom template bodies.
var tagPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9]*)\}`)

// interpolate replaces {tag} placeholders with the matching variable values,
// HTML-escaped. Placeholders without a matching variable stay untouched so
// typos remain visible in the delivered message.
func interpolate(tmpl string, vars map[string]string) string {
	return tagPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		value, ok := vars[match[1:len(match)-1]]
		if !ok {
			return match
		}
		return templ.EscapeString(value)
	})
}
