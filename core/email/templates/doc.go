// Package templates renders the built-in transactional email bodies to HTML
// and plain text.
//
// Every message Immich sends is described by one of a fixed set of template
// variants (test, welcome, album invite, album update). A variant is a plain
// struct carrying exactly the data its body needs, and Render turns it into
// a Document with both renditions of the same content:
//
//	tmpl := templates.Welcome{
//		Base: templates.Base{BaseURL: "https://photos.example.com"},
//		DisplayName: "Ann",
//		Username:    "ann",
//	}
//
//	doc, err := templates.Render(ctx, tmpl)
//	if err != nil {
//		return err
//	}
//	// doc.HTML is the full email markup, doc.Text the plain-text fallback.
//
// Rendering is pure: the same variant always produces the same Document,
// nothing is cached, and no I/O happens. The HTML is built from templ
// components using table-based markup with inline styles, which is what
// email clients require; the plain-text rendition is derived from the HTML,
// so the two never drift apart. All dynamic values are HTML-escaped.
//
// # Subjects
//
// Each variant carries its subject line, so composition code never
// hand-writes one:
//
//	subject := tmpl.Subject()
//
// # Custom Templates
//
// Administrators may override a built-in body with their own HTML. Setting
// Base.CustomTemplate bypasses the component rendering entirely and instead
// interpolates {tag} placeholders from the variant's variables:
//
//	tmpl.CustomTemplate = `<html><body>Hi {displayName}, welcome!</body></html>`
//
// Interpolated values are HTML-escaped. Placeholders that do not match a
// variable are left as-is so mistakes stay visible in the delivered message.
//
// # Unsupported Variants
//
// ResetPassword is part of the identifier enumeration but has no built-in
// body; rendering it fails with ErrUnsupportedTemplate:
//
//	_, err := templates.Render(ctx, templates.ResetPassword{})
//	// errors.Is(err, templates.ErrUnsupportedTemplate) == true
//
// # Inline Images
//
// Album templates can reference a cover image through a cid: URL. Set
// CoverImageCID to the Content-ID of an attachment on the outgoing envelope
// and the HTML embeds it inline; leave it empty to render without a cover.
package templates
