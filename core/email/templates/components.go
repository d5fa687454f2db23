package templates

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Building blocks shared by the built-in template bodies. All markup is
// table-based with inline styles and full hex colors, which is what email
// clients require, and is emitted as a single line without pretty-printing.

// layout wraps content components in the shared shell: a branded header and
// a centered single-column card on a neutral page background.
func layout(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>Immich</title></head>`+
				`<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:Arial,Helvetica,sans-serif;">`+
				`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;"><tr><td align="center" style="padding:24px 12px;">`+
				`<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#ffffff;border-radius:16px;overflow:hidden;">`+
				`<tr><td align="center" style="padding:28px 40px;background-color:#4250af;"><span style="color:#ffffff;font-size:24px;font-weight:bold;letter-spacing:2px;">IMMICH</span></td></tr>`+
				`<tr><td style="padding:32px 40px;">`)
		if err != nil {
			return err
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w,
			`</td></tr></table>`+
				`<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;"><tr><td align="center" style="padding:16px 40px;">`+
				`<span style="font-size:12px;line-height:18px;color:#71717a;">This email was sent by your Immich server.</span>`+
				`</td></tr></table>`+
				`</td></tr></table></body></html>`)
		return err
	})
}

// heading renders the primary title line of a message body.
func heading(title string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<h1 style="margin:0 0 16px;font-size:22px;line-height:30px;color:#18181b;">`+
				templ.EscapeString(title)+`</h1>`)
		return err
	})
}

// text renders a standard body paragraph.
func text(content string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<p style="margin:0 0 16px;font-size:15px;line-height:24px;color:#3f3f46;">`+
				templ.EscapeString(content)+`</p>`)
		return err
	})
}

// textSecondary renders a de-emphasized paragraph for hints and small print.
func textSecondary(content string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<p style="margin:0 0 16px;font-size:13px;line-height:20px;color:#71717a;">`+
				templ.EscapeString(content)+`</p>`)
		return err
	})
}

// keyValue renders a labelled line such as "Username: ann".
func keyValue(label, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<p style="margin:0 0 8px;font-size:15px;line-height:24px;color:#3f3f46;">`+
				templ.EscapeString(label)+`: <strong>`+templ.EscapeString(value)+`</strong></p>`)
		return err
	})
}

// primaryButton renders the call to action as a table-based button that
// keeps its shape in Outlook. The href goes through templ's URL sanitizer.
func primaryButton(label, href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<table role="presentation" cellpadding="0" cellspacing="0" align="center" style="margin:8px auto 16px;"><tr>`+
				`<td align="center" style="border-radius:8px;background-color:#4250af;">`+
				`<a href="`+templ.EscapeString(string(templ.URL(href)))+`" target="_blank" style="display:inline-block;padding:12px 32px;font-size:15px;font-weight:bold;color:#ffffff;text-decoration:none;">`+
				templ.EscapeString(label)+`</a></td></tr></table>`)
		return err
	})
}

// coverImage renders an inline album cover referenced through a cid: URL.
// The message must carry an attachment whose Content-ID matches cid, or the
// mail client shows a broken image.
func coverImage(cid string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<img src="cid:`+templ.EscapeString(cid)+`" alt="Album cover" width="520" style="display:block;width:100%;max-width:520px;border-radius:8px;margin:0 auto 24px;">`)
		return err
	})
}

// joinURL builds a link from the base URL and escaped path segments,
// tolerating a trailing slash on the base.
func joinURL(base string, segments ...string) string {
	link := strings.TrimRight(base, "/")
	for _, segment := range segments {
		link += "/" + url.PathEscape(segment)
	}
	return link
}
