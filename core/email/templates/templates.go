package templates

import "github.com/a-h/templ"

// ID identifies a built-in email template. The values are stable protocol
// strings: callers persist them in notification settings and send them over
// the admin API, so they must never change.
type ID string

const (
	TemplateTest          ID = "test"
	TemplateWelcome       ID = "welcome"
	TemplateResetPassword ID = "reset-password"
	TemplateAlbumInvite   ID = "album-invite"
	TemplateAlbumUpdate   ID = "album-update"
)

// Base carries the fields shared by every template variant.
type Base struct {
	// BaseURL is the absolute address of the web app, used to build links
	// back into it, e.g. "https://photos.example.com".
	BaseURL string

	// CustomTemplate optionally replaces the built-in HTML body with an
	// admin-supplied one. {tag} placeholders are interpolated from the
	// variant's variables before rendering.
	CustomTemplate string
}

func (b Base) base() Base { return b }

// Template is the closed set of email bodies the renderer understands. The
// unexported method seals the set to this package, so Render's dispatch
// covers every variant by construction.
type Template interface {
	// ID returns the template's stable identifier.
	ID() ID

	// Subject returns the subject line for messages built from this
	// template.
	Subject() string

	base() Base
}

var (
	_ Template = Test{}
	_ Template = Welcome{}
	_ Template = ResetPassword{}
	_ Template = AlbumInvite{}
	_ Template = AlbumUpdate{}
)

// Test verifies an email setup end to end: it is sent to the admin who
// saved the SMTP settings.
type Test struct {
	Base

	// DisplayName is the name of the user who triggered the test.
	DisplayName string
}

func (Test) ID() ID          { return TemplateTest }
func (Test) Subject() string { return "Test email from Immich" }

func (t Test) variables() map[string]string {
	return map[string]string{
		"displayName": t.DisplayName,
		"baseUrl":     t.BaseURL,
	}
}

func (t Test) body() templ.Component {
	return layout(
		heading("Hey "+t.DisplayName+"!"),
		text("This is a test email from your Immich server. If you are reading it, outbound email is configured correctly."),
		primaryButton("Open Immich", t.BaseURL),
	)
}

// Welcome greets a freshly created account and carries the credentials an
// administrator provisioned for it.
type Welcome struct {
	Base

	DisplayName string
	Username    string

	// InitialPassword is the temporary password chosen by the
	// administrator. It appears in the message only when non-empty.
	InitialPassword string
}

func (Welcome) ID() ID          { return TemplateWelcome }
func (Welcome) Subject() string { return "Welcome to Immich" }

func (t Welcome) variables() map[string]string {
	return map[string]string{
		"displayName": t.DisplayName,
		"username":    t.Username,
		"password":    t.InitialPassword,
		"baseUrl":     t.BaseURL,
	}
}

func (t Welcome) body() templ.Component {
	children := []templ.Component{
		heading("Welcome to Immich!"),
		text("Hi " + t.DisplayName + ","),
		text("A new account has been created for you."),
		keyValue("Username", t.Username),
	}
	if t.InitialPassword != "" {
		children = append(children,
			keyValue("Password", t.InitialPassword),
			textSecondary("Sign in and change the temporary password from your account settings."),
		)
	}
	children = append(children, primaryButton("Sign In", joinURL(t.BaseURL, "auth", "login")))
	return layout(children...)
}

// ResetPassword is enumerated for protocol completeness. No built-in body
// exists for it: password recovery messages are composed by the account
// recovery flow, and Render reports the template as unsupported.
type ResetPassword struct {
	Base

	DisplayName string
}

func (ResetPassword) ID() ID          { return TemplateResetPassword }
func (ResetPassword) Subject() string { return "Reset your Immich password" }

// AlbumInvite notifies a user that somebody shared an album with them.
type AlbumInvite struct {
	Base

	SenderName string
	AlbumName  string
	AlbumID    string

	// CoverImageCID references the album cover attached to the message.
	// The cover renders inline when the value is non-empty.
	CoverImageCID string
}

func (AlbumInvite) ID() ID          { return TemplateAlbumInvite }
func (AlbumInvite) Subject() string { return "You have been added to a shared album" }

func (t AlbumInvite) variables() map[string]string {
	return map[string]string{
		"senderName": t.SenderName,
		"albumName":  t.AlbumName,
		"albumId":    t.AlbumID,
		"baseUrl":    t.BaseURL,
	}
}

func (t AlbumInvite) body() templ.Component {
	children := []templ.Component{
		heading(t.AlbumName),
		text(t.SenderName + " has added you to the shared album " + t.AlbumName + "."),
	}
	if t.CoverImageCID != "" {
		children = append(children, coverImage(t.CoverImageCID))
	}
	children = append(children, primaryButton("View Album", joinURL(t.BaseURL, "albums", t.AlbumID)))
	return layout(children...)
}

// AlbumUpdate notifies the members of a shared album about new media.
type AlbumUpdate struct {
	Base

	AlbumName     string
	AlbumID       string
	RecipientName string

	// CoverImageCID references the album cover attached to the message.
	// The cover renders inline when the value is non-empty.
	CoverImageCID string
}

func (AlbumUpdate) ID() ID          { return TemplateAlbumUpdate }
func (AlbumUpdate) Subject() string { return "New media has been added to an album" }

func (t AlbumUpdate) variables() map[string]string {
	return map[string]string{
		"albumName":     t.AlbumName,
		"albumId":       t.AlbumID,
		"recipientName": t.RecipientName,
		"baseUrl":       t.BaseURL,
	}
}

func (t AlbumUpdate) body() templ.Component {
	children := []templ.Component{
		heading(t.AlbumName),
		text("Hi " + t.RecipientName + ","),
		text("New media has been added to " + t.AlbumName + ", check it out!"),
	}
	if t.CoverImageCID != "" {
		children = append(children, coverImage(t.CoverImageCID))
	}
	children = append(children, primaryButton("View Album", joinURL(t.BaseURL, "albums", t.AlbumID)))
	return layout(children...)
}
