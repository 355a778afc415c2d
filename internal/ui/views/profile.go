package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"homelyhub/internal/domain"
	"homelyhub/internal/profile"
	"homelyhub/internal/ui/input/types"
)

// ProfileViewState is what the profile screen needs to render
type ProfileViewState struct {
	User       *domain.User
	Editing    bool
	Field      types.ProfileField
	Draft      profile.Fields
	Preview    string
	AvatarPath string
	Status     profile.Status
	// Input is the rendered text input of the focused field while editing
	Input string
}

// ProfileRenderer handles rendering of the profile screen and editor
type ProfileRenderer struct {
	styles *Styles
}

// NewProfileRenderer creates a new profile renderer
func NewProfileRenderer(styles *Styles) *ProfileRenderer {
	return &ProfileRenderer{
		styles: styles,
	}
}

// FormatJoined formats a sign-up date as "January 2nd 2006"
func FormatJoined(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	day := t.Day()
	suffix := "th"
	switch {
	case day >= 11 && day <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%s %d%s %d", t.Month(), day, suffix, t.Year())
}

// ShortenImageURL keeps data URLs readable on one line
func ShortenImageURL(url string, width int) string {
	if strings.HasPrefix(url, "data:") {
		mime, _, _ := strings.Cut(strings.TrimPrefix(url, "data:"), ";")
		return fmt.Sprintf("[%s, %d bytes inline]", mime, len(url))
	}
	return ansi.Truncate(url, width, "…")
}

// Render renders the profile screen
func (p *ProfileRenderer) Render(s ProfileViewState, width int) string {
	if s.User == nil {
		return p.styles.Dim.Render("Loading profile...")
	}
	if s.Editing {
		return p.renderEditor(s, width)
	}

	u := s.User
	urlWidth := width - 16
	if urlWidth < 20 {
		urlWidth = 20
	}
	avatar := u.Avatar.URL
	if avatar == "" {
		avatar = profile.DefaultAvatarURL
	}

	var b strings.Builder
	b.WriteString(p.styles.Title.Render("My Profile"))
	b.WriteString("\n\n")
	b.WriteString(p.row("Avatar", ShortenImageURL(avatar, urlWidth)))
	b.WriteString(p.row("Name", u.Name))
	b.WriteString(p.row("Email", u.Email))
	b.WriteString(p.row("Phone", u.PhoneNumber))
	b.WriteString(p.row("Joined On", FormatJoined(u.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(p.styles.Help.Render("e edit profile • r reload • esc back to listings"))
	return b.String()
}

func (p *ProfileRenderer) row(label, value string) string {
	if value == "" {
		value = "-"
	}
	return p.styles.Label.Render(label) + value + "\n"
}

func (p *ProfileRenderer) renderEditor(s ProfileViewState, width int) string {
	urlWidth := width - 16
	if urlWidth < 20 {
		urlWidth = 20
	}

	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Edit Profile"))
	b.WriteString("\n\n")
	b.WriteString(p.row("Preview", ShortenImageURL(s.Preview, urlWidth)))
	b.WriteString("\n")

	fields := []struct {
		field types.ProfileField
		label string
		value string
	}{
		{types.FieldName, "Name", s.Draft.Name},
		{types.FieldPhoneNumber, "Phone", s.Draft.PhoneNumber},
		{types.FieldAvatarPath, "Avatar file", s.AvatarPath},
	}
	for _, f := range fields {
		value := f.value
		label := p.styles.Label.Render(f.label)
		if f.field == s.Field {
			label = p.styles.Highlight.Render("› ") + p.styles.Label.Width(10).Render(f.label)
			value = s.Input
		} else if value == "" {
			value = p.styles.Dim.Render("-")
		}
		b.WriteString(label)
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	submit := "Update"
	if s.Status == profile.StatusSubmitting {
		submit = "Updating..."
	}
	if s.Field == types.FieldSubmit {
		b.WriteString(p.styles.Highlight.Render("› ") + p.styles.Focus.Render(submit))
	} else {
		b.WriteString("  " + submit)
	}
	b.WriteString("\n\n")
	b.WriteString(p.styles.Help.Render("tab next field • ctrl+o load avatar file • ctrl+s save • esc cancel"))
	return b.String()
}
