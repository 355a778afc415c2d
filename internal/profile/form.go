// Package profile holds the profile editor's form state: the draft, the
// avatar preview, the changed-field diff and the submission state machine.
package profile

import (
	"errors"

	"homelyhub/internal/domain"
)

// Validation errors. None of them reach the backend.
var (
	ErrNoChanges      = errors.New("no changes made")
	ErrAvatarMissing  = errors.New("avatar file missing")
	ErrAvatarNotImage = errors.New("avatar is not an image")
	ErrAvatarTooLarge = errors.New("avatar exceeds 5MB")
	ErrAvatarRead     = errors.New("avatar could not be read")
	ErrSubmitting     = errors.New("update already in progress")
)

// UserMessage returns the notification text for a form error
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoChanges):
		return "No changes made"
	case errors.Is(err, ErrAvatarMissing), errors.Is(err, ErrAvatarNotImage):
		return "Please select an image file"
	case errors.Is(err, ErrAvatarTooLarge):
		return "Image size should be less than 5MB"
	case errors.Is(err, ErrAvatarRead):
		return "Failed to read image file"
	case errors.Is(err, ErrSubmitting):
		return "Update in progress"
	}
	return err.Error()
}

// Status is the form's position in the edit flow
type Status int

const (
	StatusIdle Status = iota
	StatusEditing
	StatusSubmitting
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusEditing:
		return "editing"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	}
	return "unknown"
}

// Fields are the editable profile values
type Fields struct {
	Name        string
	PhoneNumber string
	Avatar      string
}

func fieldsOf(u domain.User) Fields {
	return Fields{Name: u.Name, PhoneNumber: u.PhoneNumber, Avatar: u.Avatar.URL}
}

// Form is the profile editor. It is owned by the UI goroutine.
type Form struct {
	original Fields
	draft    Fields
	status   Status
}

// NewForm seeds the draft from user
func NewForm(user domain.User) *Form {
	f := fieldsOf(user)
	return &Form{original: f, draft: f}
}

func (f *Form) Status() Status   { return f.status }
func (f *Form) Original() Fields { return f.original }
func (f *Form) Draft() Fields    { return f.draft }

// Preview is the avatar image to display: the draft avatar, falling back
// to DefaultAvatarURL
func (f *Form) Preview() string {
	if f.draft.Avatar != "" {
		return f.draft.Avatar
	}
	return DefaultAvatarURL
}

// Edit enters the editing state
func (f *Form) Edit() {
	if f.status != StatusSubmitting {
		f.status = StatusEditing
	}
}

func (f *Form) SetName(name string) {
	f.draft.Name = name
	f.Edit()
}

func (f *Form) SetPhoneNumber(phone string) {
	f.draft.PhoneNumber = phone
	f.Edit()
}

// SetAvatar replaces the draft avatar with an already-encoded value
func (f *Form) SetAvatar(avatar string) {
	f.draft.Avatar = avatar
	f.Edit()
}

// LoadAvatar reads an image file into the draft avatar. On error the
// previous draft and preview are left as they were.
func (f *Form) LoadAvatar(path string) error {
	data, err := ReadAvatar(path)
	if err != nil {
		return err
	}
	f.SetAvatar(data)
	return nil
}

// Changes returns the fields whose draft differs from the original.
// Emptied fields are not sent.
func (f *Form) Changes() domain.UserUpdate {
	var u domain.UserUpdate
	if f.draft.Name != "" && f.draft.Name != f.original.Name {
		u.Name = f.draft.Name
	}
	if f.draft.PhoneNumber != "" && f.draft.PhoneNumber != f.original.PhoneNumber {
		u.PhoneNumber = f.draft.PhoneNumber
	}
	if f.draft.Avatar != "" && f.draft.Avatar != f.original.Avatar {
		u.Avatar = f.draft.Avatar
	}
	return u
}

// Submit returns the update to send. With nothing changed it returns
// ErrNoChanges and the form goes back to idle.
func (f *Form) Submit() (domain.UserUpdate, error) {
	if f.status == StatusSubmitting {
		return domain.UserUpdate{}, ErrSubmitting
	}
	u := f.Changes()
	if u.IsEmpty() {
		f.status = StatusIdle
		return domain.UserUpdate{}, ErrNoChanges
	}
	f.status = StatusSubmitting
	return u, nil
}

// Succeeded records the backend's accepted user as the new original
func (f *Form) Succeeded(user domain.User) {
	f.original = fieldsOf(user)
	f.draft = f.original
	f.status = StatusSuccess
}

// Failed returns to editing with the draft kept for another attempt
func (f *Form) Failed() {
	f.status = StatusEditing
}

// Cancel discards the draft
func (f *Form) Cancel() {
	f.draft = f.original
	f.status = StatusIdle
}
