package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homelyhub/internal/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func testUser() domain.User {
	return domain.User{
		ID:          "u1",
		Name:        "Asha",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Avatar:      domain.Avatar{URL: "https://cdn.example.com/asha.png"},
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestSubmitWithoutChanges(t *testing.T) {
	f := NewForm(testUser())
	f.SetName("Asha")
	f.SetPhoneNumber("9876543210")

	u, err := f.Submit()
	require.ErrorIs(t, err, ErrNoChanges)
	assert.True(t, u.IsEmpty())
	assert.Equal(t, StatusIdle, f.Status())
	assert.Equal(t, "No changes made", UserMessage(err))
}

func TestSubmitSendsOnlyChangedFields(t *testing.T) {
	f := NewForm(testUser())
	f.SetPhoneNumber("9000000000")
	assert.Equal(t, StatusEditing, f.Status())

	u, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, domain.UserUpdate{PhoneNumber: "9000000000"}, u)
	assert.Equal(t, StatusSubmitting, f.Status())

	_, err = f.Submit()
	assert.ErrorIs(t, err, ErrSubmitting)
}

func TestEmptiedFieldIsNotSent(t *testing.T) {
	f := NewForm(testUser())
	f.SetName("")

	_, err := f.Submit()
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestSucceededReplacesOriginal(t *testing.T) {
	f := NewForm(testUser())
	f.SetName("Asha R")
	_, err := f.Submit()
	require.NoError(t, err)

	updated := testUser()
	updated.Name = "Asha R"
	f.Succeeded(updated)

	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, "Asha R", f.Original().Name)
	assert.True(t, f.Changes().IsEmpty())
}

func TestFailedKeepsDraft(t *testing.T) {
	f := NewForm(testUser())
	f.SetName("Asha R")
	_, err := f.Submit()
	require.NoError(t, err)

	f.Failed()
	assert.Equal(t, StatusEditing, f.Status())
	assert.Equal(t, "Asha R", f.Draft().Name)
}

func TestCancelDiscardsDraft(t *testing.T) {
	f := NewForm(testUser())
	f.SetName("Someone else")
	f.Cancel()

	assert.Equal(t, f.Original(), f.Draft())
	assert.Equal(t, StatusIdle, f.Status())
}

func TestPreviewFallsBackToDefault(t *testing.T) {
	user := testUser()
	user.Avatar = domain.Avatar{}
	assert.Equal(t, DefaultAvatarURL, NewForm(user).Preview())
}

func TestLoadAvatar(t *testing.T) {
	f := NewForm(testUser())
	path := writeFile(t, "me.png", pngHeader)

	require.NoError(t, f.LoadAvatar(path))
	assert.True(t, strings.HasPrefix(f.Preview(), "data:image/png;base64,"))

	u := f.Changes()
	assert.Equal(t, f.Preview(), u.Avatar)
	assert.Empty(t, u.Name)
}

func TestLoadAvatarSniffsWithoutExtension(t *testing.T) {
	f := NewForm(testUser())
	path := writeFile(t, "avatar", pngHeader)

	require.NoError(t, f.LoadAvatar(path))
	assert.True(t, strings.HasPrefix(f.Preview(), "data:image/png;base64,"))
}

func TestLoadAvatarTooLarge(t *testing.T) {
	f := NewForm(testUser())
	before := f.Preview()

	// sparse 6 MB file; rejected on size alone
	path := filepath.Join(t.TempDir(), "huge.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, file.Truncate(6<<20))
	require.NoError(t, file.Close())

	err = f.LoadAvatar(path)
	require.ErrorIs(t, err, ErrAvatarTooLarge)
	assert.Equal(t, "Image size should be less than 5MB", UserMessage(err))
	assert.Equal(t, before, f.Preview())
	assert.Equal(t, StatusIdle, f.Status())
}

func TestLoadAvatarNotImage(t *testing.T) {
	f := NewForm(testUser())
	before := f.Preview()
	path := writeFile(t, "notes.json", []byte(`{"hello": "world"}`))

	err := f.LoadAvatar(path)
	require.ErrorIs(t, err, ErrAvatarNotImage)
	assert.Equal(t, "Please select an image file", UserMessage(err))
	assert.Equal(t, before, f.Preview())
}

func TestLoadAvatarMissing(t *testing.T) {
	f := NewForm(testUser())

	err := f.LoadAvatar(filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, ErrAvatarMissing)
	assert.Equal(t, "Please select an image file", UserMessage(err))

	assert.ErrorIs(t, f.LoadAvatar("   "), ErrAvatarMissing)
	assert.ErrorIs(t, f.LoadAvatar(t.TempDir()), ErrAvatarMissing)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "unknown", Status(42).String())
}
