package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxAvatarBytes is the largest avatar file accepted
const MaxAvatarBytes = 5 << 20

// DefaultAvatarURL is shown when the user has no avatar
const DefaultAvatarURL = "https://i.pravatar.cc/150?img=3"

// ReadAvatar validates the file at path and returns it as a data URL.
// Presence and size are checked with stat before the file is opened.
func ReadAvatar(path string) (string, error) {
	path = expandHome(strings.TrimSpace(path))
	if path == "" {
		return "", ErrAvatarMissing
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAvatarMissing, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAvatarRead, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrAvatarMissing, path)
	}
	if info.Size() > MaxAvatarBytes {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrAvatarTooLarge, path, info.Size())
	}

	mimeType, err := detectMIME(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAvatarRead, err)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s is %s", ErrAvatarNotImage, path, mimeType)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAvatarRead, err)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// detectMIME goes by extension and falls back to sniffing the first 512 bytes
func detectMIME(path string) (string, error) {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(buf[:n]))
	if err != nil {
		return "", err
	}
	return mediaType, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
