package fileutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotImage is returned by CheckImage for anything but a JPEG, PNG, GIF or BMP file.
var ErrNotImage = errors.New("not a supported image")

//nolint:gochecknoglobals
var (
	imageExtensions = []string{".jpeg", ".jpg", ".png", ".gif", ".bmp"}
	imageTypes      = []string{"image/jpeg", "image/png", "image/gif", "image/bmp"}
)

// CheckImage requires both the extension of path and the sniffed content type of data
// to be one of JPEG, PNG, GIF or BMP.
func CheckImage(path string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(path))

	if !contains(imageExtensions, ext) {
		return fmt.Errorf("%w: extension %q", ErrNotImage, ext)
	}

	detected := mimetype.Detect(data)

	for _, t := range imageTypes {
		if detected.Is(t) {
			return nil
		}
	}

	return fmt.Errorf("%w: content is %s", ErrNotImage, detected.String())
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
