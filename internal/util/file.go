package util

import (
	"math"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SanitizeImageName reduces an image reference from an uploaded bank to a
// bare file name. Directory components and traversal sequences are stripped
// so a bank entry can never escape the images/ prefix of its archive.
func SanitizeImageName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(path.Clean("/" + name))
	if name == "/" || name == "." {
		return ""
	}
	return name
}

// StoredImageName returns a collision-free object name for an uploaded
// image, keeping only the original extension.
func StoredImageName(original string) string {
	ext := strings.ToLower(filepath.Ext(SanitizeImageName(original)))
	return "questions/" + uuid.New().String() + ext
}

// Round2 rounds to two decimal places, the precision every score and rate
// in the API is reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
