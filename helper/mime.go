package helper

import (
	"mime"
	"path"
	"strings"
)

const defaultMimeType = "application/octet-stream"

// GetMimeType returns the MIME type for a file based on its extension.
func GetMimeType(filename string) string {
	mimeType := mime.TypeByExtension(strings.ToLower(path.Ext(filename)))
	if mimeType == "" {
		return defaultMimeType
	}
	return mimeType
}

// IsRasterImage reports whether filename names a bitmap image. SVG is not
// accepted since it may carry scripts.
func IsRasterImage(filename string) bool {
	mimeType := GetMimeType(filename)
	return strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "image/svg")
}
