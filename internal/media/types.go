package media

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".wmv":  "video/x-ms-wmv",
	".ogv":  "video/ogg",
	".mpg":  "video/mpeg",
	".mpeg": "video/mpeg",
	".ts":   "video/mp2t",
}

// IsVideoPath reports whether path has a known video extension.
func IsVideoPath(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// DetectType returns a MIME type label for the file at path.
// The extension decides for known video files; otherwise the first 512
// bytes are sniffed.
func DetectType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := videoExtensions[ext]; ok {
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}

	t := http.DetectContentType(head[:n])
	if t == "application/octet-stream" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			t = byExt
		}
	}
	return t, nil
}

// Supported reports whether a source with this type label and path can be
// handed to the player.
func Supported(mimeType, path string) bool {
	return strings.HasPrefix(mimeType, "video/") || IsVideoPath(path)
}
