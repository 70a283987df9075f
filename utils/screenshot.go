package utils

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	MaxScreenshotBytes = 3 << 20
	ScreenshotPrefix   = "orders/"
	ScreenshotCache    = "public, max-age=31536000"

	defaultExtension = "png"
	maxExtensionLen  = 5
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Screenshot is an uploaded payment proof held in memory.
type Screenshot struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SafeExtension lowercases the original extension and strips anything
// outside [a-z0-9]. Missing or unusable extensions become "png".
func SafeExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return defaultExtension
	}

	ext := nonAlnum.ReplaceAllString(strings.ToLower(filename[idx+1:]), "")
	if ext == "" || len(ext) > maxExtensionLen {
		return defaultExtension
	}
	return ext
}

// ObjectName builds orders/<unix-millis>-<random>.<ext>.
func ObjectName(filename string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return fmt.Sprintf("%s%d-%s.%s", ScreenshotPrefix, now.UnixMilli(), suffix, SafeExtension(filename))
}

// PublicURL is <base>/<bucket>/<object>, with each object segment escaped.
func PublicURL(base, bucket, object string) string {
	segments := strings.Split(object, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + path.Join(url.PathEscape(bucket), strings.Join(segments, "/"))
}

// DetectContentType prefers the declared type and sniffs the bytes otherwise.
func (s Screenshot) DetectContentType() string {
	declared := strings.TrimSpace(s.ContentType)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(s.Data).String()
}
