package gcs

import (
	"fmt"
	"path"
	"strings"
)

// InputKey builds the object key for an uploaded capture. The key embeds
// the job identifier so objects never collide across jobs.
func InputKey(jobID, filename string) string {
	return fmt.Sprintf("inputs/%s/%s", jobID, SanitizeFilename(filename))
}

// ModelKey builds the object key for a reconstructed model.
func ModelKey(jobID, ext string) string {
	return fmt.Sprintf("models/%s/model.%s", jobID, strings.TrimPrefix(ext, "."))
}

// SanitizeFilename strips any directory components and characters that
// have no business in an object key.
func SanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// URI formats a bucket and key as a gs:// URI.
func URI(bucket, key string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, key)
}

// ParseURI splits a gs://bucket/key URI into its bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	const scheme = "gs://"
	if !strings.HasPrefix(uri, scheme) {
		return "", "", fmt.Errorf("not a gs:// uri: %q", uri)
	}
	rest := strings.TrimPrefix(uri, scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed gs:// uri: %q", uri)
	}
	return bucket, key, nil
}
