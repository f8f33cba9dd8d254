package slug

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var nonKeyChars = regexp.MustCompile(`[^a-z0-9.-]+`)

// SanitizeFilename turns an uploaded filename into a safe object storage
// key component. Path separators and exotic characters are stripped so the
// result never escapes its prefix.
// Example: "My Résumé (final).PDF" -> "my-rsum-final.pdf"
func SanitizeFilename(name string) string {
	// Drop any client-supplied directory part
	name = filepath.Base(name)

	ext := strings.ToLower(filepath.Ext(name))
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))

	base = strings.ReplaceAll(base, " ", "-")
	base = nonKeyChars.ReplaceAllString(base, "")
	base = strings.Trim(base, "-.")

	if base == "" {
		base = "file"
	}

	ext = nonKeyChars.ReplaceAllString(ext, "")
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return base + ext
}

// ResumeObjectKey builds the storage key for an uploaded resume.
// Format: resumes/{career-slug}/{unix-ts}-{sanitized-filename}
func ResumeObjectKey(careerSlug, filename string, now time.Time) string {
	return fmt.Sprintf("resumes/%s/%d-%s", careerSlug, now.Unix(), SanitizeFilename(filename))
}
