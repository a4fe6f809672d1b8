package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lowercases s and collapses anything that is not a letter or
// digit into single hyphens, for use in artifact file names.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// DefaultArtifactName builds the default plan file name from the topic and
// a short random suffix, so repeated runs never clobber each other.
func DefaultArtifactName(topic string) string {
	slug := Slugify(topic)
	if slug == "" {
		slug = "plan"
	}
	return fmt.Sprintf("pathwise-%s-%s.json", slug, uuid.NewString()[:8])
}
