package format

import (
	"html"
	"mime"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	dropPolicyOnce sync.Once
	dropPolicy     *bluemonday.Policy
)

// dropText converts a dropped payload into the plain text a field receives.
// HTML is stripped of every element and entity-decoded; other text types are
// used as is; anything else yields no text.
func dropText(mediaType, data string) string {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base = strings.ToLower(strings.TrimSpace(mediaType))
	}
	switch {
	case base == "" || base == "text/plain":
		return data
	case base == "text/html" || base == "application/xhtml+xml":
		return html.UnescapeString(dropSanitizer().Sanitize(data))
	case strings.HasPrefix(base, "text/"):
		return data
	default:
		return ""
	}
}

func dropSanitizer() *bluemonday.Policy {
	dropPolicyOnce.Do(func() {
		dropPolicy = bluemonday.StrictPolicy()
	})
	return dropPolicy
}
