package securex

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textReplacer escapes characters that could be interpreted as markup when a
// string is rendered.
var textReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// entityRegexp matches entities SanitizeText itself produces.
var entityRegexp = regexp.MustCompile(`&(amp|lt|gt|quot|#x27|#x2F);`)

// SanitizeText escapes & < > " ' / to their HTML entity equivalents.
// It is idempotent: running it over its own output yields the same string.
// Use it on any untrusted value destined for display, including server
// error messages and OAuth callback parameters.
func SanitizeText(s string) string {
	// Split around entities we already emitted so the ampersand rule does
	// not re-escape them on a second pass.
	var b strings.Builder
	last := 0
	for _, loc := range entityRegexp.FindAllStringIndex(s, -1) {
		b.WriteString(textReplacer.Replace(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(textReplacer.Replace(s[last:]))
	return b.String()
}

// htmlPolicy keeps only inline formatting tags and link attributes,
// mirroring the strict display policy for user-generated content.
var htmlPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "p", "br")
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowStandardURLs()
	p.AllowElements("a")
	return p
}()

// SanitizeHTML strips s down to an allowlist of inline formatting tags
// (b, i, em, strong, a, p, br) and link attributes (href, target, rel).
// Script vectors via tags or attributes are removed; text content is kept.
func SanitizeHTML(s string) string {
	return htmlPolicy.Sanitize(s)
}

// SanitizeStorageValue guards values before they are written to the local
// store, removing script tags and event handlers.
func SanitizeStorageValue(s string) string {
	return SanitizeHTML(s)
}

var dangerousSchemeRegexp = regexp.MustCompile(`(?i)^(javascript|data|vbscript|file|about):`)

var (
	absoluteURLRegexp = regexp.MustCompile(`(?i)^(https?:)?//`)
	rootRelRegexp     = regexp.MustCompile(`^/`)
)

// SanitizeURL returns url trimmed if it is an absolute http(s) URL or a
// root-relative path, and "" otherwise. Dangerous schemes (javascript:,
// data:, vbscript:, file:, about:) always yield "".
func SanitizeURL(url string) string {
	trimmed := strings.TrimSpace(url)
	if dangerousSchemeRegexp.MatchString(trimmed) {
		return ""
	}
	if !absoluteURLRegexp.MatchString(trimmed) && !rootRelRegexp.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

// SanitizeObjectKeys returns a copy of m without keys that could be used
// for prototype-pollution style attacks against a downstream JSON consumer.
// Nested maps and slices are scrubbed recursively.
func SanitizeObjectKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == "__proto__" || k == "constructor" || k == "prototype" {
			continue
		}
		out[k] = sanitizeValue(v)
	}
	return out
}

// SanitizeBody scrubs dangerous keys from any map/slice payload before it
// is serialized for transport. Non-container values pass through unchanged.
func SanitizeBody(body any) any {
	return sanitizeValue(body)
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return SanitizeObjectKeys(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = sanitizeValue(item)
		}
		return out
	default:
		return v
	}
}
