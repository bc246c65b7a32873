package utils

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML neutralises HTML-significant characters in free-text input
// before it is stored or embedded into outbound messages.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var controlEscaper = strings.NewReplacer(
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"\f", `\f`,
	"\v", `\v`,
)

// LiteralizeControls rewrites control characters as their visible escape
// sequences so a special request cannot inject line breaks into the
// single-message operator notification.
func LiteralizeControls(s string) string {
	return controlEscaper.Replace(s)
}

// DigitsOnly strips everything but ASCII digits; used to build wa.me links
// from user-formatted phone numbers.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
