package reconcile

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Leading source tags like "[HIN] - " prepended by some calendar feeds.
	sourceTagPattern  = regexp.MustCompile(`^\[[^\]]*\]\s*-?\s*`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonDigitPattern   = regexp.MustCompile(`\D+`)

	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizeName lowers, strips diacritics and a leading source tag, and
// collapses whitespace so that differently-typed spellings of the same
// patient name compare equal. Idempotent.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}

	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		stripped = lowered
	}
	// Some feeds stack tags, so strip until nothing matches.
	for {
		next := sourceTagPattern.ReplaceAllString(stripped, "")
		if next == stripped {
			break
		}
		stripped = next
	}
	stripped = whitespacePattern.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(stripped)
}

// NormalizePhone reduces a phone number to a 9-digit national key so that
// +41791234567, 0041791234567, 0791234567 and 791234567 all compare equal.
func NormalizePhone(s string) string {
	digits := nonDigitPattern.ReplaceAllString(s, "")

	switch {
	case strings.HasPrefix(digits, "0041"):
		digits = digits[4:]
	case strings.HasPrefix(digits, "41") && len(digits) > 10:
		digits = digits[2:]
	case strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}

	if len(digits) > 9 {
		digits = digits[len(digits)-9:]
	}
	return digits
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
