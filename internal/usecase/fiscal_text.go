package usecase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SEFAZ rejects these characters in free-text fields because they break the XML envelope.
const forbiddenFiscalChars = `<>&"'`

const (
	MaxAddressFieldLength    = 60
	MaxOperationNatureLen    = 60
	MaxProductDescriptionLen = 120
)

var fiscalTextTransformer = transform.Chain(
	norm.NFC,
	runes.Remove(runes.Predicate(func(r rune) bool {
		return strings.ContainsRune(forbiddenFiscalChars, r)
	})),
	runes.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}),
)

// SanitizeFiscalText rewrites s into a form SEFAZ accepts: NFC, no XML-special or
// control characters, single spaces, trimmed and cut at max runes (max <= 0 disables the cut).
func SanitizeFiscalText(s string, max int) string {
	out, _, err := transform.String(fiscalTextTransformer, s)
	if err != nil {
		out = s
	}
	out = strings.Join(strings.Fields(out), " ")
	if max > 0 && utf8.RuneCountInString(out) > max {
		out = strings.TrimSpace(string([]rune(out)[:max]))
	}
	return out
}

// CheckFiscalText reports every rule a free-text value breaks. Empty values pass;
// presence is checked elsewhere.
func CheckFiscalText(label, s string, max int) []string {
	if s == "" {
		return nil
	}
	var out []string
	if strings.ContainsAny(s, forbiddenFiscalChars) {
		out = append(out, fmt.Sprintf("%s contains characters not accepted by SEFAZ (< > & \" ')", label))
	}
	if strings.ContainsAny(s, "\n\r\t") {
		out = append(out, fmt.Sprintf("%s must not contain line breaks or tabs", label))
	} else if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		out = append(out, fmt.Sprintf("%s contains control characters", label))
	}
	if strings.TrimSpace(s) != s {
		out = append(out, fmt.Sprintf("%s must not start or end with spaces", label))
	}
	if strings.Contains(s, "  ") {
		out = append(out, fmt.Sprintf("%s must not contain consecutive spaces", label))
	}
	if max > 0 && utf8.RuneCountInString(s) > max {
		out = append(out, fmt.Sprintf("%s exceeds %d characters", label, max))
	}
	return out
}

// CheckJustification validates cancellation/invalidation/CCe free text.
func CheckJustification(label, s string, min, max int) []string {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	var out []string
	if n < min {
		out = append(out, fmt.Sprintf("%s must have at least %d characters", label, min))
	}
	out = append(out, CheckFiscalText(label, s, max)...)
	return out
}
