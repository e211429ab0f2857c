package engine

import (
	"strings"
	"unicode"

	"github.com/anatolykoptev/go-kit/strutil"
)

// dashReplacer folds hyphen, en-dash and em-dash into spaces so "OSHA-30"
// and "OSHA 30" normalize identically.
var dashReplacer = strings.NewReplacer("-", " ", "–", " ", "—", " ")

// certNoiseWords are filler tokens dropped from normalized cert names so
// "A+ Certification" matches a bare "A+" requirement.
var certNoiseWords = map[string]bool{
	"cert": true, "certificate": true, "certification": true, "certified": true,
}

// NormalizeCert canonicalizes a certification name for fuzzy comparison:
// lowercase, dashes to spaces, everything but letters, digits, '+' and
// spaces stripped, whitespace collapsed, filler words removed.
func NormalizeCert(s string) string {
	s = strings.ToLower(dashReplacer.Replace(s))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == ' ' {
			b.WriteRune(r)
		}
	}
	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, f := range fields {
		if !certNoiseWords[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// SameCert reports whether two certification names refer to the same
// credential. The rule cascade is exact → substring containment →
// space-stripped ("compact") equality or containment, so "NFPA 70E"
// satisfies a requirement observed as "NFPA70E arc flash". Symmetric.
func SameCert(a, b string) bool {
	na, nb := NormalizeCert(a), NormalizeCert(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb || strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	ca := strings.ReplaceAll(na, " ", "")
	cb := strings.ReplaceAll(nb, " ", "")
	return ca == cb || strings.Contains(ca, cb) || strings.Contains(cb, ca)
}

// keywordStopWords filters common English words that add noise to keyword
// overlap scoring.
var keywordStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
	"must": true, "should": true, "other": true, "when": true, "where": true,
}

// ExtractKeywords tokenizes free text into a deduplicated keyword set:
// lowercase alphanumeric tokens longer than 2 chars, stop words removed.
func ExtractKeywords(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) > 2 && !keywordStopWords[w] {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}
