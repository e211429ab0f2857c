package draft

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/craftly/crewcall/internal/engine"
)

// Provenance tags for FieldAnswer.Source.
const (
	SourceTemplate    = "template"
	SourceSynthesized = "synthesized"
)

// FieldAnswer is one produced form value with its provenance and confidence.
type FieldAnswer struct {
	FieldID    string  `json:"field_id"`
	Value      string  `json:"value"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// Template-resolution confidence ladder.
const (
	confExact      = 1.0
	confInference  = 0.9
	confFuzzy      = 0.8
	confExactEmpty = 0.3
	confFuzzyEmpty = 0.2
)

// extractor pulls a field value straight out of a profile.
type extractor func(engine.CandidateProfile) string

// fieldExtractors maps canonical field-name tokens to extraction functions.
// Authorization-type fields resolve to a conservative blank: they carry
// legal consequence, so the candidate must supply the real answer.
var fieldExtractors = map[string]extractor{
	"first_name": func(p engine.CandidateProfile) string { return firstName(p.FullName) },
	"last_name":  func(p engine.CandidateProfile) string { return lastName(p.FullName) },
	"full_name":  func(p engine.CandidateProfile) string { return p.FullName },
	"name":       func(p engine.CandidateProfile) string { return p.FullName },

	"email":         func(p engine.CandidateProfile) string { return p.Email },
	"email_address": func(p engine.CandidateProfile) string { return p.Email },
	"phone":         func(p engine.CandidateProfile) string { return p.Phone },
	"phone_number":  func(p engine.CandidateProfile) string { return p.Phone },

	"location": func(p engine.CandidateProfile) string { return p.Location },
	"city":     func(p engine.CandidateProfile) string { return p.Location },
	"address":  func(p engine.CandidateProfile) string { return p.Location },

	"years_experience":    func(p engine.CandidateProfile) string { return strconv.Itoa(p.YearsExperience) },
	"years_of_experience": func(p engine.CandidateProfile) string { return strconv.Itoa(p.YearsExperience) },

	"certifications": func(p engine.CandidateProfile) string { return strings.Join(p.Certifications, ", ") },
	"licenses":       func(p engine.CandidateProfile) string { return strings.Join(p.Certifications, ", ") },
	"skills":         func(p engine.CandidateProfile) string { return strings.Join(p.Skills, ", ") },

	"resume":      func(p engine.CandidateProfile) string { return p.ResumeText },
	"resume_text": func(p engine.CandidateProfile) string { return p.ResumeText },
	"summary":     func(p engine.CandidateProfile) string { return p.Summary },
	"headline":    func(p engine.CandidateProfile) string { return p.Headline },

	"willing_to_travel": func(p engine.CandidateProfile) string { return yesNo(p.WillingToTravel) },
	"travel":            func(p engine.CandidateProfile) string { return yesNo(p.WillingToTravel) },

	"authorized_to_work": func(engine.CandidateProfile) string { return "" },
	"work_authorization": func(engine.CandidateProfile) string { return "" },
	"citizenship":        func(engine.CandidateProfile) string { return "" },
	"sponsorship":        func(engine.CandidateProfile) string { return "" },
}

// extractorTokens is the mapping's key set in fixed order, so fuzzy
// resolution is deterministic.
var extractorTokens = func() []string {
	keys := make([]string, 0, len(fieldExtractors))
	for k := range fieldExtractors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// NormalizeLabel converts a human field label into the token vocabulary:
// lowercase, non-alphanumeric runs collapsed to single underscores,
// leading/trailing underscores trimmed.
func NormalizeLabel(label string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// ResolveField maps one field spec onto the profile. Resolution order:
// exact token match, fuzzy containment, then choice/boolean inference for
// choice-typed fields. For choice fields a template value that is not one
// of the declared choices cannot be submitted, so it falls through to
// inference instead.
func ResolveField(field ATSFieldSpec, p engine.CandidateProfile) (FieldAnswer, bool) {
	token := NormalizeLabel(field.Label)

	if fn, ok := fieldExtractors[token]; ok {
		if ans, ok := templateAnswer(field, fn(p), confExact, confExactEmpty); ok {
			return ans, true
		}
	}

	if key := fuzzyToken(token); key != "" {
		if ans, ok := templateAnswer(field, fieldExtractors[key](p), confFuzzy, confFuzzyEmpty); ok {
			return ans, true
		}
	}

	if field.Type == FieldChoice {
		if ans, ok := inferChoice(field, p); ok {
			return ans, true
		}
	}

	return FieldAnswer{}, false
}

// templateAnswer wraps an extracted value, dropping it only when the field
// is choice-typed and the value is not a declared choice.
func templateAnswer(field ATSFieldSpec, value string, conf, confEmpty float64) (FieldAnswer, bool) {
	if field.Type == FieldChoice {
		c, ok := matchChoice(field.Choices, value)
		if !ok {
			return FieldAnswer{}, false
		}
		value = c
	}
	ans := FieldAnswer{FieldID: field.ID, Value: value, Source: SourceTemplate, Confidence: conf}
	if strings.TrimSpace(value) == "" {
		ans.Confidence = confEmpty
	}
	return ans, true
}

// fuzzyToken finds the longest mapping token contained in the normalized
// label (or containing it). Returns "" when nothing matches.
func fuzzyToken(token string) string {
	if token == "" {
		return ""
	}
	best := ""
	for _, key := range extractorTokens {
		if strings.Contains(token, key) || strings.Contains(key, token) {
			if len(key) > len(best) {
				best = key
			}
		}
	}
	return best
}

// inferChoice handles choice fields the mapping cannot fill: numeric
// experience ranges and yes/no travel questions.
func inferChoice(field ATSFieldSpec, p engine.CandidateProfile) (FieldAnswer, bool) {
	token := NormalizeLabel(field.Label)
	switch {
	case strings.Contains(token, "experience") || strings.Contains(token, "years"):
		if c, ok := chooseExperienceRange(field.Choices, p.YearsExperience); ok {
			return FieldAnswer{FieldID: field.ID, Value: c, Source: SourceTemplate, Confidence: confInference}, true
		}
	case strings.Contains(token, "travel") || strings.Contains(token, "relocat"):
		if c, ok := matchChoice(field.Choices, yesNo(p.WillingToTravel)); ok {
			return FieldAnswer{FieldID: field.ID, Value: c, Source: SourceTemplate, Confidence: confInference}, true
		}
	}
	return FieldAnswer{}, false
}

var (
	choiceRangeRe = regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)`)
	choicePlusRe  = regexp.MustCompile(`(\d+)\s*\+`)
	choiceNumRe   = regexp.MustCompile(`\d+`)
)

// chooseExperienceRange picks the first declared choice whose numeric range
// contains years. Understands "5-10", "10+", "less than 2" and bare numbers.
func chooseExperienceRange(choices []string, years int) (string, bool) {
	for _, c := range choices {
		lower := strings.ToLower(c)
		if m := choiceRangeRe.FindStringSubmatch(c); m != nil {
			lo, _ := strconv.Atoi(m[1])
			hi, _ := strconv.Atoi(m[2])
			if years >= lo && years <= hi {
				return c, true
			}
			continue
		}
		if m := choicePlusRe.FindStringSubmatch(c); m != nil {
			lo, _ := strconv.Atoi(m[1])
			if years >= lo {
				return c, true
			}
			continue
		}
		if strings.Contains(lower, "less than") || strings.Contains(lower, "under") {
			if m := choiceNumRe.FindString(c); m != "" {
				n, _ := strconv.Atoi(m)
				if years < n {
					return c, true
				}
			}
			continue
		}
		if m := choiceNumRe.FindString(c); m != "" {
			if n, _ := strconv.Atoi(m); years == n {
				return c, true
			}
		}
	}
	return "", false
}

// matchChoice returns the declared choice equal (case-insensitively) to value.
func matchChoice(choices []string, value string) (string, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", false
	}
	for _, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c), v) {
			return c, true
		}
	}
	return "", false
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}
