package draft

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/craftly/crewcall/internal/engine"
)

// Synthesizer produces free-text answers for fields template lookup cannot
// fill. The rule-based implementation below is the default; a deployment may
// substitute a generative-model backend behind the same interface without
// touching the pipeline. Implementations must be safe for concurrent use.
type Synthesizer interface {
	Synthesize(ctx context.Context, p engine.CandidateProfile, job engine.JobPosting, field ATSFieldSpec) (string, error)
}

// Screening-question indicators. Single words match whole label tokens;
// phrases match as substrings.
var (
	screeningWords = map[string]bool{
		"why": true, "how": true, "describe": true, "explain": true,
		"salary": true, "compensation": true, "availability": true,
		"interest": true, "interested": true, "motivation": true,
	}
	screeningPhrases = []string{
		"tell us", "tell me", "experience with", "cover letter", "start date",
	}
)

// IsScreeningQuestion reports whether a field needs synthesized prose: a
// multi-line free-text field whose label reads like a question.
func IsScreeningQuestion(field ATSFieldSpec) bool {
	if field.Type != FieldLongText {
		return false
	}
	lower := strings.ToLower(field.Label)
	for _, phrase := range screeningPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, tok := range strings.Fields(lower) {
		if screeningWords[strings.Trim(tok, "?,.:;!()")] {
			return true
		}
	}
	return false
}

// RuleSynthesizer is the deterministic default: category-specific templates
// composed from the profile and posting, no external calls.
type RuleSynthesizer struct{}

func NewRuleSynthesizer() *RuleSynthesizer {
	return &RuleSynthesizer{}
}

func (s *RuleSynthesizer) Synthesize(_ context.Context, p engine.CandidateProfile, job engine.JobPosting, field ATSFieldSpec) (string, error) {
	lower := strings.ToLower(field.Label)
	var text string
	switch {
	case strings.Contains(lower, "cover letter"):
		text = coverLetter(p, job)
	case strings.Contains(lower, "salary") || strings.Contains(lower, "compensation"):
		text = "I'm open to discussing compensation based on the full scope of the role and its responsibilities."
	case strings.Contains(lower, "start date") || strings.Contains(lower, "availab"):
		text = "I can be available to start within two weeks of an offer."
	case strings.Contains(lower, "describe") || strings.Contains(lower, "experience with") || strings.Contains(lower, "tell us") || strings.Contains(lower, "tell me"):
		text = experienceAnswer(p, job)
	case strings.Contains(lower, "why") || strings.Contains(lower, "interest") || strings.Contains(lower, "motivat"):
		text = motivationAnswer(p, job)
	default:
		text = motivationAnswer(p, job)
	}
	if field.MaxLength > 0 {
		text = engine.TruncateAtWord(text, field.MaxLength)
	}
	return text, nil
}

// motivationAnswer references years of experience, top certifications, and
// the job title.
func motivationAnswer(p engine.CandidateProfile, job engine.JobPosting) string {
	title := job.Title
	if title == "" {
		title = "this"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "With %d years of hands-on experience", p.YearsExperience)
	if certs := topCerts(p.Certifications, 3); certs != "" {
		fmt.Fprintf(&b, " and certifications including %s", certs)
	}
	fmt.Fprintf(&b, ", I'm confident I can contribute from day one.")
	fmt.Fprintf(&b, " The %s role matches the work I do best", title)
	if job.Company != "" {
		fmt.Fprintf(&b, ", and %s is a team I'd be proud to join", job.Company)
	}
	b.WriteString(".")
	return b.String()
}

// experienceAnswer extracts the most keyword-relevant sentences from the
// resume, falling back to a generic summary when there is no resume text or
// no keyword overlap with the posting.
func experienceAnswer(p engine.CandidateProfile, job engine.JobPosting) string {
	jobKW := engine.ExtractKeywords(job.Description + " " + job.Requirements)
	sentences := relevantSentences(p.ResumeText, jobKW, 3)
	if len(sentences) == 0 {
		return genericExperienceSummary(p, job)
	}
	return strings.Join(sentences, " ")
}

func genericExperienceSummary(p engine.CandidateProfile, job engine.JobPosting) string {
	field := strings.TrimSpace(job.Category)
	if field == "" {
		field = "this line of"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I have %d years of experience in %s work", p.YearsExperience, field)
	if certs := topCerts(p.Certifications, 3); certs != "" {
		fmt.Fprintf(&b, ", backed by %s", certs)
	}
	b.WriteString(". I'm comfortable working independently or as part of a crew, and I take safety and quality seriously.")
	return b.String()
}

// relevantSentences scores each resume sentence by overlap with the job
// keyword set and returns the top non-zero scorers in original order.
func relevantSentences(resume string, jobKW map[string]bool, limit int) []string {
	if resume == "" || len(jobKW) == 0 {
		return nil
	}
	type scored struct {
		idx   int
		score int
		text  string
	}
	var hits []scored
	for i, s := range splitSentences(resume) {
		n := 0
		for kw := range engine.ExtractKeywords(s) {
			if jobKW[kw] {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, scored{idx: i, score: n, text: s})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].idx < hits[j].idx })
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.text
	}
	return out
}

func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			out = append(out, s)
		}
	}
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return out
}

// coverLetter composes a short paragraph referencing years of experience,
// top certifications, the candidate's summary, and travel willingness.
func coverLetter(p engine.CandidateProfile, job engine.JobPosting) string {
	var b strings.Builder
	if job.Company != "" {
		fmt.Fprintf(&b, "Dear %s Hiring Team,\n\n", job.Company)
	} else {
		b.WriteString("Dear Hiring Team,\n\n")
	}
	title := job.Title
	if title == "" {
		title = "open"
	}
	fmt.Fprintf(&b, "I'm writing to apply for the %s position. I bring %d years of experience to the role", title, p.YearsExperience)
	if certs := topCerts(p.Certifications, 3); certs != "" {
		fmt.Fprintf(&b, ", along with %s", certs)
	}
	b.WriteString(".")
	if s := strings.TrimSpace(p.Summary); s != "" {
		b.WriteString(" " + s)
		if !strings.HasSuffix(s, ".") {
			b.WriteString(".")
		}
	}
	if p.WillingToTravel {
		b.WriteString(" I'm willing to travel for the right opportunity.")
	}
	b.WriteString("\n\nI'd welcome the chance to discuss how I can contribute.\n\nSincerely,\n")
	b.WriteString(p.FullName)
	return b.String()
}

func topCerts(certs []string, n int) string {
	if len(certs) == 0 {
		return ""
	}
	if len(certs) > n {
		certs = certs[:n]
	}
	return strings.Join(certs, ", ")
}
