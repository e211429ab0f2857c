package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
	"github.com/craftly/crewcall/internal/engine"
)

const synthPrompt = `You are helping a job seeker answer one application form question.

QUESTION: %s

JOB: %s at %s
JOB DESCRIPTION:
%s

CANDIDATE:
%s

Write the answer in first person, concrete and professional, 2-5 sentences.
Use only facts from the candidate block above. %s
Return ONLY the answer text, no markdown, no preamble.`

// LLMSynthesizer is the production swap-in for RuleSynthesizer: same
// interface, answers generated by the configured LLM.
type LLMSynthesizer struct {
	client *llm.Client
}

func NewLLMSynthesizer(client *llm.Client) *LLMSynthesizer {
	return &LLMSynthesizer{client: client}
}

func (s *LLMSynthesizer) Synthesize(ctx context.Context, p engine.CandidateProfile, job engine.JobPosting, field ATSFieldSpec) (string, error) {
	engine.IncrLLMCalls()

	lengthHint := ""
	if field.MaxLength > 0 {
		lengthHint = fmt.Sprintf("Keep it under %d characters.", field.MaxLength)
	}
	prompt := fmt.Sprintf(synthPrompt,
		field.Label,
		job.Title, job.Company,
		engine.TruncateRunes(job.Description+"\n"+job.Requirements, 2000, "..."),
		profileContext(p),
		lengthHint,
	)

	raw, err := s.client.Complete(ctx, "", prompt,
		llm.WithChatTemperature(0.4),
		llm.WithChatMaxTokens(600),
	)
	if err != nil {
		engine.IncrLLMErrors()
		return "", fmt.Errorf("synthesize %q: %w", field.ID, err)
	}

	text := stripFences(raw)
	if field.MaxLength > 0 {
		text = engine.TruncateAtWord(text, field.MaxLength)
	}
	return text, nil
}

// profileContext formats the profile facts the model may draw on.
func profileContext(p engine.CandidateProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nYears of experience: %d\n", p.FullName, p.YearsExperience)
	if len(p.Certifications) > 0 {
		fmt.Fprintf(&b, "Certifications: %s\n", strings.Join(p.Certifications, ", "))
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	if p.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", p.Summary)
	}
	if p.ResumeText != "" {
		fmt.Fprintf(&b, "Resume:\n%s\n", engine.TruncateRunes(p.ResumeText, 3000, "..."))
	}
	fmt.Fprintf(&b, "Willing to travel: %s\n", yesNo(p.WillingToTravel))
	return b.String()
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
