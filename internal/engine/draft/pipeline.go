package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftly/crewcall/internal/engine"
	"github.com/google/uuid"
)

// acceptConfidence is the bar above which a template answer is taken as-is;
// below it a field goes to synthesis or human review.
const acceptConfidence = 0.7

// synthesizedConfidence sits under the accept bar so reviewers can spot
// generated text.
const synthesizedConfidence = 0.6

// lowMatchThreshold triggers the "low match" draft warning.
const lowMatchThreshold = 40

// ApplicationDraft is a complete prepared application, returned once and
// never mutated afterward: callers persist it pending human approval, or
// discard it.
type ApplicationDraft struct {
	ID          string        `json:"id"`
	JobID       int64         `json:"job_id"`
	Platform    string        `json:"platform"`
	Answers     []FieldAnswer `json:"answers"`
	CoverLetter string        `json:"cover_letter"`
	MatchScore  int           `json:"match_score"`
	Warnings    []string      `json:"warnings,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Pipeline assembles application drafts for (profile, job) pairs.
type Pipeline struct {
	Synth Synthesizer
	Now   func() time.Time
}

// ruleFallback answers fields when the configured synthesizer errors; the
// pipeline always returns a usable draft.
var ruleFallback = NewRuleSynthesizer()

// NewPipeline returns a pipeline using the given synthesizer, or the
// deterministic rule-based one when synth is nil.
func NewPipeline(synth Synthesizer) *Pipeline {
	if synth == nil {
		synth = ruleFallback
	}
	return &Pipeline{Synth: synth, Now: time.Now}
}

// BuildDraft fills the given field list (or the platform default when nil)
// for one (profile, job) pair. Warnings are advisory, never blocking.
func (pl *Pipeline) BuildDraft(ctx context.Context, p engine.CandidateProfile, job engine.JobPosting, fields []ATSFieldSpec) (*ApplicationDraft, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	engine.IncrDraftsGenerated()

	if len(fields) == 0 {
		fields = DefaultFields(job.ATSPlatform)
	}

	draft := &ApplicationDraft{
		ID:       uuid.NewString(),
		JobID:    job.ID,
		Platform: ResolvePlatform(job.ATSPlatform),
	}

	for _, f := range fields {
		ans, ok := ResolveField(f, p)
		switch {
		case ok && ans.Confidence >= acceptConfidence:
			draft.Answers = append(draft.Answers, ans)
		case IsScreeningQuestion(f):
			draft.Answers = append(draft.Answers, pl.synthesize(ctx, p, job, f))
		case ok:
			draft.Answers = append(draft.Answers, ans)
			draft.Warnings = append(draft.Warnings, fmt.Sprintf("Field %q filled with low confidence; review before submitting", f.Label))
		case f.Required:
			draft.Answers = append(draft.Answers, FieldAnswer{FieldID: f.ID, Source: SourceTemplate})
			draft.Warnings = append(draft.Warnings, fmt.Sprintf("Required field %q could not be auto-filled", f.Label))
		}
	}

	// A cover letter is always produced, requested as a field or not.
	cl := pl.synthesize(ctx, p, job, ATSFieldSpec{
		ID:        "cover_letter",
		Label:     "Cover Letter",
		Type:      FieldLongText,
		MaxLength: 4000,
	})
	draft.CoverLetter = cl.Value

	draft.MatchScore = ComputeMatchScore(p, job)
	if draft.MatchScore < lowMatchThreshold {
		draft.Warnings = append(draft.Warnings, fmt.Sprintf("Low match: fit score %d/100 for this posting", draft.MatchScore))
	}
	for _, cert := range MissingCerts(p, job) {
		draft.Warnings = append(draft.Warnings, fmt.Sprintf("Missing certification: %s", cert))
	}

	draft.GeneratedAt = pl.now().UTC()
	return draft, nil
}

// synthesize runs the configured synthesizer, degrading to the rule-based
// implementation on error.
func (pl *Pipeline) synthesize(ctx context.Context, p engine.CandidateProfile, job engine.JobPosting, f ATSFieldSpec) FieldAnswer {
	text, err := pl.Synth.Synthesize(ctx, p, job, f)
	if err != nil {
		slog.Warn("draft: synthesis failed, using rule-based fallback",
			slog.String("field", f.ID), slog.Any("error", err))
		text, _ = ruleFallback.Synthesize(ctx, p, job, f)
	}
	return FieldAnswer{FieldID: f.ID, Value: text, Source: SourceSynthesized, Confidence: synthesizedConfidence}
}

func (pl *Pipeline) now() time.Time {
	if pl.Now != nil {
		return pl.Now()
	}
	return time.Now()
}
