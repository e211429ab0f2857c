package boardserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/craftly/crewcall/internal/engine"
	"github.com/craftly/crewcall/internal/engine/draft"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ApplicationDraftInput is one (profile, job) pair. Fields overrides the
// platform's default form shape when the caller knows the real field list.
type ApplicationDraftInput struct {
	Profile engine.CandidateProfile `json:"profile"`
	Job     engine.JobPosting       `json:"job"`
	Fields  []draft.ATSFieldSpec    `json:"fields,omitempty"`
}

// ApplicationDraftOutput wraps the prepared draft. The draft is pending:
// a human approves it before anything is submitted.
type ApplicationDraftOutput struct {
	Draft   *draft.ApplicationDraft `json:"draft"`
	Summary string                  `json:"summary"`
}

func registerApplicationDraft(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_draft",
		Description: "Prepare an ATS application draft for a candidate profile and a job posting: deterministic field mapping onto the target platform's form vocabulary (greenhouse, lever, workday, icims, or generic), synthesized answers for screening questions, a cover letter, a 0-100 match score, and review warnings. Nothing is submitted; the draft awaits human approval.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ApplicationDraftInput) (*mcp.CallToolResult, ApplicationDraftOutput, error) {
		if input.Job.Title == "" && input.Job.ID == 0 {
			return nil, ApplicationDraftOutput{}, fmt.Errorf("job is required")
		}

		d, err := newPipeline().BuildDraft(ctx, input.Profile, input.Job, input.Fields)
		if err != nil {
			return nil, ApplicationDraftOutput{}, err
		}

		slog.Info("application_draft",
			slog.String("platform", d.Platform),
			slog.Int("answers", len(d.Answers)),
			slog.Int("warnings", len(d.Warnings)),
			slog.Int("match_score", d.MatchScore),
		)

		return nil, ApplicationDraftOutput{
			Draft: d,
			Summary: fmt.Sprintf("Drafted %d answers for %q on %s (match %d/100, %d warnings).",
				len(d.Answers), input.Job.Title, d.Platform, d.MatchScore, len(d.Warnings)),
		}, nil
	})
}
