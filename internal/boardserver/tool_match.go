package boardserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/craftly/crewcall/internal/engine"
	"github.com/craftly/crewcall/internal/engine/draft"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// JobMatchScoreInput is one profile against a batch of postings.
type JobMatchScoreInput struct {
	Profile engine.CandidateProfile `json:"profile"`
	Jobs    []engine.JobPosting     `json:"jobs"`
}

// JobMatchResult is one posting's fit for the profile.
type JobMatchResult struct {
	JobID        int64    `json:"job_id"`
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	MatchScore   int      `json:"match_score"`
	MissingCerts []string `json:"missing_certs,omitempty"`
}

// JobMatchScoreOutput is the batch sorted by descending match score.
type JobMatchScoreOutput struct {
	Results []JobMatchResult `json:"results"`
	Summary string           `json:"summary"`
}

func registerJobMatchScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match_score",
		Description: "Score a candidate profile against a batch of job postings. Returns each posting with a 0-100 fit score (certification coverage, experience, resume/description keyword overlap, travel willingness) and any required certifications the candidate is missing, sorted by match score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobMatchScoreInput) (*mcp.CallToolResult, JobMatchScoreOutput, error) {
		if len(input.Jobs) == 0 {
			return nil, JobMatchScoreOutput{}, fmt.Errorf("jobs are required")
		}
		if err := input.Profile.Validate(); err != nil {
			return nil, JobMatchScoreOutput{}, err
		}

		results := make([]JobMatchResult, 0, len(input.Jobs))
		for _, job := range input.Jobs {
			results = append(results, JobMatchResult{
				JobID:        job.ID,
				Title:        job.Title,
				Company:      job.Company,
				MatchScore:   draft.ComputeMatchScore(input.Profile, job),
				MissingCerts: draft.MissingCerts(input.Profile, job),
			})
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MatchScore > results[j].MatchScore
		})

		return nil, JobMatchScoreOutput{
			Results: results,
			Summary: fmt.Sprintf("Scored %d postings for %s. Top match: %d/100.",
				len(results), input.Profile.FullName, results[0].MatchScore),
		}, nil
	})
}
