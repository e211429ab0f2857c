package boardserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/craftly/crewcall/internal/engine"
	"github.com/craftly/crewcall/internal/engine/scoring"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CandidateRankInput is a candidate batch plus one targeting criteria set.
type CandidateRankInput struct {
	Criteria   engine.TargetingCriteria `json:"criteria"`
	Candidates []engine.CandidateRecord `json:"candidates"`
}

// CandidateRankOutput is the ranked batch: eligible candidates first,
// descending score within each eligibility group.
type CandidateRankOutput struct {
	Results []scoring.ScoredCandidate `json:"results"`
	Summary string                    `json:"summary"`
}

// CampaignEstimateOutput is the audience summary for a criteria change.
type CampaignEstimateOutput struct {
	Total    int    `json:"total"`
	Eligible int    `json:"eligible"`
	TopTier  int    `json:"top_tier"`
	Summary  string `json:"summary"`
}

func registerCandidateRank(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_rank",
		Description: "Score and rank a batch of job-seeker candidates against an employer's targeting criteria (required certifications, location/radius, minimum experience). Returns every candidate with a 0-100 score, a per-component breakdown, an eligibility verdict, and disqualification reasons. Eligible candidates sort first, by descending score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CandidateRankInput) (*mcp.CallToolResult, CandidateRankOutput, error) {
		if len(input.Candidates) == 0 {
			return nil, CandidateRankOutput{}, fmt.Errorf("candidates are required")
		}

		ranked, err := scoring.Rank(input.Candidates, input.Criteria, engine.Now())
		if err != nil {
			return nil, CandidateRankOutput{}, err
		}

		eligible := 0
		for _, r := range ranked {
			if r.Eligible {
				eligible++
			}
		}
		topScore := 0
		if len(ranked) > 0 {
			topScore = ranked[0].Score
		}
		slog.Info("candidate_rank",
			slog.Int("candidates", len(ranked)),
			slog.Int("eligible", eligible),
		)

		return nil, CandidateRankOutput{
			Results: ranked,
			Summary: fmt.Sprintf("Ranked %d candidates: %d eligible, top score %d/100.", len(ranked), eligible, topScore),
		}, nil
	})
}

func registerCampaignEstimate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "campaign_estimate",
		Description: "Estimate the reachable audience for an SMS notification campaign: total candidates, how many pass eligibility (SMS consent, phone on file, score floor), and how many are top tier (score 70+). Cheap enough to call on every targeting-criteria change.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CandidateRankInput) (*mcp.CallToolResult, CampaignEstimateOutput, error) {
		est, err := scoring.EstimateAudience(input.Candidates, input.Criteria, engine.Now())
		if err != nil {
			return nil, CampaignEstimateOutput{}, err
		}
		return nil, CampaignEstimateOutput{
			Total:    est.Total,
			Eligible: est.Eligible,
			TopTier:  est.TopTier,
			Summary:  fmt.Sprintf("%d candidates: %d eligible, %d top tier.", est.Total, est.Eligible, est.TopTier),
		}, nil
	})
}
