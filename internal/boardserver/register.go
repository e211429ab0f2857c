// Package boardserver registers crewcall's decision engines as MCP tools:
// candidate_rank, campaign_estimate, application_draft, job_match_score.
package boardserver

import (
	"github.com/craftly/crewcall/internal/engine"
	"github.com/craftly/crewcall/internal/engine/draft"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all crewcall tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerCandidateRank(server)
	registerCampaignEstimate(server)
	registerApplicationDraft(server)
	registerJobMatchScore(server)
}

// newPipeline builds a draft pipeline with the LLM synthesizer when one is
// configured, the deterministic rule-based synthesizer otherwise.
func newPipeline() *draft.Pipeline {
	if engine.Cfg.LLMClient != nil {
		return draft.NewPipeline(draft.NewLLMSynthesizer(engine.Cfg.LLMClient))
	}
	return draft.NewPipeline(nil)
}
