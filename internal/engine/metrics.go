package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ScoringPasses    atomic.Int64
	RankRequests     atomic.Int64
	EstimateRequests atomic.Int64
	DraftsGenerated  atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"scoring_passes":    metrics.ScoringPasses.Load(),
		"rank_requests":     metrics.RankRequests.Load(),
		"estimate_requests": metrics.EstimateRequests.Load(),
		"drafts_generated":  metrics.DraftsGenerated.Load(),
		"llm_calls":         metrics.LLMCalls.Load(),
		"llm_errors":        metrics.LLMErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"scoring_passes", "rank_requests", "estimate_requests",
		"drafts_generated", "llm_calls", "llm_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the scoring and draft sub-packages.
func IncrScoringPasses()    { metrics.ScoringPasses.Add(1) }
func IncrRankRequests()     { metrics.RankRequests.Add(1) }
func IncrEstimateRequests() { metrics.EstimateRequests.Add(1) }
func IncrDraftsGenerated()  { metrics.DraftsGenerated.Add(1) }
func IncrLLMCalls()         { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()        { metrics.LLMErrors.Add(1) }
