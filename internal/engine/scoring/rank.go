package scoring

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/craftly/crewcall/internal/engine"
)

// Estimate is the audience summary shown on every targeting-criteria change.
type Estimate struct {
	Total    int `json:"total"`
	Eligible int `json:"eligible"`
	TopTier  int `json:"top_tier"`
}

// Rank scores every candidate independently and sorts the batch: eligible
// candidates always precede ineligible ones, descending score within each
// group. Disqualified candidates stay in the output for transparency.
func Rank(candidates []engine.CandidateRecord, t engine.TargetingCriteria, now time.Time) ([]ScoredCandidate, error) {
	engine.IncrRankRequests()
	scored, err := scoreBatch(candidates, t, now)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Eligible != scored[j].Eligible {
			return scored[i].Eligible
		}
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// EstimateAudience counts the batch without sorting: total candidates,
// eligible candidates, and eligible candidates at or above TopTierScore.
func EstimateAudience(candidates []engine.CandidateRecord, t engine.TargetingCriteria, now time.Time) (Estimate, error) {
	engine.IncrEstimateRequests()
	scored, err := scoreBatch(candidates, t, now)
	if err != nil {
		return Estimate{}, err
	}
	est := Estimate{Total: len(scored)}
	for _, s := range scored {
		if !s.Eligible {
			continue
		}
		est.Eligible++
		if s.Score >= TopTierScore {
			est.TopTier++
		}
	}
	return est, nil
}

// scoreBatch validates up front, then scores candidates in parallel.
// Candidates share no state, so ordering during scoring does not matter.
func scoreBatch(candidates []engine.CandidateRecord, t engine.TargetingCriteria, now time.Time) ([]ScoredCandidate, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
	}

	scored := make([]ScoredCandidate, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scored[i] = scoreValidated(candidates[i], t, now)
		}(i)
	}
	wg.Wait()
	return scored, nil
}
