package scoring

import (
	"testing"
	"time"

	"github.com/craftly/crewcall/internal/engine"
)

func rankTestBatch() ([]engine.CandidateRecord, engine.TargetingCriteria) {
	cr := engine.TargetingCriteria{
		RequiredCerts: []string{"OSHA 30"},
		Location:      "Austin, TX",
		MinYears:      2,
	}
	candidates := []engine.CandidateRecord{
		// Ineligible despite a high score: never opted in.
		{
			ProfileID:       10,
			Name:            "No Consent",
			Phone:           "+15125550110",
			Location:        "Austin, TX",
			YearsExperience: 10,
			SMSConsent:      false,
			Certifications:  []string{"OSHA-30"},
			LastActive:      testNow.Add(-24 * time.Hour),
		},
		// Eligible but weak: no certs, neighboring city, sparse activity.
		{
			ProfileID:       11,
			Name:            "Borderline",
			Phone:           "+15125550111",
			Location:        "Houston, TX",
			YearsExperience: 3,
			SMSConsent:      true,
			LastActive:      testNow.Add(-40 * 24 * time.Hour),
		},
		// Eligible and strong.
		{
			ProfileID:       12,
			Name:            "Top Tier",
			Phone:           "+15125550112",
			Location:        "Austin, TX",
			YearsExperience: 10,
			WillingToTravel: true,
			SMSConsent:      true,
			Certifications:  []string{"OSHA-30"},
			LastActive:      testNow.Add(-24 * time.Hour),
		},
	}
	return candidates, cr
}

func TestRankOrdering(t *testing.T) {
	candidates, cr := rankTestBatch()

	ranked, err := Rank(candidates, cr, testNow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != len(candidates) {
		t.Fatalf("len = %d, want %d (disqualified candidates stay in the output)", len(ranked), len(candidates))
	}

	wantOrder := []int64{12, 11, 10}
	for i, want := range wantOrder {
		if got := ranked[i].Candidate.ProfileID; got != want {
			t.Errorf("position %d: profile %d, want %d", i, got, want)
		}
	}

	// No eligible candidate may follow an ineligible one, and within each
	// group scores never increase.
	seenIneligible := false
	for i, r := range ranked {
		if !r.Eligible {
			seenIneligible = true
		} else if seenIneligible {
			t.Errorf("eligible candidate %d after an ineligible one", r.Candidate.ProfileID)
		}
		if i > 0 && ranked[i-1].Eligible == r.Eligible && ranked[i-1].Score < r.Score {
			t.Errorf("scores increase within a group at position %d", i)
		}
	}
}

func TestRankInvalidBatch(t *testing.T) {
	candidates, cr := rankTestBatch()
	candidates = append(candidates, engine.CandidateRecord{ProfileID: 99, YearsExperience: -3})

	if _, err := Rank(candidates, cr, testNow); err == nil {
		t.Error("a batch with an invalid candidate should fail as a whole")
	}
}

func TestEstimateAudience(t *testing.T) {
	candidates, cr := rankTestBatch()

	est, err := EstimateAudience(candidates, cr, testNow)
	if err != nil {
		t.Fatalf("EstimateAudience: %v", err)
	}
	want := Estimate{Total: 3, Eligible: 2, TopTier: 1}
	if est != want {
		t.Errorf("estimate = %+v, want %+v", est, want)
	}
}

func TestEstimateAudienceEmpty(t *testing.T) {
	est, err := EstimateAudience(nil, engine.TargetingCriteria{}, testNow)
	if err != nil {
		t.Fatalf("EstimateAudience: %v", err)
	}
	if est != (Estimate{}) {
		t.Errorf("estimate = %+v, want zero", est)
	}
}
