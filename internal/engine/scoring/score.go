// Package scoring decides which candidates an outbound notification campaign
// may contact and how well each one fits the employer's targeting criteria.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/craftly/crewcall/internal/engine"
)

// Sub-score caps. The five components sum to at most 100.
const (
	maxCertScore       = 40
	maxProximityScore  = 25
	maxExperienceScore = 20
	maxFreshnessScore  = 10
	maxTravelBonus     = 5
)

// MinEligibleScore is the floor below which contacting a candidate wastes a
// paid SMS. Eligibility additionally requires explicit consent and a phone
// number regardless of score.
const MinEligibleScore = 25

// TopTierScore marks an eligible candidate as top tier for summary counts.
const TopTierScore = 70

// Disqualification reasons use fixed text so campaign UIs can group them.
const (
	ReasonNoConsent = "No SMS opt-in consent"
	ReasonNoPhone   = "No phone number on file"
	ReasonLowScore  = "Fit score below minimum threshold"
)

// ScoreBreakdown is the five named sub-scores and their capped sum.
type ScoreBreakdown struct {
	Certifications int `json:"certifications"`
	Proximity      int `json:"proximity"`
	Experience     int `json:"experience"`
	Freshness      int `json:"freshness"`
	TravelBonus    int `json:"travel_bonus"`
	Total          int `json:"total"`
}

// ScoredCandidate is one candidate's scoring outcome. Eligible implies an
// empty Reasons list; disqualification is an explained outcome, not an error.
type ScoredCandidate struct {
	Candidate engine.CandidateRecord `json:"candidate"`
	Breakdown ScoreBreakdown         `json:"breakdown"`
	Score     int                    `json:"score"`
	Eligible  bool                   `json:"eligible"`
	Reasons   []string               `json:"reasons,omitempty"`
}

// Score computes the composite fitness score and eligibility verdict for one
// candidate against one criteria set. Deterministic and total: once the
// inputs validate, missing optional data degrades to conservative defaults
// instead of failing.
func Score(c engine.CandidateRecord, t engine.TargetingCriteria, now time.Time) (ScoredCandidate, error) {
	if err := t.Validate(); err != nil {
		return ScoredCandidate{}, err
	}
	if err := c.Validate(); err != nil {
		return ScoredCandidate{}, err
	}
	return scoreValidated(c, t, now), nil
}

func scoreValidated(c engine.CandidateRecord, t engine.TargetingCriteria, now time.Time) ScoredCandidate {
	engine.IncrScoringPasses()

	certs := certScore(c.Certifications, t.RequiredCerts)
	prox := proximityScore(c, t)
	exp := experienceScore(c.YearsExperience, t.MinYears)
	fresh := freshnessScore(c.LastActive, now)
	travel := travelBonus(c.WillingToTravel, prox)

	total := certs + prox + exp + fresh + travel
	if total > 100 {
		total = 100
	}

	var reasons []string
	if !c.SMSConsent {
		reasons = append(reasons, ReasonNoConsent)
	}
	if strings.TrimSpace(c.Phone) == "" {
		reasons = append(reasons, ReasonNoPhone)
	}
	if total < MinEligibleScore {
		reasons = append(reasons, ReasonLowScore)
	}

	return ScoredCandidate{
		Candidate: c,
		Breakdown: ScoreBreakdown{
			Certifications: certs,
			Proximity:      prox,
			Experience:     exp,
			Freshness:      fresh,
			TravelBonus:    travel,
			Total:          total,
		},
		Score:    total,
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}
}

// certScore awards up to 40 points for required-certification coverage.
// A partial ratio is penalized below-linear (×0.9) so a fully-qualified
// candidate always outranks a partially-qualified one of similar ratio.
func certScore(held, required []string) int {
	if len(required) == 0 {
		// No requirement: 60% baseline rather than free full marks.
		return round(maxCertScore * 0.6)
	}
	matched := 0
	for _, req := range required {
		for _, h := range held {
			if engine.SameCert(req, h) {
				matched++
				break
			}
		}
	}
	ratio := float64(matched) / float64(len(required))
	if ratio >= 1 {
		return maxCertScore
	}
	return round(ratio * maxCertScore * 0.9)
}

// proximityUnknownPct is the flat credit when location is unknown or labels
// share nothing — "unknown but not automatically penalized". See DESIGN.md.
const proximityUnknownPct = 0.3

// proximityScore awards up to 25 points. With coordinates on both sides it
// applies a step curve over Haversine distance; otherwise it falls back to
// label comparison.
func proximityScore(c engine.CandidateRecord, t engine.TargetingCriteria) int {
	if c.Latitude != nil && c.Longitude != nil && t.Latitude != nil && t.Longitude != nil {
		d := engine.HaversineMiles(*c.Latitude, *c.Longitude, *t.Latitude, *t.Longitude)
		switch {
		case d <= 25:
			return maxProximityScore
		case d <= 50:
			return round(maxProximityScore * 0.8)
		case d <= 100:
			return round(maxProximityScore * 0.5)
		case d <= t.RadiusMiles:
			return round(maxProximityScore * 0.25)
		default:
			return 0
		}
	}

	cl := strings.ToLower(strings.TrimSpace(c.Location))
	tl := strings.ToLower(strings.TrimSpace(t.Location))
	switch {
	case cl != "" && cl == tl:
		return maxProximityScore
	case cl != "" && tl != "" && (strings.Contains(cl, tl) || strings.Contains(tl, cl)):
		return round(maxProximityScore * 0.7)
	case engine.SameState(c.Location, t.Location):
		return round(maxProximityScore * 0.4)
	default:
		return round(maxProximityScore * proximityUnknownPct)
	}
}

// experienceScore awards up to 20 points on a logarithmic curve saturating
// near 15 years. Below the criteria minimum a near-miss candidate keeps a
// reduced, still-nonzero credit.
func experienceScore(years, minYears int) int {
	if years < minYears {
		base := float64(minYears)
		if base < 1 {
			base = 1
		}
		return round(float64(years) / base * maxExperienceScore * 0.6)
	}
	curve := math.Log(float64(years)+1) / math.Log(16)
	if curve > 1 {
		curve = 1
	}
	return round(curve * maxExperienceScore)
}

// freshnessScore awards up to 10 points for recent activity. A missing
// last-active timestamp counts as stale.
func freshnessScore(lastActive, now time.Time) int {
	if lastActive.IsZero() {
		return 0
	}
	days := now.Sub(lastActive).Hours() / 24
	switch {
	case days < 7:
		return maxFreshnessScore
	case days < 30:
		return 8
	case days < 90:
		return 5
	case days < 180:
		return 2
	default:
		return 0
	}
}

// travelBonus awards up to 5 points, scaled by how much the proximity score
// already failed to reward the candidate. A local candidate gets nothing
// extra; a distant candidate willing to travel gets close to the full bonus.
func travelBonus(willing bool, proximity int) int {
	if !willing {
		return 0
	}
	return round(maxTravelBonus * (1 - float64(proximity)/maxProximityScore))
}

func round(f float64) int {
	return int(math.Round(f))
}
