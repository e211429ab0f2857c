package scoring

import (
	"slices"
	"testing"
	"time"

	"github.com/craftly/crewcall/internal/engine"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func ptr(f float64) *float64 { return &f }

func TestCertScore(t *testing.T) {
	tests := []struct {
		name     string
		held     []string
		required []string
		want     int
	}{
		{"no requirement baseline", []string{"OSHA 30"}, nil, 24},
		{"all matched", []string{"OSHA-30", "EPA 608"}, []string{"OSHA 30", "EPA 608"}, 40},
		{"none matched", []string{"CDL Class A"}, []string{"OSHA 30", "EPA 608"}, 0},
		{"two of three", []string{"OSHA 30", "EPA 608"}, []string{"OSHA 30", "EPA 608", "TWIC"}, 24},
		{"one of two", []string{"osha30"}, []string{"OSHA 30", "EPA 608"}, 18},
		{"no certs at all", nil, []string{"OSHA 30"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := certScore(tt.held, tt.required); got != tt.want {
				t.Errorf("certScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProximityScoreCoordinates(t *testing.T) {
	dallas := engine.CandidateRecord{Latitude: ptr(32.7767), Longitude: ptr(-96.7970)}

	tests := []struct {
		name     string
		criteria engine.TargetingCriteria
		want     int
	}{
		{"same point", engine.TargetingCriteria{Latitude: ptr(32.7767), Longitude: ptr(-96.7970)}, 25},
		// Fort Worth, ~31 mi.
		{"within 50", engine.TargetingCriteria{Latitude: ptr(32.7555), Longitude: ptr(-97.3308)}, 20},
		// Waco, ~86 mi.
		{"within 100", engine.TargetingCriteria{Latitude: ptr(31.5493), Longitude: ptr(-97.1467)}, 13},
		// Houston, ~225 mi, inside a 300-mile radius.
		{"within radius", engine.TargetingCriteria{Latitude: ptr(29.7604), Longitude: ptr(-95.3698), RadiusMiles: 300}, 6},
		// Houston again, but the radius stops at 200 miles.
		{"outside radius", engine.TargetingCriteria{Latitude: ptr(29.7604), Longitude: ptr(-95.3698), RadiusMiles: 200}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proximityScore(dallas, tt.criteria); got != tt.want {
				t.Errorf("proximityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProximityScoreLabels(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		target    string
		want      int
	}{
		{"exact match", "Austin, TX", "austin, tx", 25},
		{"containment", "Austin", "Austin, TX", 18},
		{"same state", "Austin, TX", "Houston, TX", 10},
		{"different states", "Austin, TX", "Denver, CO", 8},
		{"both unknown", "", "", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := engine.CandidateRecord{Location: tt.candidate}
			cr := engine.TargetingCriteria{Location: tt.target}
			if got := proximityScore(c, cr); got != tt.want {
				t.Errorf("proximityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		years    int
		minYears int
		want     int
	}{
		{"zero years", 0, 0, 0},
		{"saturated", 15, 0, 20},
		{"midpoint of curve", 3, 2, 10},
		{"below minimum reduced", 2, 4, 6},
		{"below minimum still nonzero", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := experienceScore(tt.years, tt.minYears); got != tt.want {
				t.Errorf("experienceScore(%d, %d) = %d, want %d", tt.years, tt.minYears, got, tt.want)
			}
		})
	}

	// Below-minimum credit never beats meeting the minimum.
	if experienceScore(3, 4) >= experienceScore(4, 4) {
		t.Error("near-miss credit should stay below the at-minimum score")
	}
}

func TestFreshnessScore(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		want int
	}{
		{"yesterday", 24 * time.Hour, 10},
		{"ten days", 10 * 24 * time.Hour, 8},
		{"six weeks", 45 * 24 * time.Hour, 5},
		{"four months", 120 * 24 * time.Hour, 2},
		{"ten months", 300 * 24 * time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := freshnessScore(testNow.Add(-tt.ago), testNow); got != tt.want {
				t.Errorf("freshnessScore = %d, want %d", got, tt.want)
			}
		})
	}

	if got := freshnessScore(time.Time{}, testNow); got != 0 {
		t.Errorf("zero last-active should score 0, got %d", got)
	}
}

func TestTravelBonus(t *testing.T) {
	tests := []struct {
		name      string
		willing   bool
		proximity int
		want      int
	}{
		{"unwilling", false, 0, 0},
		{"willing and local", true, 25, 0},
		{"willing and distant", true, 0, 5},
		{"willing and near", true, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := travelBonus(tt.willing, tt.proximity); got != tt.want {
				t.Errorf("travelBonus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreQualifiedCandidate(t *testing.T) {
	c := engine.CandidateRecord{
		ProfileID:       1,
		Name:            "Maria Lopez",
		Phone:           "+15125550101",
		Location:        "Austin, TX",
		YearsExperience: 8,
		WillingToTravel: true,
		SMSConsent:      true,
		Certifications:  []string{"OSHA-30", "EPA 608"},
		LastActive:      testNow.Add(-48 * time.Hour),
	}
	cr := engine.TargetingCriteria{
		RequiredCerts: []string{"OSHA 30", "EPA 608"},
		Location:      "Austin, TX",
		MinYears:      5,
	}

	sc, err := Score(c, cr, testNow)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if !sc.Eligible {
		t.Errorf("expected eligible, got reasons %v", sc.Reasons)
	}
	if len(sc.Reasons) != 0 {
		t.Errorf("eligible candidate must have no reasons, got %v", sc.Reasons)
	}
	if sc.Score < 80 {
		t.Errorf("fully qualified candidate scored %d, want >= 80 (%+v)", sc.Score, sc.Breakdown)
	}
	if sc.Score > 100 {
		t.Errorf("score %d exceeds cap", sc.Score)
	}
	sum := sc.Breakdown.Certifications + sc.Breakdown.Proximity + sc.Breakdown.Experience +
		sc.Breakdown.Freshness + sc.Breakdown.TravelBonus
	if sum != sc.Breakdown.Total {
		t.Errorf("breakdown sum %d != total %d", sum, sc.Breakdown.Total)
	}
}

func TestScoreDisqualification(t *testing.T) {
	base := engine.CandidateRecord{
		ProfileID:       2,
		Name:            "Sam Reed",
		Phone:           "+15125550102",
		SMSConsent:      true,
		Location:        "Austin, TX",
		YearsExperience: 10,
		Certifications:  []string{"OSHA 30"},
		LastActive:      testNow.Add(-24 * time.Hour),
	}
	cr := engine.TargetingCriteria{RequiredCerts: []string{"OSHA 30"}, Location: "Austin, TX"}

	tests := []struct {
		name   string
		mutate func(*engine.CandidateRecord)
		want   []string
	}{
		{"no consent", func(c *engine.CandidateRecord) { c.SMSConsent = false }, []string{ReasonNoConsent}},
		{"no phone", func(c *engine.CandidateRecord) { c.Phone = "  " }, []string{ReasonNoPhone}},
		{"both gates", func(c *engine.CandidateRecord) { c.SMSConsent = false; c.Phone = "" },
			[]string{ReasonNoConsent, ReasonNoPhone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			sc, err := Score(c, cr, testNow)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if sc.Eligible {
				t.Error("expected ineligible")
			}
			if !slices.Equal(sc.Reasons, tt.want) {
				t.Errorf("reasons = %v, want %v", sc.Reasons, tt.want)
			}
			// The gates never suppress the score itself.
			if sc.Score == 0 {
				t.Error("disqualified candidate should still carry a score")
			}
		})
	}
}

func TestScoreFloor(t *testing.T) {
	c := engine.CandidateRecord{
		ProfileID:  3,
		Name:       "Pat Kim",
		Phone:      "+15125550103",
		SMSConsent: true,
	}
	cr := engine.TargetingCriteria{RequiredCerts: []string{"OSHA 30", "EPA 608"}, MinYears: 5}

	sc, err := Score(c, cr, testNow)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if sc.Score >= MinEligibleScore {
		t.Fatalf("test setup: score %d should be below the floor", sc.Score)
	}
	if sc.Eligible {
		t.Error("below-floor candidate must be ineligible")
	}
	if !slices.Contains(sc.Reasons, ReasonLowScore) {
		t.Errorf("reasons = %v, want %q", sc.Reasons, ReasonLowScore)
	}
}

func TestScoreTravelCompensation(t *testing.T) {
	cr := engine.TargetingCriteria{Location: "Austin, TX"}
	far := engine.CandidateRecord{
		ProfileID:  4,
		Name:       "A",
		Phone:      "+15125550104",
		SMSConsent: true,
		Location:   "Denver, CO",
		LastActive: testNow.Add(-24 * time.Hour),
	}
	willing := far
	willing.WillingToTravel = true

	scFar, err := Score(far, cr, testNow)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	scWilling, err := Score(willing, cr, testNow)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if scWilling.Score <= scFar.Score {
		t.Errorf("willing-to-travel should outrank the same candidate unwilling: %d vs %d",
			scWilling.Score, scFar.Score)
	}
}

func TestScoreInvalidInput(t *testing.T) {
	if _, err := Score(engine.CandidateRecord{YearsExperience: -1}, engine.TargetingCriteria{}, testNow); err == nil {
		t.Error("negative experience should fail validation")
	}
	if _, err := Score(engine.CandidateRecord{}, engine.TargetingCriteria{RadiusMiles: -5}, testNow); err == nil {
		t.Error("negative radius should fail validation")
	}
	if _, err := Score(engine.CandidateRecord{}, engine.TargetingCriteria{MinYears: -1}, testNow); err == nil {
		t.Error("negative minimum years should fail validation")
	}
}
