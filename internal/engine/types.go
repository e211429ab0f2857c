package engine

import (
	"fmt"
	"time"
)

// TargetingCriteria is one employer's targeting for an outbound SMS campaign.
// Immutable input to a scoring pass.
type TargetingCriteria struct {
	RequiredCerts []string `json:"required_certs,omitempty"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	RadiusMiles   float64  `json:"radius_miles,omitempty"`
	MinYears      int      `json:"min_years,omitempty"`
}

// Validate fails fast on caller-contract violations so integration bugs
// surface at the boundary instead of leaking into a silently wrong score.
func (t TargetingCriteria) Validate() error {
	if t.RadiusMiles < 0 {
		return fmt.Errorf("criteria: negative search radius %.1f", t.RadiusMiles)
	}
	if t.MinYears < 0 {
		return fmt.Errorf("criteria: negative minimum experience %d", t.MinYears)
	}
	return nil
}

// CandidateRecord is a job seeker as the persistence layer hands them to the
// scoring engine. Read-only here. Coordinates are resolved from the location
// label by an external geocoding step and may be absent.
type CandidateRecord struct {
	ProfileID       int64     `json:"profile_id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	Location        string    `json:"location,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	YearsExperience int       `json:"years_experience"`
	WillingToTravel bool      `json:"willing_to_travel"`
	SMSConsent      bool      `json:"sms_consent"`
	Certifications  []string  `json:"certifications,omitempty"`
	LastActive      time.Time `json:"last_active,omitempty"`
}

func (c CandidateRecord) Validate() error {
	if c.YearsExperience < 0 {
		return fmt.Errorf("candidate %d: negative years of experience %d", c.ProfileID, c.YearsExperience)
	}
	return nil
}

// CandidateProfile is the identity/skills subset the application-draft
// pipeline works from.
type CandidateProfile struct {
	FullName        string   `json:"full_name"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Location        string   `json:"location,omitempty"`
	ResumeText      string   `json:"resume_text,omitempty"`
	YearsExperience int      `json:"years_experience"`
	Certifications  []string `json:"certifications,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	WillingToTravel bool     `json:"willing_to_travel"`
	Headline        string   `json:"headline,omitempty"`
	Summary         string   `json:"summary,omitempty"`
}

func (p CandidateProfile) Validate() error {
	if p.YearsExperience < 0 {
		return fmt.Errorf("profile %q: negative years of experience %d", p.FullName, p.YearsExperience)
	}
	return nil
}

// JobPosting is the consumed subset of a posting. RequiredCerts is the
// employer's free-text certification list ("OSHA 30, EPA 608").
type JobPosting struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Company       string `json:"company,omitempty"`
	Description   string `json:"description,omitempty"`
	Requirements  string `json:"requirements,omitempty"`
	RequiredCerts string `json:"required_certs,omitempty"`
	ATSPlatform   string `json:"ats_platform,omitempty"`
	Category      string `json:"category,omitempty"`
}
