package draft

import (
	"math"
	"strings"

	"github.com/craftly/crewcall/internal/engine"
)

// Match-score weights. This is the per-application fit score — distinct
// inputs and weighting from the campaign-targeting composite in the scoring
// package; don't conflate the two.
const (
	matchCertWeight       = 40
	matchExperienceWeight = 25
	matchKeywordWeight    = 20
	matchTravelWeight     = 15
)

// RequiredCerts parses the posting's free-text certification list.
func RequiredCerts(job engine.JobPosting) []string {
	var out []string
	for _, part := range strings.FieldsFunc(job.RequiredCerts, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '/'
	}) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MissingCerts returns the posting's required certifications the profile
// does not hold, fuzzy-matched.
func MissingCerts(p engine.CandidateProfile, job engine.JobPosting) []string {
	var missing []string
	for _, req := range RequiredCerts(job) {
		found := false
		for _, held := range p.Certifications {
			if engine.SameCert(req, held) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}

// ComputeMatchScore computes a 0–100 fit score for a (profile, job) pair:
// certification coverage 40, experience 25 (years/10 capped), resume/job
// keyword overlap 20, travel willingness 15 (40% credit when unwilling).
func ComputeMatchScore(p engine.CandidateProfile, job engine.JobPosting) int {
	required := RequiredCerts(job)
	certRatio := 1.0
	if len(required) > 0 {
		certRatio = float64(len(required)-len(MissingCerts(p, job))) / float64(len(required))
	}

	expRatio := math.Min(float64(p.YearsExperience)/10, 1.0)

	kwRatio := keywordOverlap(p.ResumeText, job.Description+" "+job.Requirements)

	travelRatio := 0.4
	if p.WillingToTravel {
		travelRatio = 1.0
	}

	total := certRatio*matchCertWeight +
		expRatio*matchExperienceWeight +
		kwRatio*matchKeywordWeight +
		travelRatio*matchTravelWeight
	if total > 100 {
		total = 100
	}
	return int(math.Round(total))
}

// keywordOverlap is the share of job keywords present in the resume.
func keywordOverlap(resume, jobText string) float64 {
	jobKW := engine.ExtractKeywords(jobText)
	if len(jobKW) == 0 || resume == "" {
		return 0
	}
	resumeKW := engine.ExtractKeywords(resume)
	matched := 0
	for kw := range jobKW {
		if resumeKW[kw] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobKW))
}
