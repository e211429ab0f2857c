// Package draft converts a candidate profile and a job posting into a
// filled-out application for a third-party ATS: deterministic field mapping
// where the platform's form vocabulary allows it, rule-driven free-text
// synthesis where it does not.
package draft

import "strings"

// FieldType is the value type an ATS form field accepts.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldLongText FieldType = "longtext"
	FieldChoice   FieldType = "choice"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
	FieldFile     FieldType = "file"
)

// ATSFieldSpec is one field the target platform exposes.
type ATSFieldSpec struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Type      FieldType `json:"type"`
	Required  bool      `json:"required,omitempty"`
	Choices   []string  `json:"choices,omitempty"`
	MaxLength int       `json:"max_length,omitempty"`
}

// Platform tags recognized by DefaultFields. Anything else falls back to the
// generic field list.
const (
	PlatformGreenhouse = "greenhouse"
	PlatformLever      = "lever"
	PlatformWorkday    = "workday"
	PlatformICIMS      = "icims"
	PlatformGeneric    = "generic"
)

// Default field lists reflect each platform's known form shape.
var greenhouseFields = []ATSFieldSpec{
	{ID: "first_name", Label: "First Name", Type: FieldText, Required: true},
	{ID: "last_name", Label: "Last Name", Type: FieldText, Required: true},
	{ID: "email", Label: "Email", Type: FieldText, Required: true},
	{ID: "phone", Label: "Phone", Type: FieldText, Required: true},
	{ID: "location", Label: "Location (City)", Type: FieldText},
	{ID: "cover_letter", Label: "Cover Letter", Type: FieldLongText, MaxLength: 4000},
	{ID: "why_interested", Label: "Why do you want to work here?", Type: FieldLongText, MaxLength: 2000},
	{ID: "work_auth", Label: "Are you authorized to work in the United States?", Type: FieldChoice, Required: true, Choices: []string{"Yes", "No"}},
}

var leverFields = []ATSFieldSpec{
	{ID: "name", Label: "Full name", Type: FieldText, Required: true},
	{ID: "email", Label: "Email", Type: FieldText, Required: true},
	{ID: "phone", Label: "Phone", Type: FieldText},
	{ID: "location", Label: "Current location", Type: FieldText},
	{ID: "experience_range", Label: "Years of experience", Type: FieldChoice, Choices: []string{"0-2", "3-5", "5-10", "10+"}},
	{ID: "cover_letter", Label: "Cover Letter", Type: FieldLongText, MaxLength: 4000},
	{ID: "describe_experience", Label: "Describe your relevant experience", Type: FieldLongText, MaxLength: 2000},
}

var workdayFields = []ATSFieldSpec{
	{ID: "first_name", Label: "First Name", Type: FieldText, Required: true},
	{ID: "last_name", Label: "Last Name", Type: FieldText, Required: true},
	{ID: "email_address", Label: "Email Address", Type: FieldText, Required: true},
	{ID: "phone_number", Label: "Phone Number", Type: FieldText, Required: true},
	{ID: "address", Label: "Address", Type: FieldText},
	{ID: "travel", Label: "Are you willing to travel for this role?", Type: FieldChoice, Choices: []string{"Yes", "No"}},
	{ID: "salary", Label: "What are your salary expectations?", Type: FieldLongText, MaxLength: 500},
	{ID: "start_date", Label: "When is your earliest start date?", Type: FieldLongText, MaxLength: 500},
	{ID: "sponsorship", Label: "Will you require visa sponsorship?", Type: FieldChoice, Choices: []string{"Yes", "No"}},
}

var icimsFields = []ATSFieldSpec{
	{ID: "full_name", Label: "Full Name", Type: FieldText, Required: true},
	{ID: "email", Label: "Email", Type: FieldText, Required: true},
	{ID: "phone", Label: "Phone", Type: FieldText, Required: true},
	{ID: "certifications", Label: "Certifications", Type: FieldLongText},
	{ID: "experience_summary", Label: "Tell us about your experience with this type of work", Type: FieldLongText, MaxLength: 3000},
	{ID: "cover_letter", Label: "Cover Letter", Type: FieldLongText, MaxLength: 4000},
}

var genericFields = []ATSFieldSpec{
	{ID: "full_name", Label: "Full Name", Type: FieldText, Required: true},
	{ID: "email", Label: "Email", Type: FieldText, Required: true},
	{ID: "phone", Label: "Phone", Type: FieldText},
	{ID: "location", Label: "Location", Type: FieldText},
	{ID: "years_experience", Label: "Years of Experience", Type: FieldNumber},
	{ID: "certifications", Label: "Certifications", Type: FieldLongText},
	{ID: "cover_letter", Label: "Cover Letter", Type: FieldLongText, MaxLength: 4000},
}

// ResolvePlatform normalizes an ATS platform tag, mapping anything
// unrecognized (or empty) to PlatformGeneric.
func ResolvePlatform(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case PlatformGreenhouse:
		return PlatformGreenhouse
	case PlatformLever:
		return PlatformLever
	case PlatformWorkday:
		return PlatformWorkday
	case PlatformICIMS:
		return PlatformICIMS
	default:
		return PlatformGeneric
	}
}

// DefaultFields returns the built-in field list for an ATS platform tag.
func DefaultFields(tag string) []ATSFieldSpec {
	switch ResolvePlatform(tag) {
	case PlatformGreenhouse:
		return greenhouseFields
	case PlatformLever:
		return leverFields
	case PlatformWorkday:
		return workdayFields
	case PlatformICIMS:
		return icimsFields
	default:
		return genericFields
	}
}
