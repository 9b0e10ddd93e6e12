// Package specimen defines the shape of a synthesized specimen student record
// and the schema used to constrain structured generation.
package specimen

import (
	"fmt"
	"strings"
)

// InstitutionType classifies the issuing organization.
type InstitutionType string

const (
	HighSchool InstitutionType = "HighSchool"
	University InstitutionType = "University"
)

// Gender steers portrait synthesis. It is never displayed.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseInstitutionType accepts the canonical values plus the spaced and
// lowercase spellings a generator tends to produce.
func ParseInstitutionType(s string) (InstitutionType, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch norm {
	case "highschool", "hs":
		return HighSchool, nil
	case "university", "college", "uni":
		return University, nil
	}
	return "", fmt.Errorf("unknown institution type %q", s)
}

// AgeBracket describes the apparent age of a student at this kind of
// institution, as used in portrait prompts.
func (t InstitutionType) AgeBracket() string {
	if t == University {
		return "20-year-old college student"
	}
	return "16-year-old student"
}

// Filter narrows a synthesis request. Zero values let the generator choose.
type Filter struct {
	Type   InstitutionType
	Region string
}

// RawRecord is the text stage output, before a portrait is attached.
type RawRecord struct {
	FirstName          string          `json:"firstName" validate:"required"`
	LastName           string          `json:"lastName" validate:"required"`
	Gender             Gender          `json:"gender" validate:"required,oneof=male female"`
	InstitutionName    string          `json:"institutionName" validate:"required"`
	InstitutionType    InstitutionType `json:"institutionType" validate:"required,oneof=HighSchool University"`
	InstitutionAddress string          `json:"institutionAddress" validate:"required"`
	InstitutionEmail   string          `json:"institutionEmail" validate:"required"`
	RecordID           string          `json:"recordId" validate:"required"`
	ProgramOrLevel     string          `json:"programOrLevel" validate:"required"`
	Department         string          `json:"department" validate:"required"`
	EnrollmentYear     string          `json:"enrollmentYear" validate:"required"`
	IssueDate          string          `json:"issueDate" validate:"required"`
	ExpiryDate         string          `json:"expiryDate" validate:"required"`
	Region             string          `json:"region" validate:"required"`
	City               string          `json:"city" validate:"required"`
}

// IdentityRecord is a complete, render-ready specimen record.
// Callers hold it by value; nothing in this module mutates one after it is
// returned.
type IdentityRecord struct {
	RawRecord
	PortraitRef string `json:"portraitRef" validate:"required"`
}

// FullName joins first and last name.
func (r RawRecord) FullName() string {
	return r.FirstName + " " + r.LastName
}
