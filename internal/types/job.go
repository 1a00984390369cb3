// Package types provides type definitions for the structured data exchanged
// across the career-match system boundary.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; it caches struct metadata and
// is safe for concurrent use.
var validate = validator.New()

// Experience levels accepted on a job requirement.
const (
	ExperienceEntry  = "entry"
	ExperienceJunior = "junior"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
	ExperienceLead   = "lead"
)

// SalaryRange is the advertised salary band for a posting.
type SalaryRange struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// JobRequirement is the immutable description of one job posting used as
// input to a ranking call. It is owned by the caller; the matching core
// never mutates it.
type JobRequirement struct {
	ID                      string      `json:"id,omitempty"`
	Title                   string      `json:"title" validate:"required,min=1"`
	Description             string      `json:"description,omitempty"`
	RequiredSkills          []string    `json:"required_skills,omitempty"`
	PreferredQualifications []string    `json:"preferred_qualifications,omitempty"`
	ExperienceLevel         string      `json:"experience_level,omitempty" validate:"omitempty,oneof=entry junior mid senior lead"`
	Location                string      `json:"location,omitempty"`
	SalaryRange             SalaryRange `json:"salary_range,omitempty"`
}

// Validate checks the JobRequirement shape before any scoring begins.
func (j *JobRequirement) Validate() error {
	return validate.Struct(j)
}

// MatchText builds the labeled text representation of the posting used for
// semantic matching.
func (j *JobRequirement) MatchText() string {
	var parts []string

	if j.Title != "" {
		parts = append(parts, "Job Title: "+j.Title)
	}
	if j.Description != "" {
		parts = append(parts, "Description: "+j.Description)
	}
	if len(j.RequiredSkills) > 0 {
		parts = append(parts, "Required Skills: "+strings.Join(j.RequiredSkills, ", "))
	}
	if len(j.PreferredQualifications) > 0 {
		parts = append(parts, "Preferred Qualifications: "+strings.Join(j.PreferredQualifications, ", "))
	}
	if j.ExperienceLevel != "" {
		parts = append(parts, "Experience Level: "+j.ExperienceLevel)
	}

	return strings.Join(parts, " | ")
}
