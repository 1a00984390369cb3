package types

import "strings"

// AcademicRecord holds the candidate's declared academic background.
type AcademicRecord struct {
	Major  string `json:"major,omitempty"`
	Degree string `json:"degree,omitempty"`
}

// CandidateProfile is the immutable description of one candidate used as
// input to ranking and recommendation calls. Owned by the caller.
type CandidateProfile struct {
	ID              string         `json:"id" validate:"required,min=1"`
	TechnicalSkills []string       `json:"technical_skills,omitempty"`
	SoftSkills      []string       `json:"soft_skills,omitempty"`
	AcademicRecord  AcademicRecord `json:"academic_record,omitempty"`
	CoCurricular    []string       `json:"co_curricular,omitempty"`
	CareerInterests []string       `json:"career_interests,omitempty"`
}

// Validate checks the CandidateProfile shape before any scoring begins.
func (c *CandidateProfile) Validate() error {
	return validate.Struct(c)
}

// MatchText builds the labeled text representation of the profile used for
// semantic matching and for the profile-analysis prompt.
func (c *CandidateProfile) MatchText() string {
	var parts []string

	if len(c.TechnicalSkills) > 0 {
		parts = append(parts, "Technical Skills: "+strings.Join(c.TechnicalSkills, ", "))
	}
	if len(c.SoftSkills) > 0 {
		parts = append(parts, "Soft Skills: "+strings.Join(c.SoftSkills, ", "))
	}
	if c.AcademicRecord.Major != "" || c.AcademicRecord.Degree != "" {
		parts = append(parts, strings.TrimSpace("Education: "+strings.TrimSpace(c.AcademicRecord.Major+" "+c.AcademicRecord.Degree)))
	}
	if len(c.CoCurricular) > 0 {
		parts = append(parts, "Activities: "+strings.Join(c.CoCurricular, ", "))
	}

	return strings.Join(parts, " | ")
}

// DeclaredSkills returns the technical and soft skill entries, the set the
// ranker matches against a job's required skills. Activity names are not
// skills and do not belong here.
func (c *CandidateProfile) DeclaredSkills() []string {
	skills := make([]string, 0, len(c.TechnicalSkills)+len(c.SoftSkills))
	skills = append(skills, c.TechnicalSkills...)
	skills = append(skills, c.SoftSkills...)
	return skills
}

// AllSkills returns the combined technical, soft and co-curricular entries,
// the wider universe the recommendation engine scores careers against.
func (c *CandidateProfile) AllSkills() []string {
	all := make([]string, 0, len(c.TechnicalSkills)+len(c.SoftSkills)+len(c.CoCurricular))
	all = append(all, c.TechnicalSkills...)
	all = append(all, c.SoftSkills...)
	all = append(all, c.CoCurricular...)
	return all
}
