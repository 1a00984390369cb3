// Package careers holds the static skill-career table and the
// recommendation engine that combines rule-based matching with external
// profile analysis.
package careers

import "github.com/jonathan/career-match/internal/types"

// careerTable is the static skill-career mapping. Treated as immutable
// after init.
var careerTable = []types.CareerDefinition{
	{
		Career:          "Software Developer",
		RequiredSkills:  []string{"programming", "python", "java", "javascript", "software development"},
		PreferredSkills: []string{"algorithms", "data structures", "git", "testing", "debugging"},
		SoftSkills:      []string{"problem solving", "analytical thinking", "attention to detail"},
		AcademicFields:  []string{"computer science", "information technology", "software engineering"},
		Weight:          1.0,
	},
	{
		Career:          "Data Scientist",
		RequiredSkills:  []string{"python", "statistics", "machine learning", "data analysis"},
		PreferredSkills: []string{"sql", "pandas", "numpy", "visualization", "r programming"},
		SoftSkills:      []string{"analytical thinking", "research", "communication"},
		AcademicFields:  []string{"computer science", "statistics", "mathematics", "data science"},
		Weight:          0.9,
	},
	{
		Career:          "Web Developer",
		RequiredSkills:  []string{"html", "css", "javascript", "web development"},
		PreferredSkills: []string{"react", "angular", "node.js", "responsive design", "api"},
		SoftSkills:      []string{"creativity", "attention to detail", "user focus"},
		AcademicFields:  []string{"computer science", "web design", "information technology"},
		Weight:          0.9,
	},
	{
		Career:          "Mobile App Developer",
		RequiredSkills:  []string{"mobile development", "android", "ios", "java", "swift"},
		PreferredSkills: []string{"react native", "flutter", "ui/ux", "app store"},
		SoftSkills:      []string{"creativity", "user experience", "problem solving"},
		AcademicFields:  []string{"computer science", "mobile computing", "software engineering"},
		Weight:          0.8,
	},
	{
		Career:          "Mechanical Engineer",
		RequiredSkills:  []string{"mechanical engineering", "cad", "design", "manufacturing"},
		PreferredSkills: []string{"autocad", "solidworks", "thermodynamics", "materials"},
		SoftSkills:      []string{"problem solving", "analytical thinking", "project management"},
		AcademicFields:  []string{"mechanical engineering", "engineering"},
		Weight:          0.9,
	},
	{
		Career:          "Civil Engineer",
		RequiredSkills:  []string{"civil engineering", "construction", "structural design"},
		PreferredSkills: []string{"autocad", "project management", "surveying", "concrete"},
		SoftSkills:      []string{"leadership", "communication", "planning"},
		AcademicFields:  []string{"civil engineering", "construction engineering"},
		Weight:          0.9,
	},
	{
		Career:          "Electrical Engineer",
		RequiredSkills:  []string{"electrical engineering", "circuits", "electronics"},
		PreferredSkills: []string{"power systems", "control systems", "matlab", "pcb design"},
		SoftSkills:      []string{"analytical thinking", "problem solving", "attention to detail"},
		AcademicFields:  []string{"electrical engineering", "electronics engineering"},
		Weight:          0.9,
	},
	{
		Career:          "Business Analyst",
		RequiredSkills:  []string{"business analysis", "requirements gathering", "process improvement"},
		PreferredSkills: []string{"sql", "excel", "project management", "stakeholder management"},
		SoftSkills:      []string{"communication", "analytical thinking", "problem solving"},
		AcademicFields:  []string{"business administration", "management", "economics"},
		Weight:          0.8,
	},
	{
		Career:          "Product Manager",
		RequiredSkills:  []string{"product management", "strategy", "market research"},
		PreferredSkills: []string{"agile", "user experience", "analytics", "roadmap planning"},
		SoftSkills:      []string{"leadership", "communication", "strategic thinking"},
		AcademicFields:  []string{"business administration", "marketing", "engineering"},
		Weight:          0.7,
	},
	{
		Career:          "Marketing Specialist",
		RequiredSkills:  []string{"marketing", "digital marketing", "content creation"},
		PreferredSkills: []string{"social media", "seo", "analytics", "campaign management"},
		SoftSkills:      []string{"creativity", "communication", "persuasion"},
		AcademicFields:  []string{"marketing", "business administration", "communications"},
		Weight:          0.8,
	},
	{
		Career:          "Financial Analyst",
		RequiredSkills:  []string{"financial analysis", "excel", "accounting", "finance"},
		PreferredSkills: []string{"financial modeling", "valuation", "risk analysis", "bloomberg"},
		SoftSkills:      []string{"analytical thinking", "attention to detail", "communication"},
		AcademicFields:  []string{"finance", "accounting", "economics", "business"},
		Weight:          0.8,
	},
	{
		Career:          "Operations Manager",
		RequiredSkills:  []string{"operations management", "process optimization", "logistics"},
		PreferredSkills: []string{"supply chain", "lean manufacturing", "project management"},
		SoftSkills:      []string{"leadership", "problem solving", "communication"},
		AcademicFields:  []string{"operations management", "industrial engineering", "business"},
		Weight:          0.7,
	},
	{
		Career:          "Human Resources Specialist",
		RequiredSkills:  []string{"human resources", "recruitment", "employee relations"},
		PreferredSkills: []string{"hr systems", "training", "performance management"},
		SoftSkills:      []string{"communication", "empathy", "conflict resolution"},
		AcademicFields:  []string{"human resources", "psychology", "business administration"},
		Weight:          0.7,
	},
}

// growthPaths overrides the default progression for selected careers.
var growthPaths = map[string][]string{
	"Software Developer": {"Junior Developer", "Software Developer", "Senior Developer", "Tech Lead", "Engineering Manager"},
	"Data Scientist":     {"Data Analyst", "Data Scientist", "Senior Data Scientist", "Lead Data Scientist", "Head of Data"},
	"Business Analyst":   {"Junior Analyst", "Business Analyst", "Senior Analyst", "Lead Analyst", "Product Manager"},
}

var defaultGrowthPath = []string{"Entry Level", "Mid Level", "Senior Level", "Lead", "Manager"}

var highDemandCareers = map[string]bool{
	"Software Developer":   true,
	"Data Scientist":       true,
	"Web Developer":        true,
	"Mobile App Developer": true,
}

var mediumDemandCareers = map[string]bool{
	"Business Analyst":  true,
	"Product Manager":   true,
	"Financial Analyst": true,
}

// Definitions returns every career in the table.
func Definitions() []types.CareerDefinition {
	return careerTable
}

// Lookup finds a career definition by exact name.
func Lookup(career string) (types.CareerDefinition, bool) {
	for _, def := range careerTable {
		if def.Career == career {
			return def, true
		}
	}
	return types.CareerDefinition{}, false
}

// GrowthPath returns the progression ladder for a career.
func GrowthPath(career string) []string {
	if path, ok := growthPaths[career]; ok {
		return path
	}
	return defaultGrowthPath
}

// IndustryDemand returns the coarse demand label for a career.
func IndustryDemand(career string) string {
	switch {
	case highDemandCareers[career]:
		return "High"
	case mediumDemandCareers[career]:
		return "Medium"
	default:
		return "Moderate"
	}
}

// Roadmap builds the level-by-level roadmap for a career in the table.
func Roadmap(career string) (types.CareerRoadmap, bool) {
	def, ok := Lookup(career)
	if !ok {
		return types.CareerRoadmap{}, false
	}

	return types.CareerRoadmap{
		EntryLevel: types.CareerLevel{
			Experience:  "0-2 years",
			KeySkills:   firstN(def.RequiredSkills, 3),
			SalaryRange: "Entry level",
		},
		MidLevel: types.CareerLevel{
			Experience:  "2-5 years",
			KeySkills:   concat(def.RequiredSkills, firstN(def.PreferredSkills, 2)),
			SalaryRange: "Mid level",
		},
		SeniorLevel: types.CareerLevel{
			Experience:  "5+ years",
			KeySkills:   concat(def.RequiredSkills, def.PreferredSkills),
			SalaryRange: "Senior level",
		},
		GrowthPath:     GrowthPath(career),
		IndustryDemand: IndustryDemand(career),
	}, true
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
