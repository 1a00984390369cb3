package careers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-match/internal/types"
)

const (
	// topRecommendations caps the recommendations in a report.
	topRecommendations = 5
	// detailedRecommendations caps roadmaps and gap analysis.
	detailedRecommendations = 3

	// minRuleScore filters out careers with no meaningful rule match.
	minRuleScore = 0.1
	// interestBoost scales a rule score when the candidate names the career
	// among their interests.
	interestBoost = 1.2
	// agreementBoost scales the averaged confidence when the rule pass and
	// the external analysis recommend the same career.
	agreementBoost = 1.3

	// unavailableAnalysisConfidence is the analysis confidence reported when
	// the external analyzer is absent or failing.
	unavailableAnalysisConfidence = 0.3
)

// Analyzer is the external profile-analysis dependency. Satisfied by
// ai.Client. A nil Analyzer disables the AI pass.
type Analyzer interface {
	AnalyzeProfile(ctx context.Context, profile *types.CandidateProfile) (*types.ProfileAnalysis, error)
}

// Engine generates career recommendation reports by merging rule-based
// matching against the static career table with external profile analysis.
type Engine struct {
	analyzer Analyzer
	logger   *zap.Logger
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]*types.RecommendationReport
}

// NewEngine creates a recommendation engine. analyzer may be nil.
func NewEngine(analyzer Analyzer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		analyzer: analyzer,
		logger:   logger,
		now:      time.Now,
		cache:    make(map[string]*types.RecommendationReport),
	}
}

// GenerateRecommendations builds the full recommendation report for a
// candidate. It never fails: analyzer errors degrade to a rule-only report
// and a panic anywhere in the pipeline degrades to the static fallback.
func (e *Engine) GenerateRecommendations(ctx context.Context, profile *types.CandidateProfile) (report *types.RecommendationReport) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("recommendation pipeline degraded to fallback",
				zap.Any("panic", rec),
			)
			report = e.FallbackReport()
		}
	}()

	key := cacheKey(profile)
	e.mu.Lock()
	cached, ok := e.cache[key]
	e.mu.Unlock()
	if ok {
		e.logger.Debug("returning cached recommendations",
			zap.String("candidate_id", profile.ID),
		)
		return cached
	}

	allSkills := profile.AllSkills()
	academicField := profile.AcademicRecord.Major

	analysis := e.profileAnalysis(ctx, profile)
	ruleRecs := e.ruleBasedRecommendations(allSkills, academicField, profile.CareerInterests)
	combined := combineRecommendations(analysis.CareerRecommendations, ruleRecs)

	top := firstNRecs(combined, topRecommendations)
	detailed := firstNRecs(combined, detailedRecommendations)

	report = &types.RecommendationReport{
		Recommendations: top,
		SkillAnalysis:   analyzeSkills(allSkills),
		CareerRoadmaps:  roadmapsFor(detailed),
		SkillGaps:       skillGaps(detailed, allSkills),
		ConfidenceScore: overallConfidence(analysis, combined),
		GeneratedAt:     e.now(),
	}

	e.mu.Lock()
	e.cache[key] = report
	e.mu.Unlock()

	return report
}

// ResetCache drops every cached report.
func (e *Engine) ResetCache() {
	e.mu.Lock()
	e.cache = make(map[string]*types.RecommendationReport)
	e.mu.Unlock()
}

// CacheSize returns the number of cached reports.
func (e *Engine) CacheSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cache)
}

// profileAnalysis runs the external analysis pass. Failures are logged and
// mapped to an empty low-confidence analysis, never an error.
func (e *Engine) profileAnalysis(ctx context.Context, profile *types.CandidateProfile) *types.ProfileAnalysis {
	unavailable := &types.ProfileAnalysis{ConfidenceScore: unavailableAnalysisConfidence}

	if e.analyzer == nil {
		return unavailable
	}

	analysis, err := e.analyzer.AnalyzeProfile(ctx, profile)
	if err != nil {
		e.logger.Warn("profile analysis failed, continuing rule-only",
			zap.String("candidate_id", profile.ID),
			zap.Error(err),
		)
		return unavailable
	}
	if analysis == nil {
		return unavailable
	}
	return analysis
}

// ruleBasedRecommendations scores every career in the table and keeps the
// ones with a meaningful match, sorted by confidence descending.
func (e *Engine) ruleBasedRecommendations(skills []string, academicField string, interests []string) []types.CareerRecommendation {
	var recommendations []types.CareerRecommendation

	for _, def := range Definitions() {
		score := MatchScore(def, skills, academicField)

		if matchesInterest(def.Career, interests) {
			score = math.Min(score*interestBoost, 1.0)
		}

		if score > minRuleScore {
			recommendations = append(recommendations, types.CareerRecommendation{
				Career:     def.Career,
				Confidence: score,
				Source:     types.SourceRuleBased,
				Reason:     recommendationReason(def, skills, academicField),
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Confidence > recommendations[j].Confidence
	})
	return recommendations
}

// combineRecommendations merges the AI and rule-based passes. A career
// recommended by both gets the averaged confidence boosted and the
// "ai_and_rules" source tag.
func combineRecommendations(aiRecs, ruleRecs []types.CareerRecommendation) []types.CareerRecommendation {
	byCareer := make(map[string]int, len(ruleRecs))
	combined := make([]types.CareerRecommendation, 0, len(ruleRecs)+len(aiRecs))

	for _, rec := range ruleRecs {
		byCareer[rec.Career] = len(combined)
		combined = append(combined, rec)
	}

	for _, aiRec := range aiRecs {
		if aiRec.Career == "" {
			continue
		}
		if aiRec.Reason == "" {
			aiRec.Reason = "AI-powered analysis"
		}
		aiRec.Source = types.SourceAIOnly

		if i, ok := byCareer[aiRec.Career]; ok {
			merged := math.Min((combined[i].Confidence+aiRec.Confidence)/2*agreementBoost, 1.0)
			combined[i].Confidence = merged
			combined[i].Source = types.SourceAIAndRules
			continue
		}

		byCareer[aiRec.Career] = len(combined)
		combined = append(combined, aiRec)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Confidence > combined[j].Confidence
	})
	return combined
}

// overallConfidence scores the trustworthiness of a finished report.
func overallConfidence(analysis *types.ProfileAnalysis, recommendations []types.CareerRecommendation) float64 {
	confidence := 0.5

	if analysis.ConfidenceScore > 0.5 {
		confidence += 0.2
	}

	highConfidence := 0
	for _, rec := range recommendations {
		if rec.Confidence > 0.7 {
			highConfidence++
		}
	}
	if highConfidence >= 2 {
		confidence += 0.2
	}

	if len(recommendations) > 0 && recommendations[0].Source == types.SourceAIAndRules {
		confidence += 0.1
	}

	return math.Min(confidence, 1.0)
}

// FallbackReport is the static report returned when the pipeline fails.
func (e *Engine) FallbackReport() *types.RecommendationReport {
	return &types.RecommendationReport{
		Recommendations: []types.CareerRecommendation{
			{
				Career:     "Technology Consultant",
				Confidence: 0.5,
				Source:     types.SourceFallback,
				Reason:     "General technology aptitude",
			},
			{
				Career:     "Business Analyst",
				Confidence: 0.4,
				Source:     types.SourceFallback,
				Reason:     "Analytical skills",
			},
		},
		SkillAnalysis: types.SkillAnalysis{
			Categories: map[string][]string{"technical": {}, "soft": {}, "domain": {}, "tools": {}},
		},
		CareerRoadmaps:  map[string]types.CareerRoadmap{},
		SkillGaps:       map[string]types.SkillGap{},
		ConfidenceScore: unavailableAnalysisConfidence,
		GeneratedAt:     e.now(),
	}
}

func roadmapsFor(recommendations []types.CareerRecommendation) map[string]types.CareerRoadmap {
	roadmaps := make(map[string]types.CareerRoadmap)
	for _, rec := range recommendations {
		if roadmap, ok := Roadmap(rec.Career); ok {
			roadmaps[rec.Career] = roadmap
		}
	}
	return roadmaps
}

func matchesInterest(career string, interests []string) bool {
	careerLower := strings.ToLower(career)
	for _, interest := range interests {
		trimmed := strings.ToLower(strings.TrimSpace(interest))
		if trimmed != "" && strings.Contains(careerLower, trimmed) {
			return true
		}
	}
	return false
}

func firstNRecs(recs []types.CareerRecommendation, n int) []types.CareerRecommendation {
	if len(recs) < n {
		n = len(recs)
	}
	return recs[:n]
}

// cacheKey hashes the canonical JSON serialization of a profile.
func cacheKey(profile *types.CandidateProfile) string {
	serialized, err := json.Marshal(profile)
	if err != nil {
		return profile.ID
	}
	sum := sha256.Sum256(serialized)
	return hex.EncodeToString(sum[:])
}
