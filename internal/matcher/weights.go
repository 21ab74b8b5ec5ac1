package matcher

import (
	"strings"

	"github.com/khrees2412/labyrinth/pkg/models"
)

// Weights holds the relative emphasis of each component. Weights returned by
// DynamicWeights are non-negative and sum to 1.
type Weights [numComponents]float64

// BaseWeights apply before any professor-specific adjustment
var BaseWeights = Weights{
	ResearchAlignment:   0.30,
	SkillsMatch:         0.20,
	AcademicLevel:       0.15,
	GPAConsideration:    0.10,
	AvailabilityFit:     0.10,
	ExperienceRelevance: 0.10,
	CareerAlignment:     0.05,
}

// largeLabSize is the lab head-count above which availability matters more
// than academic level
const largeLabSize = 10

// Map returns the weights keyed by component name
func (w Weights) Map() map[string]float64 {
	m := make(map[string]float64, numComponents)
	for i, v := range w {
		m[componentNames[i]] = v
	}
	return m
}

// Sum adds up all component weights
func (w Weights) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// DynamicWeights shifts emphasis according to the professor's title, lab
// size and mentorship style. Adjustments are independent and additive.
func DynamicWeights(p *models.Professor) Weights {
	w := BaseWeights
	if p == nil {
		return w
	}

	title := strings.ToLower(p.Title)
	if strings.Contains(title, "research") || strings.Contains(title, "principal investigator") {
		w[ResearchAlignment] += 0.05
		w[ExperienceRelevance] += 0.05
		w[SkillsMatch] -= 0.05
		w[GPAConsideration] -= 0.05
	}

	if p.LabSize > largeLabSize {
		w[AvailabilityFit] += 0.05
		w[AcademicLevel] -= 0.05
	}

	if strings.Contains(strings.ToLower(p.MentorshipStyle), "hands-on") {
		w[SkillsMatch] += 0.05
		w[AvailabilityFit] += 0.05
		w[ResearchAlignment] -= 0.10
	}

	return w.normalized()
}

// normalized clamps negative weights to zero and rescales to sum to 1
func (w Weights) normalized() Weights {
	for i := range w {
		if w[i] < 0 {
			w[i] = 0
		}
	}
	total := w.Sum()
	if total <= 0 {
		return BaseWeights
	}
	for i := range w {
		w[i] /= total
	}
	return w
}

// Aggregate combines component scores into the final 0-100 score
func Aggregate(scores Scores, w Weights) float64 {
	total := 0.0
	for i := range scores {
		total += scores[i] * w[i]
	}
	return clampScore(total)
}

// CalculateMatchScore returns the unboosted 0-100 compatibility of a pair
func CalculateMatchScore(s *models.Student, p *models.Professor) float64 {
	if s == nil || p == nil {
		return 0
	}
	return Aggregate(ComponentScores(s, p), DynamicWeights(p))
}

// Explain breaks a pair's score down into its components and weights
func Explain(s *models.Student, p *models.Professor) models.Explanation {
	scores := ComponentScores(s, p)
	weights := DynamicWeights(p)
	final := 0.0
	if s != nil && p != nil {
		final = Aggregate(scores, weights)
	}
	return models.Explanation{
		Components: scores.Map(),
		Weights:    weights.Map(),
		FinalScore: final,
	}
}
