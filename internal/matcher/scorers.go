package matcher

import (
	"math"
	"strings"

	"github.com/khrees2412/labyrinth/pkg/models"
)

// Component identifies one of the seven sub-scores
type Component int

const (
	ResearchAlignment Component = iota
	SkillsMatch
	AcademicLevel
	GPAConsideration
	AvailabilityFit
	ExperienceRelevance
	CareerAlignment
	numComponents
)

var componentNames = [numComponents]string{
	"researchAlignment",
	"skillsMatch",
	"academicLevel",
	"gpaConsideration",
	"availabilityFit",
	"experienceRelevance",
	"careerAlignment",
}

func (c Component) String() string {
	if c < 0 || c >= numComponents {
		return "unknown"
	}
	return componentNames[c]
}

// Components lists every component in scoring order
func Components() []Component {
	out := make([]Component, numComponents)
	for i := range out {
		out[i] = Component(i)
	}
	return out
}

// Scores holds a 0-100 value per component
type Scores [numComponents]float64

// Map returns the scores keyed by component name
func (s Scores) Map() map[string]float64 {
	m := make(map[string]float64, numComponents)
	for i, v := range s {
		m[componentNames[i]] = v
	}
	return m
}

// Thresholds a similarity must exceed to count as a hit
const (
	interestThreshold   = 0.6
	skillThreshold      = 0.7
	experienceThreshold = 0.5
	careerThreshold     = 0.6
)

// Neutral and fallback values for incomplete profiles
const (
	lowestBand          = 30.0
	noExperienceScore   = 30.0
	missingSkillPenalty = 10.0
	experiencePerArea   = 20.0
	careerPerArea       = 25.0
	maxGPA              = 4.0
)

// ComponentScores computes all seven sub-scores for the pair
func ComponentScores(s *models.Student, p *models.Professor) Scores {
	var sc Scores
	if s == nil || p == nil {
		return sc
	}
	sc[ResearchAlignment] = researchAlignment(s.ResearchInterests, p.ResearchAreas)
	sc[SkillsMatch] = skillsMatch(s.Skills, p.RequiredSkills)
	sc[AcademicLevel] = academicLevel(s.Year, p.PreferredStudentLevel)
	sc[GPAConsideration] = gpaScore(s.GPA, p.Department)
	sc[AvailabilityFit] = availabilityFit(s.Availability, p.MentorshipStyle)
	sc[ExperienceRelevance] = experienceRelevance(s.Experience, s.PreviousResearch, p.ResearchAreas)
	sc[CareerAlignment] = careerAlignment(s.CareerGoals, p.ResearchAreas)
	return sc
}

// anySimilar reports whether label is similar to some entry of candidates
// above threshold
func anySimilar(label string, candidates []string, threshold float64) bool {
	for _, c := range candidates {
		if Similarity(label, c) > threshold {
			return true
		}
	}
	return false
}

// researchAlignment weighs coverage of the student's interests above
// coverage of the professor's areas
func researchAlignment(interests, areas []string) float64 {
	if len(interests) == 0 || len(areas) == 0 {
		return 0
	}
	studentHits := 0
	for _, i := range interests {
		if anySimilar(i, areas, interestThreshold) {
			studentHits++
		}
	}
	professorHits := 0
	for _, a := range areas {
		if anySimilar(a, interests, interestThreshold) {
			professorHits++
		}
	}
	studentFrac := float64(studentHits) / float64(len(interests))
	professorFrac := float64(professorHits) / float64(len(areas))
	return clampScore(0.6*studentFrac*100 + 0.4*professorFrac*100)
}

func skillsMatch(skills, required []string) float64 {
	matched := 0
	for _, s := range skills {
		if anySimilar(s, required, skillThreshold) {
			matched++
		}
	}
	missing := 0
	for _, r := range required {
		if !anySimilar(r, skills, skillThreshold) {
			missing++
		}
	}
	matchScore := float64(matched) / float64(max(len(required), 1)) * 100
	penalty := math.Max(0, 100-float64(missing)*missingSkillPenalty)
	return clampScore(math.Min(matchScore, penalty))
}

var levelDistanceScores = map[int]float64{1: 85, 2: 70, 3: 50}

func academicLevel(year models.YearLevel, preferred []models.YearLevel) float64 {
	studentLevel := year.Ordinal()
	if studentLevel == 0 {
		return lowestBand
	}
	minDist := -1
	for _, p := range preferred {
		ord := p.Ordinal()
		if ord == 0 {
			continue
		}
		d := studentLevel - ord
		if d < 0 {
			d = -d
		}
		if d == 0 {
			return 100
		}
		if minDist < 0 || d < minDist {
			minDist = d
		}
	}
	if score, ok := levelDistanceScores[minDist]; ok {
		return score
	}
	return lowestBand
}

// gpaExpectation is the (minimum, good, excellent) GPA a department expects
type gpaExpectation struct {
	min, good, excellent float64
}

var defaultGPAExpectation = gpaExpectation{3.0, 3.3, 3.6}

var departmentGPA = map[string]gpaExpectation{
	"computer science":       {3.2, 3.5, 3.8},
	"electrical engineering": {3.1, 3.4, 3.7},
	"mechanical engineering": {3.0, 3.3, 3.6},
	"biomedical engineering": {3.1, 3.4, 3.7},
	"engineering":            {3.0, 3.3, 3.6},
	"mathematics":            {3.2, 3.5, 3.8},
	"physics":                {3.2, 3.5, 3.8},
	"chemistry":              {3.0, 3.4, 3.7},
	"biology":                {3.0, 3.4, 3.7},
	"neuroscience":           {3.1, 3.4, 3.7},
	"psychology":             {3.0, 3.3, 3.6},
	"economics":              {3.1, 3.4, 3.7},
	"political science":      {2.9, 3.2, 3.5},
	"environmental science":  {2.9, 3.2, 3.5},
}

func expectationFor(department string) gpaExpectation {
	if e, ok := departmentGPA[normalize(department)]; ok {
		return e
	}
	return defaultGPAExpectation
}

// gpaScore treats a GPA off the 0-4 scale as malformed and gives it the
// lowest band
func gpaScore(gpa float64, department string) float64 {
	if math.IsNaN(gpa) || gpa < 0 || gpa > maxGPA {
		return lowestBand
	}
	e := expectationFor(department)
	switch {
	case gpa >= e.excellent:
		return 100
	case gpa >= e.good:
		return 85
	case gpa >= e.min:
		return 70
	case gpa >= e.min-0.3:
		return 50
	default:
		return lowestBand
	}
}

// styleDemand is the weekly commitment a mentorship style implies and how
// far below it a student may fall before the fit degrades
type styleDemand struct {
	keyword     string
	hours       float64
	flexibility float64
}

var defaultStyleDemand = styleDemand{hours: 15, flexibility: 0.8}

// first keyword found wins
var styleDemands = []styleDemand{
	{"hands-on", 25, 0.7},
	{"intensive", 25, 0.7},
	{"collaborative", 20, 0.8},
	{"independent", 12, 0.9},
	{"structured", 18, 0.75},
}

func demandFor(mentorshipStyle string) styleDemand {
	style := normalize(mentorshipStyle)
	for _, d := range styleDemands {
		if strings.Contains(style, d.keyword) {
			return d
		}
	}
	return defaultStyleDemand
}

func availabilityFit(availability models.Availability, mentorshipStyle string) float64 {
	demand := demandFor(mentorshipStyle)
	ratio := availability.WeeklyHours() / demand.hours
	switch {
	case ratio >= 1:
		return 100
	case ratio >= demand.flexibility:
		return 85
	case ratio >= 0.7:
		return 70
	case ratio >= 0.5:
		return 50
	default:
		return lowestBand
	}
}

func experienceRelevance(experience, previousResearch string, areas []string) float64 {
	if strings.TrimSpace(experience) == "" && strings.TrimSpace(previousResearch) == "" {
		return noExperienceScore
	}
	text := strings.TrimSpace(previousResearch + " " + experience)
	return accumulateAreaHits(text, areas, experienceThreshold, experiencePerArea)
}

func careerAlignment(careerGoals string, areas []string) float64 {
	if strings.TrimSpace(careerGoals) == "" {
		return 0
	}
	return accumulateAreaHits(careerGoals, areas, careerThreshold, careerPerArea)
}

// accumulateAreaHits awards points for every research area mentioned in or
// similar to text, capped at 100
func accumulateAreaHits(text string, areas []string, threshold, points float64) float64 {
	lower := normalize(text)
	score := 0.0
	for _, area := range areas {
		a := normalize(area)
		if a == "" {
			continue
		}
		if strings.Contains(lower, a) || Similarity(text, area) > threshold {
			score += points
		}
	}
	return math.Min(score, 100)
}

// CommonInterests returns the student's research interests that resemble at
// least one of the professor's research areas, in the student's order
func CommonInterests(s *models.Student, p *models.Professor) []string {
	if s == nil || p == nil {
		return []string{}
	}
	return similarSubset(s.ResearchInterests, p.ResearchAreas, interestThreshold)
}

// MatchedSkills returns the student's skills that satisfy a required skill
func MatchedSkills(s *models.Student, p *models.Professor) []string {
	if s == nil || p == nil {
		return []string{}
	}
	return similarSubset(s.Skills, p.RequiredSkills, skillThreshold)
}

func similarSubset(labels, against []string, threshold float64) []string {
	out := []string{}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		key := normalize(l)
		if key == "" || seen[key] {
			continue
		}
		if anySimilar(l, against, threshold) {
			seen[key] = true
			out = append(out, l)
		}
	}
	return out
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
