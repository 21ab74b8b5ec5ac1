package matcher

import (
	"math"
	"testing"

	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestResearchAlignment(t *testing.T) {
	tests := []struct {
		name      string
		interests []string
		areas     []string
		want      float64
	}{
		{"full overlap", []string{"Robotics"}, []string{"robotics"}, 100},
		{"half of student interests", []string{"Machine Learning", "Economics"}, []string{"Artificial Intelligence"}, 70},
		{"half of professor areas", []string{"Genetics"}, []string{"Genetics", "Astrophysics"}, 80},
		{"no overlap", []string{"Economics"}, []string{"Astrophysics"}, 0},
		{"no interests", nil, []string{"Robotics"}, 0},
		{"no areas", []string{"Robotics"}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, researchAlignment(tt.interests, tt.areas), 1e-9)
		})
	}
}

func TestSkillsMatch(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		required []string
		want     float64
	}{
		{"all required", []string{"Python"}, []string{"Python"}, 100},
		{"one of three", []string{"Python", "SQL"}, []string{"Python", "R", "Docker"}, 100.0 / 3},
		{"nothing required", []string{"Python"}, nil, 0},
		{"no skills", nil, []string{"Python", "Git"}, 0},
		{
			"penalty caps score",
			[]string{"Python", "Pandas", "NumPy", "Git", "Docker", "Linux"},
			[]string{"Python", "Pandas", "NumPy", "Git", "Docker", "Linux", "MATLAB", "Azure", "Java", "C++", "SQL", "AWS"},
			40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, skillsMatch(tt.skills, tt.required), 1e-9)
		})
	}
}

func TestAcademicLevel(t *testing.T) {
	tests := []struct {
		name      string
		year      models.YearLevel
		preferred []models.YearLevel
		want      float64
	}{
		{"preferred", models.Senior, []models.YearLevel{models.Senior}, 100},
		{"case insensitive", "senior", []models.YearLevel{"SENIOR"}, 100},
		{"one away", models.Junior, []models.YearLevel{models.Senior}, 85},
		{"two away", models.Sophomore, []models.YearLevel{models.Senior}, 70},
		{"three away", models.Freshman, []models.YearLevel{models.Senior}, 50},
		{"far away", models.Freshman, []models.YearLevel{models.PhDStudent}, 30},
		{"closest of several", models.Senior, []models.YearLevel{models.Freshman, models.GraduateStudent}, 85},
		{"unknown year", "Postdoc", []models.YearLevel{models.Senior}, 30},
		{"no preference", models.Senior, nil, 30},
		{"only unknown preferences", models.Senior, []models.YearLevel{"Anyone"}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, academicLevel(tt.year, tt.preferred))
		})
	}
}

func TestGPAScore(t *testing.T) {
	tests := []struct {
		name       string
		gpa        float64
		department string
		want       float64
	}{
		{"excellent", 3.9, "Computer Science", 100},
		{"good", 3.5, "computer science", 85},
		{"meets minimum", 3.2, "Computer Science", 70},
		{"just under minimum", 2.95, "Computer Science", 50},
		{"well under", 2.5, "Computer Science", 30},
		{"fallback department", 3.6, "Underwater Basket Weaving", 100},
		{"fallback good", 3.4, "", 85},
		{"top of scale", 4.0, "Computer Science", 100},
		{"above scale", 5.0, "Computer Science", 30},
		{"far above scale", 12, "Computer Science", 30},
		{"infinite", math.Inf(1), "Computer Science", 30},
		{"negative", -1, "Computer Science", 30},
		{"negative infinite", math.Inf(-1), "Physics", 30},
		{"not a number", math.NaN(), "Physics", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gpaScore(tt.gpa, tt.department))
		})
	}
}

func TestAvailabilityFit(t *testing.T) {
	tests := []struct {
		name         string
		availability models.Availability
		style        string
		want         float64
	}{
		{"full time collaborative", models.FullTimeYearRound, "Collaborative", 100},
		{"light hands-on", models.PartTimeLight, "Hands-on mentoring", 50},
		{"heavy collaborative within flexibility", models.PartTimeHeavy, "collaborative", 85},
		{"light independent", models.PartTimeLight, "Independent", 100},
		{"light structured", models.PartTimeLight, "Structured weekly meetings", 50},
		{"light default", models.PartTimeLight, "", 85},
		{"unknown availability default style", "Whenever", "", 100},
		{"hands-on wins over independent", models.PartTimeLight, "independent but hands-on", 50},
		{"default hours collaborative", "", "Collaborative", 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availabilityFit(tt.availability, tt.style))
		})
	}
}

func TestExperienceRelevance(t *testing.T) {
	areas := []string{"Robotics", "Genetics"}

	assert.Equal(t, 30.0, experienceRelevance("", "  ", areas))
	assert.Equal(t, 20.0, experienceRelevance("Built a robotics platform", "", areas))
	assert.Equal(t, 40.0, experienceRelevance("Built a robotics platform", "Summer genetics lab", areas))
	assert.Equal(t, 0.0, experienceRelevance("Retail work", "", areas))

	many := []string{"Robotics", "Genetics", "Physics", "Chemistry", "Economics", "Neuroscience"}
	assert.Equal(t, 100.0, experienceRelevance("robotics genetics physics chemistry economics neuroscience", "", many))
}

func TestCareerAlignment(t *testing.T) {
	areas := []string{"Machine Learning", "Artificial Intelligence"}

	assert.Equal(t, 0.0, careerAlignment("", areas))
	assert.Equal(t, 50.0, careerAlignment("I want to work in machine learning research", areas))
	assert.Equal(t, 0.0, careerAlignment("Open a bakery", areas))
}

func TestComponentScoresBounds(t *testing.T) {
	students := []*models.Student{
		{},
		{GPA: math.NaN(), Year: "??", Availability: "??", ResearchInterests: []string{"", " "}, Skills: []string{""}},
		{GPA: 12, Year: models.PhDStudent, ResearchInterests: []string{"AI", "ai", "Machine Learning"}, Skills: []string{"Python", "python"}},
	}
	professors := []*models.Professor{
		{},
		{LabSize: -3, Title: "Research Principal Investigator", MentorshipStyle: "hands-on intensive", RequiredSkills: []string{"", "Python"}},
		{ResearchAreas: []string{"AI"}, PreferredStudentLevel: []models.YearLevel{""}},
	}
	for _, s := range students {
		for _, p := range professors {
			for c, v := range ComponentScores(s, p) {
				assert.GreaterOrEqual(t, v, 0.0, Component(c).String())
				assert.LessOrEqual(t, v, 100.0, Component(c).String())
			}
			final := CalculateMatchScore(s, p)
			assert.GreaterOrEqual(t, final, 0.0)
			assert.LessOrEqual(t, final, 100.0)
		}
	}
}

func TestComponentScoresNil(t *testing.T) {
	assert.Equal(t, Scores{}, ComponentScores(nil, &models.Professor{}))
	assert.Equal(t, 0.0, CalculateMatchScore(&models.Student{}, nil))
	assert.Empty(t, CommonInterests(nil, nil))
}

func TestCommonInterestsAndSkills(t *testing.T) {
	s := &models.Student{
		ResearchInterests: []string{"Economics", "Machine Learning", "machine learning", "Robotics"},
		Skills:            []string{"Python", "Public Speaking"},
	}
	p := &models.Professor{
		ResearchAreas:  []string{"Artificial Intelligence", "Robotics"},
		RequiredSkills: []string{"Python"},
	}
	assert.Equal(t, []string{"Machine Learning", "Robotics"}, CommonInterests(s, p))
	assert.Equal(t, []string{"Python"}, MatchedSkills(s, p))
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "researchAlignment", ResearchAlignment.String())
	assert.Equal(t, "careerAlignment", CareerAlignment.String())
	assert.Equal(t, "unknown", Component(99).String())
	assert.Len(t, Components(), 7)
}
