package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    YearLevel
		wantErr bool
	}{
		{"Freshman", Freshman, false},
		{"  phd   student ", PhDStudent, false},
		{"GRADUATE STUDENT", GraduateStudent, false},
		{"Postdoc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseYearLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearLevelOrdinal(t *testing.T) {
	for i, y := range YearLevels {
		assert.Equal(t, i+1, y.Ordinal())
		assert.True(t, y.Valid())
	}
	assert.Equal(t, 4, YearLevel("senior").Ordinal())
	assert.Equal(t, 0, YearLevel("Alumni").Ordinal())
	assert.False(t, YearLevel("").Valid())
}

func TestAvailability(t *testing.T) {
	assert.Equal(t, 12.5, PartTimeLight.WeeklyHours())
	assert.Equal(t, 17.5, PartTimeHeavy.WeeklyHours())
	assert.Equal(t, 40.0, FullTimeSummer.WeeklyHours())
	assert.Equal(t, 40.0, Availability("full-time (year-round)").WeeklyHours())
	assert.Equal(t, DefaultWeeklyHours, Availability("Weekends").WeeklyHours())

	got, err := ParseAvailability("part-time (15-20 HOURS/week)")
	require.NoError(t, err)
	assert.Equal(t, PartTimeHeavy, got)

	_, err = ParseAvailability("sometimes")
	assert.Error(t, err)
}

func TestParseInterestStatus(t *testing.T) {
	for _, st := range InterestStatuses {
		got, err := ParseInterestStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	got, err := ParseInterestStatus(" Contacted ")
	require.NoError(t, err)
	assert.Equal(t, StatusContacted, got)

	_, err = ParseInterestStatus("ghosted")
	assert.Error(t, err)
}

func TestParseInteractionType(t *testing.T) {
	for _, it := range InteractionTypes {
		got, err := ParseInteractionType(string(it))
		require.NoError(t, err)
		assert.Equal(t, it, got)
	}
	got, err := ParseInteractionType("Response Received")
	require.NoError(t, err)
	assert.Equal(t, InteractionResponseReceived, got)

	_, err = ParseInteractionType("poke")
	assert.Error(t, err)
}

func TestTiers(t *testing.T) {
	tests := []struct {
		score float64
		tier  ScoreTier
		label string
	}{
		{100, TierExcellent, "Excellent"},
		{85, TierExcellent, "Excellent"},
		{84.9, TierStrong, "Strong"},
		{70, TierStrong, "Strong"},
		{55, TierGood, "Good"},
		{40, TierFair, "Fair"},
		{39.99, TierWeak, "Weak"},
		{0, TierWeak, "Weak"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, TierFor(tt.score), tt.score)
		assert.Equal(t, tt.label, TierFor(tt.score).Label())
	}
	assert.Equal(t, TierStrong, MatchResult{Score: 72}.Tier())
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "87%", FormatScore(87.4))
	assert.Equal(t, "88%", FormatScore(87.5))
	assert.Equal(t, "0%", FormatScore(0))
	assert.Equal(t, "0%", FormatScore(math.NaN()))
}

func TestResearchAreasByCategory(t *testing.T) {
	categories, areas := ResearchAreasByCategory()
	require.NotEmpty(t, categories)
	assert.Equal(t, "Computer Science", categories[0])
	assert.Len(t, categories, len(areas))
	assert.Equal(t, []string{"Quantum Computing", "Astrophysics"}, areas["Physics"])

	total := 0
	for _, c := range categories {
		total += len(areas[c])
	}
	assert.Equal(t, len(ResearchAreas), total)
}

func TestDisplayName(t *testing.T) {
	s := &Student{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", s.DisplayName())
	assert.Equal(t, KindStudent, s.Kind())

	p := &Professor{FirstName: "Grace", LastName: "Hopper", Title: "Professor"}
	assert.Equal(t, KindProfessor, p.Kind())
	assert.Contains(t, p.DisplayName(), "Grace Hopper")
}
