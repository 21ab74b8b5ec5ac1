package models

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	folder = cases.Fold()
	titler = cases.Title(language.English)
)

func foldKey(s string) string {
	return folder.String(strings.Join(strings.Fields(s), " "))
}

// YearLevel is the student's academic standing
type YearLevel string

const (
	Freshman        YearLevel = "Freshman"
	Sophomore       YearLevel = "Sophomore"
	Junior          YearLevel = "Junior"
	Senior          YearLevel = "Senior"
	GraduateStudent YearLevel = "Graduate Student"
	PhDStudent      YearLevel = "PhD Student"
)

// YearLevels lists every level in ascending order
var YearLevels = []YearLevel{Freshman, Sophomore, Junior, Senior, GraduateStudent, PhDStudent}

var yearOrdinals = func() map[string]int {
	m := make(map[string]int, len(YearLevels))
	for i, y := range YearLevels {
		m[foldKey(string(y))] = i + 1
	}
	return m
}()

// Ordinal maps the level to 1 (Freshman) .. 6 (PhD Student), or 0 when the
// label is not recognized
func (y YearLevel) Ordinal() int {
	return yearOrdinals[foldKey(string(y))]
}

// Valid reports whether the label is one of the known levels
func (y YearLevel) Valid() bool {
	return y.Ordinal() > 0
}

// ParseYearLevel resolves a label case-insensitively to its canonical form
func ParseYearLevel(s string) (YearLevel, error) {
	ord := yearOrdinals[foldKey(s)]
	if ord == 0 {
		return "", fmt.Errorf("unknown year level %q", s)
	}
	return YearLevels[ord-1], nil
}

// Availability is the student's weekly workload band
type Availability string

const (
	PartTimeLight     Availability = "Part-time (10-15 hours/week)"
	PartTimeHeavy     Availability = "Part-time (15-20 hours/week)"
	FullTimeSummer    Availability = "Full-time (Summer only)"
	FullTimeYearRound Availability = "Full-time (Year-round)"
)

// Availabilities lists the recognized workload bands
var Availabilities = []Availability{PartTimeLight, PartTimeHeavy, FullTimeSummer, FullTimeYearRound}

// DefaultWeeklyHours is assumed when the availability band is not recognized
const DefaultWeeklyHours = 15.0

var availabilityHours = map[string]float64{
	foldKey(string(PartTimeLight)):     12.5,
	foldKey(string(PartTimeHeavy)):     17.5,
	foldKey(string(FullTimeSummer)):    40,
	foldKey(string(FullTimeYearRound)): 40,
}

// WeeklyHours returns the hours per week the band represents
func (a Availability) WeeklyHours() float64 {
	if h, ok := availabilityHours[foldKey(string(a))]; ok {
		return h
	}
	return DefaultWeeklyHours
}

// ParseAvailability resolves a label case-insensitively to its canonical form
func ParseAvailability(s string) (Availability, error) {
	key := foldKey(s)
	for _, a := range Availabilities {
		if foldKey(string(a)) == key {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown availability %q", s)
}

// InterestStatus tracks where an expressed interest stands
type InterestStatus string

const (
	StatusInterested InterestStatus = "interested"
	StatusContacted  InterestStatus = "contacted"
	StatusMatched    InterestStatus = "matched"
	StatusDeclined   InterestStatus = "declined"
)

// InterestStatuses lists the valid states in workflow order
var InterestStatuses = []InterestStatus{StatusInterested, StatusContacted, StatusMatched, StatusDeclined}

// ParseInterestStatus validates a status label
func ParseInterestStatus(s string) (InterestStatus, error) {
	key := foldKey(s)
	for _, st := range InterestStatuses {
		if string(st) == key {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown interest status %q", s)
}

// InteractionType classifies activity log entries
type InteractionType string

const (
	InteractionProfileView      InteractionType = "profile_view"
	InteractionContactSent      InteractionType = "contact_sent"
	InteractionInterestMarked   InteractionType = "interest_marked"
	InteractionResponseReceived InteractionType = "response_received"
)

// InteractionTypes lists every activity log entry kind
var InteractionTypes = []InteractionType{
	InteractionProfileView, InteractionContactSent, InteractionInterestMarked, InteractionResponseReceived,
}

// ParseInteractionType accepts "response received" as well as "response_received"
func ParseInteractionType(s string) (InteractionType, error) {
	key := strings.ReplaceAll(foldKey(s), " ", "_")
	for _, it := range InteractionTypes {
		if string(it) == key {
			return it, nil
		}
	}
	return "", fmt.Errorf("unknown interaction type %q", s)
}

// ScoreTier buckets a match score for display
type ScoreTier string

const (
	TierExcellent ScoreTier = "excellent"
	TierStrong    ScoreTier = "strong"
	TierGood      ScoreTier = "good"
	TierFair      ScoreTier = "fair"
	TierWeak      ScoreTier = "weak"
)

// TierFor buckets a 0-100 score
func TierFor(score float64) ScoreTier {
	switch {
	case score >= 85:
		return TierExcellent
	case score >= 70:
		return TierStrong
	case score >= 55:
		return TierGood
	case score >= 40:
		return TierFair
	default:
		return TierWeak
	}
}

// Label returns the tier in title case
func (t ScoreTier) Label() string {
	return titler.String(string(t))
}

// FormatScore renders a score as a rounded percentage, e.g. "87%"
func FormatScore(score float64) string {
	if math.IsNaN(score) {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(score)))
}
