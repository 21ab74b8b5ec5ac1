package matcher

import (
	"math"

	"github.com/khrees2412/labyrinth/pkg/models"
)

// Direction is the perspective a ranking is produced from
type Direction int

const (
	// StudentView ranks professors for a student
	StudentView Direction = iota
	// ProfessorView ranks students for a professor
	ProfessorView
)

func (d Direction) String() string {
	if d == ProfessorView {
		return "professor"
	}
	return "student"
}

// boostBand adds bonus points to scores at or above floor
type boostBand struct {
	floor float64
	bonus float64
}

// Strong matches get a small bump and marginal ones a large one, so an
// interested but overlooked candidate surfaces without saturating the top.
var boostBands = map[Direction][]boostBand{
	StudentView:   {{80, 5}, {60, 8}, {math.Inf(-1), 12}},
	ProfessorView: {{85, 8}, {70, 12}, {math.Inf(-1), 18}},
}

// Boost raises a base score for a pair with an expressed interest
func Boost(base float64, d Direction) float64 {
	base = clampScore(base)
	for _, b := range boostBands[d] {
		if base >= b.floor {
			return math.Min(base+b.bonus, 100)
		}
	}
	return base
}

type pairKey struct {
	studentID   string
	professorID string
}

// interestIndex answers "has this student expressed interest in this
// professor" for one ranking pass
type interestIndex map[pairKey]bool

func newInterestIndex(signals []models.InterestSignal) interestIndex {
	idx := make(interestIndex)
	for _, s := range signals {
		if s.Status != models.StatusInterested || s.StudentID == "" || s.ProfessorID == "" {
			continue
		}
		idx[pairKey{s.StudentID, s.ProfessorID}] = true
	}
	return idx
}

func (idx interestIndex) has(studentID, professorID string) bool {
	return idx[pairKey{studentID, professorID}]
}
