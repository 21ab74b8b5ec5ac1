package matcher

import (
	"math"
	"sort"
	"time"

	"github.com/khrees2412/labyrinth/internal/logger"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/sourcegraph/conc/iter"
)

const (
	// DefaultThreshold is the score a match must exceed to be listed
	DefaultThreshold = 20.0
	// tieWindow is the score gap below which common interests decide order
	tieWindow = 2.0
)

// Recorder receives statistics about ranking passes
type Recorder interface {
	ObservePass(d Direction, candidates, kept, boosted int, elapsed time.Duration)
	ObserveScore(d Direction, score float64)
}

// Matcher ranks candidates for a student or a professor. It holds no
// per-query state and is safe for concurrent use.
type Matcher struct {
	threshold float64
	limit     int
	workers   int
	logger    logger.Logger
	recorder  Recorder
	now       func() time.Time
}

// Option configures a Matcher
type Option func(*Matcher)

// WithThreshold sets the exclusive minimum score for listed matches
func WithThreshold(t float64) Option {
	return func(m *Matcher) { m.threshold = t }
}

// WithLimit caps the number of results; zero or less means no cap
func WithLimit(n int) Option {
	return func(m *Matcher) { m.limit = n }
}

// WithWorkers bounds scoring concurrency; zero uses GOMAXPROCS
func WithWorkers(n int) Option {
	return func(m *Matcher) { m.workers = n }
}

// WithLogger sets the logger used for pass summaries
func WithLogger(l logger.Logger) Option {
	return func(m *Matcher) { m.logger = l }
}

// WithRecorder reports pass statistics to r
func WithRecorder(r Recorder) Option {
	return func(m *Matcher) { m.recorder = r }
}

// WithClock overrides the timestamp source for CreatedAt
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) { m.now = now }
}

// New returns a Matcher with the given options applied
func New(opts ...Option) *Matcher {
	m := &Matcher{
		threshold: DefaultThreshold,
		logger:    logger.NewNoOpLogger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.workers < 0 {
		m.workers = 0
	}
	return m
}

// pair is one (student, professor) combination to score
type pair struct {
	student   *models.Student
	professor *models.Professor
}

// ScoreMatches ranks candidates for subject. A *models.Student subject is
// matched against professor candidates and a *models.Professor subject
// against student candidates; candidates of the subject's own kind, nil
// entries and professors not looking for students are skipped. The looking
// gate applies only to professor candidates: a professor subject who is not
// looking still gets ranked students.
func (m *Matcher) ScoreMatches(subject models.Profile, candidates []models.Profile, signals []models.InterestSignal) []models.MatchResult {
	switch s := subject.(type) {
	case *models.Student:
		if s == nil {
			return []models.MatchResult{}
		}
		professors := make([]*models.Professor, 0, len(candidates))
		for _, c := range candidates {
			if p, ok := c.(*models.Professor); ok && p != nil {
				professors = append(professors, p)
			}
		}
		return m.FindProfessorsForStudent(s, professors, signals)
	case *models.Professor:
		if s == nil {
			return []models.MatchResult{}
		}
		students := make([]*models.Student, 0, len(candidates))
		for _, c := range candidates {
			if st, ok := c.(*models.Student); ok && st != nil {
				students = append(students, st)
			}
		}
		return m.FindStudentsForProfessor(s, students, signals)
	default:
		return []models.MatchResult{}
	}
}

// FindProfessorsForStudent ranks professors who are looking for students
func (m *Matcher) FindProfessorsForStudent(s *models.Student, professors []*models.Professor, signals []models.InterestSignal) []models.MatchResult {
	if s == nil {
		return []models.MatchResult{}
	}
	pairs := make([]pair, 0, len(professors))
	for _, p := range professors {
		if p == nil || !p.LookingForStudents {
			continue
		}
		pairs = append(pairs, pair{student: s, professor: p})
	}
	return m.rank(StudentView, pairs, signals)
}

// FindStudentsForProfessor ranks students for a professor. Students are
// ranked even when the professor is not currently looking.
func (m *Matcher) FindStudentsForProfessor(p *models.Professor, students []*models.Student, signals []models.InterestSignal) []models.MatchResult {
	if p == nil {
		return []models.MatchResult{}
	}
	pairs := make([]pair, 0, len(students))
	for _, s := range students {
		if s == nil {
			continue
		}
		pairs = append(pairs, pair{student: s, professor: p})
	}
	return m.rank(ProfessorView, pairs, signals)
}

// Explain breaks down a single pair's unboosted score
func (m *Matcher) Explain(s *models.Student, p *models.Professor) models.Explanation {
	return Explain(s, p)
}

func (m *Matcher) rank(d Direction, pairs []pair, signals []models.InterestSignal) []models.MatchResult {
	start := time.Now()
	interests := newInterestIndex(signals)
	createdAt := m.now()

	mapper := iter.Mapper[pair, *models.MatchResult]{MaxGoroutines: m.workers}
	scored := mapper.Map(pairs, func(pr *pair) *models.MatchResult {
		return m.scorePair(d, pr, interests, createdAt)
	})

	results := make([]models.MatchResult, 0, len(scored))
	boosted := 0
	for _, r := range scored {
		if r == nil {
			continue
		}
		if r.Boosted {
			boosted++
		}
		results = append(results, *r)
	}

	sortMatches(d, results)
	if m.limit > 0 && len(results) > m.limit {
		results = results[:m.limit]
	}

	elapsed := time.Since(start)
	if m.recorder != nil {
		m.recorder.ObservePass(d, len(pairs), len(results), boosted, elapsed)
	}
	m.logger.Debug("ranking pass complete", map[string]interface{}{
		"direction":  d.String(),
		"candidates": len(pairs),
		"kept":       len(results),
		"boosted":    boosted,
		"elapsed":    elapsed.String(),
	})
	return results
}

// scorePair returns nil when the pair does not clear the threshold
func (m *Matcher) scorePair(d Direction, pr *pair, interests interestIndex, createdAt time.Time) *models.MatchResult {
	base := CalculateMatchScore(pr.student, pr.professor)
	score := base
	hasInterest := interests.has(pr.student.ID, pr.professor.ID)
	if hasInterest {
		score = Boost(base, d)
	}
	if m.recorder != nil {
		m.recorder.ObserveScore(d, score)
	}
	if !(score > m.threshold) {
		return nil
	}
	return &models.MatchResult{
		ID:              pr.student.ID + "-" + pr.professor.ID,
		StudentID:       pr.student.ID,
		ProfessorID:     pr.professor.ID,
		Score:           score,
		BaseScore:       base,
		Boosted:         hasInterest,
		CommonInterests: CommonInterests(pr.student, pr.professor),
		MatchedSkills:   MatchedSkills(pr.student, pr.professor),
		CreatedAt:       createdAt,
	}
}

func candidateID(d Direction, r models.MatchResult) string {
	if d == ProfessorView {
		return r.StudentID
	}
	return r.ProfessorID
}

// sortMatches orders by score descending. Adjacent results within tieWindow
// of each other are ordered by number of common interests instead. The
// window rule is not transitive, so only neighbours are guaranteed to obey
// it.
func sortMatches(d Direction, results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.CommonInterests) != len(b.CommonInterests) {
			return len(a.CommonInterests) > len(b.CommonInterests)
		}
		return candidateID(d, a) < candidateID(d, b)
	})

	// Each swap moves a candidate with strictly more common interests ahead
	// of a neighbour, so the pass terminates.
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i+1 < len(results); i++ {
			a, b := results[i], results[i+1]
			if math.Abs(a.Score-b.Score) < tieWindow && len(b.CommonInterests) > len(a.CommonInterests) {
				results[i], results[i+1] = b, a
				swapped = true
			}
		}
	}
}
