package models

import "time"

// ProfileKind identifies which side of a match a profile sits on
type ProfileKind string

const (
	KindStudent   ProfileKind = "student"
	KindProfessor ProfileKind = "professor"
)

// Profile is implemented by Student and Professor so a single ranking entry
// point can serve both directions
type Profile interface {
	ProfileID() string
	Kind() ProfileKind
	DisplayName() string
}

// Student represents a student looking for a research mentor
type Student struct {
	ID                       string       `json:"id" yaml:"id" toml:"id"`
	FirstName                string       `json:"firstName" yaml:"firstName" toml:"firstName"`
	LastName                 string       `json:"lastName" yaml:"lastName" toml:"lastName"`
	Email                    string       `json:"email" yaml:"email" toml:"email"`
	Phone                    string       `json:"phone" yaml:"phone" toml:"phone"`
	Pronouns                 string       `json:"pronouns" yaml:"pronouns" toml:"pronouns"`
	Ethnicity                string       `json:"ethnicity" yaml:"ethnicity" toml:"ethnicity"`
	University               string       `json:"university" yaml:"university" toml:"university"`
	Major                    string       `json:"major" yaml:"major" toml:"major"`
	Year                     YearLevel    `json:"year" yaml:"year" toml:"year"`
	GPA                      float64      `json:"gpa" yaml:"gpa" toml:"gpa"`
	ResearchInterests        []string     `json:"researchInterests" yaml:"researchInterests" toml:"researchInterests"`
	Skills                   []string     `json:"skills" yaml:"skills" toml:"skills"`
	Experience               string       `json:"experience" yaml:"experience" toml:"experience"`
	PreviousResearch         string       `json:"previousResearch" yaml:"previousResearch" toml:"previousResearch"`
	CareerGoals              string       `json:"careerGoals" yaml:"careerGoals" toml:"careerGoals"`
	Availability             Availability `json:"availability" yaml:"availability" toml:"availability"`
	PreferredMentorshipStyle string       `json:"preferredMentorshipStyle" yaml:"preferredMentorshipStyle" toml:"preferredMentorshipStyle"`
	CreatedAt                time.Time    `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

func (s *Student) ProfileID() string   { return s.ID }
func (s *Student) Kind() ProfileKind   { return KindStudent }
func (s *Student) DisplayName() string { return joinName(s.FirstName, s.LastName) }

// Professor represents a faculty member who may take on research students
type Professor struct {
	ID                    string      `json:"id" yaml:"id" toml:"id"`
	FirstName             string      `json:"firstName" yaml:"firstName" toml:"firstName"`
	LastName              string      `json:"lastName" yaml:"lastName" toml:"lastName"`
	Email                 string      `json:"email" yaml:"email" toml:"email"`
	Phone                 string      `json:"phone" yaml:"phone" toml:"phone"`
	Pronouns              string      `json:"pronouns" yaml:"pronouns" toml:"pronouns"`
	Ethnicity             string      `json:"ethnicity" yaml:"ethnicity" toml:"ethnicity"`
	University            string      `json:"university" yaml:"university" toml:"university"`
	Department            string      `json:"department" yaml:"department" toml:"department"`
	Title                 string      `json:"title" yaml:"title" toml:"title"`
	ResearchAreas         []string    `json:"researchAreas" yaml:"researchAreas" toml:"researchAreas"`
	Publications          []string    `json:"publications" yaml:"publications" toml:"publications"`
	FundingHistory        string      `json:"fundingHistory" yaml:"fundingHistory" toml:"fundingHistory"`
	LabSize               int         `json:"labSize" yaml:"labSize" toml:"labSize"`
	MentorshipStyle       string      `json:"mentorshipStyle" yaml:"mentorshipStyle" toml:"mentorshipStyle"`
	LookingForStudents    bool        `json:"lookingForStudents" yaml:"lookingForStudents" toml:"lookingForStudents"`
	RequiredSkills        []string    `json:"requiredSkills" yaml:"requiredSkills" toml:"requiredSkills"`
	PreferredStudentLevel []YearLevel `json:"preferredStudentLevel" yaml:"preferredStudentLevel" toml:"preferredStudentLevel"`
	Bio                   string      `json:"bio" yaml:"bio" toml:"bio"`
	WebsiteURL            string      `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty" toml:"websiteUrl,omitempty"`
	CreatedAt             time.Time   `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

func (p *Professor) ProfileID() string { return p.ID }
func (p *Professor) Kind() ProfileKind { return KindProfessor }
func (p *Professor) DisplayName() string {
	name := joinName(p.FirstName, p.LastName)
	if p.Title != "" && name != "" {
		return name + ", " + p.Title
	}
	return name
}

// InterestSignal records a student's expressed interest in a professor
type InterestSignal struct {
	ID          string         `json:"id" yaml:"id" toml:"id"`
	StudentID   string         `json:"studentId" yaml:"studentId" toml:"studentId"`
	ProfessorID string         `json:"professorId" yaml:"professorId" toml:"professorId"`
	Status      InterestStatus `json:"status" yaml:"status" toml:"status"`
	Timestamp   time.Time      `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
}

// Interaction is an entry in the student/professor activity log
type Interaction struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"studentId"`
	ProfessorID string          `json:"professorId"`
	Type        InteractionType `json:"type"`
	Metadata    string          `json:"metadata,omitempty"` // JSON string
	Timestamp   time.Time       `json:"timestamp"`
}

// MatchResult is a ranked (student, professor) pairing. It is derived data,
// recomputed on every query and never mutated after construction.
type MatchResult struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"studentId"`
	ProfessorID     string    `json:"professorId"`
	Score           float64   `json:"score"`
	BaseScore       float64   `json:"baseScore"`
	Boosted         bool      `json:"boosted"`
	CommonInterests []string  `json:"commonInterests"`
	MatchedSkills   []string  `json:"matchedSkills"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Tier returns the display tier of the match score
func (m MatchResult) Tier() ScoreTier {
	return TierFor(m.Score)
}

// Explanation is a diagnostic breakdown of a single pair's score
type Explanation struct {
	Components map[string]float64 `json:"components"`
	Weights    map[string]float64 `json:"weights"`
	FinalScore float64            `json:"finalScore"`
}

// Analytics summarizes the contents of the record store
type Analytics struct {
	TotalStudents    int `json:"totalStudents"`
	TotalProfessors  int `json:"totalProfessors"`
	TotalInterests   int `json:"totalInterests"`
	ActiveMatches    int `json:"activeMatches"`
	ContactedMatches int `json:"contactedMatches"`
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
