// Package output renders matcher and record store results as terminal
// tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/khrees2412/labyrinth/internal/matcher"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/olekukonko/tablewriter"
)

// NameFunc resolves a profile ID to a display name
type NameFunc func(id string) string

// JSON writes v as indented JSON
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func render(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	table.Header(cells...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	return table.Render()
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Matches renders ranked results from the given direction. Candidate names
// are looked up with names when it is not nil.
func Matches(w io.Writer, results []models.MatchResult, d matcher.Direction, names NameFunc) error {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		id := r.ProfessorID
		if d == matcher.ProfessorView {
			id = r.StudentID
		}
		name := ""
		if names != nil {
			name = names(id)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			id,
			name,
			models.FormatScore(r.Score),
			r.Tier().Label(),
			yesNo(r.Boosted),
			list(r.CommonInterests),
			list(r.MatchedSkills),
		})
	}
	return render(w, []string{"#", "ID", "Name", "Score", "Tier", "Boosted", "Common Interests", "Matched Skills"}, rows)
}

// Explanation renders the component breakdown of a score
func Explanation(w io.Writer, e models.Explanation) error {
	rows := make([][]string, 0, len(e.Components)+1)
	for _, c := range matcher.Components() {
		name := c.String()
		score, weight := e.Components[name], e.Weights[name]
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.1f", score),
			fmt.Sprintf("%.3f", weight),
			fmt.Sprintf("%.2f", score*weight),
		})
	}
	rows = append(rows, []string{"final", models.FormatScore(e.FinalScore), "", models.TierFor(e.FinalScore).Label()})
	return render(w, []string{"Component", "Score", "Weight", "Contribution"}, rows)
}

// Analytics renders the record store totals
func Analytics(w io.Writer, a models.Analytics) error {
	rows := [][]string{
		{"Students", strconv.Itoa(a.TotalStudents)},
		{"Professors", strconv.Itoa(a.TotalProfessors)},
		{"Interests", strconv.Itoa(a.TotalInterests)},
		{"Active (interested)", strconv.Itoa(a.ActiveMatches)},
		{"Contacted", strconv.Itoa(a.ContactedMatches)},
	}
	return render(w, []string{"Metric", "Count"}, rows)
}

// Students renders a student listing
func Students(w io.Writer, students []*models.Student) error {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			s.ID,
			s.DisplayName(),
			string(s.Year),
			s.Major,
			fmt.Sprintf("%.2f", s.GPA),
			list(s.ResearchInterests),
		})
	}
	return render(w, []string{"ID", "Name", "Year", "Major", "GPA", "Research Interests"}, rows)
}

// Professors renders a professor listing
func Professors(w io.Writer, professors []*models.Professor) error {
	rows := make([][]string, 0, len(professors))
	for _, p := range professors {
		rows = append(rows, []string{
			p.ID,
			p.DisplayName(),
			p.Department,
			yesNo(p.LookingForStudents),
			strconv.Itoa(p.LabSize),
			list(p.ResearchAreas),
		})
	}
	return render(w, []string{"ID", "Name", "Department", "Looking", "Lab Size", "Research Areas"}, rows)
}

// Interests renders interest signals
func Interests(w io.Writer, signals []models.InterestSignal, names NameFunc) error {
	rows := make([][]string, 0, len(signals))
	for _, s := range signals {
		student, professor := s.StudentID, s.ProfessorID
		if names != nil {
			student, professor = labelled(s.StudentID, names), labelled(s.ProfessorID, names)
		}
		rows = append(rows, []string{
			student,
			professor,
			string(s.Status),
			s.Timestamp.Format("2006-01-02 15:04"),
		})
	}
	return render(w, []string{"Student", "Professor", "Status", "Since"}, rows)
}

// Interactions renders an activity log
func Interactions(w io.Writer, interactions []models.Interaction, names NameFunc) error {
	rows := make([][]string, 0, len(interactions))
	for _, i := range interactions {
		professor := i.ProfessorID
		if names != nil {
			professor = labelled(i.ProfessorID, names)
		}
		rows = append(rows, []string{
			i.Timestamp.Format("2006-01-02 15:04"),
			string(i.Type),
			professor,
			i.Metadata,
		})
	}
	return render(w, []string{"When", "Type", "Professor", "Details"}, rows)
}

func labelled(id string, names NameFunc) string {
	if n := names(id); n != "" {
		return fmt.Sprintf("%s (%s)", n, id)
	}
	return id
}

// Catalog renders research areas grouped by category, then the skill list
func Catalog(w io.Writer) error {
	categories, areas := models.ResearchAreasByCategory()
	rows := make([][]string, 0, len(categories)+1)
	for _, c := range categories {
		rows = append(rows, []string{c, strings.Join(areas[c], ", ")})
	}
	rows = append(rows, []string{"Skills", strings.Join(models.Skills, ", ")})
	return render(w, []string{"Category", "Entries"}, rows)
}
