package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/khrees2412/labyrinth/pkg/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// Warning describes a profile field that was kept but looks wrong
type Warning struct {
	Kind    models.ProfileKind
	Index   int
	ID      string
	Field   string
	Message string
}

func (w Warning) String() string {
	who := w.ID
	if who == "" {
		who = fmt.Sprintf("#%d", w.Index+1)
	}
	return fmt.Sprintf("%s %s: %s: %s", w.Kind, who, w.Field, w.Message)
}

// NormalizePhone formats ten digit numbers as (555) 555-5555, dropping a
// leading US country code. Other input is returned trimmed and unchanged.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := nonDigit.ReplaceAllString(phone, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// ValidEmail reports whether email looks like an address
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether phone is in (555) 555-5555 form
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

type checker struct {
	kind     models.ProfileKind
	index    int
	id       string
	warnings []Warning
}

func (c *checker) warn(field, format string, args ...interface{}) {
	c.warnings = append(c.warnings, Warning{
		Kind:    c.kind,
		Index:   c.index,
		ID:      c.id,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) contact(first, last string, email, phone *string) {
	if strings.TrimSpace(first) == "" && strings.TrimSpace(last) == "" {
		c.warn("name", "missing first and last name")
	}
	*email = strings.TrimSpace(*email)
	if *email != "" && !ValidEmail(*email) {
		c.warn("email", "%q is not a valid email address", *email)
	}
	*phone = NormalizePhone(*phone)
	if *phone != "" && !ValidPhone(*phone) {
		c.warn("phone", "%q is not in (555) 555-5555 format", *phone)
	}
}

// trimLabels trims entries and drops blanks, keeping order
func trimLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func (c *checker) year(field string, y models.YearLevel) models.YearLevel {
	if y == "" {
		return y
	}
	canonical, err := models.ParseYearLevel(string(y))
	if err != nil {
		c.warn(field, "%v", err)
		return y
	}
	return canonical
}

// NormalizeStudent canonicalizes enum labels and contact fields in place
func NormalizeStudent(index int, s *models.Student) []Warning {
	c := &checker{kind: models.KindStudent, index: index, id: s.ID}
	c.contact(s.FirstName, s.LastName, &s.Email, &s.Phone)

	s.Year = c.year("year", s.Year)
	if s.Availability != "" {
		if a, err := models.ParseAvailability(string(s.Availability)); err != nil {
			c.warn("availability", "%v", err)
		} else {
			s.Availability = a
		}
	}
	if s.GPA < 0 || s.GPA > 4 {
		c.warn("gpa", "%.2f is outside 0.0-4.0", s.GPA)
	}
	s.ResearchInterests = trimLabels(s.ResearchInterests)
	s.Skills = trimLabels(s.Skills)
	if len(s.ResearchInterests) == 0 {
		c.warn("researchInterests", "no research interests listed")
	}
	return c.warnings
}

// NormalizeProfessor canonicalizes enum labels and contact fields in place
func NormalizeProfessor(index int, p *models.Professor) []Warning {
	c := &checker{kind: models.KindProfessor, index: index, id: p.ID}
	c.contact(p.FirstName, p.LastName, &p.Email, &p.Phone)

	for i, y := range p.PreferredStudentLevel {
		p.PreferredStudentLevel[i] = c.year("preferredStudentLevel", y)
	}
	if p.LabSize < 0 {
		c.warn("labSize", "%d is negative", p.LabSize)
	}
	p.ResearchAreas = trimLabels(p.ResearchAreas)
	p.RequiredSkills = trimLabels(p.RequiredSkills)
	if len(p.ResearchAreas) == 0 {
		c.warn("researchAreas", "no research areas listed")
	}
	return c.warnings
}

// Normalize runs NormalizeStudent and NormalizeProfessor over a bundle
func Normalize(b *Bundle) []Warning {
	var warnings []Warning
	for i, s := range b.Students {
		warnings = append(warnings, NormalizeStudent(i, s)...)
	}
	for i, p := range b.Professors {
		warnings = append(warnings, NormalizeProfessor(i, p)...)
	}
	return warnings
}
