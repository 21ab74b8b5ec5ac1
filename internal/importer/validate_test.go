package importer

import (
	"testing"

	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"+1 (555) 123 4567", "(555) 123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{" 12345 ", "12345"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ada@example.edu"))
	assert.False(t, ValidEmail("ada@example"))
	assert.False(t, ValidEmail("ada example.edu"))
	assert.False(t, ValidEmail(""))
}

func fields(warnings []Warning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Field)
	}
	return out
}

func TestNormalizeStudentWarnings(t *testing.T) {
	s := &models.Student{
		Email:        "not-an-email",
		Phone:        "12345",
		Year:         "Postdoc",
		Availability: "weekends",
		GPA:          4.5,
	}
	warnings := NormalizeStudent(2, s)
	assert.Equal(t, []string{"name", "email", "phone", "year", "availability", "gpa", "researchInterests"}, fields(warnings))

	// problems are reported but values are kept
	assert.Equal(t, models.YearLevel("Postdoc"), s.Year)
	assert.Equal(t, 4.5, s.GPA)
	assert.Equal(t, "student #3: name: missing first and last name", warnings[0].String())
}

func TestNormalizeProfessorWarnings(t *testing.T) {
	p := &models.Professor{
		ID:                    "p-1",
		LastName:              "Turing",
		PreferredStudentLevel: []models.YearLevel{"phd student", "Alumni"},
		LabSize:               -2,
	}
	warnings := NormalizeProfessor(0, p)
	assert.Equal(t, []string{"preferredStudentLevel", "labSize", "researchAreas"}, fields(warnings))
	assert.Equal(t, []models.YearLevel{models.PhDStudent, "Alumni"}, p.PreferredStudentLevel)
	assert.Contains(t, warnings[0].String(), "professor p-1")
}
