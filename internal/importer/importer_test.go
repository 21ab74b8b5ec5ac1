package importer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khrees2412/labyrinth/internal/app"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
students:
  - id: s-ada
    firstName: Ada
    lastName: Lovelace
    email: ada@example.edu
    phone: "555.123.4567"
    year: senior
    gpa: 3.8
    researchInterests: ["Machine Learning", "  ", "Robotics"]
    skills: [Python]
    availability: full-time (year-round)
professors:
  - id: p-grace
    firstName: Grace
    lastName: Hopper
    title: Professor
    department: Computer Science
    researchAreas: [Artificial Intelligence]
    requiredSkills: [Python]
    preferredStudentLevel: [SENIOR, junior]
    labSize: 4
    mentorshipStyle: Collaborative
    lookingForStudents: true
`

func TestDecodeYAML(t *testing.T) {
	b, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, b.Students, 1)
	require.Len(t, b.Professors, 1)

	s := b.Students[0]
	assert.Equal(t, "s-ada", s.ID)
	assert.Equal(t, 3.8, s.GPA)

	warnings := Normalize(b)
	assert.Empty(t, warnings)
	assert.Equal(t, models.Senior, s.Year)
	assert.Equal(t, models.FullTimeYearRound, s.Availability)
	assert.Equal(t, "(555) 123-4567", s.Phone)
	assert.Equal(t, []string{"Machine Learning", "Robotics"}, s.ResearchInterests)

	p := b.Professors[0]
	assert.Equal(t, []models.YearLevel{models.Senior, models.Junior}, p.PreferredStudentLevel)
	assert.True(t, p.LookingForStudents)
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"students":[{"id":"s1","firstName":"Alan","researchInterests":["Cryptography"]}]}`
	b, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, b.Students, 1)
	assert.Equal(t, "Alan", b.Students[0].FirstName)
	assert.Empty(t, b.Professors)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("students:\n  - firstname: Ada\n"))
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestDecodeEmpty(t *testing.T) {
	b, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, b.Students)
	assert.Empty(t, b.Professors)
}

func TestRoundTripFiles(t *testing.T) {
	b, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	Normalize(b)

	for _, name := range []string{"profiles.yaml", "profiles.json", "profiles.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, b))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, b.Students[0].ResearchInterests, got.Students[0].ResearchInterests)
			assert.Equal(t, b.Professors[0].PreferredStudentLevel, got.Professors[0].PreferredStudentLevel)
			assert.Equal(t, b.Professors[0].LookingForStudents, got.Professors[0].LookingForStudents)
		})
	}
}

func TestDecodeTOMLRejectsUnknownFields(t *testing.T) {
	_, err := DecodeAs(strings.NewReader("[[students]]\nid = \"s1\"\nnickname = \"x\"\n"), FormatTOML)
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestDecodeTOML(t *testing.T) {
	doc := `
[[professors]]
id = "p1"
firstName = "Grace"
researchAreas = ["Artificial Intelligence"]
lookingForStudents = true
`
	b, err := DecodeAs(strings.NewReader(doc), FormatTOML)
	require.NoError(t, err)
	require.Len(t, b.Professors, 1)
	assert.Equal(t, []string{"Artificial Intelligence"}, b.Professors[0].ResearchAreas)
	assert.True(t, b.Professors[0].LookingForStudents)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, &Bundle{}, "xml"), app.ErrInvalidArgument)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("out.JSON"))
	assert.Equal(t, FormatTOML, FormatFor("seed.toml"))
	assert.Equal(t, FormatYAML, FormatFor("out.yml"))
	assert.Equal(t, FormatYAML, FormatFor("out"))
}
