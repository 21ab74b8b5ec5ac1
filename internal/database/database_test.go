package database

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/khrees2412/labyrinth/internal/app"
	"github.com/khrees2412/labyrinth/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestDB creates a temporary test database
func createTestDB(t testing.TB) *sql.DB {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return db
}

// setupTest installs a test database as DB and returns a cleanup function
func setupTest(t testing.TB) (oldDB *sql.DB, cleanup func()) {
	db := createTestDB(t)
	oldDB = DB
	DB = db

	return oldDB, func() {
		DB = oldDB
		db.Close()
	}
}

func seedPair(t *testing.T) (*models.Student, *models.Professor) {
	t.Helper()
	s := &models.Student{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.edu",
		Year:              models.Senior,
		GPA:               3.8,
		ResearchInterests: []string{"Machine Learning"},
		Skills:            []string{"Python"},
		Availability:      models.PartTimeHeavy,
	}
	p := &models.Professor{
		FirstName:             "Grace",
		LastName:              "Hopper",
		Title:                 "Professor",
		Department:            "Computer Science",
		ResearchAreas:         []string{"Artificial Intelligence"},
		RequiredSkills:        []string{"Python"},
		PreferredStudentLevel: []models.YearLevel{models.Senior},
		LookingForStudents:    true,
	}
	require.NoError(t, CreateStudent(s))
	require.NoError(t, CreateProfessor(p))
	return s, p
}

func TestCreateStudent(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, _ := seedPair(t)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	got, err := GetStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.FirstName, got.FirstName)
	assert.Equal(t, s.ResearchInterests, got.ResearchInterests)
	assert.Equal(t, s.Year, got.Year)

	// Same ID again should fail
	dup := &models.Student{ID: s.ID, FirstName: "Other"}
	err = CreateStudent(dup)
	assert.ErrorIs(t, err, app.ErrAlreadyExists)
}

func TestSaveStudentUpserts(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s := &models.Student{ID: "s-fixed", FirstName: "Ada"}
	require.NoError(t, SaveStudent(s))
	s.FirstName = "Augusta"
	require.NoError(t, SaveStudent(s))

	got, err := GetStudent("s-fixed")
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)

	all, err := GetAllStudents()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetMissingProfiles(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	_, err := GetStudent("nope")
	assert.ErrorIs(t, err, app.ErrNotFound)
	_, err = GetProfessor("nope")
	assert.ErrorIs(t, err, app.ErrNotFound)
	assert.ErrorIs(t, DeleteStudent("nope"), app.ErrNotFound)
	assert.ErrorIs(t, DeleteProfessor("nope"), app.ErrNotFound)
}

func TestGetAllProfessors(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	for i := 1; i <= 3; i++ {
		p := &models.Professor{
			ID:                 fmt.Sprintf("p-%d", i),
			LastName:           fmt.Sprintf("Prof %d", i),
			LookingForStudents: i%2 == 1,
		}
		require.NoError(t, CreateProfessor(p))
	}

	professors, err := GetAllProfessors()
	require.NoError(t, err)
	require.Len(t, professors, 3)
	assert.True(t, professors[0].LookingForStudents)
	assert.False(t, professors[1].LookingForStudents)
}

func TestInterestLifecycle(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, p := seedPair(t)

	sig, err := MarkInterest(s.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInterested, sig.Status)

	_, err = MarkInterest(s.ID, p.ID)
	assert.ErrorIs(t, err, app.ErrDuplicateInterest)

	interested, err := GetInterestedStudents(p.ID)
	require.NoError(t, err)
	require.Len(t, interested, 1)
	assert.Equal(t, s.ID, interested[0].ID)

	require.NoError(t, UpdateInterestStatus(s.ID, p.ID, "Contacted"))
	got, err := GetInterest(s.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, got.Status)

	// contacted students no longer count as interested
	interested, err = GetInterestedStudents(p.ID)
	require.NoError(t, err)
	assert.Empty(t, interested)

	assert.ErrorIs(t, UpdateInterestStatus(s.ID, p.ID, "ghosted"), app.ErrInvalidArgument)
	assert.ErrorIs(t, UpdateInterestStatus(s.ID, "missing", models.StatusMatched), app.ErrNotFound)

	interactions, err := GetInteractions(s.ID)
	require.NoError(t, err)
	require.Len(t, interactions, 2)
	types := []models.InteractionType{interactions[0].Type, interactions[1].Type}
	assert.ElementsMatch(t, []models.InteractionType{models.InteractionInterestMarked, models.InteractionContactSent}, types)

	require.NoError(t, UnmarkInterest(s.ID, p.ID))
	assert.ErrorIs(t, UnmarkInterest(s.ID, p.ID), app.ErrNotFound)
}

func TestToggleInterest(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, p := seedPair(t)

	marked, err := ToggleInterest(s.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, marked)

	signals, err := GetStudentInterests(s.ID)
	require.NoError(t, err)
	assert.Len(t, signals, 1)

	marked, err = ToggleInterest(s.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, marked)

	signals, err = GetInterests()
	require.NoError(t, err)
	assert.Empty(t, signals)
}

func TestMarkInterestUnknownProfile(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, _ := seedPair(t)
	_, err := MarkInterest(s.ID, "no-such-professor")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = MarkInterest("", "p")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

// TestDeleteStudentCascade tests that interests are deleted with the student
func TestDeleteStudentCascade(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, p := seedPair(t)
	_, err := MarkInterest(s.ID, p.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteStudent(s.ID))

	signals, err := GetProfessorInterests(p.ID)
	require.NoError(t, err)
	assert.Empty(t, signals)

	interactions, err := GetInteractions(s.ID)
	require.NoError(t, err)
	assert.Empty(t, interactions)
}

func TestRecordInteraction(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, p := seedPair(t)
	i := &models.Interaction{
		StudentID:   s.ID,
		ProfessorID: p.ID,
		Type:        models.InteractionProfileView,
		Metadata:    `{"source":"match"}`,
	}
	require.NoError(t, RecordInteraction(i))
	assert.NotEmpty(t, i.ID)

	got, err := GetInteractions(s.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, `{"source":"match"}`, got[0].Metadata)

	bad := &models.Interaction{StudentID: s.ID, ProfessorID: p.ID, Type: models.InteractionProfileView, Metadata: "{"}
	assert.ErrorIs(t, RecordInteraction(bad), app.ErrInvalidArgument)

	unknown := &models.Interaction{StudentID: s.ID, ProfessorID: p.ID, Type: "poke"}
	assert.ErrorIs(t, RecordInteraction(unknown), app.ErrInvalidArgument)
}

func TestGetAnalytics(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	s, p := seedPair(t)
	other := &models.Professor{LastName: "Liskov", LookingForStudents: true}
	require.NoError(t, CreateProfessor(other))

	_, err := MarkInterest(s.ID, p.ID)
	require.NoError(t, err)
	_, err = MarkInterest(s.ID, other.ID)
	require.NoError(t, err)
	require.NoError(t, UpdateInterestStatus(s.ID, other.ID, models.StatusContacted))

	a, err := GetAnalytics()
	require.NoError(t, err)
	assert.Equal(t, models.Analytics{
		TotalStudents:    1,
		TotalProfessors:  2,
		TotalInterests:   2,
		ActiveMatches:    1,
		ContactedMatches: 1,
	}, *a)
}

// TestForeignKeyConstraint verifies foreign keys are enabled
func TestForeignKeyConstraint(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	_, err := DB.Exec(`
		INSERT INTO interests (id, student_id, professor_id, status) VALUES ('x', 'ghost', 'ghost', 'interested')
	`)
	assert.Error(t, err, "should have failed due to foreign key constraint")
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := createTestDB(t)
	defer db.Close()
	assert.NoError(t, RunMigrations(db))
}

// BenchmarkCreateStudent benchmarks student creation
func BenchmarkCreateStudent(b *testing.B) {
	_, cleanup := setupTest(b)
	defer cleanup()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := &models.Student{
			FirstName:         fmt.Sprintf("Student %d", i),
			ResearchInterests: []string{"Robotics"},
		}
		CreateStudent(s)
	}
}
