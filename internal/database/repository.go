package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/khrees2412/labyrinth/internal/app"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/mattn/go-sqlite3"
)

// queryer is satisfied by *sql.DB and *sql.Tx
type queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

func newID() string {
	return uuid.NewString()
}

// translateError maps SQLite constraint failures onto application sentinels
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%s: %w", what, app.ErrAlreadyExists)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: referenced profile: %w", what, app.ErrNotFound)
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%s: %w", what, app.ErrInvalidArgument)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

func requireID(id, what string) error {
	if id == "" {
		return fmt.Errorf("%s id is required: %w", what, app.ErrInvalidArgument)
	}
	return nil
}

// Student operations

func prepareStudent(s *models.Student) {
	if s.ID == "" {
		s.ID = newID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
}

// CreateStudent inserts a new student, assigning an ID when none is set
func CreateStudent(s *models.Student) error {
	if s == nil {
		return fmt.Errorf("student is nil: %w", app.ErrInvalidArgument)
	}
	prepareStudent(s)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode student: %w", err)
	}
	query := `INSERT INTO students (id, first_name, last_name, email, data, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = DB.Exec(query, s.ID, s.FirstName, s.LastName, s.Email, string(data), s.CreatedAt, time.Now().UTC())
	return translateError(err, "failed to create student "+s.ID)
}

// SaveStudent inserts or replaces a student keyed by ID
func SaveStudent(s *models.Student) error {
	if s == nil {
		return fmt.Errorf("student is nil: %w", app.ErrInvalidArgument)
	}
	prepareStudent(s)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode student: %w", err)
	}
	query := `INSERT INTO students (id, first_name, last_name, email, data, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET first_name=excluded.first_name, last_name=excluded.last_name,
			  email=excluded.email, data=excluded.data, updated_at=excluded.updated_at`
	_, err = DB.Exec(query, s.ID, s.FirstName, s.LastName, s.Email, string(data), s.CreatedAt, time.Now().UTC())
	return translateError(err, "failed to save student "+s.ID)
}

// GetStudent loads a student by ID
func GetStudent(id string) (*models.Student, error) {
	var data string
	err := DB.QueryRow(`SELECT data FROM students WHERE id=?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %s: %w", id, app.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student %s: %w", id, err)
	}
	s := &models.Student{}
	if err := json.Unmarshal([]byte(data), s); err != nil {
		return nil, fmt.Errorf("failed to decode student %s: %w", id, err)
	}
	return s, nil
}

// GetAllStudents lists students in creation order
func GetAllStudents() ([]*models.Student, error) {
	rows, err := DB.Query(`SELECT data FROM students ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		s := &models.Student{}
		if err := json.Unmarshal([]byte(data), s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// DeleteStudent removes a student along with their interests and interactions
func DeleteStudent(id string) error {
	return deleteRow(`DELETE FROM students WHERE id=?`, id, "student")
}

// Professor operations

func prepareProfessor(p *models.Professor) {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
}

// CreateProfessor inserts a new professor, assigning an ID when none is set
func CreateProfessor(p *models.Professor) error {
	if p == nil {
		return fmt.Errorf("professor is nil: %w", app.ErrInvalidArgument)
	}
	prepareProfessor(p)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode professor: %w", err)
	}
	query := `INSERT INTO professors (id, first_name, last_name, email, looking_for_students, data, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = DB.Exec(query, p.ID, p.FirstName, p.LastName, p.Email, p.LookingForStudents, string(data), p.CreatedAt, time.Now().UTC())
	return translateError(err, "failed to create professor "+p.ID)
}

// SaveProfessor inserts or replaces a professor keyed by ID
func SaveProfessor(p *models.Professor) error {
	if p == nil {
		return fmt.Errorf("professor is nil: %w", app.ErrInvalidArgument)
	}
	prepareProfessor(p)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode professor: %w", err)
	}
	query := `INSERT INTO professors (id, first_name, last_name, email, looking_for_students, data, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET first_name=excluded.first_name, last_name=excluded.last_name,
			  email=excluded.email, looking_for_students=excluded.looking_for_students,
			  data=excluded.data, updated_at=excluded.updated_at`
	_, err = DB.Exec(query, p.ID, p.FirstName, p.LastName, p.Email, p.LookingForStudents, string(data), p.CreatedAt, time.Now().UTC())
	return translateError(err, "failed to save professor "+p.ID)
}

// GetProfessor loads a professor by ID
func GetProfessor(id string) (*models.Professor, error) {
	var data string
	err := DB.QueryRow(`SELECT data FROM professors WHERE id=?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("professor %s: %w", id, app.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get professor %s: %w", id, err)
	}
	p := &models.Professor{}
	if err := json.Unmarshal([]byte(data), p); err != nil {
		return nil, fmt.Errorf("failed to decode professor %s: %w", id, err)
	}
	return p, nil
}

// GetAllProfessors lists professors in creation order
func GetAllProfessors() ([]*models.Professor, error) {
	rows, err := DB.Query(`SELECT data FROM professors ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	professors := []*models.Professor{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		p := &models.Professor{}
		if err := json.Unmarshal([]byte(data), p); err != nil {
			return nil, fmt.Errorf("failed to decode professor: %w", err)
		}
		professors = append(professors, p)
	}
	return professors, rows.Err()
}

// DeleteProfessor removes a professor along with interests and interactions
func DeleteProfessor(id string) error {
	return deleteRow(`DELETE FROM professors WHERE id=?`, id, "professor")
}

func deleteRow(query, id, what string) error {
	result, err := DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", what, id, err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, app.ErrNotFound)
	}
	return nil
}

// Interest operations

// MarkInterest records that a student is interested in a professor and logs
// an interest_marked interaction
func MarkInterest(studentID, professorID string) (*models.InterestSignal, error) {
	if err := requireID(studentID, "student"); err != nil {
		return nil, err
	}
	if err := requireID(professorID, "professor"); err != nil {
		return nil, err
	}

	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	signal := &models.InterestSignal{
		ID:          newID(),
		StudentID:   studentID,
		ProfessorID: professorID,
		Status:      models.StatusInterested,
		Timestamp:   time.Now().UTC(),
	}
	query := `INSERT INTO interests (id, student_id, professor_id, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`
	_, err = tx.Exec(query, signal.ID, studentID, professorID, signal.Status, signal.Timestamp, signal.Timestamp)
	if err != nil {
		err = translateError(err, "failed to mark interest")
		if errors.Is(err, app.ErrAlreadyExists) {
			return nil, fmt.Errorf("student %s, professor %s: %w", studentID, professorID, app.ErrDuplicateInterest)
		}
		return nil, err
	}
	if err := insertInteraction(tx, &models.Interaction{
		StudentID:   studentID,
		ProfessorID: professorID,
		Type:        models.InteractionInterestMarked,
		Timestamp:   signal.Timestamp,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return signal, nil
}

// UnmarkInterest withdraws a student's interest in a professor
func UnmarkInterest(studentID, professorID string) error {
	result, err := DB.Exec(`DELETE FROM interests WHERE student_id=? AND professor_id=?`, studentID, professorID)
	if err != nil {
		return fmt.Errorf("failed to unmark interest: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("interest of student %s in professor %s: %w", studentID, professorID, app.ErrNotFound)
	}
	return nil
}

// ToggleInterest marks the interest when absent and removes it when present.
// It reports whether the interest is marked afterwards.
func ToggleInterest(studentID, professorID string) (bool, error) {
	_, err := GetInterest(studentID, professorID)
	switch {
	case err == nil:
		return false, UnmarkInterest(studentID, professorID)
	case errors.Is(err, app.ErrNotFound):
		if _, err := MarkInterest(studentID, professorID); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// UpdateInterestStatus moves an interest along the workflow. Moving to
// contacted also logs a contact_sent interaction.
func UpdateInterestStatus(studentID, professorID string, status models.InterestStatus) error {
	canonical, err := models.ParseInterestStatus(string(status))
	if err != nil {
		return fmt.Errorf("%v: %w", err, app.ErrInvalidArgument)
	}

	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.Exec(`UPDATE interests SET status=?, updated_at=? WHERE student_id=? AND professor_id=?`,
		canonical, now, studentID, professorID)
	if err != nil {
		return translateError(err, "failed to update interest status")
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("interest of student %s in professor %s: %w", studentID, professorID, app.ErrNotFound)
	}
	if canonical == models.StatusContacted {
		if err := insertInteraction(tx, &models.Interaction{
			StudentID:   studentID,
			ProfessorID: professorID,
			Type:        models.InteractionContactSent,
			Timestamp:   now,
		}); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const interestColumns = `id, student_id, professor_id, status, created_at`

func scanInterests(rows *sql.Rows) ([]models.InterestSignal, error) {
	defer rows.Close()
	signals := []models.InterestSignal{}
	for rows.Next() {
		var sig models.InterestSignal
		if err := rows.Scan(&sig.ID, &sig.StudentID, &sig.ProfessorID, &sig.Status, &sig.Timestamp); err != nil {
			return nil, err
		}
		signals = append(signals, sig)
	}
	return signals, rows.Err()
}

// GetInterest loads the interest of one student in one professor
func GetInterest(studentID, professorID string) (*models.InterestSignal, error) {
	sig := &models.InterestSignal{}
	err := DB.QueryRow(`SELECT `+interestColumns+` FROM interests WHERE student_id=? AND professor_id=?`,
		studentID, professorID).Scan(&sig.ID, &sig.StudentID, &sig.ProfessorID, &sig.Status, &sig.Timestamp)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("interest of student %s in professor %s: %w", studentID, professorID, app.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interest: %w", err)
	}
	return sig, nil
}

// GetInterests lists every interest signal, oldest first
func GetInterests() ([]models.InterestSignal, error) {
	rows, err := DB.Query(`SELECT ` + interestColumns + ` FROM interests ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return scanInterests(rows)
}

// GetStudentInterests lists the interests a student has expressed
func GetStudentInterests(studentID string) ([]models.InterestSignal, error) {
	rows, err := DB.Query(`SELECT `+interestColumns+` FROM interests WHERE student_id=? ORDER BY created_at, id`, studentID)
	if err != nil {
		return nil, err
	}
	return scanInterests(rows)
}

// GetProfessorInterests lists the interests expressed in a professor
func GetProfessorInterests(professorID string) ([]models.InterestSignal, error) {
	rows, err := DB.Query(`SELECT `+interestColumns+` FROM interests WHERE professor_id=? ORDER BY created_at, id`, professorID)
	if err != nil {
		return nil, err
	}
	return scanInterests(rows)
}

// GetInterestedStudents lists students with an active interested signal for
// the professor
func GetInterestedStudents(professorID string) ([]*models.Student, error) {
	query := `SELECT s.data FROM students s
			  JOIN interests i ON i.student_id = s.id
			  WHERE i.professor_id=? AND i.status=?
			  ORDER BY i.created_at, s.id`
	rows, err := DB.Query(query, professorID, models.StatusInterested)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		s := &models.Student{}
		if err := json.Unmarshal([]byte(data), s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Interaction operations

func insertInteraction(q queryer, i *models.Interaction) error {
	if i.ID == "" {
		i.ID = newID()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now().UTC()
	}
	var metadata sql.NullString
	if i.Metadata != "" {
		metadata = sql.NullString{String: i.Metadata, Valid: true}
	}
	query := `INSERT INTO interactions (id, student_id, professor_id, type, metadata, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`
	_, err := q.Exec(query, i.ID, i.StudentID, i.ProfessorID, i.Type, metadata, i.Timestamp)
	return translateError(err, "failed to record interaction")
}

// RecordInteraction appends an entry to the activity log
func RecordInteraction(i *models.Interaction) error {
	if i == nil {
		return fmt.Errorf("interaction is nil: %w", app.ErrInvalidArgument)
	}
	if i.Metadata != "" && !json.Valid([]byte(i.Metadata)) {
		return fmt.Errorf("interaction metadata must be JSON: %w", app.ErrInvalidArgument)
	}
	return insertInteraction(DB, i)
}

// GetInteractions lists a student's activity log, newest first
func GetInteractions(studentID string) ([]models.Interaction, error) {
	query := `SELECT id, student_id, professor_id, type, metadata, created_at
			  FROM interactions WHERE student_id=? ORDER BY created_at DESC, id`
	rows, err := DB.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := []models.Interaction{}
	for rows.Next() {
		var i models.Interaction
		var metadata sql.NullString
		if err := rows.Scan(&i.ID, &i.StudentID, &i.ProfessorID, &i.Type, &metadata, &i.Timestamp); err != nil {
			return nil, err
		}
		i.Metadata = metadata.String
		interactions = append(interactions, i)
	}
	return interactions, rows.Err()
}

// Analytics

// GetAnalytics counts the rows of the record store
func GetAnalytics() (*models.Analytics, error) {
	a := &models.Analytics{}
	query := `SELECT
		(SELECT COUNT(*) FROM students),
		(SELECT COUNT(*) FROM professors),
		(SELECT COUNT(*) FROM interests),
		(SELECT COUNT(*) FROM interests WHERE status='interested'),
		(SELECT COUNT(*) FROM interests WHERE status='contacted')`
	err := DB.QueryRow(query).Scan(&a.TotalStudents, &a.TotalProfessors, &a.TotalInterests,
		&a.ActiveMatches, &a.ContactedMatches)
	if err != nil {
		return nil, fmt.Errorf("failed to compute analytics: %w", err)
	}
	return a, nil
}
