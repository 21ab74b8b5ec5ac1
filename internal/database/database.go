package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// DefaultPath returns ~/.labyrinth/labyrinth.db
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".labyrinth", "labyrinth.db"), nil
}

// Open creates the database file if needed, applies the SQLite pragmas and
// runs migrations
func Open(path string) (*sql.DB, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// Initialize opens the database at path and installs it as DB
func Initialize(path string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunMigrations creates all necessary tables. Profiles are stored as JSON
// documents keyed by ID; interests and interactions reference them.
func RunMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		email TEXT,
		data TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS professors (
		id TEXT PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		email TEXT,
		looking_for_students BOOLEAN DEFAULT 1,
		data TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS interests (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		professor_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'interested',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(student_id, professor_id),
		FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE,
		FOREIGN KEY (professor_id) REFERENCES professors(id) ON DELETE CASCADE,
		CHECK(status IN ('interested', 'contacted', 'matched', 'declined'))
	);

	CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		professor_id TEXT NOT NULL,
		type TEXT NOT NULL,
		metadata TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE,
		FOREIGN KEY (professor_id) REFERENCES professors(id) ON DELETE CASCADE,
		CHECK(type IN ('profile_view', 'contact_sent', 'interest_marked', 'response_received'))
	);

	CREATE INDEX IF NOT EXISTS idx_professors_looking ON professors(looking_for_students);
	CREATE INDEX IF NOT EXISTS idx_interests_student_id ON interests(student_id);
	CREATE INDEX IF NOT EXISTS idx_interests_professor_id ON interests(professor_id);
	CREATE INDEX IF NOT EXISTS idx_interests_status ON interests(status);
	CREATE INDEX IF NOT EXISTS idx_interactions_student_id ON interactions(student_id);
	`

	_, err := db.Exec(schema)
	return err
}
