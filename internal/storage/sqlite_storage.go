package storage

import (
	"GymAttendanceTracker/internal/models"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"email" TEXT,
		"first_name" TEXT,
		"last_name" TEXT,
		"profile_image_url" TEXT,
		"created_at" TEXT NOT NULL,
		"updated_at" TEXT NOT NULL
);`

const createGymClassesTable = `
CREATE TABLE IF NOT EXISTS gym_classes (
		"seq" INTEGER PRIMARY KEY AUTOINCREMENT,
		"id" TEXT NOT NULL UNIQUE,
		"user_id" TEXT NOT NULL,
		"date" TEXT NOT NULL,
		"attendance" INTEGER NOT NULL CHECK ("attendance" >= 0),
		"notes" TEXT,
		"created_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id)
);`

const selectGymClass = `SELECT id, user_id, date, attendance, notes, created_at FROM gym_classes`

// SQLiteStorage는 메모리 모드 SQLite 위에서 동작하며 재시작 시 데이터가 사라진다.
type SQLiteStorage struct {
	db    *sql.DB
	clock clock
}

func NewSQLiteStorage() (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("NewSQLiteStorage(): failed to open database: %w", err)
	}
	// :memory: 데이터베이스는 커넥션마다 따로 생기므로 하나만 유지
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewSQLiteStorage(): failed to connect to database: %w", err)
	}
	if _, err := db.Exec(createUsersTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewSQLiteStorage(): failed to create users table: %w", err)
	}
	if _, err := db.Exec(createGymClassesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewSQLiteStorage(): failed to create gym_classes table: %w", err)
	}
	log.Println("NewSQLiteStorage(): Init and create table successfully!")
	return &SQLiteStorage{db: db}, nil
}

// WithClock replaces the time source, mainly for tests.
func (s *SQLiteStorage) WithClock(now func() time.Time) *SQLiteStorage {
	s.clock = now
	return s
}

func (s *SQLiteStorage) GetUser(id string) (models.User, error) {
	var user models.User
	var email, firstName, lastName, imageURL sql.NullString
	var createdStr, updatedStr string

	row := s.db.QueryRow(`SELECT id, email, first_name, last_name, profile_image_url, created_at, updated_at FROM users WHERE id = ?`, id)
	if err := row.Scan(&user.ID, &email, &firstName, &lastName, &imageURL, &createdStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	user.Email = nullToPtr(email)
	user.FirstName = nullToPtr(firstName)
	user.LastName = nullToPtr(lastName)
	user.ProfileImageURL = nullToPtr(imageURL)

	var err error
	if user.CreatedAt, err = parseTime(createdStr); err != nil {
		return models.User{}, err
	}
	if user.UpdatedAt, err = parseTime(updatedStr); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *SQLiteStorage) UpsertUser(input models.UpsertUser) (models.User, error) {
	id := input.ID
	if id == "" {
		id = DefaultUserID
	}
	now := formatTime(s.clock.now())

	// created_at은 최초 생성 시각을 유지하고 updated_at만 갱신
	_, err := s.db.Exec(`
		INSERT INTO users(id, email, first_name, last_name, profile_image_url, created_at, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			profile_image_url = excluded.profile_image_url,
			updated_at = excluded.updated_at`,
		id, ptrToNull(input.Email), ptrToNull(input.FirstName), ptrToNull(input.LastName),
		ptrToNull(input.ProfileImageURL), now, now,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("UpsertUser(): %w", err)
	}
	return s.GetUser(id)
}

func (s *SQLiteStorage) ListGymClasses(userID string) ([]models.GymClass, error) {
	rows, err := s.db.Query(selectGymClass+` WHERE user_id = ? ORDER BY date DESC, seq ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]models.GymClass, 0)
	for rows.Next() {
		g, err := scanGymClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, g)
	}
	return classes, rows.Err()
}

func (s *SQLiteStorage) GetGymClass(id string) (models.GymClass, error) {
	g, err := scanGymClass(s.db.QueryRow(selectGymClass+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GymClass{}, ErrGymClassNotFound
	}
	return g, err
}

func (s *SQLiteStorage) CreateGymClass(input models.NewGymClass, userID string) (models.GymClass, error) {
	gymClass := models.GymClass{
		ID:         newGymClassID(),
		UserID:     userID,
		Date:       input.Date,
		Attendance: input.Attendance,
		Notes:      input.Notes,
		CreatedAt:  s.clock.now(),
	}

	stmt, err := s.db.Prepare("INSERT INTO gym_classes(id, user_id, date, attendance, notes, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.GymClass{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(gymClass.ID, userID, gymClass.Date, gymClass.Attendance, ptrToNull(gymClass.Notes), formatTime(gymClass.CreatedAt))
	if err != nil {
		return models.GymClass{}, fmt.Errorf("CreateGymClass(): %w", err)
	}
	return gymClass, nil
}

func (s *SQLiteStorage) UpdateGymClass(id string, patch models.GymClassPatch) (models.GymClass, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.GymClass{}, err
	}
	defer tx.Rollback()

	existing, err := scanGymClass(tx.QueryRow(selectGymClass+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GymClass{}, ErrGymClassNotFound
		}
		return models.GymClass{}, err
	}
	if patch.IsEmpty() {
		return existing, nil
	}

	updated := patch.Apply(existing)
	if _, err := tx.Exec(`UPDATE gym_classes SET date = ?, attendance = ?, notes = ? WHERE id = ?`,
		updated.Date, updated.Attendance, ptrToNull(updated.Notes), id); err != nil {
		return models.GymClass{}, fmt.Errorf("UpdateGymClass(): %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.GymClass{}, err
	}
	return updated, nil
}

func (s *SQLiteStorage) DeleteGymClass(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM gym_classes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGymClass(row rowScanner) (models.GymClass, error) {
	var g models.GymClass
	var notes sql.NullString
	var createdStr string
	if err := row.Scan(&g.ID, &g.UserID, &g.Date, &g.Attendance, &notes, &createdStr); err != nil {
		return models.GymClass{}, err
	}
	g.Notes = nullToPtr(notes)
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return models.GymClass{}, err
	}
	g.CreatedAt = createdAt
	return g, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parseTime(): invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func ptrToNull(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
