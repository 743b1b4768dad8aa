package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/models"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLStore implements Store on top of a migrated SQLite database.
type SQLStore struct {
	db *sqlx.DB
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore creates a new SQLStore.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

type userRow struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	CreatedAt int64  `db:"created_at"`
}

func (r userRow) toModel() models.User {
	return models.User{ID: r.ID, Username: r.Username, CreatedAt: time.UnixMilli(r.CreatedAt).UTC()}
}

type exerciseRow struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	Description string `db:"description"`
	Duration    int    `db:"duration"`
	Date        int64  `db:"date"`
}

func (r exerciseRow) toModel() models.Exercise {
	return models.Exercise{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        time.UnixMilli(r.Date).UTC(),
	}
}

// CreateUser inserts a user. A taken username yields ErrDuplicate.
func (s *SQLStore) CreateUser(ctx context.Context, user models.User) error {
	row := userRow{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt.UnixMilli()}
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO users (id, username, created_at) VALUES (:id, :username, :created_at)`, row)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %q: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a single user by their ID.
func (s *SQLStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, `SELECT id, username, created_at FROM users WHERE id = ?`, id)
}

// GetUserByUsername retrieves a single user by their username.
func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.getUser(ctx, `SELECT id, username, created_at FROM users WHERE username = ?`, username)
}

func (s *SQLStore) getUser(ctx context.Context, query string, arg string) (models.User, error) {
	var row userRow
	if err := s.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return row.toModel(), nil
}

// ListUsers returns every user in insertion order.
func (s *SQLStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, username, created_at FROM users ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	users := make([]models.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.toModel())
	}
	return users, nil
}

// CountUsers returns the number of stored users.
func (s *SQLStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// CreateExercise inserts an exercise entry.
func (s *SQLStore) CreateExercise(ctx context.Context, exercise models.Exercise) error {
	row := exerciseRow{
		ID:          exercise.ID,
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.UnixMilli(),
	}
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES (:id, :user_id, :description, :duration, :date)`, row)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// FindExercises returns a user's exercises matching filter.
func (s *SQLStore) FindExercises(ctx context.Context, userID string, filter models.ExerciseFilter) ([]models.Exercise, error) {
	var (
		query strings.Builder
		args  = []any{userID}
	)
	query.WriteString(`SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = ?`)
	if filter.From != nil {
		query.WriteString(` AND date >= ?`)
		args = append(args, filter.From.UnixMilli())
	}
	if filter.To != nil {
		query.WriteString(` AND date <= ?`)
		args = append(args, filter.To.UnixMilli())
	}
	query.WriteString(` ORDER BY rowid`)
	if filter.Limit > 0 {
		query.WriteString(` LIMIT ?`)
		args = append(args, filter.Limit)
	}

	var rows []exerciseRow
	if err := s.db.SelectContext(ctx, &rows, query.String(), args...); err != nil {
		return nil, fmt.Errorf("select exercises: %w", err)
	}
	exercises := make([]models.Exercise, 0, len(rows))
	for _, r := range rows {
		exercises = append(exercises, r.toModel())
	}
	return exercises, nil
}

// CountExercises returns the number of stored exercises.
func (s *SQLStore) CountExercises(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM exercises`); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
