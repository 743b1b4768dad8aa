// Package store persists users and their exercise logs.
package store

import (
	"context"
	"errors"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserStore holds registered users.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// ExerciseStore holds exercise log entries.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, exercise models.Exercise) error
	// FindExercises returns a user's entries in insertion order, applying the
	// filter's date range and, when positive, its limit.
	FindExercises(ctx context.Context, userID string, filter models.ExerciseFilter) ([]models.Exercise, error)
	CountExercises(ctx context.Context) (int, error)
}

// Store is the full persistence surface used by the services.
type Store interface {
	UserStore
	ExerciseStore
}
