package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/models"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ActionUserCreated is published after a new user is stored.
const ActionUserCreated = "user.created"

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, username string) (models.User, error)
}

// UserService provides business logic for the user directory.
type UserService struct {
	users     store.UserStore
	publisher Publisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(users store.UserStore, publisher Publisher) *UserService {
	return &UserService{users: users, publisher: publisher}
}

// GetAllUsers returns every registered user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser registers a new user with a unique, non-empty username.
func (s *UserService) CreateUser(ctx context.Context, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: you must provide a username", ErrValidation)
	}

	_, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return models.User{}, fmt.Errorf("%w: user already exists on the database", ErrConflict)
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, fmt.Errorf("look up username: %w", err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same name.
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, fmt.Errorf("%w: user already exists on the database", ErrConflict)
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User created")
	publish(s.publisher, ActionUserCreated, user)
	return user, nil
}
