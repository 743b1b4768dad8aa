package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/models"
)

// MemoryStore is an in-process Store. Records keep insertion order.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	byID       map[string]int
	byUsername map[string]int
	exercises  []models.Exercise
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]int),
		byUsername: make(map[string]int),
	}
}

func (m *MemoryStore) CreateUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byUsername[user.Username]; ok {
		return fmt.Errorf("user %q: %w", user.Username, ErrDuplicate)
	}
	if _, ok := m.byID[user.ID]; ok {
		return fmt.Errorf("user id %s: %w", user.ID, ErrDuplicate)
	}
	m.users = append(m.users, user)
	m.byID[user.ID] = len(m.users) - 1
	m.byUsername[user.Username] = len(m.users) - 1
	return nil
}

func (m *MemoryStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return m.users[i], nil
}

func (m *MemoryStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byUsername[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return m.users[i], nil
}

func (m *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MemoryStore) CountUsers(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

func (m *MemoryStore) CreateExercise(ctx context.Context, exercise models.Exercise) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exercises = append(m.exercises, exercise)
	return nil
}

func (m *MemoryStore) FindExercises(ctx context.Context, userID string, filter models.ExerciseFilter) ([]models.Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Exercise{}
	for _, e := range m.exercises {
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
		if e.UserID == userID && filter.Matches(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStore) CountExercises(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exercises), nil
}
