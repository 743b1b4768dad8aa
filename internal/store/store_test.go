package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/database"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/models"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/store"
)

func newSQLStore(t *testing.T) store.Store {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("database.Migrate() error = %v", err)
	}
	return store.NewSQLStore(db)
}

// forEachStore runs fn against every Store implementation.
func forEachStore(t *testing.T, fn func(t *testing.T, s store.Store)) {
	impls := map[string]func(t *testing.T) store.Store{
		"memory": func(*testing.T) store.Store { return store.NewMemoryStore() },
		"sqlite": newSQLStore,
	}
	for name, newStore := range impls {
		t.Run(name, func(t *testing.T) {
			fn(t, newStore(t))
		})
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestUsers(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()
		now := time.Now().UTC().Truncate(time.Millisecond)

		for _, u := range []models.User{
			{ID: "u1", Username: "alice", CreatedAt: now},
			{ID: "u2", Username: "bob", CreatedAt: now},
		} {
			if err := s.CreateUser(ctx, u); err != nil {
				t.Fatalf("CreateUser(%s) error = %v", u.Username, err)
			}
		}

		err := s.CreateUser(ctx, models.User{ID: "u3", Username: "alice", CreatedAt: now})
		if !errors.Is(err, store.ErrDuplicate) {
			t.Fatalf("duplicate CreateUser error = %v, want ErrDuplicate", err)
		}

		got, err := s.GetUserByID(ctx, "u2")
		if err != nil || got.Username != "bob" {
			t.Fatalf("GetUserByID(u2) = %+v, %v", got, err)
		}
		if !got.CreatedAt.Equal(now) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, now)
		}

		got, err = s.GetUserByUsername(ctx, "alice")
		if err != nil || got.ID != "u1" {
			t.Fatalf("GetUserByUsername(alice) = %+v, %v", got, err)
		}

		if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("GetUserByID(missing) error = %v, want ErrNotFound", err)
		}
		if _, err := s.GetUserByUsername(ctx, "carol"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("GetUserByUsername(carol) error = %v, want ErrNotFound", err)
		}

		users, err := s.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if len(users) != 2 || users[0].ID != "u1" || users[1].ID != "u2" {
			t.Errorf("ListUsers() = %+v", users)
		}

		if n, err := s.CountUsers(ctx); err != nil || n != 2 {
			t.Errorf("CountUsers() = %d, %v", n, err)
		}
	})
}

func TestFindExercises(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()

		// Inserted out of date order to check that insertion order is kept.
		entries := []models.Exercise{
			{ID: "e1", UserID: "u1", Description: "run", Duration: 30, Date: day(5)},
			{ID: "e2", UserID: "u1", Description: "swim", Duration: 45, Date: day(1)},
			{ID: "e3", UserID: "u2", Description: "bike", Duration: 60, Date: day(2)},
			{ID: "e4", UserID: "u1", Description: "lift", Duration: 20, Date: day(3)},
			{ID: "e5", UserID: "u1", Description: "walk", Duration: 15, Date: day(10)},
		}
		for _, e := range entries {
			if err := s.CreateExercise(ctx, e); err != nil {
				t.Fatalf("CreateExercise(%s) error = %v", e.ID, err)
			}
		}

		from, to := day(3), day(5)
		tests := []struct {
			name   string
			filter models.ExerciseFilter
			want   []string
		}{
			{"no filter", models.ExerciseFilter{}, []string{"e1", "e2", "e4", "e5"}},
			{"inclusive range", models.ExerciseFilter{From: &from, To: &to}, []string{"e1", "e4"}},
			{"from only", models.ExerciseFilter{From: &to}, []string{"e1", "e5"}},
			{"to only", models.ExerciseFilter{To: &from}, []string{"e2", "e4"}},
			{"limit", models.ExerciseFilter{Limit: 2}, []string{"e1", "e2"}},
			{"range and limit", models.ExerciseFilter{From: &from, Limit: 1}, []string{"e1"}},
		}
		for _, tt := range tests {
			got, err := s.FindExercises(ctx, "u1", tt.filter)
			if err != nil {
				t.Fatalf("%s: FindExercises() error = %v", tt.name, err)
			}
			if len(got) != len(tt.want) {
				t.Errorf("%s: got %d entries, want %d", tt.name, len(got), len(tt.want))
				continue
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("%s: entry %d = %s, want %s", tt.name, i, got[i].ID, tt.want[i])
				}
			}
		}

		got, err := s.FindExercises(ctx, "u1", models.ExerciseFilter{Limit: 1})
		if err != nil || len(got) != 1 {
			t.Fatalf("FindExercises(limit 1) = %v, %v", got, err)
		}
		if e := got[0]; e.Description != "run" || e.Duration != 30 || !e.Date.Equal(day(5)) {
			t.Errorf("round-tripped entry = %+v", e)
		}

		none, err := s.FindExercises(ctx, "nobody", models.ExerciseFilter{})
		if err != nil || none == nil || len(none) != 0 {
			t.Errorf("FindExercises(nobody) = %#v, %v; want empty non-nil slice", none, err)
		}

		if n, err := s.CountExercises(ctx); err != nil || n != 5 {
			t.Errorf("CountExercises() = %d, %v", n, err)
		}
	})
}
