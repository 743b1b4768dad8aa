package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/models"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// ActionExerciseRecorded is published after an exercise is stored.
	ActionExerciseRecorded = "exercise.recorded"

	// DefaultLogLimit caps a log query that has no usable limit.
	DefaultLogLimit = 500
)

// RecordExerciseInput carries the raw fields of an exercise submission.
type RecordExerciseInput struct {
	Description string
	Duration    string
	Date        string // optional
}

// LogQuery carries the raw filters of a log request. Empty fields are unset.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// ExerciseServiceProvider defines the interface for exercise services.
type ExerciseServiceProvider interface {
	RecordExercise(ctx context.Context, userID string, input RecordExerciseInput) (models.ExerciseRecord, error)
	GetLog(ctx context.Context, userID string, query LogQuery) (models.ExerciseLog, error)
}

// ExerciseService records exercises and answers log queries.
type ExerciseService struct {
	users     store.UserStore
	exercises store.ExerciseStore
	publisher Publisher
	now       func() time.Time
}

// NewExerciseService creates a new ExerciseService. publisher may be nil.
func NewExerciseService(users store.UserStore, exercises store.ExerciseStore, publisher Publisher) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
		publisher: publisher,
		now:       time.Now,
	}
}

// RecordExercise appends an exercise to a user's log.
func (s *ExerciseService) RecordExercise(ctx context.Context, userID string, input RecordExerciseInput) (models.ExerciseRecord, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return models.ExerciseRecord{}, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return models.ExerciseRecord{}, fmt.Errorf("%w: must include a description", ErrValidation)
	}

	rawDuration := strings.TrimSpace(input.Duration)
	if rawDuration == "" {
		return models.ExerciseRecord{}, fmt.Errorf("%w: must include a duration", ErrValidation)
	}
	duration, err := strconv.Atoi(rawDuration)
	if err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("%w: duration must be a whole number of minutes", ErrValidation)
	}

	date := s.now().UTC()
	if strings.TrimSpace(input.Date) != "" {
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return models.ExerciseRecord{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	exercise := models.Exercise{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		// Stores keep millisecond precision.
		Date: date.Truncate(time.Millisecond),
	}
	if err := s.exercises.CreateExercise(ctx, exercise); err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("create exercise: %w", err)
	}

	record := models.ExerciseRecord{
		UserID:      exercise.UserID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        models.CalendarDate(exercise.Date),
	}
	log.Info().Str("user_id", user.ID).Str("exercise_id", exercise.ID).Int("duration", duration).Msg("Exercise recorded")
	publish(s.publisher, ActionExerciseRecorded, record)
	return record, nil
}

// GetLog returns a user's exercises filtered by an inclusive date range and
// capped by a limit, in storage order.
func (s *ExerciseService) GetLog(ctx context.Context, userID string, query LogQuery) (models.ExerciseLog, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return models.ExerciseLog{}, err
	}

	filter, err := buildFilter(query)
	if err != nil {
		return models.ExerciseLog{}, err
	}

	exercises, err := s.exercises.FindExercises(ctx, user.ID, filter)
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("find exercises: %w", err)
	}

	entries := make([]models.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, models.NewLogEntry(e))
	}
	return models.ExerciseLog{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID,
		Log:      entries,
	}, nil
}

func (s *ExerciseService) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.GetUserByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func buildFilter(query LogQuery) (models.ExerciseFilter, error) {
	filter := models.ExerciseFilter{Limit: parseLimit(query.Limit)}

	if strings.TrimSpace(query.From) != "" {
		from, err := models.ParseDate(query.From)
		if err != nil {
			return filter, fmt.Errorf("%w: from: %v", ErrValidation, err)
		}
		filter.From = &from
	}
	if strings.TrimSpace(query.To) != "" {
		to, err := models.ParseDate(query.To)
		if err != nil {
			return filter, fmt.Errorf("%w: to: %v", ErrValidation, err)
		}
		filter.To = &to
	}
	return filter, nil
}

// parseLimit falls back to DefaultLogLimit for missing, non-numeric or
// non-positive values.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultLogLimit
	}
	return n
}
