package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	// ActionStats is published after each run.
	ActionStats = "stats"

	runTimeout = 10 * time.Second
)

// Counter is the part of the store the reporter reads.
type Counter interface {
	CountUsers(ctx context.Context) (int, error)
	CountExercises(ctx context.Context) (int, error)
}

// Stats is the payload of a stats message.
type Stats struct {
	Users     int       `json:"users"`
	Exercises int       `json:"exercises"`
	At        time.Time `json:"at"`
}

// StatsReporter periodically counts stored records and publishes the totals.
type StatsReporter struct {
	counter   Counter
	publisher services.Publisher
	schedule  string
	cron      *cron.Cron
}

// NewStatsReporter creates a reporter. An empty schedule disables it.
func NewStatsReporter(counter Counter, publisher services.Publisher, schedule string) *StatsReporter {
	return &StatsReporter{counter: counter, publisher: publisher, schedule: schedule}
}

// Start schedules the reporter and begins running in the background. An
// invalid schedule is reported as an error.
func (r *StatsReporter) Start() error {
	if r.schedule == "" {
		log.Info().Msg("Stats reporter disabled")
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := r.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Stats run failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid stats schedule %q: %w", r.schedule, err)
	}
	r.cron = c
	r.cron.Start()
	log.Info().Str("schedule", r.schedule).Msg("Starting stats reporter")
	return nil
}

// Stop halts the reporter and waits for a running job to finish.
func (r *StatsReporter) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	log.Info().Msg("Stopped stats reporter")
}

// Run counts users and exercises once, logs and publishes the result.
func (r *StatsReporter) Run(ctx context.Context) (Stats, error) {
	users, err := r.counter.CountUsers(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count users: %w", err)
	}
	exercises, err := r.counter.CountExercises(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count exercises: %w", err)
	}

	stats := Stats{Users: users, Exercises: exercises, At: time.Now().UTC()}
	log.Info().Int("users", users).Int("exercises", exercises).Msg("Tracker stats")
	if r.publisher != nil {
		r.publisher.Publish(ActionStats, stats)
	}
	return stats, nil
}
