package models

// ExerciseRecord is returned after an exercise has been logged.
type ExerciseRecord struct {
	UserID      string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is one line of a user's exercise log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ExerciseLog is the summary returned by a log query.
type ExerciseLog struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}

// NewLogEntry renders an exercise for a log response.
func NewLogEntry(e Exercise) LogEntry {
	return LogEntry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        CalendarDate(e.Date),
	}
}
