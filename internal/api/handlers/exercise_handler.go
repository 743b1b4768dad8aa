package handlers

import (
	"net/http"
	"net/url"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/services"
	"github.com/go-chi/chi/v5"
)

// ExerciseHandler handles HTTP requests for exercise logs.
type ExerciseHandler struct {
	service services.ExerciseServiceProvider
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(service services.ExerciseServiceProvider) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// RecordExerciseRequest is the body of an exercise submission.
type RecordExerciseRequest struct {
	Description formValue `json:"description"`
	Duration    formValue `json:"duration"`
	Date        formValue `json:"date"`
}

func (req *RecordExerciseRequest) bindForm(values url.Values) {
	req.Description = formValue(values.Get("description"))
	req.Duration = formValue(values.Get("duration"))
	req.Date = formValue(values.Get("date"))
}

// Create records an exercise for the user in the path.
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RecordExerciseRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.service.RecordExercise(r.Context(), chi.URLParam(r, "_id"), services.RecordExerciseInput{
		Description: string(req.Description),
		Duration:    string(req.Duration),
		Date:        string(req.Date),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// GetLog returns the user's exercise log, filtered by the from, to and limit
// query parameters.
func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exerciseLog, err := h.service.GetLog(r.Context(), chi.URLParam(r, "_id"), services.LogQuery{
		From:  q.Get("from"),
		To:    q.Get("to"),
		Limit: q.Get("limit"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exerciseLog)
}
