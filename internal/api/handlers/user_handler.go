package handlers

import (
	"net/http"
	"net/url"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/services"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserRequest is the body of a signup.
type CreateUserRequest struct {
	Username formValue `json:"username"`
}

func (req *CreateUserRequest) bindForm(values url.Values) {
	req.Username = formValue(values.Get("username"))
}

// GetAll lists every user.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Create registers a new user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.service.CreateUser(r.Context(), string(req.Username))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
