package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/services"
)

// UserAdder defines the interface that the user creation service must implement.
type UserAdder interface {
	AddUser(ctx context.Context, name, email, nickname string) (*models.UserDB, error)
}

// AddUserRequest represents the JSON body for credential-less user creation.
// A client-supplied id is ignored; storage assigns one.
// swagger:model AddUserRequest
type AddUserRequest struct {
	// Display name
	// required: true
	// default: john
	Name string `json:"name"`

	// Email, unique per user
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Nickname
	// default: johnny
	Nickname string `json:"nickname"`
}

// AddUserErrorResponse represents an error response for user creation
// swagger:model AddUserErrorResponse
type AddUserErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewAddUserHandler returns an HTTP handler for creating a user without
// credentials.
// @Summary Add a user
// @Description Inserts a user row and echoes it back with the generated id
// @Tags users
// @Accept json
// @Produce json
// @Param addUserRequest body handlers.AddUserRequest true "User to create"
// @Success 200 {object} models.UserDB "Created user"
// @Failure 400 {object} handlers.AddUserErrorResponse "Invalid request / email already registered"
// @Router /addUser [post]
func NewAddUserHandler(svc UserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddUserRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddUserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Name == "" || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddUserErrorResponse{
				Error: "name and email are required",
			})
			return
		}

		user, err := svc.AddUser(r.Context(), req.Name, req.Email, req.Nickname)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddUserErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
