package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/services"
)

// UserByNameGetter defines the interface that the lookup service must implement.
type UserByNameGetter interface {
	GetByName(ctx context.Context, name string) (*models.UserDB, error)
}

// GetUserErrorResponse represents an error response for user lookups
// swagger:model GetUserErrorResponse
type GetUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetUserByNameHandler returns an HTTP handler that looks up the first
// user with the given name.
// @Summary Get user by name
// @Description Returns the first user matching the name
// @Tags users
// @Produce json
// @Param name path string true "User name"
// @Success 200 {object} models.UserDB "Matching user"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Router /user/{name} [get]
func NewGetUserByNameHandler(svc UserByNameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		name := chi.URLParam(r, "name")

		user, err := svc.GetByName(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
