package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/middlewares"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/services"
)

// CurrentUserGetter defines the interface that the current-user service must implement.
type CurrentUserGetter interface {
	Current(ctx context.Context, email string) (*models.UserDB, error)
}

// MeErrorResponse represents an error response for the current-user endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for the authenticated user's own
// record. The token subject comes from the request context, placed there by
// AuthMiddleware.
// @Summary Get current user
// @Description Returns the user the bearer token belongs to
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Missing, invalid or expired token"
// @Security BearerAuth
// @Router /users/me/ [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		email := middlewares.GetSubjectFromContext(r.Context())
		if email == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		user, err := svc.Current(r.Context(), email)
		if err != nil {
			switch {
			// The token subject no longer maps to a row; treat the token
			// as invalid rather than reporting a lookup miss.
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(MeErrorResponse{
					Error: "Unauthorized",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
