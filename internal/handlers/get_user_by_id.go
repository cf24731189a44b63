package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/services"
)

// UserByIDGetter defines the interface that the lookup service must implement.
type UserByIDGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// NewGetUserByIDHandler returns an HTTP handler that looks up a user by id.
// The route is protected; AuthMiddleware rejects unauthenticated requests
// before this handler runs.
// @Summary Get user by id
// @Description Returns the user with the given id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.UserDB "Matching user"
// @Failure 400 {object} handlers.GetUserErrorResponse "Invalid id"
// @Failure 401 "Missing or invalid bearer token"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func NewGetUserByIDHandler(svc UserByIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetUserErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		user, err := svc.GetByID(r.Context(), id)
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
