package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/services"
)

// SignUpper defines the interface that the signup service must implement.
type SignUpper interface {
	SignUp(ctx context.Context, name, email, nickname, password string) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
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

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a user account with a hashed password. The password never appears in responses.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 200 {object} models.UserDB "Created user, password excluded"
// @Failure 400 {object} handlers.SignupErrorResponse "Invalid request / email already registered"
// @Router /signup [post]
func NewSignupHandler(svc SignUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if msg, ok := validateSignup(req); !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: msg,
			})
			return
		}

		user, err := svc.SignUp(r.Context(), req.Name, req.Email, req.Nickname, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

func validateSignup(req SignupRequest) (string, bool) {
	if req.Name == "" {
		return "name is required", false
	}
	if req.Email == "" {
		return "email is required", false
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "invalid email address", false
	}
	if req.Password == "" {
		return "password is required", false
	}
	return "", true
}
