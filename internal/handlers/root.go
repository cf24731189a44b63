package handlers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse represents a static greeting response
// swagger:model MessageResponse
type MessageResponse struct {
	// Greeting message
	// default: Hello World
	Message string `json:"message"`
}

// NewRootHandler returns an HTTP handler for the service greeting.
// @Summary Greeting
// @Description Returns a static greeting
// @Tags root
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Hello World",
		})
	}
}
