// Package api exposes the HTTP surface: auth, wardrobe, outfits, planner,
// profile and the AI-backed endpoints. Handlers decode and validate the
// request shape, then delegate to the closet service.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/stylgpt/closet/closet"
	"github.com/stylgpt/closet/store"
	"github.com/stylgpt/closet/utils"
)

// Server holds the handler dependencies.
type Server struct {
	svc   *closet.Service
	users *store.UserStore
}

// NewServer builds the HTTP layer around the closet service.
func NewServer(svc *closet.Service, users *store.UserStore) *Server {
	return &Server{svc: svc, users: users}
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, logger *strings.Builder, err error) {
	switch {
	case errors.Is(err, closet.ErrValidation):
		utils.RespondError(w, logger, err.Error(), http.StatusBadRequest)
	case errors.Is(err, closet.ErrUnauthorized):
		utils.RespondError(w, logger, err.Error(), http.StatusForbidden)
	case errors.Is(err, closet.ErrNotFound):
		utils.RespondError(w, logger, err.Error(), http.StatusNotFound)
	case errors.Is(err, closet.ErrRemoteService):
		utils.RespondError(w, logger, err.Error(), http.StatusBadGateway)
	default:
		utils.RespondError(w, logger, "Internal server error", http.StatusInternalServerError)
	}
}
