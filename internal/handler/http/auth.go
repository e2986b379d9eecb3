package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/service"
	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/internal/utils"
	"github.com/avolkhin/phototeka/models"
)

// register creates a new account and returns it together with a freshly
// issued access/refresh token pair, so clients can start making
// authenticated calls without a separate login round-trip.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	tokens, err := h.services.AuthService.CreateTokenPair(ctx, registeredUser.UserID)
	if err != nil {
		writeError(w, r, err, "creation of token pair failed")
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{User: registeredUser, Tokens: tokens}, http.StatusCreated)
}

// login verifies credentials and returns an access/refresh token pair.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		// an unknown username is indistinguishable from a wrong password
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid username/password"}, http.StatusUnauthorized)
			return
		}

		writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	tokens, err := h.services.AuthService.CreateTokenPair(ctx, foundUser.UserID)
	if err != nil {
		writeError(w, r, err, "creation of token pair failed")
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

// refresh exchanges a valid refresh token for a new access token.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}
	if req.Refresh == "" {
		utils.WriteJSON(w, models.ErrorResponse{Error: "refresh token is required"}, http.StatusBadRequest)
		return
	}

	access, err := h.services.AuthService.RefreshAccessToken(ctx, req.Refresh)
	if err != nil {
		writeError(w, r, err, "token is expired or invalid")
		return
	}

	utils.WriteJSON(w, models.AccessResponse{Access: access}, http.StatusOK)
}
