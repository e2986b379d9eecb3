package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/utils"
	"github.com/avolkhin/phototeka/models"
)

// maxProfileImageBytes caps a profile image upload.
const maxProfileImageBytes = 8 << 20

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "listing users failed")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	var upd models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// uploadProfileImage accepts a multipart form with an "image" file part and
// replaces the caller's profile image.
func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	if err := r.ParseMultipartForm(maxProfileImageBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("missing image file part")
		utils.WriteJSON(w, models.ErrorResponse{Error: "missing `image` file part"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	user, err := h.services.UserService.UploadProfileImage(r.Context(), userID, header.Filename, file)
	if err != nil {
		writeError(w, r, err, "profile image upload failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
