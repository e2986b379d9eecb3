package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/utils"
	"github.com/avolkhin/phototeka/models"
)

func (h *Handler) listAlbums(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	albums, err := h.services.AlbumService.ListAlbums(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "listing albums failed")
		return
	}

	utils.WriteJSON(w, albums, http.StatusOK)
}

func (h *Handler) createAlbum(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	var req models.AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	album, err := h.services.AlbumService.CreateAlbum(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "album creation failed")
		return
	}

	utils.WriteJSON(w, album, http.StatusCreated)
}

func (h *Handler) getAlbum(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	album, err := h.services.AlbumService.GetAlbum(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err, "album lookup failed")
		return
	}

	utils.WriteJSON(w, album, http.StatusOK)
}

func (h *Handler) updateAlbum(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	var req models.AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	album, err := h.services.AlbumService.UpdateAlbum(r.Context(), id, userID, req)
	if err != nil {
		writeError(w, r, err, "album update failed")
		return
	}

	utils.WriteJSON(w, album, http.StatusOK)
}

func (h *Handler) deleteAlbum(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	if err := h.services.AlbumService.DeleteAlbum(r.Context(), id, userID); err != nil {
		writeError(w, r, err, "album deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
