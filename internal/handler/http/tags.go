package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/utils"
	"github.com/avolkhin/phototeka/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.services.TagService.ListTags(r.Context())
	if err != nil {
		writeError(w, r, err, "listing tags failed")
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.CreateTag(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "tag creation failed")
		return
	}

	utils.WriteJSON(w, tag, http.StatusCreated)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.GetTag(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "tag lookup failed")
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) updateTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.UpdateTag(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "tag update failed")
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	if err := h.services.TagService.DeleteTag(r.Context(), id); err != nil {
		writeError(w, r, err, "tag deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
