package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/utils"
	"github.com/avolkhin/phototeka/models"
)

// maxPhotoUploadBytes caps a single photo upload.
const maxPhotoUploadBytes = 32 << 20

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	var albumIDs []int64
	for _, raw := range r.URL.Query()["album"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid `album` query parameter"}, http.StatusBadRequest)
			return
		}
		albumIDs = append(albumIDs, id)
	}

	photos, err := h.services.PhotoService.ListPhotos(r.Context(), userID, albumIDs)
	if err != nil {
		writeError(w, r, err, "listing photos failed")
		return
	}

	utils.WriteJSON(w, photos, http.StatusOK)
}

// uploadPhoto accepts a multipart form: metadata in regular form fields
// ("title", "description", "album_id", repeated "tag_ids") and the image
// bytes in the "image" file part.
func (h *Handler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		writeError(w, r, ErrEmptyToken, "no authenticated user")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	meta, err := photoUploadFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid photo metadata")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("missing image file part")
		utils.WriteJSON(w, models.ErrorResponse{Error: "missing `image` file part"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	photo, err := h.services.PhotoService.UploadPhoto(r.Context(), userID, meta, header.Filename, file)
	if err != nil {
		writeError(w, r, err, "photo upload failed")
		return
	}

	utils.WriteJSON(w, photo, http.StatusCreated)
}

func (h *Handler) getPhoto(w http.ResponseWriter, r *http.Request) {
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

	photo, err := h.services.PhotoService.GetPhoto(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err, "photo lookup failed")
		return
	}

	utils.WriteJSON(w, photo, http.StatusOK)
}

// getPhotoImage streams the stored image bytes of an owned photo. The
// content type derives from the stored file's extension.
func (h *Handler) getPhotoImage(w http.ResponseWriter, r *http.Request) {
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

	f, imagePath, err := h.services.PhotoService.OpenPhotoImage(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err, "opening photo image failed")
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(path.Ext(imagePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, f); err != nil {
		logger.FromRequest(r).Err(err).Int64("photo_id", id).Msg("streaming photo image failed")
	}
}

func (h *Handler) updatePhoto(w http.ResponseWriter, r *http.Request) {
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

	var upd models.PhotoUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	photo, err := h.services.PhotoService.UpdatePhoto(r.Context(), id, userID, upd)
	if err != nil {
		writeError(w, r, err, "photo update failed")
		return
	}

	utils.WriteJSON(w, photo, http.StatusOK)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.PhotoService.DeletePhoto(r.Context(), id, userID); err != nil {
		writeError(w, r, err, "photo deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// searchPhotosByTags spans the whole catalog: results are not limited to the
// caller's own photos. Tag names come from the "tags" query parameter,
// repeated or comma-separated.
func (h *Handler) searchPhotosByTags(w http.ResponseWriter, r *http.Request) {
	var tagNames []string
	for _, raw := range r.URL.Query()["tags"] {
		tagNames = append(tagNames, strings.Split(raw, ",")...)
	}

	photos, err := h.services.PhotoService.SearchByTags(r.Context(), tagNames)
	if err != nil {
		writeError(w, r, err, "searching photos by tags failed")
		return
	}

	utils.WriteJSON(w, photos, http.StatusOK)
}

// photoUploadFromForm assembles the metadata part of a multipart photo
// upload. "tag_ids" accepts both repeated fields and comma-separated values.
func photoUploadFromForm(r *http.Request) (models.PhotoUpload, error) {
	meta := models.PhotoUpload{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	if raw := r.FormValue("album_id"); raw != "" {
		albumID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.PhotoUpload{}, errInvalidFormField("album_id", raw)
		}
		meta.AlbumID = albumID
	}

	for _, raw := range r.PostForm["tag_ids"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			tagID, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return models.PhotoUpload{}, errInvalidFormField("tag_ids", part)
			}
			meta.TagIDs = append(meta.TagIDs, tagID)
		}
	}

	return meta, nil
}

type formFieldError struct {
	field string
	value string
}

func errInvalidFormField(field, value string) error {
	return &formFieldError{field: field, value: value}
}

func (e *formFieldError) Error() string {
	return "invalid `" + e.field + "` form field: " + e.value
}
