package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag_Success(t *testing.T) {
	services := newTestServices()
	services.TagService = &mockTagService{
		createTagFn: func(_ context.Context, req models.TagRequest) (models.Tag, error) {
			return models.Tag{TagID: 1, Name: req.Name}, nil
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodPost, "/api/tags/", strings.NewReader(`{"name":"nature"}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var tag models.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tag))
	assert.Equal(t, "nature", tag.Name)
}

func TestCreateTag_DuplicateName(t *testing.T) {
	services := newTestServices()
	services.TagService = &mockTagService{
		createTagFn: func(_ context.Context, _ models.TagRequest) (models.Tag, error) {
			return models.Tag{}, store.ErrTagAlreadyExists
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodPost, "/api/tags/", strings.NewReader(`{"name":"nature"}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListTags_Success(t *testing.T) {
	services := newTestServices()
	services.TagService = &mockTagService{
		listTagsFn: func(_ context.Context) ([]models.Tag, error) {
			return []models.Tag{{TagID: 1, Name: "nature"}, {TagID: 2, Name: "travel"}}, nil
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodGet, "/api/tags/", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var tags []models.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	assert.Len(t, tags, 2)
}

func TestGetTag_NotFound(t *testing.T) {
	services := newTestServices()
	services.TagService = &mockTagService{
		getTagFn: func(_ context.Context, _ int64) (models.Tag, error) {
			return models.Tag{}, store.ErrTagNotFound
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodGet, "/api/tags/42", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTag_Success(t *testing.T) {
	services := newTestServices()
	services.TagService = &mockTagService{
		updateTagFn: func(_ context.Context, tagID int64, req models.TagRequest) (models.Tag, error) {
			assert.Equal(t, int64(2), tagID)
			return models.Tag{TagID: tagID, Name: req.Name}, nil
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodPut, "/api/tags/2", strings.NewReader(`{"name":"landscape"}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var tag models.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tag))
	assert.Equal(t, "landscape", tag.Name)
}

func TestDeleteTag_Success(t *testing.T) {
	router := newTestHandler(newTestServices()).Init()

	req := authed(httptest.NewRequest(http.MethodDelete, "/api/tags/2", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTag_NotFound(t *testing.T) {
	services := newTestServices()
	services.TagService = &mockTagService{
		deleteTagFn: func(_ context.Context, _ int64) error {
			return store.ErrTagNotFound
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodDelete, "/api/tags/42", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
