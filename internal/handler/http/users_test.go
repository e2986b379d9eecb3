package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser_Success(t *testing.T) {
	services := newTestServices()
	services.UserService = &mockUserService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{UserID: userID, Username: "john"}, nil
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "john", user.Username)
}

func TestGetUser_NotFound(t *testing.T) {
	services := newTestServices()
	services.UserService = &mockUserService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodGet, "/api/users/42", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUsers_Success(t *testing.T) {
	services := newTestServices()
	services.UserService = &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1}, {UserID: 2}}, nil
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodGet, "/api/users/", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestUpdateProfile_Success(t *testing.T) {
	services := newTestServices()
	services.UserService = &mockUserService{
		updateProfileFn: func(_ context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			require.NotNil(t, upd.Bio)
			assert.Equal(t, "gopher", *upd.Bio)
			return models.User{UserID: userID, Bio: *upd.Bio}, nil
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodPut, "/api/users/me", strings.NewReader(`{"bio":"gopher"}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	services := newTestServices()
	services.UserService = &mockUserService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.UpdateProfileRequest) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	router := newTestHandler(services).Init()

	req := authed(httptest.NewRequest(http.MethodPut, "/api/users/me", strings.NewReader(`{"email":"taken@example.com"}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUploadProfileImage_Success(t *testing.T) {
	services := newTestServices()
	services.UserService = &mockUserService{
		uploadProfileImageFn: func(_ context.Context, userID int64, fileName string, r io.Reader) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "avatar.png", fileName)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, []byte("png bytes"), got)

			return models.User{UserID: userID, ProfileImage: "profiles/new.png"}, nil
		},
	}
	router := newTestHandler(services).Init()

	body, contentType := photoUploadForm(t, nil, "avatar.png", []byte("png bytes"))

	req := authed(httptest.NewRequest(http.MethodPut, "/api/users/me/image", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "profiles/new.png", user.ProfileImage)
}

func TestUploadProfileImage_MissingFilePart(t *testing.T) {
	router := newTestHandler(newTestServices()).Init()

	body, contentType := photoUploadForm(t, map[string]string{"note": "no file"}, "", nil)

	req := authed(httptest.NewRequest(http.MethodPut, "/api/users/me/image", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
