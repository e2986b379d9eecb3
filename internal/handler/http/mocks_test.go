package http

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/service"
	"github.com/avolkhin/phototeka/models"
)

var errBoom = errors.New("boom")

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn              func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenPairFn    func(ctx context.Context, userID int64) (models.TokenPair, error)
	refreshAccessTokenFn func(ctx context.Context, refreshToken string) (string, error)
	parseAccessTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	if m.createTokenPairFn != nil {
		return m.createTokenPairFn(ctx, userID)
	}
	return models.TokenPair{Access: "access-token", Refresh: "refresh-token"}, nil
}

func (m *mockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if m.refreshAccessTokenFn != nil {
		return m.refreshAccessTokenFn(ctx, refreshToken)
	}
	return "access-token", nil
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseAccessTokenFn != nil {
		return m.parseAccessTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 7, Use: models.TokenUseAccess}, nil
}

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getUserFn            func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn          func(ctx context.Context) ([]models.User, error)
	updateProfileFn      func(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error)
	uploadProfileImageFn func(ctx context.Context, userID int64, fileName string, r io.Reader) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, upd)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) UploadProfileImage(ctx context.Context, userID int64, fileName string, r io.Reader) (models.User, error) {
	if m.uploadProfileImageFn != nil {
		return m.uploadProfileImageFn(ctx, userID, fileName, r)
	}
	return models.User{UserID: userID}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AlbumService
// ─────────────────────────────────────────────

type mockAlbumService struct {
	createAlbumFn func(ctx context.Context, ownerID int64, req models.AlbumRequest) (models.Album, error)
	listAlbumsFn  func(ctx context.Context, ownerID int64) ([]models.Album, error)
	getAlbumFn    func(ctx context.Context, albumID, ownerID int64) (models.Album, error)
	updateAlbumFn func(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error)
	deleteAlbumFn func(ctx context.Context, albumID, ownerID int64) error
}

func (m *mockAlbumService) CreateAlbum(ctx context.Context, ownerID int64, req models.AlbumRequest) (models.Album, error) {
	if m.createAlbumFn != nil {
		return m.createAlbumFn(ctx, ownerID, req)
	}
	return models.Album{OwnerID: ownerID, Title: req.Title}, nil
}

func (m *mockAlbumService) ListAlbums(ctx context.Context, ownerID int64) ([]models.Album, error) {
	if m.listAlbumsFn != nil {
		return m.listAlbumsFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockAlbumService) GetAlbum(ctx context.Context, albumID, ownerID int64) (models.Album, error) {
	if m.getAlbumFn != nil {
		return m.getAlbumFn(ctx, albumID, ownerID)
	}
	return models.Album{AlbumID: albumID, OwnerID: ownerID}, nil
}

func (m *mockAlbumService) UpdateAlbum(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error) {
	if m.updateAlbumFn != nil {
		return m.updateAlbumFn(ctx, albumID, ownerID, req)
	}
	return models.Album{AlbumID: albumID, OwnerID: ownerID, Title: req.Title}, nil
}

func (m *mockAlbumService) DeleteAlbum(ctx context.Context, albumID, ownerID int64) error {
	if m.deleteAlbumFn != nil {
		return m.deleteAlbumFn(ctx, albumID, ownerID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.PhotoService
// ─────────────────────────────────────────────

type mockPhotoService struct {
	uploadPhotoFn    func(ctx context.Context, ownerID int64, meta models.PhotoUpload, fileName string, r io.Reader) (models.Photo, error)
	listPhotosFn     func(ctx context.Context, ownerID int64, albumIDs []int64) ([]models.Photo, error)
	getPhotoFn       func(ctx context.Context, photoID, ownerID int64) (models.Photo, error)
	openPhotoImageFn func(ctx context.Context, photoID, ownerID int64) (io.ReadCloser, string, error)
	updatePhotoFn    func(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error)
	deletePhotoFn    func(ctx context.Context, photoID, ownerID int64) error
	searchByTagsFn   func(ctx context.Context, tagNames []string) ([]models.Photo, error)
}

func (m *mockPhotoService) UploadPhoto(ctx context.Context, ownerID int64, meta models.PhotoUpload, fileName string, r io.Reader) (models.Photo, error) {
	if m.uploadPhotoFn != nil {
		return m.uploadPhotoFn(ctx, ownerID, meta, fileName, r)
	}
	return models.Photo{OwnerID: ownerID, Title: meta.Title}, nil
}

func (m *mockPhotoService) ListPhotos(ctx context.Context, ownerID int64, albumIDs []int64) ([]models.Photo, error) {
	if m.listPhotosFn != nil {
		return m.listPhotosFn(ctx, ownerID, albumIDs)
	}
	return nil, nil
}

func (m *mockPhotoService) GetPhoto(ctx context.Context, photoID, ownerID int64) (models.Photo, error) {
	if m.getPhotoFn != nil {
		return m.getPhotoFn(ctx, photoID, ownerID)
	}
	return models.Photo{PhotoID: photoID, OwnerID: ownerID}, nil
}

func (m *mockPhotoService) OpenPhotoImage(ctx context.Context, photoID, ownerID int64) (io.ReadCloser, string, error) {
	if m.openPhotoImageFn != nil {
		return m.openPhotoImageFn(ctx, photoID, ownerID)
	}
	return io.NopCloser(strings.NewReader("")), "", nil
}

func (m *mockPhotoService) UpdatePhoto(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error) {
	if m.updatePhotoFn != nil {
		return m.updatePhotoFn(ctx, photoID, ownerID, upd)
	}
	return models.Photo{PhotoID: photoID, OwnerID: ownerID}, nil
}

func (m *mockPhotoService) DeletePhoto(ctx context.Context, photoID, ownerID int64) error {
	if m.deletePhotoFn != nil {
		return m.deletePhotoFn(ctx, photoID, ownerID)
	}
	return nil
}

func (m *mockPhotoService) SearchByTags(ctx context.Context, tagNames []string) ([]models.Photo, error) {
	if m.searchByTagsFn != nil {
		return m.searchByTagsFn(ctx, tagNames)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.TagService
// ─────────────────────────────────────────────

type mockTagService struct {
	createTagFn func(ctx context.Context, req models.TagRequest) (models.Tag, error)
	listTagsFn  func(ctx context.Context) ([]models.Tag, error)
	getTagFn    func(ctx context.Context, tagID int64) (models.Tag, error)
	updateTagFn func(ctx context.Context, tagID int64, req models.TagRequest) (models.Tag, error)
	deleteTagFn func(ctx context.Context, tagID int64) error
}

func (m *mockTagService) CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	if m.createTagFn != nil {
		return m.createTagFn(ctx, req)
	}
	return models.Tag{Name: req.Name}, nil
}

func (m *mockTagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx)
	}
	return nil, nil
}

func (m *mockTagService) GetTag(ctx context.Context, tagID int64) (models.Tag, error) {
	if m.getTagFn != nil {
		return m.getTagFn(ctx, tagID)
	}
	return models.Tag{TagID: tagID}, nil
}

func (m *mockTagService) UpdateTag(ctx context.Context, tagID int64, req models.TagRequest) (models.Tag, error) {
	if m.updateTagFn != nil {
		return m.updateTagFn(ctx, tagID, req)
	}
	return models.Tag{TagID: tagID, Name: req.Name}, nil
}

func (m *mockTagService) DeleteTag(ctx context.Context, tagID int64) error {
	if m.deleteTagFn != nil {
		return m.deleteTagFn(ctx, tagID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		UserService:    &mockUserService{},
		AlbumService:   &mockAlbumService{},
		PhotoService:   &mockPhotoService{},
		TagService:     &mockTagService{},
		AppInfoService: &mockAppInfoService{version: "1.0.0"},
	}
}
