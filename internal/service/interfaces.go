package service

import (
	"context"
	"io"

	"github.com/avolkhin/phototeka/models"
)

// AuthService handles account registration, credential verification, and the
// JWT access/refresh token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	CreateTokenPair(ctx context.Context, userID int64) (models.TokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes profile management for registered accounts.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error)
	UploadProfileImage(ctx context.Context, userID int64, fileName string, r io.Reader) (models.User, error)
}

// AlbumService exposes owner-scoped album management.
type AlbumService interface {
	CreateAlbum(ctx context.Context, ownerID int64, req models.AlbumRequest) (models.Album, error)
	ListAlbums(ctx context.Context, ownerID int64) ([]models.Album, error)
	GetAlbum(ctx context.Context, albumID, ownerID int64) (models.Album, error)
	UpdateAlbum(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error)
	DeleteAlbum(ctx context.Context, albumID, ownerID int64) error
}

// PhotoService exposes photo management: metadata CRUD plus the image bytes
// that travel through the media store. SearchByTags is the one read that is
// not owner-scoped; it spans the whole catalog.
type PhotoService interface {
	UploadPhoto(ctx context.Context, ownerID int64, meta models.PhotoUpload, fileName string, r io.Reader) (models.Photo, error)
	ListPhotos(ctx context.Context, ownerID int64, albumIDs []int64) ([]models.Photo, error)
	GetPhoto(ctx context.Context, photoID, ownerID int64) (models.Photo, error)
	OpenPhotoImage(ctx context.Context, photoID, ownerID int64) (io.ReadCloser, string, error)
	UpdatePhoto(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error)
	DeletePhoto(ctx context.Context, photoID, ownerID int64) error
	SearchByTags(ctx context.Context, tagNames []string) ([]models.Photo, error)
}

// TagService exposes management of the global tag namespace.
type TagService interface {
	CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, tagID int64) (models.Tag, error)
	UpdateTag(ctx context.Context, tagID int64, req models.TagRequest) (models.Tag, error)
	DeleteTag(ctx context.Context, tagID int64) error
}

// AppInfoService reports build-level application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
