package store

import (
	"context"
	"io"

	"github.com/avolkhin/phototeka/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUsersByIDs(ctx context.Context, userIDs []int64) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error)
	SetProfileImage(ctx context.Context, userID int64, imagePath string) error
}

// AlbumRepository provides persistence for albums. Every method is
// owner-scoped: albums of other users behave as if they did not exist.
type AlbumRepository interface {
	CreateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	ListAlbumsByOwner(ctx context.Context, ownerID int64) ([]models.Album, error)
	GetAlbum(ctx context.Context, albumID, ownerID int64) (models.Album, error)
	UpdateAlbum(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error)
	DeleteAlbum(ctx context.Context, albumID, ownerID int64) error
}

// TagRepository provides persistence for the global tag namespace.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, tagID int64) (models.Tag, error)
	UpdateTag(ctx context.Context, tagID int64, name string) (models.Tag, error)
	DeleteTag(ctx context.Context, tagID int64) error
	FindTagsByIDs(ctx context.Context, tagIDs []int64) ([]models.Tag, error)
}

// PhotoRepository provides persistence for photos and their tag
// associations. CreatePhoto and UpdatePhoto keep the photos row and the
// photo_tags rows consistent inside a single transaction.
type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo models.Photo, tagIDs []int64) (models.Photo, error)
	GetPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error)
	GetPhoto(ctx context.Context, photoID, ownerID int64) (models.Photo, error)
	UpdatePhoto(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error)
	DeletePhoto(ctx context.Context, photoID, ownerID int64) error
}

// MediaStore persists uploaded image bytes outside the relational database
// and addresses them by media-relative paths.
type MediaStore interface {
	// Save streams r into a new file under subdir and returns the
	// media-relative path of the stored file. The stored name is generated;
	// originalName contributes only its extension.
	Save(ctx context.Context, subdir, originalName string, r io.Reader) (string, error)

	// Open returns a reader over a previously stored file.
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Remove deletes a previously stored file. Removing a missing file is
	// not an error.
	Remove(ctx context.Context, relPath string) error
}
