package service

import (
	"context"
	"errors"
	"io"

	"github.com/avolkhin/phototeka/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	findUsersByIDsFn     func(ctx context.Context, userIDs []int64) ([]models.User, error)
	listUsersFn          func(ctx context.Context) ([]models.User, error)
	updateProfileFn      func(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error)
	setProfileImageFn    func(ctx context.Context, userID int64, imagePath string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []int64) ([]models.User, error) {
	if m.findUsersByIDsFn != nil {
		return m.findUsersByIDsFn(ctx, userIDs)
	}
	users := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, models.User{UserID: id})
	}
	return users, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, upd)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) SetProfileImage(ctx context.Context, userID int64, imagePath string) error {
	if m.setProfileImageFn != nil {
		return m.setProfileImageFn(ctx, userID, imagePath)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.AlbumRepository
// ─────────────────────────────────────────────

type mockAlbumRepository struct {
	createAlbumFn       func(ctx context.Context, album models.Album) (models.Album, error)
	listAlbumsByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Album, error)
	getAlbumFn          func(ctx context.Context, albumID, ownerID int64) (models.Album, error)
	updateAlbumFn       func(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error)
	deleteAlbumFn       func(ctx context.Context, albumID, ownerID int64) error
}

func (m *mockAlbumRepository) CreateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	if m.createAlbumFn != nil {
		return m.createAlbumFn(ctx, album)
	}
	return album, nil
}

func (m *mockAlbumRepository) ListAlbumsByOwner(ctx context.Context, ownerID int64) ([]models.Album, error) {
	if m.listAlbumsByOwnerFn != nil {
		return m.listAlbumsByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockAlbumRepository) GetAlbum(ctx context.Context, albumID, ownerID int64) (models.Album, error) {
	if m.getAlbumFn != nil {
		return m.getAlbumFn(ctx, albumID, ownerID)
	}
	return models.Album{AlbumID: albumID, OwnerID: ownerID}, nil
}

func (m *mockAlbumRepository) UpdateAlbum(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error) {
	if m.updateAlbumFn != nil {
		return m.updateAlbumFn(ctx, albumID, ownerID, req)
	}
	return models.Album{AlbumID: albumID, OwnerID: ownerID, Title: req.Title, Description: req.Description}, nil
}

func (m *mockAlbumRepository) DeleteAlbum(ctx context.Context, albumID, ownerID int64) error {
	if m.deleteAlbumFn != nil {
		return m.deleteAlbumFn(ctx, albumID, ownerID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.TagRepository
// ─────────────────────────────────────────────

type mockTagRepository struct {
	createTagFn     func(ctx context.Context, tag models.Tag) (models.Tag, error)
	listTagsFn      func(ctx context.Context) ([]models.Tag, error)
	getTagFn        func(ctx context.Context, tagID int64) (models.Tag, error)
	updateTagFn     func(ctx context.Context, tagID int64, name string) (models.Tag, error)
	deleteTagFn     func(ctx context.Context, tagID int64) error
	findTagsByIDsFn func(ctx context.Context, tagIDs []int64) ([]models.Tag, error)
}

func (m *mockTagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	if m.createTagFn != nil {
		return m.createTagFn(ctx, tag)
	}
	return tag, nil
}

func (m *mockTagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx)
	}
	return nil, nil
}

func (m *mockTagRepository) GetTag(ctx context.Context, tagID int64) (models.Tag, error) {
	if m.getTagFn != nil {
		return m.getTagFn(ctx, tagID)
	}
	return models.Tag{TagID: tagID}, nil
}

func (m *mockTagRepository) UpdateTag(ctx context.Context, tagID int64, name string) (models.Tag, error) {
	if m.updateTagFn != nil {
		return m.updateTagFn(ctx, tagID, name)
	}
	return models.Tag{TagID: tagID, Name: name}, nil
}

func (m *mockTagRepository) DeleteTag(ctx context.Context, tagID int64) error {
	if m.deleteTagFn != nil {
		return m.deleteTagFn(ctx, tagID)
	}
	return nil
}

func (m *mockTagRepository) FindTagsByIDs(ctx context.Context, tagIDs []int64) ([]models.Tag, error) {
	if m.findTagsByIDsFn != nil {
		return m.findTagsByIDsFn(ctx, tagIDs)
	}
	tags := make([]models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, models.Tag{TagID: id})
	}
	return tags, nil
}

// ─────────────────────────────────────────────
// Mock: store.PhotoRepository
// ─────────────────────────────────────────────

type mockPhotoRepository struct {
	createPhotoFn func(ctx context.Context, photo models.Photo, tagIDs []int64) (models.Photo, error)
	getPhotosFn   func(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error)
	getPhotoFn    func(ctx context.Context, photoID, ownerID int64) (models.Photo, error)
	updatePhotoFn func(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error)
	deletePhotoFn func(ctx context.Context, photoID, ownerID int64) error
}

func (m *mockPhotoRepository) CreatePhoto(ctx context.Context, photo models.Photo, tagIDs []int64) (models.Photo, error) {
	if m.createPhotoFn != nil {
		return m.createPhotoFn(ctx, photo, tagIDs)
	}
	return photo, nil
}

func (m *mockPhotoRepository) GetPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error) {
	if m.getPhotosFn != nil {
		return m.getPhotosFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockPhotoRepository) GetPhoto(ctx context.Context, photoID, ownerID int64) (models.Photo, error) {
	if m.getPhotoFn != nil {
		return m.getPhotoFn(ctx, photoID, ownerID)
	}
	return models.Photo{PhotoID: photoID, OwnerID: ownerID}, nil
}

func (m *mockPhotoRepository) UpdatePhoto(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error) {
	if m.updatePhotoFn != nil {
		return m.updatePhotoFn(ctx, photoID, ownerID, upd)
	}
	return models.Photo{PhotoID: photoID, OwnerID: ownerID}, nil
}

func (m *mockPhotoRepository) DeletePhoto(ctx context.Context, photoID, ownerID int64) error {
	if m.deletePhotoFn != nil {
		return m.deletePhotoFn(ctx, photoID, ownerID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.MediaStore
// ─────────────────────────────────────────────

type mockMediaStore struct {
	saveFn   func(ctx context.Context, subdir, originalName string, r io.Reader) (string, error)
	openFn   func(ctx context.Context, relPath string) (io.ReadCloser, error)
	removeFn func(ctx context.Context, relPath string) error

	removed []string
}

func (m *mockMediaStore) Save(ctx context.Context, subdir, originalName string, r io.Reader) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, subdir, originalName, r)
	}
	return subdir + "/stored.bin", nil
}

func (m *mockMediaStore) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if m.openFn != nil {
		return m.openFn(ctx, relPath)
	}
	return io.NopCloser(nil), nil
}

func (m *mockMediaStore) Remove(ctx context.Context, relPath string) error {
	m.removed = append(m.removed, relPath)
	if m.removeFn != nil {
		return m.removeFn(ctx, relPath)
	}
	return nil
}
