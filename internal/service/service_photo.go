package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/models"
)

// photoImageSubdir is the media-store directory holding photo images.
const photoImageSubdir = "photos"

// photoService is the concrete implementation of PhotoService. Metadata lives
// in the photo repository; image bytes go through the media store and are
// referenced by media-relative paths.
//
// Ownership rules: every album referenced by an upload or a metadata update
// must belong to the caller, and every tag id must exist in the global tag
// namespace. SearchByTags deliberately ignores ownership.
type photoService struct {
	photoRepository store.PhotoRepository
	albumRepository store.AlbumRepository
	tagRepository   store.TagRepository
	userRepository  store.UserRepository
	mediaStore      store.MediaStore

	logger *logger.Logger
}

// NewPhotoService constructs a PhotoService wired to the given repositories
// and media store. The user repository supplies the owner profile embedded
// in every returned photo.
func NewPhotoService(
	photoRepository store.PhotoRepository,
	albumRepository store.AlbumRepository,
	tagRepository store.TagRepository,
	userRepository store.UserRepository,
	mediaStore store.MediaStore,
	logger *logger.Logger,
) PhotoService {
	return &photoService{
		photoRepository: photoRepository,
		albumRepository: albumRepository,
		tagRepository:   tagRepository,
		userRepository:  userRepository,
		mediaStore:      mediaStore,
		logger:          logger,
	}
}

// UploadPhoto stores the image bytes and creates the photo record in the
// caller's album.
//
// Returns the created photo with Tags populated or:
//   - ErrInvalidDataProvided if the metadata fails validation.
//   - store.ErrAlbumNotFound if the album is absent or owned by another user.
//   - store.ErrTagNotFound if any tag id does not exist.
//
// The stored file is removed again when record creation fails, so a failed
// upload leaves no orphaned bytes behind.
func (s *photoService) UploadPhoto(ctx context.Context, ownerID int64, meta models.PhotoUpload, fileName string, r io.Reader) (models.Photo, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(meta); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("invalid photo metadata provided")
		return models.Photo{}, err
	}

	if _, err := s.albumRepository.GetAlbum(ctx, meta.AlbumID, ownerID); err != nil {
		log.Err(err).Int64("album_id", meta.AlbumID).Msg("album ownership check failed")
		return models.Photo{}, fmt.Errorf("album ownership check failed: %w", err)
	}
	if err := s.checkTagsExist(ctx, meta.TagIDs); err != nil {
		return models.Photo{}, err
	}

	relPath, err := s.mediaStore.Save(ctx, photoImageSubdir, fileName, r)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("storing photo image failed")
		return models.Photo{}, fmt.Errorf("storing photo image failed: %w", err)
	}

	photo, err := s.photoRepository.CreatePhoto(ctx, models.Photo{
		Title:       meta.Title,
		Description: meta.Description,
		ImagePath:   relPath,
		AlbumID:     meta.AlbumID,
		OwnerID:     ownerID,
	}, meta.TagIDs)
	if err != nil {
		if removeErr := s.mediaStore.Remove(ctx, relPath); removeErr != nil {
			log.Err(removeErr).Str("path", relPath).Msg("removing orphaned photo image failed")
		}

		log.Err(err).Int64("owner_id", ownerID).Msg("photo creation ended with error")
		return models.Photo{}, fmt.Errorf("photo creation ended with error: %w", err)
	}

	return s.withOwner(ctx, ownerID, photo)
}

// ListPhotos returns the caller's photos, optionally narrowed to the given
// albums.
func (s *photoService) ListPhotos(ctx context.Context, ownerID int64, albumIDs []int64) ([]models.Photo, error) {
	photos, err := s.photoRepository.GetPhotos(ctx, models.PhotoFilter{OwnerID: ownerID, AlbumIDs: albumIDs})
	if err != nil {
		return nil, fmt.Errorf("listing photos failed: %w", err)
	}

	if err := s.attachOwners(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// GetPhoto returns a single owned photo with Tags and Owner populated.
func (s *photoService) GetPhoto(ctx context.Context, photoID, ownerID int64) (models.Photo, error) {
	photo, err := s.photoRepository.GetPhoto(ctx, photoID, ownerID)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo lookup failed: %w", err)
	}

	return s.withOwner(ctx, ownerID, photo)
}

// OpenPhotoImage returns a reader over the stored image bytes of an owned
// photo together with the media-relative path (its extension drives the
// response content type).
func (s *photoService) OpenPhotoImage(ctx context.Context, photoID, ownerID int64) (io.ReadCloser, string, error) {
	photo, err := s.photoRepository.GetPhoto(ctx, photoID, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("photo lookup failed: %w", err)
	}

	f, err := s.mediaStore.Open(ctx, photo.ImagePath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", photo.ImagePath).Msg("opening photo image failed")
		return nil, "", fmt.Errorf("opening photo image failed: %w", err)
	}

	return f, photo.ImagePath, nil
}

// UpdatePhoto applies a partial metadata update to an owned photo. A non-nil
// TagIDs replaces the photo's tag set wholesale; moving the photo to another
// album requires the caller to own the target album.
func (s *photoService) UpdatePhoto(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(upd); err != nil {
		log.Err(err).Int64("photo_id", photoID).Msg("invalid photo update provided")
		return models.Photo{}, err
	}
	if upd.Title == nil && upd.Description == nil && upd.AlbumID == nil && upd.TagIDs == nil {
		return models.Photo{}, fmt.Errorf("%w: empty photo update", ErrInvalidDataProvided)
	}

	if upd.AlbumID != nil {
		if _, err := s.albumRepository.GetAlbum(ctx, *upd.AlbumID, ownerID); err != nil {
			log.Err(err).Int64("album_id", *upd.AlbumID).Msg("album ownership check failed")
			return models.Photo{}, fmt.Errorf("album ownership check failed: %w", err)
		}
	}
	if upd.TagIDs != nil {
		if err := s.checkTagsExist(ctx, *upd.TagIDs); err != nil {
			return models.Photo{}, err
		}
	}

	// a tags-only update has no SET clauses for the photos row; reuse the
	// title to keep the UPDATE well-formed without changing anything
	if upd.Title == nil && upd.Description == nil && upd.AlbumID == nil {
		current, err := s.photoRepository.GetPhoto(ctx, photoID, ownerID)
		if err != nil {
			return models.Photo{}, fmt.Errorf("photo lookup failed: %w", err)
		}
		upd.Title = &current.Title
	}

	photo, err := s.photoRepository.UpdatePhoto(ctx, photoID, ownerID, upd)
	if err != nil {
		log.Err(err).Int64("photo_id", photoID).Msg("photo update ended with error")
		return models.Photo{}, fmt.Errorf("photo update ended with error: %w", err)
	}

	return s.withOwner(ctx, ownerID, photo)
}

// DeletePhoto removes an owned photo record and its stored image bytes.
func (s *photoService) DeletePhoto(ctx context.Context, photoID, ownerID int64) error {
	log := logger.FromContext(ctx)

	photo, err := s.photoRepository.GetPhoto(ctx, photoID, ownerID)
	if err != nil {
		return fmt.Errorf("photo lookup failed: %w", err)
	}

	if err := s.photoRepository.DeletePhoto(ctx, photoID, ownerID); err != nil {
		return fmt.Errorf("photo deletion ended with error: %w", err)
	}

	if err := s.mediaStore.Remove(ctx, photo.ImagePath); err != nil {
		// the record is gone; report but do not fail the deletion
		log.Err(err).Str("path", photo.ImagePath).Msg("removing photo image failed")
	}

	return nil
}

// SearchByTags returns every photo in the catalog carrying at least one of
// the given tag names, regardless of owner. A request without usable tag
// names matches nothing and yields an empty result.
func (s *photoService) SearchByTags(ctx context.Context, tagNames []string) ([]models.Photo, error) {
	names := make([]string, 0, len(tagNames))
	for _, name := range tagNames {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		return []models.Photo{}, nil
	}

	photos, err := s.photoRepository.GetPhotos(ctx, models.PhotoFilter{TagNames: names})
	if err != nil {
		return nil, fmt.Errorf("searching photos by tags failed: %w", err)
	}

	if err := s.attachOwners(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// withOwner embeds the caller's public profile in a single owned photo.
func (s *photoService) withOwner(ctx context.Context, ownerID int64, photo models.Photo) (models.Photo, error) {
	owner, err := s.userRepository.FindUserByID(ctx, ownerID)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo owner lookup failed: %w", err)
	}

	photo.Owner = &owner
	return photo, nil
}

// attachOwners embeds owner profiles in a batch of photos with one user
// query. Search results span multiple owners, so the lookup is keyed by the
// distinct OwnerIDs present in the batch.
func (s *photoService) attachOwners(ctx context.Context, photos []models.Photo) error {
	if len(photos) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(photos))
	ownerIDs := make([]int64, 0, len(photos))
	for _, photo := range photos {
		if _, ok := seen[photo.OwnerID]; ok {
			continue
		}
		seen[photo.OwnerID] = struct{}{}
		ownerIDs = append(ownerIDs, photo.OwnerID)
	}

	owners, err := s.userRepository.FindUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return fmt.Errorf("photo owner lookup failed: %w", err)
	}

	byID := make(map[int64]*models.User, len(owners))
	for i := range owners {
		byID[owners[i].UserID] = &owners[i]
	}

	for i := range photos {
		photos[i].Owner = byID[photos[i].OwnerID]
	}

	return nil
}

// checkTagsExist verifies that every id in tagIDs names an existing tag.
func (s *photoService) checkTagsExist(ctx context.Context, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	found, err := s.tagRepository.FindTagsByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("tag lookup failed: %w", err)
	}

	known := make(map[int64]struct{}, len(found))
	for _, tag := range found {
		known[tag.TagID] = struct{}{}
	}
	for _, id := range tagIDs {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("tag lookup failed: %w", store.ErrTagNotFound)
		}
	}

	return nil
}
