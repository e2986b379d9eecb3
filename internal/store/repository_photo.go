package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/models"
)

// photoRepository is the SQL-backed implementation of [PhotoRepository].
// It keeps the photos table and the photo_tags join table consistent: every
// write that touches both runs inside a single transaction.
//
// Reads always return photos with their Tags slice populated, loaded with a
// single join query over all photos in the result set.
type photoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPhotoRepository constructs a [PhotoRepository] backed by the provided
// database connection and logger.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePhoto inserts the photo row and its tag associations in one
// transaction and returns the stored photo with Tags populated.
//
// Error handling:
//   - a tag id that does not exist → [ErrTagNotFound] (foreign-key violation).
//   - a missing album → [ErrAlbumNotFound] (foreign-key violation).
func (r *photoRepository) CreatePhoto(ctx context.Context, photo models.Photo, tagIDs []int64) (models.Photo, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildInsertPhotoQuery(r.db.builder(), photo)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&photo.PhotoID, &photo.UploadedAt); err != nil {
		log.Err(err).Str("func", "*photoRepository.CreatePhoto").Int64("owner_id", photo.OwnerID).Msg("error inserting photo")

		if isForeignKeyViolation(err) {
			return models.Photo{}, ErrAlbumNotFound
		}
		return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(tagIDs) > 0 {
		if err := r.insertPhotoTags(ctx, tx, photo.PhotoID, tagIDs); err != nil {
			return models.Photo{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	photos := []models.Photo{photo}
	if err := r.loadTags(ctx, photos); err != nil {
		return models.Photo{}, err
	}

	return photos[0], nil
}

// GetPhotos retrieves photos matching the criteria in filter, with their
// Tags populated. Returns an empty slice when nothing matches.
func (r *photoRepository) GetPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPhotosQuery(r.db.builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.GetPhotos").Int64("owner_id", filter.OwnerID).Msg("failed to execute query for photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 50)
	for rows.Next() {
		var photo models.Photo
		if err := scanPhoto(rows.Scan, &photo); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.loadTags(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// GetPhoto retrieves a single owned photo by id, with Tags populated.
// Returns [ErrPhotoNotFound] when the photo is absent or owned by another
// user.
func (r *photoRepository) GetPhoto(ctx context.Context, photoID, ownerID int64) (models.Photo, error) {
	photos, err := r.GetPhotos(ctx, models.PhotoFilter{OwnerID: ownerID, PhotoIDs: []int64{photoID}})
	if err != nil {
		return models.Photo{}, err
	}
	if len(photos) == 0 {
		return models.Photo{}, ErrPhotoNotFound
	}

	return photos[0], nil
}

// UpdatePhoto applies a partial metadata update and, when upd.TagIDs is
// non-nil, replaces the photo's tag set wholesale. Both happen in one
// transaction. Returns the refreshed photo with Tags populated.
func (r *photoRepository) UpdatePhoto(ctx context.Context, photoID, ownerID int64, upd models.PhotoUpdate) (models.Photo, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildUpdatePhotoQuery(r.db.builder(), photoID, ownerID, upd)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var photo models.Photo
	row := tx.QueryRowContext(ctx, query, args...)
	if err := scanPhoto(row.Scan, &photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Photo{}, ErrPhotoNotFound
		}
		if isForeignKeyViolation(err) {
			return models.Photo{}, ErrAlbumNotFound
		}

		log.Err(err).Str("func", "*photoRepository.UpdatePhoto").Int64("photo_id", photoID).Msg("error updating photo")
		return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if upd.TagIDs != nil {
		deleteQuery, deleteArgs, err := buildDeletePhotoTagsQuery(r.db.builder(), photoID)
		if err != nil {
			return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			log.Err(err).Str("func", "*photoRepository.UpdatePhoto").Int64("photo_id", photoID).Msg("error clearing photo tags")
			return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
		}

		if len(*upd.TagIDs) > 0 {
			if err := r.insertPhotoTags(ctx, tx, photoID, *upd.TagIDs); err != nil {
				return models.Photo{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	photos := []models.Photo{photo}
	if err := r.loadTags(ctx, photos); err != nil {
		return models.Photo{}, err
	}

	return photos[0], nil
}

// DeletePhoto removes an owned photo; its tag associations go with it via
// the ON DELETE CASCADE constraint. Returns [ErrPhotoNotFound] when the
// photo is absent or owned by another user.
func (r *photoRepository) DeletePhoto(ctx context.Context, photoID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePhotoQuery(r.db.builder(), photoID, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.DeletePhoto").Int64("photo_id", photoID).Msg("error deleting photo")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

func (r *photoRepository) insertPhotoTags(ctx context.Context, tx *sql.Tx, photoID int64, tagIDs []int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPhotoTagsQuery(r.db.builder(), photoID, tagIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*photoRepository.insertPhotoTags").Int64("photo_id", photoID).Msg("error inserting photo tags")

		if isForeignKeyViolation(err) {
			return ErrTagNotFound
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// loadTags populates the Tags slice of every photo in photos with one join
// query. Photos without tags end up with an empty, non-nil slice so the
// JSON encoding stays a list.
func (r *photoRepository) loadTags(ctx context.Context, photos []models.Photo) error {
	log := logger.FromContext(ctx)

	for i := range photos {
		photos[i].Tags = []models.Tag{}
	}
	if len(photos) == 0 {
		return nil
	}

	photoIDs := make([]int64, 0, len(photos))
	indexByID := make(map[int64]int, len(photos))
	for i, photo := range photos {
		photoIDs = append(photoIDs, photo.PhotoID)
		indexByID[photo.PhotoID] = i
	}

	query, args, err := buildSelectPhotoTagsQuery(r.db.builder(), photoIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.loadTags").Msg("failed to execute query for photo tags")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var photoID int64
		var tag models.Tag
		if err := rows.Scan(&photoID, &tag.TagID, &tag.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if i, ok := indexByID[photoID]; ok {
			photos[i].Tags = append(photos[i].Tags, tag)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// scanPhoto reads one photos row in the [photoColumns] order.
func scanPhoto(scan func(dest ...any) error, photo *models.Photo) error {
	return scan(
		&photo.PhotoID,
		&photo.Title,
		&photo.Description,
		&photo.ImagePath,
		&photo.UploadedAt,
		&photo.AlbumID,
		&photo.OwnerID,
	)
}
