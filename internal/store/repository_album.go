package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/models"
)

// albumRepository is the SQL-backed implementation of [AlbumRepository].
// Ownership scoping is baked into every query: a WHERE owner_id clause makes
// other users' albums indistinguishable from absent ones.
type albumRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAlbumRepository constructs an [AlbumRepository] backed by the provided
// database connection and logger.
func NewAlbumRepository(db *DB, logger *logger.Logger) AlbumRepository {
	logger.Debug().Msg("creating album repository")
	return &albumRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAlbum persists a new album and returns it with server-assigned
// fields (AlbumID, CreatedAt, UpdatedAt) populated.
func (r *albumRepository) CreateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAlbumQuery(r.db.builder(), album)
	if err != nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&album.AlbumID, &album.CreatedAt, &album.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*albumRepository.CreateAlbum").Int64("owner_id", album.OwnerID).Msg("error creating album")
		return models.Album{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return album, nil
}

// ListAlbumsByOwner returns all albums of the given owner ordered by id.
func (r *albumRepository) ListAlbumsByOwner(ctx context.Context, ownerID int64) ([]models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAlbumsQuery(r.db.builder(), ownerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*albumRepository.ListAlbumsByOwner").Int64("owner_id", ownerID).Msg("failed to execute query for listing albums")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	albums := make([]models.Album, 0, 16)
	for rows.Next() {
		var album models.Album
		if err := scanAlbum(rows.Scan, &album); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		albums = append(albums, album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return albums, nil
}

// GetAlbum retrieves a single album by id, scoped to the given owner.
// Returns [ErrAlbumNotFound] when the album is absent or owned by another
// user.
func (r *albumRepository) GetAlbum(ctx context.Context, albumID, ownerID int64) (models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAlbumsQuery(r.db.builder(), ownerID).
		Where(sq.Eq{"album_id": albumID}).
		ToSql()
	if err != nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var album models.Album
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAlbum(row.Scan, &album); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Album{}, ErrAlbumNotFound
		}

		log.Err(err).Str("func", "*albumRepository.GetAlbum").Int64("album_id", albumID).Msg("error scanning album row")
		return models.Album{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return album, nil
}

// UpdateAlbum replaces the mutable attributes of an owned album and bumps
// its updated_at timestamp. Returns [ErrAlbumNotFound] when the album is
// absent or owned by another user.
func (r *albumRepository) UpdateAlbum(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAlbumQuery(r.db.builder(), albumID, ownerID, req)
	if err != nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var album models.Album
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAlbum(row.Scan, &album); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Album{}, ErrAlbumNotFound
		}

		log.Err(err).Str("func", "*albumRepository.UpdateAlbum").Int64("album_id", albumID).Msg("error updating album")
		return models.Album{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return album, nil
}

// DeleteAlbum removes an owned album; contained photos go with it via the
// ON DELETE CASCADE constraint. Returns [ErrAlbumNotFound] when the album is
// absent or owned by another user.
func (r *albumRepository) DeleteAlbum(ctx context.Context, albumID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAlbumQuery(r.db.builder(), albumID, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*albumRepository.DeleteAlbum").Int64("album_id", albumID).Msg("error deleting album")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}

	return nil
}

// scanAlbum reads one albums row in the [albumColumns] order.
func scanAlbum(scan func(dest ...any) error, album *models.Album) error {
	return scan(
		&album.AlbumID,
		&album.Title,
		&album.Description,
		&album.CreatedAt,
		&album.UpdatedAt,
		&album.OwnerID,
	)
}
