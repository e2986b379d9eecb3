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

// tagRepository is the SQL-backed implementation of [TagRepository]. Tags
// are a global namespace shared by all users; only the name column is
// mutable.
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTag persists a new tag. Returns [ErrTagAlreadyExists] when the name
// is already taken.
func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTagQuery(r.db.builder(), tag)
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&tag.TagID); err != nil {
		log.Err(err).Str("func", "*tagRepository.CreateTag").Str("name", tag.Name).Msg("error creating tag")

		if isUniqueViolation(err) {
			return models.Tag{}, ErrTagAlreadyExists
		}
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

// ListTags returns every tag ordered by id.
func (r *tagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	query, args, err := buildSelectTagsQuery(r.db.builder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTags(ctx, query, args)
}

// GetTag retrieves a single tag by id. Returns [ErrTagNotFound] when absent.
func (r *tagRepository) GetTag(ctx context.Context, tagID int64) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTagsQuery(r.db.builder()).
		Where(sq.Eq{"tag_id": tagID}).
		ToSql()
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&tag.TagID, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}

		log.Err(err).Str("func", "*tagRepository.GetTag").Int64("tag_id", tagID).Msg("error scanning tag row")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

// UpdateTag renames a tag. Returns [ErrTagNotFound] when the tag is absent
// and [ErrTagAlreadyExists] when the new name collides with another tag.
func (r *tagRepository) UpdateTag(ctx context.Context, tagID int64, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTagQuery(r.db.builder(), tagID, name)
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.UpdateTag").Int64("tag_id", tagID).Msg("error updating tag")

		if isUniqueViolation(err) {
			return models.Tag{}, ErrTagAlreadyExists
		}
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Tag{}, ErrTagNotFound
	}

	return models.Tag{TagID: tagID, Name: name}, nil
}

// DeleteTag removes a tag; photo associations go with it via the ON DELETE
// CASCADE constraint. Returns [ErrTagNotFound] when the tag is absent.
func (r *tagRepository) DeleteTag(ctx context.Context, tagID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTagQuery(r.db.builder(), tagID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteTag").Int64("tag_id", tagID).Msg("error deleting tag")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

// FindTagsByIDs returns the tags whose ids appear in tagIDs. Missing ids are
// silently skipped; callers compare lengths when they need strictness.
func (r *tagRepository) FindTagsByIDs(ctx context.Context, tagIDs []int64) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return []models.Tag{}, nil
	}

	query, args, err := buildSelectTagsByIDsQuery(r.db.builder(), tagIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTags(ctx, query, args)
}

func (r *tagRepository) queryTags(ctx context.Context, query string, args []any) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.queryTags").Msg("failed to execute query for tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 16)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.TagID, &tag.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}
