package service

import (
	"context"
	"fmt"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/models"
)

// tagService is the concrete implementation of TagService. The tag namespace
// is global: any authenticated user may create, rename, or delete tags.
type tagService struct {
	tagRepository store.TagRepository

	logger *logger.Logger
}

// NewTagService constructs a TagService wired to the given repository.
func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

// CreateTag persists a new tag.
func (s *tagService) CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(req); err != nil {
		log.Err(err).Str("name", req.Name).Msg("invalid tag data provided")
		return models.Tag{}, err
	}

	tag, err := s.tagRepository.CreateTag(ctx, models.Tag{Name: req.Name})
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("tag creation ended with error")
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}

	return tag, nil
}

// ListTags returns every tag.
func (s *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tagRepository.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags failed: %w", err)
	}

	return tags, nil
}

// GetTag returns a single tag by id.
func (s *tagService) GetTag(ctx context.Context, tagID int64) (models.Tag, error) {
	tag, err := s.tagRepository.GetTag(ctx, tagID)
	if err != nil {
		return models.Tag{}, fmt.Errorf("tag lookup failed: %w", err)
	}

	return tag, nil
}

// UpdateTag renames a tag.
func (s *tagService) UpdateTag(ctx context.Context, tagID int64, req models.TagRequest) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(req); err != nil {
		log.Err(err).Int64("tag_id", tagID).Msg("invalid tag data provided")
		return models.Tag{}, err
	}

	tag, err := s.tagRepository.UpdateTag(ctx, tagID, req.Name)
	if err != nil {
		log.Err(err).Int64("tag_id", tagID).Msg("tag update ended with error")
		return models.Tag{}, fmt.Errorf("tag update ended with error: %w", err)
	}

	return tag, nil
}

// DeleteTag removes a tag and detaches it from every photo.
func (s *tagService) DeleteTag(ctx context.Context, tagID int64) error {
	if err := s.tagRepository.DeleteTag(ctx, tagID); err != nil {
		return fmt.Errorf("tag deletion ended with error: %w", err)
	}

	return nil
}
