package service

import (
	"context"
	"fmt"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/models"
)

// albumService is the concrete implementation of AlbumService. Every
// operation is scoped to the calling owner; the repository enforces the
// scoping at the SQL level.
type albumService struct {
	albumRepository store.AlbumRepository
	photoRepository store.PhotoRepository
	userRepository  store.UserRepository

	logger *logger.Logger
}

// NewAlbumService constructs an AlbumService wired to the given repositories.
// The photo repository is used to embed each album's photos in detail reads;
// the user repository supplies the embedded owner profile.
func NewAlbumService(
	albumRepository store.AlbumRepository,
	photoRepository store.PhotoRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) AlbumService {
	return &albumService{
		albumRepository: albumRepository,
		photoRepository: photoRepository,
		userRepository:  userRepository,
		logger:          logger,
	}
}

// CreateAlbum persists a new album owned by the caller.
func (s *albumService) CreateAlbum(ctx context.Context, ownerID int64, req models.AlbumRequest) (models.Album, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(req); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("invalid album data provided")
		return models.Album{}, err
	}

	album, err := s.albumRepository.CreateAlbum(ctx, models.Album{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("album creation ended with error")
		return models.Album{}, fmt.Errorf("album creation ended with error: %w", err)
	}

	album.Photos = []models.Photo{}

	albums := []models.Album{album}
	if err := s.populateOwner(ctx, ownerID, albums); err != nil {
		return models.Album{}, err
	}

	return albums[0], nil
}

// ListAlbums returns all albums of the caller, each with its photos embedded.
func (s *albumService) ListAlbums(ctx context.Context, ownerID int64) ([]models.Album, error) {
	albums, err := s.albumRepository.ListAlbumsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing albums failed: %w", err)
	}

	if err := s.populatePhotos(ctx, ownerID, albums); err != nil {
		return nil, err
	}
	if err := s.populateOwner(ctx, ownerID, albums); err != nil {
		return nil, err
	}

	return albums, nil
}

// GetAlbum returns a single owned album with its photos embedded.
func (s *albumService) GetAlbum(ctx context.Context, albumID, ownerID int64) (models.Album, error) {
	album, err := s.albumRepository.GetAlbum(ctx, albumID, ownerID)
	if err != nil {
		return models.Album{}, fmt.Errorf("album lookup failed: %w", err)
	}

	albums := []models.Album{album}
	if err := s.populatePhotos(ctx, ownerID, albums); err != nil {
		return models.Album{}, err
	}
	if err := s.populateOwner(ctx, ownerID, albums); err != nil {
		return models.Album{}, err
	}

	return albums[0], nil
}

// UpdateAlbum replaces the mutable attributes of an owned album.
func (s *albumService) UpdateAlbum(ctx context.Context, albumID, ownerID int64, req models.AlbumRequest) (models.Album, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(req); err != nil {
		log.Err(err).Int64("album_id", albumID).Msg("invalid album data provided")
		return models.Album{}, err
	}

	album, err := s.albumRepository.UpdateAlbum(ctx, albumID, ownerID, req)
	if err != nil {
		log.Err(err).Int64("album_id", albumID).Msg("album update ended with error")
		return models.Album{}, fmt.Errorf("album update ended with error: %w", err)
	}

	albums := []models.Album{album}
	if err := s.populatePhotos(ctx, ownerID, albums); err != nil {
		return models.Album{}, err
	}
	if err := s.populateOwner(ctx, ownerID, albums); err != nil {
		return models.Album{}, err
	}

	return albums[0], nil
}

// DeleteAlbum removes an owned album together with its photos.
func (s *albumService) DeleteAlbum(ctx context.Context, albumID, ownerID int64) error {
	if err := s.albumRepository.DeleteAlbum(ctx, albumID, ownerID); err != nil {
		return fmt.Errorf("album deletion ended with error: %w", err)
	}

	return nil
}

// populatePhotos fills the Photos slice of every album in albums with one
// owner-scoped photo query.
func (s *albumService) populatePhotos(ctx context.Context, ownerID int64, albums []models.Album) error {
	for i := range albums {
		albums[i].Photos = []models.Photo{}
	}
	if len(albums) == 0 {
		return nil
	}

	albumIDs := make([]int64, 0, len(albums))
	indexByID := make(map[int64]int, len(albums))
	for i, album := range albums {
		albumIDs = append(albumIDs, album.AlbumID)
		indexByID[album.AlbumID] = i
	}

	photos, err := s.photoRepository.GetPhotos(ctx, models.PhotoFilter{OwnerID: ownerID, AlbumIDs: albumIDs})
	if err != nil {
		return fmt.Errorf("listing album photos failed: %w", err)
	}

	for _, photo := range photos {
		if i, ok := indexByID[photo.AlbumID]; ok {
			albums[i].Photos = append(albums[i].Photos, photo)
		}
	}

	return nil
}

// populateOwner embeds the caller's public profile in every album and nested
// photo. Albums are owner-scoped, so a single user lookup covers them all.
func (s *albumService) populateOwner(ctx context.Context, ownerID int64, albums []models.Album) error {
	if len(albums) == 0 {
		return nil
	}

	owner, err := s.userRepository.FindUserByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("album owner lookup failed: %w", err)
	}

	for i := range albums {
		albums[i].Owner = &owner
		for j := range albums[i].Photos {
			albums[i].Photos[j].Owner = &owner
		}
	}

	return nil
}
