package service

import (
	"context"
	"fmt"
	"io"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/models"
)

// profileImageSubdir is the media-store directory holding profile images.
const profileImageSubdir = "profiles"

// userService is the concrete implementation of UserService. Profile image
// bytes go through the media store; the repository only keeps the
// media-relative path.
type userService struct {
	userRepository store.UserRepository
	mediaStore     store.MediaStore

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// media store.
func NewUserService(userRepository store.UserRepository, mediaStore store.MediaStore, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		mediaStore:     mediaStore,
		logger:         logger,
	}
}

// GetUser returns the account with the given id.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ListUsers returns all registered accounts.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// UpdateProfile applies a partial profile update to the caller's account.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, upd models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(upd); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid profile update provided")
		return models.User{}, err
	}
	if upd.Email == nil && upd.FirstName == nil && upd.LastName == nil && upd.Bio == nil {
		return models.User{}, fmt.Errorf("%w: empty profile update", ErrInvalidDataProvided)
	}

	user, err := s.userRepository.UpdateProfile(ctx, userID, upd)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return user, nil
}

// UploadProfileImage stores a new profile image for the caller, replaces the
// previous one on disk, and returns the refreshed account record.
func (s *userService) UploadProfileImage(ctx context.Context, userID int64, fileName string, r io.Reader) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	relPath, err := s.mediaStore.Save(ctx, profileImageSubdir, fileName, r)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("storing profile image failed")
		return models.User{}, fmt.Errorf("storing profile image failed: %w", err)
	}

	if err := s.userRepository.SetProfileImage(ctx, userID, relPath); err != nil {
		// roll the orphaned file back before reporting
		if removeErr := s.mediaStore.Remove(ctx, relPath); removeErr != nil {
			log.Err(removeErr).Str("path", relPath).Msg("removing orphaned profile image failed")
		}
		return models.User{}, fmt.Errorf("saving profile image path failed: %w", err)
	}

	if user.ProfileImage != "" {
		if err := s.mediaStore.Remove(ctx, user.ProfileImage); err != nil {
			log.Err(err).Str("path", user.ProfileImage).Msg("removing previous profile image failed")
		}
	}

	user.ProfileImage = relPath
	return user, nil
}
