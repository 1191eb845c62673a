package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
	"github.com/LHProvin/exercita365b/internal/ports/api"
	"github.com/LHProvin/exercita365b/internal/ports/repositories"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

const (
	methodDeleteUser = "Delete"

	msgDeletingUser       = "deleting user"
	msgEmptyUserID        = "empty user ID provided"
	msgUserNotFoundForDel = "user not found for deletion"
	msgUserOwnsLocations  = "user deletion blocked by owned locations"
	msgUserDeleted        = "user deleted"

	msgErrFindingUserByID  = "failed to find user by ID"
	msgErrCountLocations   = "failed to count user locations"
	msgErrDeleteUser       = "failed to delete user"

	errCtxValidatingUserID = "validating user ID"
	errCtxFindingUserByID  = "finding user"
	errCtxCountingLocs     = "counting owned locations"
	errCtxDeletionBlocked  = "deletion blocked"
	errCtxDeletingUser     = "deleting user"
)

// UserUseCaseImpl implements the UserUseCase interface.
type UserUseCaseImpl struct {
	userRepo     repositories.UserRepository
	locationRepo repositories.LocationRepository
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	locationRepo repositories.LocationRepository,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:     userRepo,
		locationRepo: locationRepo,
	}
}

// Delete removes a user permanently. Deletion is blocked, not cascaded,
// while the user owns locations. Any authenticated caller may delete any
// user; there is no self-only restriction.
func (u *UserUseCaseImpl) Delete(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.String("userID", userID))
	log.Debug(ctx, msgDeletingUser)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserID)
		return fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserNotFoundForDel)
			return fmt.Errorf("%s: %w", errCtxFindingUserByID, entities.ErrUserNotFound)
		}
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingUserByID, err)
	}

	count, err := u.locationRepo.CountByUserID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrCountLocations, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCountingLocs, err)
	}
	if count > 0 {
		log.Debug(ctx, msgUserOwnsLocations, zap.Int("locations", count))
		return fmt.Errorf("%s: %w", errCtxDeletionBlocked, entities.ErrUserHasLocations)
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserNotFoundForDel)
			return fmt.Errorf("%s: %w", errCtxDeletingUser, entities.ErrUserNotFound)
		}
		log.Error(ctx, msgErrDeleteUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	log.Info(ctx, msgUserDeleted)
	return nil
}
