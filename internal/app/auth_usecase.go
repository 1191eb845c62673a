package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
	"github.com/LHProvin/exercita365b/internal/domain/services"
	"github.com/LHProvin/exercita365b/internal/ports/api"
	"github.com/LHProvin/exercita365b/internal/ports/repositories"
	svc "github.com/LHProvin/exercita365b/internal/ports/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration  = "starting user registration"
	msgInvalidFields      = "registration input failed validation"
	msgDuplicateUser      = "user with same national id or email already exists"
	msgUserRegistered     = "user registered successfully"
	msgTokenIssued        = "authentication token issued"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrIssueToken        = "failed to issue token"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingInput    = "validating registration input"
	errCtxCheckingUser       = "checking existing user"
	errCtxDuplicateUser      = "duplicate national id or email"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxIssuingToken       = "issuing token"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
)

// Field names reported in validation failures.
const (
	fieldName       = "name"
	fieldGender     = "gender"
	fieldNationalID = "nationalId"
	fieldAddress    = "address"
	fieldEmail      = "email"
	fieldPassword   = "password"
	fieldBirthdate  = "birthdate"
)

// AuthUseCaseImpl implements the AuthUseCase interface.
type AuthUseCaseImpl struct {
	userRepo       repositories.UserRepository
	passwordSvc    svc.PasswordService
	tokenSvc       svc.TokenService
	accessTokenTTL time.Duration
}

// NewAuthUseCase creates a new authentication use case. accessTokenTTL
// bounds login tokens; registration tokens never expire.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	accessTokenTTL time.Duration,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:       userRepo,
		passwordSvc:    passwordSvc,
		tokenSvc:       tokenSvc,
		accessTokenTTL: accessTokenTTL,
	}
}

// Register creates a new user with the provided data and returns it with a
// non-expiring token.
func (a *AuthUseCaseImpl) Register(ctx context.Context, input api.RegisterInput) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", input.Email))
	log.Debug(ctx, msgStartRegistration)

	birthdate, err := a.validateRegisterInput(ctx, input)
	if err != nil {
		log.Debug(ctx, msgInvalidFields, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxValidatingInput, err)
	}

	existing, err := a.userRepo.FindByNationalIDOrEmail(ctx, input.NationalID, input.Email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existing != nil {
		log.Debug(ctx, msgDuplicateUser)
		return nil, "", fmt.Errorf("%s: %w", errCtxDuplicateUser, services.ErrUserAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Name:         sanitizeText(input.Name),
		Gender:       entities.Gender(input.Gender),
		NationalID:   input.NationalID,
		Address:      sanitizeText(input.Address),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Birthdate:    birthdate,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			// Lost the race against a concurrent registration; the storage
			// layer's unique index is the safety net.
			log.Debug(ctx, msgDuplicateUser)
			return nil, "", fmt.Errorf("%s: %w", errCtxDuplicateUser, services.ErrUserAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	token, _, err := a.tokenSvc.Issue(ctx, createdUser.ID, 0)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxIssuingToken, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgTokenIssued, zap.String("userID", createdUser.ID))
	return createdUser, token, nil
}

// Login authenticates a user by email and password. A missing account and a
// wrong password both surface as invalid credentials so that accounts cannot
// be enumerated.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword, zap.String("userID", user.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	token, _, err := a.tokenSvc.Issue(ctx, user.ID, a.accessTokenTTL)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxIssuingToken, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return user, token, nil
}

// validateRegisterInput checks every field and reports the complete set of
// offending ones.
func (a *AuthUseCaseImpl) validateRegisterInput(_ context.Context, input api.RegisterInput) (time.Time, error) {
	var c fieldCollector

	if sanitizeText(input.Name) == "" {
		c.fail(fieldName)
	}
	if !validateGender(input.Gender) {
		c.fail(fieldGender)
	}
	if !validateNationalID(input.NationalID) {
		c.fail(fieldNationalID)
	}
	if sanitizeText(input.Address) == "" {
		c.fail(fieldAddress)
	}
	if !validateEmail(input.Email) {
		c.fail(fieldEmail)
	}
	if !validatePassword(input.Password) {
		c.fail(fieldPassword)
	}

	birthdate, ok := parseBirthdate(input.Birthdate)
	if !ok {
		c.fail(fieldBirthdate)
	}

	if err := c.err(); err != nil {
		return time.Time{}, err
	}
	return birthdate, nil
}
