package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/internal/repository"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/validation"
)

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type tokenIssuer interface {
	IssueToken(user *models.User) (string, error)
}

// UserService manages profiles and admin account administration.
type UserService struct {
	repo      userRepository
	tokens    tokenIssuer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(repo userRepository, tokens tokenIssuer, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, tokens: tokens, validator: validate, logger: logger}
}

// Profile returns the account identified by the token.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "user", "load")
	}
	return user, nil
}

// UpdateProfile applies a self-service update and returns a fresh token.
// A new password requires the current one; on mismatch nothing is persisted.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid profile payload")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "user", "load")
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "current password is required")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "current password is incorrect")
		}
	}

	if err := s.applyIdentity(ctx, user, req.Name, req.Email); err != nil {
		return nil, err
	}

	if req.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErrors.Internal(err, "failed to hash password")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to create access token")
	}
	return &models.AuthResponse{ID: user.ID, Name: user.Name, Email: user.Email, IsAdmin: user.IsAdmin, Token: token}, nil
}

// DeleteProfile removes the caller's own account.
func (s *UserService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return storeError(err, "user", "delete")
	}
	s.logger.Info("user deleted own account", zap.String("user_id", userID))
	return nil
}

// List returns every account for the admin dashboard.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list users")
	}
	return users, nil
}

// Get returns one account.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	if err := checkID(id, "user"); err != nil {
		return nil, err
	}
	return s.Profile(ctx, id)
}

// Update lets an admin change name, email or admin flag. Passwords are never touched.
func (s *UserService) Update(ctx context.Context, id string, req models.AdminUpdateUserRequest) (*models.User, error) {
	if err := checkID(id, "user"); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid user payload")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "user", "load")
	}
	if err := s.applyIdentity(ctx, user, req.Name, req.Email); err != nil {
		return nil, err
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Courses and testimonials are unaffected.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "user"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "user", "delete")
	}
	return nil
}

func (s *UserService) applyIdentity(ctx context.Context, user *models.User, name, email *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return validation.Required("name")
		}
		user.Name = trimmed
	}
	if email != nil {
		normalized := normalizeEmail(*email)
		if normalized != user.Email {
			existing, err := s.repo.FindByEmail(ctx, normalized)
			switch {
			case err == nil && existing.ID != user.ID:
				return appErrors.Clone(appErrors.ErrConflict, "email already in use")
			case err != nil && !errors.Is(err, sql.ErrNoRows):
				return appErrors.Internal(err, "failed to check email")
			}
			user.Email = normalized
		}
	}
	return nil
}

func (s *UserService) save(ctx context.Context, user *models.User) error {
	if err := s.repo.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return appErrors.Clone(appErrors.ErrConflict, "email already in use")
		}
		return storeError(err, "user", "update")
	}
	return nil
}
