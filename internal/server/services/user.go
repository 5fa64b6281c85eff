// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and account management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/common"
	"github.com/akorchak/caseflow/internal/dbx"
	"github.com/akorchak/caseflow/internal/server/auth"
	"github.com/akorchak/caseflow/internal/server/config"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - Register: create users with hashed credentials
// - Login: verify credentials and mint an access token
// - profile reads, updates, and deletion
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
	}
}

// Register creates a new active user. Duplicate email or username yields
// ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", common.ErrorValidation)
	}
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", common.ErrorValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// Uniqueness check and insert run in one transaction so a concurrent
	// registration cannot slip between them.
	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmailOrUsername(ctx, email, username)
		if err != nil {
			return common.ErrorInternal
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		user := &models.User{Email: email, Username: username, PasswordHash: hash, IsActive: true}
		created, err = repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed access token. Unknown emails, wrong passwords, and
// deactivated accounts all produce the same ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}
	if !user.IsActive {
		return "", nil, common.ErrorUnauthorized
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	if !ok {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.ID.String(), user.Email)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Update changes the profile fields of an existing user.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, email, username *string, isActive *bool) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			return nil, fmt.Errorf("%w: invalid email format", common.ErrorValidation)
		}
		user.Email = *email
	}
	if username != nil {
		if len(*username) < 3 {
			return nil, fmt.Errorf("%w: username must be at least 3 characters", common.ErrorValidation)
		}
		user.Username = *username
	}
	if isActive != nil {
		user.IsActive = *isActive
	}
	return repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Users(s.db).Delete(ctx, id)
}
