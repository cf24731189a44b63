package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/repositories"
)

// UserFinder defines the lookups needed by UserService.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByName(ctx context.Context, name string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserService handles user creation without credentials and lookups.
type UserService struct {
	finder UserFinder
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(finder UserFinder, writer UserWriter) *UserService {
	return &UserService{
		finder: finder,
		writer: writer,
	}
}

// AddUser inserts a user row without credentials and returns it with its
// generated id.
func (svc *UserService) AddUser(ctx context.Context, name, email, nickname string) (*models.UserDB, error) {
	user, err := svc.writer.Save(ctx, name, email, nickname, "")
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	return user, nil
}

// GetByName returns the first user with the given name.
func (svc *UserService) GetByName(ctx context.Context, name string) (*models.UserDB, error) {
	user, err := svc.finder.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to get user by name", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.finder.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Current returns the user a verified token subject belongs to.
func (svc *UserService) Current(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.finder.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get current user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}
