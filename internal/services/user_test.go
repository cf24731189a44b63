package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-user-auth/internal/models"
	"github.com/sbilibin2017/gw-user-auth/internal/repositories"
	"github.com/sbilibin2017/gw-user-auth/internal/services"
)

func TestUserService_AddUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinder := services.NewMockUserFinder(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockFinder, mockWriter)
	ctx := context.Background()

	stored := &models.UserDB{ID: 1, Name: "bob", Email: "bob@example.com", Nickname: "bobby"}

	t.Run("successful add", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "bob", "bob@example.com", "bobby", "").
			Return(stored, nil)

		user, err := svc.AddUser(ctx, "bob", "bob@example.com", "bobby")
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "bob", "bob@example.com", "bobby", "").
			Return(nil, repositories.ErrEmailTaken)

		user, err := svc.AddUser(ctx, "bob", "bob@example.com", "bobby")
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("writer failure", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "bob", "bob@example.com", "bobby", "").
			Return(nil, errors.New("database error"))

		user, err := svc.AddUser(ctx, "bob", "bob@example.com", "bobby")
		assert.EqualError(t, err, "database error")
		assert.Nil(t, user)
	})
}

func TestUserService_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinder := services.NewMockUserFinder(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockFinder, mockWriter)
	ctx := context.Background()

	stored := &models.UserDB{ID: 7, Name: "bob", Email: "bob@example.com"}

	t.Run("get by name found", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByName(gomock.Any(), "bob").
			Return(stored, nil)

		user, err := svc.GetByName(ctx, "bob")
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("get by name miss", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByName(gomock.Any(), "nobody").
			Return(nil, nil)

		user, err := svc.GetByName(ctx, "nobody")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Nil(t, user)
	})

	t.Run("get by id found", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(stored, nil)

		user, err := svc.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("get by id miss", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		user, err := svc.GetByID(ctx, 404)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Nil(t, user)
	})

	t.Run("current found", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByEmail(gomock.Any(), "bob@example.com").
			Return(stored, nil)

		user, err := svc.Current(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("current miss", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByEmail(gomock.Any(), "gone@example.com").
			Return(nil, nil)

		user, err := svc.Current(ctx, "gone@example.com")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Nil(t, user)
	})

	t.Run("finder failure", func(t *testing.T) {
		mockFinder.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(nil, errors.New("database error"))

		user, err := svc.GetByID(ctx, 7)
		assert.EqualError(t, err, "database error")
		assert.Nil(t, user)
	})
}
