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

func TestAuthService_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockHasher := services.NewMockPasswordHasher(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockJWT)
	ctx := context.Background()

	stored := &models.UserDB{
		ID:           1,
		Name:         "alice",
		Email:        "alice@example.com",
		Nickname:     "al",
		PasswordHash: "hashed",
	}

	tests := []struct {
		name      string
		mockSetup func()
		wantUser  *models.UserDB
		wantErr   error
	}{
		{
			name: "successful signup",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, nil)
				mockHasher.EXPECT().
					Hash("pass123").
					Return("hashed", nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), "alice", "alice@example.com", "al", "hashed").
					Return(stored, nil)
			},
			wantUser: stored,
		},
		{
			name: "email already registered",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(stored, nil)
			},
			wantErr: services.ErrEmailAlreadyExists,
		},
		{
			name: "unique index violation on save",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, nil)
				mockHasher.EXPECT().
					Hash("pass123").
					Return("hashed", nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), "alice", "alice@example.com", "al", "hashed").
					Return(nil, repositories.ErrEmailTaken)
			},
			wantErr: services.ErrEmailAlreadyExists,
		},
		{
			name: "reader failure",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
		{
			name: "hasher failure",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, nil)
				mockHasher.EXPECT().
					Hash("pass123").
					Return("", errors.New("hash error"))
			},
			wantErr: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := svc.SignUp(ctx, "alice", "alice@example.com", "al", "pass123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockHasher := services.NewMockPasswordHasher(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockJWT)
	ctx := context.Background()

	stored := &models.UserDB{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	}

	tests := []struct {
		name      string
		mockSetup func()
		wantToken string
		wantErr   error
	}{
		{
			name: "successful login",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(stored, nil)
				mockHasher.EXPECT().
					Verify("pass123", "hashed").
					Return(true)
				mockJWT.EXPECT().
					Generate(gomock.Any(), "alice@example.com").
					Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name: "user does not exist",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name: "wrong password",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(stored, nil)
				mockHasher.EXPECT().
					Verify("pass123", "hashed").
					Return(false)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "token generation failure",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(stored, nil)
				mockHasher.EXPECT().
					Verify("pass123", "hashed").
					Return(true)
				mockJWT.EXPECT().
					Generate(gomock.Any(), "alice@example.com").
					Return("", errors.New("sign error"))
			},
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			token, err := svc.Login(ctx, "alice@example.com", "pass123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
