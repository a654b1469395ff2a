package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/domain/mocks"
	"github.com/fanstage/fanstage/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{
		ID:          primitive.NewObjectID(),
		Email:       "fan@example.com",
		DisplayName: "Fan",
		AccountType: domain.AccountTypeFan,
		Password:    string(hashed),
	}

	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		lu := usecase.NewLoginUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		resp, err := lu.Login(context.Background(), domain.LoginRequest{
			Email:    user.Email,
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)

		lu := usecase.NewLoginUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		_, err := lu.Login(context.Background(), domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		lu := usecase.NewLoginUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		_, err := lu.Login(context.Background(), domain.LoginRequest{
			Email:    user.Email,
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("external identity account skips password check", func(t *testing.T) {
		oauth := &domain.User{
			ID:       primitive.NewObjectID(),
			Email:    "google@example.com",
			GoogleID: "g-123",
		}
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, oauth.Email).Return(oauth, nil)

		lu := usecase.NewLoginUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		resp, err := lu.Login(context.Background(), domain.LoginRequest{
			Email:    oauth.Email,
			Password: "anything",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}
