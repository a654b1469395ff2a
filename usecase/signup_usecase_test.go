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
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, "fan@example.com").Return(nil, nil)
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		su := usecase.NewSignupUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		resp, err := su.Register(context.Background(), domain.RegisterRequest{
			Email:       "fan@example.com",
			Password:    "password123",
			DisplayName: "Fan",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, domain.AccountTypeFan, resp.User.AccountType)

		created := mockUserRepo.Calls[1].Arguments.Get(1).(*domain.User)
		assert.Equal(t, domain.CuratorLevelSeed, created.CuratorLevel)
		assert.NotNil(t, created.FollowingArtists)
		assert.Len(t, created.FollowingArtists, 0)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{Email: "taken@example.com"}, nil)

		su := usecase.NewSignupUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		resp, err := su.Register(context.Background(), domain.RegisterRequest{
			Email:       "taken@example.com",
			Password:    "password123",
			DisplayName: "Fan",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("artist account type kept", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		su := usecase.NewSignupUsecase(mockUserRepo, 2*time.Second, "secret", 1)
		resp, err := su.Register(context.Background(), domain.RegisterRequest{
			Email:       "artist@example.com",
			Password:    "password123",
			DisplayName: "Artist",
			AccountType: domain.AccountTypeArtist,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.AccountTypeArtist, resp.User.AccountType)
	})
}
