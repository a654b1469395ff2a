package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/internal/tokenutil"
	"golang.org/x/crypto/bcrypt"
)

type loginUsecase struct {
	userRepository    domain.UserRepository
	contextTimeout    time.Duration
	accessTokenSecret string
	accessTokenExpiry int
}

func NewLoginUsecase(userRepository domain.UserRepository, timeout time.Duration, secret string, expiryHour int) domain.LoginUsecase {
	return &loginUsecase{
		userRepository:    userRepository,
		contextTimeout:    timeout,
		accessTokenSecret: secret,
		accessTokenExpiry: expiryHour,
	}
}

func (lu *loginUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.contextTimeout)
	defer cancel()

	user, err := lu.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	// External-identity accounts carry no hash; the password check is
	// skipped for them, as the source app does.
	if user.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}

	token, err := tokenutil.CreateAccessToken(user, lu.accessTokenSecret, lu.accessTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &domain.AuthResponse{
		Token: token,
		User: domain.AuthUser{
			ID:            user.ID,
			Email:         user.Email,
			DisplayName:   user.DisplayName,
			AccountType:   user.AccountType,
			CuratorLevel:  user.CuratorLevel,
			CuratorPoints: user.CuratorPoints,
		},
	}, nil
}
