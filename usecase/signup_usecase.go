package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/internal/tokenutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type signupUsecase struct {
	userRepository    domain.UserRepository
	contextTimeout    time.Duration
	accessTokenSecret string
	accessTokenExpiry int
}

func NewSignupUsecase(userRepository domain.UserRepository, timeout time.Duration, secret string, expiryHour int) domain.SignupUsecase {
	return &signupUsecase{
		userRepository:    userRepository,
		contextTimeout:    timeout,
		accessTokenSecret: secret,
		accessTokenExpiry: expiryHour,
	}
}

func (su *signupUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	existing, err := su.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = domain.AccountTypeFan
	}
	genres := req.PreferredGenres
	if genres == nil {
		genres = []string{}
	}

	user := &domain.User{
		Email:            req.Email,
		Password:         string(hashed),
		DisplayName:      req.DisplayName,
		AccountType:      accountType,
		PreferredGenres:  genres,
		CuratorLevel:     domain.CuratorLevelSeed,
		FollowingArtists: []primitive.ObjectID{},
		LikedTracks:      []primitive.ObjectID{},
		LikedPlaylists:   []primitive.ObjectID{},
	}
	if err := su.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := tokenutil.CreateAccessToken(user, su.accessTokenSecret, su.accessTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &domain.AuthResponse{
		Token: token,
		User: domain.AuthUser{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			AccountType: user.AccountType,
		},
	}, nil
}
