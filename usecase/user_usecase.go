package usecase

import (
	"context"
	"log"
	"time"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userUsecase struct {
	userRepository        domain.UserRepository
	artistRepository      domain.ArtistRepository
	trackRepository       domain.TrackRepository
	playlistRepository    domain.PlaylistRepository
	interactionRepository domain.InteractionRepository
	contextTimeout        time.Duration
}

func NewUserUsecase(
	userRepository domain.UserRepository,
	artistRepository domain.ArtistRepository,
	trackRepository domain.TrackRepository,
	playlistRepository domain.PlaylistRepository,
	interactionRepository domain.InteractionRepository,
	timeout time.Duration,
) domain.UserUsecase {
	return &userUsecase{
		userRepository:        userRepository,
		artistRepository:      artistRepository,
		trackRepository:       trackRepository,
		playlistRepository:    playlistRepository,
		interactionRepository: interactionRepository,
		contextTimeout:        timeout,
	}
}

func (uu *userUsecase) GetPublicProfile(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.contextTimeout)
	defer cancel()

	user, err := uu.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildProfile(ctx, user, uu.artistRepository, uu.trackRepository, uu.playlistRepository)
}

func (uu *userUsecase) UpdateProfile(ctx context.Context, callerID, id primitive.ObjectID, req domain.UpdateProfileRequest) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.contextTimeout)
	defer cancel()

	if callerID != id {
		return nil, domain.ErrForbidden
	}

	user, err := uu.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	if req.PreferredGenres != nil {
		user.PreferredGenres = req.PreferredGenres
	}

	if err := uu.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uu *userUsecase) ToggleFollow(ctx context.Context, callerID, userID, artistID primitive.ObjectID) (*domain.FollowResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.contextTimeout)
	defer cancel()

	if callerID != userID {
		return nil, domain.ErrForbidden
	}

	user, err := uu.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := uu.artistRepository.GetByID(ctx, artistID); err != nil {
		return nil, err
	}

	following := user.IsFollowing(artistID)
	if following {
		kept := user.FollowingArtists[:0]
		for _, id := range user.FollowingArtists {
			if id != artistID {
				kept = append(kept, id)
			}
		}
		user.FollowingArtists = kept
	} else {
		user.FollowingArtists = append(user.FollowingArtists, artistID)
	}

	// The artist's follower_count is intentionally left untouched here,
	// matching the observed behavior of the original endpoint.
	if err := uu.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	if !following {
		interaction := &domain.Interaction{
			UserID:      userID,
			Type:        domain.InteractionFollowArtist,
			TargetID:    artistID,
			TargetModel: domain.TargetArtist,
		}
		if err := uu.interactionRepository.Create(ctx, interaction); err != nil {
			log.Printf("follow interaction log failed: %v", err)
		}
	}

	return &domain.FollowResult{
		Following:        !following,
		FollowingArtists: user.FollowingArtists,
	}, nil
}
