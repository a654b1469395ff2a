package usecase

import (
	"context"
	"log"
	"time"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// interactionUsecase is the ledger: like toggles keyed on the presence of an
// interaction row, plus share logging. Counter updates and liked-set updates
// are separate writes with no transaction; drift under concurrent toggles is
// accepted for this feature.
type interactionUsecase struct {
	interactionRepository domain.InteractionRepository
	trackRepository       domain.TrackRepository
	playlistRepository    domain.PlaylistRepository
	userRepository        domain.UserRepository
	contextTimeout        time.Duration
}

func NewInteractionUsecase(
	interactionRepository domain.InteractionRepository,
	trackRepository domain.TrackRepository,
	playlistRepository domain.PlaylistRepository,
	userRepository domain.UserRepository,
	timeout time.Duration,
) domain.InteractionUsecase {
	return &interactionUsecase{
		interactionRepository: interactionRepository,
		trackRepository:       trackRepository,
		playlistRepository:    playlistRepository,
		userRepository:        userRepository,
		contextTimeout:        timeout,
	}
}

func (iu *interactionUsecase) ToggleTrackLike(ctx context.Context, userID, trackID primitive.ObjectID) (*domain.LikeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, iu.contextTimeout)
	defer cancel()

	track, err := iu.trackRepository.GetByID(ctx, trackID)
	if err != nil {
		return nil, err
	}

	existing, err := iu.interactionRepository.GetOne(ctx, userID, domain.InteractionLikeTrack, track.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// Unlike: the row is the like state, remove it first.
		if err := iu.interactionRepository.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		if err := iu.trackRepository.IncrementLikeCount(ctx, track.ID, -1); err != nil {
			return nil, err
		}
		if err := iu.userRepository.RemoveLikedTrack(ctx, userID, track.ID); err != nil {
			return nil, err
		}

		likeCount := track.LikeCount - 1
		if likeCount < 0 {
			likeCount = 0
		}
		return &domain.LikeResult{Liked: false, LikeCount: likeCount}, nil
	}

	interaction := &domain.Interaction{
		UserID:      userID,
		Type:        domain.InteractionLikeTrack,
		TargetID:    track.ID,
		TargetModel: domain.TargetTrack,
	}
	if err := iu.interactionRepository.Create(ctx, interaction); err != nil {
		return nil, err
	}
	if err := iu.trackRepository.IncrementLikeCount(ctx, track.ID, 1); err != nil {
		return nil, err
	}
	if err := iu.userRepository.AddLikedTrack(ctx, userID, track.ID); err != nil {
		return nil, err
	}

	return &domain.LikeResult{Liked: true, LikeCount: track.LikeCount + 1}, nil
}

func (iu *interactionUsecase) TogglePlaylistLike(ctx context.Context, userID, playlistID primitive.ObjectID) (*domain.LikeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, iu.contextTimeout)
	defer cancel()

	playlist, err := iu.playlistRepository.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	existing, err := iu.interactionRepository.GetOne(ctx, userID, domain.InteractionLikePlaylist, playlist.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := iu.interactionRepository.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		playlist.LikeCount--
		if playlist.LikeCount < 0 {
			playlist.LikeCount = 0
		}
		playlist.RefreshExposureScore()
		if err := iu.playlistRepository.Update(ctx, playlist); err != nil {
			return nil, err
		}
		if err := iu.userRepository.RemoveLikedPlaylist(ctx, userID, playlist.ID); err != nil {
			return nil, err
		}
		return &domain.LikeResult{Liked: false, LikeCount: playlist.LikeCount}, nil
	}

	interaction := &domain.Interaction{
		UserID:      userID,
		Type:        domain.InteractionLikePlaylist,
		TargetID:    playlist.ID,
		TargetModel: domain.TargetPlaylist,
	}
	if err := iu.interactionRepository.Create(ctx, interaction); err != nil {
		return nil, err
	}
	playlist.LikeCount++
	playlist.RefreshExposureScore()
	if err := iu.playlistRepository.Update(ctx, playlist); err != nil {
		return nil, err
	}
	if err := iu.userRepository.AddLikedPlaylist(ctx, userID, playlist.ID); err != nil {
		return nil, err
	}

	// Receiving a like earns the playlist creator curator points.
	creator, err := iu.userRepository.GetByID(ctx, playlist.CreatorID)
	if err == nil && creator != nil {
		creator.CuratorPoints += pointsPlaylistLiked
		creator.RefreshCuratorLevel()
		if err := iu.userRepository.Update(ctx, creator); err != nil {
			return nil, err
		}
	}

	return &domain.LikeResult{Liked: true, LikeCount: playlist.LikeCount}, nil
}

func (iu *interactionUsecase) SharePlaylist(ctx context.Context, userID, playlistID primitive.ObjectID) (*domain.ShareResult, error) {
	ctx, cancel := context.WithTimeout(ctx, iu.contextTimeout)
	defer cancel()

	playlist, err := iu.playlistRepository.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	playlist.ShareCount++
	playlist.RefreshExposureScore()
	if err := iu.playlistRepository.Update(ctx, playlist); err != nil {
		return nil, err
	}

	interaction := &domain.Interaction{
		UserID:      userID,
		Type:        domain.InteractionSharePlaylist,
		TargetID:    playlist.ID,
		TargetModel: domain.TargetPlaylist,
	}
	if err := iu.interactionRepository.Create(ctx, interaction); err != nil {
		log.Printf("share interaction log failed: %v", err)
	}

	return &domain.ShareResult{ShareCount: playlist.ShareCount}, nil
}
