package usecase

import (
	"context"
	"log"
	"time"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Curator point awards. Creating a playlist earns the creator 10 points;
// each like it receives earns 5 (awarded in the interaction usecase).
const (
	pointsPlaylistCreated = 10
	pointsPlaylistLiked   = 5
)

type playlistUsecase struct {
	playlistRepository    domain.PlaylistRepository
	trackRepository       domain.TrackRepository
	userRepository        domain.UserRepository
	interactionRepository domain.InteractionRepository
	contextTimeout        time.Duration
}

func NewPlaylistUsecase(
	playlistRepository domain.PlaylistRepository,
	trackRepository domain.TrackRepository,
	userRepository domain.UserRepository,
	interactionRepository domain.InteractionRepository,
	timeout time.Duration,
) domain.PlaylistUsecase {
	return &playlistUsecase{
		playlistRepository:    playlistRepository,
		trackRepository:       trackRepository,
		userRepository:        userRepository,
		interactionRepository: interactionRepository,
		contextTimeout:        timeout,
	}
}

func (pu *playlistUsecase) List(ctx context.Context, query domain.PlaylistQuery) (*domain.PlaylistPage, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	if query.Page <= 0 {
		query.Page = 1
	}

	playlists, total, err := pu.playlistRepository.ListPublic(ctx, query)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []*domain.Playlist{}
	}

	return &domain.PlaylistPage{
		Playlists:   playlists,
		TotalPages:  totalPages(total, query.Limit),
		CurrentPage: query.Page,
		Total:       total,
	}, nil
}

func (pu *playlistUsecase) Detail(ctx context.Context, id, viewerID primitive.ObjectID) (*domain.PlaylistDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	playlist.PlayCount++
	playlist.RefreshExposureScore()
	if err := pu.playlistRepository.Update(ctx, playlist); err != nil {
		return nil, err
	}

	isLiked := false
	if !viewerID.IsZero() {
		if err := pu.interactionRepository.UpsertPlay(ctx, viewerID, playlist.ID, domain.TargetPlaylist); err != nil {
			log.Printf("play interaction log failed: %v", err)
		}
		liked, err := pu.interactionRepository.GetOne(ctx, viewerID, domain.InteractionLikePlaylist, playlist.ID)
		if err != nil {
			return nil, err
		}
		isLiked = liked != nil
	}

	tracks, err := pu.trackRepository.GetByIDs(ctx, playlist.TrackIDs)
	if err != nil {
		return nil, err
	}

	return &domain.PlaylistDetail{
		Playlist: playlist,
		Tracks:   orderTracks(playlist.TrackIDs, tracks),
		IsLiked:  isLiked,
	}, nil
}

// orderTracks restores playback order; $in queries return documents in
// arbitrary order.
func orderTracks(ids []primitive.ObjectID, tracks []*domain.Track) []*domain.Track {
	byID := make(map[primitive.ObjectID]*domain.Track, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
	}
	ordered := make([]*domain.Track, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

func (pu *playlistUsecase) Create(ctx context.Context, userID primitive.ObjectID, req domain.CreatePlaylistRequest) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	user, err := pu.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	trackIDs := req.TrackIDs
	if trackIDs == nil {
		trackIDs = []primitive.ObjectID{}
	}
	genreTags := req.GenreTags
	if genreTags == nil {
		genreTags = []string{}
	}

	playlist := &domain.Playlist{
		CreatorID:   userID,
		CreatorType: user.AccountType,
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		TrackIDs:    trackIDs,
		IsPublic:    isPublic,
		GenreTags:   genreTags,
	}
	playlist.RefreshExposureScore()
	if err := pu.playlistRepository.Create(ctx, playlist); err != nil {
		return nil, err
	}

	user.CuratorPoints += pointsPlaylistCreated
	user.RefreshCuratorLevel()
	if err := pu.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	return playlist, nil
}

func (pu *playlistUsecase) Update(ctx context.Context, userID, id primitive.ObjectID, req domain.UpdatePlaylistRequest) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist.CreatorID != userID {
		return nil, domain.ErrForbidden
	}

	if req.Title != "" {
		playlist.Title = req.Title
	}
	if req.Description != "" {
		playlist.Description = req.Description
	}
	if req.CoverImage != "" {
		playlist.CoverImage = req.CoverImage
	}
	if req.TrackIDs != nil {
		playlist.TrackIDs = req.TrackIDs
	}
	if req.GenreTags != nil {
		playlist.GenreTags = req.GenreTags
	}
	if req.IsPublic != nil {
		playlist.IsPublic = *req.IsPublic
	}

	playlist.RefreshExposureScore()
	if err := pu.playlistRepository.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (pu *playlistUsecase) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist.CreatorID != userID {
		return domain.ErrForbidden
	}
	return pu.playlistRepository.Delete(ctx, id)
}
