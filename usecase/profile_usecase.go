package usecase

import (
	"context"
	"time"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileUsecase struct {
	userRepository     domain.UserRepository
	artistRepository   domain.ArtistRepository
	trackRepository    domain.TrackRepository
	playlistRepository domain.PlaylistRepository
	contextTimeout     time.Duration
}

func NewProfileUsecase(
	userRepository domain.UserRepository,
	artistRepository domain.ArtistRepository,
	trackRepository domain.TrackRepository,
	playlistRepository domain.PlaylistRepository,
	timeout time.Duration,
) domain.ProfileUsecase {
	return &profileUsecase{
		userRepository:     userRepository,
		artistRepository:   artistRepository,
		trackRepository:    trackRepository,
		playlistRepository: playlistRepository,
		contextTimeout:     timeout,
	}
}

func (pu *profileUsecase) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	user, err := pu.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildProfile(ctx, user, pu.artistRepository, pu.trackRepository, pu.playlistRepository)
}

// buildProfile resolves the relation arrays into display summaries. Shared
// with the public user profile endpoint.
func buildProfile(
	ctx context.Context,
	user *domain.User,
	artistRepository domain.ArtistRepository,
	trackRepository domain.TrackRepository,
	playlistRepository domain.PlaylistRepository,
) (*domain.Profile, error) {
	artists, err := artistRepository.GetByIDs(ctx, user.FollowingArtists)
	if err != nil {
		return nil, err
	}
	tracks, err := trackRepository.GetByIDs(ctx, user.LikedTracks)
	if err != nil {
		return nil, err
	}
	playlists, err := playlistRepository.GetByIDs(ctx, user.LikedPlaylists)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		User:             user,
		FollowingArtists: make([]domain.ArtistSummary, 0, len(artists)),
		LikedTracks:      make([]domain.TrackSummary, 0, len(tracks)),
		LikedPlaylists:   make([]domain.PlaylistSummary, 0, len(playlists)),
	}
	for _, a := range artists {
		profile.FollowingArtists = append(profile.FollowingArtists, domain.ArtistSummary{
			ID:           a.ID,
			Name:         a.Name,
			ProfileImage: a.ProfileImage,
		})
	}
	for _, t := range tracks {
		profile.LikedTracks = append(profile.LikedTracks, domain.TrackSummary{
			ID:         t.ID,
			Title:      t.Title,
			ArtistID:   t.ArtistID,
			CoverImage: t.CoverImage,
		})
	}
	for _, p := range playlists {
		profile.LikedPlaylists = append(profile.LikedPlaylists, domain.PlaylistSummary{
			ID:         p.ID,
			Title:      p.Title,
			CoverImage: p.CoverImage,
		})
	}
	return profile, nil
}
