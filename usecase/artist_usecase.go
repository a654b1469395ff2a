package usecase

import (
	"context"
	"time"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageLimit  = 20
	artistDetailPosts = 10
	artistDetailLists = 10
)

type artistUsecase struct {
	artistRepository     domain.ArtistRepository
	artistPostRepository domain.ArtistPostRepository
	trackRepository      domain.TrackRepository
	playlistRepository   domain.PlaylistRepository
	userRepository       domain.UserRepository
	contextTimeout       time.Duration
}

func NewArtistUsecase(
	artistRepository domain.ArtistRepository,
	artistPostRepository domain.ArtistPostRepository,
	trackRepository domain.TrackRepository,
	playlistRepository domain.PlaylistRepository,
	userRepository domain.UserRepository,
	timeout time.Duration,
) domain.ArtistUsecase {
	return &artistUsecase{
		artistRepository:     artistRepository,
		artistPostRepository: artistPostRepository,
		trackRepository:      trackRepository,
		playlistRepository:   playlistRepository,
		userRepository:       userRepository,
		contextTimeout:       timeout,
	}
}

func (au *artistUsecase) List(ctx context.Context, query domain.ArtistQuery) (*domain.ArtistPage, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	if query.Page <= 0 {
		query.Page = 1
	}

	artists, total, err := au.artistRepository.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []*domain.Artist{}
	}

	return &domain.ArtistPage{
		Artists:     artists,
		TotalPages:  totalPages(total, query.Limit),
		CurrentPage: query.Page,
		Total:       total,
	}, nil
}

func (au *artistUsecase) Detail(ctx context.Context, id, viewerID primitive.ObjectID) (*domain.ArtistDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	artist, err := au.artistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tracks, err := au.trackRepository.GetByArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	posts, err := au.artistPostRepository.GetByArtist(ctx, artist.ID, artistDetailPosts)
	if err != nil {
		return nil, err
	}

	trackIDs := make([]primitive.ObjectID, 0, len(tracks))
	for _, t := range tracks {
		trackIDs = append(trackIDs, t.ID)
	}
	playlists, err := au.playlistRepository.GetPublicByTracks(ctx, trackIDs, artistDetailLists)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if !viewerID.IsZero() {
		if viewer, err := au.userRepository.GetByID(ctx, viewerID); err == nil {
			isFollowing = viewer.IsFollowing(artist.ID)
		}
	}

	if tracks == nil {
		tracks = []*domain.Track{}
	}
	if posts == nil {
		posts = []*domain.ArtistPost{}
	}
	if playlists == nil {
		playlists = []*domain.Playlist{}
	}

	return &domain.ArtistDetail{
		Artist:      artist,
		Tracks:      tracks,
		Posts:       posts,
		Playlists:   playlists,
		IsFollowing: isFollowing,
	}, nil
}

func (au *artistUsecase) CreateProfile(ctx context.Context, userID primitive.ObjectID, req domain.CreateArtistRequest) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	user, err := au.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.AccountType != domain.AccountTypeArtist {
		return nil, domain.ErrNotArtistAccount
	}

	existing, err := au.artistRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrArtistExists
	}

	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}
	artist := &domain.Artist{
		UserID:       userID,
		Name:         req.Name,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		CoverImage:   req.CoverImage,
		Genres:       genres,
		SocialLinks:  req.SocialLinks,
	}
	if err := au.artistRepository.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (au *artistUsecase) UpdateProfile(ctx context.Context, userID, artistID primitive.ObjectID, req domain.UpdateArtistRequest) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	artist, err := au.artistRepository.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if artist.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if req.Name != "" {
		artist.Name = req.Name
	}
	if req.Bio != "" {
		artist.Bio = req.Bio
	}
	if req.ProfileImage != "" {
		artist.ProfileImage = req.ProfileImage
	}
	if req.CoverImage != "" {
		artist.CoverImage = req.CoverImage
	}
	if req.Genres != nil {
		artist.Genres = req.Genres
	}
	if req.SocialLinks != (domain.SocialLinks{}) {
		artist.SocialLinks = req.SocialLinks
	}

	if err := au.artistRepository.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (au *artistUsecase) CreatePost(ctx context.Context, userID, artistID primitive.ObjectID, req domain.CreatePostRequest) (*domain.ArtistPost, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	artist, err := au.artistRepository.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if artist.UserID != userID {
		return nil, domain.ErrForbidden
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}
	post := &domain.ArtistPost{
		ArtistID: artist.ID,
		Content:  req.Content,
		Images:   images,
	}
	if err := au.artistPostRepository.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
