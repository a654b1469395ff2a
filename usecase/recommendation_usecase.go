package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	coldStartArtists  = 10
	similarTasteLimit = 10
	genreArtistLimit  = 5
	artistRecsLimit   = 15

	coldStartTracks  = 20
	followedNewLimit = 10
	genreTrackLimit  = 10
	trackRecsLimit   = 20

	coldStartScore      = 0.5
	preferredGenreScore = 0.6
)

type recommendationUsecase struct {
	userRepository   domain.UserRepository
	artistRepository domain.ArtistRepository
	trackRepository  domain.TrackRepository
	contextTimeout   time.Duration
}

func NewRecommendationUsecase(
	userRepository domain.UserRepository,
	artistRepository domain.ArtistRepository,
	trackRepository domain.TrackRepository,
	timeout time.Duration,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		userRepository:   userRepository,
		artistRepository: artistRepository,
		trackRepository:  trackRepository,
		contextTimeout:   timeout,
	}
}

// RecommendedArtists runs collaborative filtering over following sets: users
// sharing at least one followed artist vote for the artists they follow that
// the caller does not. Falls back to follower-count popularity when the
// caller follows nobody, and pads with genre matches.
func (ru *recommendationUsecase) RecommendedArtists(ctx context.Context, userID primitive.ObjectID) ([]domain.ArtistRecommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	user, err := ru.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.FollowingArtists) == 0 {
		return ru.popularArtists(ctx)
	}

	followed := make(map[primitive.ObjectID]bool, len(user.FollowingArtists))
	for _, id := range user.FollowingArtists {
		followed[id] = true
	}

	similarUsers, err := ru.userRepository.GetByFollowedArtists(ctx, user.FollowingArtists, user.ID)
	if err != nil {
		return nil, err
	}

	counts := make(map[primitive.ObjectID]int)
	for _, other := range similarUsers {
		for _, artistID := range other.FollowingArtists {
			if !followed[artistID] {
				counts[artistID]++
			}
		}
	}

	candidates := make([]primitive.ObjectID, 0, len(counts))
	for artistID := range counts {
		candidates = append(candidates, artistID)
	}
	// Count descending, then id ascending so equal tallies order the same
	// way on every call.
	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return candidates[i].Hex() < candidates[j].Hex()
	})
	if len(candidates) > similarTasteLimit {
		candidates = candidates[:similarTasteLimit]
	}

	candidateArtists, err := ru.artistRepository.GetByIDs(ctx, candidates)
	if err != nil {
		return nil, err
	}
	artistByID := make(map[primitive.ObjectID]*domain.Artist, len(candidateArtists))
	for _, a := range candidateArtists {
		artistByID[a.ID] = a
	}

	followedArtists, err := ru.artistRepository.GetByIDs(ctx, user.FollowingArtists)
	if err != nil {
		return nil, err
	}
	genreSet := make(map[string]bool)
	genres := make([]string, 0)
	for _, a := range followedArtists {
		for _, g := range a.Genres {
			if !genreSet[g] {
				genreSet[g] = true
				genres = append(genres, g)
			}
		}
	}

	exclude := append(append([]primitive.ObjectID{}, user.FollowingArtists...), candidates...)
	genreArtists, err := ru.artistRepository.GetByGenres(ctx, genres, exclude, genreArtistLimit)
	if err != nil {
		return nil, err
	}

	recommendations := make([]domain.ArtistRecommendation, 0, len(candidates)+len(genreArtists))
	for _, artistID := range candidates {
		artist, ok := artistByID[artistID]
		if !ok {
			// Dangling reference in someone's following set.
			continue
		}
		recommendations = append(recommendations, domain.ArtistRecommendation{
			Artist:     artist,
			Reason:     domain.ReasonSimilarTaste,
			MatchScore: float64(counts[artistID]) / float64(len(similarUsers)),
		})
	}
	for _, artist := range genreArtists {
		recommendations = append(recommendations, domain.ArtistRecommendation{
			Artist:     artist,
			Reason:     domain.ReasonPreferredGenre,
			MatchScore: preferredGenreScore,
		})
	}

	if len(recommendations) > artistRecsLimit {
		recommendations = recommendations[:artistRecsLimit]
	}
	return recommendations, nil
}

func (ru *recommendationUsecase) popularArtists(ctx context.Context) ([]domain.ArtistRecommendation, error) {
	artists, err := ru.artistRepository.GetTopByFollowers(ctx, coldStartArtists)
	if err != nil {
		return nil, err
	}

	recommendations := make([]domain.ArtistRecommendation, 0, len(artists))
	for _, artist := range artists {
		recommendations = append(recommendations, domain.ArtistRecommendation{
			Artist:     artist,
			Reason:     domain.ReasonPopularArtist,
			MatchScore: coldStartScore,
		})
	}
	return recommendations, nil
}

// RecommendedTracks mixes fresh releases from followed artists with
// play-count-ranked genre matches, excluding tracks the user already liked.
// The two sub-lists are not de-duplicated against each other.
func (ru *recommendationUsecase) RecommendedTracks(ctx context.Context, userID primitive.ObjectID) ([]*domain.Track, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	user, err := ru.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.LikedTracks) == 0 {
		tracks, err := ru.trackRepository.GetTopByPlayCount(ctx, coldStartTracks)
		if err != nil {
			return nil, err
		}
		if tracks == nil {
			tracks = []*domain.Track{}
		}
		return tracks, nil
	}

	fromFollowed, err := ru.trackRepository.GetNewestByArtists(ctx, user.FollowingArtists, user.LikedTracks, followedNewLimit)
	if err != nil {
		return nil, err
	}

	likedTracks, err := ru.trackRepository.GetByIDs(ctx, user.LikedTracks)
	if err != nil {
		return nil, err
	}
	genreSet := make(map[string]bool)
	genres := make([]string, 0)
	for _, t := range likedTracks {
		if t.Genre != "" && !genreSet[t.Genre] {
			genreSet[t.Genre] = true
			genres = append(genres, t.Genre)
		}
	}

	similar, err := ru.trackRepository.GetByGenres(ctx, genres, user.LikedTracks, genreTrackLimit)
	if err != nil {
		return nil, err
	}

	tracks := make([]*domain.Track, 0, len(fromFollowed)+len(similar))
	tracks = append(tracks, fromFollowed...)
	tracks = append(tracks, similar...)
	if len(tracks) > trackRecsLimit {
		tracks = tracks[:trackRecsLimit]
	}
	return tracks, nil
}
