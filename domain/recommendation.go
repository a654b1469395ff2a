package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReasonPopularArtist  = "popular artist"
	ReasonSimilarTaste   = "fans with similar taste also liked"
	ReasonPreferredGenre = "artist in a preferred genre"
)

type ArtistRecommendation struct {
	Artist     *Artist `json:"artist"`
	Reason     string  `json:"reason"`
	MatchScore float64 `json:"matchScore"`
}

type RecommendationUsecase interface {
	// RecommendedArtists never returns an artist the user already follows.
	RecommendedArtists(ctx context.Context, userID primitive.ObjectID) ([]ArtistRecommendation, error)
	RecommendedTracks(ctx context.Context, userID primitive.ObjectID) ([]*Track, error)
}
