package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InteractionType string

const (
	InteractionLikeTrack     InteractionType = "like_track"
	InteractionLikePlaylist  InteractionType = "like_playlist"
	InteractionPlayTrack     InteractionType = "play_track"
	InteractionFollowArtist  InteractionType = "follow_artist"
	InteractionSharePlaylist InteractionType = "share_playlist"
)

type TargetModel string

const (
	TargetTrack    TargetModel = "Track"
	TargetPlaylist TargetModel = "Playlist"
	TargetArtist   TargetModel = "Artist"
)

// Interaction is one fact in the ledger: user did <type> to <target>.
// For the like types the presence of a row is the like state itself; plays
// and shares are append-only log entries.
type Interaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Type        InteractionType    `bson:"type" json:"type"`
	TargetID    primitive.ObjectID `bson:"target_id" json:"targetId"`
	TargetModel TargetModel        `bson:"target_model" json:"targetModel"`
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *Interaction) error
	// GetOne returns (nil, nil) when no matching fact exists.
	GetOne(ctx context.Context, userID primitive.ObjectID, kind InteractionType, targetID primitive.ObjectID) (*Interaction, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// UpsertPlay keeps at most one play fact per (user, target) pair,
	// refreshing its timestamp on repeat plays.
	UpsertPlay(ctx context.Context, userID, targetID primitive.ObjectID, target TargetModel) error
}

type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type ShareResult struct {
	ShareCount int `json:"shareCount"`
}

// InteractionUsecase is the ledger-facing surface: like toggles and shares.
type InteractionUsecase interface {
	ToggleTrackLike(ctx context.Context, userID, trackID primitive.ObjectID) (*LikeResult, error)
	TogglePlaylistLike(ctx context.Context, userID, playlistID primitive.ObjectID) (*LikeResult, error)
	SharePlaylist(ctx context.Context, userID, playlistID primitive.ObjectID) (*ShareResult, error)
}
