package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ArtistPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	ArtistID     primitive.ObjectID `bson:"artist_id" json:"artistId"`
	Content      string             `bson:"content" json:"content"`
	Images       []string           `bson:"images" json:"images"`
	LikeCount    int                `bson:"like_count" json:"likeCount"`
	CommentCount int                `bson:"comment_count" json:"commentCount"`
}

type CreatePostRequest struct {
	Content string   `json:"content" binding:"required"`
	Images  []string `json:"images"`
}

type ArtistPostRepository interface {
	Create(ctx context.Context, post *ArtistPost) error
	// GetByArtist returns the newest posts first.
	GetByArtist(ctx context.Context, artistID primitive.ObjectID, limit int64) ([]*ArtistPost, error)
}
