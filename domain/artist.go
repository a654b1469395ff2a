package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Spotify   string `bson:"spotify,omitempty" json:"spotify,omitempty"`
}

type Artist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	// UserID links the profile to its owning account, one profile per user.
	UserID       primitive.ObjectID `bson:"user_id" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Bio          string             `bson:"bio" json:"bio"`
	ProfileImage string             `bson:"profile_image" json:"profileImage"`
	CoverImage   string             `bson:"cover_image" json:"coverImage"`
	Genres       []string           `bson:"genres" json:"genres"`
	SocialLinks  SocialLinks        `bson:"social_links" json:"socialLinks"`

	// FollowerCount is a stored ranking field. The follow toggle does not
	// maintain it (source behavior, kept as observed).
	FollowerCount int `bson:"follower_count" json:"followerCount"`
}

type ArtistQuery struct {
	Genre  string
	Search string
	Limit  int64
	Page   int64
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*Artist, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Artist, error)
	Update(ctx context.Context, artist *Artist) error

	// List filters by genre/name and pages through results sorted by
	// follower count descending.
	List(ctx context.Context, query ArtistQuery) ([]*Artist, int64, error)
	GetTopByFollowers(ctx context.Context, limit int64) ([]*Artist, error)
	GetByGenres(ctx context.Context, genres []string, exclude []primitive.ObjectID, limit int64) ([]*Artist, error)
}

type CreateArtistRequest struct {
	Name         string      `json:"name" binding:"required"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	CoverImage   string      `json:"coverImage"`
	Genres       []string    `json:"genres"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

type UpdateArtistRequest struct {
	Name         string      `json:"name"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	CoverImage   string      `json:"coverImage"`
	Genres       []string    `json:"genres"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

type ArtistPage struct {
	Artists     []*Artist `json:"artists"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int64     `json:"currentPage"`
	Total       int64     `json:"total"`
}

// ArtistDetail aggregates everything the artist page renders in one response.
type ArtistDetail struct {
	Artist      *Artist       `json:"artist"`
	Tracks      []*Track      `json:"tracks"`
	Posts       []*ArtistPost `json:"posts"`
	Playlists   []*Playlist   `json:"playlists"`
	IsFollowing bool          `json:"isFollowing"`
}

type ArtistUsecase interface {
	List(ctx context.Context, query ArtistQuery) (*ArtistPage, error)
	// Detail accepts primitive.NilObjectID as viewerID for anonymous requests.
	Detail(ctx context.Context, id, viewerID primitive.ObjectID) (*ArtistDetail, error)
	CreateProfile(ctx context.Context, userID primitive.ObjectID, req CreateArtistRequest) (*Artist, error)
	UpdateProfile(ctx context.Context, userID, artistID primitive.ObjectID, req UpdateArtistRequest) (*Artist, error)
	CreatePost(ctx context.Context, userID, artistID primitive.ObjectID, req CreatePostRequest) (*ArtistPost, error)
}
