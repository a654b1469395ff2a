package domain

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Track struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	ArtistID    primitive.ObjectID `bson:"artist_id" json:"artistId"`
	Title       string             `bson:"title" json:"title"`
	AudioURL    string             `bson:"audio_url" json:"audioUrl"`
	CoverImage  string             `bson:"cover_image" json:"coverImage"`
	Genre       string             `bson:"genre" json:"genre"`
	Duration    int                `bson:"duration" json:"duration"` // seconds
	ReleaseDate time.Time          `bson:"release_date" json:"releaseDate"`
	PlayCount   int                `bson:"play_count" json:"playCount"`
	LikeCount   int                `bson:"like_count" json:"likeCount"`
	Lyrics      string             `bson:"lyrics" json:"lyrics"`
}

type TrackSort string

const (
	TrackSortReleaseDate TrackSort = "releaseDate"
	TrackSortPlayCount   TrackSort = "playCount"
	TrackSortLikeCount   TrackSort = "likeCount"
)

type TrackQuery struct {
	ArtistID primitive.ObjectID
	Genre    string
	Search   string
	Sort     TrackSort
	Limit    int64
	Page     int64
}

type TrackRepository interface {
	Create(ctx context.Context, track *Track) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Track, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Track, error)
	Update(ctx context.Context, track *Track) error

	List(ctx context.Context, query TrackQuery) ([]*Track, int64, error)
	GetByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*Track, error)

	IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error
	// IncrementLikeCount applies delta atomically; decrements are floored at
	// zero by the filter, never producing a negative counter.
	IncrementLikeCount(ctx context.Context, id primitive.ObjectID, delta int) error

	GetTopByPlayCount(ctx context.Context, limit int64) ([]*Track, error)
	GetNewestByArtists(ctx context.Context, artistIDs, excludeTracks []primitive.ObjectID, limit int64) ([]*Track, error)
	GetByGenres(ctx context.Context, genres []string, excludeTracks []primitive.ObjectID, limit int64) ([]*Track, error)
}

type CreateTrackRequest struct {
	Title      string `json:"title" binding:"required"`
	AudioURL   string `json:"audioUrl" binding:"required"`
	CoverImage string `json:"coverImage"`
	Genre      string `json:"genre" binding:"required"`
	Duration   int    `json:"duration" binding:"required,gt=0"`
	Lyrics     string `json:"lyrics"`
}

// UploadTrackRequest carries the multipart form fields of an audio upload.
// Title and Genre may be left blank; embedded tags fill them in when present.
type UploadTrackRequest struct {
	Title      string
	Genre      string
	Duration   int
	CoverImage string
	Lyrics     string
	Filename   string
}

type TrackPage struct {
	Tracks      []*Track `json:"tracks"`
	TotalPages  int64    `json:"totalPages"`
	CurrentPage int64    `json:"currentPage"`
	Total       int64    `json:"total"`
}

type TrackDetail struct {
	*Track
	IsLiked bool `json:"isLiked"`
}

type TrackUsecase interface {
	List(ctx context.Context, query TrackQuery) (*TrackPage, error)
	// Detail increments the play counter and, for authenticated viewers,
	// records the play in the interaction ledger.
	Detail(ctx context.Context, id, viewerID primitive.ObjectID) (*TrackDetail, error)
	Create(ctx context.Context, userID primitive.ObjectID, req CreateTrackRequest) (*Track, error)
	Upload(ctx context.Context, userID primitive.ObjectID, req UploadTrackRequest, file io.Reader) (*Track, error)
}
