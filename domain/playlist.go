package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Playlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	CreatorID   primitive.ObjectID `bson:"creator_id" json:"creatorId"`
	CreatorType AccountType        `bson:"creator_type" json:"creatorType"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	CoverImage  string             `bson:"cover_image" json:"coverImage"`

	// TrackIDs is ordered: it is the playback order.
	TrackIDs  []primitive.ObjectID `bson:"track_ids" json:"trackIds"`
	IsPublic  bool                 `bson:"is_public" json:"isPublic"`
	GenreTags []string             `bson:"genre_tags" json:"genreTags"`

	LikeCount  int `bson:"like_count" json:"likeCount"`
	PlayCount  int `bson:"play_count" json:"playCount"`
	ShareCount int `bson:"share_count" json:"shareCount"`

	// ExposureScore ranks the public feed. Derived from the three counters;
	// RefreshExposureScore must run before every persist that changed them.
	ExposureScore int `bson:"exposure_score" json:"exposureScore"`
}

// ExposureScore is the feed ranking formula: likes weigh 2, plays 1, shares 3.
func ExposureScore(likeCount, playCount, shareCount int) int {
	return likeCount*2 + playCount*1 + shareCount*3
}

func (p *Playlist) RefreshExposureScore() {
	p.ExposureScore = ExposureScore(p.LikeCount, p.PlayCount, p.ShareCount)
}

type PlaylistSort string

const (
	PlaylistSortExposureScore PlaylistSort = "exposureScore"
	PlaylistSortCreatedAt     PlaylistSort = "createdAt"
	PlaylistSortLikeCount     PlaylistSort = "likeCount"
	PlaylistSortPlayCount     PlaylistSort = "playCount"
)

type PlaylistQuery struct {
	Sort  PlaylistSort
	Limit int64
	Page  int64
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Playlist, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Playlist, error)
	Update(ctx context.Context, playlist *Playlist) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	ListPublic(ctx context.Context, query PlaylistQuery) ([]*Playlist, int64, error)
	// GetPublicByTracks returns public playlists containing any of the given
	// tracks, highest exposure first.
	GetPublicByTracks(ctx context.Context, trackIDs []primitive.ObjectID, limit int64) ([]*Playlist, error)
}

type CreatePlaylistRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	CoverImage  string               `json:"coverImage"`
	TrackIDs    []primitive.ObjectID `json:"trackIds"`
	GenreTags   []string             `json:"genreTags"`
	IsPublic    *bool                `json:"isPublic"`
}

type UpdatePlaylistRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	CoverImage  string               `json:"coverImage"`
	TrackIDs    []primitive.ObjectID `json:"trackIds"`
	GenreTags   []string             `json:"genreTags"`
	IsPublic    *bool                `json:"isPublic"`
}

type PlaylistPage struct {
	Playlists   []*Playlist `json:"playlists"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int64       `json:"currentPage"`
	Total       int64       `json:"total"`
}

// PlaylistDetail carries the playlist with its tracks resolved in playback
// order, plus the viewer's like state.
type PlaylistDetail struct {
	*Playlist
	Tracks  []*Track `json:"tracks"`
	IsLiked bool     `json:"isLiked"`
}

type PlaylistUsecase interface {
	List(ctx context.Context, query PlaylistQuery) (*PlaylistPage, error)
	Detail(ctx context.Context, id, viewerID primitive.ObjectID) (*PlaylistDetail, error)
	Create(ctx context.Context, userID primitive.ObjectID, req CreatePlaylistRequest) (*Playlist, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, req UpdatePlaylistRequest) (*Playlist, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
