package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccountType string

const (
	AccountTypeFan    AccountType = "fan"
	AccountTypeArtist AccountType = "artist"
)

// CuratorLevel is the gamification tier derived from curator points.
// Ordering: seed < sprout < flower < tree < forest.
type CuratorLevel string

const (
	CuratorLevelSeed   CuratorLevel = "seed"
	CuratorLevelSprout CuratorLevel = "sprout"
	CuratorLevelFlower CuratorLevel = "flower"
	CuratorLevelTree   CuratorLevel = "tree"
	CuratorLevelForest CuratorLevel = "forest"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	Email           string      `bson:"email" json:"email"`
	DisplayName     string      `bson:"display_name" json:"displayName"`
	ProfileImage    string      `bson:"profile_image" json:"profileImage"`
	AccountType     AccountType `bson:"account_type" json:"accountType"`
	PreferredGenres []string    `bson:"preferred_genres" json:"preferredGenres"`

	CuratorLevel  CuratorLevel `bson:"curator_level" json:"curatorLevel"`
	CuratorPoints int          `bson:"curator_points" json:"curatorPoints"`

	FollowingArtists []primitive.ObjectID `bson:"following_artists" json:"followingArtists"`
	LikedTracks      []primitive.ObjectID `bson:"liked_tracks" json:"likedTracks"`
	LikedPlaylists   []primitive.ObjectID `bson:"liked_playlists" json:"likedPlaylists"`

	// Password is empty for external-identity accounts.
	Password string `bson:"password,omitempty" json:"-"`
	GoogleID string `bson:"google_id,omitempty" json:"-"`
	KakaoID  string `bson:"kakao_id,omitempty" json:"-"`
}

// CuratorLevelForPoints maps accumulated points onto the five curator bands.
// Lower thresholds are inclusive.
func CuratorLevelForPoints(points int) CuratorLevel {
	switch {
	case points >= 5000:
		return CuratorLevelForest
	case points >= 1000:
		return CuratorLevelTree
	case points >= 500:
		return CuratorLevelFlower
	case points >= 100:
		return CuratorLevelSprout
	default:
		return CuratorLevelSeed
	}
}

// RefreshCuratorLevel recomputes the level from the current points. Callers
// must invoke it after every point change, before persisting the user.
func (u *User) RefreshCuratorLevel() {
	u.CuratorLevel = CuratorLevelForPoints(u.CuratorPoints)
}

// IsFollowing reports whether artistID is in the user's following set.
func (u *User) IsFollowing(artistID primitive.ObjectID) bool {
	for _, id := range u.FollowingArtists {
		if id == artistID {
			return true
		}
	}
	return false
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error

	// Liked-set maintenance. Adds guard against duplicates ($addToSet),
	// removals are no-ops when the reference is absent ($pull).
	AddLikedTrack(ctx context.Context, userID, trackID primitive.ObjectID) error
	RemoveLikedTrack(ctx context.Context, userID, trackID primitive.ObjectID) error
	AddLikedPlaylist(ctx context.Context, userID, playlistID primitive.ObjectID) error
	RemoveLikedPlaylist(ctx context.Context, userID, playlistID primitive.ObjectID) error

	// GetByFollowedArtists returns users other than excludeID whose following
	// set intersects artistIDs.
	GetByFollowedArtists(ctx context.Context, artistIDs []primitive.ObjectID, excludeID primitive.ObjectID) ([]*User, error)
}

type UpdateProfileRequest struct {
	DisplayName     string   `json:"displayName"`
	ProfileImage    string   `json:"profileImage"`
	PreferredGenres []string `json:"preferredGenres"`
}

type FollowResult struct {
	Following        bool                 `json:"following"`
	FollowingArtists []primitive.ObjectID `json:"followingArtists"`
}

type UserUsecase interface {
	GetPublicProfile(ctx context.Context, id primitive.ObjectID) (*Profile, error)
	UpdateProfile(ctx context.Context, callerID, id primitive.ObjectID, req UpdateProfileRequest) (*User, error)
	ToggleFollow(ctx context.Context, callerID, userID, artistID primitive.ObjectID) (*FollowResult, error)
}
