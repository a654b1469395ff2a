package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterRequest struct {
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required,min=8"`
	DisplayName     string      `json:"displayName" binding:"required"`
	AccountType     AccountType `json:"accountType" binding:"omitempty,oneof=fan artist"`
	PreferredGenres []string    `json:"preferredGenres"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthUser struct {
	ID            primitive.ObjectID `json:"id"`
	Email         string             `json:"email"`
	DisplayName   string             `json:"displayName"`
	AccountType   AccountType        `json:"accountType"`
	CuratorLevel  CuratorLevel       `json:"curatorLevel,omitempty"`
	CuratorPoints int                `json:"curatorPoints"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type SignupUsecase interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
}

type LoginUsecase interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}

// Summary types used when relation arrays are populated into a profile.
type ArtistSummary struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	ProfileImage string             `json:"profileImage"`
}

type TrackSummary struct {
	ID         primitive.ObjectID `json:"id"`
	Title      string             `json:"title"`
	ArtistID   primitive.ObjectID `json:"artistId"`
	CoverImage string             `json:"coverImage"`
}

type PlaylistSummary struct {
	ID         primitive.ObjectID `json:"id"`
	Title      string             `json:"title"`
	CoverImage string             `json:"coverImage"`
}

// Profile is a user with the relation arrays resolved, password stripped.
type Profile struct {
	User             *User             `json:"user"`
	FollowingArtists []ArtistSummary   `json:"followingArtists"`
	LikedTracks      []TrackSummary    `json:"likedTracks"`
	LikedPlaylists   []PlaylistSummary `json:"likedPlaylists"`
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
}
