package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	database   mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		database:   db,
		collection: collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	coll := r.database.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	coll := r.database.Collection(r.collection)

	var user domain.User
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no account uses the address; absence is
// an expected outcome here, not an error.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	coll := r.database.Collection(r.collection)

	var user domain.User
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()

	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, user.ID, bson.M{"$set": user})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) AddLikedTrack(ctx context.Context, userID, trackID primitive.ObjectID) error {
	return r.addToSet(ctx, userID, "liked_tracks", trackID)
}

func (r *userRepository) RemoveLikedTrack(ctx context.Context, userID, trackID primitive.ObjectID) error {
	return r.pull(ctx, userID, "liked_tracks", trackID)
}

func (r *userRepository) AddLikedPlaylist(ctx context.Context, userID, playlistID primitive.ObjectID) error {
	return r.addToSet(ctx, userID, "liked_playlists", playlistID)
}

func (r *userRepository) RemoveLikedPlaylist(ctx context.Context, userID, playlistID primitive.ObjectID) error {
	return r.pull(ctx, userID, "liked_playlists", playlistID)
}

func (r *userRepository) addToSet(ctx context.Context, userID primitive.ObjectID, field string, value primitive.ObjectID) error {
	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, userID, bson.M{
		"$addToSet": bson.M{field: value},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to add to %s: %w", field, err)
	}
	return nil
}

func (r *userRepository) pull(ctx context.Context, userID primitive.ObjectID, field string, value primitive.ObjectID) error {
	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, userID, bson.M{
		"$pull": bson.M{field: value},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to remove from %s: %w", field, err)
	}
	return nil
}

func (r *userRepository) GetByFollowedArtists(ctx context.Context, artistIDs []primitive.ObjectID, excludeID primitive.ObjectID) ([]*domain.User, error) {
	if len(artistIDs) == 0 {
		return nil, nil
	}

	coll := r.database.Collection(r.collection)
	cursor, err := coll.Find(ctx, bson.M{
		"_id":               bson.M{"$ne": excludeID},
		"following_artists": bson.M{"$in": artistIDs},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find users by followed artists: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
