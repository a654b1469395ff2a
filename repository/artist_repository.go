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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type artistRepository struct {
	database   mongo.Database
	collection string
}

func NewArtistRepository(db mongo.Database, collection string) domain.ArtistRepository {
	return &artistRepository{
		database:   db,
		collection: collection,
	}
}

func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	now := time.Now().UTC()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	coll := r.database.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, artist)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		artist.ID = oid
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	coll := r.database.Collection(r.collection)

	var artist domain.Artist
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&artist)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return &artist, nil
}

// GetByUserID returns (nil, nil) when the user has no artist profile.
func (r *artistRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Artist, error) {
	coll := r.database.Collection(r.collection)

	var artist domain.Artist
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&artist)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artist by user: %w", err)
	}
	return &artist, nil
}

func (r *artistRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *artistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	artist.UpdatedAt = time.Now().UTC()

	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, artist.ID, bson.M{"$set": artist})
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}
	return nil
}

func (r *artistRepository) List(ctx context.Context, query domain.ArtistQuery) ([]*domain.Artist, int64, error) {
	filter := bson.M{}
	if query.Genre != "" {
		filter["genres"] = query.Genre
	}
	if query.Search != "" {
		filter["name"] = bson.M{"$regex": query.Search, "$options": "i"}
	}

	coll := r.database.Collection(r.collection)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "follower_count", Value: -1}}).
		SetSkip((query.Page - 1) * query.Limit).
		SetLimit(query.Limit)

	artists, err := r.findWithOptions(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

func (r *artistRepository) GetTopByFollowers(ctx context.Context, limit int64) ([]*domain.Artist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "follower_count", Value: -1}}).
		SetLimit(limit)
	return r.findWithOptions(ctx, bson.M{}, opts)
}

func (r *artistRepository) GetByGenres(ctx context.Context, genres []string, exclude []primitive.ObjectID, limit int64) ([]*domain.Artist, error) {
	if len(genres) == 0 {
		return nil, nil
	}

	filter := bson.M{"genres": bson.M{"$in": genres}}
	if len(exclude) > 0 {
		filter["_id"] = bson.M{"$nin": exclude}
	}

	opts := options.Find().SetLimit(limit)
	return r.findWithOptions(ctx, filter, opts)
}

func (r *artistRepository) find(ctx context.Context, filter bson.M) ([]*domain.Artist, error) {
	return r.findWithOptions(ctx, filter)
}

func (r *artistRepository) findWithOptions(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*domain.Artist, error) {
	coll := r.database.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []*domain.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("failed to decode artists: %w", err)
	}
	return artists, nil
}
