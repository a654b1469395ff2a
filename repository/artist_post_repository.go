package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type artistPostRepository struct {
	database   mongo.Database
	collection string
}

func NewArtistPostRepository(db mongo.Database, collection string) domain.ArtistPostRepository {
	return &artistPostRepository{
		database:   db,
		collection: collection,
	}
}

func (r *artistPostRepository) Create(ctx context.Context, post *domain.ArtistPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	coll := r.database.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

func (r *artistPostRepository) GetByArtist(ctx context.Context, artistID primitive.ObjectID, limit int64) ([]*domain.ArtistPost, error) {
	coll := r.database.Collection(r.collection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{"artist_id": artistID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*domain.ArtistPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}
