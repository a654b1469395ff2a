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

type playlistRepository struct {
	database   mongo.Database
	collection string
}

func NewPlaylistRepository(db mongo.Database, collection string) domain.PlaylistRepository {
	return &playlistRepository{
		database:   db,
		collection: collection,
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	coll := r.database.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, playlist)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		playlist.ID = oid
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	coll := r.database.Collection(r.collection)

	var playlist domain.Playlist
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return &playlist, nil
}

func (r *playlistRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Playlist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findWithOptions(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *playlistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	playlist.UpdatedAt = time.Now().UTC()

	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, playlist.ID, bson.M{"$set": playlist})
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.database.Collection(r.collection)
	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *playlistRepository) ListPublic(ctx context.Context, query domain.PlaylistQuery) ([]*domain.Playlist, int64, error) {
	filter := bson.M{"is_public": true}

	sorts := map[domain.PlaylistSort]bson.D{
		domain.PlaylistSortExposureScore: {{Key: "exposure_score", Value: -1}, {Key: "created_at", Value: -1}},
		domain.PlaylistSortCreatedAt:     {{Key: "created_at", Value: -1}},
		domain.PlaylistSortLikeCount:     {{Key: "like_count", Value: -1}},
		domain.PlaylistSortPlayCount:     {{Key: "play_count", Value: -1}},
	}
	sort, ok := sorts[query.Sort]
	if !ok {
		sort = sorts[domain.PlaylistSortExposureScore]
	}

	coll := r.database.Collection(r.collection)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count playlists: %w", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip((query.Page - 1) * query.Limit).
		SetLimit(query.Limit)

	playlists, err := r.findWithOptions(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

func (r *playlistRepository) GetPublicByTracks(ctx context.Context, trackIDs []primitive.ObjectID, limit int64) ([]*domain.Playlist, error) {
	if len(trackIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"is_public": true,
		"track_ids": bson.M{"$in": trackIDs},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "exposure_score", Value: -1}}).
		SetLimit(limit)
	return r.findWithOptions(ctx, filter, opts)
}

func (r *playlistRepository) findWithOptions(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*domain.Playlist, error) {
	coll := r.database.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find playlists: %w", err)
	}
	defer cursor.Close(ctx)

	var playlists []*domain.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}
