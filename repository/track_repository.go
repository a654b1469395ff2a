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

type trackRepository struct {
	database   mongo.Database
	collection string
}

func NewTrackRepository(db mongo.Database, collection string) domain.TrackRepository {
	return &trackRepository{
		database:   db,
		collection: collection,
	}
}

func (r *trackRepository) Create(ctx context.Context, track *domain.Track) error {
	now := time.Now().UTC()
	track.CreatedAt = now
	track.UpdatedAt = now
	if track.ReleaseDate.IsZero() {
		track.ReleaseDate = now
	}

	coll := r.database.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, track)
	if err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		track.ID = oid
	}
	return nil
}

func (r *trackRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Track, error) {
	coll := r.database.Collection(r.collection)

	var track domain.Track
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&track)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}
	return &track, nil
}

func (r *trackRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Track, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *trackRepository) Update(ctx context.Context, track *domain.Track) error {
	track.UpdatedAt = time.Now().UTC()

	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, track.ID, bson.M{"$set": track})
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}
	return nil
}

func (r *trackRepository) List(ctx context.Context, query domain.TrackQuery) ([]*domain.Track, int64, error) {
	filter := bson.M{}
	if !query.ArtistID.IsZero() {
		filter["artist_id"] = query.ArtistID
	}
	if query.Genre != "" {
		filter["genre"] = query.Genre
	}
	if query.Search != "" {
		filter["title"] = bson.M{"$regex": query.Search, "$options": "i"}
	}

	sorts := map[domain.TrackSort]bson.D{
		domain.TrackSortReleaseDate: {{Key: "release_date", Value: -1}},
		domain.TrackSortPlayCount:   {{Key: "play_count", Value: -1}},
		domain.TrackSortLikeCount:   {{Key: "like_count", Value: -1}},
	}
	sort, ok := sorts[query.Sort]
	if !ok {
		sort = sorts[domain.TrackSortReleaseDate]
	}

	coll := r.database.Collection(r.collection)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tracks: %w", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip((query.Page - 1) * query.Limit).
		SetLimit(query.Limit)

	tracks, err := r.findWithOptions(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return tracks, total, nil
}

func (r *trackRepository) GetByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*domain.Track, error) {
	opts := options.Find().SetSort(bson.D{{Key: "release_date", Value: -1}})
	return r.findWithOptions(ctx, bson.M{"artist_id": artistID}, opts)
}

func (r *trackRepository) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"play_count": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to increment play count: %w", err)
	}
	return nil
}

// IncrementLikeCount applies delta atomically. Decrements carry a
// like_count > 0 filter so the counter can never go negative.
func (r *trackRepository) IncrementLikeCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["like_count"] = bson.M{"$gt": 0}
	}

	coll := r.database.Collection(r.collection)
	_, err := coll.UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"like_count": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update like count: %w", err)
	}
	return nil
}

func (r *trackRepository) GetTopByPlayCount(ctx context.Context, limit int64) ([]*domain.Track, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "play_count", Value: -1}}).
		SetLimit(limit)
	return r.findWithOptions(ctx, bson.M{}, opts)
}

func (r *trackRepository) GetNewestByArtists(ctx context.Context, artistIDs, excludeTracks []primitive.ObjectID, limit int64) ([]*domain.Track, error) {
	if len(artistIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{"artist_id": bson.M{"$in": artistIDs}}
	if len(excludeTracks) > 0 {
		filter["_id"] = bson.M{"$nin": excludeTracks}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "release_date", Value: -1}}).
		SetLimit(limit)
	return r.findWithOptions(ctx, filter, opts)
}

func (r *trackRepository) GetByGenres(ctx context.Context, genres []string, excludeTracks []primitive.ObjectID, limit int64) ([]*domain.Track, error) {
	if len(genres) == 0 {
		return nil, nil
	}

	filter := bson.M{"genre": bson.M{"$in": genres}}
	if len(excludeTracks) > 0 {
		filter["_id"] = bson.M{"$nin": excludeTracks}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "play_count", Value: -1}}).
		SetLimit(limit)
	return r.findWithOptions(ctx, filter, opts)
}

func (r *trackRepository) find(ctx context.Context, filter bson.M) ([]*domain.Track, error) {
	return r.findWithOptions(ctx, filter)
}

func (r *trackRepository) findWithOptions(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*domain.Track, error) {
	coll := r.database.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find tracks: %w", err)
	}
	defer cursor.Close(ctx)

	var tracks []*domain.Track
	if err := cursor.All(ctx, &tracks); err != nil {
		return nil, fmt.Errorf("failed to decode tracks: %w", err)
	}
	return tracks, nil
}
