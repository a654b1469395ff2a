package mongo

import (
	"context"
	"fmt"

	"github.com/fanstage/fanstage/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Safe to call
// on every startup; existing indexes are left alone by the driver.
func EnsureIndexes(ctx context.Context, db Database) error {
	indexes := map[string][]mongo.IndexModel{
		domain.CollectionUser: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		domain.CollectionArtist: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "follower_count", Value: -1}}},
			{Keys: bson.D{{Key: "genres", Value: 1}}},
		},
		domain.CollectionTrack: {
			{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "release_date", Value: -1}}},
			{Keys: bson.D{{Key: "genre", Value: 1}, {Key: "play_count", Value: -1}}},
		},
		domain.CollectionPlaylist: {
			{Keys: bson.D{{Key: "is_public", Value: 1}, {Key: "exposure_score", Value: -1}}},
			{Keys: bson.D{{Key: "track_ids", Value: 1}}},
		},
		domain.CollectionInteraction: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}}},
			{Keys: bson.D{{Key: "target_id", Value: 1}, {Key: "type", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
