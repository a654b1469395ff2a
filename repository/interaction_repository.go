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

type interactionRepository struct {
	database   mongo.Database
	collection string
}

func NewInteractionRepository(db mongo.Database, collection string) domain.InteractionRepository {
	return &interactionRepository{
		database:   db,
		collection: collection,
	}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	now := time.Now().UTC()
	interaction.CreatedAt = now
	interaction.UpdatedAt = now

	coll := r.database.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, interaction)
	if err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		interaction.ID = oid
	}
	return nil
}

// GetOne returns (nil, nil) when no fact matches; for like types that means
// "not currently liked".
func (r *interactionRepository) GetOne(ctx context.Context, userID primitive.ObjectID, kind domain.InteractionType, targetID primitive.ObjectID) (*domain.Interaction, error) {
	coll := r.database.Collection(r.collection)

	var interaction domain.Interaction
	err := coll.FindOne(ctx, bson.M{
		"user_id":   userID,
		"type":      kind,
		"target_id": targetID,
	}).Decode(&interaction)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	return &interaction, nil
}

func (r *interactionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.database.Collection(r.collection)
	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete interaction: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpsertPlay keeps one play fact per (user, target), refreshing updated_at on
// every repeat play. The play counter itself lives on the target document.
func (r *interactionRepository) UpsertPlay(ctx context.Context, userID, targetID primitive.ObjectID, target domain.TargetModel) error {
	now := time.Now().UTC()
	filter := bson.M{
		"user_id":   userID,
		"type":      domain.InteractionPlayTrack,
		"target_id": targetID,
	}
	update := bson.M{
		"$set": bson.M{
			"target_model": target,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	coll := r.database.Collection(r.collection)
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	result := coll.FindOneAndUpdate(ctx, filter, update, opts)
	if err := result.Err(); err != nil && !errors.Is(err, driver.ErrNoDocuments) {
		return fmt.Errorf("failed to upsert play interaction: %w", err)
	}
	return nil
}
