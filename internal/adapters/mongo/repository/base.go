package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmaia/sweetshop/internal/adapters/mongo/document"
	mongoquery "github.com/dmaia/sweetshop/internal/adapters/mongo/query"
	"github.com/dmaia/sweetshop/internal/core/listing"
	"github.com/dmaia/sweetshop/internal/core/logger"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

// ExpandFunc attaches related documents to freshly fetched ones. It is an
// explicit decorator around query execution: find-style reads run it,
// create/update/delete never do.
type ExpandFunc[T document.Document] func(ctx context.Context, docs []T) error

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
	expand     ExpandFunc[T]
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
	}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, parseError(err)
	}

	var entity T
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&entity)
	if err != nil {
		return nil, parseError(err)
	}

	if r.expand != nil {
		docs := []T{entity}
		if err := r.expand(ctx, docs); err != nil {
			return nil, err
		}
		entity = docs[0]
	}

	return &entity, nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, parseError(err)
	}

	// diagnostic only; the measurement is local to this call
	logger.Debug(ctx, "query completed", map[string]any{
		"collection":  r.collection.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
		"results":     len(entities),
	})

	if r.expand != nil {
		if err := r.expand(ctx, entities); err != nil {
			return nil, err
		}
	}

	return entities, nil
}

// FindWithParams runs a listing query: filter clauses, multi-key sort,
// projection and skip/limit all come from the parsed parameters. A page
// past the end of the collection is an empty slice, not an error.
func (r *BaseRepository[T]) FindWithParams(ctx context.Context, params listing.Params) ([]T, error) {
	filter, opts := mongoquery.Build(params)
	return r.Find(ctx, filter, opts)
}

// Create inserts the document and returns the ID assigned by the server.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return primitive.NilObjectID, parseError(err)
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, id string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return parseError(err)
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": update},
	)
	if err != nil {
		return parseError(err)
	}

	if result.MatchedCount == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	return nil
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return parseError(err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return parseError(err)
	}

	if result.DeletedCount == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	return nil
}

func parseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	if isInvalidObjectIDError(err) {
		return serviceerrors.NewInvalidRequestError("invalid ID format")
	}
	return err
}

func isInvalidObjectIDError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not a valid ObjectID")
}
