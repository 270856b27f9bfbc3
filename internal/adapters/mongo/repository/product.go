package repository

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmaia/sweetshop/internal/adapters/mongo/document"
	"github.com/dmaia/sweetshop/internal/adapters/outbox"
	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/listing"
	"github.com/dmaia/sweetshop/internal/core/logger"
	"github.com/dmaia/sweetshop/internal/core/port"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	collection *mongo.Collection
	users      *BaseRepository[document.UserDocument]
	reviews    *BaseRepository[document.ReviewDocument]
	outbox     outbox.Repository
	tx         port.TransactionManager
}

func NewProductRepository(db *mongo.Database, outboxRepo outbox.Repository, tx port.TransactionManager) port.ProductPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		collection:     db.Collection("products"),
		users:          NewBaseRepository[document.UserDocument](db, "users"),
		reviews:        NewBaseRepository[document.ReviewDocument](db, "reviews"),
		outbox:         outboxRepo,
		tx:             tx,
	}
	// every find-style read joins the owning confectioner
	repo.expand = repo.expandConfectioners

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "products",
		})
	}

	return repo
}

func (r *ProductRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "slug", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "price", Value: 1},
				{Key: "averageRating", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "purchaseLocations.coordinates", Value: "2dsphere"}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product, event domain.Event) error {
	doc := document.ToProductDocument(product)

	err := r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		insertedID, err := r.BaseRepository.Create(txCtx, doc)
		if err != nil {
			return err
		}
		doc.ID = insertedID
		// the created event is built before the ID exists; stamp it now
		if productEvent, ok := event.(domain.ProductEvent); ok && productEvent.ProductID == "" {
			productEvent.ProductID = domain.ID(doc.ID.Hex())
			return r.insertOutbox(txCtx, productEvent)
		}
		return r.insertOutbox(txCtx, event)
	})
	if err != nil {
		return err
	}

	product.ID = domain.ID(doc.ID.Hex())
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	// read-one also expands the reviews relationship
	reviews, err := r.reviews.Find(ctx, bson.M{"product": doc.ID})
	if err != nil {
		return nil, err
	}
	doc.Reviews = reviews

	return doc.ToDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context, params listing.Params) ([]*domain.Product, error) {
	docs, err := r.FindWithParams(ctx, params)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, id domain.ID, fields map[string]any, event domain.Event) error {
	set := bson.M{}
	for field, value := range fields {
		// geo points must be stored in GeoJSON shape or the 2dsphere
		// index stops matching them
		if locations, ok := value.([]domain.Location); ok {
			set[field] = document.ToGeoPoints(locations)
			continue
		}
		set[field] = value
	}

	return r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := r.BaseRepository.Update(txCtx, string(id), set); err != nil {
			return err
		}
		return r.insertOutbox(txCtx, event)
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID, event domain.Event) error {
	return r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := r.BaseRepository.DeleteByID(txCtx, string(id)); err != nil {
			return err
		}
		return r.insertOutbox(txCtx, event)
	})
}

// WithinRadius returns products with a purchase location inside the
// spherical cap of the given angular radius (radians) around lat/lng.
func (r *ProductRepository) WithinRadius(ctx context.Context, lat, lng, radius float64) ([]*domain.Product, error) {
	filter := bson.M{
		"purchaseLocations.coordinates": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, radius},
			},
		},
	}

	docs, err := r.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].ToDomain()
	}

	return products, nil
}

// DistancesFrom ranks every product by great-circle distance from the
// reference point, scaled into the caller's unit. $geoNear emits results
// ordered nearest first.
func (r *ProductRepository) DistancesFrom(ctx context.Context, lat, lng, multiplier float64) ([]domain.ProductDistance, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{lng, lat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "distanceMultiplier", Value: multiplier},
			{Key: "key", Value: "purchaseLocations.coordinates"},
			{Key: "spherical", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "distance", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID       primitive.ObjectID `bson:"_id"`
		Name     string             `bson:"name"`
		Distance float64            `bson:"distance"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, parseError(err)
	}

	distances := make([]domain.ProductDistance, len(rows))
	for i, row := range rows {
		distances[i] = domain.ProductDistance{
			ID:       domain.ID(row.ID.Hex()),
			Name:     row.Name,
			Distance: row.Distance,
		}
	}

	return distances, nil
}

// ConfectionerStats groups the well-rated products (averageRating >= 4.5)
// per confectioner and reports count, rating totals and price statistics,
// cheapest confectioner first.
func (r *ProductRepository) ConfectionerStats(ctx context.Context) ([]domain.ConfectionerStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "averageRating", Value: bson.D{{Key: "$gte", Value: 4.5}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$toUpper", Value: bson.D{{Key: "$toString", Value: "$confectioner"}}}}},
			{Key: "numProducts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalRatings", Value: bson.D{{Key: "$sum", Value: "$ratingsQuantity"}}},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$averageRating"}}},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "minPrice", Value: bson.D{{Key: "$min", Value: "$price"}}},
			{Key: "maxPrice", Value: bson.D{{Key: "$max", Value: "$price"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "avgPrice", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Confectioner string  `bson:"_id"`
		NumProducts  int     `bson:"numProducts"`
		TotalRatings int     `bson:"totalRatings"`
		AvgRating    float64 `bson:"avgRating"`
		AvgPrice     float64 `bson:"avgPrice"`
		MinPrice     float64 `bson:"minPrice"`
		MaxPrice     float64 `bson:"maxPrice"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, parseError(err)
	}

	stats := make([]domain.ConfectionerStats, len(rows))
	for i, row := range rows {
		stats[i] = domain.ConfectionerStats{
			Confectioner: row.Confectioner,
			NumProducts:  row.NumProducts,
			TotalRatings: row.TotalRatings,
			AvgRating:    row.AvgRating,
			AvgPrice:     row.AvgPrice,
			MinPrice:     row.MinPrice,
			MaxPrice:     row.MaxPrice,
		}
	}

	return stats, nil
}

// expandConfectioners batch-loads the owning users and maps their public
// fields onto the fetched products. A reference that no longer resolves
// leaves the field nil instead of failing the read.
func (r *ProductRepository) expandConfectioners(ctx context.Context, docs []document.ProductDocument) error {
	ids := make([]primitive.ObjectID, 0, len(docs))
	seen := make(map[primitive.ObjectID]bool, len(docs))
	for i := range docs {
		if id := docs[i].Confectioner; !id.IsZero() && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	users, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]*document.UserDocument, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	for i := range docs {
		docs[i].ConfectionerUser = byID[docs[i].Confectioner]
	}

	return nil
}

func (r *ProductRepository) insertOutbox(ctx context.Context, event domain.Event) error {
	if event == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
	})
}
