package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmaia/sweetshop/internal/core/domain"
)

// GeoPoint is a stored GeoJSON point with the purchase-location extras.
type GeoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
	Address     string    `bson:"address,omitempty"`
	Description string    `bson:"description,omitempty"`
	InStock     bool      `bson:"inStock"`
}

// ProductDocument keeps the original collection schema: field names are the
// API names, creationDate is hidden from default reads by projection.
type ProductDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Slug              string             `bson:"slug"`
	Price             float64            `bson:"price"`
	PriceDiscount     *float64           `bson:"priceDiscount,omitempty"`
	AverageRating     float64            `bson:"averageRating"`
	RatingsQuantity   int                `bson:"ratingsQuantity"`
	Description       string             `bson:"description"`
	ProductImage      string             `bson:"productImage"`
	Images            []string           `bson:"images,omitempty"`
	PurchaseLocations []GeoPoint         `bson:"purchaseLocations,omitempty"`
	Confectioner      primitive.ObjectID `bson:"confectioner,omitempty"`
	CreationDate      time.Time          `bson:"creationDate,omitempty"`

	// Expanded relationships, attached after the query, never stored.
	ConfectionerUser *UserDocument    `bson:"-"`
	Reviews          []ReviewDocument `bson:"-"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	locations := make([]domain.Location, len(doc.PurchaseLocations))
	for i, point := range doc.PurchaseLocations {
		loc := domain.Location{
			Address:     point.Address,
			Description: point.Description,
			InStock:     point.InStock,
		}
		if len(point.Coordinates) == 2 {
			loc.Coordinates = [2]float64{point.Coordinates[0], point.Coordinates[1]}
		}
		locations[i] = loc
	}

	product := &domain.Product{
		ID:                domain.ID(doc.ID.Hex()),
		Name:              doc.Name,
		Slug:              doc.Slug,
		Price:             doc.Price,
		PriceDiscount:     doc.PriceDiscount,
		AverageRating:     doc.AverageRating,
		RatingsQuantity:   doc.RatingsQuantity,
		Description:       doc.Description,
		ProductImage:      doc.ProductImage,
		Images:            doc.Images,
		PurchaseLocations: locations,
		CreationDate:      doc.CreationDate,
	}
	if !doc.Confectioner.IsZero() {
		product.ConfectionerID = domain.ID(doc.Confectioner.Hex())
	}
	if doc.ConfectionerUser != nil {
		product.Confectioner = doc.ConfectionerUser.ToDomain()
	}
	for _, review := range doc.Reviews {
		product.Reviews = append(product.Reviews, *review.ToDomain())
	}
	return product
}

func ToGeoPoints(locations []domain.Location) []GeoPoint {
	points := make([]GeoPoint, len(locations))
	for i, loc := range locations {
		points[i] = GeoPoint{
			Type:        "Point",
			Coordinates: []float64{loc.Coordinates[0], loc.Coordinates[1]},
			Address:     loc.Address,
			Description: loc.Description,
			InStock:     loc.InStock,
		}
	}
	return points
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:              p.Name,
		Slug:              p.Slug,
		Price:             p.Price,
		PriceDiscount:     p.PriceDiscount,
		AverageRating:     p.AverageRating,
		RatingsQuantity:   p.RatingsQuantity,
		Description:       p.Description,
		ProductImage:      p.ProductImage,
		Images:            p.Images,
		PurchaseLocations: ToGeoPoints(p.PurchaseLocations),
		CreationDate:      p.CreationDate,
	}
	if p.ConfectionerID != "" {
		if objectID, err := primitive.ObjectIDFromHex(string(p.ConfectionerID)); err == nil {
			doc.Confectioner = objectID
		}
	}
	return doc
}
