package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmaia/sweetshop/internal/core/domain"
)

type ReviewDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Review       string             `bson:"review"`
	Rating       float64            `bson:"rating"`
	Product      primitive.ObjectID `bson:"product"`
	User         primitive.ObjectID `bson:"user"`
	CreationDate time.Time          `bson:"creationDate,omitempty"`
}

func (doc ReviewDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ReviewDocument) ToDomain() *domain.Review {
	return &domain.Review{
		ID:           domain.ID(doc.ID.Hex()),
		Review:       doc.Review,
		Rating:       doc.Rating,
		ProductID:    domain.ID(doc.Product.Hex()),
		UserID:       domain.ID(doc.User.Hex()),
		CreationDate: doc.CreationDate,
	}
}
