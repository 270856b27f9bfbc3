package document

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmaia/sweetshop/internal/core/domain"
)

// UserDocument carries only the public user fields. Credential and audit
// fields stored alongside them have no struct field here, so they drop out
// on decode when users are loaded for relationship expansion.
type UserDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Role  string             `bson:"role"`
	Photo string             `bson:"photo,omitempty"`
}

func (doc UserDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *UserDocument) ToDomain() *domain.User {
	return &domain.User{
		ID:    domain.ID(doc.ID.Hex()),
		Name:  doc.Name,
		Email: doc.Email,
		Role:  domain.Role(doc.Role),
		Photo: doc.Photo,
	}
}
