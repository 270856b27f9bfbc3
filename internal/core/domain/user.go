package domain

import "time"

// User is the owning confectioner of a product. Only the public fields are
// ever attached to query results; audit fields stay in the users collection.
type User struct {
	ID    ID
	Name  string
	Email string
	Role  Role
	Photo string
}

type Review struct {
	ID           ID
	Review       string
	Rating       float64
	ProductID    ID
	UserID       ID
	CreationDate time.Time
}
