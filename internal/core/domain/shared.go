package domain

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

type Role string

const (
	RoleUser         Role = "user"
	RoleConfectioner Role = "confectioner"
	RoleAdmin        Role = "admin"
)

type Event interface {
	GetName() string
	GetEntityName() string
}
