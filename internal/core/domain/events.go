package domain

import "time"

const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

type ProductEvent struct {
	Event      string    `json:"event"`
	ProductID  ID        `json:"productId"`
	Name       string    `json:"name,omitempty"`
	Slug       string    `json:"slug,omitempty"`
	Price      float64   `json:"price,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e ProductEvent) GetName() string       { return e.Event }
func (e ProductEvent) GetEntityName() string { return "product" }

func NewProductCreatedEvent(p *Product) ProductEvent {
	return ProductEvent{
		Event:      EventProductCreated,
		ProductID:  p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		Price:      p.Price,
		OccurredAt: time.Now(),
	}
}

func NewProductUpdatedEvent(p *Product) ProductEvent {
	return ProductEvent{
		Event:      EventProductUpdated,
		ProductID:  p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		Price:      p.Price,
		OccurredAt: time.Now(),
	}
}

func NewProductDeletedEvent(id ID) ProductEvent {
	return ProductEvent{
		Event:      EventProductDeleted,
		ProductID:  id,
		OccurredAt: time.Now(),
	}
}
