package dto

type LocationRequest struct {
	Coordinates [2]float64 `json:"coordinates" binding:"required"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	InStock     bool       `json:"inStock"`
}

type CreateProductRequest struct {
	Name              string            `json:"name" binding:"required"`
	Price             float64           `json:"price" binding:"required"`
	PriceDiscount     *float64          `json:"priceDiscount"`
	Description       string            `json:"description" binding:"required"`
	ProductImage      string            `json:"productImage" binding:"required"`
	Images            []string          `json:"images"`
	PurchaseLocations []LocationRequest `json:"purchaseLocations"`
	Confectioner      string            `json:"confectioner"`
}

// UpdateProductRequest is a partial patch: only non-nil fields are applied.
// Form tags cover the multipart PATCH that carries image uploads.
type UpdateProductRequest struct {
	Name              string            `json:"name" form:"name"`
	Price             *float64          `json:"price" form:"price"`
	PriceDiscount     *float64          `json:"priceDiscount" form:"priceDiscount"`
	AverageRating     *float64          `json:"averageRating" form:"averageRating"`
	RatingsQuantity   *int              `json:"ratingsQuantity" form:"ratingsQuantity"`
	Description       *string           `json:"description" form:"description"`
	ProductImage      *string           `json:"-" form:"-"`
	Images            []string          `json:"-" form:"-"`
	PurchaseLocations []LocationRequest `json:"purchaseLocations" form:"-"`
}
