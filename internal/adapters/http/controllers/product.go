package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/sweetshop/internal/adapters/http/handlers"
	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/dto"
	"github.com/dmaia/sweetshop/internal/core/service"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
	imageService   *service.ImageService
}

func NewProductController(productService *service.ProductService, imageService *service.ImageService) *ProductController {
	return &ProductController{productService: productService, imageService: imageService}
}

type LocationResponse struct {
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	InStock     bool       `json:"inStock"`
}

type ConfectionerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Photo string `json:"photo,omitempty"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	Review       string    `json:"review"`
	Rating       float64   `json:"rating"`
	UserID       string    `json:"user"`
	CreationDate time.Time `json:"creationDate,omitempty"`
}

type ProductResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Slug              string                `json:"slug,omitempty"`
	Price             float64               `json:"price"`
	PriceDiscount     *float64              `json:"priceDiscount,omitempty"`
	AverageRating     float64               `json:"averageRating"`
	RatingsQuantity   int                   `json:"ratingsQuantity"`
	Description       string                `json:"description,omitempty"`
	ProductImage      string                `json:"productImage,omitempty"`
	Images            []string              `json:"images,omitempty"`
	PurchaseLocations []LocationResponse    `json:"purchaseLocations,omitempty"`
	Confectioner      *ConfectionerResponse `json:"confectioner,omitempty"`
	Reviews           []ReviewResponse      `json:"reviews,omitempty"`
}

type ProductListResponse struct {
	Results int               `json:"results"`
	Data    []ProductResponse `json:"data"`
}

type DistanceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

type StatsResponse struct {
	Confectioner string  `json:"confectioner"`
	NumProducts  int     `json:"numProducts"`
	TotalRatings int     `json:"totalRatings"`
	AvgRating    float64 `json:"avgRating"`
	AvgPrice     float64 `json:"avgPrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	response := ProductResponse{
		ID:              string(product.ID),
		Name:            product.Name,
		Slug:            product.Slug,
		Price:           product.Price,
		PriceDiscount:   product.PriceDiscount,
		AverageRating:   product.AverageRating,
		RatingsQuantity: product.RatingsQuantity,
		Description:     product.Description,
		ProductImage:    product.ProductImage,
		Images:          product.Images,
	}
	for _, location := range product.PurchaseLocations {
		response.PurchaseLocations = append(response.PurchaseLocations, LocationResponse{
			Coordinates: location.Coordinates,
			Address:     location.Address,
			Description: location.Description,
			InStock:     location.InStock,
		})
	}
	if product.Confectioner != nil {
		response.Confectioner = &ConfectionerResponse{
			ID:    string(product.Confectioner.ID),
			Name:  product.Confectioner.Name,
			Email: product.Confectioner.Email,
			Role:  string(product.Confectioner.Role),
			Photo: product.Confectioner.Photo,
		}
	}
	for _, review := range product.Reviews {
		response.Reviews = append(response.Reviews, ReviewResponse{
			ID:           string(review.ID),
			Review:       review.Review,
			Rating:       review.Rating,
			UserID:       string(review.UserID),
			CreationDate: review.CreationDate,
		})
	}
	return response
}

func newProductListResponse(products []*domain.Product) ProductListResponse {
	data := make([]ProductResponse, len(products))
	for i, product := range products {
		data[i] = NewProductResponse(product)
	}
	return ProductListResponse{Results: len(data), Data: data}
}

// List godoc
// @Summary     List products
// @Description Returns products filtered, sorted, projected and paginated by query parameters
// @Tags        products
// @Produce     json
// @Param       page   query    int    false "Page number"
// @Param       limit  query    int    false "Page size"
// @Param       sort   query    string false "Comma-separated sort keys, '-' prefix for descending"
// @Param       fields query    string false "Comma-separated projection allow-list"
// @Success     200    {object} ProductListResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.productService.List(c.Request.Context(), rawQueryParams(c))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductListResponse(products))
}

// TopCheap godoc
// @Summary     Top five cheap products
// @Description Returns the five best rated products, cheapest first among equals
// @Tags        products
// @Produce     json
// @Success     200 {object} ProductListResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/top-5-cheap [get]
func (pc *ProductController) TopCheap(c *gin.Context) {
	products, err := pc.productService.TopCheap(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductListResponse(products))
}

// Get godoc
// @Summary     Get product by ID
// @Description Returns a single product with its confectioner and reviews expanded
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) Get(c *gin.Context) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// Create godoc
// @Summary     Create a product
// @Description Creates a new product; the slug is derived from the name
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) Create(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// Update godoc
// @Summary     Update a product
// @Description Applies a partial update; multipart requests may carry a new cover image and up to three gallery images
// @Tags        products
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Param       id      path     string                  true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Fields to update"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     415     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [patch]
func (pc *ProductController) Update(c *gin.Context) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}

	var request dto.UpdateProductRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&request); err != nil {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
			return
		}
		if err := pc.attachUploadedImages(c, id, &request); err != nil {
			handlers.HandleError(c, err)
			return
		}
	} else {
		if err := c.ShouldBindJSON(&request); err != nil {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
			return
		}
	}

	product, err := pc.productService.Update(c.Request.Context(), domain.ID(id), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// Delete godoc
// @Summary     Delete a product
// @Description Removes a product permanently
// @Tags        products
// @Param       id path string true "Product ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) Delete(c *gin.Context) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	if err := pc.productService.Delete(c.Request.Context(), domain.ID(id)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats godoc
// @Summary     Product statistics per confectioner
// @Description Groups well-rated products by confectioner with price and rating statistics
// @Tags        products
// @Produce     json
// @Success     200 {array} StatsResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/product-stats [get]
func (pc *ProductController) Stats(c *gin.Context) {
	stats, err := pc.productService.Stats(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	response := make([]StatsResponse, len(stats))
	for i, group := range stats {
		response[i] = StatsResponse{
			Confectioner: group.Confectioner,
			NumProducts:  group.NumProducts,
			TotalRatings: group.TotalRatings,
			AvgRating:    group.AvgRating,
			AvgPrice:     group.AvgPrice,
			MinPrice:     group.MinPrice,
			MaxPrice:     group.MaxPrice,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Within godoc
// @Summary     Products within a radius
// @Description Returns products with a purchase location inside the given distance from the center point
// @Tags        products
// @Produce     json
// @Param       distance path     string true "Radius distance"
// @Param       latlng   path     string true "Center as lat,lng"
// @Param       unit     path     string true "mi or km"
// @Success     200      {object} ProductListResponse
// @Failure     400      {object} handlers.ErrorResponse
// @Failure     500      {object} handlers.ErrorResponse
// @Router      /api/v1/products/products-within/{distance}/center/{latlng}/unit/{unit} [get]
func (pc *ProductController) Within(c *gin.Context) {
	products, err := pc.productService.ProductsWithin(
		c.Request.Context(), c.Param("distance"), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductListResponse(products))
}

// Distances godoc
// @Summary     Distance ranking
// @Description Returns every product's distance from the reference point, nearest first
// @Tags        products
// @Produce     json
// @Param       latlng path     string true "Reference point as lat,lng"
// @Param       unit   path     string true "mi or km"
// @Success     200    {array}  DistanceResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /api/v1/products/distances/{latlng}/unit/{unit} [get]
func (pc *ProductController) Distances(c *gin.Context) {
	distances, err := pc.productService.Distances(c.Request.Context(), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	response := make([]DistanceResponse, len(distances))
	for i, distance := range distances {
		response[i] = DistanceResponse{
			ID:       string(distance.ID),
			Name:     distance.Name,
			Distance: distance.Distance,
		}
	}
	c.JSON(http.StatusOK, response)
}

// attachUploadedImages runs the ingestion pipeline over the multipart
// files and, when it produced filenames, attaches them to the patch.
func (pc *ProductController) attachUploadedImages(c *gin.Context, id string, request *dto.UpdateProductRequest) error {
	form, err := c.MultipartForm()
	if err != nil {
		return serviceerrors.NewInvalidRequestError(err.Error())
	}

	upload := service.ImageUpload{}
	if files := form.File["productImage"]; len(files) > 0 {
		if upload.Cover, err = readUpload(files[0]); err != nil {
			return err
		}
	}
	for _, file := range form.File["images"] {
		data, err := readUpload(file)
		if err != nil {
			return err
		}
		upload.Gallery = append(upload.Gallery, data)
	}
	if upload.Cover == nil && len(upload.Gallery) == 0 {
		return nil
	}

	images, err := pc.imageService.ProcessProductImages(c.Request.Context(), id, upload)
	if err != nil {
		return err
	}
	if images != nil {
		request.ProductImage = &images.Cover
		request.Images = images.Gallery
	}
	return nil
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}
	return data, nil
}

func rawQueryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
