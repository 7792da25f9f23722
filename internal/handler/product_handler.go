package handler

import (
	"net/http"

	"gramvista/internal/middleware"
	"gramvista/internal/model"
	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProductHandler handles product related requests
type ProductHandler struct {
	service service.ProductService
	log     zerolog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{service: s, log: log}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	vendor, err := middleware.CurrentVendor(c)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	var req model.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.service.Create(c.Request.Context(), vendor, req)
	if err != nil {
		respondError(c, h.log, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) GetMyProducts(c *gin.Context) {
	vendor, err := middleware.CurrentVendor(c)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	products, err := h.service.ListMine(c.Request.Context(), vendor)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) FilterProducts(c *gin.Context) {
	products, err := h.service.FilterByType(c.Request.Context(), c.Param("productType"))
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// RegisterProductRoutes registers product routes
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, vendorMW gin.HandlerFunc) {
	products := rg.Group("/product")
	{
		products.GET("/filter/:productType", h.FilterProducts)

		vendorRoutes := products.Group("")
		vendorRoutes.Use(authMW, vendorMW)
		vendorRoutes.POST("", h.CreateProduct)
		vendorRoutes.GET("", h.GetMyProducts)
	}
}
