package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/catalog"
	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
)

type ShopHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
	contentService services.ContentService
}

func NewShopHandler(log *logger.Logger, catalogService services.CatalogService, contentService services.ContentService) *ShopHandler {
	return &ShopHandler{
		log:            log.With("handler", "ShopHandler"),
		catalogService: catalogService,
		contentService: contentService,
	}
}

// GET /api/shop/products?category=&material=&karat=&min_price=&max_price=&sort=
func (sh *ShopHandler) ListProducts(c *gin.Context) {
	f := catalog.Filters{
		Category: c.Query("category"),
		Material: c.Query("material"),
		Karat:    c.Query("karat"),
		MinPrice: queryFloat(c, "min_price"),
		MaxPrice: queryFloat(c, "max_price"),
	}
	key := catalog.ParseSortKey(c.Query("sort"))

	products, err := sh.catalogService.ListProducts(c.Request.Context(), f, key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

// GET /api/shop/categories?type=
func (sh *ShopHandler) ListCategories(c *gin.Context) {
	categories, err := sh.contentService.CategoriesByType(c.Request.Context(), c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func queryFloat(c *gin.Context, name string) float64 {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
