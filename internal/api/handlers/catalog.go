package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// HandleListProducts handles GET /v1/products with optional filters:
// q, category (repeatable), tag (repeatable), min_rating, diet
func HandleListProducts(cat *catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.FilterState{
			SearchQuery: c.Query("q"),
			Diet:        catalog.DietAll,
		}
		for _, v := range c.QueryArray("category") {
			filter.Categories = append(filter.Categories, domain.Category(v))
		}
		for _, v := range c.QueryArray("tag") {
			filter.Tags = append(filter.Tags, domain.Tag(v))
		}
		if v := c.Query("min_rating"); v != "" {
			if r, err := strconv.ParseFloat(v, 64); err == nil && r >= 0 {
				filter.MinRating = r
			}
		}
		switch strings.ToLower(c.Query("diet")) {
		case "veg":
			filter.Diet = catalog.DietVeg
		case "nonveg":
			filter.Diet = catalog.DietNonVeg
		}

		products := cat.Filter(filter)
		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"meta": gin.H{"count": len(products), "total": len(cat.List())},
		})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(cat *catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.ByID(c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data":  p,
			"image": catalog.ResolveImage(p.ID),
		})
	}
}

// HandleGetProductImage handles GET /v1/products/:id/image. Unmapped ids
// resolve to the fallback asset rather than an error.
func HandleGetProductImage(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"image": catalog.ResolveImage(c.Param("id"))})
	}
}
