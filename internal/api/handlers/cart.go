package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
)

// AddItemRequest is the add-to-cart payload
type AddItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	WeightValue string `json:"weight_value"`
	Quantity    int    `json:"quantity"`
}

// UpdateItemRequest sets a line item's quantity exactly; 0 removes it
type UpdateItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	WeightValue string `json:"weight_value" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// PromoRequest carries a promo code to apply
type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

func cartResponse(engine *cart.Engine) gin.H {
	return gin.H{
		"cart":   engine.Snapshot(),
		"totals": engine.Totals(),
	}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(engine *cart.Engine, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

// HandleAddItem handles POST /v1/cart/items. An omitted weight selects the
// product's default; an omitted quantity means 1.
func HandleAddItem(engine *cart.Engine, cat *catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := cat.ByID(req.ProductID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		weight := product.DefaultWeight()
		if req.WeightValue != "" {
			found := false
			for _, w := range product.Weights {
				if w.Value == req.WeightValue {
					weight = w
					found = true
					break
				}
			}
			if !found {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "unknown weight for product",
				})
				return
			}
		}

		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		engine.Add(c.Request.Context(), product, weight, quantity)
		logger.Info("Item added to cart",
			zap.String("product_id", product.ID),
			zap.String("weight", weight.Value),
			zap.Int("quantity", quantity),
		)
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

// HandleUpdateItem handles PATCH /v1/cart/items
func HandleUpdateItem(engine *cart.Engine, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		engine.UpdateQuantity(c.Request.Context(), req.ProductID, req.WeightValue, req.Quantity)
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items?product_id=..&weight_value=..
func HandleRemoveItem(engine *cart.Engine, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("product_id")
		weightValue := c.Query("weight_value")
		if productID == "" || weightValue == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "product_id and weight_value are required",
			})
			return
		}
		engine.Remove(c.Request.Context(), productID, weightValue)
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(engine *cart.Engine, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine.Clear(c.Request.Context())
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

// HandleApplyPromo handles POST /v1/cart/promo
func HandleApplyPromo(engine *cart.Engine, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if err := engine.ApplyPromoCode(c.Request.Context(), req.Code); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

// HandleRemovePromo handles DELETE /v1/cart/promo
func HandleRemovePromo(engine *cart.Engine, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine.RemovePromoCode(c.Request.Context())
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}
