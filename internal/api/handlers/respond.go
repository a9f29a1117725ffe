package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

// respondError maps the typed error taxonomy to HTTP responses. Validation
// failures carry the field -> message map; nothing in this core is fatal.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": e.Fields,
		})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrInvalidPromoCode:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid promo code"})
	case *errors.ErrEmptyCart:
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
