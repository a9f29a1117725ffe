package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/checkout"
	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// DetailsRequest is the delivery details payload for the Details step
type DetailsRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
	CookingNote string `json:"cooking_note"`
}

// PlaceOrderRequest selects a payment method and carries only that
// method's fields
type PlaceOrderRequest struct {
	Method     string `json:"method" binding:"required"`
	UPIID      string `json:"upi_id"`
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	CardName   string `json:"card_name"`
	Bank       string `json:"bank"`
}

func (r *PlaceOrderRequest) toPaymentDetails() (domain.PaymentDetails, bool) {
	switch domain.PaymentMethod(r.Method) {
	case domain.PaymentMethodUPI:
		return domain.UPIPayment{UPIID: r.UPIID}, true
	case domain.PaymentMethodCard:
		return domain.CardPayment{
			Number:     r.CardNumber,
			Expiry:     r.CardExpiry,
			CVV:        r.CardCVV,
			HolderName: r.CardName,
		}, true
	case domain.PaymentMethodNetBanking:
		return domain.NetBankingPayment{Bank: r.Bank}, true
	case domain.PaymentMethodCOD:
		return domain.CODPayment{}, true
	default:
		return nil, false
	}
}

func flowResponse(flow *checkout.Flow) gin.H {
	resp := gin.H{
		"flow_id": flow.ID().String(),
		"step":    flow.Step(),
	}
	if details, ok := flow.Details(); ok {
		resp["details"] = details
	}
	if order, ok := flow.Order(); ok {
		resp["order"] = order
	}
	return resp
}

// HandleStartCheckout handles POST /v1/checkout
func HandleStartCheckout(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, err := mgr.Start()
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, flowResponse(flow))
	}
}

// HandleGetCheckout handles GET /v1/checkout/:id
func HandleGetCheckout(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, err := lookupFlow(c, mgr, logger)
		if err != nil {
			return
		}
		c.JSON(http.StatusOK, flowResponse(flow))
	}
}

// HandleSubmitDetails handles POST /v1/checkout/:id/details
func HandleSubmitDetails(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, err := lookupFlow(c, mgr, logger)
		if err != nil {
			return
		}
		var req DetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		details := domain.CustomerDetails{
			Name:        req.Name,
			Phone:       req.Phone,
			Email:       req.Email,
			Address:     req.Address,
			City:        req.City,
			Pincode:     req.Pincode,
			CookingNote: req.CookingNote,
		}
		if err := flow.SubmitDetails(details); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, flowResponse(flow))
	}
}

// HandleCheckoutBack handles POST /v1/checkout/:id/back
func HandleCheckoutBack(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, err := lookupFlow(c, mgr, logger)
		if err != nil {
			return
		}
		if err := flow.Back(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, flowResponse(flow))
	}
}

// HandlePlaceOrder handles POST /v1/checkout/:id/order. The simulated
// gateway delay runs on the request context: a dropped connection cancels
// the pending transition and the cart keeps its items.
func HandlePlaceOrder(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, err := lookupFlow(c, mgr, logger)
		if err != nil {
			return
		}
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		pd, ok := req.toPaymentDetails()
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "validation failed",
				"fields": gin.H{"method": "Unsupported payment method"},
			})
			return
		}

		order, err := flow.PlaceOrder(c.Request.Context(), pd)
		if err != nil {
			if c.Request.Context().Err() != nil {
				// client went away mid-delay; nothing to answer
				c.Abort()
				return
			}
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"flow_id": flow.ID().String(),
			"step":    flow.Step(),
			"order":   order,
		})
	}
}

func lookupFlow(c *gin.Context, mgr *checkout.Manager, logger *zap.Logger) (*checkout.Flow, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid checkout flow id"})
		return nil, err
	}
	flow, err := mgr.Get(id)
	if err != nil {
		respondError(c, logger, err)
		return nil, err
	}
	return flow, nil
}
