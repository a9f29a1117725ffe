package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/api"
	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
	"github.com/shettigarlolith/LittoralWEB/internal/checkout"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/internal/repository/file"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Cart: config.CartConfig{
			Store:                 config.StoreFile,
			FreeShippingThreshold: 499,
			ShippingFlatFee:       49,
		},
		Checkout: config.CheckoutConfig{ProcessingDelay: time.Millisecond},
	}
	logger := zap.NewNop()
	store := file.NewStore(filepath.Join(t.TempDir(), "cart.json"))
	cat := catalog.NewService()
	engine := cart.NewEngine(store, cat, cfg.Cart, logger)
	mgr := checkout.NewManager(engine, cfg.Checkout, logger)
	return api.NewRouter(cfg, cat, engine, mgr, logger)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rec, resp := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp["status"])
}

func TestListAndGetProducts(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := doJSON(t, router, http.MethodGet, "/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := resp["data"].([]any)
	assert.NotEmpty(t, data)

	rec, resp = doJSON(t, router, http.MethodGet, "/v1/products?q=ragi", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, len(resp["data"].([]any)), len(data))

	rec, _ = doJSON(t, router, http.MethodGet, "/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = doJSON(t, router, http.MethodGet, "/v1/products/999/image", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp["image"])
}

func TestCartLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "1", "weight_value": "500g", "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	totals := resp["totals"].(map[string]any)
	assert.Equal(t, float64(2), totals["item_count"])

	// same (product, weight) merges
	rec, resp = doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "1", "weight_value": "500g",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	totals = resp["totals"].(map[string]any)
	assert.Equal(t, float64(3), totals["item_count"])
	items := resp["cart"].(map[string]any)["items"].([]any)
	assert.Len(t, items, 1)

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "1", "weight_value": "5kg",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/cart/promo", gin.H{"code": "flat20"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/cart/promo", gin.H{"code": "BOGUS"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, resp = doJSON(t, router, http.MethodDelete, "/v1/cart/items?product_id=1&weight_value=500g", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	totals = resp["totals"].(map[string]any)
	assert.Equal(t, float64(0), totals["item_count"])
}

func TestCheckoutHappyPath(t *testing.T) {
	router := newTestRouter(t)

	// empty cart blocks checkout
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/checkout", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	_, _ = doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "2", "weight_value": "1kg", "quantity": 1,
	})

	rec, resp := doJSON(t, router, http.MethodPost, "/v1/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	flowID := resp["flow_id"].(string)
	assert.Equal(t, "details", resp["step"])

	// bad phone blocks the details step with a field error
	rec, resp = doJSON(t, router, http.MethodPost, "/v1/checkout/"+flowID+"/details", gin.H{
		"name": "Asha Narayanan", "phone": "12345", "email": "asha@example.com",
		"address": "12 Beach Road, Besant Nagar", "city": "Chennai", "pincode": "600090",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := resp["fields"].(map[string]any)
	assert.Contains(t, fields, "phone")

	rec, resp = doJSON(t, router, http.MethodPost, "/v1/checkout/"+flowID+"/details", gin.H{
		"name": "Asha Narayanan", "phone": "9876543210", "email": "asha@example.com",
		"address": "12 Beach Road, Besant Nagar", "city": "Chennai", "pincode": "600090",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payment", resp["step"])

	// UPI id without @ is blocked
	rec, resp = doJSON(t, router, http.MethodPost, "/v1/checkout/"+flowID+"/order", gin.H{
		"method": "upi", "upi_id": "abc",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp["fields"].(map[string]any), "upi_id")

	rec, resp = doJSON(t, router, http.MethodPost, "/v1/checkout/"+flowID+"/order", gin.H{
		"method": "cod",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp["step"])
	order := resp["order"].(map[string]any)
	assert.Regexp(t, `^RM\d{8}$`, order["reference"])

	// cart was cleared by the successful order
	_, resp = doJSON(t, router, http.MethodGet, "/v1/cart", nil)
	totals := resp["totals"].(map[string]any)
	assert.Equal(t, float64(0), totals["item_count"])
}

func TestCheckoutUnknownFlow(t *testing.T) {
	router := newTestRouter(t)
	rec, _ := doJSON(t, router, http.MethodGet, "/v1/checkout/0c9f9dc0-95a3-4f64-9c3a-57f51fydbadid", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/v1/checkout/0c9f9dc0-95a3-4f64-9c3a-57f51f000000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
