package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The anonymous cart path never touches the stores, so a zero Handlers
// value is enough to exercise it.

func anonymousRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// No auth middleware: every request arrives with an empty userID,
	// exactly what OptionalAuthMiddleware produces for anonymous callers.
	router.GET("/cart", h.GetCart)
	router.POST("/cart/add", h.AddToCart)
	router.PUT("/cart/update/:productId", h.UpdateCartItem)
	router.DELETE("/cart/remove/:productId", h.RemoveFromCart)
	router.DELETE("/cart/clear", h.ClearCart)
	router.GET("/wishlist", h.GetWishlist)
	router.POST("/wishlist/add", h.AddToWishlist)
	router.DELETE("/wishlist/remove/:productId", h.RemoveFromWishlist)
	return router
}

func TestAnonymousGetCartReturnsEmptyCart(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cart", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cart": []}`, w.Body.String())
}

func TestAnonymousAddToCartSucceedsWithoutPersisting(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cart/add", strings.NewReader(`{"productId":"1","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousCartMessage)
}

func TestAnonymousAddToCartStillValidatesInput(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cart/add", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnonymousUpdateCartItem(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cart/update/1", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousCartMessage)
}

func TestAnonymousUpdateCartItemRejectsNegativeQuantity(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cart/update/1", strings.NewReader(`{"quantity":-1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnonymousRemoveAndClearCart(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/cart/remove/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousCartMessage)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/cart/clear", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousCartMessage)
}

func TestAnonymousWishlist(t *testing.T) {
	router := anonymousRouter(&Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/wishlist", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"wishlist": []}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/wishlist/add", strings.NewReader(`{"productId":"3"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousWishlistMessage)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/wishlist/remove/3", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousWishlistMessage)
}

func TestCurrentUserIDRejectsMalformedHex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("userID", "not-a-hex-objectid")

	_, ok := currentUserID(c)
	assert.False(t, ok)
}
