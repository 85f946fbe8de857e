package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CodeAdityaP/Pixel/internal/models"
	"github.com/CodeAdityaP/Pixel/internal/pricing"
)

//
// --- Order Handlers ---
//

// OrderItemInput is one client-supplied line item. The storefront sends
// a snapshot of its local cart; prices are echoed back and verified,
// not looked up, so order history is decoupled from later catalog edits.
type OrderItemInput struct {
	ProductID    string  `json:"productId" binding:"required"`
	ProductName  string  `json:"productName" binding:"required"`
	ProductImage string  `json:"productImage" binding:"required"`
	Price        float64 `json:"price" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"required,gte=1"`
	TotalPrice   float64 `json:"totalPrice" binding:"gte=0"`
}

type ShippingAddressInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	TotalAmount     float64              `json:"totalAmount" binding:"gte=0"`
	ShippingCost    float64              `json:"shippingCost" binding:"gte=0"`
	TaxAmount       float64              `json:"taxAmount" binding:"gte=0"`
	DiscountAmount  float64              `json:"discountAmount" binding:"gte=0"`
	PaymentMethod   string               `json:"paymentMethod"`
}

// CreateOrder is the handler for POST /api/orders/create
// The new order starts in 'pending' fulfillment and 'pending' payment.
// Under the "checked" stock policy each line item decrements catalog
// stock first and a shortfall rejects the whole order; under
// "best-effort" (the default) stock is left untouched at checkout.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Line totals must equal price x quantity to the cent.
	for _, item := range input.Items {
		if !pricing.LineTotalOK(item.Price, item.Quantity, item.TotalPrice) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Line total for product %s does not match price x quantity", item.ProductID),
			})
			return
		}
	}

	paymentMethod := models.PaymentMethod(input.PaymentMethod)
	if input.PaymentMethod == "" {
		paymentMethod = models.PaymentCashOnDelivery
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
		return
	}

	if h.StockPolicy == StockPolicyChecked {
		if err := h.reserveStock(c, input.Items); err != nil {
			writeError(c, err)
			return
		}
	}

	// Orders without a valid identity are guest orders.
	var owner *primitive.ObjectID
	if userID, ok := currentUserID(c); ok {
		owner = &userID
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Price:        item.Price,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		})
	}

	now := time.Now()
	order := &models.Order{
		ID:          primitive.NewObjectID(),
		User:        owner,
		OrderNumber: models.NewOrderNumber(now),
		Items:       items,
		ShippingAddress: models.ShippingAddress{
			Name:    input.ShippingAddress.Name,
			Email:   input.ShippingAddress.Email,
			Address: input.ShippingAddress.Address,
			City:    input.ShippingAddress.City,
			State:   input.ShippingAddress.State,
			ZipCode: input.ShippingAddress.ZipCode,
			Phone:   input.ShippingAddress.Phone,
		},
		TotalAmount:    input.TotalAmount,
		ShippingCost:   input.ShippingCost,
		TaxAmount:      input.TaxAmount,
		DiscountAmount: input.DiscountAmount,
		PaymentMethod:  paymentMethod,
		PaymentStatus:  models.PaymentStatusPending,
		Status:         models.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := h.Orders.Insert(c.Request.Context(), order); err != nil {
		writeError(c, err)
		return
	}

	h.Events.OrderCreated(c.Request.Context(), order)

	response := gin.H{
		"message": "Order created successfully",
		"order":   order,
	}

	// An authenticated checkout empties the server-side cart and attaches
	// the owner's details to the response.
	if owner != nil {
		if user, err := h.Users.FindByID(c.Request.Context(), *owner); err == nil {
			user.ClearCart()
			if err := h.Users.SaveCart(c.Request.Context(), *owner, user.Cart); err == nil {
				response["user"] = gin.H{"name": user.Name, "email": user.Email}
			}
		}
	}

	c.JSON(http.StatusCreated, response)
}

// reserveStock decrements stock for every line item. On a shortfall the
// earlier decrements are returned before reporting the failure; there is
// no cross-document transaction, each adjustment is atomic on its own.
func (h *Handlers) reserveStock(c *gin.Context, items []OrderItemInput) error {
	reserved := make([]OrderItemInput, 0, len(items))
	for _, item := range items {
		if _, err := h.Products.ReduceStock(c.Request.Context(), item.ProductID, item.Quantity); err != nil {
			for _, prev := range reserved {
				if _, addErr := h.Products.AddStock(c.Request.Context(), prev.ProductID, prev.Quantity); addErr != nil {
					// Leaves stock short until an admin adjusts it; log-worthy
					// but the original failure matters more to the caller.
					continue
				}
			}
			return err
		}
		reserved = append(reserved, item)
	}
	return nil
}

// GetMyOrders is the handler for GET /api/orders/my-orders
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	orders, err := h.Orders.FindByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder is the handler for GET /api/orders/:orderId
// Only the order's owner may read it.
func (h *Handlers) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.FindByID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	if order.User == nil || *order.User != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// UpdateOrderStatus is the handler for PUT /api/orders/:orderId/status
// (admin). Any status from the allow-list may follow any other; moving to
// 'cancelled' or 'delivered' stamps the corresponding timestamp, and a
// stamp once set is never cleared by later transitions.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.FindByID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := order.UpdateStatus(models.OrderStatus(input.Status), input.Notes); err != nil {
		writeError(c, err)
		return
	}

	if err := h.Orders.Replace(c.Request.Context(), order); err != nil {
		writeError(c, err)
		return
	}

	h.Events.OrderStatusUpdated(c.Request.Context(), order)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}

type CancelOrderInput struct {
	Reason string `json:"reason" binding:"max=200"`
}

// CancelOrder is the handler for PUT /api/orders/:orderId/cancel
// Only the owner may cancel, and only while the order is still
// 'pending' or 'confirmed'.
func (h *Handlers) CancelOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	var input CancelOrderInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.FindByID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	if order.User == nil || *order.User != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := order.Cancel(input.Reason); err != nil {
		writeError(c, err)
		return
	}

	if err := h.Orders.Replace(c.Request.Context(), order); err != nil {
		writeError(c, err)
		return
	}

	// A cancelled checked-mode order returns its units to the shelf.
	if h.StockPolicy == StockPolicyChecked {
		for _, item := range order.Items {
			if _, err := h.Products.AddStock(c.Request.Context(), item.ProductID, item.Quantity); err != nil {
				continue
			}
		}
	}

	h.Events.OrderStatusUpdated(c.Request.Context(), order)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}

type AddTrackingInput struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}

// AddTracking is the handler for PUT /api/orders/:orderId/tracking
// (admin). Setting a tracking number forces the order to 'shipped'
// whatever its current status.
func (h *Handlers) AddTracking(c *gin.Context) {
	var input AddTrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.FindByID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	order.AddTracking(input.TrackingNumber)

	if err := h.Orders.Replace(c.Request.Context(), order); err != nil {
		writeError(c, err)
		return
	}

	h.Events.OrderStatusUpdated(c.Request.Context(), order)

	c.JSON(http.StatusOK, gin.H{
		"message": "Tracking number added",
		"order":   order,
	})
}

// GetOrderStats is the handler for GET /api/orders/stats/summary
// Returns the caller's per-status breakdown plus lifetime order count and
// lifetime spend excluding cancelled orders.
func (h *Handlers) GetOrderStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	stats, err := h.Orders.Stats(c.Request.Context(), &userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
