package models

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fulfillment statuses for an order. Any status from this set may follow
// any other via UpdateStatus; only cancellation is guarded (see Cancel).
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is in the fulfillment allow-list.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentStripe         PaymentMethod = "stripe"
)

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCreditCard, PaymentDebitCard,
		PaymentPaypal, PaymentStripe:
		return true
	}
	return false
}

// OrderItem is a frozen snapshot of a purchased product at order time.
// It deliberately copies name, image and unit price instead of referencing
// the Product document, so order history survives catalog edits.
type OrderItem struct {
	ProductID    string  `json:"productId" bson:"productId"`
	ProductName  string  `json:"productName" bson:"productName"`
	ProductImage string  `json:"productImage" bson:"productImage"`
	Price        float64 `json:"price" bson:"price"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	TotalPrice   float64 `json:"totalPrice" bson:"totalPrice"`
}

// ShippingAddress is the address snapshot captured at checkout.
type ShippingAddress struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Order is the aggregate stored in the 'orders' collection.
// User is nil for guest orders.
type Order struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id"`
	User        *primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`
	OrderNumber string              `json:"orderNumber" bson:"orderNumber"`
	Items       []OrderItem         `json:"items" bson:"items"`

	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`

	TotalAmount    float64 `json:"totalAmount" bson:"totalAmount"`
	ShippingCost   float64 `json:"shippingCost" bson:"shippingCost"`
	TaxAmount      float64 `json:"taxAmount" bson:"taxAmount"`
	DiscountAmount float64 `json:"discountAmount" bson:"discountAmount"`

	PaymentMethod PaymentMethod `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	Status        OrderStatus   `json:"status" bson:"status"`

	TrackingNumber     string     `json:"trackingNumber" bson:"trackingNumber"`
	Notes              string     `json:"notes,omitempty" bson:"notes,omitempty"`
	DeliveryDate       *time.Time `json:"deliveryDate,omitempty" bson:"deliveryDate,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// NewOrderNumber builds the human-readable, date-coded order number:
// ORD-YYYYMMDD-RRR with a zero-padded random 3-digit suffix.
// The suffix carries no uniqueness guarantee; the internal ObjectID is
// the identifier, this is the label customers see.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%03d", now.Format("20060102"), rand.Intn(1000))
}

// UpdateStatus moves the order to newStatus after an allow-list check and
// stamps the side-effect timestamps: cancelling stamps CancelledAt,
// delivering stamps DeliveryDate. Stamps already set are never cleared.
func (o *Order) UpdateStatus(newStatus OrderStatus, notes string) error {
	if !ValidOrderStatus(newStatus) {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, newStatus)
	}
	now := time.Now()
	o.Status = newStatus
	if notes != "" {
		o.Notes = notes
	}
	if newStatus == OrderStatusCancelled && o.CancelledAt == nil {
		o.CancelledAt = &now
	}
	if newStatus == OrderStatusDelivered && o.DeliveryDate == nil {
		o.DeliveryDate = &now
	}
	o.UpdatedAt = now
	return nil
}

// AddTracking records the tracking number and forces the order to
// 'shipped' regardless of its current status.
func (o *Order) AddTracking(trackingNumber string) {
	now := time.Now()
	o.TrackingNumber = trackingNumber
	o.Status = OrderStatusShipped
	o.UpdatedAt = now
}

// Cancel moves the order to 'cancelled' with a reason. Only orders still
// in 'pending' or 'confirmed' may be cancelled.
func (o *Order) Cancel(reason string) error {
	if o.Status != OrderStatusPending && o.Status != OrderStatusConfirmed {
		return fmt.Errorf("%w: order cannot be cancelled in status %q", ErrInvalidState, o.Status)
	}
	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.CancellationReason = reason
	o.UpdatedAt = now
	return nil
}

// TotalItems sums the quantities across all line items.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
