package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{3}$`)
	for i := 0; i < 50; i++ {
		n := NewOrderNumber(now)
		assert.Regexp(t, pattern, n)
		assert.Contains(t, n, "20250314")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	o := &Order{Status: OrderStatusPending}

	err := o.UpdateStatus("teleported", "")

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, OrderStatusPending, o.Status)
}

func TestUpdateStatusAllowsAnyKnownTransition(t *testing.T) {
	// The allow-list is permissive: delivered back to pending is legal.
	o := &Order{Status: OrderStatusDelivered}

	require.NoError(t, o.UpdateStatus(OrderStatusPending, ""))
	assert.Equal(t, OrderStatusPending, o.Status)
}

func TestUpdateStatusStampsCancelledAt(t *testing.T) {
	o := &Order{Status: OrderStatusPending}

	require.NoError(t, o.UpdateStatus(OrderStatusCancelled, "out of stock"))

	require.NotNil(t, o.CancelledAt)
	assert.Equal(t, "out of stock", o.Notes)
}

func TestUpdateStatusStampsDeliveryDateOnce(t *testing.T) {
	o := &Order{Status: OrderStatusShipped}

	require.NoError(t, o.UpdateStatus(OrderStatusDelivered, ""))
	require.NotNil(t, o.DeliveryDate)
	first := *o.DeliveryDate

	// A second pass through delivered keeps the original stamp.
	require.NoError(t, o.UpdateStatus(OrderStatusProcessing, ""))
	require.NoError(t, o.UpdateStatus(OrderStatusDelivered, ""))
	assert.Equal(t, first, *o.DeliveryDate)
}

func TestDeliveryStampSurvivesLaterCancellation(t *testing.T) {
	o := &Order{Status: OrderStatusShipped}

	require.NoError(t, o.UpdateStatus(OrderStatusDelivered, ""))
	require.NotNil(t, o.DeliveryDate)

	require.NoError(t, o.UpdateStatus(OrderStatusCancelled, ""))
	assert.NotNil(t, o.DeliveryDate)
	assert.NotNil(t, o.CancelledAt)
}

func TestCancelFromPending(t *testing.T) {
	o := &Order{Status: OrderStatusPending}

	require.NoError(t, o.Cancel("changed my mind"))

	assert.Equal(t, OrderStatusCancelled, o.Status)
	assert.Equal(t, "changed my mind", o.CancellationReason)
	assert.NotNil(t, o.CancelledAt)
}

func TestCancelFromConfirmed(t *testing.T) {
	o := &Order{Status: OrderStatusConfirmed}

	require.NoError(t, o.Cancel(""))
	assert.Equal(t, OrderStatusCancelled, o.Status)
}

func TestCancelRejectedOnceShipped(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		o := &Order{Status: status}

		err := o.Cancel("too late")

		require.ErrorIs(t, err, ErrInvalidState, "status %s", status)
		assert.Equal(t, status, o.Status)
		assert.Nil(t, o.CancelledAt)
	}
}

func TestAddTrackingForcesShipped(t *testing.T) {
	o := &Order{Status: OrderStatusPending}

	o.AddTracking("TRACK-123")

	assert.Equal(t, "TRACK-123", o.TrackingNumber)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

func TestTotalItems(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{ProductID: "1", Quantity: 2},
		{ProductID: "3", Quantity: 1},
	}}

	assert.Equal(t, 3, o.TotalItems())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentCashOnDelivery))
	assert.True(t, ValidPaymentMethod(PaymentStripe))
	assert.False(t, ValidPaymentMethod("barter"))
}
