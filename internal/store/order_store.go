package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

// OrderStore wraps the 'orders' collection. Orders are append-only
// aggregates: they are inserted at checkout and replaced whole on status
// changes, never deleted.
type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{col: db.Collection("orders")}
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	if _, err := s.col.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("%w: insert order: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: order %s", models.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: find order: %v", models.ErrPersistence, err)
	}
	return &order, nil
}

// FindByUser returns a user's orders, newest first.
func (s *OrderStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", models.ErrPersistence, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Replace writes back a mutated order aggregate in one document update.
func (s *OrderStore) Replace(ctx context.Context, order *models.Order) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return fmt.Errorf("%w: replace order: %v", models.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: order %s", models.ErrNotFound, order.ID.Hex())
	}
	return nil
}

// StatusStat is one row of the per-status order breakdown.
type StatusStat struct {
	Status      string  `bson:"_id" json:"status"`
	Count       int64   `bson:"count" json:"count"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

// OrderStats is the aggregate summary served by the stats endpoint.
type OrderStats struct {
	TotalOrders     int64        `json:"totalOrders"`
	TotalSpent      float64      `json:"totalSpent"`
	StatusBreakdown []StatusStat `json:"statusBreakdown"`
}

// Stats groups orders by status with counts and amount sums, optionally
// scoped to one user, and adds the lifetime order count plus lifetime
// spend excluding cancelled orders.
func (s *OrderStore) Stats(ctx context.Context, userID *primitive.ObjectID) (*OrderStats, error) {
	match := bson.M{}
	if userID != nil {
		match["user"] = *userID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$status",
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate order stats: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var breakdown []StatusStat
	if err := cursor.All(ctx, &breakdown); err != nil {
		return nil, fmt.Errorf("%w: decode order stats: %v", models.ErrPersistence, err)
	}
	if breakdown == nil {
		breakdown = []StatusStat{}
	}

	stats := &OrderStats{StatusBreakdown: breakdown}
	for _, row := range breakdown {
		stats.TotalOrders += row.Count
		if row.Status != string(models.OrderStatusCancelled) {
			stats.TotalSpent += row.TotalAmount
		}
	}
	return stats, nil
}
