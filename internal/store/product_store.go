package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

// ProductStore wraps the 'products' collection.
type ProductStore struct {
	col *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{col: db.Collection("products")}
}

func (s *ProductStore) Insert(ctx context.Context, product *models.Product) error {
	if _, err := s.col.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: product id %s already exists", models.ErrValidation, product.ID)
		}
		return fmt.Errorf("%w: insert product: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: product %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find product: %v", models.ErrPersistence, err)
	}
	return &product, nil
}

// List returns catalog products, optionally filtered by category and/or tag.
func (s *ProductStore) List(ctx context.Context, category, tag string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if tag != "" {
		filter["tags"] = tag
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("%w: decode products: %v", models.ErrPersistence, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Search matches the query against name and description, case-insensitive.
func (s *ProductStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: search products: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("%w: decode products: %v", models.ErrPersistence, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Update overwrites the editable catalog fields of a product.
func (s *ProductStore) Update(ctx context.Context, product *models.Product) error {
	fields := bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"price":       product.Price,
		"image":       product.Image,
		"tags":        product.Tags,
		"description": product.Description,
		"category":    product.Category,
		"updatedAt":   time.Now(),
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("%w: update product: %v", models.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: product %s", models.ErrNotFound, product.ID)
	}
	return nil
}

// ReduceStock atomically decrements stock by quantity, refusing when the
// stock on hand is lower than requested. The availability flag is derived
// in the same single-document update, so concurrent decrements can never
// drive stock negative or leave the flag stale.
func (s *ProductStore) ReduceStock(ctx context.Context, id string, quantity int) (*models.Product, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: reduce quantity must be at least 1", models.ErrValidation)
	}

	filter := bson.M{"_id": id, "stockQuantity": bson.M{"$gte": quantity}}
	update := bson.A{bson.M{"$set": bson.M{
		"stockQuantity": bson.M{"$subtract": bson.A{"$stockQuantity", quantity}},
		"inStock":       bson.M{"$gt": bson.A{bson.M{"$subtract": bson.A{"$stockQuantity", quantity}}, 0}},
		"updatedAt":     "$$NOW",
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err == nil {
		return &product, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: reduce stock: %v", models.ErrPersistence, err)
	}

	// No match: either the product is missing or the stock is short.
	if _, findErr := s.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("%w: product %s has fewer than %d units", models.ErrInsufficientStock, id, quantity)
}

// AddStock atomically increments stock by quantity and re-derives the
// availability flag.
func (s *ProductStore) AddStock(ctx context.Context, id string, quantity int) (*models.Product, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: add quantity must be at least 1", models.ErrValidation)
	}

	update := bson.A{bson.M{"$set": bson.M{
		"stockQuantity": bson.M{"$add": bson.A{"$stockQuantity", quantity}},
		"inStock":       bson.M{"$gt": bson.A{bson.M{"$add": bson.A{"$stockQuantity", quantity}}, 0}},
		"updatedAt":     "$$NOW",
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: product %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: add stock: %v", models.ErrPersistence, err)
	}
	return &product, nil
}

// Count returns the number of catalog products (used by seeding).
func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: count products: %v", models.ErrPersistence, err)
	}
	return count, nil
}
