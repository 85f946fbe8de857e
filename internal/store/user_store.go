package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

// UserStore wraps the 'users' collection. It is constructed once at
// startup and passed to everything that needs it; nothing holds a
// collection handle at package level.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Safe to call on every boot.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: create user indexes: %v", models.ErrPersistence, err)
	}
	return nil
}

// Insert persists a new user. Emails are stored lowercased so lookups
// stay case-insensitive; a duplicate email surfaces as ErrValidation.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: email already registered", models.ErrValidation)
		}
		return fmt.Errorf("%w: insert user: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: find user: %v", models.ErrPersistence, err)
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: no account for %s", models.ErrNotFound, email)
		}
		return nil, fmt.Errorf("%w: find user by email: %v", models.ErrPersistence, err)
	}
	return &user, nil
}

// SaveCart writes the user's embedded cart in one document update.
func (s *UserStore) SaveCart(ctx context.Context, id primitive.ObjectID, cart []models.CartItem) error {
	return s.setFields(ctx, id, bson.M{"cart": cart})
}

// SaveWishlist writes the user's embedded wishlist in one document update.
func (s *UserStore) SaveWishlist(ctx context.Context, id primitive.ObjectID, wishlist []string) error {
	return s.setFields(ctx, id, bson.M{"wishlist": wishlist})
}

// UpdateProfile overwrites the editable profile fields.
func (s *UserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, address, phone string) error {
	return s.setFields(ctx, id, bson.M{"name": name, "address": address, "phone": phone})
}

// TouchLastLogin stamps the login time.
func (s *UserStore) TouchLastLogin(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	return s.setFields(ctx, id, bson.M{"lastLogin": now})
}

func (s *UserStore) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("%w: update user: %v", models.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, id.Hex())
	}
	return nil
}
