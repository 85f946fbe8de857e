package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User is the account document stored in the 'users' collection.
// The cart and wishlist live embedded on the user, so a single document
// update keeps each of them consistent on its own.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"` // stored lowercased, unique
	PasswordHash string             `json:"-" bson:"password"`
	Address      string             `json:"address" bson:"address"`
	Phone        string             `json:"phone" bson:"phone"`
	Role         string             `json:"role" bson:"role"` // user | admin
	IsActive     bool               `json:"isActive" bson:"isActive"`
	LastLogin    *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`

	// Invariants: Cart holds at most one entry per product id;
	// Wishlist holds no duplicate product ids.
	Cart     []CartItem `json:"cart" bson:"cart"`
	Wishlist []string   `json:"wishlist" bson:"wishlist"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
