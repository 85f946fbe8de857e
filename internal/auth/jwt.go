package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

// secretKey returns the signing key, read from the environment with a
// development fallback so a fresh checkout still boots.
func secretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("your-secret-key")
}

// GenerateToken creates a new JWT for a given user ID (hex ObjectID).
func GenerateToken(userID string) (string, error) {
	// "sub" (Subject) is the standard claim for the user ID.
	// Tokens expire after 72 hours.
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string.
// It returns the user ID (subject) if the token is valid.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC scheme.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		// Expired, malformed or tampered token.
		return "", fmt.Errorf("%w: %v", models.ErrInvalidCredential, err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			return "", fmt.Errorf("%w: invalid subject claim", models.ErrInvalidCredential)
		}
		return userID, nil
	}

	return "", fmt.Errorf("%w: invalid token", models.ErrInvalidCredential)
}
