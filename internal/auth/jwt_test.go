package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("68b1c0ffee0000000000cafe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "68b1c0ffee0000000000cafe", userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, models.ErrInvalidCredential)
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("68b1c0ffee0000000000cafe")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.ErrorIs(t, err, models.ErrInvalidCredential)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "key-one")
	token, err := GenerateToken("68b1c0ffee0000000000cafe")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "key-two")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidCredential)
}
