package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndMatches(t *testing.T) {
	var p Password
	require.NoError(t, p.Set("sw0rdfish"))
	require.NotEmpty(t, p.Hash)
	assert.NotEqual(t, "sw0rdfish", p.Hash)

	ok, err := p.Matches("sw0rdfish")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Matches("wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)
}
