package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$29.99", "29.99"},
		{"29.99", "29.99"},
		{" $199.99 ", "199.99"},
		{"$1,299.50", "1299.5"},
		{"0", "0"},
	}
	for _, tc := range cases {
		d, err := Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, d.String(), "input %q", tc.in)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "$", "free", "$-5.00"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, models.ErrValidation, "input %q", in)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	d, err := Parse("$29.99")
	require.NoError(t, err)
	assert.Equal(t, "$29.99", Format(d))

	assert.Equal(t, "$5.00", Format(decimal.NewFromInt(5)))
}

func TestLineTotalOK(t *testing.T) {
	assert.True(t, LineTotalOK(29.99, 2, 59.98))
	assert.True(t, LineTotalOK(149.99, 1, 149.99))

	// off by more than a cent
	assert.False(t, LineTotalOK(29.99, 2, 59.90))
	assert.False(t, LineTotalOK(29.99, 3, 59.98))
}
