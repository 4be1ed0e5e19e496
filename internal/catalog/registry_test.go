package catalog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	r := NewRegistry("SEK", zerolog.Nop())

	ok, err := r.Exists(1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Exists(101)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInfoNotFound(t *testing.T) {
	r := NewRegistry("SEK", zerolog.Nop())
	_, err := r.Info(31415)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLookupUnavailable(t *testing.T) {
	r := NewRegistry("SEK", zerolog.Nop())

	_, err := r.Exists(UnavailableProductID)
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = r.Info(UnavailableProductID)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGeneratedProducts(t *testing.T) {
	r := NewRegistry("SEK", zerolog.Nop())

	first, err := r.Info(1)
	require.NoError(t, err)
	assert.Equal(t, "Tasty Chocolate Cereal", first.Name)
	assert.Equal(t, "1.07 SEK", first.Price.BeforeTax().String())
	assert.Equal(t, 6.0, first.Price.VATRate())

	last, err := r.Info(100)
	require.NoError(t, err)
	assert.Equal(t, 100, last.ID)
	assert.Equal(t, "SEK", last.Price.BeforeTax().Currency())
}
