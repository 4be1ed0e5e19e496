package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/kasir/internal/money"
)

func TestAddAccumulates(t *testing.T) {
	r := New(money.New(10000, "SEK"))
	r.Add(money.New(225, "SEK"))
	r.Add(money.New(19.90, "SEK"))
	assert.Equal(t, "10244.90 SEK", r.Balance().String())
}
