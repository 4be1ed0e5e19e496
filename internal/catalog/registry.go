// Package catalog is the product-lookup collaborator. It stands in for the
// external inventory system: it answers from a canned product set and can
// simulate an outage.
package catalog

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/sale"
)

var (
	// ErrNotFound is returned when no product has the given id.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrUnavailable is returned when the inventory backend cannot be
	// reached. Distinct from ErrNotFound so callers can tell a missing
	// product from a broken lookup.
	ErrUnavailable = errors.New("catalog: inventory system unavailable")
)

// UnavailableProductID triggers a simulated backend outage on lookup.
const UnavailableProductID = 999999999

// Registry answers product lookups from a canned data set.
type Registry struct {
	products []sale.Product
	log      zerolog.Logger
}

// NewRegistry builds a registry with 100 generated products priced in the
// given currency.
func NewRegistry(currency string, log zerolog.Logger) *Registry {
	return &Registry{
		products: generateProducts(currency),
		log:      log.With().Str("component", "catalog").Logger(),
	}
}

// Exists reports whether a product with the given id is in the catalog.
func (r *Registry) Exists(id int) (bool, error) {
	product, err := r.find(id)
	if err != nil {
		return false, err
	}
	return product != nil, nil
}

// Info returns the product with the given id. Callers are expected to
// check Exists first; a miss here is ErrNotFound.
func (r *Registry) Info(id int) (sale.Product, error) {
	product, err := r.find(id)
	if err != nil {
		return sale.Product{}, err
	}
	if product == nil {
		return sale.Product{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return *product, nil
}

// Stocktake reports the finalized sale to the inventory backend. The
// canned backend only acknowledges it.
func (r *Registry) Stocktake(snapshot sale.Snapshot) {
	r.log.Info().
		Stringer("sale_id", snapshot.ID).
		Int("lines", len(snapshot.Lines)).
		Int("pieces", snapshot.TotalPieces).
		Msg("inventory updated")
}

func (r *Registry) find(id int) (*sale.Product, error) {
	if id == UnavailableProductID {
		return nil, ErrUnavailable
	}
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, nil
}

// generateProducts makes 100 products with distinct ids, names, prices and
// tax rates, standing in for the external inventory system's data.
func generateProducts(currency string) []sale.Product {
	basePrice := 1.07
	vatRates := []float64{6, 12, 25}
	first := []string{"Tasty", "Luxury", "Amazing", "Organic", "Healthy"}
	second := []string{"Chocolate", "Fruit", "Banana", "Strawberry", "Blueberry"}
	third := []string{"Cereal", "Drink", "Cookies", "Snack"}

	products := make([]sale.Product, 0, 100)
	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("%s %s %s", first[i/20], second[(i/4)%5], third[i%4])
		price := money.NewPrice(
			money.New(basePrice*float64(i+1), currency),
			vatRates[i%3],
		)
		products = append(products, sale.Product{ID: i + 1, Name: name, Price: price})
	}
	return products
}
