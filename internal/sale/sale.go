// Package sale holds the transactional core of an in-progress sale: the
// line-item collection, the tax-aware running total, and the piece counter.
package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/kasir/internal/money"
	"github.com/noah-isme/kasir/internal/quantity"
)

var (
	// ErrIllegalQuantity is returned when adding a non-positive quantity.
	ErrIllegalQuantity = errors.New("sale: quantity must be greater than zero")
	// ErrUnitMismatch is returned when adding a quantity whose unit differs
	// from the unit of the existing line for the same product.
	ErrUnitMismatch = errors.New("sale: quantity unit differs from existing line")
	// ErrSaleClosed is returned when adding an item after the sale has been
	// finalized by a payment.
	ErrSaleClosed = errors.New("sale: sale is closed")
)

// IllegalQuantityError carries the offending quantity.
type IllegalQuantityError struct {
	Quantity quantity.Quantity
}

func (e *IllegalQuantityError) Error() string {
	return fmt.Sprintf("sale: illegal quantity %s", e.Quantity)
}

// Unwrap makes the error match ErrIllegalQuantity.
func (e *IllegalQuantityError) Unwrap() error {
	return ErrIllegalQuantity
}

// UnitMismatchError carries the product and the two conflicting units.
type UnitMismatchError struct {
	ProductID int
	Have      quantity.Unit
	Got       quantity.Unit
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("sale: product %d already sold in %q, got %q",
		e.ProductID, e.Have.Abbrev(), e.Got.Abbrev())
}

// Unwrap makes the error match ErrUnitMismatch.
func (e *UnitMismatchError) Unwrap() error {
	return ErrUnitMismatch
}

// Product is the immutable description of a product entering a sale.
type Product struct {
	ID    int
	Name  string
	Price money.Price
}

// Line is one distinct product within a sale, holding a price snapshot and
// a mutable quantity. Its identity is the product id it wraps.
type Line struct {
	product Product
	qty     quantity.Quantity
}

// Product returns the product snapshot for the line.
func (l *Line) Product() Product {
	return l.product
}

// Quantity returns the current quantity of the line.
func (l *Line) Quantity() quantity.Quantity {
	return l.qty
}

func (l *Line) addQuantity(value float64) {
	l.qty = quantity.NewWithUnit(l.qty.Value()+value, l.qty.Unit())
}

// LineView is the immutable per-line view exposed in snapshots.
type LineView struct {
	Product  Product
	Quantity quantity.Quantity
}

// Snapshot is an immutable copy of the sale state, used to build discount
// and payment inputs.
type Snapshot struct {
	ID           uuid.UUID
	Time         time.Time
	RunningTotal money.Money
	Lines        []LineView
	TotalPieces  int
}

// Sale is an in-progress sale. It is created when a sale starts, mutated
// only through AddItem, and closed once payment has been finalized. Not
// safe for concurrent use; one sale is owned by one transaction.
type Sale struct {
	id          uuid.UUID
	startedAt   time.Time
	total       money.Money
	lines       []*Line
	totalPieces int
	closed      bool
}

// New starts a sale. The timestamp is set once and never re-derived.
func New(now time.Time, currency string) *Sale {
	return &Sale{
		id:        uuid.New(),
		startedAt: now,
		total:     money.Zero(currency),
	}
}

// AddItem merges the given quantity of a product into the sale. An existing
// line for the same product id has its quantity increased, provided the
// unit matches; otherwise a new line is appended. The running total grows
// by the after-tax price times the added magnitude, and the piece counter
// by the added magnitude for piece-counted items or by one lot for weight
// and volume items. Returns a snapshot of the updated sale.
func (s *Sale) AddItem(product Product, qty quantity.Quantity) (Snapshot, error) {
	if s.closed {
		return Snapshot{}, ErrSaleClosed
	}
	if qty.Value() <= 0 {
		return Snapshot{}, &IllegalQuantityError{Quantity: qty}
	}
	if line := s.findLine(product.ID); line != nil {
		if line.Quantity().Unit() != qty.Unit() {
			return Snapshot{}, &UnitMismatchError{
				ProductID: product.ID,
				Have:      line.Quantity().Unit(),
				Got:       qty.Unit(),
			}
		}
		line.addQuantity(qty.Value())
	} else {
		s.lines = append(s.lines, &Line{product: product, qty: qty})
	}
	if qty.Unit() == quantity.Piece {
		s.totalPieces += int(qty.Value())
	} else {
		s.totalPieces++
	}
	s.total = s.total.Add(product.Price.AfterTax().MulValue(qty.Value()))
	return s.Snapshot(), nil
}

// Close makes the sale immutable. Called once payment has been finalized.
func (s *Sale) Close() {
	s.closed = true
}

// RunningTotal returns the current running total of the sale.
func (s *Sale) RunningTotal() money.Money {
	return s.total
}

// Snapshot returns an immutable copy of the sale state. Line order matches
// insertion order, which receipts rely on.
func (s *Sale) Snapshot() Snapshot {
	lines := make([]LineView, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, LineView{Product: line.product, Quantity: line.qty})
	}
	return Snapshot{
		ID:           s.id,
		Time:         s.startedAt,
		RunningTotal: s.total,
		Lines:        lines,
		TotalPieces:  s.totalPieces,
	}
}

func (s *Sale) findLine(productID int) *Line {
	for _, line := range s.lines {
		if line.product.ID == productID {
			return line
		}
	}
	return nil
}
