// Package quantity pairs a numeric magnitude with a unit of measure.
package quantity

import (
	"fmt"
	"strings"
)

// Unit is the unit of measure an item is sold by.
type Unit int

const (
	// Piece counts discrete items.
	Piece Unit = iota
	// Kilogram measures items sold by weight.
	Kilogram
	// Litre measures items sold by volume.
	Litre
)

// Abbrev returns the display abbreviation for the unit, or an empty string
// for an unknown unit.
func (u Unit) Abbrev() string {
	switch u {
	case Piece:
		return "pc"
	case Kilogram:
		return "kg"
	case Litre:
		return "l"
	default:
		return ""
	}
}

// Quantity is an immutable magnitude with a unit. The magnitude may be
// fractional for weight and volume units.
type Quantity struct {
	value float64
	unit  Unit
}

// New builds a piece-counted quantity.
func New(value float64) Quantity {
	return Quantity{value: value, unit: Piece}
}

// NewWithUnit builds a quantity in the given unit.
func NewWithUnit(value float64, unit Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

// Value returns the numeric magnitude.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the unit of measure.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Equal reports whether magnitude and unit both match.
func (q Quantity) Equal(other Quantity) bool {
	return q.value == other.value && q.unit == other.unit
}

// String renders piece quantities as whole numbers and measured quantities
// with their fractional part.
func (q Quantity) String() string {
	if q.unit == Piece {
		return fmt.Sprintf("%d %s", int(q.value), q.unit.Abbrev())
	}
	return strings.TrimSpace(fmt.Sprintf("%g %s", q.value, q.unit.Abbrev()))
}
