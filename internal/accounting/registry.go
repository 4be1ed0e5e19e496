// Package accounting is the bookkeeping collaborator. The reference
// backend only acknowledges posted sales.
package accounting

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/kasir/internal/sale"
)

// Registry posts finalized sales to the external accounting system.
type Registry struct {
	log zerolog.Logger
}

// NewRegistry builds the accounting collaborator.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{log: log.With().Str("component", "accounting").Logger()}
}

// Bookkeep records the finalized sale.
func (r *Registry) Bookkeep(snapshot sale.Snapshot) {
	r.log.Info().
		Stringer("sale_id", snapshot.ID).
		Str("total", snapshot.RunningTotal.String()).
		Time("sale_time", snapshot.Time).
		Msg("sale booked")
}
