package application

import (
	"errors"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// Snapshot is the result of detaching a shelf for one sort pass.
// Detached[r.Index] is the node that produced record r.
type Snapshot struct {
	Records  []domain.CatalogRecord
	Detached []ports.ItemNode

	// PriceErrs holds one error per item whose price could not be parsed.
	// Those items are still part of the pass.
	PriceErrs []error
}

// Extract reads the shelf's current nodes, detaches every one of them and
// builds their catalog records. If a detach fails, nodes already taken are
// appended back in their original order and the error is returned.
func Extract(shelf ports.Shelf) (*Snapshot, error) {
	nodes := shelf.Nodes()

	snap := &Snapshot{
		Records:  make([]domain.CatalogRecord, 0, len(nodes)),
		Detached: make([]ports.ItemNode, 0, len(nodes)),
	}

	for i, node := range nodes {
		if err := shelf.Detach(node); err != nil {
			snap.Restore(shelf)
			return nil, fmt.Errorf("detaching %s: %w", node.ID(), err)
		}
		snap.Detached = append(snap.Detached, node)

		rec, err := domain.NewCatalogRecord(node.Title(), node.PriceText(), i)
		rec.Origin = node.Position()
		if err != nil {
			snap.PriceErrs = append(snap.PriceErrs, fmt.Errorf("item %s: %w", node.ID(), err))
		}
		snap.Records = append(snap.Records, rec)
	}

	return snap, nil
}

// Reattach appends the detached nodes back in the order of sorted
func (s *Snapshot) Reattach(shelf ports.Shelf, sorted []domain.CatalogRecord) {
	for _, rec := range sorted {
		shelf.Append(s.Detached[rec.Index])
	}
}

// Restore appends the detached nodes back in their original order
func (s *Snapshot) Restore(shelf ports.Shelf) {
	for _, node := range s.Detached {
		shelf.Append(node)
	}
}

// PriceErr joins the per-item price errors, or returns nil
func (s *Snapshot) PriceErr() error {
	return errors.Join(s.PriceErrs...)
}
