package ports

import "errors"

// ErrNodeNotAttached is returned when detaching a node the shelf does not hold
var ErrNodeNotAttached = errors.New("node is not attached to the shelf")

// ItemNode is a handle to one rendered catalog item. Implementations carry
// whatever per-item behavior the surface attaches (key bindings, badges,
// callbacks); a sort pass moves handles and never rebuilds them.
type ItemNode interface {
	ID() string
	Title() string
	PriceText() string

	// Position is the node's insertion position on its shelf. It does not
	// change when the node is moved.
	Position() int
}

// Shelf is the ordered container item nodes are rendered in
type Shelf interface {
	// Nodes returns the currently attached nodes in display order
	Nodes() []ItemNode

	// Detach removes node from the shelf; ownership passes to the caller
	Detach(node ItemNode) error

	// Append attaches node at the end of the shelf
	Append(node ItemNode)
}
