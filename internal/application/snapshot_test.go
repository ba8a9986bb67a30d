package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/adapters/memory"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

func TestExtract(t *testing.T) {
	shelf := memory.NewProductShelf([]domain.Product{
		{ID: "b", Title: "Banana", PriceText: "$30"},
		{ID: "a", Title: "Apple", PriceText: "$10"},
		{ID: "x", Title: "Mystery", PriceText: "consultar"},
	})
	before := shelf.Nodes()

	snap, err := Extract(shelf)
	require.NoError(t, err)

	assert.Equal(t, 0, shelf.Len(), "shelf is empty during the pass")
	require.Len(t, snap.Records, 3)
	require.Len(t, snap.Detached, 3)

	for i, rec := range snap.Records {
		assert.Equal(t, i, rec.Index)
		assert.Same(t, before[i], snap.Detached[rec.Index])
	}
	assert.Equal(t, "banana", snap.Records[0].Title)
	assert.True(t, snap.Records[1].PriceOK)
	assert.False(t, snap.Records[2].PriceOK)

	require.Len(t, snap.PriceErrs, 1)
	assert.ErrorIs(t, snap.PriceErr(), domain.ErrInvalidPriceText)
	assert.Contains(t, snap.PriceErr().Error(), "item x")
}

func TestExtract_EmptyShelf(t *testing.T) {
	snap, err := Extract(memory.NewShelf())
	require.NoError(t, err)
	assert.Empty(t, snap.Records)
	assert.NoError(t, snap.PriceErr())
}

// stuckShelf refuses to detach one node
type stuckShelf struct {
	*memory.Shelf
	stuck ports.ItemNode
}

var errStuck = errors.New("stuck")

func (s *stuckShelf) Detach(n ports.ItemNode) error {
	if n == s.stuck {
		return errStuck
	}
	return s.Shelf.Detach(n)
}

func TestExtract_DetachFailureRestoresOrder(t *testing.T) {
	inner := memory.NewProductShelf([]domain.Product{
		{ID: "1", Title: "One", PriceText: "$1"},
		{ID: "2", Title: "Two", PriceText: "$2"},
		{ID: "3", Title: "Three", PriceText: "$3"},
	})
	nodes := inner.Nodes()
	shelf := &stuckShelf{Shelf: inner, stuck: nodes[2]}

	snap, err := Extract(shelf)
	require.ErrorIs(t, err, errStuck)
	assert.Nil(t, snap)

	// the stuck node never left; the others come back after it in original order
	got := ids(inner.Nodes())
	assert.ElementsMatch(t, []string{"1", "2", "3"}, got)
	assert.Equal(t, []string{"3", "1", "2"}, got)
}

func TestSnapshot_Reattach(t *testing.T) {
	shelf := memory.NewProductShelf([]domain.Product{
		{ID: "b", Title: "Banana", PriceText: "$30"},
		{ID: "a", Title: "Apple", PriceText: "$10"},
	})

	snap, err := Extract(shelf)
	require.NoError(t, err)

	sorted, err := domain.SortRecords(snap.Records, domain.StrategyAsc, nil)
	require.NoError(t, err)
	snap.Reattach(shelf, sorted)

	assert.Equal(t, []string{"a", "b"}, ids(shelf.Nodes()))
}

func ids(nodes []ports.ItemNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}
