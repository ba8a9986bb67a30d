package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_SharedPriceMerges(t *testing.T) {
	cart := NewCart(MergeByPrice)

	line, created, err := cart.Add(Product{ID: "a", Title: "A", PriceText: "$100"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, line.Quantity)

	line, created, err = cart.Add(Product{ID: "b", Title: "B", PriceText: "$100"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "A", line.Title, "first title added owns the line")

	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 2, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(200)))
}

func TestCart_DistinctPrices(t *testing.T) {
	cart := NewCart(MergeByPrice)

	_, _, err := cart.Add(Product{ID: "x", Title: "X", PriceText: "$50"})
	require.NoError(t, err)
	_, _, err = cart.Add(Product{ID: "y", Title: "Y", PriceText: "$75"})
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "X", lines[0].Title)
	assert.Equal(t, "Y", lines[1].Title)
	assert.Equal(t, 2, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(125)))
}

func TestCart_InsertionOrderOfKeys(t *testing.T) {
	cart := NewCart(MergeByPrice)
	for _, p := range []string{"$30", "$10", "$30", "$20", "$10"} {
		_, _, err := cart.Add(Product{Title: "item " + p, PriceText: p})
		require.NoError(t, err)
	}

	var got []string
	for _, l := range cart.Lines() {
		got = append(got, l.Price.String())
	}
	assert.Equal(t, []string{"30", "10", "20"}, got)
	assert.Equal(t, 5, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(100)))
}

func TestCart_EquivalentPriceTextsShareKey(t *testing.T) {
	cart := NewCart(MergeByPrice)

	_, _, err := cart.Add(Product{Title: "A", PriceText: "$1234.50"})
	require.NoError(t, err)
	_, created, err := cart.Add(Product{Title: "B", PriceText: "$1234.5"})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Len(t, cart.Lines(), 1)
}

func TestCart_MergeKeys(t *testing.T) {
	products := []Product{
		{ID: "1", Title: "Mate", PriceText: "$100"},
		{ID: "2", Title: "Bombilla", PriceText: "$100"},
		{ID: "3", Title: "mate", PriceText: "$120"},
		{ID: "1", Title: "Mate", PriceText: "$100"},
	}

	tests := []struct {
		key       MergeKey
		wantLines int
	}{
		{MergeByPrice, 2},
		{MergeByTitle, 2},
		{MergeByID, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			cart := NewCart(tt.key)
			for _, p := range products {
				_, _, err := cart.Add(p)
				require.NoError(t, err)
			}
			assert.Len(t, cart.Lines(), tt.wantLines)
			assert.Equal(t, 4, cart.Count())
		})
	}
}

func TestCart_CopyOnWriteForNewLines(t *testing.T) {
	cart := NewCart(MergeByPrice)
	_, _, err := cart.Add(Product{Title: "A", PriceText: "$10"})
	require.NoError(t, err)

	before := cart.State()

	_, _, err = cart.Add(Product{Title: "B", PriceText: "$20"})
	require.NoError(t, err)

	assert.Equal(t, 1, before.Len(), "earlier state must not gain lines")
	_, ok := before.Lookup("20")
	assert.False(t, ok)
	assert.Equal(t, 2, cart.State().Len())

	_, _, err = cart.Add(Product{Title: "A again", PriceText: "$10"})
	require.NoError(t, err)

	line, ok := before.Lookup("10")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity, "existing lines are incremented in place")
}

func TestCart_InvalidPriceDoesNotMutate(t *testing.T) {
	cart := NewCart(MergeByPrice)

	_, _, err := cart.Add(Product{Title: "Broken", PriceText: "gratis"})
	require.ErrorIs(t, err, ErrInvalidPriceText)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Count())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_Empty(t *testing.T) {
	cart := NewCart("")

	assert.Equal(t, MergeByPrice, cart.MergeKey())
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.Count())
	assert.True(t, cart.Total().IsZero())
}

func TestParseMergeKey(t *testing.T) {
	tests := []struct {
		in      string
		want    MergeKey
		wantErr bool
	}{
		{in: "", want: MergeByPrice},
		{in: "price", want: MergeByPrice},
		{in: " Title ", want: MergeByTitle},
		{in: "id", want: MergeByID},
		{in: "sku", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMergeKey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
