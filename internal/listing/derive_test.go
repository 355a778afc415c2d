package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homelyhub/internal/domain"
)

func catalog(n int, price func(i int) float64) []domain.Property {
	props := make([]domain.Property, n)
	for i := range props {
		props[i] = prop(fmt.Sprintf("p%02d", i), price(i))
	}
	return props
}

func TestDerivePageScope(t *testing.T) {
	// one backend page of 12, 100 properties in total
	props := catalog(12, func(i int) float64 { return float64(500 + i*100) })
	s := Snapshot{Seq: 1, Scope: domain.ScopePage, Page: 1, Total: 100, Properties: props}

	v := Derive(s, nil)
	assert.Len(t, v.Items, 12)
	assert.Equal(t, 9, v.LastPage)
	assert.True(t, v.CanNext)
	assert.False(t, v.CanPrev)
	assert.False(t, v.Filtered)

	c := criteria(600, 1000)
	v = Derive(s, &c)
	assert.Len(t, v.Items, 5)
	assert.Equal(t, 5, v.Shown)
	assert.Equal(t, 12, v.Of)
	assert.Equal(t, 9, v.LastPage, "page scope keeps the unfiltered page count")
	assert.False(t, v.CanNext, "short page disables next")
	assert.True(t, v.Filtered)
}

func TestDeriveCatalogScope(t *testing.T) {
	// 30 properties, even ones are cheap
	props := catalog(30, func(i int) float64 {
		if i%2 == 0 {
			return 700
		}
		return 20000
	})
	s := Snapshot{Seq: 1, Scope: domain.ScopeCatalog, Page: 1, Total: 30, Properties: props}

	v := Derive(s, nil)
	assert.Equal(t, 3, v.LastPage)
	assert.Len(t, v.Items, 12)
	assert.True(t, v.CanNext)

	c := criteria(600, 1000)
	v = Derive(s, &c)
	assert.Equal(t, 15, v.Shown)
	assert.Equal(t, 30, v.Of)
	assert.Equal(t, 2, v.LastPage)
	assert.Len(t, v.Items, 12)
	assert.Equal(t, "p00", v.Items[0].ID)
	assert.Equal(t, "p02", v.Items[1].ID)

	s.Page = 2
	v = Derive(s, &c)
	assert.Len(t, v.Items, 3)
	assert.False(t, v.CanNext)
	assert.True(t, v.CanPrev)
}

func TestDeriveCatalogScopeClampsPage(t *testing.T) {
	props := catalog(30, func(int) float64 { return 800 })
	s := Snapshot{Seq: 1, Scope: domain.ScopeCatalog, Page: 3, Total: 30, Properties: props}

	c := criteria(600, 1000)
	c.PropertyType = domain.PropertyTypeHotel
	v := Derive(s, &c)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 0, v.LastPage)
	assert.Empty(t, v.Items)
	assert.False(t, v.CanNext)
	assert.False(t, v.CanPrev)
}

func TestDeriveIsPure(t *testing.T) {
	props := catalog(20, func(i int) float64 { return float64(600 + i*50) })
	s := Snapshot{Seq: 4, Scope: domain.ScopeCatalog, Page: 1, Total: 20, Properties: props}
	c := criteria(600, 1000)

	assert.Equal(t, Derive(s, &c), Derive(s, &c))
}

func TestDeriverMemoizes(t *testing.T) {
	d, err := NewDeriver(8)
	require.NoError(t, err)

	props := catalog(3, func(int) float64 { return 800 })
	s := Snapshot{Seq: 1, Scope: domain.ScopePage, Page: 1, Total: 3, Properties: props}
	c := criteria(600, 1000)

	first := d.Derive(s, &c)
	assert.Len(t, first.Items, 3)

	// same seq and criteria hit the cache
	assert.Equal(t, first, d.Derive(s, &c))

	c.PriceRange.Max = 700
	assert.Empty(t, d.Derive(s, &c).Items)
	assert.Len(t, d.Derive(s, nil).Items, 3)

	d.Purge()
	assert.Empty(t, d.Derive(s, &c).Items)
}

func TestNewDeriverRejectsZeroSize(t *testing.T) {
	_, err := NewDeriver(0)
	assert.Error(t, err)
}

func TestSequencer(t *testing.T) {
	var s Sequencer
	assert.False(t, s.IsLatest(0))

	first := s.Next()
	assert.True(t, s.IsLatest(first))

	second := s.Next()
	assert.False(t, s.IsLatest(first))
	assert.True(t, s.IsLatest(second))
	assert.Equal(t, second, s.Latest())
}
