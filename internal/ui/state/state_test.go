package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homelyhub/internal/domain"
	"homelyhub/internal/listing"
)

func TestFiltersStartEmpty(t *testing.T) {
	s := NewAppState(domain.ScopeCatalog)
	assert.Nil(t, s.Filters())
	assert.Equal(t, 1, s.Page)
}

func TestSetFiltersStoresCopy(t *testing.T) {
	s := NewAppState(domain.ScopeCatalog)

	c := domain.DefaultFilterCriteria()
	c.Amenities = append(c.Amenities, domain.AmenityWifi)
	s.SetFilters(c)

	c.Amenities[0] = domain.AmenityPool
	c.PropertyType = domain.PropertyTypeHotel

	require.NotNil(t, s.Filters())
	assert.Equal(t, []string{domain.AmenityWifi}, s.Filters().Amenities)
	assert.Empty(t, s.Filters().PropertyType)
}

func TestSetFiltersReplacesWholesale(t *testing.T) {
	s := NewAppState(domain.ScopeCatalog)

	first := domain.DefaultFilterCriteria()
	first.PropertyType = domain.PropertyTypeFlat
	s.SetFilters(first)

	second := domain.DefaultFilterCriteria()
	second.RoomType = domain.RoomTypeRoom
	s.SetFilters(second)

	assert.Empty(t, s.Filters().PropertyType)
	assert.Equal(t, domain.RoomTypeRoom, s.Filters().RoomType)

	s.ClearFilters()
	assert.Nil(t, s.Filters())
}

func TestCurrentSnapshotFollowsPageCursor(t *testing.T) {
	s := NewAppState(domain.ScopeCatalog)
	assert.Equal(t, listing.Snapshot{Scope: domain.ScopeCatalog, Page: 1}, s.CurrentSnapshot())

	s.Snapshot = &listing.Snapshot{Seq: 3, Scope: domain.ScopeCatalog, Page: 1, Total: 30}
	s.Page = 2
	snap := s.CurrentSnapshot()
	assert.Equal(t, 2, snap.Page)
	assert.Equal(t, uint64(3), snap.Seq)
	assert.Equal(t, 1, s.Snapshot.Page)
}

func TestCurrentSnapshotKeepsFetchedPageInPageScope(t *testing.T) {
	s := NewAppState(domain.ScopePage)
	s.Snapshot = &listing.Snapshot{Seq: 1, Scope: domain.ScopePage, Page: 1, Total: 30}
	s.Page = 2

	assert.Equal(t, 1, s.CurrentSnapshot().Page)
}

func TestStatusAndErrors(t *testing.T) {
	s := NewAppState(domain.ScopePage)
	s.SetStatus(StatusError, "boom")
	assert.Equal(t, StatusError, s.StatusLevel)

	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
	assert.Equal(t, StatusInfo, s.StatusLevel)

	s.Errors = []string{"a"}
	s.AckErrors()
	assert.Nil(t, s.Errors)
}
