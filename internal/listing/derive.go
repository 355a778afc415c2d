package listing

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"homelyhub/internal/domain"
)

// Snapshot is the fetched data a view is derived from.
// In ScopePage mode Properties is one backend page and Total the backend total;
// in ScopeCatalog mode Properties is the whole catalog.
type Snapshot struct {
	Seq        uint64
	Scope      domain.FilterScope
	Page       int
	Total      int
	Properties []domain.Property
}

// View is what the listing screen renders
type View struct {
	Items    []domain.Property
	Page     int
	LastPage int
	Shown    int // properties matching the filter
	Of       int // properties the filter ran against
	Filtered bool
	CanPrev  bool
	CanNext  bool
}

// Derive computes the displayed page. It is pure: the same snapshot and
// criteria always produce the same view.
func Derive(s Snapshot, c *domain.FilterCriteria) View {
	matched := Apply(s.Properties, c)

	if s.Scope == domain.ScopePage {
		last := LastPage(s.Total)
		page := s.Page
		if page < 1 {
			page = 1
		}
		return View{
			Items:    matched,
			Page:     page,
			LastPage: last,
			Shown:    len(matched),
			Of:       len(s.Properties),
			Filtered: c != nil,
			CanPrev:  CanPrev(page),
			CanNext:  CanNext(page, last, len(matched)),
		}
	}

	last := LastPage(len(matched))
	page := ClampPage(s.Page, last)
	items := Slice(matched, page)
	return View{
		Items:    items,
		Page:     page,
		LastPage: last,
		Shown:    len(matched),
		Of:       len(s.Properties),
		Filtered: c != nil,
		CanPrev:  CanPrev(page),
		CanNext:  CanNext(page, last, len(items)),
	}
}

// Deriver memoizes Derive. Snapshots are identified by their fetch sequence,
// so a snapshot must not be mutated once derived.
type Deriver struct {
	cache *lru.Cache[string, View]
}

// NewDeriver creates a memoizing deriver holding up to size views
func NewDeriver(size int) (*Deriver, error) {
	cache, err := lru.New[string, View](size)
	if err != nil {
		return nil, err
	}
	return &Deriver{cache: cache}, nil
}

// Derive returns the memoized view for (snapshot, criteria)
func (d *Deriver) Derive(s Snapshot, c *domain.FilterCriteria) View {
	key := cacheKey(s, c)
	if v, ok := d.cache.Get(key); ok {
		return v
	}
	v := Derive(s, c)
	d.cache.Add(key, v)
	return v
}

// Purge drops every memoized view
func (d *Deriver) Purge() {
	d.cache.Purge()
}

func cacheKey(s Snapshot, c *domain.FilterCriteria) string {
	filter := "-"
	if c != nil {
		filter = c.Key()
	}
	return strconv.FormatUint(s.Seq, 10) + "/" + string(s.Scope) + "/" + strconv.Itoa(s.Page) + "/" + filter
}
