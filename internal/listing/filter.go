// Package listing derives what the listing screen shows from the fetched
// properties, the applied filter criteria and the page cursor.
package listing

import (
	"strings"

	"homelyhub/internal/domain"
)

// Match reports whether a property satisfies every part of the criteria.
// Price bounds are inclusive, property types compare case-insensitively,
// room types compare exactly and every requested amenity must be present.
func Match(p domain.Property, c domain.FilterCriteria) bool {
	priceMatch := p.Price >= float64(c.PriceRange.Min) && p.Price <= float64(c.PriceRange.Max)

	typeMatch := c.PropertyType == "" ||
		strings.ToLower(p.PropertyType) == strings.ToLower(c.PropertyType)

	roomMatch := c.RoomType == "" ||
		c.RoomType == domain.RoomTypeAny ||
		p.RoomType == c.RoomType

	amenityMatch := true
	for _, a := range c.Amenities {
		if !p.Amenities.Contains(a) {
			amenityMatch = false
			break
		}
	}

	return priceMatch && typeMatch && roomMatch && amenityMatch
}

// Apply keeps the properties matching c, in their original order.
// A nil c means no filter is applied and props is returned unchanged.
func Apply(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if c == nil {
		return props
	}
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if Match(p, *c) {
			out = append(out, p)
		}
	}
	return out
}
