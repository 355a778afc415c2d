package domain

import (
	"fmt"
	"strings"
)

// Price bounds accepted by the filter editor
const (
	MinPrice = 600
	MaxPrice = 30000
)

// Property types
const (
	PropertyTypeHouse      = "house"
	PropertyTypeFlat       = "flat"
	PropertyTypeGuestHouse = "guest-house"
	PropertyTypeHotel      = "hotel"
)

// Room types. RoomTypeAny matches every property.
const (
	RoomTypeEntireHome = "Entire Home"
	RoomTypeRoom       = "Room"
	RoomTypeAny        = "Anytype"
)

// Amenity vocabulary
const (
	AmenityWifi           = "Wifi"
	AmenityKitchen        = "Kitchen"
	AmenityAc             = "Ac"
	AmenityWashingMachine = "Washing Machine"
	AmenityTv             = "Tv"
	AmenityPool           = "Pool"
	AmenityFreeParking    = "Free Parking"
)

// Option is a selectable value with its display label
type Option struct {
	Value string
	Label string
}

// PropertyTypeOptions in display order
var PropertyTypeOptions = []Option{
	{PropertyTypeHouse, "House"},
	{PropertyTypeFlat, "Flat"},
	{PropertyTypeGuestHouse, "Guest House"},
	{PropertyTypeHotel, "Hotel"},
}

// RoomTypeOptions in display order
var RoomTypeOptions = []Option{
	{RoomTypeEntireHome, "Entire Home"},
	{RoomTypeRoom, "Room"},
	{RoomTypeAny, "Any Type"},
}

// AmenityOptions in display order
var AmenityOptions = []Option{
	{AmenityWifi, "Wi-Fi"},
	{AmenityKitchen, "Kitchen"},
	{AmenityAc, "AC"},
	{AmenityWashingMachine, "Washing Machine"},
	{AmenityTv, "TV"},
	{AmenityPool, "Pool"},
	{AmenityFreeParking, "Free Parking"},
}

// PriceRange is an inclusive nightly price window
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Valid reports whether the range is inside the bounds and ordered
func (r PriceRange) Valid() bool {
	return r.Min >= MinPrice && r.Max <= MaxPrice && r.Min <= r.Max
}

// FilterCriteria is the price/type/room/amenity selection applied to the listing
type FilterCriteria struct {
	PriceRange   PriceRange `json:"priceRange"`
	PropertyType string     `json:"propertyType"`
	RoomType     string     `json:"roomType"`
	Amenities    []string   `json:"amenities"`
}

// DefaultFilterCriteria returns the unconstrained criteria the editor starts from
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange: PriceRange{Min: MinPrice, Max: MaxPrice},
		Amenities:  []string{},
	}
}

// Clone returns a copy that shares no memory with c
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	out.Amenities = make([]string, len(c.Amenities))
	copy(out.Amenities, c.Amenities)
	return out
}

// HasAmenity reports whether the amenity is part of the selection
func (c FilterCriteria) HasAmenity(name string) bool {
	for _, a := range c.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// Key is a stable fingerprint used for memoization
func (c FilterCriteria) Key() string {
	return fmt.Sprintf("%d-%d|%s|%s|%s",
		c.PriceRange.Min, c.PriceRange.Max,
		strings.ToLower(c.PropertyType), c.RoomType,
		strings.Join(c.Amenities, ","))
}

// Tags renders the active filter chips shown above the listing
func (c FilterCriteria) Tags() []string {
	tags := []string{fmt.Sprintf("Price: ₹%d - ₹%d", c.PriceRange.Min, c.PriceRange.Max)}
	if c.PropertyType != "" {
		tags = append(tags, "Type: "+c.PropertyType)
	}
	if c.RoomType != "" {
		tags = append(tags, "Room: "+c.RoomType)
	}
	if len(c.Amenities) > 0 {
		tags = append(tags, "Amenities: "+strings.Join(c.Amenities, ", "))
	}
	return tags
}

// FilterScope decides which set of properties the filter runs against
type FilterScope string

const (
	// ScopeCatalog filters the whole catalog, then paginates the matches locally
	ScopeCatalog FilterScope = "catalog"
	// ScopePage filters only the page returned by the backend
	ScopePage FilterScope = "page"
)

// ParseFilterScope validates a scope name
func ParseFilterScope(s string) (FilterScope, error) {
	switch FilterScope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeCatalog, "":
		return ScopeCatalog, nil
	case ScopePage:
		return ScopePage, nil
	}
	return "", fmt.Errorf("unknown filter scope %q (want %q or %q)", s, ScopeCatalog, ScopePage)
}
