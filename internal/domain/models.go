package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Address is the postal location of a property
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Image references a hosted picture of a property
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

// Amenities is the list of amenity names attached to a property.
// The backend sends either plain strings or {"name": ...} objects.
type Amenities []string

// UnmarshalJSON accepts both amenity encodings
func (a *Amenities) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("amenities: %w", err)
	}

	names := make(Amenities, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			names = append(names, name)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return fmt.Errorf("amenity %s: %w", string(item), err)
		}
		names = append(names, obj.Name)
	}
	*a = names
	return nil
}

// Contains reports whether the amenity is present (exact match)
func (a Amenities) Contains(name string) bool {
	for _, v := range a {
		if v == name {
			return true
		}
	}
	return false
}

// Property is a rentable listing as served by the backend
type Property struct {
	ID           string    `json:"_id"`
	Name         string    `json:"propertyName"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	PropertyType string    `json:"propertyType"`
	RoomType     string    `json:"roomType"`
	Amenities    Amenities `json:"amenities"`
	Address      Address   `json:"address"`
	Images       []Image   `json:"images"`
	MaximumGuest int       `json:"maximumGuest,omitempty"`
}

// CoverURL returns the first image URL, or "" when the property has no images
func (p Property) CoverURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// Location formats the address the way listing cards show it
func (p Property) Location() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Address.City, p.Address.State, p.Address.Pincode} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Avatar is the user's profile picture
type Avatar struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

// User is the signed-in marketplace user
type User struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      Avatar    `json:"avatar"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserUpdate is a partial profile update; empty fields are left untouched
type UserUpdate struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// IsEmpty reports whether the update carries no field at all
func (u UserUpdate) IsEmpty() bool {
	return u.Name == "" && u.PhoneNumber == "" && u.Avatar == ""
}

// Fields lists the names of the fields present in the update
func (u UserUpdate) Fields() []string {
	var fields []string
	if u.Name != "" {
		fields = append(fields, "name")
	}
	if u.PhoneNumber != "" {
		fields = append(fields, "phoneNumber")
	}
	if u.Avatar != "" {
		fields = append(fields, "avatar")
	}
	return fields
}
