package logic

import (
	"strconv"
	"strings"
	"unicode"

	"homelyhub/internal/domain"
)

// FilterEditor holds the draft criteria while the filter modal is open.
// Rejected edits leave the draft untouched and report false.
type FilterEditor struct {
	draft domain.FilterCriteria
}

// NewFilterEditor creates an editor seeded with the default criteria
func NewFilterEditor() *FilterEditor {
	return &FilterEditor{draft: domain.DefaultFilterCriteria()}
}

// Draft returns a copy of the draft
func (e *FilterEditor) Draft() domain.FilterCriteria {
	return e.draft.Clone()
}

// SetPriceRange commits the range only when it is inside the bounds and ordered
func (e *FilterEditor) SetPriceRange(min, max int) bool {
	r := domain.PriceRange{Min: min, Max: max}
	if !r.Valid() {
		return false
	}
	e.draft.PriceRange = r
	return true
}

// SetMin parses text as the new minimum price
func (e *FilterEditor) SetMin(text string) bool {
	v, ok := parseInt(text)
	if !ok || v < domain.MinPrice || v > e.draft.PriceRange.Max {
		return false
	}
	e.draft.PriceRange.Min = v
	return true
}

// SetMax parses text as the new maximum price
func (e *FilterEditor) SetMax(text string) bool {
	v, ok := parseInt(text)
	if !ok || v > domain.MaxPrice || v < e.draft.PriceRange.Min {
		return false
	}
	e.draft.PriceRange.Max = v
	return true
}

// NudgeMin moves the minimum by delta, slider style
func (e *FilterEditor) NudgeMin(delta int) bool {
	return e.SetPriceRange(e.draft.PriceRange.Min+delta, e.draft.PriceRange.Max)
}

// NudgeMax moves the maximum by delta, slider style
func (e *FilterEditor) NudgeMax(delta int) bool {
	return e.SetPriceRange(e.draft.PriceRange.Min, e.draft.PriceRange.Max+delta)
}

// TogglePropertyType selects v, or deselects it when already selected
func (e *FilterEditor) TogglePropertyType(v string) {
	if e.draft.PropertyType == v {
		e.draft.PropertyType = ""
		return
	}
	e.draft.PropertyType = v
}

// ToggleRoomType selects v, or deselects it when already selected
func (e *FilterEditor) ToggleRoomType(v string) {
	if e.draft.RoomType == v {
		e.draft.RoomType = ""
		return
	}
	e.draft.RoomType = v
}

// ToggleAmenity adds v at the end or removes it keeping the others in order
func (e *FilterEditor) ToggleAmenity(v string) {
	for i, a := range e.draft.Amenities {
		if a == v {
			e.draft.Amenities = append(e.draft.Amenities[:i:i], e.draft.Amenities[i+1:]...)
			return
		}
	}
	e.draft.Amenities = append(e.draft.Amenities, v)
}

// ClearAll resets the draft to the defaults. Nothing is applied.
func (e *FilterEditor) ClearAll() {
	e.draft = domain.DefaultFilterCriteria()
}

// Apply returns the draft exactly as it is
func (e *FilterEditor) Apply() domain.FilterCriteria {
	return e.draft.Clone()
}

// Reset discards the draft, as when the editor is closed without applying
func (e *FilterEditor) Reset() {
	e.ClearAll()
}

// parseInt reads a leading integer the way a browser's parseInt does:
// leading spaces and trailing garbage are ignored, no digits is a failure.
func parseInt(text string) (int, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
