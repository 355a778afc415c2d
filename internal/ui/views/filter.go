package views

import (
	"fmt"
	"strings"

	"homelyhub/internal/domain"
	"homelyhub/internal/ui/input/types"
)

// FilterModalState is what the filter modal needs to render
type FilterModalState struct {
	Draft   domain.FilterCriteria
	Section types.FilterSection
	Option  int
	// Input is the rendered price text input, empty unless min or max is being typed
	Input string
}

// FilterRenderer handles rendering of the filter editor modal
type FilterRenderer struct {
	styles *Styles
}

// NewFilterRenderer creates a new filter renderer
func NewFilterRenderer(styles *Styles) *FilterRenderer {
	return &FilterRenderer{
		styles: styles,
	}
}

// RenderModal renders the modal body; the caller wraps it in the modal style
func (f *FilterRenderer) RenderModal(s FilterModalState) string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render("Filters"))
	b.WriteString("\n\n")

	// Price
	b.WriteString(f.sectionTitle("Price Range", s.Section == types.SectionPrice))
	b.WriteString("\n")
	minText := fmt.Sprintf("Min ₹%d", s.Draft.PriceRange.Min)
	maxText := fmt.Sprintf("Max ₹%d", s.Draft.PriceRange.Max)
	b.WriteString("  ")
	b.WriteString(f.option(minText, s.Section == types.SectionPrice && s.Option == types.PriceOptionMin))
	b.WriteString("  ")
	b.WriteString(f.option(maxText, s.Section == types.SectionPrice && s.Option == types.PriceOptionMax))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(f.slider(s.Draft.PriceRange))
	b.WriteString("\n")
	if s.Input != "" {
		b.WriteString("  ")
		b.WriteString(s.Input)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(f.sectionTitle("Property Type", s.Section == types.SectionPropertyType))
	b.WriteString("\n")
	b.WriteString(f.choices(domain.PropertyTypeOptions, s.Section == types.SectionPropertyType, s.Option,
		func(v string) bool { return s.Draft.PropertyType == v }, "( )", "(•)"))
	b.WriteString("\n\n")

	b.WriteString(f.sectionTitle("Room Type", s.Section == types.SectionRoomType))
	b.WriteString("\n")
	b.WriteString(f.choices(domain.RoomTypeOptions, s.Section == types.SectionRoomType, s.Option,
		func(v string) bool { return s.Draft.RoomType == v }, "( )", "(•)"))
	b.WriteString("\n\n")

	b.WriteString(f.sectionTitle("Amenities", s.Section == types.SectionAmenities))
	b.WriteString("\n")
	b.WriteString(f.choices(domain.AmenityOptions, s.Section == types.SectionAmenities, s.Option,
		s.Draft.HasAmenity, "[ ]", "[x]"))
	b.WriteString("\n\n")

	onButtons := s.Section == types.SectionButtons
	b.WriteString(f.option("Clear All", onButtons && s.Option == types.ButtonClearAll))
	b.WriteString("   ")
	b.WriteString(f.option("Apply", onButtons && s.Option == types.ButtonApply))
	b.WriteString("\n\n")

	b.WriteString(f.styles.Help.Render("tab section • ←/→ option • space toggle • [ ] min • { } max • a apply • x clear • esc close"))
	return b.String()
}

func (f *FilterRenderer) sectionTitle(title string, focused bool) string {
	if focused {
		return f.styles.Highlight.Render("› " + title)
	}
	return f.styles.Section.Render("  " + title)
}

func (f *FilterRenderer) option(label string, focused bool) string {
	if focused {
		return f.styles.Focus.Render(label)
	}
	return label
}

// choices renders an option row, wrapping after four entries
func (f *FilterRenderer) choices(opts []domain.Option, focused bool, option int, selected func(string) bool, off, on string) string {
	var rows []string
	var row []string
	for i, opt := range opts {
		mark := off
		if selected(opt.Value) {
			mark = f.styles.Checked.Render(on)
		}
		row = append(row, mark+" "+f.option(opt.Label, focused && i == option))
		if len(row) == 4 {
			rows = append(rows, "  "+strings.Join(row, "  "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, "  "+strings.Join(row, "  "))
	}
	return strings.Join(rows, "\n")
}

const sliderWidth = 30

// slider draws the selected range over the allowed price span
func (f *FilterRenderer) slider(r domain.PriceRange) string {
	span := domain.MaxPrice - domain.MinPrice
	from := (r.Min - domain.MinPrice) * sliderWidth / span
	to := (r.Max - domain.MinPrice) * sliderWidth / span
	if to >= sliderWidth {
		to = sliderWidth - 1
	}
	if from > to {
		from = to
	}

	var b strings.Builder
	for i := 0; i < sliderWidth; i++ {
		switch {
		case i == from || i == to:
			b.WriteString(f.styles.Highlight.Render("●"))
		case i > from && i < to:
			b.WriteString(f.styles.Checked.Render("━"))
		default:
			b.WriteString(f.styles.Dim.Render("─"))
		}
	}
	return b.String()
}
