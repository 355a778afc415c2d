package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"homelyhub/internal/domain"
)

// CardHeight is the number of lines a card takes, separator included
const CardHeight = 5

const noImage = "[no image]"

// PropertyRenderer handles rendering of listing cards
type PropertyRenderer struct {
	styles *Styles
}

// NewPropertyRenderer creates a new property renderer
func NewPropertyRenderer(styles *Styles) *PropertyRenderer {
	return &PropertyRenderer{
		styles: styles,
	}
}

// FormatPrice renders a nightly price the way cards show it
func FormatPrice(price float64) string {
	return "₹" + strconv.FormatFloat(price, 'f', -1, 64) + " per night"
}

// RenderCard renders a property card. Unrevealed cards keep their slot
// but stay blank so the layout does not jump while they animate in.
func (r *PropertyRenderer) RenderCard(p domain.Property, isSelected, revealed bool, width int) string {
	if !revealed {
		return strings.Repeat("\n", CardHeight-2)
	}

	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	marker := "  "
	nameStyle := r.styles.CardName
	if isSelected {
		marker = r.styles.Highlight.Render("▌ ")
		nameStyle = nameStyle.Foreground(lipgloss.Color("226"))
	}

	image := p.CoverURL()
	imageLine := r.styles.Placeholder.Render(noImage)
	if image != "" {
		imageLine = r.styles.Dim.Render(ansi.Truncate(image, inner, "…"))
	}

	lines := []string{
		marker + nameStyle.Render(ansi.Truncate(p.Name, inner, "…")),
		marker + r.styles.Dim.Render(p.Location()),
		marker + r.styles.CardPrice.Render(FormatPrice(p.Price)),
		marker + imageLine,
	}
	if isSelected {
		for i, line := range lines {
			if w := lipgloss.Width(line); w < inner+2 {
				line += strings.Repeat(" ", inner+2-w)
			}
			lines[i] = r.styles.SelectionBg.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderDetail renders the detail popup content for a property
func (r *PropertyRenderer) RenderDetail(p domain.Property) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(p.Name))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(r.styles.Label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Location", p.Location())
	row("Price", FormatPrice(p.Price))
	row("Type", p.PropertyType)
	row("Room", p.RoomType)
	if p.MaximumGuest > 0 {
		row("Guests", strconv.Itoa(p.MaximumGuest))
	}
	row("Amenities", strings.Join(p.Amenities, ", "))

	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(60).Render(p.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Section.Render("Images"))
	b.WriteString("\n")
	if len(p.Images) == 0 {
		b.WriteString(r.styles.Placeholder.Render(noImage))
		b.WriteString("\n")
	}
	for i, img := range p.Images {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, ansi.Truncate(img.URL, 56, "…")))
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("esc to close"))
	return b.String()
}
