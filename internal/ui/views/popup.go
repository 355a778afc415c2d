package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of the main content.
// The content underneath is greyed out except for lines containing the
// popup's title.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateKeeping(mainContent, extractTitlePlain(popupContent)), "\n")
	for len(base) < height || len(base) < y+modalH {
		base = append(base, "")
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		base[row] = splice(base[row], line, x, modalW)
	}

	if height > 0 && len(base) > height {
		base = base[:height]
	}
	return strings.Join(base, "\n")
}

// splice writes overlay into line at column x, keeping what lies left and
// right of it
func splice(line, overlay string, x, w int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ""
	if ansi.StringWidth(line) > x+w {
		right = ansi.TruncateLeft(line, x+w, "")
	}
	if ow := ansi.StringWidth(overlay); ow < w {
		overlay += strings.Repeat(" ", w-ow)
	}
	return left + overlay + right
}

var greyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// extractTitlePlain returns the first line of popup content without ANSI
func extractTitlePlain(popup string) string {
	first, _, _ := strings.Cut(popup, "\n")
	return strings.TrimSpace(ansi.Strip(first))
}

// desaturateKeeping turns everything greyscale except lines containing keepSubstr (plain text match)
func desaturateKeeping(s, keepSubstr string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		plain := ansi.Strip(line)
		if keepSubstr != "" && strings.Contains(plain, keepSubstr) {
			continue
		}
		lines[i] = greyStyle.Render(plain)
	}
	return strings.Join(lines, "\n")
}
