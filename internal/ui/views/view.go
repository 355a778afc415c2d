package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"homelyhub/internal/domain"
	"homelyhub/internal/listing"
	"homelyhub/internal/ui/state"
)

// Empty listing messages
const (
	NoMatchesMessage  = "No properties match your filters. Try adjusting your search criteria."
	NotFoundMessage   = "Property Not found"
	LoadingMessage    = "Loading properties..."
	clearFiltersLabel = "Clear Filters (c)"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	View             listing.View
	Tags             []string
	HasFilters       bool
	Loading          bool
	LoadedOnce       bool
	LoadError        string
	SelectedIndex    int
	ViewportOffset   int
	ViewportHeight   int
	Revealed         int // cards shown so far by the entrance animation
	StatusMessage    string
	StatusLevel      state.StatusLevel
	Errors           []string
	ShowHelp         bool
	HelpScrollOffset int
	HelpContent      string
	HelpModel        help.Model
	Keys             ListingKeys
	Detail           *domain.Property
	Filter           *FilterModalState
	Profile          *ProfileViewState
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	propertyRender *PropertyRenderer
	filterRender   *FilterRenderer
	profileRender  *ProfileRenderer
	popupRender    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		propertyRender: NewPropertyRenderer(styles),
		filterRender:   NewFilterRenderer(styles),
		profileRender:  NewProfileRenderer(styles),
		popupRender:    NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}

	content.WriteString(r.renderTitle(state, termWidth))
	content.WriteString("\n\n")

	if state.Profile != nil {
		content.WriteString(r.profileRender.Render(*state.Profile, termWidth-4))
	} else {
		content.WriteString(r.renderListing(state, termWidth-4))
	}

	footer := r.renderFooter(state)

	// push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ShowHelp {
		helpContent := scrollLines(state.HelpContent, state.Height-4, state.HelpScrollOffset, r.styles.Scroll)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, termWidth, r.styles.Modal)
	}

	if state.Filter != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.filterRender.RenderModal(*state.Filter), state.Height, termWidth, r.styles.Modal)
	}

	if state.Detail != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.propertyRender.RenderDetail(*state.Detail), state.Height, termWidth, r.styles.DetailBox)
	}

	return finalContent
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("HomelyHub")
	if !state.Loading {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	right := r.styles.Dim.Render(fmt.Sprintf("%s Loading", spinner[frame]))

	padding := width - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderListing renders the filter tags, the cards and the page footer
func (r *Renderer) renderListing(state ViewState, width int) string {
	var lines []string

	if state.HasFilters {
		tags := make([]string, 0, len(state.Tags))
		for _, t := range state.Tags {
			tags = append(tags, r.styles.Tag.Render(t))
		}
		lines = append(lines, strings.Join(tags, " ")+"  "+r.styles.Hint.Render(clearFiltersLabel))
	}
	if state.View.Filtered {
		lines = append(lines, r.styles.Status.Render(fmt.Sprintf("Showing %d of %d properties", state.View.Shown, state.View.Of)))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	switch {
	case len(state.View.Items) > 0:
		lines = append(lines, r.renderCards(state, width))
	case !state.LoadedOnce && state.LoadError == "":
		lines = append(lines, r.styles.Dim.Render(LoadingMessage))
	case state.LoadError != "":
		lines = append(lines, r.styles.StatusError.Render(state.LoadError))
	case state.View.Filtered:
		lines = append(lines, r.styles.Dim.Render(NoMatchesMessage))
	default:
		lines = append(lines, r.styles.Dim.Render(NotFoundMessage))
	}

	lines = append(lines, "", r.renderPager(state.View))
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderPager(v listing.View) string {
	prev := "‹ prev"
	if !v.CanPrev {
		prev = r.styles.Dim.Render(prev)
	}
	next := "next ›"
	if !v.CanNext {
		next = r.styles.Dim.Render(next)
	}
	// an empty result still reads as one page
	return fmt.Sprintf("%s   Page %d of %d   %s", prev, v.Page, max(v.LastPage, 1), next)
}

// renderCards renders the visible window of cards with scroll indicators
func (r *Renderer) renderCards(state ViewState, width int) string {
	items := state.View.Items
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}

	start := state.ViewportOffset
	if start > len(items) {
		start = len(items)
	}
	end := start + height
	if end > len(items) {
		end = len(items)
	}

	var cards []string
	if start > 0 {
		cards = append(cards, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		cards = append(cards, r.propertyRender.RenderCard(items[i], i == state.SelectedIndex, i < state.Revealed, width))
	}
	if end < len(items) {
		cards = append(cards, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(items)-end)))
	}
	return strings.Join(cards, "\n\n")
}

func (r *Renderer) renderFooter(vs ViewState) string {
	var lines []string

	for _, e := range vs.Errors {
		lines = append(lines, r.styles.StatusError.Render("✗ "+e))
	}

	if vs.StatusMessage != "" && len(vs.Errors) == 0 {
		style := r.styles.Status
		switch vs.StatusLevel {
		case state.StatusError:
			style = r.styles.StatusError
		case state.StatusSuccess:
			style = r.styles.StatusSuccess
		}
		lines = append(lines, style.Render(vs.StatusMessage))
	}

	if vs.Profile == nil && vs.Filter == nil && !vs.ShowHelp {
		keys := vs.Keys
		keys.Clear.SetEnabled(vs.HasFilters)
		keys.Page.SetEnabled(vs.View.CanPrev || vs.View.CanNext)
		keys.Details.SetEnabled(len(vs.View.Items) > 0)
		lines = append(lines, vs.HelpModel.View(keys))
	} else if !vs.ShowHelp {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}

	return strings.Join(lines, "\n")
}

// scrollLines cuts content to a window of height lines starting at offset
func scrollLines(content string, height, offset int, indicator lipgloss.Style) string {
	lines := strings.Split(content, "\n")
	if height < 5 {
		height = 5
	}
	if len(lines) <= height {
		return content
	}

	maxOffset := len(lines) - height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	visible := append([]string(nil), lines[offset:end]...)
	if offset > 0 {
		visible[0] = indicator.Render("↑ (more above)")
	}
	if end < len(lines) {
		visible[len(visible)-1] = indicator.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}
