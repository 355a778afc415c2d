package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Listings", []helpEntry{
		{"↑/↓, j/k", "Move between properties"},
		{"gg/G", "First/last property on the page"},
		{"←/→, h/l", "Previous/next page"},
		{"Enter", "Property details"},
		{"r", "Reload listings"},
	}},
	{"Filters", []helpEntry{
		{"f", "Open the filter editor"},
		{"c", "Clear applied filters"},
		{"Tab", "Next section (Shift+Tab back)"},
		{"←/→", "Move between options"},
		{"Space", "Toggle option"},
		{"[ / ]", "Lower/raise minimum price by 100"},
		{"{ / }", "Lower/raise maximum price by 100"},
		{"PgDn/PgUp", "Lower/raise the focused bound by 1000"},
		{"m / M", "Type minimum/maximum price"},
		{"x", "Clear all (editor stays open)"},
		{"a", "Apply filters"},
		{"Esc", "Close without applying"},
	}},
	{"Profile", []helpEntry{
		{"P", "Show profile"},
		{"e", "Edit profile"},
		{"Tab", "Next field"},
		{"Ctrl+O", "Load avatar from the typed file path"},
		{"Ctrl+S", "Save changes"},
		{"Esc", "Cancel editing"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"H", "Open help in a pager"},
		{"q", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Width(12),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// RenderHelpContent generates the help text shown in the popup and the pager
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.title.Render("HomelyHub Help"))
	help.WriteString("\n")

	for _, s := range helpSections {
		help.WriteString("\n")
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", r.key.Render(e.keys), r.desc.Render(e.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
