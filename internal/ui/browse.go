package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zrc/internal/actions"
	"zrc/internal/scanner"
)

// ============================================================================
// String Builder Pool - reduces GC pressure from rendering
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// Entry Item
// ============================================================================

// entryItem wraps an Entry with cached lowercase search text
type entryItem struct {
	entry      scanner.Entry
	searchText string
}

func newEntryItem(e scanner.Entry) entryItem {
	return entryItem{
		entry: e,
		searchText: strings.ToLower(strings.Join([]string{
			string(e.Kind), e.Name, e.Section, e.Original,
		}, " ")),
	}
}

// matchesQuery checks if the item matches all search words
func (item *entryItem) matchesQuery(words []string) bool {
	for _, word := range words {
		if !strings.Contains(item.searchText, word) {
			return false
		}
	}
	return true
}

// ============================================================================
// Debounce
// ============================================================================

// filterMsg triggers filtering after debounce
type filterMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return filterMsg{}
	})
}

// ============================================================================
// Browse Model
// ============================================================================

// viewMode selects which list the browser shows
type viewMode int

const (
	viewSections viewMode = iota // section list with preview
	viewEntries                  // flat classified entry list
)

// Outcome is what the user asked for when the TUI exited
type Outcome struct {
	EditLine int // open the file in the editor at this line; 0 = nothing
}

// browseModel is the Bubble Tea model for browsing sections and entries
type browseModel struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	mode viewMode

	sections     []scanner.LogicalSection
	filteredSecs []scanner.LogicalSection

	entries     []entryItem
	filteredEnt []entryItem

	cursor    int
	offset    int // viewport scroll offset
	lastQuery string
	status    string

	acts    *actions.Actions
	outcome Outcome
}

func newBrowseModel(entries []scanner.Entry, sections []scanner.LogicalSection, acts *actions.Actions) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	items := make([]entryItem, len(entries))
	for i, e := range entries {
		items[i] = newEntryItem(e)
	}

	return browseModel{
		textInput:    ti,
		mode:         viewSections,
		sections:     sections,
		filteredSecs: sections,
		entries:      items,
		filteredEnt:  items,
		acts:         acts,
	}
}

// Init implements tea.Model
func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 4
		return m, nil

	case filterMsg:
		query := strings.TrimSpace(m.textInput.Value())
		if query != m.lastQuery {
			m.lastQuery = query
			m.applyFilter(query)
			m.cursor = 0
			m.offset = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			if m.mode == viewSections {
				m.mode = viewEntries
			} else {
				m.mode = viewSections
			}
			m.cursor = 0
			m.offset = 0
			m.status = ""
			return m, nil

		case "up", "ctrl+k":
			m.moveCursor(-1)
			return m, nil

		case "down", "ctrl+j":
			m.moveCursor(1)
			return m, nil

		case "pgup":
			m.moveCursor(-m.pageSize())
			return m, nil

		case "pgdown":
			m.moveCursor(m.pageSize())
			return m, nil

		case "enter", "ctrl+y":
			m.copySelection()
			return m, nil

		case "ctrl+e":
			if line := m.selectedLine(); line > 0 {
				m.outcome.EditLine = line
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, tea.Batch(cmd, debounceFilter())
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *browseModel) listLen() int {
	if m.mode == viewSections {
		return len(m.filteredSecs)
	}
	return len(m.filteredEnt)
}

func (m *browseModel) pageSize() int {
	if n := m.listHeight(); n > 1 {
		return n - 1
	}
	return 1
}

func (m *browseModel) moveCursor(delta int) {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > n-1 {
		m.cursor = n - 1
	}
	// Keep cursor inside the viewport
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m *browseModel) applyFilter(query string) {
	if query == "" {
		m.filteredSecs = m.sections
		m.filteredEnt = m.entries
		return
	}
	words := strings.Fields(strings.ToLower(query))

	secs := make([]scanner.LogicalSection, 0, len(m.sections))
	for _, s := range m.sections {
		if sectionMatches(&s, words) {
			secs = append(secs, s)
		}
	}
	m.filteredSecs = secs

	ents := make([]entryItem, 0, len(m.entries))
	for i := range m.entries {
		if m.entries[i].matchesQuery(words) {
			ents = append(ents, m.entries[i])
		}
	}
	m.filteredEnt = ents
}

func sectionMatches(s *scanner.LogicalSection, words []string) bool {
	label := strings.ToLower(s.Label)
	content := strings.ToLower(s.Content)
	for _, word := range words {
		if !strings.Contains(label, word) && !strings.Contains(content, word) {
			return false
		}
	}
	return true
}

// copySelection copies the selected entry line or section content
func (m *browseModel) copySelection() {
	var text, what string
	switch m.mode {
	case viewSections:
		if m.cursor < len(m.filteredSecs) {
			text = m.filteredSecs[m.cursor].Content
			what = "section"
		}
	case viewEntries:
		if m.cursor < len(m.filteredEnt) {
			text = m.filteredEnt[m.cursor].entry.Original
			what = "line"
		}
	}
	if text == "" {
		return
	}
	if err := m.acts.Copy(text); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "copied " + what + " to clipboard"
}

// selectedLine returns the source line to jump to for the current selection
func (m *browseModel) selectedLine() int {
	switch m.mode {
	case viewSections:
		if m.cursor < len(m.filteredSecs) {
			return m.filteredSecs[m.cursor].StartLine
		}
	case viewEntries:
		if m.cursor < len(m.filteredEnt) {
			return m.filteredEnt[m.cursor].entry.Line
		}
	}
	return 0
}
