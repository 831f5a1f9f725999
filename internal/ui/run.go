// Package ui implements the interactive browser over scan results.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"zrc/internal/actions"
	"zrc/internal/scanner"
)

// Run launches the browser over the scanned file. If the user asks to edit,
// the editor is launched after the TUI has released the terminal.
func Run(path string, entries []scanner.Entry, sections []scanner.LogicalSection, acts *actions.Actions, initialQuery string) error {
	RefreshStyles()

	model := newBrowseModel(entries, sections, acts)
	if initialQuery != "" {
		model.textInput.SetValue(initialQuery)
		model.lastQuery = initialQuery
		model.applyFilter(initialQuery)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	if m, ok := final.(browseModel); ok && m.outcome.EditLine > 0 {
		return acts.OpenEditor(path, m.outcome.EditLine)
	}
	return nil
}
