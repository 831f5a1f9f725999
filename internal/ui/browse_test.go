package ui

import (
	"strings"
	"testing"

	"zrc/internal/actions"
	"zrc/internal/scanner"
)

type recordClipboard struct {
	copied []string
}

func (r *recordClipboard) Copy(text string) error {
	r.copied = append(r.copied, text)
	return nil
}

func testModel(t *testing.T) (browseModel, *recordClipboard) {
	t.Helper()
	content := strings.Join([]string{
		"# [Aliases]",
		"alias ll='ls -la'",
		"alias gs='git status'",
		"# [Exports]",
		"export EDITOR=nvim",
	}, "\n")
	entries, sections := scanner.Default().Scan(content)
	clip := &recordClipboard{}
	acts := actions.New().WithClipboard(clip)
	return newBrowseModel(entries, sections, acts), clip
}

func TestFilterEntries(t *testing.T) {
	m, _ := testModel(t)

	m.applyFilter("alias")
	if len(m.filteredEnt) != 2 {
		t.Errorf("filtered entries = %d, want 2", len(m.filteredEnt))
	}

	m.applyFilter("git status")
	if len(m.filteredEnt) != 1 {
		t.Fatalf("filtered entries = %d, want 1", len(m.filteredEnt))
	}
	if m.filteredEnt[0].entry.Name != "gs" {
		t.Errorf("got %+v", m.filteredEnt[0].entry)
	}

	m.applyFilter("")
	if len(m.filteredEnt) != len(m.entries) {
		t.Errorf("empty query should restore all entries")
	}
}

func TestFilterSections(t *testing.T) {
	m, _ := testModel(t)

	m.applyFilter("exports")
	if len(m.filteredSecs) != 1 {
		t.Fatalf("filtered sections = %d, want 1", len(m.filteredSecs))
	}
	if m.filteredSecs[0].Label != "Exports" {
		t.Errorf("label = %q", m.filteredSecs[0].Label)
	}
}

func TestFilterSectionsByContent(t *testing.T) {
	m, _ := testModel(t)
	m.applyFilter("git")
	if len(m.filteredSecs) != 1 || m.filteredSecs[0].Label != "Aliases" {
		t.Errorf("got %+v", m.filteredSecs)
	}
}

func TestCopySelection(t *testing.T) {
	m, clip := testModel(t)

	m.mode = viewEntries
	m.cursor = 0
	m.copySelection()
	if len(clip.copied) != 1 {
		t.Fatalf("copied %d items, want 1", len(clip.copied))
	}
	if clip.copied[0] != m.filteredEnt[0].entry.Original {
		t.Errorf("copied %q", clip.copied[0])
	}

	m.mode = viewSections
	m.copySelection()
	if len(clip.copied) != 2 {
		t.Fatalf("copied %d items, want 2", len(clip.copied))
	}
	if !strings.Contains(clip.copied[1], "alias ll='ls -la'") {
		t.Errorf("section copy missing content: %q", clip.copied[1])
	}
}

func TestSelectedLine(t *testing.T) {
	m, _ := testModel(t)

	m.mode = viewSections
	m.cursor = 0
	if got := m.selectedLine(); got != m.filteredSecs[0].StartLine {
		t.Errorf("selectedLine = %d, want %d", got, m.filteredSecs[0].StartLine)
	}

	m.mode = viewEntries
	if got := m.selectedLine(); got != m.filteredEnt[0].entry.Line {
		t.Errorf("selectedLine = %d, want %d", got, m.filteredEnt[0].entry.Line)
	}
}

func TestMoveCursorBounds(t *testing.T) {
	m, _ := testModel(t)
	m.height = 30
	m.mode = viewEntries

	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m.moveCursor(100)
	if m.cursor != len(m.filteredEnt)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.filteredEnt)-1)
	}
}
