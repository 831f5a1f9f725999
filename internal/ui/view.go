package ui

import (
	"fmt"
	"strings"

	"zrc/internal/config"
	"zrc/internal/scanner"
)

const previewHeight = 8

// listHeight returns the number of rows available for the list viewport
func (m *browseModel) listHeight() int {
	// input + divider + preview + divider + footer
	h := m.height - previewHeight - 4
	if h < 3 {
		h = 3
	}
	return h
}

// View implements tea.Model
func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	switch m.mode {
	case viewSections:
		m.renderSectionList(b)
	case viewEntries:
		m.renderEntryList(b)
	}

	b.WriteString(m.renderDivider())
	m.renderPreview(b)
	b.WriteString(m.renderDivider())
	m.renderFooter(b)

	return b.String()
}

func (m *browseModel) renderSectionList(b *strings.Builder) {
	h := m.listHeight()
	end := m.offset + h
	if end > len(m.filteredSecs) {
		end = len(m.filteredSecs)
	}

	for i := m.offset; i < end; i++ {
		s := m.filteredSecs[i]
		label := truncate(s.Label, config.GetColumnSection())
		line := fmt.Sprintf("%-*s  %s  %s",
			config.GetColumnSection(), label,
			styles.Dim.Render(fmt.Sprintf("%4d-%-4d", s.StartLine, s.EndLine)),
			styles.Kind.Render(countSummary(s.Counts)))
		m.writeRow(b, i, line)
	}
	m.padList(b, end-m.offset)
}

func (m *browseModel) renderEntryList(b *strings.Builder) {
	h := m.listHeight()
	end := m.offset + h
	if end > len(m.filteredEnt) {
		end = len(m.filteredEnt)
	}

	for i := m.offset; i < end; i++ {
		e := m.filteredEnt[i].entry
		section := e.Section
		if section == "" {
			section = "-"
		}
		line := fmt.Sprintf("%s %s  %s  %s",
			styles.Dim.Render(fmt.Sprintf("%5d", e.Line)),
			styles.Kind.Render(fmt.Sprintf("%-10s", e.Kind)),
			styles.Section.Render(truncatePad(section, config.GetColumnName())),
			styles.Line.Render(truncate(strings.TrimSpace(e.Original), config.GetColumnLine())))
		m.writeRow(b, i, line)
	}
	m.padList(b, end-m.offset)
}

// writeRow renders one list row with cursor and selection highlighting
func (m *browseModel) writeRow(b *strings.Builder, index int, line string) {
	if index == m.cursor {
		b.WriteString(styles.Cursor.Render("▶ "))
		b.WriteString(styles.Selected.Render(line))
	} else {
		b.WriteString("  ")
		b.WriteString(line)
	}
	b.WriteString("\n")
}

// padList fills unused viewport rows so the layout stays stable
func (m *browseModel) padList(b *strings.Builder, used int) {
	for i := used; i < m.listHeight(); i++ {
		b.WriteString("\n")
	}
}

func (m *browseModel) renderPreview(b *strings.Builder) {
	switch m.mode {
	case viewSections:
		if m.cursor < len(m.filteredSecs) {
			s := m.filteredSecs[m.cursor]
			b.WriteString(styles.PreviewHeader.Render(
				fmt.Sprintf("%s (lines %d-%d)", s.Label, s.StartLine, s.EndLine)))
			b.WriteString("\n")
			m.writePreviewBody(b, s.Content, previewHeight-1)
			return
		}
	case viewEntries:
		if m.cursor < len(m.filteredEnt) {
			e := m.filteredEnt[m.cursor].entry
			header := string(e.Kind)
			if e.Name != "" {
				header += " " + e.Name
			}
			if e.Section != "" {
				header += styles.Dim.Render("  in " + e.Section)
			}
			b.WriteString(styles.PreviewHeader.Render(header))
			b.WriteString("\n")
			m.writePreviewBody(b, e.Original, previewHeight-1)
			return
		}
	}
	for i := 0; i < previewHeight; i++ {
		b.WriteString("\n")
	}
}

func (m *browseModel) writePreviewBody(b *strings.Builder, content string, rows int) {
	lines := strings.Split(content, "\n")
	for i := 0; i < rows; i++ {
		if i < len(lines) {
			b.WriteString(styles.PreviewBody.Render(truncate(lines[i], m.width-2)))
		}
		b.WriteString("\n")
	}
}

func (m *browseModel) renderDivider() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return styles.Divider.Render(strings.Repeat("─", w)) + "\n"
}

func (m *browseModel) renderFooter(b *strings.Builder) {
	var counts string
	if m.mode == viewSections {
		counts = fmt.Sprintf("%d/%d sections", len(m.filteredSecs), len(m.sections))
	} else {
		counts = fmt.Sprintf("%d/%d entries", len(m.filteredEnt), len(m.entries))
	}
	help := "tab: sections/entries • enter: copy • ctrl+e: edit • esc: quit"
	b.WriteString(styles.Dim.Render(counts + "  " + help))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(styles.Status.Render(m.status))
	}
}

// countSummary formats the non-zero kind counts of a section on one line
func countSummary(counts scanner.KindCounts) string {
	parts := make([]string, 0, 4)
	for _, kind := range scanner.Kinds {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", kind, n))
		}
	}
	return strings.Join(parts, " ")
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func truncatePad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, truncate(s, width))
}
