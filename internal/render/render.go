// Package render writes scan results to a stream as plain text or YAML.
package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"zrc/internal/scanner"
	"zrc/internal/stats"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (supported: text, yaml)", s)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Entries writes the flat entry list.
func Entries(w io.Writer, entries []scanner.Entry, format Format) error {
	if format == FormatYAML {
		return writeYAML(w, entries)
	}
	for _, e := range entries {
		section := e.Section
		if section == "" {
			section = "-"
		}
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%5d  %-10s  %-20s  %-30s  %s\n", e.Line, e.Kind, name, section, e.Original)
	}
	return nil
}

// Sections writes the logical section list with per-kind counts.
func Sections(w io.Writer, sections []scanner.LogicalSection, format Format) error {
	if format == FormatYAML {
		return writeYAML(w, sections)
	}
	for _, s := range sections {
		fmt.Fprintf(w, "%s (lines %d-%d)\n", s.Label, s.StartLine, s.EndLine)
		for _, kind := range scanner.Kinds {
			if n := s.Counts[kind]; n > 0 {
				fmt.Fprintf(w, "    %-12s %d\n", kind, n)
			}
		}
	}
	return nil
}

// Stats writes the aggregate summary.
func Stats(w io.Writer, summary stats.Summary, format Format) error {
	if format == FormatYAML {
		return writeYAML(w, summary)
	}
	fmt.Fprintf(w, "%d entries in %d sections over %d lines\n",
		summary.TotalEntries, summary.TotalSections, summary.TotalLines)
	if summary.TotalLines > 0 {
		pct := 100 * summary.UnlabeledLines / summary.TotalLines
		fmt.Fprintf(w, "%d unlabeled lines (%d%%)\n", summary.UnlabeledLines, pct)
	}
	fmt.Fprintln(w)
	for _, kind := range scanner.Kinds {
		if n := summary.ByKind[kind]; n > 0 {
			fmt.Fprintf(w, "%-12s %d\n", kind, n)
		}
	}
	fmt.Fprintln(w)
	for _, s := range summary.Sections {
		fmt.Fprintf(w, "%-30s  %3d entries  %4d lines\n", s.Label, s.Entries, s.Lines)
	}
	return nil
}
