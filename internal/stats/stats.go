// Package stats aggregates scan results into summary statistics. It only
// consumes the entry and section lists; it never re-reads the source text.
package stats

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zrc/internal/scanner"
)

// Case folding for label comparison is locale-independent so grouping stays
// stable across host locales.
var (
	folder = cases.Fold()
	titler = cases.Title(language.Und)
)

// SectionStat summarizes one logical section.
type SectionStat struct {
	Label   string `yaml:"label"`
	Lines   int    `yaml:"lines"`
	Entries int    `yaml:"entries"`
}

// Summary holds aggregate statistics for one scanned file.
type Summary struct {
	TotalEntries  int                       `yaml:"total_entries"`
	TotalSections int                       `yaml:"total_sections"`
	ByKind        map[scanner.EntryKind]int `yaml:"by_kind"`
	Sections      []SectionStat             `yaml:"sections"`

	// UnlabeledLines counts lines that fell into merged Unlabeled sections;
	// a high ratio suggests a file with little marker structure.
	UnlabeledLines int `yaml:"unlabeled_lines"`
	TotalLines     int `yaml:"total_lines"`
}

// Collect builds a Summary from scan output. Sections are reported largest
// first, with labels differing only by case grouped together.
func Collect(entries []scanner.Entry, sections []scanner.LogicalSection) Summary {
	s := Summary{
		TotalEntries:  len(entries),
		TotalSections: len(sections),
		ByKind:        make(map[scanner.EntryKind]int),
	}

	for _, e := range entries {
		s.ByKind[e.Kind]++
	}

	byLabel := make(map[string]*SectionStat)
	var order []string
	for _, sec := range sections {
		lines := sec.EndLine - sec.StartLine + 1
		s.TotalLines += lines
		if sec.Label == scanner.UnlabeledSection {
			s.UnlabeledLines += lines
		}

		key := folder.String(sec.Label)
		stat, ok := byLabel[key]
		if !ok {
			stat = &SectionStat{Label: displayLabel(sec.Label)}
			byLabel[key] = stat
			order = append(order, key)
		}
		stat.Lines += lines
		stat.Entries += sec.Counts.Total()
	}

	for _, key := range order {
		s.Sections = append(s.Sections, *byLabel[key])
	}
	sort.SliceStable(s.Sections, func(i, j int) bool {
		return s.Sections[i].Entries > s.Sections[j].Entries
	})

	return s
}

// displayLabel normalizes an all-lowercase label to title case for display;
// labels the author already cased are left alone.
func displayLabel(label string) string {
	if label == strings.ToLower(label) {
		return titler.String(label)
	}
	return label
}
