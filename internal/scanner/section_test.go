package scanner

import (
	"strings"
	"testing"
)

func TestSectionsBasic(t *testing.T) {
	content := strings.Join([]string{
		"# --- Python Environment --- #",
		`alias py="python3"`,
		"# --- End Python Environment --- #",
		"# [Node.js Tools]",
		"export NODE_PATH=/usr/local/lib/node_modules",
	}, "\n")

	sections := Default().Sections(content)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(sections), sections)
	}

	py := sections[0]
	if py.Label != "Python Environment" {
		t.Errorf("label = %q, want Python Environment", py.Label)
	}
	if py.StartLine != 1 || py.EndLine != 3 {
		t.Errorf("range = %d-%d, want 1-3", py.StartLine, py.EndLine)
	}
	if py.Counts[KindAlias] != 1 {
		t.Errorf("aliasCount = %d, want 1", py.Counts[KindAlias])
	}

	node := sections[1]
	if node.Label != "Node.js Tools" {
		t.Errorf("label = %q, want Node.js Tools", node.Label)
	}
	if node.StartLine != 4 || node.EndLine != 5 {
		t.Errorf("range = %d-%d, want 4-5", node.StartLine, node.EndLine)
	}
	if node.Counts[KindExport] != 1 {
		t.Errorf("exportCount = %d, want 1", node.Counts[KindExport])
	}
}

func TestSectionsCountsSumToNonEmptyLines(t *testing.T) {
	content := strings.Join([]string{
		"# --- Shell Options --- #",
		"setopt AUTO_CD",
		"",
		"ulimit -n 4096",
		"# --- End --- #",
	}, "\n")

	sections := Default().Sections(content)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	s := sections[0]
	nonEmpty := 0
	for _, line := range strings.Split(s.Content, "\n") {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	if got := s.Counts.Total(); got != nonEmpty {
		t.Errorf("counts total = %d, want %d non-empty lines", got, nonEmpty)
	}
}

func TestSectionsTrailingRangeWithoutEndMarker(t *testing.T) {
	content := strings.Join([]string{
		"# [Aliases]",
		"alias ll='ls -la'",
		"alias la='ls -A'",
	}, "\n")

	sections := Default().Sections(content)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	s := sections[0]
	if s.Label != "Aliases" || s.StartLine != 1 || s.EndLine != 3 {
		t.Errorf("got %q %d-%d, want Aliases 1-3", s.Label, s.StartLine, s.EndLine)
	}
	if s.Counts[KindAlias] != 2 {
		t.Errorf("aliasCount = %d, want 2", s.Counts[KindAlias])
	}
}

func TestSectionsUnlabeledMerge(t *testing.T) {
	// Two unlabeled stretches separated by end markers collapse into one
	// logical unit with summed counts and an extended range.
	content := strings.Join([]string{
		"alias a='1'",
		"# @end",
		"",
		"alias b='2'",
		"export FOO=bar",
		"# @end",
		"",
		"alias c='3'",
	}, "\n")

	sections := Default().Sections(content)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1 merged: %+v", len(sections), sections)
	}
	s := sections[0]
	if s.Label != UnlabeledSection {
		t.Errorf("label = %q, want %s", s.Label, UnlabeledSection)
	}
	if s.EndLine != 8 {
		t.Errorf("endLine = %d, want 8", s.EndLine)
	}
	if s.Counts[KindAlias] != 3 {
		t.Errorf("aliasCount = %d, want 3", s.Counts[KindAlias])
	}
	if s.Counts[KindExport] != 1 {
		t.Errorf("exportCount = %d, want 1", s.Counts[KindExport])
	}
}

func TestSectionsDegenerateRangeDropped(t *testing.T) {
	// Back-to-back markers produce zero-length ranges that must not appear.
	content := strings.Join([]string{
		"# [First]",
		"# [Second]",
		"alias x='y'",
	}, "\n")

	sections := Default().Sections(content)
	for _, s := range sections {
		if s.EndLine < s.StartLine {
			t.Errorf("degenerate section emitted: %+v", s)
		}
	}
	last := sections[len(sections)-1]
	if last.Label != "Second" {
		t.Errorf("last label = %q, want Second", last.Label)
	}
}

func TestSectionsOtherCountNeverNegative(t *testing.T) {
	// plugins fan-out can make typed counts exceed the line count; the
	// other count clamps at zero instead of going negative.
	content := "plugins=(git docker node fzf)"
	sections := Default().Sections(content)
	if len(sections) != 1 {
		t.Fatalf("got %d sections", len(sections))
	}
	if c := sections[0].Counts[KindOther]; c != 0 {
		t.Errorf("otherCount = %d, want 0", c)
	}
	if c := sections[0].Counts[KindPlugin]; c != 4 {
		t.Errorf("pluginCount = %d, want 4", c)
	}
}

func TestSectionsEmptyContent(t *testing.T) {
	sections := Default().Sections("")
	if len(sections) != 0 {
		t.Errorf("got %d sections for empty input, want 0", len(sections))
	}
}
