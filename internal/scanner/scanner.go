// Package scanner converts raw zsh configuration text into typed entries and
// logical sections. It is a single-pass, read-only classifier: no full shell
// grammar, no I/O, no shared state. Malformed input degrades to best-effort
// structure instead of erroring.
package scanner

import "strings"

// Scanner runs the classification engine over in-memory file content.
// It is stateless between calls; scanning the same content twice yields
// identical results.
type Scanner struct {
	reg *Registry
	det *Detector
}

// New creates a Scanner with the given marker grammar options.
func New(opts Options) *Scanner {
	reg := NewRegistry(opts)
	return &Scanner{
		reg: reg,
		det: NewDetector(reg),
	}
}

// Default creates a Scanner with the built-in grammars only.
func Default() *Scanner {
	return New(DefaultOptions())
}

// Detector exposes the marker detector for per-line use.
func (s *Scanner) Detector() *Detector { return s.det }

// Registry exposes the active grammar registry.
func (s *Scanner) Registry() *Registry { return s.reg }

// Entries runs the line classification pass: every non-empty, non-marker
// line yields one or more typed entries tagged with the section open at that
// point; marker lines only update the section context.
func (s *Scanner) Entries(content string) []Entry {
	var entries []Entry
	ctx := Context{}

	for i, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := s.det.Detect(line, i+1); m != nil {
			ctx = ctx.Apply(m)
			continue
		}
		entries = append(entries, ClassifyLine(line, i+1, ctx.Current())...)
	}

	return entries
}

// Sections runs the range-delimiting pass and returns the logical section
// list, with adjacent unlabeled ranges merged.
func (s *Scanner) Sections(content string) []LogicalSection {
	return buildSections(splitLines(content), s.det, s.reg)
}

// Scan produces both outputs in one call.
func (s *Scanner) Scan(content string) ([]Entry, []LogicalSection) {
	return s.Entries(content), s.Sections(content)
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
