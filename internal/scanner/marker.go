package scanner

import "strings"

// MarkerType identifies which grammar recognized a section boundary line.
type MarkerType string

const (
	MarkerCustomStart   MarkerType = "custom_start"
	MarkerCustomEnd     MarkerType = "custom_end"
	MarkerDashedStart   MarkerType = "dashed_start"
	MarkerDashedEnd     MarkerType = "dashed_end"
	MarkerBracketed     MarkerType = "bracketed"
	MarkerHash          MarkerType = "hash"
	MarkerFunctionStart MarkerType = "function_start"
	MarkerFunctionEnd   MarkerType = "function_end"
	MarkerLabeled       MarkerType = "labeled"
)

// Marker is a detected section boundary token. It is produced and consumed
// per line; nothing retains it past the context update.
type Marker struct {
	Type     MarkerType
	Name     string
	Line     int
	Original string
	Priority int
}

// IsSectionStart reports whether the marker opens a named section.
// Function starts are handled separately by the context tracker.
func (m *Marker) IsSectionStart() bool {
	switch m.Type {
	case MarkerCustomStart, MarkerDashedStart, MarkerBracketed, MarkerHash, MarkerLabeled:
		return true
	}
	return false
}

// IsSectionEnd reports whether the marker closes a section.
func (m *Marker) IsSectionEnd() bool {
	return m.Type == MarkerCustomEnd || m.Type == MarkerDashedEnd
}

// Detector classifies single lines as section boundary markers.
type Detector struct {
	reg *Registry
}

// NewDetector creates a Detector over the given grammar registry.
func NewDetector(reg *Registry) *Detector {
	return &Detector{reg: reg}
}

// Detect returns the marker a line represents, or nil for non-marker lines.
// Grammars are evaluated in a fixed priority order; the first match wins and
// later grammars are never tried. End forms are tested before their start
// forms where the grammars textually overlap ("# --- End X --- #" would
// otherwise satisfy the looser dashed start form too), and the specific
// comment forms before the bare hash header that subsumes them.
func (d *Detector) Detect(line string, lineNumber int) *Marker {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	mk := func(t MarkerType, name string, priority int) *Marker {
		return &Marker{
			Type:     t,
			Name:     strings.TrimSpace(name),
			Line:     lineNumber,
			Original: line,
			Priority: priority,
		}
	}

	if m := d.reg.customStart.FindStringSubmatch(trimmed); m != nil {
		return mk(MarkerCustomStart, m[1], priorityCustomStart)
	}
	if m := d.reg.customEnd.FindStringSubmatch(trimmed); m != nil {
		return mk(MarkerCustomEnd, m[1], priorityCustomEnd)
	}

	if d.reg.defaults {
		if m := dashedEndRegex.FindStringSubmatch(trimmed); m != nil {
			return mk(MarkerDashedEnd, m[1], priorityDashedEnd)
		}
		if m := dashedStartRegex.FindStringSubmatch(trimmed); m != nil {
			return mk(MarkerDashedStart, m[1], priorityDashedStart)
		}
		if m := bracketedRegex.FindStringSubmatch(trimmed); m != nil {
			return mk(MarkerBracketed, m[1], priorityBracketed)
		}
	}

	if d.reg.header != nil {
		if m := d.reg.header.FindStringSubmatch(trimmed); m != nil {
			return mk(MarkerHash, m[1], priorityHash)
		}
	}

	if d.reg.defaults {
		if m := hashHeaderRegex.FindStringSubmatch(trimmed); m != nil {
			return mk(MarkerHash, m[1], priorityHash)
		}
	}

	if m := functionStartRegex.FindStringSubmatch(trimmed); m != nil {
		return mk(MarkerFunctionStart, m[1], priorityFunctionStart)
	}
	if functionEndRegex.MatchString(trimmed) {
		return mk(MarkerFunctionEnd, "", priorityFunctionEnd)
	}

	if d.reg.defaults {
		if m := labeledRegex.FindStringSubmatch(trimmed); m != nil {
			return mk(MarkerLabeled, m[1], priorityLabeled)
		}
	}

	return nil
}
