package scanner

import "strings"

// EntryKind identifies the configuration statement type of a classified line.
type EntryKind string

const (
	KindAlias      EntryKind = "alias"
	KindExport     EntryKind = "export"
	KindEval       EntryKind = "eval"
	KindSetopt     EntryKind = "setopt"
	KindPlugin     EntryKind = "plugin"
	KindFunction   EntryKind = "function"
	KindSource     EntryKind = "source"
	KindAutoload   EntryKind = "autoload"
	KindFpath      EntryKind = "fpath"
	KindPath       EntryKind = "path"
	KindTheme      EntryKind = "theme"
	KindCompletion EntryKind = "completion"
	KindHistory    EntryKind = "history"
	KindKeybinding EntryKind = "keybinding"
	KindOther      EntryKind = "other"
)

// Kinds lists every entry kind in classification priority order, with
// KindOther last.
var Kinds = []EntryKind{
	KindAlias, KindExport, KindEval, KindSetopt, KindPlugin,
	KindFunction, KindSource, KindAutoload, KindFpath, KindPath,
	KindTheme, KindCompletion, KindHistory, KindKeybinding, KindOther,
}

// Entry is one classified configuration statement. Entries are immutable
// once produced and appear in source line order.
type Entry struct {
	Kind     EntryKind `yaml:"kind"`
	Line     int       `yaml:"line"`
	Original string    `yaml:"original"`
	Section  string    `yaml:"section,omitempty"`

	// Kind-specific fields. Name holds the alias name, exported variable,
	// plugin name, function name, sourced file, or history variable; Value
	// holds the alias command, exported value, or assignment right-hand side.
	Name  string `yaml:"name,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// KindCounts maps entry kinds to occurrence counts within a section.
type KindCounts map[EntryKind]int

// Total sums all counts.
func (c KindCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Add merges other into c.
func (c KindCounts) Add(other KindCounts) {
	for k, v := range other {
		c[k] += v
	}
}

// ClassifyLine classifies one non-marker line into one or more typed entries.
// Every non-empty line yields at least one entry; unrecognized lines yield a
// single KindOther entry so nothing is silently lost.
func ClassifyLine(line string, lineNumber int, section string) []Entry {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	base := Entry{
		Line:     lineNumber,
		Original: line,
		Section:  section,
	}

	kind, m, ok := matchEntry(trimmed)
	if !ok {
		base.Kind = KindOther
		return []Entry{base}
	}
	base.Kind = kind

	switch kind {
	case KindAlias:
		base.Name = m[1]
		base.Value = stripQuotes(m[2])
	case KindExport:
		base.Name = m[1]
		base.Value = stripQuotes(m[2])
	case KindPlugin, KindFpath:
		return fanOut(base, m[1])
	case KindFunction:
		base.Name = m[1]
	case KindSource:
		base.Value = m[1]
	case KindTheme:
		base.Name = "ZSH_THEME"
		base.Value = m[1]
	case KindHistory:
		base.Name = histVarName(trimmed)
		base.Value = stripQuotes(m[2])
	default:
		base.Value = strings.TrimSpace(m[1])
	}

	return []Entry{base}
}

// fanOut expands a multi-value statement like plugins=(git docker node) into
// one entry per token, all sharing the statement's line number.
func fanOut(base Entry, inner string) []Entry {
	names := strings.Fields(inner)
	if len(names) == 0 {
		return []Entry{base}
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		e := base
		e.Name = stripQuotes(name)
		entries = append(entries, e)
	}
	return entries
}

// histVarName derives the assigned variable name for a history line. Only
// names literally beginning with HIST are derived; anything else (SAVEHIST,
// prefixed forms) falls back to the literal "HIST" rather than failing.
func histVarName(line string) string {
	if m := histNameRegex.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return "HIST"
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
