package scanner

import (
	"strings"
	"unicode"
)

// functionSectionPrefix labels sections synthesized from function bodies.
const functionSectionPrefix = "Function: "

// descriptiveVerbs are prefixes that mark a function as substantial enough
// to segment the file regardless of its name shape.
var descriptiveVerbs = []string{
	"setup", "init", "config", "install", "update", "clean", "build", "deploy",
}

// Context is the running parse state threaded through a scan: the stack of
// open section names (outermost first) and the depth of open function bodies.
// It is a value; Apply returns an updated copy so two scans never interfere.
type Context struct {
	sections      []string
	functionLevel int
}

// Current returns the innermost open section name, or "" when none is open.
func (c Context) Current() string {
	if len(c.sections) == 0 {
		return ""
	}
	return c.sections[len(c.sections)-1]
}

// Stack returns the open section names, outermost first.
func (c Context) Stack() []string {
	out := make([]string, len(c.sections))
	copy(out, c.sections)
	return out
}

// FunctionLevel returns the current function body nesting depth.
func (c Context) FunctionLevel() int { return c.functionLevel }

// Apply consumes one marker and returns the resulting context. Popping past
// an empty stack is a no-op, and end markers unwind the nearest open section
// without checking that names match.
func (c Context) Apply(m *Marker) Context {
	switch {
	case m == nil:
		return c
	case m.IsSectionStart():
		return c.push(m.Name)
	case m.IsSectionEnd():
		return c.pop()
	case m.Type == MarkerFunctionStart:
		next := c
		next.functionLevel++
		if isDescriptiveName(m.Name) {
			next = next.push(functionSectionPrefix + m.Name)
		}
		return next
	case m.Type == MarkerFunctionEnd:
		next := c
		if next.functionLevel > 0 {
			next.functionLevel--
		}
		if next.functionLevel == 0 && strings.HasPrefix(next.Current(), functionSectionPrefix) {
			next = next.pop()
		}
		return next
	}
	return c
}

func (c Context) push(name string) Context {
	sections := make([]string, len(c.sections), len(c.sections)+1)
	copy(sections, c.sections)
	return Context{
		sections:      append(sections, name),
		functionLevel: c.functionLevel,
	}
}

func (c Context) pop() Context {
	if len(c.sections) == 0 {
		return c
	}
	sections := make([]string, len(c.sections)-1)
	copy(sections, c.sections[:len(c.sections)-1])
	return Context{
		sections:      sections,
		functionLevel: c.functionLevel,
	}
}

// isDescriptiveName decides whether a function name is substantial enough to
// be treated as its own section: at least three letters, snake_case,
// camelCase, or a recognized verb prefix. Intentionally permissive; a
// spurious section beats missed structure on files organized by functions.
func isDescriptiveName(name string) bool {
	letters := 0
	hasUnderscore := false
	hasCamelBoundary := false
	prev := rune(0)
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
		}
		if r == '_' {
			hasUnderscore = true
		}
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			hasCamelBoundary = true
		}
		prev = r
	}
	if letters >= 3 || hasUnderscore || hasCamelBoundary {
		return true
	}
	lower := strings.ToLower(name)
	for _, verb := range descriptiveVerbs {
		if strings.HasPrefix(lower, verb) {
			return true
		}
	}
	return false
}
