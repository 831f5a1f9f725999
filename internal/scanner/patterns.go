package scanner

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	// Marker grammars. Order of evaluation lives in the Detector, not here.
	customStartRegex   = regexp.MustCompile(`(?i)^#\s*@start\s+(.+?)\s*$`)
	customEndRegex     = regexp.MustCompile(`(?i)^#\s*@end\b\s*(.*?)\s*$`)
	dashedEndRegex     = regexp.MustCompile(`^#\s*-{3,}\s*[Ee]nd\b\s*(.*?)\s*-{3,}\s*#?\s*$`)
	dashedStartRegex   = regexp.MustCompile(`^#\s*-{3,}\s*([^-\s].*?)\s*-{3,}\s*#?\s*$`)
	bracketedRegex     = regexp.MustCompile(`^#\s*\[(.+?)\]\s*$`)
	hashHeaderRegex    = regexp.MustCompile(`^#{2,}\s*(.+?)\s*#*\s*$`)
	functionStartRegex = regexp.MustCompile(`^(?:function\s+)?([A-Za-z_][A-Za-z0-9_-]*)\s*\(\)\s*\{`)
	functionEndRegex   = regexp.MustCompile(`^\}\s*$`)
	labeledRegex       = regexp.MustCompile(`(?i)^#\s*section:\s*(.+?)\s*$`)
)

var (
	// Entry grammars, tried in classification priority order.
	aliasRegex      = regexp.MustCompile(`^alias\s+(?:-[gs]\s+)?([^=\s]+)=(.*)$`)
	exportRegex     = regexp.MustCompile(`^export\s+([A-Za-z_][A-Za-z0-9_]*)(?:=(.*))?$`)
	evalRegex       = regexp.MustCompile(`^eval\s+(.+)$`)
	setoptRegex     = regexp.MustCompile(`^(?:un)?setopt\s+(.+)$`)
	pluginRegex     = regexp.MustCompile(`^plugins\+?=\(([^)]*)\)`)
	functionRegex   = regexp.MustCompile(`^function\s+([A-Za-z_][A-Za-z0-9_-]*)\b`)
	sourceRegex     = regexp.MustCompile(`^(?:source|\.)\s+(\S.*)$`)
	autoloadRegex   = regexp.MustCompile(`^autoload\b\s*(.*)$`)
	fpathRegex      = regexp.MustCompile(`^fpath\+?=\(([^)]*)\)`)
	pathRegex       = regexp.MustCompile(`^(?:PATH=|path\+?=\()(.*)$`)
	themeRegex      = regexp.MustCompile(`^ZSH_THEME=["']?([^"']*)["']?\s*$`)
	completionRegex = regexp.MustCompile(`^(?:compinit|zstyle)\b\s*(.*)$`)
	historyRegex    = regexp.MustCompile(`^([A-Za-z_]*HIST[A-Za-z_]*|SAVEHIST)=(.*)$`)
	keybindingRegex = regexp.MustCompile(`^bindkey\b\s*(.*)$`)

	// Secondary pattern for history lines: only variables that literally
	// begin with HIST yield a derived name.
	histNameRegex = regexp.MustCompile(`^(HIST[A-Za-z_]*)=`)
)

// Marker priorities, diagnostic only. Detection order is hardcoded in the
// Detector and never derived from these weights.
const (
	priorityCustomStart   = 100
	priorityCustomEnd     = 95
	priorityDashedEnd     = 90
	priorityDashedStart   = 85
	priorityBracketed     = 80
	priorityHash          = 75
	priorityFunctionStart = 70
	priorityFunctionEnd   = 65
	priorityLabeled       = 60
)

// entryGrammar pairs an entry kind with its matching regex.
type entryGrammar struct {
	kind EntryKind
	re   *regexp.Regexp
}

// entryGrammars is the fixed classification priority order. First match wins;
// later grammars are never tried.
var entryGrammars = []entryGrammar{
	{KindAlias, aliasRegex},
	{KindExport, exportRegex},
	{KindEval, evalRegex},
	{KindSetopt, setoptRegex},
	{KindPlugin, pluginRegex},
	{KindFunction, functionRegex},
	{KindSource, sourceRegex},
	{KindAutoload, autoloadRegex},
	{KindFpath, fpathRegex},
	{KindPath, pathRegex},
	{KindTheme, themeRegex},
	{KindCompletion, completionRegex},
	{KindHistory, historyRegex},
	{KindKeybinding, keybindingRegex},
}

// Registry holds the active marker grammars for one scan, including any
// validated user-supplied custom patterns.
type Registry struct {
	customStart *regexp.Regexp
	customEnd   *regexp.Regexp
	header      *regexp.Regexp // extra header grammar, nil unless configured
	defaults    bool
}

// Options configures which marker grammars participate in a scan.
// The zero value is not useful; use DefaultOptions as a base.
type Options struct {
	EnableDefaults bool

	EnableCustomHeaderPattern bool
	CustomHeaderPattern       string

	EnableCustomStartEndPatterns bool
	CustomStartPattern           string
	CustomEndPattern             string
}

// DefaultOptions enables the built-in grammars and no custom patterns.
func DefaultOptions() Options {
	return Options{EnableDefaults: true}
}

// NewRegistry builds the grammar set for one scan. Invalid custom patterns
// are logged and skipped; the scan proceeds with the built-ins.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		customStart: customStartRegex,
		customEnd:   customEndRegex,
		defaults:    opts.EnableDefaults,
	}

	if opts.EnableCustomHeaderPattern {
		if re, err := compileCustomPattern(opts.CustomHeaderPattern); err != nil {
			slog.Warn("ignoring custom header pattern", "pattern", opts.CustomHeaderPattern, "err", err)
		} else {
			r.header = re
		}
	}

	if opts.EnableCustomStartEndPatterns {
		start, errS := compileCustomPattern(opts.CustomStartPattern)
		end, errE := compileCustomPattern(opts.CustomEndPattern)
		if errS != nil || errE != nil {
			err := errS
			if err == nil {
				err = errE
			}
			slog.Warn("ignoring custom start/end patterns", "err", err)
		} else {
			r.customStart = start
			r.customEnd = end
		}
	}

	return r
}

// compileCustomPattern validates a user-supplied pattern: it must compile and
// contain exactly one capture group. Patterns are matched case-insensitively
// and anchored to line start if not already anchored.
func compileCustomPattern(pattern string) (*regexp.Regexp, error) {
	src := strings.TrimSpace(pattern)
	if src == "" {
		return nil, errEmptyPattern
	}
	if !strings.HasPrefix(src, "^") {
		src = "^" + src
	}
	re, err := regexp.Compile("(?i)" + src)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() != 1 {
		return nil, errCaptureCount
	}
	return re, nil
}

// matchEntry returns the first entry grammar matching the line, with its
// submatches, or ok=false when nothing matches.
func matchEntry(line string) (EntryKind, []string, bool) {
	for _, g := range entryGrammars {
		if m := g.re.FindStringSubmatch(line); m != nil {
			return g.kind, m, true
		}
	}
	return KindOther, nil, false
}

// CountKinds tallies classified lines per kind over a content slice.
// Plugin and fpath statements count one per declared token, matching the
// fan-out behavior of the classifier.
func (r *Registry) CountKinds(content string) KindCounts {
	counts := make(KindCounts)
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		kind, m, ok := matchEntry(line)
		if !ok {
			continue
		}
		switch kind {
		case KindPlugin, KindFpath:
			counts[kind] += len(strings.Fields(m[1]))
		default:
			counts[kind]++
		}
	}
	return counts
}

type registryError string

func (e registryError) Error() string { return string(e) }

const (
	errEmptyPattern registryError = "empty pattern"
	errCaptureCount registryError = "pattern must contain exactly one capture group"
)
