package scanner

import "strings"

// UnlabeledSection is the label given to line ranges no marker applied to.
const UnlabeledSection = "Unlabeled"

// LogicalSection is a contiguous, closed range of the file carrying one
// section label and per-kind entry counts. Lines are 1-indexed inclusive.
type LogicalSection struct {
	Label     string     `yaml:"label"`
	StartLine int        `yaml:"start_line"`
	EndLine   int        `yaml:"end_line"`
	Content   string     `yaml:"content"`
	Counts    KindCounts `yaml:"counts"`
}

// buildSections performs the range-delimiting pass over the file. Ranges are
// defined purely by marker positions: a start marker opens a range at its own
// line, an end marker closes the open range at its own line and the next
// range begins two lines later (skipping the marker and the conventional
// blank line after it). A trailing range is flushed at end of file so files
// without a closing marker still produce a final section. Function markers
// only update the nesting context; they never delimit ranges.
func buildSections(lines []string, det *Detector, reg *Registry) []LogicalSection {
	var sections []LogicalSection
	ctx := Context{}
	pendingLabel := ""
	start := 0

	emit := func(startIdx, endIdx int, label string) {
		if startIdx < 0 || startIdx >= len(lines) {
			return
		}
		if endIdx > len(lines)-1 {
			endIdx = len(lines) - 1
		}
		if endIdx < startIdx {
			return
		}
		if label == "" {
			label = UnlabeledSection
		}
		nonEmpty := countNonEmpty(lines[startIdx : endIdx+1])
		if nonEmpty == 0 {
			return
		}
		content := strings.Join(lines[startIdx:endIdx+1], "\n")
		counts := reg.CountKinds(content)
		if other := nonEmpty - counts.Total(); other > 0 {
			counts[KindOther] = other
		}
		sections = append(sections, LogicalSection{
			Label:     label,
			StartLine: startIdx + 1,
			EndLine:   endIdx + 1,
			Content:   content,
			Counts:    counts,
		})
	}

	for i, line := range lines {
		m := det.Detect(line, i+1)
		if m == nil {
			continue
		}
		switch {
		case m.IsSectionEnd():
			emit(start, i, pendingLabel)
			pendingLabel = ""
			start = i + 2
		case m.IsSectionStart():
			emit(start, i-1, pendingLabel)
			pendingLabel = m.Name
			start = i
		}
		ctx = ctx.Apply(m)
	}

	emit(start, len(lines)-1, pendingLabel)

	return mergeUnlabeled(sections)
}

// mergeUnlabeled collapses runs of adjacent Unlabeled sections into one unit
// so unlabeled filler is not presented as many tiny meaningless sections.
func mergeUnlabeled(sections []LogicalSection) []LogicalSection {
	if len(sections) < 2 {
		return sections
	}
	merged := make([]LogicalSection, 0, len(sections))
	for _, s := range sections {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.Label == UnlabeledSection && s.Label == UnlabeledSection {
				last.EndLine = s.EndLine
				last.Content = last.Content + "\n" + s.Content
				last.Counts.Add(s.Counts)
				continue
			}
		}
		merged = append(merged, s)
	}
	return merged
}

func countNonEmpty(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
