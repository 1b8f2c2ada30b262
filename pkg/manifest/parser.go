package manifest

import (
	"regexp"
	"strings"
)

const (
	fenceMarker = "```"
	ruleMarker  = "---"
)

// sectionMarker matches a level-2 heading marker at the start of any line.
var sectionMarker = regexp.MustCompile(`(?m)^## `)

// scanState tracks where the body scanner is within a single section.
type scanState int

const (
	stateBeforeContent scanState = iota
	stateInFence
	stateDone
)

// Parse converts the text of one manifest document into its items, in order
// of appearance. Text before the first heading is ignored and sections
// without a path or content are dropped silently.
func Parse(text string) []Item {
	items := []Item{}
	for _, section := range sectionMarker.Split(text, -1)[1:] {
		if item, ok := ParseSection(section); ok {
			items = append(items, item)
		}
	}
	return items
}

// ParseSection parses the text following a single "## " marker. The first
// line is the path; the first content block found in the remaining lines is
// the content. The boolean is false when the section yields no item.
func ParseSection(section string) (Item, bool) {
	lines := strings.Split(section, "\n")
	item := Item{
		Path:    strings.TrimSpace(lines[0]),
		Content: scanContent(lines[1:]),
	}
	return item, item.Valid()
}

// scanContent returns the first content block in lines. A fenced block is
// returned verbatim and only once its closing fence is seen. Otherwise the
// first non-blank line that is neither a rule nor a fence starts a plain
// block running up to the next rule, returned trimmed.
func scanContent(lines []string) string {
	var (
		state   = stateBeforeContent
		fenced  []string
		content string
	)

	for i := 0; i < len(lines) && state != stateDone; i++ {
		line := lines[i]

		switch state {
		case stateBeforeContent:
			switch {
			case isFence(line):
				state = stateInFence
			case isRule(line), strings.TrimSpace(line) == "":
				// nothing started yet
			default:
				content = collectPlain(lines[i:])
				state = stateDone
			}
		case stateInFence:
			if isFence(line) {
				content = strings.Join(fenced, "\n")
				state = stateDone
				continue
			}
			fenced = append(fenced, line)
		}
	}

	return content
}

// collectPlain joins lines up to, not including, the first rule line.
func collectPlain(lines []string) string {
	end := len(lines)
	for i, line := range lines {
		if isRule(line) {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[:end], "\n"))
}

func isFence(line string) bool {
	return strings.HasPrefix(line, fenceMarker)
}

func isRule(line string) bool {
	return strings.HasPrefix(line, ruleMarker)
}
