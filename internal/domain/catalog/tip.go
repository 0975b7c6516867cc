package catalog

import (
	"regexp"
	"strings"
)

// TipStep is one main step of a guidance block, with optional
// sub-items. Tips are stored as plain multi-line text and parsed on
// demand; the parsed form is never persisted.
type TipStep struct {
	Text string   `json:"text"`
	Sub  []string `json:"sub,omitempty"`
}

var mainStepRe = regexp.MustCompile(`^\d+\.`)

// ParseTip splits a tip into a two-level list: lines starting with
// "<n>." open a new main step, lines starting with "-" or "•" attach
// to the current step as sub-items. Anything else becomes its own
// step. Empty lines are skipped.
func ParseTip(tip string) []TipStep {
	var steps []TipStep
	for _, raw := range strings.Split(tip, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case mainStepRe.MatchString(line):
			steps = append(steps, TipStep{Text: line})
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
			if len(steps) == 0 {
				steps = append(steps, TipStep{Text: line})
				continue
			}
			last := &steps[len(steps)-1]
			last.Sub = append(last.Sub, line)
		default:
			steps = append(steps, TipStep{Text: line})
		}
	}
	return steps
}
