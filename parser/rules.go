package parser

import "regexp"

// lineKind labels what a matched line declares.
type lineKind int

const (
	kindStartGoal lineKind = iota + 1 // start and goal on one line
	kindGoalStart                     // goal and start on one line, goal first
	kindStart                         // start only
	kindGoal                          // goal only
	kindNode                          // node declaration (weighted dialect)
)

// rule is one labeled pattern. Rule tables are tried in slice order and the
// first match wins, so precedence is the table order and nothing else.
type rule struct {
	label string
	kind  lineKind
	re    *regexp.Regexp
}

// match returns the first rule matching line and its submatches.
func match(rules []rule, line string) (rule, []string, bool) {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(line); m != nil {
			return r, m, true
		}
	}

	return rule{}, nil, false
}

// Unweighted (DFS) dialect. English markers must start the line; the
// Vietnamese ones may appear anywhere in it. Markers are case-sensitive;
// captured values are trimmed by the caller and may be empty ("Start:" means
// "not specified"). Both orders of the combined line are accepted.
const (
	viStart = `Trạng\s+thái\s+đầu`
	viGoal  = `Trạng\s+thái\s+kết\s+thúc`
)

var unweightedRules = []rule{
	{
		label: "start+goal",
		kind:  kindStartGoal,
		re:    regexp.MustCompile(`^(?:Start|.*?` + viStart + `)\s*:([^;]*);\s*(?:Goal|.*?` + viGoal + `)\s*:(.*)$`),
	},
	{
		label: "goal+start",
		kind:  kindGoalStart,
		re:    regexp.MustCompile(`^(?:Goal|.*?` + viGoal + `)\s*:([^;]*);\s*(?:Start|.*?` + viStart + `)\s*:(.*)$`),
	},
	{label: "start/en", kind: kindStart, re: regexp.MustCompile(`^Start\s*:(.*)$`)},
	{label: "start/vi", kind: kindStart, re: regexp.MustCompile(`^.*?` + viStart + `\s*:(.*)$`)},
	{label: "goal/en", kind: kindGoal, re: regexp.MustCompile(`^Goal\s*:(.*)$`)},
	{label: "goal/vi", kind: kindGoal, re: regexp.MustCompile(`^.*?` + viGoal + `\s*:(.*)$`)},
}

// viMarkerRe keeps any line mentioning a Vietnamese state marker out of the
// adjacency fallback, even when no marker rule matched it.
var viMarkerRe = regexp.MustCompile(`Trạng\s+thái`)

const nodeIDPattern = `([A-Za-z0-9_]+)`

// Weighted/heuristic dialect, shared by BNB and HC. The node declaration is
// tried first, then the four start forms, then the four goal forms.
var heuristicRules = []rule{
	{
		label: "node",
		kind:  kindNode,
		re:    regexp.MustCompile(`(?i)^` + nodeIDPattern + `\s*:\s*([^|#]*)\|\s*h\s*=\s*([+-]?\d+(?:\.\d+)?)$`),
	},
	{label: "start/assign", kind: kindStart, re: regexp.MustCompile(`(?i)^START\s*=\s*` + nodeIDPattern + `$`)},
	{label: "start/en", kind: kindStart, re: regexp.MustCompile(`(?i)^Start\s*:\s*` + nodeIDPattern + `$`)},
	{label: "start/vi", kind: kindStart, re: regexp.MustCompile(`(?i)^Trạng\s+thái\s+đầu\s*:\s*` + nodeIDPattern + `$`)},
	{label: "start/vi-short", kind: kindStart, re: regexp.MustCompile(`(?i)^Bắt\s+đầu\s*:\s*` + nodeIDPattern + `$`)},
	{label: "goal/assign", kind: kindGoal, re: regexp.MustCompile(`(?i)^GOAL\s*=\s*` + nodeIDPattern + `$`)},
	{label: "goal/en", kind: kindGoal, re: regexp.MustCompile(`(?i)^Goal\s*:\s*` + nodeIDPattern + `$`)},
	{label: "goal/vi", kind: kindGoal, re: regexp.MustCompile(`(?i)^Trạng\s+thái\s+kết\s+thúc\s*:\s*` + nodeIDPattern + `$`)},
	{label: "goal/vi-short", kind: kindGoal, re: regexp.MustCompile(`(?i)^Kết\s+thúc\s*:\s*` + nodeIDPattern + `$`)},
}

// edgeTokenRe matches a weighted neighbor token NAME(WEIGHT).
var edgeTokenRe = regexp.MustCompile(`^` + nodeIDPattern + `\(([-+]?\d+(?:\.\d+)?)\)$`)
