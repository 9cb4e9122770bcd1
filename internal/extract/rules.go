package extract

import (
	"regexp"
	"strings"

	"github.com/harryphilip/household-manager/internal/maintenance"
)

// Action-word stems that mark a segment as maintenance-relevant. Stems so
// that "cleaning", "replaces", and "lubricating" all match. The first stem
// occurring in a segment anchors the derived task name.
var actionStems = []string{
	"descal",
	"defrost",
	"lubricat",
	"replac",
	"clean",
	"inspect",
	"vacuum",
	"flush",
	"drain",
	"empt",
	"wipe",
	"check",
	"test",
	"filter",
	"maintain",
}

var keywordPattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(actionStems, "|") + `)\w*`)

// matchKeyword returns the first maintenance action word in the segment and
// the byte offset where it starts, or ok=false for segments that are not
// candidates.
func matchKeyword(segment string) (keyword string, offset int, ok bool) {
	loc := keywordPattern.FindStringIndex(segment)
	if loc == nil {
		return "", 0, false
	}
	return strings.ToLower(segment[loc[0]:loc[1]]), loc[0], true
}

type frequencyRule struct {
	freq    maintenance.Frequency
	pattern *regexp.Regexp
}

// Frequency phrase rules, first match wins. Ordering is load-bearing:
// numeric-interval phrasings ("every 3 months", "every 6 months") and
// "semi-annual" must be tested before the generic monthly/annual keywords
// they would otherwise be mistaken for.
var frequencyRules = []frequencyRule{
	{maintenance.SemiAnnual, regexp.MustCompile(`(?i)semi[\s-]?annual(?:ly)?|every\s+(?:6|six)\s+months|twice\s+a\s+year`)},
	{maintenance.Quarterly, regexp.MustCompile(`(?i)quarterly|every\s+(?:3|three)\s+months|every\s+quarter`)},
	{maintenance.Annual, regexp.MustCompile(`(?i)annual(?:ly)?|yearly|once\s+a\s+year|every\s+year`)},
	{maintenance.Monthly, regexp.MustCompile(`(?i)monthly|every\s+month|once\s+a\s+month|every\s+30\s+days`)},
	{maintenance.Weekly, regexp.MustCompile(`(?i)weekly|every\s+week|once\s+a\s+week|every\s+7\s+days`)},
	{maintenance.Daily, regexp.MustCompile(`(?i)daily|every\s+day|each\s+day|once\s+a\s+day`)},
}

// guessFrequency scans a segment against the ordered rules. No match means
// no automatic schedule: the task is created as_needed and the user decides.
func guessFrequency(segment string) maintenance.Frequency {
	for _, rule := range frequencyRules {
		if rule.pattern.MatchString(segment) {
			return rule.freq
		}
	}
	return maintenance.AsNeeded
}
