package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen        = 80
	maxDescriptionLen = 500
)

// PatternExtractor is the rule-table backend: sentence segmentation, keyword
// matching, and ordered frequency-phrase rules.
type PatternExtractor struct {
	opts Options
}

func NewPatternExtractor(opts Options) *PatternExtractor {
	def := DefaultOptions()
	if opts.MinSegmentLength <= 0 {
		opts.MinSegmentLength = def.MinSegmentLength
	}
	if opts.SimilarityThreshold <= 0 {
		opts.SimilarityThreshold = def.SimilarityThreshold
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = def.MaxCandidates
	}
	if opts.MaxInputBytes <= 0 {
		opts.MaxInputBytes = def.MaxInputBytes
	}
	return &PatternExtractor{opts: opts}
}

func (e *PatternExtractor) Extract(text string) []Candidate {
	if len(text) > e.opts.MaxInputBytes {
		text = text[:e.opts.MaxInputBytes]
	}

	var out []Candidate
	for _, seg := range splitSegments(text) {
		norm := collapseWhitespace(seg.text)
		if len(norm) < e.opts.MinSegmentLength {
			continue
		}
		keyword, offset, ok := matchKeyword(norm)
		if !ok {
			continue
		}

		cand := Candidate{
			TaskName:    deriveName(norm, offset),
			Description: truncate(norm, maxDescriptionLen),
			Frequency:   guessFrequency(norm),
			Keyword:     keyword,
			Start:       seg.start,
			End:         seg.end,
		}
		if e.isDuplicate(out, cand) {
			continue
		}
		out = append(out, cand)
		if len(out) >= e.opts.MaxCandidates {
			break
		}
	}
	return out
}

type segment struct {
	text       string
	start, end int
}

// splitSegments breaks text into sentence-like chunks on terminating
// punctuation and line breaks, keeping byte offsets into the original text.
func splitSegments(text string) []segment {
	var segs []segment
	start := 0
	for i, r := range text {
		switch r {
		case '.', '!', '?', '\n', '\r':
			if i > start {
				segs = append(segs, segment{text: text[start:i], start: start, end: i})
			}
			start = i + 1
		}
	}
	if start < len(text) {
		segs = append(segs, segment{text: text[start:], start: start, end: len(text)})
	}
	return segs
}

var nonNameChars = regexp.MustCompile(`[^\w\s-]`)

// deriveName builds a short task name from the verb phrase that starts at
// the matched keyword: cut at clause punctuation, strip symbols, bound the
// length at a word boundary.
func deriveName(seg string, offset int) string {
	name := seg[offset:]
	if i := strings.IndexAny(name, ",;:("); i > 0 {
		name = name[:i]
	}
	name = collapseWhitespace(nonNameChars.ReplaceAllString(name, ""))
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
		if i := strings.LastIndex(name, " "); i > 0 {
			name = name[:i]
		}
	}
	if name == "" {
		return "Maintenance task"
	}
	r, size := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r)) + name[size:]
}

// isDuplicate reports whether cand repeats an earlier candidate: same
// normalized name, or description overlap above the similarity threshold.
// Manuals repeat instructions across sections; the first occurrence wins.
func (e *PatternExtractor) isDuplicate(seen []Candidate, cand Candidate) bool {
	name := normalizeName(cand.TaskName)
	for _, prev := range seen {
		if normalizeName(prev.TaskName) == name {
			return true
		}
		if similarity(prev.Description, cand.Description) >= e.opts.SimilarityThreshold {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	return collapseWhitespace(strings.ToLower(s))
}

// similarity is the Dice coefficient over lowercase word sets. Crude, but
// enough to catch restated instructions with minor wording changes.
func similarity(a, b string) float64 {
	aw := tokenSet(a)
	bw := tokenSet(b)
	if len(aw) == 0 || len(bw) == 0 {
		return 0
	}
	common := 0
	for w := range aw {
		if bw[w] {
			common++
		}
	}
	return 2 * float64(common) / float64(len(aw)+len(bw))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[strings.Trim(w, ".,;:!?()")] = true
	}
	delete(set, "")
	return set
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut
}
