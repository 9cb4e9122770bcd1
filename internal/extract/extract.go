// Package extract turns raw appliance-manual text into candidate maintenance
// tasks. Manual text arrives noisy (PDF extraction artifacts, arbitrary line
// breaks), so extraction is a heuristic best-effort pass: false positives and
// missed tasks are expected, and results go to the user for review rather
// than being trusted outright.
package extract

import (
	"fmt"

	"github.com/harryphilip/household-manager/internal/maintenance"
)

// Candidate is a provisional task guess. It is never persisted; it either
// becomes a MaintenanceTask or is discarded.
type Candidate struct {
	TaskName    string
	Description string
	Frequency   maintenance.Frequency
	Keyword     string
	Start       int // byte offset of the source segment in the input
	End         int
}

// Extractor is the text-to-candidates capability. Backends are
// interchangeable: callers must not depend on which one produced a result.
// Extraction never fails; text with nothing to find yields an empty slice.
type Extractor interface {
	Extract(text string) []Candidate
}

// Options are the heuristic tuning knobs. There is no canonical value for
// any of them; the defaults are conservative.
type Options struct {
	MinSegmentLength    int     // segments shorter than this are noise
	SimilarityThreshold float64 // description overlap above this is a duplicate
	MaxCandidates       int     // cap on results per extraction run
	MaxInputBytes       int     // input beyond this is ignored
}

// DefaultOptions returns the defaults used when a field is zero.
func DefaultOptions() Options {
	return Options{
		MinSegmentLength:    10,
		SimilarityThreshold: 0.85,
		MaxCandidates:       10,
		MaxInputBytes:       256 * 1024,
	}
}

// New returns the extractor backend selected by name. Only the pattern
// backend ships; the name indirection keeps callers backend-agnostic.
func New(backend string, opts Options) (Extractor, error) {
	switch backend {
	case "", "pattern":
		return NewPatternExtractor(opts), nil
	default:
		return nil, fmt.Errorf("unknown extractor backend %q (supported: pattern)", backend)
	}
}
