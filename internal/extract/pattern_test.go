package extract

import (
	"strings"
	"testing"

	"github.com/harryphilip/household-manager/internal/maintenance"
)

func newTestExtractor(t *testing.T) *PatternExtractor {
	t.Helper()
	return NewPatternExtractor(Options{})
}

func TestExtractScenario(t *testing.T) {
	text := "Clean the air filter monthly. Inspect the coils quarterly for dust buildup. Replace the water filter annually."
	cands := newTestExtractor(t).Extract(text)

	if len(cands) != 3 {
		t.Fatalf("got %d candidates, want 3: %+v", len(cands), cands)
	}

	want := []struct {
		freq     maintenance.Frequency
		sentence string
	}{
		{maintenance.Monthly, "Clean the air filter monthly"},
		{maintenance.Quarterly, "Inspect the coils quarterly for dust buildup"},
		{maintenance.Annual, "Replace the water filter annually"},
	}
	for i, w := range want {
		if cands[i].Frequency != w.freq {
			t.Errorf("candidate[%d].Frequency = %s, want %s", i, cands[i].Frequency, w.freq)
		}
		if !strings.Contains(cands[i].Description, w.sentence) {
			t.Errorf("candidate[%d].Description = %q, want it to contain %q", i, cands[i].Description, w.sentence)
		}
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestExtractor(t)
	for _, text := range []string{"", "   ", "\n\n\t \n"} {
		if got := e.Extract(text); len(got) != 0 {
			t.Errorf("Extract(%q) = %d candidates, want 0", text, len(got))
		}
	}
}

func TestExtractNonMaintenanceText(t *testing.T) {
	text := "Congratulations on your purchase. This warranty covers defects in materials for one year from the date of sale."
	if got := newTestExtractor(t).Extract(text); len(got) != 0 {
		t.Errorf("got %d candidates from warranty text, want 0: %+v", len(got), got)
	}
}

func TestExtractDeduplicatesRepeatedSentence(t *testing.T) {
	text := "Clean the filter monthly. The drain hose must not be kinked. Clean the filter monthly."
	cands := newTestExtractor(t).Extract(text)

	count := 0
	for _, c := range cands {
		if strings.Contains(strings.ToLower(c.Description), "clean the filter monthly") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("repeated instruction yielded %d candidates, want 1", count)
	}
}

func TestExtractDeduplicatesRestatedSentence(t *testing.T) {
	// Same instruction with trivial wording noise should collapse; a genuinely
	// different instruction should not.
	text := "Clean the dryer lint screen before every load to keep air flowing. " +
		"Clean the dryer lint screen before every load to keep the air flowing. " +
		"Replace the drive belt if it shows cracks."
	cands := newTestExtractor(t).Extract(text)
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(cands), cands)
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "Descale the machine every 3 months. Wipe the door seal weekly."
	e := newTestExtractor(t)

	first := e.Extract(text)
	second := e.Extract(text)
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("candidate[%d] differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFrequencyPrecedence(t *testing.T) {
	cases := []struct {
		segment string
		want    maintenance.Frequency
	}{
		{"descale the boiler every 3 months", maintenance.Quarterly},
		{"replace the filter every 6 months", maintenance.SemiAnnual},
		{"service the unit semi-annually", maintenance.SemiAnnual},
		{"have the system inspected twice a year", maintenance.SemiAnnual},
		{"lubricate the fan motor annually", maintenance.Annual},
		{"check the hoses yearly", maintenance.Annual},
		{"clean the trap monthly", maintenance.Monthly},
		{"wipe the gasket every week", maintenance.Weekly},
		{"empty the crumb tray daily", maintenance.Daily},
		{"rinse the carafe after every use", maintenance.AsNeeded},
	}
	for _, tc := range cases {
		if got := guessFrequency(tc.segment); got != tc.want {
			t.Errorf("guessFrequency(%q) = %s, want %s", tc.segment, got, tc.want)
		}
	}
}

func TestKeywordStemsMatchInflections(t *testing.T) {
	for _, seg := range []string{
		"Cleaning the condenser coils improves efficiency",
		"Lubricating the hinges keeps the door quiet",
		"The filter should be replaced monthly",
	} {
		if _, _, ok := matchKeyword(seg); !ok {
			t.Errorf("matchKeyword(%q) found nothing", seg)
		}
	}
}

func TestDeriveNameStartsAtKeyword(t *testing.T) {
	text := "For best results you should clean the condenser coils monthly."
	cands := newTestExtractor(t).Extract(text)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if !strings.HasPrefix(cands[0].TaskName, "Clean") {
		t.Errorf("task name = %q, want it anchored at the keyword", cands[0].TaskName)
	}
}

func TestDeriveNameBounded(t *testing.T) {
	long := "Clean the " + strings.Repeat("very ", 40) + "dirty filter monthly."
	cands := newTestExtractor(t).Extract(long)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if len(cands[0].TaskName) > maxNameLen {
		t.Errorf("task name length = %d, want <= %d", len(cands[0].TaskName), maxNameLen)
	}
}

func TestShortSegmentsDropped(t *testing.T) {
	// "Clean." survives segmentation but is below the minimum length.
	if got := newTestExtractor(t).Extract("Clean. Ok. Yes."); len(got) != 0 {
		t.Errorf("got %d candidates from noise segments, want 0", len(got))
	}
}

func TestSegmentOffsets(t *testing.T) {
	text := "Unpack the unit carefully. Inspect the door seal weekly."
	cands := newTestExtractor(t).Extract(text)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	src := text[cands[0].Start:cands[0].End]
	if !strings.Contains(src, "Inspect the door seal weekly") {
		t.Errorf("span %d:%d = %q, want the source sentence", cands[0].Start, cands[0].End, src)
	}
}

func TestMaxCandidatesCap(t *testing.T) {
	var sb strings.Builder
	parts := []string{"air filter", "water filter", "door seal", "drain pump", "condenser coil",
		"drive belt", "fan blade", "ice maker", "spray arm", "heating element", "thermostat", "drum bearing"}
	for i, p := range parts {
		sb.WriteString("Clean the ")
		sb.WriteString(p)
		if i%2 == 0 {
			sb.WriteString(" thoroughly monthly. ")
		} else {
			sb.WriteString(" thoroughly every week. ")
		}
	}

	e := NewPatternExtractor(Options{MaxCandidates: 5, SimilarityThreshold: 1.01})
	if got := e.Extract(sb.String()); len(got) != 5 {
		t.Errorf("got %d candidates, want cap of 5", len(got))
	}
}

func TestSimilarityExtremes(t *testing.T) {
	a := "clean the air filter monthly to keep airflow strong"
	if sim := similarity(a, a); sim != 1.0 {
		t.Errorf("similarity(x, x) = %f, want 1.0", sim)
	}
	if sim := similarity(a, "replace drive belt when cracked"); sim > 0.2 {
		t.Errorf("similarity of unrelated sentences = %f, want near 0", sim)
	}
	if sim := similarity(a, ""); sim != 0 {
		t.Errorf("similarity with empty = %f, want 0", sim)
	}
}

func TestMaxInputBytesTruncation(t *testing.T) {
	head := "Inspect the anode rod annually. "
	tail := strings.Repeat("Filler text without any relevant verbs whatsoever. ", 200)
	text := head + tail + "Replace the thermocouple yearly."

	e := NewPatternExtractor(Options{MaxInputBytes: len(head) + 100})
	cands := e.Extract(text)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1 (tail beyond cap ignored)", len(cands))
	}
	if !strings.HasPrefix(cands[0].TaskName, "Inspect") {
		t.Errorf("task name = %q, want the in-cap instruction", cands[0].TaskName)
	}
}

func TestNewBackendSelection(t *testing.T) {
	for _, name := range []string{"", "pattern"} {
		ex, err := New(name, Options{})
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if _, ok := ex.(*PatternExtractor); !ok {
			t.Errorf("New(%q) = %T, want *PatternExtractor", name, ex)
		}
	}
	if _, err := New("llm", Options{}); err == nil {
		t.Error("New(llm): expected error for unknown backend")
	}
}
