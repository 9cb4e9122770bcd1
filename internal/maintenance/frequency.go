package maintenance

import "fmt"

// Frequency names the recurrence category that drives a task's schedule.
type Frequency string

const (
	Daily      Frequency = "daily"
	Weekly     Frequency = "weekly"
	Monthly    Frequency = "monthly"
	Quarterly  Frequency = "quarterly"
	SemiAnnual Frequency = "semi_annual"
	Annual     Frequency = "annual"
	AsNeeded   Frequency = "as_needed"
	Custom     Frequency = "custom"
)

// Fixed day counts per frequency. Monthly and longer are day-count
// approximations of calendar months, kept deliberately: stored due dates
// depend on them.
var intervalTable = map[Frequency]int{
	Daily:      1,
	Weekly:     7,
	Monthly:    30,
	Quarterly:  91,
	SemiAnnual: 182,
	Annual:     365,
}

// ValidationError reports a field-level rule violation. It is returned at the
// boundary, before anything reaches the calculator or the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ParseFrequency validates a frequency string from user input or storage.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", &ValidationError{Field: "frequency", Reason: fmt.Sprintf("unknown frequency %q", s)}
	}
	return f, nil
}

// Valid reports whether f is one of the eight known frequencies.
func (f Frequency) Valid() bool {
	if _, ok := intervalTable[f]; ok {
		return true
	}
	return f == AsNeeded || f == Custom
}

// IntervalDays returns the number of calendar days between occurrences, or
// nil for as_needed, which never produces an automatic due date. A custom
// frequency requires a positive customDays.
func IntervalDays(f Frequency, customDays *int) (*int, error) {
	switch f {
	case AsNeeded:
		return nil, nil
	case Custom:
		if customDays == nil || *customDays <= 0 {
			return nil, &ValidationError{Field: "interval_days", Reason: "custom frequency requires a positive interval"}
		}
		n := *customDays
		return &n, nil
	default:
		n, ok := intervalTable[f]
		if !ok {
			return nil, &ValidationError{Field: "frequency", Reason: fmt.Sprintf("unknown frequency %q", f)}
		}
		return &n, nil
	}
}
