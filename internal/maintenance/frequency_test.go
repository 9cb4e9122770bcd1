package maintenance

import (
	"errors"
	"testing"
)

func TestIntervalTable(t *testing.T) {
	cases := []struct {
		freq Frequency
		days int
	}{
		{Daily, 1},
		{Weekly, 7},
		{Monthly, 30},
		{Quarterly, 91},
		{SemiAnnual, 182},
		{Annual, 365},
	}

	for _, tc := range cases {
		got, err := IntervalDays(tc.freq, nil)
		if err != nil {
			t.Fatalf("IntervalDays(%s): %v", tc.freq, err)
		}
		if got == nil || *got != tc.days {
			t.Errorf("IntervalDays(%s) = %v, want %d", tc.freq, got, tc.days)
		}
	}
}

func TestIntervalAsNeeded(t *testing.T) {
	got, err := IntervalDays(AsNeeded, nil)
	if err != nil {
		t.Fatalf("IntervalDays(as_needed): %v", err)
	}
	if got != nil {
		t.Errorf("IntervalDays(as_needed) = %d, want nil", *got)
	}
}

func TestIntervalCustom(t *testing.T) {
	days := 45
	got, err := IntervalDays(Custom, &days)
	if err != nil {
		t.Fatalf("IntervalDays(custom, 45): %v", err)
	}
	if got == nil || *got != 45 {
		t.Errorf("IntervalDays(custom, 45) = %v, want 45", got)
	}

	// Returned value must be a copy, not an alias of the caller's int.
	days = 99
	if *got != 45 {
		t.Errorf("interval aliased caller's value: got %d", *got)
	}
}

func TestIntervalCustomInvalid(t *testing.T) {
	zero := 0
	negative := -7

	for name, days := range map[string]*int{"missing": nil, "zero": &zero, "negative": &negative} {
		_, err := IntervalDays(Custom, days)
		if err == nil {
			t.Errorf("IntervalDays(custom, %s): expected error", name)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("IntervalDays(custom, %s): error type = %T, want *ValidationError", name, err)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly", "quarterly", "semi_annual", "annual", "as_needed", "custom"} {
		f, err := ParseFrequency(s)
		if err != nil {
			t.Errorf("ParseFrequency(%q): %v", s, err)
		}
		if string(f) != s {
			t.Errorf("ParseFrequency(%q) = %q", s, f)
		}
	}

	if _, err := ParseFrequency("fortnightly"); err == nil {
		t.Error("ParseFrequency(fortnightly): expected error")
	}
}
