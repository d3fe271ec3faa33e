package util

import (
	"testing"
	"time"
)

func TestParseFormDate_Valid(t *testing.T) {
	got, ok, err := ParseFormDate("2025-03-15")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParseFormDate_EmptyIsNotAnError(t *testing.T) {
	_, ok, err := ParseFormDate("   ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for empty input")
	}
}

func TestParseFormDate_Invalid(t *testing.T) {
	_, _, err := ParseFormDate("15/03/2025")
	if err == nil {
		t.Fatalf("expected error for non YYYY-MM-DD input")
	}
}

func TestFormatTimestamp_BangkokOffset(t *testing.T) {
	// 2025-03-15T00:30:00Z is 07:30 in UTC+7.
	ts := time.Date(2025, 3, 15, 0, 30, 0, 0, time.UTC)
	got := FormatTimestamp(ts)
	if got != "2025-03-15 07:30:00" {
		t.Fatalf("got %q want %q", got, "2025-03-15 07:30:00")
	}
}

func sptr(s string) *string { return &s }

func TestParseDateRange_AllNil(t *testing.T) {
	start, hasStart, endExcl, hasEnd, err := ParseDateRange(nil, nil)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if hasStart || hasEnd {
		t.Fatalf("expected no start/end, got hasStart=%v hasEnd=%v", hasStart, hasEnd)
	}
	if !start.IsZero() || !endExcl.IsZero() {
		t.Fatalf("expected zero times, got start=%v end=%v", start, endExcl)
	}
}

func TestParseDateRange_BlankStrings_TreatedAsMissing(t *testing.T) {
	_, hasStart, _, hasEnd, err := ParseDateRange(sptr("   "), sptr(""))
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if hasStart || hasEnd {
		t.Fatalf("expected no start/end, got hasStart=%v hasEnd=%v", hasStart, hasEnd)
	}
}

func TestParseDateRange_DateOnlyEnd_IsInclusive(t *testing.T) {
	start, hasStart, endExcl, hasEnd, err := ParseDateRange(sptr("2025-03-01"), sptr("2025-03-15"))
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if !hasStart || !hasEnd {
		t.Fatalf("expected both boundaries, got hasStart=%v hasEnd=%v", hasStart, hasEnd)
	}
	if start != time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start %v", start)
	}
	// whole end date included
	if endExcl != time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected endExclusive %v", endExcl)
	}
}

func TestParseDateRange_Reversed_Swaps(t *testing.T) {
	start, _, endExcl, _, err := ParseDateRange(sptr("2025-03-15"), sptr("2025-03-01"))
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if !start.Before(endExcl) {
		t.Fatalf("expected start before end after swap, got start=%v end=%v", start, endExcl)
	}
	if start != time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start %v", start)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	_, _, _, _, err := ParseDateRange(sptr("01/03/2025"), nil)
	if err == nil {
		t.Fatalf("expected error for invalid format")
	}
}
