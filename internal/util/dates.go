package util

import (
	"errors"
	"strings"
	"time"
)

const formDateLayout = "2006-01-02"

// bangkok is the display timezone for request timestamps. Falls back to
// a fixed UTC+7 offset when the tzdata is unavailable in the container.
var bangkok = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}()

// ParseFormDate parses a YYYY-MM-DD form value. Empty input returns the
// zero time with ok=false rather than an error, since most date fields
// are optional.
func ParseFormDate(s string) (t time.Time, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(formDateLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// FormatTimestamp renders a stored timestamp in the Bangkok timezone
// using the listing layout the clients expect.
func FormatTimestamp(t time.Time) string {
	return t.In(bangkok).Format("2006-01-02 15:04:05")
}

// ParseDateRange turns optional start/end filter strings into query
// boundaries. Accepts RFC3339 or YYYY-MM-DD; a date-only end is widened
// by one day so the whole end date is included. Reversed inputs are
// swapped.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	parseAny := func(s string) (t time.Time, ok bool, isDateOnly bool, err error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false, false, nil
		}
		if tt, e := time.Parse(time.RFC3339, s); e == nil {
			return tt, true, false, nil
		}
		if tt, e := time.Parse(formDateLayout, s); e == nil {
			return tt, true, true, nil
		}
		return time.Time{}, false, false, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
	}

	var (
		rawStart, rawEnd time.Time
		startOk, endOk   bool
		endDateOnly      bool
	)

	if startStr != nil {
		t, ok, _, e := parseAny(*startStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawStart = t
			startOk = true
		}
	}

	if endStr != nil {
		t, ok, isDateOnly, e := parseAny(*endStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawEnd = t
			endOk = true
			endDateOnly = isDateOnly
		}
	}

	if startOk && endOk && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if startOk {
		start = rawStart
		hasStart = true
	}
	if endOk {
		if endDateOnly {
			endExclusive = rawEnd.AddDate(0, 0, 1)
		} else {
			endExclusive = rawEnd
		}
		hasEnd = true
	}

	return start, hasStart, endExclusive, hasEnd, nil
}
