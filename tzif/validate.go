package tzif

import (
	"errors"
	"fmt"
)

// Validate cross-checks a decoded TimeZoneData against its Header. The
// decoder itself only bounds-checks section lengths; the index and
// ordering invariants below are left to this opt-in pass so that callers
// decide whether malformed cross-references fail the whole file or only
// the lookup that dereferences them.
//
// All findings are collected and returned joined rather than failing on
// the first one.
func Validate(h Header, d TimeZoneData) error {
	var errs []error

	if h.UTLocalCount != 0 && h.UTLocalCount != h.TypeCount {
		errs = append(errs, fmt.Errorf("invalid isutcnt (%d): must be 0 or equal to typecnt (%d)", h.UTLocalCount, h.TypeCount))
	}
	if h.StdWallCount != 0 && h.StdWallCount != h.TypeCount {
		errs = append(errs, fmt.Errorf("invalid isstdcnt (%d): must be 0 or equal to typecnt (%d)", h.StdWallCount, h.TypeCount))
	}
	if h.TypeCount == 0 {
		errs = append(errs, fmt.Errorf("invalid typecnt: must not be zero"))
	}
	if h.CharCount == 0 {
		errs = append(errs, fmt.Errorf("invalid charcnt: must not be zero"))
	}

	if len(d.TransitionTimes) != int(h.TransitionCount) {
		errs = append(errs, fmt.Errorf("invalid timecnt: header = %d, transition times = %d", h.TransitionCount, len(d.TransitionTimes)))
	}
	if times, types := len(d.TransitionTimes), len(d.TransitionTypeIndex); times != types {
		errs = append(errs, fmt.Errorf("inconsistent transitions: transition times = %d, transition types = %d", times, types))
	}
	if len(d.TimeTypes) != int(h.TypeCount) {
		errs = append(errs, fmt.Errorf("invalid typecnt: header = %d, data = %d", h.TypeCount, len(d.TimeTypes)))
	}
	if len(d.Abbreviations) != int(h.CharCount) {
		errs = append(errs, fmt.Errorf("invalid charcnt: header = %d, data = %d", h.CharCount, len(d.Abbreviations)))
	}

	for i := 1; i < len(d.TransitionTimes); i++ {
		if d.TransitionTimes[i] <= d.TransitionTimes[i-1] {
			errs = append(errs, fmt.Errorf("transition times not strictly ascending: index %d (%d) <= index %d (%d)", i, d.TransitionTimes[i], i-1, d.TransitionTimes[i-1]))
		}
	}
	for i, idx := range d.TransitionTypeIndex {
		if uint32(idx) >= h.TypeCount {
			errs = append(errs, fmt.Errorf("invalid transition type index at %d: %d >= typecnt (%d)", i, idx, h.TypeCount))
		}
	}
	for i, tt := range d.TimeTypes {
		if _, ok := d.Abbreviation(tt.AbbrevIndex); !ok {
			errs = append(errs, fmt.Errorf("invalid designation index in type record %d: %d", i, tt.AbbrevIndex))
		}
	}
	if n := len(d.Abbreviations); n > 0 && d.Abbreviations[n-1] != 0 {
		errs = append(errs, fmt.Errorf("invalid time zone designations: missing null terminator"))
	}

	return errors.Join(errs...)
}
