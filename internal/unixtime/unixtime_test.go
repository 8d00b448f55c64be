package unixtime

import "testing"

var anchors = []struct {
	unix                                int64
	year, month, day, hour, minute, sec int
}{
	{0, 1970, 1, 1, 0, 0, 0},
	{1, 1970, 1, 1, 0, 0, 1},
	{-1, 1969, 12, 31, 23, 59, 59},
	{951782400, 2000, 2, 29, 0, 0, 0},
	{951868800, 2000, 3, 1, 0, 0, 0},
	{1483228800, 2017, 1, 1, 0, 0, 0},
	{-2717643600, 1883, 11, 18, 19, 0, 0},
	{-2233035335, 1899, 3, 28, 16, 24, 25},
}

func TestFromDateTime(t *testing.T) {
	for _, a := range anchors {
		got := FromDateTime(a.year, a.month, a.day, a.hour, a.minute, a.sec)
		if got != a.unix {
			t.Errorf("FromDateTime(%04d-%02d-%02d %02d:%02d:%02d) = %d, want %d",
				a.year, a.month, a.day, a.hour, a.minute, a.sec, got, a.unix)
		}
	}
}

func TestToDateTime(t *testing.T) {
	for _, a := range anchors {
		y, mo, d, h, mi, s := ToDateTime(a.unix)
		if y != a.year || mo != a.month || d != a.day || h != a.hour || mi != a.minute || s != a.sec {
			t.Errorf("ToDateTime(%d) = %04d-%02d-%02d %02d:%02d:%02d, want %04d-%02d-%02d %02d:%02d:%02d",
				a.unix, y, mo, d, h, mi, s, a.year, a.month, a.day, a.hour, a.minute, a.sec)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Sweep across leap-year and month boundaries in both directions.
	for year := 1880; year <= 2110; year += 7 {
		for month := 1; month <= 12; month++ {
			unix := FromDateTime(year, month, 28, 23, 59, 59)
			y, mo, d, h, mi, s := ToDateTime(unix)
			if y != year || mo != month || d != 28 || h != 23 || mi != 59 || s != 59 {
				t.Fatalf("round trip of %04d-%02d-28 23:59:59 via %d = %04d-%02d-%02d %02d:%02d:%02d",
					year, month, unix, y, mo, d, h, mi, s)
			}
		}
	}
}

func TestFormatUTC(t *testing.T) {
	tests := []struct {
		unix int64
		want string
	}{
		{-2717643600, "1883-11-18 19:00:00 UTC"},
		{0, "1970-01-01 00:00:00 UTC"},
		{951782400, "2000-02-29 00:00:00 UTC"},
	}
	for _, tc := range tests {
		if got := FormatUTC(tc.unix); got != tc.want {
			t.Errorf("FormatUTC(%d) = %q, want %q", tc.unix, got, tc.want)
		}
	}
}
