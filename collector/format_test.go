package collector

import "testing"

func TestFormatBytes_Zero(t *testing.T) {
	if got := FormatBytes(0); got != "0 Bytes" {
		t.Errorf("FormatBytes(0) = %q, want \"0 Bytes\"", got)
	}
}

func TestFormatBytes_ExactUnits(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1 MB"},
		{1024 * 1024 * 1024, "1 GB"},
		{1024 * 1024 * 1024 * 1024, "1 TB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatBytes_TwoDecimalRounding(t *testing.T) {
	// 1294467 bytes = 1.2345... MB, rounds to 1.23 MB
	b := uint64(1294467)
	if got := FormatBytes(b); got != "1.23 MB" {
		t.Errorf("FormatBytes(%d) = %q, want \"1.23 MB\"", b, got)
	}
}

func TestFormatBytes_LargestUnitCaps(t *testing.T) {
	// Beyond TB the unit stays TB and the value keeps growing.
	if got := FormatBytes(1 << 50); got != "1024 TB" {
		t.Errorf("FormatBytes(1<<50) = %q, want \"1024 TB\"", got)
	}
}

func TestFormatBytes_UnitMonotonic(t *testing.T) {
	// Unit index never decreases as the byte count grows.
	unitIndex := func(s string) int {
		for i, u := range byteUnits {
			if len(s) > len(u) && s[len(s)-len(u):] == u {
				return i
			}
		}
		return -1
	}
	prev := -1
	for _, b := range []uint64{1, 1024, 1 << 20, 1 << 30, 1 << 40} {
		idx := unitIndex(FormatBytes(b))
		if idx < prev {
			t.Fatalf("unit index decreased at %d bytes: %d < %d", b, idx, prev)
		}
		prev = idx
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{0, 0},
		{99.999, 100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}
