package models

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"midnight", "00:00", 0},
		{"morning", "08:10", 490},
		{"afternoon", "14:30", 870},
		{"last minute", "23:59", 1439},
		{"sentinel", NoDataTime, -1},
		{"not padded", "8:10", -1},
		{"hour out of range", "24:00", -1},
		{"minute out of range", "12:60", -1},
		{"garbage", "ab:cd", -1},
		{"empty", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseClock(tt.in); got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{490, "08:10"},
		{1439, "23:59"},
		{1440 + 60, "01:00"},
		{-60, "23:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTideType_Opposite(t *testing.T) {
	if TideHigh.Opposite() != TideLow {
		t.Errorf("TideHigh.Opposite() = %v, want TideLow", TideHigh.Opposite())
	}
	if TideLow.Opposite() != TideHigh {
		t.Errorf("TideLow.Opposite() = %v, want TideHigh", TideLow.Opposite())
	}
}

func TestTideType_Constants(t *testing.T) {
	if TideHigh != "H" {
		t.Errorf("TideHigh = %v, want 'H'", TideHigh)
	}
	if TideLow != "L" {
		t.Errorf("TideLow = %v, want 'L'", TideLow)
	}
}

func TestFlowEstimate_SameRegime(t *testing.T) {
	a := FlowEstimate{Direction: Southward, Strength: Strong, Description: "x"}
	b := FlowEstimate{Direction: Southward, Strength: Strong, Description: "y"}
	c := FlowEstimate{Direction: Southward, Strength: Medium}

	if !a.SameRegime(b) {
		t.Error("estimates differing only in description should share a regime")
	}
	if a.SameRegime(c) {
		t.Error("estimates with different strength should not share a regime")
	}
}
