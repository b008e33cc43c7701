package models

import "time"

// TideType represents whether a tide is high or low
type TideType string

const (
	TideHigh TideType = "H"
	TideLow  TideType = "L"
)

// String returns the display name of the tide type
func (t TideType) String() string {
	if t == TideHigh {
		return "High"
	}
	return "Low"
}

// Opposite returns Low for High and High for Low
func (t TideType) Opposite() TideType {
	if t == TideHigh {
		return TideLow
	}
	return TideHigh
}

// NoDataTime is the time value upstream uses for an extremum that did not occur
const NoDataTime = "99:99"

// RawExtremum is a single high or low entry as supplied by the tide data source
type RawExtremum struct {
	Time string `json:"time"` // "HH:MM", or NoDataTime
	CM   string `json:"cm"`   // height in centimeters, as text
}

// RawTideDay holds one day of upstream tide extrema, split by kind
type RawTideDay struct {
	Date    time.Time
	Station string
	High    []RawExtremum
	Low     []RawExtremum
}

// TideEvent represents a single high or low tide occurrence within a day
type TideEvent struct {
	Time   string // "HH:MM", zero padded
	Height int    // centimeters
	Type   TideType
}

// Minutes returns the event time as minutes since midnight, or -1 if the
// time is malformed
func (e TideEvent) Minutes() int {
	return ParseClock(e.Time)
}

// ParseClock converts a zero-padded "HH:MM" string to minutes since midnight.
// It returns -1 for anything that is not a valid time of day.
func ParseClock(s string) int {
	if len(s) != 5 || s[2] != ':' {
		return -1
	}
	h, ok1 := twoDigits(s[0:2])
	m, ok2 := twoDigits(s[3:5])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return -1
	}
	return h*60 + m
}

// FormatClock renders minutes since midnight as "HH:MM", wrapping into 0-24h
func FormatClock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	h, m := minutes/60, minutes%60
	return string([]byte{byte('0' + h/10), byte('0' + h%10), ':', byte('0' + m/10), byte('0' + m%10)})
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
