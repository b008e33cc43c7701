package models

// Direction is the modeled direction of current through the strait
type Direction string

const (
	Southward    Direction = "southward"    // ebb, after a high tide
	Northward    Direction = "northward"    // flood, after a low tide
	Transitional Direction = "transitional" // slack or unknown
)

// Strength is the coarse current strength bucket
type Strength string

const (
	Strong Strength = "strong"
	Medium Strength = "medium"
	Weak   Strength = "weak"
)

// FlowEstimate is the derived current at one instant
type FlowEstimate struct {
	Direction   Direction
	Strength    Strength
	Description string
}

// Label returns a short human readable summary such as "Southward (strong)"
func (f FlowEstimate) Label() string {
	var dir string
	switch f.Direction {
	case Southward:
		dir = "Southward ebb"
	case Northward:
		dir = "Northward flood"
	default:
		dir = "Slack"
	}
	return dir + " (" + string(f.Strength) + ")"
}

// SameRegime reports whether two estimates would drive the same flow field
func (f FlowEstimate) SameRegime(o FlowEstimate) bool {
	return f.Direction == o.Direction && f.Strength == o.Strength
}
