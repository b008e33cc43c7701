package models

import "time"

// CatchEntry is a user-logged catch, stamped with the current estimate at
// the time it was caught.
type CatchEntry struct {
	ID        string    `json:"id"`
	CaughtAt  time.Time `json:"caught_at"`
	Species   string    `json:"species"`
	Spot      string    `json:"spot"`
	LengthCM  int       `json:"length_cm"`
	Notes     string    `json:"notes"`
	Direction Direction `json:"direction"`
	Strength  Strength  `json:"strength"`
	CreatedAt time.Time `json:"created_at"`
}
