package model

import "strings"

type Status struct {
	ID     int
	Status string
}

// Classified reports whether the status counts as a classified finish.
// Lapped cars ("+1 Lap", "+2 Laps", ...) are classified.
func (s *Status) Classified() bool {
	return s.Status == "Finished" || strings.HasPrefix(s.Status, "+")
}
