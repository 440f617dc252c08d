package model

import "time"

// Race is one round of a season. (Year, Round) is unique.
type Race struct {
	ID        int
	Year      int
	Round     int
	CircuitID int
	Name      string
	Date      *time.Time
}
