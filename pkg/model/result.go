package model

import "github.com/shopspring/decimal"

// Result is one driver's entry in one race.
// Position is nil for non-classified entries (DNF, DNS, DSQ).
// Grid 0 means the driver started from the pit lane or did not start.
type Result struct {
	ID             int
	RaceID         int
	DriverID       int
	ConstructorID  int
	Grid           int
	Position       *int
	Points         decimal.Decimal
	Laps           int
	FastestLapRank *int
	StatusID       *int
}

type Qualifying struct {
	ID            int
	RaceID        int
	DriverID      int
	ConstructorID int
	Position      int
}
