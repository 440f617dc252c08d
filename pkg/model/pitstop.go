package model

type PitStop struct {
	RaceID     int
	DriverID   int
	Stop       int
	Lap        int
	DurationMS int
}

type LapTime struct {
	RaceID   int
	DriverID int
	Lap      int
	Position *int
	TimeMS   int
}
