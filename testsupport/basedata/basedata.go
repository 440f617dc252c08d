//nolint:gomnd // test fixture data
package basedata

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	circuitrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/circuit"
	constructorrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/constructor"
	driverrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/driver"
	laptimerepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/laptime"
	pitstoprepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/pitstop"
	qualifyingrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/qualifying"
	racerepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
	resultrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
	statusrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/status"
)

// Fixture holds the seeded lookup rows keyed by their ref so tests can
// reference them when writing results.
type Fixture struct {
	Circuit      *model.Circuit
	Drivers      map[string]*model.Driver
	Constructors map[string]*model.Constructor
}

// status ids follow the historical dataset
func Statuses() []*model.Status {
	return []*model.Status{
		{ID: 1, Status: "Finished"},
		{ID: 3, Status: "Accident"},
		{ID: 4, Status: "Collision"},
		{ID: 5, Status: "Engine"},
		{ID: 11, Status: "+1 Lap"},
	}
}

func TestDate() *time.Time {
	t, _ := time.Parse(time.RFC3339, "2021-07-18T14:00:00Z")
	return &t
}

func SampleCircuit() *model.Circuit {
	return &model.Circuit{
		Ref:      "testring",
		Name:     "Testring",
		Location: "Testhausen",
		Country:  "Testland",
	}
}

func SampleDrivers() []*model.Driver {
	code := func(arg string) *string { return &arg }
	num := func(arg int) *int { return &arg }
	return []*model.Driver{
		{
			Ref: "alpha", Forename: "Anton", Surname: "Alpha",
			Code: code("ALP"), Number: num(11), Nationality: "Testland",
		},
		{
			Ref: "bravo", Forename: "Berta", Surname: "Bravo",
			Code: code("BRV"), Number: num(22), Nationality: "Testland",
		},
		{
			Ref: "caesar", Forename: "Carl", Surname: "Caesar",
			Code: code("CSR"), Number: num(33), Nationality: "Otherland",
		},
	}
}

func SampleConstructors() []*model.Constructor {
	return []*model.Constructor{
		{Ref: "redteam", Name: "Red Team", Nationality: "Testland"},
		{Ref: "blueteam", Name: "Blue Team", Nationality: "Otherland"},
	}
}

// SeedLookups inserts statuses, the sample circuit, drivers and
// constructors and returns the fixture with the assigned ids.
func SeedLookups(pool *pgxpool.Pool) *Fixture {
	ctx := context.Background()
	for _, item := range Statuses() {
		if err := statusrepos.Create(ctx, pool, item); err != nil {
			log.Fatalf("seed status: %v", err)
		}
	}
	circ, err := circuitrepos.Create(ctx, pool, SampleCircuit())
	if err != nil {
		log.Fatalf("seed circuit: %v", err)
	}
	ret := &Fixture{
		Circuit:      circ,
		Drivers:      map[string]*model.Driver{},
		Constructors: map[string]*model.Constructor{},
	}
	for _, item := range SampleDrivers() {
		created, err := driverrepos.Create(ctx, pool, item)
		if err != nil {
			log.Fatalf("seed driver: %v", err)
		}
		ret.Drivers[created.Ref] = created
	}
	for _, item := range SampleConstructors() {
		created, err := constructorrepos.Create(ctx, pool, item)
		if err != nil {
			log.Fatalf("seed constructor: %v", err)
		}
		ret.Constructors[created.Ref] = created
	}
	return ret
}

// AddRace inserts a race at the fixture circuit.
func (f *Fixture) AddRace(pool *pgxpool.Pool, year, round int) *model.Race {
	race, err := racerepos.Create(context.Background(), pool, &model.Race{
		Year:      year,
		Round:     round,
		CircuitID: f.Circuit.ID,
		Name:      "Test Grand Prix",
		Date:      TestDate(),
	})
	if err != nil {
		log.Fatalf("seed race: %v", err)
	}
	return race
}

// ResultSpec describes one result row for AddResult in a compact form.
type ResultSpec struct {
	Driver      string // fixture driver ref
	Constructor string // fixture constructor ref
	Grid        int
	Position    int // 0 means not classified
	Points      string
	Laps        int
	FastestLap  bool
	StatusID    int
}

// AddResult inserts a race result described by arg.
func (f *Fixture) AddResult(
	pool *pgxpool.Pool, race *model.Race, arg *ResultSpec,
) *model.Result {
	res := &model.Result{
		RaceID:        race.ID,
		DriverID:      f.Drivers[arg.Driver].ID,
		ConstructorID: f.Constructors[arg.Constructor].ID,
		Grid:          arg.Grid,
		Points:        decimal.RequireFromString(arg.Points),
		Laps:          arg.Laps,
	}
	if arg.Position > 0 {
		pos := arg.Position
		res.Position = &pos
	}
	if arg.FastestLap {
		rank := 1
		res.FastestLapRank = &rank
	}
	if arg.StatusID > 0 {
		statusID := arg.StatusID
		res.StatusID = &statusID
	}
	created, err := resultrepos.Create(context.Background(), pool, res)
	if err != nil {
		log.Fatalf("seed result: %v", err)
	}
	return created
}

// AddLapTime inserts a single lap time.
func (f *Fixture) AddLapTime(
	pool *pgxpool.Pool, race *model.Race, driver string, lap, timeMS int,
) {
	err := laptimerepos.Create(context.Background(), pool, &model.LapTime{
		RaceID:   race.ID,
		DriverID: f.Drivers[driver].ID,
		Lap:      lap,
		TimeMS:   timeMS,
	})
	if err != nil {
		log.Fatalf("seed lap time: %v", err)
	}
}

// AddPitStop inserts a pit stop.
func (f *Fixture) AddPitStop(
	pool *pgxpool.Pool, race *model.Race, driver string, stop, lap, durationMS int,
) {
	err := pitstoprepos.Create(context.Background(), pool, &model.PitStop{
		RaceID:     race.ID,
		DriverID:   f.Drivers[driver].ID,
		Stop:       stop,
		Lap:        lap,
		DurationMS: durationMS,
	})
	if err != nil {
		log.Fatalf("seed pit stop: %v", err)
	}
}

// AddQualifying inserts a qualifying result.
func (f *Fixture) AddQualifying(
	pool *pgxpool.Pool, race *model.Race, driver, constructor string, pos int,
) *model.Qualifying {
	created, err := qualifyingrepos.Create(context.Background(), pool,
		&model.Qualifying{
			RaceID:        race.ID,
			DriverID:      f.Drivers[driver].ID,
			ConstructorID: f.Constructors[constructor].ID,
			Position:      pos,
		})
	if err != nil {
		log.Fatalf("seed qualifying: %v", err)
	}
	return created
}
