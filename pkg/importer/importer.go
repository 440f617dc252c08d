// Package importer loads the historical dataset from its CSV export
// into the database. Dataset ids are remapped to the generated ones;
// only status rows keep their well-known ids.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	circuitrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/circuit"
	constructorrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/constructor"
	driverrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/driver"
	racerepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
	statusrepos "github.com/mpapenbr/f1-history-service-go/pkg/repository/status"
)

type (
	Option func(*Importer)

	// Importer reads the CSV files of one dataset directory.
	Importer struct {
		pool *pgxpool.Pool
		l    *log.Logger
		dir  string

		circuits     map[string]int // dataset id -> db id
		drivers      map[string]int
		constructors map[string]int
		races        map[string]int
	}

	// Summary reports how many rows each file contributed.
	Summary struct {
		Status       int
		Circuits     int
		Drivers      int
		Constructors int
		Races        int
		Results      int
		Qualifying   int
		PitStops     int
		LapTimes     int
	}
)

func WithPool(pool *pgxpool.Pool) Option {
	return func(i *Importer) {
		i.pool = pool
	}
}

func WithLogger(l *log.Logger) Option {
	return func(i *Importer) {
		i.l = l
	}
}

func WithSourceDir(dir string) Option {
	return func(i *Importer) {
		i.dir = dir
	}
}

func New(opts ...Option) *Importer {
	ret := &Importer{
		l:            log.Default().Named("importer"),
		circuits:     map[string]int{},
		drivers:      map[string]int{},
		constructors: map[string]int{},
		races:        map[string]int{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Run imports all files of the dataset. The lookup files are required,
// the big per-lap files are imported when present.
func (i *Importer) Run(ctx context.Context) (*Summary, error) {
	ret := &Summary{}
	steps := []struct {
		file     string
		required bool
		fn       func(ctx context.Context, rows *csvRows) (int, error)
	}{
		{"status.csv", true, i.importStatus},
		{"circuits.csv", true, i.importCircuits},
		{"drivers.csv", true, i.importDrivers},
		{"constructors.csv", true, i.importConstructors},
		{"races.csv", true, i.importRaces},
		{"results.csv", true, i.importResults},
		{"qualifying.csv", false, i.importQualifying},
		{"pit_stops.csv", false, i.importPitStops},
		{"lap_times.csv", false, i.importLapTimes},
	}
	counts := []*int{
		&ret.Status, &ret.Circuits, &ret.Drivers, &ret.Constructors,
		&ret.Races, &ret.Results, &ret.Qualifying, &ret.PitStops,
		&ret.LapTimes,
	}
	for idx, step := range steps {
		rows, err := i.openCSV(step.file)
		if err != nil {
			if os.IsNotExist(err) && !step.required {
				i.l.Info("file not present, skipping",
					log.String("file", step.file))
				continue
			}
			return nil, err
		}
		num, err := step.fn(ctx, rows)
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.file, err)
		}
		*counts[idx] = num
		i.l.Info("imported", log.String("file", step.file), log.Int("rows", num))
	}
	return ret, nil
}

func (i *Importer) importStatus(ctx context.Context, rows *csvRows) (int, error) {
	num := 0
	for rows.Next() {
		id, err := rows.Int("statusId")
		if err != nil {
			return 0, err
		}
		err = statusrepos.Create(ctx, i.pool, &model.Status{
			ID:     id,
			Status: rows.String("status"),
		})
		if err != nil {
			return 0, err
		}
		num++
	}
	return num, rows.Err()
}

func (i *Importer) importCircuits(ctx context.Context, rows *csvRows) (int, error) {
	num := 0
	for rows.Next() {
		created, err := circuitrepos.Create(ctx, i.pool, &model.Circuit{
			Ref:      rows.String("circuitRef"),
			Name:     rows.String("name"),
			Location: rows.String("location"),
			Country:  rows.String("country"),
		})
		if err != nil {
			return 0, err
		}
		i.circuits[rows.String("circuitId")] = created.ID
		num++
	}
	return num, rows.Err()
}

func (i *Importer) importDrivers(ctx context.Context, rows *csvRows) (int, error) {
	num := 0
	for rows.Next() {
		arg := &model.Driver{
			Ref:         rows.String("driverRef"),
			Number:      rows.IntPtr("number"),
			Code:        rows.StringPtr("code"),
			Forename:    rows.String("forename"),
			Surname:     rows.String("surname"),
			Nationality: rows.String("nationality"),
		}
		if dob := rows.StringPtr("dob"); dob != nil {
			parsed, err := time.Parse("2006-01-02", *dob)
			if err != nil {
				return 0, fmt.Errorf("row %d: bad dob: %w", rows.line, err)
			}
			arg.DOB = &parsed
		}
		created, err := driverrepos.Create(ctx, i.pool, arg)
		if err != nil {
			return 0, err
		}
		i.drivers[rows.String("driverId")] = created.ID
		num++
	}
	return num, rows.Err()
}

//nolint:whitespace // can't make both editor and linter happy
func (i *Importer) importConstructors(
	ctx context.Context, rows *csvRows,
) (int, error) {
	num := 0
	for rows.Next() {
		created, err := constructorrepos.Create(ctx, i.pool, &model.Constructor{
			Ref:         rows.String("constructorRef"),
			Name:        rows.String("name"),
			Nationality: rows.String("nationality"),
		})
		if err != nil {
			return 0, err
		}
		i.constructors[rows.String("constructorId")] = created.ID
		num++
	}
	return num, rows.Err()
}

func (i *Importer) importRaces(ctx context.Context, rows *csvRows) (int, error) {
	num := 0
	for rows.Next() {
		year, err := rows.Int("year")
		if err != nil {
			return 0, err
		}
		round, err := rows.Int("round")
		if err != nil {
			return 0, err
		}
		arg := &model.Race{
			Year:      year,
			Round:     round,
			CircuitID: i.circuits[rows.String("circuitId")],
			Name:      rows.String("name"),
		}
		if date := rows.StringPtr("date"); date != nil {
			parsed, err := time.Parse("2006-01-02", *date)
			if err != nil {
				return 0, fmt.Errorf("row %d: bad date: %w", rows.line, err)
			}
			arg.Date = &parsed
		}
		created, err := racerepos.Create(ctx, i.pool, arg)
		if err != nil {
			return 0, err
		}
		i.races[rows.String("raceId")] = created.ID
		num++
	}
	return num, rows.Err()
}

// importResults bulk-copies the results. The file is by far the biggest
// of the lookup-referencing ones.
func (i *Importer) importResults(ctx context.Context, rows *csvRows) (int, error) {
	data := [][]interface{}{}
	for rows.Next() {
		points, err := decimal.NewFromString(rows.String("points"))
		if err != nil {
			return 0, fmt.Errorf("row %d: bad points: %w", rows.line, err)
		}
		grid, err := rows.Int("grid")
		if err != nil {
			return 0, err
		}
		laps, err := rows.Int("laps")
		if err != nil {
			return 0, err
		}
		data = append(data, []interface{}{
			i.races[rows.String("raceId")],
			i.drivers[rows.String("driverId")],
			i.constructors[rows.String("constructorId")],
			grid,
			rows.IntPtr("position"),
			points,
			laps,
			rows.IntPtr("rank"),
			rows.IntPtr("statusId"),
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	num, err := i.pool.CopyFrom(ctx,
		pgx.Identifier{"results"},
		[]string{
			"race_id", "driver_id", "constructor_id", "grid", "position",
			"points", "laps", "fastest_lap_rank", "status_id",
		},
		pgx.CopyFromRows(data))
	return int(num), err
}

//nolint:whitespace // can't make both editor and linter happy
func (i *Importer) importQualifying(
	ctx context.Context, rows *csvRows,
) (int, error) {
	data := [][]interface{}{}
	for rows.Next() {
		pos, err := rows.Int("position")
		if err != nil {
			return 0, err
		}
		data = append(data, []interface{}{
			i.races[rows.String("raceId")],
			i.drivers[rows.String("driverId")],
			i.constructors[rows.String("constructorId")],
			pos,
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	num, err := i.pool.CopyFrom(ctx,
		pgx.Identifier{"qualifying"},
		[]string{"race_id", "driver_id", "constructor_id", "position"},
		pgx.CopyFromRows(data))
	return int(num), err
}

func (i *Importer) importPitStops(ctx context.Context, rows *csvRows) (int, error) {
	data := [][]interface{}{}
	for rows.Next() {
		stop, err := rows.Int("stop")
		if err != nil {
			return 0, err
		}
		lap, err := rows.Int("lap")
		if err != nil {
			return 0, err
		}
		duration, err := rows.Int("milliseconds")
		if err != nil {
			return 0, err
		}
		data = append(data, []interface{}{
			i.races[rows.String("raceId")],
			i.drivers[rows.String("driverId")],
			stop,
			lap,
			duration,
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	num, err := i.pool.CopyFrom(ctx,
		pgx.Identifier{"pit_stops"},
		[]string{"race_id", "driver_id", "stop", "lap", "duration_ms"},
		pgx.CopyFromRows(data))
	return int(num), err
}

func (i *Importer) importLapTimes(ctx context.Context, rows *csvRows) (int, error) {
	data := [][]interface{}{}
	for rows.Next() {
		lap, err := rows.Int("lap")
		if err != nil {
			return 0, err
		}
		timeMS, err := rows.Int("milliseconds")
		if err != nil {
			return 0, err
		}
		data = append(data, []interface{}{
			i.races[rows.String("raceId")],
			i.drivers[rows.String("driverId")],
			lap,
			rows.IntPtr("position"),
			timeMS,
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	num, err := i.pool.CopyFrom(ctx,
		pgx.Identifier{"lap_times"},
		[]string{"race_id", "driver_id", "lap", "position", "time_ms"},
		pgx.CopyFromRows(data))
	return int(num), err
}

func (i *Importer) openCSV(name string) (*csvRows, error) {
	f, err := os.Open(filepath.Join(i.dir, name))
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: no header: %w", name, err)
	}
	cols := map[string]int{}
	for idx, col := range header {
		cols[col] = idx
	}
	return &csvRows{f: f, r: r, cols: cols}, nil
}
