//nolint:whitespace // can't make both editor and linter happy
package laptime

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, arg *model.LapTime) error {
	_, err := conn.Exec(ctx, `
	insert into lap_times (
		race_id, driver_id, lap, position, time_ms
	) values ($1,$2,$3,$4,$5)
	`, arg.RaceID, arg.DriverID, arg.Lap, arg.Position, arg.TimeMS)
	return err
}

// LapRecord is the fastest lap ever set at a circuit.
type LapRecord struct {
	DriverID int
	Name     string
	Year     int
	TimeMS   int
}

func LoadCircuitRecord(
	ctx context.Context,
	conn repository.Querier,
	circuitID int,
) (*LapRecord, error) {
	row := conn.QueryRow(ctx, `
	select lt.driver_id, d.forename || ' ' || d.surname, ra.year, lt.time_ms
	from lap_times lt
	join races ra on ra.id = lt.race_id
	join drivers d on d.id = lt.driver_id
	where ra.circuit_id = $1
	order by lt.time_ms
	limit 1
	`, circuitID)
	var item LapRecord
	if err := row.Scan(&item.DriverID, &item.Name, &item.Year,
		&item.TimeMS); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
