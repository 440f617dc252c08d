//nolint:whitespace // can't make both editor and linter happy
package pitstop

import (
	"context"
	"strings"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, arg *model.PitStop) error {
	_, err := conn.Exec(ctx, `
	insert into pit_stops (
		race_id, driver_id, stop, lap, duration_ms
	) values ($1,$2,$3,$4,$5)
	`, arg.RaceID, arg.DriverID, arg.Stop, arg.Lap, arg.DurationMS)
	return err
}

// Stats holds pit stop aggregates for one driver.
type Stats struct {
	DriverID  int
	Name      string
	Stops     int
	AvgMS     float64
	FastestMS int
}

// LoadDriverStats returns per-driver pit stop aggregates for the filtered
// races, fastest average first.
func LoadDriverStats(
	ctx context.Context,
	conn repository.Querier,
	filter *repository.EntryFilter,
) ([]*Stats, error) {
	args := []interface{}{}
	conds := []string{"true"}
	conds, args = filter.Apply(conds, args)

	stmt := `
	select p.driver_id, d.forename || ' ' || d.surname,
		count(*), avg(p.duration_ms), min(p.duration_ms)
	from pit_stops p
	join races ra on ra.id = p.race_id
	join drivers d on d.id = p.driver_id
	where ` + strings.Join(conds, " and ") + `
	group by p.driver_id, d.forename, d.surname
	order by avg(p.duration_ms)
	`

	rows, err := conn.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*Stats, 0)
	for rows.Next() {
		var item Stats
		if err := rows.Scan(&item.DriverID, &item.Name, &item.Stops,
			&item.AvgMS, &item.FastestMS); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
