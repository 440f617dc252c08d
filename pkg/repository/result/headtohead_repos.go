//nolint:whitespace // can't make both editor and linter happy
package result

import (
	"context"
	"strings"

	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

// PairRow is one race both drivers entered. Positions are nil when the
// respective driver was not classified.
type PairRow struct {
	RaceID int
	Year   int
	Round  int
	PosA   *int
	PosB   *int
}

// LoadPairRows returns all races both drivers entered, ordered by
// season and round.
func LoadPairRows(
	ctx context.Context,
	conn repository.Querier,
	driverA, driverB int,
	filter *repository.EntryFilter,
) ([]*PairRow, error) {
	args := []interface{}{driverA, driverB}
	conds := []string{"a.driver_id = $1", "b.driver_id = $2"}
	conds, args = filter.Apply(conds, args)

	stmt := `
	select ra.id, ra.year, ra.round, a.position, b.position
	from results a
	join results b on b.race_id = a.race_id
	join races ra on ra.id = a.race_id
	where ` + strings.Join(conds, " and ") + `
	order by ra.year, ra.round
	`

	rows, err := conn.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*PairRow, 0)
	for rows.Next() {
		var item PairRow
		if err := rows.Scan(&item.RaceID, &item.Year, &item.Round,
			&item.PosA, &item.PosB); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
