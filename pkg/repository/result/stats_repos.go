//nolint:whitespace // can't make both editor and linter happy
package result

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

// CareerStats holds the raw counts over the filtered entries of one
// competitor. GridPoles counts grid position 1 (not qualifying results).
type CareerStats struct {
	Entries     int
	Wins        int
	Podiums     int
	DNFs        int
	GridPoles   int
	FastestLaps int
	Laps        int
	Points      decimal.Decimal
}

func LoadCareerStats(
	ctx context.Context,
	conn repository.Querier,
	competitorID int,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
) (*CareerStats, error) {
	idCol, _, _ := competitorJoin(kind)
	args := []interface{}{competitorID}
	conds := []string{fmt.Sprintf("%s = $1", idCol)}
	conds, args = filter.Apply(conds, args)

	//nolint:gosec // idCol is a compile time constant
	stmt := fmt.Sprintf(`
	select count(*),
		count(*) filter (where res.position = 1),
		count(*) filter (where res.position between 1 and 3),
		count(*) filter (where res.position is null),
		count(*) filter (where res.grid = 1),
		count(*) filter (where res.fastest_lap_rank = 1),
		coalesce(sum(res.laps), 0),
		coalesce(sum(res.points), 0)
	from results res
	join races ra on ra.id = res.race_id
	where %s
	`, strings.Join(conds, " and "))

	row := conn.QueryRow(ctx, stmt, args...)
	var item CareerStats
	if err := row.Scan(
		&item.Entries,
		&item.Wins,
		&item.Podiums,
		&item.DNFs,
		&item.GridPoles,
		&item.FastestLaps,
		&item.Laps,
		&item.Points,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// StatusCount is a result status with its occurrence count.
type StatusCount struct {
	Status string
	Count  int
}

// LoadStatusCounts returns the status distribution of the filtered
// entries, most frequent first. Entries without a recorded status are
// reported as Unknown.
func LoadStatusCounts(
	ctx context.Context,
	conn repository.Querier,
	competitorID int,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
) ([]*StatusCount, error) {
	idCol, _, _ := competitorJoin(kind)
	args := []interface{}{competitorID}
	conds := []string{fmt.Sprintf("%s = $1", idCol)}
	conds, args = filter.Apply(conds, args)

	//nolint:gosec // idCol is a compile time constant
	stmt := fmt.Sprintf(`
	select coalesce(s.status, 'Unknown') as status, count(*) as cnt
	from results res
	join races ra on ra.id = res.race_id
	left join status s on s.id = res.status_id
	where %s
	group by status
	order by cnt desc, status
	`, strings.Join(conds, " and "))

	rows, err := conn.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*StatusCount, 0)
	for rows.Next() {
		var item StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// GridCount is a grid slot with its occurrence count.
type GridCount struct {
	Grid  int
	Count int
}

// LoadWinnerGrids returns how often each grid slot produced the race
// winner at the given circuit, lowest grid first.
func LoadWinnerGrids(
	ctx context.Context,
	conn repository.Querier,
	circuitID int,
) ([]*GridCount, error) {
	rows, err := conn.Query(ctx, `
	select res.grid, count(*) as cnt
	from results res
	join races ra on ra.id = res.race_id
	where ra.circuit_id = $1 and res.position = 1
	group by res.grid
	order by res.grid
	`, circuitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*GridCount, 0)
	for rows.Next() {
		var item GridCount
		if err := rows.Scan(&item.Grid, &item.Count); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// LoadRetirementCounts returns the retirement reason distribution of the
// unclassified entries at the given circuit, most frequent first.
func LoadRetirementCounts(
	ctx context.Context,
	conn repository.Querier,
	circuitID int,
) ([]*StatusCount, error) {
	rows, err := conn.Query(ctx, `
	select coalesce(s.status, 'Unknown') as status, count(*) as cnt
	from results res
	join races ra on ra.id = res.race_id
	left join status s on s.id = res.status_id
	where ra.circuit_id = $1 and res.position is null
	group by status
	order by cnt desc, status
	`, circuitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*StatusCount, 0)
	for rows.Next() {
		var item StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
