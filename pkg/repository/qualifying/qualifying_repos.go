//nolint:whitespace // can't make both editor and linter happy
package qualifying

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, arg *model.Qualifying) (
	*model.Qualifying, error,
) {
	row := conn.QueryRow(ctx, `
	insert into qualifying (
		race_id, driver_id, constructor_id, position
	) values ($1,$2,$3,$4)
	returning id
		`,
		arg.RaceID, arg.DriverID, arg.ConstructorID, arg.Position,
	)
	if err := row.Scan(&arg.ID); err != nil {
		return nil, err
	}
	return arg, nil
}

func LoadByRace(ctx context.Context, conn repository.Querier, raceID int) (
	[]*model.Qualifying, error,
) {
	rows, err := conn.Query(ctx, `
	select q.id, q.race_id, q.driver_id, q.constructor_id, q.position
	from qualifying q where q.race_id=$1 order by q.position
	`, raceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Qualifying, 0)
	for rows.Next() {
		var item model.Qualifying
		if err := rows.Scan(&item.ID, &item.RaceID, &item.DriverID,
			&item.ConstructorID, &item.Position); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// CountPoles counts qualifying results with position 1 for the competitor.
func CountPoles(
	ctx context.Context,
	conn repository.Querier,
	competitorID int,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
) (int, error) {
	idCol := "q.driver_id"
	if kind == model.KindConstructor {
		idCol = "q.constructor_id"
	}
	args := []interface{}{competitorID}
	conds := []string{fmt.Sprintf("%s = $1", idCol), "q.position = 1"}
	conds, args = filter.Apply(conds, args)

	//nolint:gosec // idCol is a compile time constant
	stmt := fmt.Sprintf(`
	select count(*)
	from qualifying q
	join races ra on ra.id = q.race_id
	where %s
	`, strings.Join(conds, " and "))

	var count int
	if err := conn.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountDistinctPoleSitters counts distinct drivers with a pole in a season.
func CountDistinctPoleSitters(
	ctx context.Context,
	conn repository.Querier,
	year int,
) (int, error) {
	var count int
	err := conn.QueryRow(ctx, `
	select count(distinct q.driver_id)
	from qualifying q
	join races ra on ra.id = q.race_id
	where ra.year = $1 and q.position = 1
	`, year).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// TopPoles returns the drivers with the most pole positions.
func TopPoles(
	ctx context.Context,
	conn repository.Querier,
	filter *repository.EntryFilter,
	limit int,
) ([]*PoleCount, error) {
	args := []interface{}{}
	conds := []string{"q.position = 1"}
	conds, args = filter.Apply(conds, args)
	args = append(args, limit)

	stmt := fmt.Sprintf(`
	select q.driver_id, d.forename || ' ' || d.surname, count(*) as cnt
	from qualifying q
	join races ra on ra.id = q.race_id
	join drivers d on d.id = q.driver_id
	where %s
	group by q.driver_id, d.forename, d.surname
	order by cnt desc, q.driver_id
	limit nullif($%d, 0)
	`, strings.Join(conds, " and "), len(args))

	rows, err := conn.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*PoleCount, 0)
	for rows.Next() {
		var item PoleCount
		if err := rows.Scan(&item.DriverID, &item.Name, &item.Count); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

type PoleCount struct {
	DriverID int
	Name     string
	Count    int
}

// PairRow is one qualifying session both drivers took part in.
type PairRow struct {
	RaceID int
	Year   int
	Round  int
	PosA   int
	PosB   int
}

// LoadPairRows returns all qualifying sessions both drivers entered.
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
	from qualifying a
	join qualifying b on b.race_id = a.race_id
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
