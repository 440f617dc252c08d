//nolint:whitespace // can't make both editor and linter happy
package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

var selector = `select res.id, res.race_id, res.driver_id, res.constructor_id,
	res.grid, res.position, res.points, res.laps, res.fastest_lap_rank,
	res.status_id
	from results res`

func Create(ctx context.Context, conn repository.Querier, arg *model.Result) (
	*model.Result, error,
) {
	row := conn.QueryRow(ctx, `
	insert into results (
		race_id, driver_id, constructor_id, grid, position, points, laps,
		fastest_lap_rank, status_id
	) values ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	returning id
		`,
		arg.RaceID, arg.DriverID, arg.ConstructorID, arg.Grid, arg.Position,
		arg.Points, arg.Laps, arg.FastestLapRank, arg.StatusID,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return LoadByID(ctx, conn, id)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Result, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where res.id=$1", selector), id)
	return readData(row)
}

// LoadByRace returns the classified entries first (by position), then the rest.
func LoadByRace(ctx context.Context, conn repository.Querier, raceID int) (
	[]*model.Result, error,
) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s where res.race_id=$1 order by res.position nulls last, res.id",
			selector),
		raceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func LoadByDriver(ctx context.Context, conn repository.Querier, driverID int) (
	[]*model.Result, error,
) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s where res.driver_id=$1 order by res.race_id", selector),
		driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*model.Result, error) {
	ret := make([]*model.Result, 0)
	for rows.Next() {
		item, err := readData(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

func readData(row pgx.Row) (*model.Result, error) {
	var item model.Result
	if err := row.Scan(
		&item.ID,
		&item.RaceID,
		&item.DriverID,
		&item.ConstructorID,
		&item.Grid,
		&item.Position,
		&item.Points,
		&item.Laps,
		&item.FastestLapRank,
		&item.StatusID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}

// the competitor dimension used by the aggregation queries
func competitorJoin(kind model.CompetitorKind) (idCol, nameExpr, join string) {
	if kind == model.KindConstructor {
		return "res.constructor_id",
			"c.name",
			"join constructors c on c.id = res.constructor_id"
	}
	return "res.driver_id",
		"d.forename || ' ' || d.surname",
		"join drivers d on d.id = res.driver_id"
}
