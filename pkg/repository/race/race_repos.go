//nolint:whitespace // can't make both editor and linter happy
package race

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

var selector = `select ra.id, ra.year, ra.round, ra.circuit_id, ra.name, ra.race_date
	from races ra`

func Create(ctx context.Context, conn repository.Querier, arg *model.Race) (
	*model.Race, error,
) {
	row := conn.QueryRow(ctx, `
	insert into races (
		year, round, circuit_id, name, race_date
	) values ($1,$2,$3,$4,$5)
	returning id
		`,
		arg.Year, arg.Round, arg.CircuitID, arg.Name, arg.Date,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return LoadByID(ctx, conn, id)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Race, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where ra.id=$1", selector), id)
	return readData(row)
}

// LoadBySeason returns the races of a season ordered by round.
func LoadBySeason(ctx context.Context, conn repository.Querier, year int) (
	[]*model.Race, error,
) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s where ra.year=$1 order by ra.round", selector), year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func LoadByCircuit(ctx context.Context, conn repository.Querier, circuitID int) (
	[]*model.Race, error,
) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s where ra.circuit_id=$1 order by ra.year, ra.round", selector),
		circuitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Seasons returns all years that have at least one race, newest first.
func Seasons(ctx context.Context, conn repository.Querier) ([]int, error) {
	rows, err := conn.Query(ctx,
		"select distinct year from races order by year desc")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		ret = append(ret, year)
	}
	return ret, rows.Err()
}

func collect(rows pgx.Rows) ([]*model.Race, error) {
	ret := make([]*model.Race, 0)
	for rows.Next() {
		item, err := readData(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

func readData(row pgx.Row) (*model.Race, error) {
	var item model.Race
	if err := row.Scan(
		&item.ID,
		&item.Year,
		&item.Round,
		&item.CircuitID,
		&item.Name,
		&item.Date,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
