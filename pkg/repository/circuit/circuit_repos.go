//nolint:whitespace // can't make both editor and linter happy
package circuit

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

var selector = `select c.id, c.circuit_ref, c.name, c.location, c.country
	from circuits c`

func Create(ctx context.Context, conn repository.Querier, arg *model.Circuit) (
	*model.Circuit, error,
) {
	row := conn.QueryRow(ctx, `
	insert into circuits (
		circuit_ref, name, location, country
	) values ($1,$2,$3,$4)
	returning id
		`,
		arg.Ref, arg.Name, arg.Location, arg.Country,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return LoadByID(ctx, conn, id)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Circuit, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where c.id=$1", selector), id)
	return readData(row)
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Circuit, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by c.name", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Circuit, 0)
	for rows.Next() {
		item, err := readData(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

func readData(row pgx.Row) (*model.Circuit, error) {
	var item model.Circuit
	if err := row.Scan(
		&item.ID,
		&item.Ref,
		&item.Name,
		&item.Location,
		&item.Country,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
