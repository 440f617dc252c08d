//nolint:whitespace // can't make both editor and linter happy
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

var selector = `select d.id, d.driver_ref, d.number, d.code, d.forename,
	d.surname, d.dob, d.nationality
	from drivers d`

func Create(ctx context.Context, conn repository.Querier, driver *model.Driver) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx, `
	insert into drivers (
		driver_ref, number, code, forename, surname, dob, nationality
	) values ($1,$2,$3,$4,$5,$6,$7)
	returning id
		`,
		driver.Ref, driver.Number, driver.Code, driver.Forename,
		driver.Surname, driver.DOB, driver.Nationality,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return LoadByID(ctx, conn, id)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where d.id=$1", selector), id)
	return readData(row)
}

func LoadByRef(ctx context.Context, conn repository.Querier, ref string) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where d.driver_ref=$1", selector), ref)
	return readData(row)
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Driver, error,
) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s order by d.surname, d.forename", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Driver, 0)
	for rows.Next() {
		item, err := readData(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

// Update replaces nationality and code. Empty values keep the current ones.
func Update(
	ctx context.Context,
	conn repository.Querier,
	id int,
	nationality string,
	code string,
) (*model.Driver, error) {
	cmdTag, err := conn.Exec(ctx, `
		update drivers set
		nationality=coalesce(nullif($1,''),nationality),
		code=coalesce(nullif($2,''),code)
		where id=$3
	`, nationality, code, id)
	if err != nil {
		return nil, err
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, repository.ErrNoData
	}
	return LoadByID(ctx, conn, id)
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from drivers where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func readData(row pgx.Row) (*model.Driver, error) {
	var item model.Driver
	if err := row.Scan(
		&item.ID,
		&item.Ref,
		&item.Number,
		&item.Code,
		&item.Forename,
		&item.Surname,
		&item.DOB,
		&item.Nationality,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
