//nolint:whitespace // can't make both editor and linter happy
package constructor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

var selector = `select c.id, c.constructor_ref, c.name, c.nationality
	from constructors c`

func Create(ctx context.Context, conn repository.Querier, arg *model.Constructor) (
	*model.Constructor, error,
) {
	row := conn.QueryRow(ctx, `
	insert into constructors (
		constructor_ref, name, nationality
	) values ($1,$2,$3)
	returning id
		`,
		arg.Ref, arg.Name, arg.Nationality,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return LoadByID(ctx, conn, id)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Constructor, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where c.id=$1", selector), id)
	return readData(row)
}

func LoadByRef(ctx context.Context, conn repository.Querier, ref string) (
	*model.Constructor, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where c.constructor_ref=$1", selector), ref)
	return readData(row)
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Constructor, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by c.name", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Constructor, 0)
	for rows.Next() {
		item, err := readData(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

func Update(
	ctx context.Context,
	conn repository.Querier,
	id int,
	nationality string,
) (*model.Constructor, error) {
	cmdTag, err := conn.Exec(ctx, `
		update constructors set
		nationality=coalesce(nullif($1,''),nationality)
		where id=$2
	`, nationality, id)
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
	cmdTag, err := conn.Exec(ctx, "delete from constructors where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func readData(row pgx.Row) (*model.Constructor, error) {
	var item model.Constructor
	if err := row.Scan(
		&item.ID,
		&item.Ref,
		&item.Name,
		&item.Nationality,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
