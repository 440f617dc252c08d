package status

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

// the dataset ships its own status ids, so they are inserted verbatim
func Create(ctx context.Context, conn repository.Querier, arg *model.Status) error {
	_, err := conn.Exec(ctx, `
	insert into status (id, status) values ($1,$2)
	on conflict (id) do nothing
	`, arg.ID, arg.Status)
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Status, error,
) {
	row := conn.QueryRow(ctx, "select id, status from status where id=$1", id)
	var item model.Status
	if err := row.Scan(&item.ID, &item.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) ([]*model.Status, error) {
	rows, err := conn.Query(ctx, "select id, status from status order by id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Status, 0)
	for rows.Next() {
		var item model.Status
		if err := rows.Scan(&item.ID, &item.Status); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
