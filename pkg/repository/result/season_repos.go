//nolint:whitespace // can't make both editor and linter happy
package result

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

// SeasonEntry is one result row of a season scoped to the competitor
// dimension. Constructors contribute one row per car.
type SeasonEntry struct {
	Round        int
	CompetitorID int
	Name         string
	Points       decimal.Decimal
	Position     *int
}

// SeasonEntries returns all entries of a season ordered by round.
func SeasonEntries(
	ctx context.Context,
	conn repository.Querier,
	year int,
	kind model.CompetitorKind,
) ([]*SeasonEntry, error) {
	idCol, nameExpr, join := competitorJoin(kind)
	//nolint:gosec // idCol/nameExpr/join are compile time constants
	stmt := fmt.Sprintf(`
	select ra.round, %s, %s, res.points, res.position
	from results res
	join races ra on ra.id = res.race_id
	%s
	where ra.year = $1
	order by ra.round, %s
	`, idCol, nameExpr, join, idCol)

	rows, err := conn.Query(ctx, stmt, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*SeasonEntry, 0)
	for rows.Next() {
		var item SeasonEntry
		if err := rows.Scan(&item.Round, &item.CompetitorID, &item.Name,
			&item.Points, &item.Position); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// TopCount is a competitor with an associated count (wins, podiums, ...).
type TopCount struct {
	CompetitorID int
	Name         string
	Count        int
}

// TopWins returns the competitors with the most race wins,
// optionally restricted by filter. A limit of 0 returns all.
func TopWins(
	ctx context.Context,
	conn repository.Querier,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
	limit int,
) ([]*TopCount, error) {
	return topByCondition(ctx, conn, kind, "res.position = 1", filter, limit)
}

// TopPodiums returns the competitors with the most podium finishes.
func TopPodiums(
	ctx context.Context,
	conn repository.Querier,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
	limit int,
) ([]*TopCount, error) {
	return topByCondition(ctx, conn, kind, "res.position between 1 and 3",
		filter, limit)
}

func topByCondition(
	ctx context.Context,
	conn repository.Querier,
	kind model.CompetitorKind,
	cond string,
	filter *repository.EntryFilter,
	limit int,
) ([]*TopCount, error) {
	idCol, nameExpr, join := competitorJoin(kind)
	conds := []string{cond}
	args := []interface{}{}
	conds, args = filter.Apply(conds, args)
	args = append(args, limit)

	//nolint:gosec // query fragments are compile time constants
	stmt := fmt.Sprintf(`
	select %s, %s, count(*) as cnt
	from results res
	join races ra on ra.id = res.race_id
	%s
	where %s
	group by %s, %s
	order by cnt desc, %s
	limit nullif($%d, 0)
	`, idCol, nameExpr, join, strings.Join(conds, " and "),
		idCol, nameExpr, idCol, len(args))

	rows, err := conn.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*TopCount, 0)
	for rows.Next() {
		var item TopCount
		if err := rows.Scan(&item.CompetitorID, &item.Name, &item.Count); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// SeasonFacts holds the season-wide highlight counts.
type SeasonFacts struct {
	Races           int
	DistinctWinners int
}

func LoadSeasonFacts(ctx context.Context, conn repository.Querier, year int) (
	*SeasonFacts, error,
) {
	row := conn.QueryRow(ctx, `
	select count(distinct ra.id),
		count(distinct res.driver_id) filter (where res.position = 1)
	from races ra
	left join results res on res.race_id = ra.id
	where ra.year = $1
	`, year)
	var item SeasonFacts
	if err := row.Scan(&item.Races, &item.DistinctWinners); err != nil {
		return nil, err
	}
	return &item, nil
}

// BiggestClimb is the entry with the largest gain from grid to finish.
type BiggestClimb struct {
	DriverID     int
	Name         string
	RaceName     string
	PlacesGained int
}

func LoadBiggestClimb(ctx context.Context, conn repository.Querier, year int) (
	*BiggestClimb, error,
) {
	row := conn.QueryRow(ctx, `
	select res.driver_id, d.forename || ' ' || d.surname, ra.name,
		res.grid - res.position as gained
	from results res
	join races ra on ra.id = res.race_id
	join drivers d on d.id = res.driver_id
	where ra.year = $1 and res.position is not null and res.grid > 0
	order by gained desc
	limit 1
	`, year)
	var item BiggestClimb
	if err := row.Scan(&item.DriverID, &item.Name, &item.RaceName,
		&item.PlacesGained); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}

// LoadHatTricks counts pole + win + fastest lap in the same race per driver.
func LoadHatTricks(ctx context.Context, conn repository.Querier, year int) (
	[]*TopCount, error,
) {
	rows, err := conn.Query(ctx, `
	select res.driver_id, d.forename || ' ' || d.surname, count(*) as cnt
	from results res
	join races ra on ra.id = res.race_id
	join drivers d on d.id = res.driver_id
	join qualifying q on q.race_id = res.race_id and q.driver_id = res.driver_id
	where ra.year = $1
		and res.position = 1
		and res.fastest_lap_rank = 1
		and q.position = 1
	group by res.driver_id, d.forename, d.surname
	order by cnt desc
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*TopCount, 0)
	for rows.Next() {
		var item TopCount
		if err := rows.Scan(&item.CompetitorID, &item.Name, &item.Count); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
