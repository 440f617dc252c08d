package aggregate

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

type (
	// Standing is the cumulative championship state of one competitor
	// after a round. Rank uses competition ranking: competitors with
	// equal points share a rank, the next rank is skipped accordingly.
	Standing struct {
		Round        int
		CompetitorID int
		Name         string
		Points       decimal.Decimal
		Wins         int
		Rank         int
	}

	// Champion is the outcome of a season. Leaders holds every
	// competitor with the top score of the final round; ties are
	// reported as-is, never resolved by a secondary criterion.
	Champion struct {
		Season  int
		Kind    model.CompetitorKind
		Leaders []*Standing
		Tied    bool
	}
)

// SeasonStandings returns the round-by-round cumulative standings of a
// season. The result contains one entry per competitor per round a
// result exists for, ordered by round and rank.
func (s *Service) SeasonStandings(
	ctx context.Context,
	year int,
	kind model.CompetitorKind,
) ([]*Standing, error) {
	data, err := s.standingsCache.Get(ctx, standingsKey{Year: year, Kind: kind})
	if err != nil {
		return nil, err
	}
	return *data, nil
}

// FinalStandings returns the standings after the last round of a season.
func (s *Service) FinalStandings(
	ctx context.Context,
	year int,
	kind model.CompetitorKind,
) ([]*Standing, error) {
	standings, err := s.SeasonStandings(ctx, year, kind)
	if err != nil {
		return nil, err
	}
	if len(standings) == 0 {
		return []*Standing{}, nil
	}
	lastRound := standings[len(standings)-1].Round
	return lo.Filter(standings, func(item *Standing, _ int) bool {
		return item.Round == lastRound
	}), nil
}

// SeasonChampion determines the champion of a season from the final
// standings. A season without any results yields an error wrapping
// repository.ErrNoData.
func (s *Service) SeasonChampion(
	ctx context.Context,
	year int,
	kind model.CompetitorKind,
) (*Champion, error) {
	final, err := s.FinalStandings(ctx, year, kind)
	if err != nil {
		return nil, err
	}
	if len(final) == 0 {
		return nil, fmt.Errorf("no results for season %d: %w",
			year, repository.ErrNoData)
	}
	top := final[0].Points
	leaders := lo.Filter(final, func(item *Standing, _ int) bool {
		return item.Points.Equal(top)
	})
	return &Champion{
		Season:  year,
		Kind:    kind,
		Leaders: leaders,
		Tied:    len(leaders) > 1,
	}, nil
}

func (s *Service) computeSeasonStandings(
	ctx context.Context,
	year int,
	kind model.CompetitorKind,
) ([]*Standing, error) {
	entries, err := result.SeasonEntries(ctx, s.conn, year, kind)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []*Standing{}, nil
	}
	byRound := lo.GroupBy(entries, func(item *result.SeasonEntry) int {
		return item.Round
	})
	rounds := lo.Keys(byRound)
	sort.Ints(rounds)

	points := map[int]decimal.Decimal{}
	wins := map[int]int{}
	names := map[int]string{}

	ret := make([]*Standing, 0, len(entries))
	for _, round := range rounds {
		for _, entry := range byRound[round] {
			points[entry.CompetitorID] = points[entry.CompetitorID].
				Add(entry.Points)
			names[entry.CompetitorID] = entry.Name
			if entry.Position != nil && *entry.Position == 1 {
				wins[entry.CompetitorID]++
			}
		}
		snapshot := make([]*Standing, 0, len(points))
		for id, pts := range points {
			snapshot = append(snapshot, &Standing{
				Round:        round,
				CompetitorID: id,
				Name:         names[id],
				Points:       pts,
				Wins:         wins[id],
			})
		}
		rankStandings(snapshot)
		ret = append(ret, snapshot...)
	}
	return ret, nil
}

// rankStandings sorts by points (wins and name break the display order
// only) and assigns competition ranks based on points alone.
func rankStandings(standings []*Standing) {
	sort.Slice(standings, func(i, j int) bool {
		if cmp := standings[i].Points.Cmp(standings[j].Points); cmp != 0 {
			return cmp > 0
		}
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Name < standings[j].Name
	})
	for i, item := range standings {
		if i > 0 && item.Points.Equal(standings[i-1].Points) {
			item.Rank = standings[i-1].Rank
		} else {
			item.Rank = i + 1
		}
	}
}
