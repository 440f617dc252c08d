package aggregate

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/qualifying"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

// SeasonSummary collects the highlight numbers of one season.
// BiggestClimb is nil when no entry has both grid and finish position.
type SeasonSummary struct {
	Season              int
	Races               int
	DistinctWinners     int
	DistinctPoleSitters int
	DriverChampion      *Champion
	ConstructorChampion *Champion
	BiggestClimb        *result.BiggestClimb
	HatTricks           []*result.TopCount
}

func (s *Service) SeasonSummary(ctx context.Context, year int) (
	*SeasonSummary, error,
) {
	facts, err := result.LoadSeasonFacts(ctx, s.conn, year)
	if err != nil {
		return nil, err
	}
	if facts.Races == 0 {
		return nil, fmt.Errorf("no races for season %d: %w",
			year, repository.ErrNoData)
	}
	ret := &SeasonSummary{
		Season:          year,
		Races:           facts.Races,
		DistinctWinners: facts.DistinctWinners,
	}
	if ret.DistinctPoleSitters, err = qualifying.CountDistinctPoleSitters(
		ctx, s.conn, year); err != nil {
		return nil, err
	}
	if ret.DriverChampion, err = s.SeasonChampion(
		ctx, year, model.KindDriver); err != nil {
		if !errors.Is(err, repository.ErrNoData) {
			return nil, err
		}
		ret.DriverChampion = nil
	}
	if ret.ConstructorChampion, err = s.SeasonChampion(
		ctx, year, model.KindConstructor); err != nil {
		if !errors.Is(err, repository.ErrNoData) {
			return nil, err
		}
		ret.ConstructorChampion = nil
	}
	if ret.BiggestClimb, err = result.LoadBiggestClimb(
		ctx, s.conn, year); err != nil {
		if !errors.Is(err, repository.ErrNoData) {
			return nil, err
		}
		ret.BiggestClimb = nil
	}
	if ret.HatTricks, err = result.LoadHatTricks(ctx, s.conn, year); err != nil {
		return nil, err
	}
	return ret, nil
}
