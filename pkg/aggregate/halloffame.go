package aggregate

import (
	"context"
	"errors"
	"sort"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/qualifying"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

type (
	// TitleCount is a competitor with the number of championships won.
	// Every leader of a tied season counts a full title.
	TitleCount struct {
		CompetitorID int
		Name         string
		Count        int
	}

	// HallOfFame holds the all-time leaderboards. Poles is only
	// populated for the driver dimension since qualifying rows carry
	// no meaningful constructor ranking.
	HallOfFame struct {
		Kind    model.CompetitorKind
		Wins    []*result.TopCount
		Podiums []*result.TopCount
		Poles   []*qualifying.PoleCount
		Titles  []*TitleCount
	}
)

// HallOfFame builds the all-time leaderboards, optionally restricted by
// filter. limit caps each list, 0 keeps them unbounded.
//
//nolint:whitespace // can't make both editor and linter happy
func (s *Service) HallOfFame(
	ctx context.Context,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
	limit int,
) (*HallOfFame, error) {
	ret := &HallOfFame{Kind: kind}
	var err error
	if ret.Wins, err = result.TopWins(
		ctx, s.conn, kind, filter, limit); err != nil {
		return nil, err
	}
	if ret.Podiums, err = result.TopPodiums(
		ctx, s.conn, kind, filter, limit); err != nil {
		return nil, err
	}
	if kind == model.KindDriver {
		if ret.Poles, err = qualifying.TopPoles(
			ctx, s.conn, filter, limit); err != nil {
			return nil, err
		}
	}
	if ret.Titles, err = s.titleCounts(ctx, kind, filter, limit); err != nil {
		return nil, err
	}
	return ret, nil
}

// titleCounts walks all seasons in range and tallies the champions.
//
//nolint:whitespace // can't make both editor and linter happy
func (s *Service) titleCounts(
	ctx context.Context,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
	limit int,
) ([]*TitleCount, error) {
	seasons, err := race.Seasons(ctx, s.conn)
	if err != nil {
		return nil, err
	}
	counts := map[int]*TitleCount{}
	for _, year := range seasons {
		if filter != nil {
			if filter.SeasonFrom != nil && year < *filter.SeasonFrom {
				continue
			}
			if filter.SeasonTo != nil && year > *filter.SeasonTo {
				continue
			}
		}
		champ, err := s.SeasonChampion(ctx, year, kind)
		if err != nil {
			if errors.Is(err, repository.ErrNoData) {
				continue
			}
			return nil, err
		}
		for _, leader := range champ.Leaders {
			if entry, ok := counts[leader.CompetitorID]; ok {
				entry.Count++
			} else {
				counts[leader.CompetitorID] = &TitleCount{
					CompetitorID: leader.CompetitorID,
					Name:         leader.Name,
					Count:        1,
				}
			}
		}
	}
	ret := make([]*TitleCount, 0, len(counts))
	for _, item := range counts {
		ret = append(ret, item)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Count != ret[j].Count {
			return ret[i].Count > ret[j].Count
		}
		return ret[i].Name < ret[j].Name
	})
	if limit > 0 && len(ret) > limit {
		ret = ret[:limit]
	}
	return ret, nil
}
