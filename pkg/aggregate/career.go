package aggregate

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/qualifying"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

// PoleSource selects how pole positions are counted. Early seasons have
// no qualifying data, so the race grid is offered as an alternative.
type PoleSource int

const (
	// PolesFromQualifying counts qualifying results with position 1.
	PolesFromQualifying PoleSource = iota
	// PolesFromGrid counts race entries started from grid slot 1.
	PolesFromGrid
)

func (p PoleSource) String() string {
	switch p {
	case PolesFromQualifying:
		return "qualifying"
	case PolesFromGrid:
		return "grid"
	default:
		return fmt.Sprintf("PoleSource(%d)", int(p))
	}
}

// CareerTotals is the aggregated dossier of one competitor over the
// filtered entries. Rates are 0 when there are no entries.
type CareerTotals struct {
	CompetitorID int
	Kind         model.CompetitorKind
	PoleSource   PoleSource

	Entries     int
	Wins        int
	Podiums     int
	Poles       int
	FastestLaps int
	DNFs        int
	Laps        int
	Points      decimal.Decimal

	WinRate         float64
	PodiumRate      float64
	PointsPerEntry  float64
	FinishedEntries int
}

// CareerTotals aggregates the career of a competitor. poleSource must be
// chosen by the caller; there is no fallback between the two sources.
//
//nolint:whitespace // can't make both editor and linter happy
func (s *Service) CareerTotals(
	ctx context.Context,
	competitorID int,
	kind model.CompetitorKind,
	poleSource PoleSource,
	filter *repository.EntryFilter,
) (*CareerTotals, error) {
	stats, err := result.LoadCareerStats(ctx, s.conn, competitorID, kind, filter)
	if err != nil {
		return nil, err
	}
	poles := stats.GridPoles
	if poleSource == PolesFromQualifying {
		poles, err = qualifying.CountPoles(ctx, s.conn, competitorID, kind, filter)
		if err != nil {
			return nil, err
		}
	}
	ret := &CareerTotals{
		CompetitorID:    competitorID,
		Kind:            kind,
		PoleSource:      poleSource,
		Entries:         stats.Entries,
		Wins:            stats.Wins,
		Podiums:         stats.Podiums,
		Poles:           poles,
		FastestLaps:     stats.FastestLaps,
		DNFs:            stats.DNFs,
		Laps:            stats.Laps,
		Points:          stats.Points,
		FinishedEntries: stats.Entries - stats.DNFs,
	}
	if stats.Entries > 0 {
		ret.WinRate = float64(stats.Wins) / float64(stats.Entries)
		ret.PodiumRate = float64(stats.Podiums) / float64(stats.Entries)
		ret.PointsPerEntry, _ = stats.Points.
			Div(decimal.NewFromInt(int64(stats.Entries))).Float64()
	}
	return ret, nil
}
