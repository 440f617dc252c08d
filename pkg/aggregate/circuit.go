package aggregate

import (
	"context"
	"errors"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/circuit"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/laptime"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

// CircuitStats describes the history of one venue. LapRecord is nil
// when no lap times are recorded for the circuit.
type CircuitStats struct {
	Circuit     *model.Circuit
	Races       int
	FirstYear   int
	LastYear    int
	TopWinners  []*result.TopCount
	Retirements []*result.StatusCount
	WinnerGrids []*result.GridCount
	LapRecord   *laptime.LapRecord
}

func (s *Service) CircuitStats(ctx context.Context, circuitID, limit int) (
	*CircuitStats, error,
) {
	venue, err := circuit.LoadByID(ctx, s.conn, circuitID)
	if err != nil {
		return nil, err
	}
	races, err := race.LoadByCircuit(ctx, s.conn, circuitID)
	if err != nil {
		return nil, err
	}
	ret := &CircuitStats{Circuit: venue, Races: len(races)}
	for _, item := range races {
		if ret.FirstYear == 0 || item.Year < ret.FirstYear {
			ret.FirstYear = item.Year
		}
		if item.Year > ret.LastYear {
			ret.LastYear = item.Year
		}
	}
	filter := &repository.EntryFilter{CircuitID: &circuitID}
	if ret.TopWinners, err = result.TopWins(
		ctx, s.conn, model.KindDriver, filter, limit); err != nil {
		return nil, err
	}
	if ret.Retirements, err = result.LoadRetirementCounts(
		ctx, s.conn, circuitID); err != nil {
		return nil, err
	}
	if ret.WinnerGrids, err = result.LoadWinnerGrids(
		ctx, s.conn, circuitID); err != nil {
		return nil, err
	}
	if ret.LapRecord, err = laptime.LoadCircuitRecord(
		ctx, s.conn, circuitID); err != nil {
		if !errors.Is(err, repository.ErrNoData) {
			return nil, err
		}
		ret.LapRecord = nil
	}
	return ret, nil
}
