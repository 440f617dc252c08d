package aggregate

import (
	"context"

	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/qualifying"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

type (
	// Duel is one side-by-side comparison. RacesTogether counts every
	// shared entry; the win counters only cover entries where both
	// drivers have a comparable position. The two numbers are reported
	// separately since a retirement removes a race from the duel but
	// not from the shared history.
	Duel struct {
		RacesTogether  int
		BothClassified int
		WinsA          int
		WinsB          int
	}

	// HeadToHead compares two drivers over their shared races and
	// qualifying sessions.
	HeadToHead struct {
		DriverA int
		DriverB int
		Race    Duel
		Quali   Duel
	}
)

// HeadToHead builds the duel statistics for two distinct drivers,
// optionally restricted by filter.
//
//nolint:whitespace // can't make both editor and linter happy
func (s *Service) HeadToHead(
	ctx context.Context,
	driverA, driverB int,
	filter *repository.EntryFilter,
) (*HeadToHead, error) {
	if driverA == driverB {
		return nil, ErrSameCompetitor
	}
	ret := &HeadToHead{DriverA: driverA, DriverB: driverB}

	raceRows, err := result.LoadPairRows(ctx, s.conn, driverA, driverB, filter)
	if err != nil {
		return nil, err
	}
	ret.Race.RacesTogether = len(raceRows)
	for _, row := range raceRows {
		if row.PosA == nil || row.PosB == nil {
			continue
		}
		ret.Race.BothClassified++
		if *row.PosA < *row.PosB {
			ret.Race.WinsA++
		} else {
			ret.Race.WinsB++
		}
	}

	qualiRows, err := qualifying.LoadPairRows(ctx, s.conn, driverA, driverB, filter)
	if err != nil {
		return nil, err
	}
	ret.Quali.RacesTogether = len(qualiRows)
	ret.Quali.BothClassified = len(qualiRows)
	for _, row := range qualiRows {
		if row.PosA < row.PosB {
			ret.Quali.WinsA++
		} else {
			ret.Quali.WinsB++
		}
	}
	return ret, nil
}
