package aggregate

import (
	"context"

	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/pitstop"
)

// PitStopStats returns the per-driver pit stop aggregates of the
// filtered races, fastest average first.
func (s *Service) PitStopStats(
	ctx context.Context,
	filter *repository.EntryFilter,
) ([]*pitstop.Stats, error) {
	return pitstop.LoadDriverStats(ctx, s.conn, filter)
}
