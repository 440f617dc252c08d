// Package aggregate computes championship standings and derived metrics
// over the historical race data. All operations are pure reads; standings
// are recomputed from the result rows on every call (never stored) with
// an optional TTL cache in front.
package aggregate

import (
	"context"
	"errors"
	"time"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/utils/cache"
	"github.com/mpapenbr/f1-history-service-go/pkg/utils/cache/loadercache"
)

// ErrSameCompetitor is returned when a comparison is requested for a
// competitor against itself.
var ErrSameCompetitor = errors.New("competitors must differ")

type (
	Option func(*Service)

	standingsKey struct {
		Year int
		Kind model.CompetitorKind
	}

	Service struct {
		conn     repository.Querier
		l        *log.Logger
		cacheTTL time.Duration

		standingsCache cache.Cache[standingsKey, []*Standing]
	}
)

func WithConn(conn repository.Querier) Option {
	return func(s *Service) {
		s.conn = conn
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		s.l = l
	}
}

func NewService(opts ...Option) *Service {
	ret := &Service{
		l:        log.Default().Named("aggregate"),
		cacheTTL: time.Minute,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.standingsCache = loadercache.New(
		loadercache.WithExpiration[standingsKey, []*Standing](ret.cacheTTL),
		loadercache.WithLogger[standingsKey, []*Standing](ret.l),
		loadercache.WithLoader(func(key standingsKey) (*[]*Standing, error) {
			data, err := ret.computeSeasonStandings(
				context.Background(), key.Year, key.Kind)
			if err != nil {
				return nil, err
			}
			return &data, nil
		}))
	return ret
}

// FlushCaches drops all cached aggregates. Called after every successful
// write so subsequent reads reflect the change.
func (s *Service) FlushCaches(ctx context.Context) {
	s.standingsCache.InvalidateAll(ctx)
}
