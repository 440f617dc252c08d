// Package api exposes the aggregates and the admin operations as a
// JSON-over-HTTP service.
package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
)

type (
	Option func(*Server)

	Server struct {
		pool       *pgxpool.Pool
		service    *aggregate.Service
		l          *log.Logger
		adminToken string
	}
)

func WithPool(pool *pgxpool.Pool) Option {
	return func(s *Server) {
		s.pool = pool
	}
}

func WithService(service *aggregate.Service) Option {
	return func(s *Server) {
		s.service = service
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		s.l = l
	}
}

func WithAdminToken(token string) Option {
	return func(s *Server) {
		s.adminToken = token
	}
}

func NewServer(opts ...Option) *Server {
	ret := &Server{
		l: log.Default().Named("api"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Handler builds the route table. Admin routes modify data and require
// the admin token.
//
//nolint:funlen // route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/seasons", s.handleSeasons)
	mux.HandleFunc("GET /api/v1/seasons/{year}/races", s.handleSeasonRaces)
	mux.HandleFunc("GET /api/v1/seasons/{year}/standings", s.handleStandings)
	mux.HandleFunc("GET /api/v1/seasons/{year}/champion", s.handleChampion)
	mux.HandleFunc("GET /api/v1/seasons/{year}/summary", s.handleSeasonSummary)

	mux.HandleFunc("GET /api/v1/drivers", s.handleDrivers)
	mux.HandleFunc("GET /api/v1/drivers/{ref}", s.handleDriver)
	mux.HandleFunc("GET /api/v1/drivers/{ref}/career", s.handleDriverCareer)
	mux.HandleFunc("GET /api/v1/drivers/{ref}/reliability",
		s.handleDriverReliability)

	mux.HandleFunc("GET /api/v1/constructors", s.handleConstructors)
	mux.HandleFunc("GET /api/v1/constructors/{ref}/career",
		s.handleConstructorCareer)
	mux.HandleFunc("GET /api/v1/constructors/{ref}/reliability",
		s.handleConstructorReliability)

	mux.HandleFunc("GET /api/v1/headtohead", s.handleHeadToHead)
	mux.HandleFunc("GET /api/v1/halloffame", s.handleHallOfFame)

	mux.HandleFunc("GET /api/v1/circuits", s.handleCircuits)
	mux.HandleFunc("GET /api/v1/circuits/{id}/stats", s.handleCircuitStats)
	mux.HandleFunc("GET /api/v1/pitstops", s.handlePitStopStats)

	admin := s.requireAdmin
	mux.HandleFunc("POST /api/v1/admin/drivers", admin(s.handleCreateDriver))
	mux.HandleFunc("PATCH /api/v1/admin/drivers/{id}",
		admin(s.handleUpdateDriver))
	mux.HandleFunc("DELETE /api/v1/admin/drivers/{id}",
		admin(s.handleDeleteDriver))
	mux.HandleFunc("POST /api/v1/admin/constructors",
		admin(s.handleCreateConstructor))
	mux.HandleFunc("DELETE /api/v1/admin/constructors/{id}",
		admin(s.handleDeleteConstructor))
	mux.HandleFunc("POST /api/v1/admin/circuits", admin(s.handleCreateCircuit))
	mux.HandleFunc("POST /api/v1/admin/races", admin(s.handleCreateRace))
	mux.HandleFunc("POST /api/v1/admin/results", admin(s.handleCreateResult))

	return s.withRequestID(s.withAccessLog(mux))
}
