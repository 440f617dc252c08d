package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/circuit"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/constructor"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/driver"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

// write requests run in a transaction; the aggregate caches are flushed
// after a successful commit so reads pick up the change.

type (
	createDriverRequest struct {
		Ref         string  `json:"ref"`
		Number      *int    `json:"number,omitempty"`
		Code        *string `json:"code,omitempty"`
		Forename    string  `json:"forename"`
		Surname     string  `json:"surname"`
		DOB         *string `json:"dob,omitempty"`
		Nationality string  `json:"nationality"`
	}

	updateDriverRequest struct {
		Nationality string `json:"nationality,omitempty"`
		Code        string `json:"code,omitempty"`
	}

	createResultRequest struct {
		RaceID         int    `json:"raceId"`
		DriverID       int    `json:"driverId"`
		ConstructorID  int    `json:"constructorId"`
		Grid           int    `json:"grid"`
		Position       *int   `json:"position,omitempty"`
		Points         string `json:"points"`
		Laps           int    `json:"laps"`
		FastestLapRank *int   `json:"fastestLapRank,omitempty"`
		StatusID       *int   `json:"statusId,omitempty"`
	}
)

func decode[T any](r *http.Request) (*T, error) {
	var ret T
	if err := json.NewDecoder(r.Body).Decode(&ret); err != nil {
		return nil, errBadParam
	}
	return &ret, nil
}

func (s *Server) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	req, err := decode[createDriverRequest](r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	arg := &model.Driver{
		Ref:         req.Ref,
		Number:      req.Number,
		Code:        req.Code,
		Forename:    req.Forename,
		Surname:     req.Surname,
		Nationality: req.Nationality,
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			s.writeError(w, errBadParam)
			return
		}
		arg.DOB = &dob
	}
	ctx := r.Context()
	var created *model.Driver
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = driver.Create(ctx, tx, arg)
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.service.FlushCaches(ctx)
	s.writeJSON(w, http.StatusCreated, toDriverDTO(created))
}

func (s *Server) handleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	req, err := decode[updateDriverRequest](r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ctx := r.Context()
	var updated *model.Driver
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = driver.Update(ctx, tx, id, req.Nationality, req.Code)
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.service.FlushCaches(ctx)
	s.writeJSON(w, http.StatusOK, toDriverDTO(updated))
}

func (s *Server) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, driver.DeleteByID)
}

func (s *Server) handleDeleteConstructor(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, constructor.DeleteByID)
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Server) deleteByID(
	w http.ResponseWriter,
	r *http.Request,
	del func(ctx context.Context, conn repository.Querier, id int) (int, error),
) {
	id, err := pathInt(r, "id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	ctx := r.Context()
	num := 0
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		num, err = del(ctx, tx, id)
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	if num == 0 {
		s.writeError(w, repository.ErrNoData)
		return
	}
	s.service.FlushCaches(ctx)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateConstructor(w http.ResponseWriter, r *http.Request) {
	req, err := decode[constructorDTO](r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ctx := r.Context()
	var created *model.Constructor
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = constructor.Create(ctx, tx, &model.Constructor{
			Ref: req.Ref, Name: req.Name, Nationality: req.Nationality,
		})
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.service.FlushCaches(ctx)
	s.writeJSON(w, http.StatusCreated, toConstructorDTO(created))
}

func (s *Server) handleCreateCircuit(w http.ResponseWriter, r *http.Request) {
	req, err := decode[circuitDTO](r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ctx := r.Context()
	var created *model.Circuit
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = circuit.Create(ctx, tx, &model.Circuit{
			Ref: req.Ref, Name: req.Name,
			Location: req.Location, Country: req.Country,
		})
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.service.FlushCaches(ctx)
	s.writeJSON(w, http.StatusCreated, toCircuitDTO(created))
}

func (s *Server) handleCreateRace(w http.ResponseWriter, r *http.Request) {
	req, err := decode[raceDTO](r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	arg := &model.Race{
		Year: req.Year, Round: req.Round,
		CircuitID: req.CircuitID, Name: req.Name,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			s.writeError(w, errBadParam)
			return
		}
		arg.Date = &date
	}
	ctx := r.Context()
	var created *model.Race
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = race.Create(ctx, tx, arg)
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.service.FlushCaches(ctx)
	s.writeJSON(w, http.StatusCreated, toRaceDTO(created))
}

func (s *Server) handleCreateResult(w http.ResponseWriter, r *http.Request) {
	req, err := decode[createResultRequest](r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	points, err := decimal.NewFromString(req.Points)
	if err != nil {
		s.writeError(w, errBadParam)
		return
	}
	ctx := r.Context()
	var created *model.Result
	if err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = result.Create(ctx, tx, &model.Result{
			RaceID:         req.RaceID,
			DriverID:       req.DriverID,
			ConstructorID:  req.ConstructorID,
			Grid:           req.Grid,
			Position:       req.Position,
			Points:         points,
			Laps:           req.Laps,
			FastestLapRank: req.FastestLapRank,
			StatusID:       req.StatusID,
		})
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.service.FlushCaches(ctx)
	s.writeJSON(w, http.StatusCreated, map[string]int{"id": created.ID})
}
