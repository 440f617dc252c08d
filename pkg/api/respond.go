package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
)

type errorDTO struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.l.Error("could not write response", log.ErrorField(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoData):
		s.writeJSON(w, http.StatusNotFound, errorDTO{Error: err.Error()})
	case errors.Is(err, aggregate.ErrSameCompetitor),
		errors.Is(err, errBadParam):
		s.writeJSON(w, http.StatusBadRequest, errorDTO{Error: err.Error()})
	default:
		s.l.Error("request failed", log.ErrorField(err))
		s.writeJSON(w, http.StatusInternalServerError,
			errorDTO{Error: "internal error"})
	}
}

var errBadParam = errors.New("invalid parameter")

func pathInt(r *http.Request, name string) (int, error) {
	ret, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, errBadParam
	}
	return ret, nil
}

func queryInt(r *http.Request, name, defVal string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		raw = defVal
	}
	ret, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errBadParam
	}
	return ret, nil
}

func queryKind(r *http.Request) (model.CompetitorKind, error) {
	switch r.URL.Query().Get("kind") {
	case "", "driver":
		return model.KindDriver, nil
	case "constructor":
		return model.KindConstructor, nil
	default:
		return model.KindDriver, errBadParam
	}
}

func queryPoleSource(r *http.Request) (aggregate.PoleSource, error) {
	switch r.URL.Query().Get("poleSource") {
	case "", "qualifying":
		return aggregate.PolesFromQualifying, nil
	case "grid":
		return aggregate.PolesFromGrid, nil
	default:
		return aggregate.PolesFromQualifying, errBadParam
	}
}

// queryFilter builds the season/circuit restriction from the optional
// from, to and circuit query parameters.
func queryFilter(r *http.Request) (*repository.EntryFilter, error) {
	ret := &repository.EntryFilter{}
	used := false
	for name, target := range map[string]**int{
		"from":    &ret.SeasonFrom,
		"to":      &ret.SeasonTo,
		"circuit": &ret.CircuitID,
	} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errBadParam
		}
		*target = &val
		used = true
	}
	if !used {
		return nil, nil
	}
	return ret, nil
}
