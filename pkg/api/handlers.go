package api

import (
	"net/http"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/circuit"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/constructor"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/driver"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
)

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := race.Seasons(r.Context(), s.pool)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, seasons)
}

func (s *Server) handleSeasonRaces(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		s.writeError(w, err)
		return
	}
	races, err := race.LoadBySeason(r.Context(), s.pool, year)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ret := make([]raceDTO, 0, len(races))
	for _, item := range races {
		ret = append(ret, toRaceDTO(item))
	}
	s.writeJSON(w, http.StatusOK, ret)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		s.writeError(w, err)
		return
	}
	kind, err := queryKind(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if r.URL.Query().Get("final") == "true" {
		data, err := s.service.FinalStandings(r.Context(), year, kind)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, toStandingDTOs(data))
		return
	}
	data, err := s.service.SeasonStandings(r.Context(), year, kind)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStandingDTOs(data))
}

func (s *Server) handleChampion(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		s.writeError(w, err)
		return
	}
	kind, err := queryKind(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	champ, err := s.service.SeasonChampion(r.Context(), year, kind)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toChampionDTO(champ))
}

func (s *Server) handleSeasonSummary(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		s.writeError(w, err)
		return
	}
	summary, err := s.service.SeasonSummary(r.Context(), year)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSeasonSummaryDTO(summary))
}

func (s *Server) handleDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := driver.LoadAll(r.Context(), s.pool)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ret := make([]driverDTO, 0, len(drivers))
	for _, item := range drivers {
		ret = append(ret, toDriverDTO(item))
	}
	s.writeJSON(w, http.StatusOK, ret)
}

func (s *Server) handleDriver(w http.ResponseWriter, r *http.Request) {
	found, err := driver.LoadByRef(r.Context(), s.pool, r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDriverDTO(found))
}

func (s *Server) handleDriverCareer(w http.ResponseWriter, r *http.Request) {
	found, err := driver.LoadByRef(r.Context(), s.pool, r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.career(w, r, found.ID, model.KindDriver)
}

func (s *Server) handleConstructorCareer(w http.ResponseWriter, r *http.Request) {
	found, err := constructor.LoadByRef(r.Context(), s.pool, r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.career(w, r, found.ID, model.KindConstructor)
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Server) career(
	w http.ResponseWriter, r *http.Request, id int, kind model.CompetitorKind,
) {
	poleSource, err := queryPoleSource(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	filter, err := queryFilter(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	totals, err := s.service.CareerTotals(r.Context(), id, kind,
		poleSource, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCareerDTO(totals))
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Server) handleDriverReliability(
	w http.ResponseWriter, r *http.Request,
) {
	found, err := driver.LoadByRef(r.Context(), s.pool, r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.reliability(w, r, found.ID, model.KindDriver)
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Server) handleConstructorReliability(
	w http.ResponseWriter, r *http.Request,
) {
	found, err := constructor.LoadByRef(r.Context(), s.pool, r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.reliability(w, r, found.ID, model.KindConstructor)
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Server) reliability(
	w http.ResponseWriter, r *http.Request, id int, kind model.CompetitorKind,
) {
	filter, err := queryFilter(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	top, err := queryInt(r, "top", "0")
	if err != nil {
		s.writeError(w, err)
		return
	}
	rel, err := s.service.Reliability(r.Context(), id, kind, filter, top)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toReliabilityDTO(rel))
}

func (s *Server) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	driverA, err := driver.LoadByRef(ctx, s.pool, r.URL.Query().Get("driverA"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	driverB, err := driver.LoadByRef(ctx, s.pool, r.URL.Query().Get("driverB"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	filter, err := queryFilter(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	duel, err := s.service.HeadToHead(ctx, driverA.ID, driverB.ID, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, headToHeadDTO{
		DriverA: toDriverDTO(driverA),
		DriverB: toDriverDTO(driverB),
		Race:    toDuelDTO(duel.Race),
		Quali:   toDuelDTO(duel.Quali),
	})
}

func (s *Server) handleHallOfFame(w http.ResponseWriter, r *http.Request) {
	kind, err := queryKind(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	filter, err := queryFilter(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit", "10")
	if err != nil {
		s.writeError(w, err)
		return
	}
	hof, err := s.service.HallOfFame(r.Context(), kind, filter, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toHallOfFameDTO(hof))
}

func (s *Server) handleCircuits(w http.ResponseWriter, r *http.Request) {
	circuits, err := circuit.LoadAll(r.Context(), s.pool)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ret := make([]circuitDTO, 0, len(circuits))
	for _, item := range circuits {
		ret = append(ret, toCircuitDTO(item))
	}
	s.writeJSON(w, http.StatusOK, ret)
}

func (s *Server) handleCircuitStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit", "5")
	if err != nil {
		s.writeError(w, err)
		return
	}
	stats, err := s.service.CircuitStats(r.Context(), id, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCircuitStatsDTO(stats))
}

func (s *Server) handlePitStopStats(w http.ResponseWriter, r *http.Request) {
	filter, err := queryFilter(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	stats, err := s.service.PitStopStats(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPitStopStatsDTOs(stats))
}
