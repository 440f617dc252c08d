package api

import (
	"time"

	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/laptime"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/pitstop"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

// transport representations of the domain types. Points travel as
// strings to keep the decimal values exact.
type (
	driverDTO struct {
		ID          int     `json:"id"`
		Ref         string  `json:"ref"`
		Number      *int    `json:"number,omitempty"`
		Code        *string `json:"code,omitempty"`
		Forename    string  `json:"forename"`
		Surname     string  `json:"surname"`
		DOB         *string `json:"dob,omitempty"`
		Nationality string  `json:"nationality"`
	}

	constructorDTO struct {
		ID          int    `json:"id"`
		Ref         string `json:"ref"`
		Name        string `json:"name"`
		Nationality string `json:"nationality"`
	}

	circuitDTO struct {
		ID       int    `json:"id"`
		Ref      string `json:"ref"`
		Name     string `json:"name"`
		Location string `json:"location"`
		Country  string `json:"country"`
	}

	raceDTO struct {
		ID        int     `json:"id"`
		Year      int     `json:"year"`
		Round     int     `json:"round"`
		CircuitID int     `json:"circuitId"`
		Name      string  `json:"name"`
		Date      *string `json:"date,omitempty"`
	}

	standingDTO struct {
		Round        int    `json:"round"`
		CompetitorID int    `json:"competitorId"`
		Name         string `json:"name"`
		Points       string `json:"points"`
		Wins         int    `json:"wins"`
		Rank         int    `json:"rank"`
	}

	championDTO struct {
		Season  int           `json:"season"`
		Kind    string        `json:"kind"`
		Tied    bool          `json:"tied"`
		Leaders []standingDTO `json:"leaders"`
	}

	careerDTO struct {
		CompetitorID    int     `json:"competitorId"`
		Kind            string  `json:"kind"`
		PoleSource      string  `json:"poleSource"`
		Entries         int     `json:"entries"`
		Wins            int     `json:"wins"`
		Podiums         int     `json:"podiums"`
		Poles           int     `json:"poles"`
		FastestLaps     int     `json:"fastestLaps"`
		DNFs            int     `json:"dnfs"`
		Laps            int     `json:"laps"`
		Points          string  `json:"points"`
		WinRate         float64 `json:"winRate"`
		PodiumRate      float64 `json:"podiumRate"`
		PointsPerEntry  float64 `json:"pointsPerEntry"`
		FinishedEntries int     `json:"finishedEntries"`
	}

	duelDTO struct {
		RacesTogether  int `json:"racesTogether"`
		BothClassified int `json:"bothClassified"`
		WinsA          int `json:"winsA"`
		WinsB          int `json:"winsB"`
	}

	headToHeadDTO struct {
		DriverA driverDTO `json:"driverA"`
		DriverB driverDTO `json:"driverB"`
		Race    duelDTO   `json:"race"`
		Quali   duelDTO   `json:"quali"`
	}

	reasonDTO struct {
		Reason string `json:"reason"`
		Count  int    `json:"count"`
	}

	reliabilityDTO struct {
		CompetitorID int         `json:"competitorId"`
		Kind         string      `json:"kind"`
		Entries      int         `json:"entries"`
		Classified   int         `json:"classified"`
		Retired      int         `json:"retired"`
		Rate         float64     `json:"rate"`
		Reasons      []reasonDTO `json:"reasons"`
	}

	topCountDTO struct {
		CompetitorID int    `json:"competitorId"`
		Name         string `json:"name"`
		Count        int    `json:"count"`
	}

	climbDTO struct {
		DriverID     int    `json:"driverId"`
		Name         string `json:"name"`
		RaceName     string `json:"raceName"`
		PlacesGained int    `json:"placesGained"`
	}

	seasonSummaryDTO struct {
		Season              int           `json:"season"`
		Races               int           `json:"races"`
		DistinctWinners     int           `json:"distinctWinners"`
		DistinctPoleSitters int           `json:"distinctPoleSitters"`
		DriverChampion      *championDTO  `json:"driverChampion,omitempty"`
		ConstructorChampion *championDTO  `json:"constructorChampion,omitempty"`
		BiggestClimb        *climbDTO     `json:"biggestClimb,omitempty"`
		HatTricks           []topCountDTO `json:"hatTricks"`
	}

	hallOfFameDTO struct {
		Kind    string        `json:"kind"`
		Wins    []topCountDTO `json:"wins"`
		Podiums []topCountDTO `json:"podiums"`
		Poles   []topCountDTO `json:"poles"`
		Titles  []topCountDTO `json:"titles"`
	}

	lapRecordDTO struct {
		DriverID int    `json:"driverId"`
		Name     string `json:"name"`
		Year     int    `json:"year"`
		TimeMS   int    `json:"timeMs"`
	}

	gridCountDTO struct {
		Grid  int `json:"grid"`
		Count int `json:"count"`
	}

	circuitStatsDTO struct {
		Circuit     circuitDTO     `json:"circuit"`
		Races       int            `json:"races"`
		FirstYear   int            `json:"firstYear"`
		LastYear    int            `json:"lastYear"`
		TopWinners  []topCountDTO  `json:"topWinners"`
		Retirements []reasonDTO    `json:"retirements"`
		WinnerGrids []gridCountDTO `json:"winnerGrids"`
		LapRecord   *lapRecordDTO  `json:"lapRecord,omitempty"`
	}

	pitStopStatsDTO struct {
		DriverID  int     `json:"driverId"`
		Name      string  `json:"name"`
		Stops     int     `json:"stops"`
		AvgMS     float64 `json:"avgMs"`
		FastestMS int     `json:"fastestMs"`
	}
)

func fmtDate(arg *time.Time) *string {
	if arg == nil {
		return nil
	}
	ret := arg.Format("2006-01-02")
	return &ret
}

func toDriverDTO(arg *model.Driver) driverDTO {
	return driverDTO{
		ID:          arg.ID,
		Ref:         arg.Ref,
		Number:      arg.Number,
		Code:        arg.Code,
		Forename:    arg.Forename,
		Surname:     arg.Surname,
		DOB:         fmtDate(arg.DOB),
		Nationality: arg.Nationality,
	}
}

func toConstructorDTO(arg *model.Constructor) constructorDTO {
	return constructorDTO{
		ID: arg.ID, Ref: arg.Ref, Name: arg.Name, Nationality: arg.Nationality,
	}
}

func toCircuitDTO(arg *model.Circuit) circuitDTO {
	return circuitDTO{
		ID: arg.ID, Ref: arg.Ref, Name: arg.Name,
		Location: arg.Location, Country: arg.Country,
	}
}

func toRaceDTO(arg *model.Race) raceDTO {
	return raceDTO{
		ID: arg.ID, Year: arg.Year, Round: arg.Round,
		CircuitID: arg.CircuitID, Name: arg.Name, Date: fmtDate(arg.Date),
	}
}

func toStandingDTOs(arg []*aggregate.Standing) []standingDTO {
	ret := make([]standingDTO, 0, len(arg))
	for _, item := range arg {
		ret = append(ret, standingDTO{
			Round:        item.Round,
			CompetitorID: item.CompetitorID,
			Name:         item.Name,
			Points:       item.Points.String(),
			Wins:         item.Wins,
			Rank:         item.Rank,
		})
	}
	return ret
}

func toChampionDTO(arg *aggregate.Champion) *championDTO {
	if arg == nil {
		return nil
	}
	return &championDTO{
		Season:  arg.Season,
		Kind:    arg.Kind.String(),
		Tied:    arg.Tied,
		Leaders: toStandingDTOs(arg.Leaders),
	}
}

func toCareerDTO(arg *aggregate.CareerTotals) careerDTO {
	return careerDTO{
		CompetitorID:    arg.CompetitorID,
		Kind:            arg.Kind.String(),
		PoleSource:      arg.PoleSource.String(),
		Entries:         arg.Entries,
		Wins:            arg.Wins,
		Podiums:         arg.Podiums,
		Poles:           arg.Poles,
		FastestLaps:     arg.FastestLaps,
		DNFs:            arg.DNFs,
		Laps:            arg.Laps,
		Points:          arg.Points.String(),
		WinRate:         arg.WinRate,
		PodiumRate:      arg.PodiumRate,
		PointsPerEntry:  arg.PointsPerEntry,
		FinishedEntries: arg.FinishedEntries,
	}
}

func toDuelDTO(arg aggregate.Duel) duelDTO {
	return duelDTO{
		RacesTogether:  arg.RacesTogether,
		BothClassified: arg.BothClassified,
		WinsA:          arg.WinsA,
		WinsB:          arg.WinsB,
	}
}

func toReliabilityDTO(arg *aggregate.Reliability) reliabilityDTO {
	reasons := make([]reasonDTO, 0, len(arg.Reasons))
	for _, item := range arg.Reasons {
		reasons = append(reasons, reasonDTO{Reason: item.Reason, Count: item.Count})
	}
	return reliabilityDTO{
		CompetitorID: arg.CompetitorID,
		Kind:         arg.Kind.String(),
		Entries:      arg.Entries,
		Classified:   arg.Classified,
		Retired:      arg.Retired,
		Rate:         arg.Rate,
		Reasons:      reasons,
	}
}

func toTopCountDTOs(arg []*result.TopCount) []topCountDTO {
	ret := make([]topCountDTO, 0, len(arg))
	for _, item := range arg {
		ret = append(ret, topCountDTO{
			CompetitorID: item.CompetitorID, Name: item.Name, Count: item.Count,
		})
	}
	return ret
}

func toSeasonSummaryDTO(arg *aggregate.SeasonSummary) seasonSummaryDTO {
	ret := seasonSummaryDTO{
		Season:              arg.Season,
		Races:               arg.Races,
		DistinctWinners:     arg.DistinctWinners,
		DistinctPoleSitters: arg.DistinctPoleSitters,
		DriverChampion:      toChampionDTO(arg.DriverChampion),
		ConstructorChampion: toChampionDTO(arg.ConstructorChampion),
		HatTricks:           toTopCountDTOs(arg.HatTricks),
	}
	if arg.BiggestClimb != nil {
		ret.BiggestClimb = &climbDTO{
			DriverID:     arg.BiggestClimb.DriverID,
			Name:         arg.BiggestClimb.Name,
			RaceName:     arg.BiggestClimb.RaceName,
			PlacesGained: arg.BiggestClimb.PlacesGained,
		}
	}
	return ret
}

func toHallOfFameDTO(arg *aggregate.HallOfFame) hallOfFameDTO {
	poles := make([]topCountDTO, 0, len(arg.Poles))
	for _, item := range arg.Poles {
		poles = append(poles, topCountDTO{
			CompetitorID: item.DriverID, Name: item.Name, Count: item.Count,
		})
	}
	titles := make([]topCountDTO, 0, len(arg.Titles))
	for _, item := range arg.Titles {
		titles = append(titles, topCountDTO{
			CompetitorID: item.CompetitorID, Name: item.Name, Count: item.Count,
		})
	}
	return hallOfFameDTO{
		Kind:    arg.Kind.String(),
		Wins:    toTopCountDTOs(arg.Wins),
		Podiums: toTopCountDTOs(arg.Podiums),
		Poles:   poles,
		Titles:  titles,
	}
}

func toCircuitStatsDTO(arg *aggregate.CircuitStats) circuitStatsDTO {
	retirements := make([]reasonDTO, 0, len(arg.Retirements))
	for _, item := range arg.Retirements {
		retirements = append(retirements,
			reasonDTO{Reason: item.Status, Count: item.Count})
	}
	grids := make([]gridCountDTO, 0, len(arg.WinnerGrids))
	for _, item := range arg.WinnerGrids {
		grids = append(grids, gridCountDTO{Grid: item.Grid, Count: item.Count})
	}
	ret := circuitStatsDTO{
		Circuit:     toCircuitDTO(arg.Circuit),
		Races:       arg.Races,
		FirstYear:   arg.FirstYear,
		LastYear:    arg.LastYear,
		TopWinners:  toTopCountDTOs(arg.TopWinners),
		Retirements: retirements,
		WinnerGrids: grids,
	}
	if arg.LapRecord != nil {
		ret.LapRecord = toLapRecordDTO(arg.LapRecord)
	}
	return ret
}

func toLapRecordDTO(arg *laptime.LapRecord) *lapRecordDTO {
	return &lapRecordDTO{
		DriverID: arg.DriverID, Name: arg.Name, Year: arg.Year, TimeMS: arg.TimeMS,
	}
}

func toPitStopStatsDTOs(arg []*pitstop.Stats) []pitStopStatsDTO {
	ret := make([]pitStopStatsDTO, 0, len(arg))
	for _, item := range arg {
		ret = append(ret, pitStopStatsDTO{
			DriverID:  item.DriverID,
			Name:      item.Name,
			Stops:     item.Stops,
			AvgMS:     item.AvgMS,
			FastestMS: item.FastestMS,
		})
	}
	return ret
}
