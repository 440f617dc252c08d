package aggregate_test

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/repository/race"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

func TestCircuitStats(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	races, err := race.LoadBySeason(ctx, pool, 2021)
	assert.NilError(t, err)
	fixture.AddLapTime(pool, races[0], "alpha", 17, 71500)
	fixture.AddLapTime(pool, races[0], "bravo", 20, 72100)
	fixture.AddLapTime(pool, races[2], "caesar", 33, 70900)

	stats, err := svc.CircuitStats(ctx, fixture.Circuit.ID, 5)
	assert.NilError(t, err)
	assert.Equal(t, "Testring", stats.Circuit.Name)
	assert.Equal(t, 4, stats.Races)
	assert.Equal(t, 2021, stats.FirstYear)
	assert.Equal(t, 2021, stats.LastYear)
	assert.Equal(t, "Carl Caesar", stats.TopWinners[0].Name)
	assert.Equal(t, 2, stats.TopWinners[0].Count)

	// the only retirement is the engine failure in round 2
	assert.Equal(t, 1, len(stats.Retirements))
	assert.Equal(t, "Engine", stats.Retirements[0].Status)
	assert.Equal(t, 1, stats.Retirements[0].Count)

	// winners started from grid 1, 2, 4 and 5
	assert.Equal(t, 4, len(stats.WinnerGrids))
	assert.Equal(t, 1, stats.WinnerGrids[0].Grid)
	assert.Equal(t, 5, stats.WinnerGrids[3].Grid)
	assert.Equal(t, 1, stats.WinnerGrids[3].Count)

	assert.Assert(t, stats.LapRecord != nil)
	assert.Equal(t, "Carl Caesar", stats.LapRecord.Name)
	assert.Equal(t, 70900, stats.LapRecord.TimeMS)
	assert.Equal(t, 2021, stats.LapRecord.Year)
}

func TestCircuitStatsNoLapTimes(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)

	stats, err := svc.CircuitStats(context.Background(), fixture.Circuit.ID, 5)
	assert.NilError(t, err)
	assert.Assert(t, stats.LapRecord == nil)
}

func TestPitStopStats(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	races, err := race.LoadBySeason(ctx, pool, 2021)
	assert.NilError(t, err)
	fixture.AddPitStop(pool, races[0], "alpha", 1, 15, 25000)
	fixture.AddPitStop(pool, races[0], "alpha", 2, 35, 23000)
	fixture.AddPitStop(pool, races[0], "bravo", 1, 18, 22000)

	stats, err := svc.PitStopStats(ctx, nil)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(stats))
	// fastest average first
	assert.Equal(t, "Berta Bravo", stats[0].Name)
	assert.Equal(t, 1, stats[0].Stops)
	assert.Equal(t, 22000.0, stats[0].AvgMS)
	assert.Equal(t, "Anton Alpha", stats[1].Name)
	assert.Equal(t, 2, stats[1].Stops)
	assert.Equal(t, 24000.0, stats[1].AvgMS)
	assert.Equal(t, 23000, stats[1].FastestMS)
}
