//nolint:funlen //ok for this test code
package result_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
	"github.com/mpapenbr/f1-history-service-go/testsupport/basedata"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

func TestSeasonEntries(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	ctx := context.Background()

	race1 := fixture.AddRace(pool, 2021, 1)
	race2 := fixture.AddRace(pool, 2021, 2)
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 1, Position: 1, Points: "25", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 2, Position: 2, Points: "18", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 2, Position: 2, Points: "18", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 1, Position: 1, Points: "25", Laps: 50, StatusID: 1,
	})

	entries, err := result.SeasonEntries(ctx, pool, 2021, model.KindDriver)
	assert.NilError(t, err)
	assert.Equal(t, 4, len(entries))
	// ordered by round
	assert.Equal(t, 1, entries[0].Round)
	assert.Equal(t, 2, entries[3].Round)

	byConstructor, err := result.SeasonEntries(
		ctx, pool, 2021, model.KindConstructor)
	assert.NilError(t, err)
	assert.Equal(t, 4, len(byConstructor))
	assert.Equal(t, "Red Team", byConstructor[0].Name)

	empty, err := result.SeasonEntries(ctx, pool, 1950, model.KindDriver)
	assert.NilError(t, err)
	assert.Equal(t, 0, len(empty))
}

func TestTopWins(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	ctx := context.Background()

	for round := 1; round <= 3; round++ {
		race := fixture.AddRace(pool, 2021, round)
		winner := "alpha"
		if round == 3 {
			winner = "bravo"
		}
		fixture.AddResult(pool, race, &basedata.ResultSpec{
			Driver: winner, Constructor: "redteam",
			Grid: 1, Position: 1, Points: "25", Laps: 50, StatusID: 1,
		})
	}

	top, err := result.TopWins(ctx, pool, model.KindDriver, nil, 10)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(top))
	assert.Equal(t, "Anton Alpha", top[0].Name)
	assert.Equal(t, 2, top[0].Count)

	onlyRound3 := &repository.EntryFilter{SeasonFrom: intPtr(2021)}
	top, err = result.TopWins(ctx, pool, model.KindDriver, onlyRound3, 1)
	assert.NilError(t, err)
	assert.Equal(t, 1, len(top))
}

func TestLoadCareerStats(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	ctx := context.Background()

	race1 := fixture.AddRace(pool, 2021, 1)
	race2 := fixture.AddRace(pool, 2021, 2)
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 1, Position: 1, Points: "25", Laps: 50,
		FastestLap: true, StatusID: 1,
	})
	// engine failure, not classified
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 3, Points: "0", Laps: 12, StatusID: 5,
	})

	stats, err := result.LoadCareerStats(ctx, pool,
		fixture.Drivers["alpha"].ID, model.KindDriver, nil)
	assert.NilError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Podiums)
	assert.Equal(t, 1, stats.DNFs)
	assert.Equal(t, 1, stats.GridPoles)
	assert.Equal(t, 1, stats.FastestLaps)
	assert.Equal(t, 62, stats.Laps)
	assert.Assert(t, stats.Points.Equal(decimal.RequireFromString("25")))
}

func intPtr(arg int) *int { return &arg }
