//nolint:funlen //ok for this test code
package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/testsupport/basedata"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

// seedSampleSeason writes a four round season in which Alpha and Bravo
// end up with equal points while Caesar takes the most wins.
func seedSampleSeason(pool *pgxpool.Pool) *basedata.Fixture {
	fixture := basedata.SeedLookups(pool)

	race1 := fixture.AddRace(pool, 2021, 1)
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 1, Position: 1, Points: "25", Laps: 50,
		FastestLap: true, StatusID: 1,
	})
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 2, Position: 2, Points: "18", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "caesar", Constructor: "blueteam",
		Grid: 3, Position: 3, Points: "15", Laps: 50, StatusID: 1,
	})
	fixture.AddQualifying(pool, race1, "alpha", "redteam", 1)
	fixture.AddQualifying(pool, race1, "bravo", "blueteam", 2)
	fixture.AddQualifying(pool, race1, "caesar", "blueteam", 3)

	race2 := fixture.AddRace(pool, 2021, 2)
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 2, Position: 1, Points: "25", Laps: 50,
		FastestLap: true, StatusID: 1,
	})
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 3, Position: 2, Points: "18", Laps: 50, StatusID: 1,
	})
	// engine failure after 12 laps
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "caesar", Constructor: "blueteam",
		Grid: 1, Points: "0", Laps: 12, StatusID: 5,
	})
	fixture.AddQualifying(pool, race2, "alpha", "redteam", 1)
	fixture.AddQualifying(pool, race2, "bravo", "blueteam", 2)
	fixture.AddQualifying(pool, race2, "caesar", "blueteam", 3)

	race3 := fixture.AddRace(pool, 2021, 3)
	fixture.AddResult(pool, race3, &basedata.ResultSpec{
		Driver: "caesar", Constructor: "blueteam",
		Grid: 5, Position: 1, Points: "25", Laps: 50,
		FastestLap: true, StatusID: 1,
	})
	fixture.AddResult(pool, race3, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 2, Position: 2, Points: "18", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race3, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 3, Position: 3, Points: "15", Laps: 50, StatusID: 1,
	})
	fixture.AddQualifying(pool, race3, "caesar", "blueteam", 1)
	fixture.AddQualifying(pool, race3, "alpha", "redteam", 2)
	fixture.AddQualifying(pool, race3, "bravo", "blueteam", 3)

	race4 := fixture.AddRace(pool, 2021, 4)
	fixture.AddResult(pool, race4, &basedata.ResultSpec{
		Driver: "caesar", Constructor: "blueteam",
		Grid: 4, Position: 1, Points: "25", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race4, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 3, Position: 2, Points: "18", Laps: 50, StatusID: 1,
	})
	fixture.AddResult(pool, race4, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 2, Position: 3, Points: "15", Laps: 50, StatusID: 1,
	})
	fixture.AddQualifying(pool, race4, "bravo", "blueteam", 1)
	fixture.AddQualifying(pool, race4, "alpha", "redteam", 2)
	fixture.AddQualifying(pool, race4, "caesar", "blueteam", 3)

	return fixture
}

func newTestService(pool *pgxpool.Pool) *aggregate.Service {
	return aggregate.NewService(aggregate.WithConn(pool))
}

func TestSeasonStandings(t *testing.T) {
	pool := testdb.InitTestDB()
	seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	standings, err := svc.SeasonStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)
	// 3 competitors tracked over 4 rounds
	assert.Equal(t, 12, len(standings))

	final, err := svc.FinalStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)
	assert.Equal(t, 3, len(final))
	assert.Equal(t, "Anton Alpha", final[0].Name)
	assert.Equal(t, 1, final[0].Rank)
	assert.Equal(t, "Berta Bravo", final[1].Name)
	assert.Equal(t, 1, final[1].Rank)
	assert.Equal(t, "Carl Caesar", final[2].Name)
	assert.Equal(t, 3, final[2].Rank)

	// the final round carries the sum of all points awarded
	sum := decimal.Zero
	for _, item := range final {
		sum = sum.Add(item.Points)
	}
	assert.Assert(t, sum.Equal(decimal.RequireFromString("217")))
}

func TestSeasonStandingsIdempotent(t *testing.T) {
	pool := testdb.InitTestDB()
	seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	first, err := svc.SeasonStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)
	svc.FlushCaches(ctx)
	second, err := svc.SeasonStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CompetitorID, second[i].CompetitorID)
		assert.Equal(t, first[i].Rank, second[i].Rank)
		assert.Assert(t, first[i].Points.Equal(second[i].Points))
	}
}

func TestSeasonChampion(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	champ, err := svc.SeasonChampion(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)
	assert.Assert(t, champ.Tied)
	assert.Equal(t, 2, len(champ.Leaders))
	assert.Equal(t, "Anton Alpha", champ.Leaders[0].Name)
	assert.Equal(t, "Berta Bravo", champ.Leaders[1].Name)

	teams, err := svc.SeasonChampion(ctx, 2021, model.KindConstructor)
	assert.NilError(t, err)
	assert.Assert(t, !teams.Tied)
	assert.Equal(t, "Blue Team", teams.Leaders[0].Name)
	assert.Assert(t, teams.Leaders[0].Points.Equal(
		decimal.RequireFromString("141")))

	// a season with a single result has an undisputed champion
	race := fixture.AddRace(pool, 1950, 1)
	fixture.AddResult(pool, race, &basedata.ResultSpec{
		Driver: "alpha", Constructor: "redteam",
		Grid: 1, Position: 1, Points: "8", Laps: 70, StatusID: 1,
	})
	solo, err := svc.SeasonChampion(ctx, 1950, model.KindDriver)
	assert.NilError(t, err)
	assert.Assert(t, !solo.Tied)
	assert.Equal(t, 1, len(solo.Leaders))
	assert.Equal(t, 1, solo.Leaders[0].Rank)

	_, err = svc.SeasonChampion(ctx, 1949, model.KindDriver)
	assert.Assert(t, errors.Is(err, repository.ErrNoData))
}

func TestStandingsCacheInvalidation(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	before, err := svc.SeasonStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)

	race := fixture.AddRace(pool, 2021, 5)
	fixture.AddResult(pool, race, &basedata.ResultSpec{
		Driver: "caesar", Constructor: "blueteam",
		Grid: 1, Position: 1, Points: "25", Laps: 50, StatusID: 1,
	})

	cached, err := svc.SeasonStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)
	assert.Equal(t, len(before), len(cached))

	svc.FlushCaches(ctx)
	fresh, err := svc.SeasonStandings(ctx, 2021, model.KindDriver)
	assert.NilError(t, err)
	assert.Equal(t, len(before)+3, len(fresh))
}
