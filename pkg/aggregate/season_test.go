package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/testsupport/basedata"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

func TestSeasonSummary(t *testing.T) {
	pool := testdb.InitTestDB()
	seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	summary, err := svc.SeasonSummary(ctx, 2021)
	assert.NilError(t, err)
	assert.Equal(t, 4, summary.Races)
	assert.Equal(t, 3, summary.DistinctWinners)
	assert.Equal(t, 3, summary.DistinctPoleSitters)
	assert.Assert(t, summary.DriverChampion.Tied)
	assert.Equal(t, "Blue Team", summary.ConstructorChampion.Leaders[0].Name)

	assert.Assert(t, summary.BiggestClimb != nil)
	assert.Equal(t, "Carl Caesar", summary.BiggestClimb.Name)
	assert.Equal(t, 4, summary.BiggestClimb.PlacesGained)

	assert.Equal(t, 1, len(summary.HatTricks))
	assert.Equal(t, "Carl Caesar", summary.HatTricks[0].Name)
	assert.Equal(t, 1, summary.HatTricks[0].Count)
}

func TestSeasonSummaryWithoutResults(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	fixture.AddRace(pool, 1939, 1)
	svc := newTestService(pool)

	summary, err := svc.SeasonSummary(context.Background(), 1939)
	assert.NilError(t, err)
	assert.Equal(t, 1, summary.Races)
	assert.Equal(t, 0, summary.DistinctWinners)
	assert.Assert(t, summary.DriverChampion == nil)
	assert.Assert(t, summary.ConstructorChampion == nil)
	assert.Assert(t, summary.BiggestClimb == nil)
	assert.Equal(t, 0, len(summary.HatTricks))
}

func TestSeasonSummaryNoData(t *testing.T) {
	pool := testdb.InitTestDB()
	seedSampleSeason(pool)
	svc := newTestService(pool)

	_, err := svc.SeasonSummary(context.Background(), 1907)
	assert.Assert(t, errors.Is(err, repository.ErrNoData))
}

func TestHallOfFame(t *testing.T) {
	pool := testdb.InitTestDB()
	seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	hof, err := svc.HallOfFame(ctx, model.KindDriver, nil, 10)
	assert.NilError(t, err)
	assert.Equal(t, "Carl Caesar", hof.Wins[0].Name)
	assert.Equal(t, 2, hof.Wins[0].Count)
	assert.Equal(t, 3, len(hof.Podiums))
	assert.Equal(t, "Anton Alpha", hof.Poles[0].Name)
	assert.Equal(t, 2, hof.Poles[0].Count)

	// the tied season yields a title for both leaders
	assert.Equal(t, 2, len(hof.Titles))
	assert.Equal(t, 1, hof.Titles[0].Count)
	assert.Equal(t, 1, hof.Titles[1].Count)

	teams, err := svc.HallOfFame(ctx, model.KindConstructor, nil, 10)
	assert.NilError(t, err)
	assert.Equal(t, 0, len(teams.Poles))
	assert.Equal(t, 1, len(teams.Titles))
	assert.Equal(t, "Blue Team", teams.Titles[0].Name)

	// limit 0 keeps the lists unbounded
	all, err := svc.HallOfFame(ctx, model.KindDriver, nil, 0)
	assert.NilError(t, err)
	assert.Equal(t, 3, len(all.Wins))
	assert.Equal(t, 3, len(all.Podiums))
	assert.Equal(t, 3, len(all.Poles))
}
