package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

func TestHeadToHead(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	alpha := fixture.Drivers["alpha"].ID
	bravo := fixture.Drivers["bravo"].ID
	caesar := fixture.Drivers["caesar"].ID

	duel, err := svc.HeadToHead(ctx, alpha, bravo, nil)
	assert.NilError(t, err)
	assert.Equal(t, 4, duel.Race.RacesTogether)
	assert.Equal(t, 4, duel.Race.BothClassified)
	assert.Equal(t, 2, duel.Race.WinsA)
	assert.Equal(t, 2, duel.Race.WinsB)
	assert.Equal(t, 3, duel.Quali.WinsA)
	assert.Equal(t, 1, duel.Quali.WinsB)

	// Caesar retired once, that race drops out of the classified duel
	// but stays a shared race
	duel, err = svc.HeadToHead(ctx, alpha, caesar, nil)
	assert.NilError(t, err)
	assert.Equal(t, 4, duel.Race.RacesTogether)
	assert.Equal(t, 3, duel.Race.BothClassified)
}

func TestHeadToHeadSymmetry(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	alpha := fixture.Drivers["alpha"].ID
	bravo := fixture.Drivers["bravo"].ID

	ab, err := svc.HeadToHead(ctx, alpha, bravo, nil)
	assert.NilError(t, err)
	ba, err := svc.HeadToHead(ctx, bravo, alpha, nil)
	assert.NilError(t, err)

	assert.Equal(t, ab.Race.RacesTogether, ba.Race.RacesTogether)
	assert.Equal(t, ab.Race.BothClassified, ba.Race.BothClassified)
	assert.Equal(t, ab.Race.WinsA, ba.Race.WinsB)
	assert.Equal(t, ab.Race.WinsB, ba.Race.WinsA)
	assert.Equal(t, ab.Quali.WinsA, ba.Quali.WinsB)
	assert.Equal(t, ab.Quali.WinsB, ba.Quali.WinsA)
}

func TestHeadToHeadSameDriver(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := seedSampleSeason(pool)
	svc := newTestService(pool)

	_, err := svc.HeadToHead(context.Background(),
		fixture.Drivers["alpha"].ID, fixture.Drivers["alpha"].ID, nil)
	assert.Assert(t, errors.Is(err, aggregate.ErrSameCompetitor))
}
