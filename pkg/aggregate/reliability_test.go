package aggregate_test

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/testsupport/basedata"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

func TestReliability(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	// 10 entries: 6 finishes, 1 lapped, 2 engine failures, 1 collision
	statusIDs := []int{1, 1, 1, 1, 1, 1, 11, 5, 5, 4}
	for round, statusID := range statusIDs {
		race := fixture.AddRace(pool, 1999, round+1)
		spec := &basedata.ResultSpec{
			Driver: "caesar", Constructor: "blueteam",
			Grid: 3, Points: "0", Laps: 40, StatusID: statusID,
		}
		if statusID == 1 || statusID == 11 {
			spec.Position = 4
			spec.Points = "3"
		}
		fixture.AddResult(pool, race, spec)
	}

	rel, err := svc.Reliability(ctx, fixture.Drivers["caesar"].ID,
		model.KindDriver, nil, 0)
	assert.NilError(t, err)
	assert.Equal(t, 10, rel.Entries)
	assert.Equal(t, 7, rel.Classified)
	assert.Equal(t, 3, rel.Retired)
	assert.Equal(t, 0.7, rel.Rate)
	assert.Equal(t, 2, len(rel.Reasons))
	assert.Equal(t, "Engine", rel.Reasons[0].Reason)
	assert.Equal(t, 2, rel.Reasons[0].Count)
	assert.Equal(t, "Collision", rel.Reasons[1].Reason)
	assert.Equal(t, 1, rel.Reasons[1].Count)

	topOne, err := svc.Reliability(ctx, fixture.Drivers["caesar"].ID,
		model.KindDriver, nil, 1)
	assert.NilError(t, err)
	assert.Equal(t, 1, len(topOne.Reasons))
	assert.Equal(t, "Engine", topOne.Reasons[0].Reason)
}

func TestReliabilityMissingStatus(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	svc := newTestService(pool)
	ctx := context.Background()

	race1 := fixture.AddRace(pool, 1998, 1)
	fixture.AddResult(pool, race1, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 2, Position: 1, Points: "10", Laps: 40, StatusID: 1,
	})
	race2 := fixture.AddRace(pool, 1998, 2)
	// no status recorded for the retirement
	fixture.AddResult(pool, race2, &basedata.ResultSpec{
		Driver: "bravo", Constructor: "blueteam",
		Grid: 2, Points: "0", Laps: 12,
	})

	rel, err := svc.Reliability(ctx, fixture.Drivers["bravo"].ID,
		model.KindDriver, nil, 0)
	assert.NilError(t, err)
	assert.Equal(t, 2, rel.Entries)
	assert.Equal(t, 1, rel.Classified)
	assert.Equal(t, 1, rel.Retired)
	assert.Equal(t, 1, len(rel.Reasons))
	assert.Equal(t, "Unknown", rel.Reasons[0].Reason)
}

func TestReliabilityNoEntries(t *testing.T) {
	pool := testdb.InitTestDB()
	fixture := basedata.SeedLookups(pool)
	svc := newTestService(pool)

	rel, err := svc.Reliability(context.Background(),
		fixture.Drivers["alpha"].ID, model.KindDriver, nil, 0)
	assert.NilError(t, err)
	assert.Equal(t, 0, rel.Entries)
	assert.Equal(t, 0.0, rel.Rate)
	assert.Equal(t, 0, len(rel.Reasons))
}
