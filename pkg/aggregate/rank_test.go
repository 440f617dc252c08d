package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"gotest.tools/v3/assert"
)

func TestRankStandings(t *testing.T) {
	pts := func(arg string) decimal.Decimal {
		return decimal.RequireFromString(arg)
	}
	tests := []struct {
		name      string
		standings []*Standing
		wantOrder []string
		wantRanks []int
	}{
		{
			name: "distinct points",
			standings: []*Standing{
				{Name: "B", Points: pts("18")},
				{Name: "A", Points: pts("25")},
				{Name: "C", Points: pts("15")},
			},
			wantOrder: []string{"A", "B", "C"},
			wantRanks: []int{1, 2, 3},
		},
		{
			name: "shared rank skips the next one",
			standings: []*Standing{
				{Name: "A", Points: pts("25"), Wins: 1},
				{Name: "B", Points: pts("25")},
				{Name: "C", Points: pts("10")},
			},
			wantOrder: []string{"A", "B", "C"},
			wantRanks: []int{1, 1, 3},
		},
		{
			name: "wins order tied competitors for display only",
			standings: []*Standing{
				{Name: "A", Points: pts("43")},
				{Name: "B", Points: pts("43"), Wins: 2},
			},
			wantOrder: []string{"B", "A"},
			wantRanks: []int{1, 1},
		},
		{
			name: "decimal points compare by value",
			standings: []*Standing{
				{Name: "A", Points: pts("6.5")},
				{Name: "B", Points: pts("6.50")},
			},
			wantOrder: []string{"A", "B"},
			wantRanks: []int{1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rankStandings(tt.standings)
			for i, item := range tt.standings {
				assert.Equal(t, tt.wantOrder[i], item.Name)
				assert.Equal(t, tt.wantRanks[i], item.Rank)
			}
		})
	}
}

func TestRankStandingsKeepsRowData(t *testing.T) {
	got := []*Standing{
		{Round: 2, CompetitorID: 7, Name: "B", Points: decimal.NewFromInt(18)},
		{Round: 2, CompetitorID: 4, Name: "A", Points: decimal.NewFromInt(25), Wins: 1},
	}
	rankStandings(got)
	want := []*Standing{
		{
			Round: 2, CompetitorID: 4, Name: "A",
			Points: decimal.NewFromInt(25), Wins: 1, Rank: 1,
		},
		{
			Round: 2, CompetitorID: 7, Name: "B",
			Points: decimal.NewFromInt(18), Rank: 2,
		},
	}
	decimalByValue := cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	})
	if diff := cmp.Diff(want, got, decimalByValue); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifiedStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Finished", true},
		{"+1 Lap", true},
		{"+2 Laps", true},
		{"Engine", false},
		{"Collision", false},
		{"Did not qualify", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, classifiedStatus(tt.status))
		})
	}
}

func TestPoleSourceString(t *testing.T) {
	assert.Equal(t, "qualifying", PolesFromQualifying.String())
	assert.Equal(t, "grid", PolesFromGrid.String())
}
