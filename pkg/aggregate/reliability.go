package aggregate

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository/result"
)

type (
	// RetirementReason is a non-classified status with its count.
	RetirementReason struct {
		Reason string
		Count  int
	}

	// Reliability partitions the entries of a competitor into classified
	// finishes and retirements. Rate is classified/total, 0 without
	// entries.
	Reliability struct {
		CompetitorID int
		Kind         model.CompetitorKind
		Entries      int
		Classified   int
		Retired      int
		Rate         float64
		Reasons      []*RetirementReason
	}
)

// classifiedStatus mirrors model.Status.Classified for the raw status
// text of an aggregate row.
func classifiedStatus(status string) bool {
	return status == "Finished" || strings.HasPrefix(status, "+")
}

// Reliability computes the finish rate and the ranked retirement reasons
// of a competitor. topReasons limits the reason list; 0 keeps all.
//
//nolint:whitespace // can't make both editor and linter happy
func (s *Service) Reliability(
	ctx context.Context,
	competitorID int,
	kind model.CompetitorKind,
	filter *repository.EntryFilter,
	topReasons int,
) (*Reliability, error) {
	counts, err := result.LoadStatusCounts(ctx, s.conn, competitorID, kind, filter)
	if err != nil {
		return nil, err
	}
	ret := &Reliability{
		CompetitorID: competitorID,
		Kind:         kind,
		Reasons:      []*RetirementReason{},
	}
	for _, item := range counts {
		ret.Entries += item.Count
		if classifiedStatus(item.Status) {
			ret.Classified += item.Count
		} else {
			ret.Retired += item.Count
			ret.Reasons = append(ret.Reasons,
				&RetirementReason{Reason: item.Status, Count: item.Count})
		}
	}
	if ret.Entries > 0 {
		ret.Rate = float64(ret.Classified) / float64(ret.Entries)
	}
	if topReasons > 0 {
		ret.Reasons = lo.Slice(ret.Reasons, 0, topReasons)
	}
	return ret, nil
}
