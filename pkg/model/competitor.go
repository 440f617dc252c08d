package model

// CompetitorKind selects whether an aggregation is computed per driver
// or per constructor.
type CompetitorKind int

const (
	KindDriver CompetitorKind = iota
	KindConstructor
)

func (k CompetitorKind) String() string {
	if k == KindConstructor {
		return "constructor"
	}
	return "driver"
}
