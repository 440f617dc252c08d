package repository

import "fmt"

// EntryFilter narrows result/qualifying queries to a season range and/or
// a circuit. A nil attribute means "no restriction".
type EntryFilter struct {
	SeasonFrom *int
	SeasonTo   *int
	CircuitID  *int
}

// Apply appends the filter conditions for the races table (aliased ra)
// to the given condition list and argument list.
func (f *EntryFilter) Apply(conds []string, args []interface{}) ([]string, []interface{}) {
	if f == nil {
		return conds, args
	}
	if f.SeasonFrom != nil {
		args = append(args, *f.SeasonFrom)
		conds = append(conds, fmt.Sprintf("ra.year >= $%d", len(args)))
	}
	if f.SeasonTo != nil {
		args = append(args, *f.SeasonTo)
		conds = append(conds, fmt.Sprintf("ra.year <= $%d", len(args)))
	}
	if f.CircuitID != nil {
		args = append(args, *f.CircuitID)
		conds = append(conds, fmt.Sprintf("ra.circuit_id = $%d", len(args)))
	}
	return conds, args
}
