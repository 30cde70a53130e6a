package ledger

import "github.com/diillson/profit-tracker-go/internal/domain/entity"

// Carryable is a record that lives in a period and is identified within it by a secondary key.
type Carryable[T any] interface {
	PeriodOf() entity.Period
	Identity() string
	InPeriod(entity.Period) T
}

// CarryOver copies rows of the month before target into target when no row with the
// same identity exists there yet. Existing target rows are never touched. It returns
// the resulting collection and the number of rows appended; with zero appended the
// input slice is returned unchanged.
func CarryOver[T Carryable[T]](rows []T, target entity.Period) ([]T, int) {
	source := target.Previous()

	present := make(map[string]struct{})
	for _, r := range rows {
		if r.PeriodOf() == target {
			present[r.Identity()] = struct{}{}
		}
	}

	var carried []T
	for _, r := range rows {
		if r.PeriodOf() != source {
			continue
		}
		if _, ok := present[r.Identity()]; ok {
			continue
		}
		// duplicates inside the source period are carried once
		present[r.Identity()] = struct{}{}
		carried = append(carried, r.InPeriod(target))
	}

	if len(carried) == 0 {
		return rows, 0
	}
	out := make([]T, 0, len(rows)+len(carried))
	out = append(out, rows...)
	return append(out, carried...), len(carried)
}
