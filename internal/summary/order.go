package summary

import (
	"fmt"
	"slices"
)

// How date groups are ordered in a summary.
type Ordering int

const (
	Chronological Ordering = iota
	TopChanges
	TopCommits
)

var orderingNames = map[Ordering]string{
	Chronological: "chronological",
	TopChanges:    "top-changes",
	TopCommits:    "top-commits",
}

// Names accepted by ParseOrdering, default first.
func OrderingNames() []string {
	return []string{
		orderingNames[Chronological],
		orderingNames[TopChanges],
		orderingNames[TopCommits],
	}
}

func (o Ordering) String() string {
	if name, ok := orderingNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Ordering(%d)", int(o))
}

type InvalidOrderingError struct {
	Name string
}

func (err *InvalidOrderingError) Error() string {
	return fmt.Sprintf("unknown ordering: \"%s\"", err.Name)
}

func ParseOrdering(name string) (Ordering, error) {
	for ordering, s := range orderingNames {
		if s == name {
			return ordering, nil
		}
	}

	return Chronological, &InvalidOrderingError{Name: name}
}

func (g DateGroup) sortKey(ordering Ordering) int {
	switch ordering {
	case TopChanges:
		return g.Average.Changes
	case TopCommits:
		return g.Average.Commits
	default:
		panic("unrecognized ordering in switch statement")
	}
}

func (a DateGroup) Compare(b DateGroup, ordering Ordering) int {
	if ordering == Chronological {
		// Plain string comparison, even across date granularities
		if a.Date < b.Date {
			return -1
		} else if b.Date < a.Date {
			return 1
		}

		return 0
	}

	aKey := a.sortKey(ordering)
	bKey := b.sortKey(ordering)

	// Highest first
	if aKey > bKey {
		return -1
	} else if bKey > aKey {
		return 1
	}

	return 0
}

// Returns a sorted copy of groups. Ties keep their relative order.
func Sort(groups []DateGroup, ordering Ordering) []DateGroup {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, func(a, b DateGroup) int {
		return a.Compare(b, ordering)
	})

	return sorted
}
