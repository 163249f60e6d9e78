package item

import (
	"sort"
	"strconv"
	"strings"

	"itemstore/internal/pagination"
)

// Sortable fields. Anything else falls back to SortByID, which is the
// documented policy for unknown sort fields.
const (
	SortByID          = "id"
	SortByName        = "name"
	SortByDescription = "description"
	SortByCreatedAt   = "createdAt"
	SortByUpdatedAt   = "updatedAt"
)

// Sort orders items in place by the named field. The sort is stable, so
// records with equal keys keep their original relative order.
func Sort(items []Item, field, order string) {
	less := lessFunc(field)
	if order == pagination.OrderDesc {
		asc := less
		less = func(a, b Item) bool { return asc(b, a) }
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

func lessFunc(field string) func(a, b Item) bool {
	switch field {
	case SortByName:
		return func(a, b Item) bool { return strings.Compare(a.Name, b.Name) < 0 }
	case SortByDescription:
		return func(a, b Item) bool { return strings.Compare(a.Description, b.Description) < 0 }
	case SortByCreatedAt:
		return func(a, b Item) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByUpdatedAt:
		return func(a, b Item) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b Item) bool { return compareIDs(a.ID, b.ID) < 0 }
	}
}

// compareIDs orders store-assigned identifiers numerically when both
// parse as integers, otherwise lexicographically.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
