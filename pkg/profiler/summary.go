package profiler

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// OrderBy selects the summary column rows are sorted on.
type OrderBy int

// Summary ordering columns.
const (
	OrderByName OrderBy = iota
	OrderByCalls
	OrderByAverage
	OrderByLongest
	OrderByBottleneck
	OrderByTotal
)

var orderByNames = map[OrderBy]string{
	OrderByName:       "name",
	OrderByCalls:      "calls",
	OrderByAverage:    "average",
	OrderByLongest:    "longest",
	OrderByBottleneck: "bottleneck",
	OrderByTotal:      "total",
}

func (o OrderBy) String() string {
	if name, ok := orderByNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OrderBy(%d)", int(o))
}

// ParseOrderBy converts a column identifier into an OrderBy. Unknown
// identifiers fail with an InvalidArgumentError; there is no silent
// fallback ordering.
func ParseOrderBy(s string) (OrderBy, error) {
	for o, name := range orderByNames {
		if name == strings.ToLower(s) {
			return o, nil
		}
	}
	return 0, NewInvalidArgumentError("order_by",
		fmt.Sprintf("unknown order-by column %q (valid: name, calls, average, longest, bottleneck, total)", s))
}

// SummaryRow is the derived per-key report row. Durations are left as
// time.Duration; formatting to milliseconds is the renderer's concern.
type SummaryRow struct {
	Key        Key
	Calls      int
	Average    time.Duration
	Longest    time.Duration
	Bottleneck time.Duration
	Total      time.Duration
}

// Summarize computes the summary statistics for one profile.
func Summarize(p Profile) SummaryRow {
	return SummaryRow{
		Key:        p.Key,
		Calls:      p.Calls(),
		Average:    p.Average(),
		Longest:    p.Longest(),
		Bottleneck: p.Bottleneck(),
		Total:      p.Total(),
	}
}

// Rows computes one SummaryRow per profile in the snapshot and sorts them
// by the requested column, ascending by default or descending when reverse
// is set. The sort is stable: ties preserve the snapshot's
// first-registration order. An empty snapshot yields an empty row set. An
// orderBy outside the known columns fails with an InvalidArgumentError.
func Rows(snap Snapshot, orderBy OrderBy, reverse bool) ([]SummaryRow, error) {
	if _, ok := orderByNames[orderBy]; !ok {
		return nil, NewInvalidArgumentError("order_by",
			fmt.Sprintf("unknown order-by column %d", int(orderBy)))
	}

	rows := make([]SummaryRow, 0, len(snap.Profiles))
	for _, p := range snap.Profiles {
		rows = append(rows, Summarize(p))
	}

	less := lessFunc(orderBy, rows)
	sort.SliceStable(rows, func(i, j int) bool {
		if reverse {
			return less(j, i)
		}
		return less(i, j)
	})
	return rows, nil
}

func lessFunc(orderBy OrderBy, rows []SummaryRow) func(i, j int) bool {
	switch orderBy {
	case OrderByCalls:
		return func(i, j int) bool { return rows[i].Calls < rows[j].Calls }
	case OrderByAverage:
		return func(i, j int) bool { return rows[i].Average < rows[j].Average }
	case OrderByLongest:
		return func(i, j int) bool { return rows[i].Longest < rows[j].Longest }
	case OrderByBottleneck:
		return func(i, j int) bool { return rows[i].Bottleneck < rows[j].Bottleneck }
	case OrderByTotal:
		return func(i, j int) bool { return rows[i].Total < rows[j].Total }
	default:
		return func(i, j int) bool {
			return rows[i].Key.Qualified() < rows[j].Key.Qualified()
		}
	}
}
