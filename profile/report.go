package profile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SortField selects the column a report is ordered by, descending.
type SortField int

const (
	SortTotal SortField = iota
	SortMean
	SortCount
	SortMin
	SortMax
	SortMAD
)

func (f SortField) of(s Stats) int64 {
	switch f {
	case SortMean:
		return s.Mean
	case SortCount:
		return s.Count
	case SortMin:
		return s.Min
	case SortMax:
		return s.Max
	case SortMAD:
		return s.MAD
	default:
		return s.Total
	}
}

// Render formats the report table sorted descending by total time.
func Render(name string, stats map[string]Stats) string {
	return RenderBy(name, stats, SortTotal)
}

// RenderBy formats a fixed-width report over all spans, ordered
// descending by the given field. Each span row shows its share of the
// outer wall-clock time, and the accounted footer sums every span's
// total against it.
func RenderBy(name string, stats map[string]Stats, field SortField) string {
	clock := stats[TotalSpan].Total

	names := make([]string, 0, len(stats))
	for n := range stats {
		if n != TotalSpan {
			names = append(names, n)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := field.of(stats[names[i]]), field.of(stats[names[j]])
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Profiling: %s\n\n", name)
	fmt.Fprintf(&sb, "%-28s %6s %9s %9s %9s %9s %9s %5s\n",
		"span", "calls", "min", "max", "mad", "mean", "total", "%")

	var accounted int64
	for _, n := range names {
		s := stats[n]
		accounted += s.Total
		fmt.Fprintf(&sb, "%-28s %6d %9s %9s %9s %9s %9s %5s\n",
			n, s.Count,
			fmtNanos(s.Min), fmtNanos(s.Max), fmtNanos(s.MAD),
			fmtNanos(s.Mean), fmtNanos(s.Total), pct(s.Total, clock))
	}

	fmt.Fprintf(&sb, "\n%-28s %6s %9s %9s %9s %9s %9s %5s\n",
		"accounted", "", "", "", "", "", fmtNanos(accounted), pct(accounted, clock))
	fmt.Fprintf(&sb, "%-28s %6s %9s %9s %9s %9s %9s %5s",
		TotalSpan, "", "", "", "", "", fmtNanos(clock), pct(clock, clock))
	return sb.String()
}

// fmtNanos renders a nanosecond duration in the largest unit of
// {s, ms, µs, ns} that keeps the value at or above one.
func fmtNanos(ns int64) string {
	switch {
	case ns >= 1e9:
		return strconv.FormatInt(ns/1e9, 10) + "s"
	case ns >= 1e6:
		return strconv.FormatInt(ns/1e6, 10) + "ms"
	case ns >= 1e3:
		return strconv.FormatInt(ns/1e3, 10) + "µs"
	default:
		return strconv.FormatInt(ns, 10) + "ns"
	}
}

// pct renders part as an integer percentage of total, "0" when the
// total is unknown.
func pct(part, total int64) string {
	if total <= 0 {
		return "0"
	}
	return strconv.FormatInt(part*100/total, 10)
}
