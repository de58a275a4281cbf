package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() map[string]Stats {
	return map[string]Stats{
		"parse":   Compute([]int64{10, 20, 30}), // total 60
		"store":   Compute([]int64{25}),         // total 25
		"notify":  Compute([]int64{5, 5}),       // total 10
		TotalSpan: Compute([]int64{100}),
	}
}

func TestRender_SortedByTotalDescending(t *testing.T) {
	out := Render("ingest", sampleStats())

	iParse := strings.Index(out, "parse")
	iStore := strings.Index(out, "store")
	iNotify := strings.Index(out, "notify")
	require.True(t, iParse >= 0 && iStore >= 0 && iNotify >= 0, "all spans present:\n%s", out)
	assert.Less(t, iParse, iStore, "parse (60) before store (25)")
	assert.Less(t, iStore, iNotify, "store (25) before notify (10)")
}

func TestRender_PercentagesAndAccounted(t *testing.T) {
	out := Render("ingest", sampleStats())

	lines := strings.Split(out, "\n")
	var accounted, total string
	for _, l := range lines {
		if strings.HasPrefix(l, "accounted") {
			accounted = l
		}
		if strings.HasPrefix(l, TotalSpan) {
			total = l
		}
	}
	require.NotEmpty(t, accounted, "report must carry an accounted row:\n%s", out)
	require.NotEmpty(t, total, "report must carry a total elapsed row:\n%s", out)

	// 60+25+10 = 95 of 100 clock ns.
	assert.Contains(t, accounted, "95ns")
	assert.True(t, strings.HasSuffix(accounted, "95"), "accounted pct: %q", accounted)
	assert.Contains(t, total, "100ns")
	assert.True(t, strings.HasSuffix(total, "100"), "total pct: %q", total)
}

func TestRender_TotalSpanNotListedAsRow(t *testing.T) {
	out := Render("ingest", sampleStats())
	// The total span appears exactly once, as the footer.
	assert.Equal(t, 1, strings.Count(out, TotalSpan))
}

func TestRenderBy_AlternateField(t *testing.T) {
	stats := map[string]Stats{
		"few-long":  Compute([]int64{90}),        // total 90, count 1
		"many-tiny": Compute([]int64{1, 1, 1}),   // total 3, count 3
		TotalSpan:   Compute([]int64{100}),
	}

	byTotal := RenderBy("x", stats, SortTotal)
	assert.Less(t, strings.Index(byTotal, "few-long"), strings.Index(byTotal, "many-tiny"))

	byCount := RenderBy("x", stats, SortCount)
	assert.Less(t, strings.Index(byCount, "many-tiny"), strings.Index(byCount, "few-long"))
}

func TestRender_ZeroClockDoesNotDivide(t *testing.T) {
	out := Render("empty", map[string]Stats{"only": Compute([]int64{10})})
	assert.Contains(t, out, "only", "renders even without a total span")
}
