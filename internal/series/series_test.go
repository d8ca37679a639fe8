package series

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testAnchor = time.Date(2026, 3, 15, 17, 42, 0, 0, time.UTC)

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Generate(42, 30, testAnchor)
	b := Generate(42, 30, testAnchor)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different series (-a +b):\n%s", diff)
	}

	c := Generate(43, 30, testAnchor)
	if diff := cmp.Diff(a, c); diff == "" {
		t.Error("different seeds produced identical series")
	}
}

func TestGenerateShape(t *testing.T) {
	t.Parallel()

	s := Generate(42, 30, testAnchor)
	require.Len(t, s.Points, 30)

	first := s.Points[0]
	last := s.Points[len(s.Points)-1]
	require.Equal(t, Midnight(testAnchor), last.Date)
	require.Equal(t, Midnight(testAnchor).AddDate(0, 0, -29), first.Date)

	for i, p := range s.Points {
		if i > 0 {
			require.Equal(t, s.Points[i-1].Date.AddDate(0, 0, 1), p.Date, "dates are consecutive")
		}
		require.GreaterOrEqual(t, p.Sales, 90.0)
		require.Less(t, p.Sales, 200.0)
		require.GreaterOrEqual(t, p.Revenue, p.Sales*8)
		require.LessOrEqual(t, p.Revenue, p.Sales*12)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	agg := Stats([]float64{2, 4, 9})
	require.Equal(t, 15.0, agg.Sum)
	require.Equal(t, 5.0, agg.Mean)
	require.Equal(t, 9.0, agg.Max)

	require.Equal(t, Aggregate{}, Stats(nil))
}

func TestByWeekdayCoversAllDays(t *testing.T) {
	t.Parallel()

	s := Generate(42, 14, testAnchor)
	totals := s.ByWeekday()
	require.Len(t, totals, 7)
	require.Equal(t, "Mon", totals[0].Day)
	require.Equal(t, "Sun", totals[6].Day)

	var sum float64
	for _, wt := range totals {
		sum += wt.Sales
	}
	require.Equal(t, Stats(s.Sales()).Sum, sum, "weekday totals partition the series")
}

func TestPeakSalesDay(t *testing.T) {
	t.Parallel()

	s := Generate(42, 30, testAnchor)
	peak, ok := s.PeakSalesDay()
	require.True(t, ok)
	require.Equal(t, Stats(s.Sales()).Max, peak.Sales)

	_, ok = Series{}.PeakSalesDay()
	require.False(t, ok)
}

func TestSnapshotCachesIdenticalSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewSource(42, 30, NewMemoryCache())

	first, hit, err := src.Snapshot(ctx, testAnchor)
	require.NoError(t, err)
	require.False(t, hit)

	second, hit, err := src.Snapshot(ctx, testAnchor)
	require.NoError(t, err)
	require.True(t, hit)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached snapshot differs from generated (-first +second):\n%s", diff)
	}
}

func TestSnapshotKeyedByAnchorDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewSource(42, 30, NewMemoryCache())

	_, _, err := src.Snapshot(ctx, testAnchor)
	require.NoError(t, err)

	// same calendar day, different wall clock: still a cache hit
	_, hit, err := src.Snapshot(ctx, testAnchor.Add(3*time.Hour))
	require.NoError(t, err)
	require.True(t, hit)

	// next day misses
	_, hit, err = src.Snapshot(ctx, testAnchor.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.False(t, hit)
}
