package series

import (
	"math"
	"math/rand"
	"time"
)

// Point is one day of the synthetic business series.
type Point struct {
	Date    time.Time `json:"date"`
	Sales   float64   `json:"sales"`
	Revenue float64   `json:"revenue"`
}

// Series is a seeded run of consecutive daily points ending at the
// anchor day. The same (seed, days, anchor) always yields the same
// points.
type Series struct {
	Seed   int64   `json:"seed"`
	Days   int     `json:"days"`
	Points []Point `json:"points"`
}

// Generate builds the deterministic series. Dates are normalized to
// midnight UTC so snapshots survive JSON round-trips unchanged.
func Generate(seed int64, days int, anchor time.Time) Series {
	if days < 1 {
		days = 1
	}
	anchor = Midnight(anchor)
	start := anchor.AddDate(0, 0, -(days - 1))

	r := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, days)
	for i := 0; i < days; i++ {
		sales := float64(90 + r.Intn(110))
		revenue := round2(sales * (8 + 4*r.Float64()))
		points = append(points, Point{
			Date:    start.AddDate(0, 0, i),
			Sales:   sales,
			Revenue: revenue,
		})
	}
	return Series{Seed: seed, Days: days, Points: points}
}

// Midnight truncates t to its UTC calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Sales returns the sales column.
func (s Series) Sales() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Sales
	}
	return out
}

// Revenue returns the revenue column.
func (s Series) Revenue() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Revenue
	}
	return out
}

// PeakSalesDay returns the point with the highest sales.
func (s Series) PeakSalesDay() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	best := s.Points[0]
	for _, p := range s.Points[1:] {
		if p.Sales > best.Sales {
			best = p
		}
	}
	return best, true
}

// Aggregate holds the summary stats shown on metric cards.
type Aggregate struct {
	Sum  float64
	Mean float64
	Max  float64
}

// Stats computes sum, mean and max over values. An empty slice yields
// the zero aggregate.
func Stats(values []float64) Aggregate {
	if len(values) == 0 {
		return Aggregate{}
	}
	agg := Aggregate{Max: math.Inf(-1)}
	for _, v := range values {
		agg.Sum += v
		if v > agg.Max {
			agg.Max = v
		}
	}
	agg.Mean = agg.Sum / float64(len(values))
	return agg
}

// WeekdayTotal aggregates one weekday across the series.
type WeekdayTotal struct {
	Day     string
	Sales   float64
	Revenue float64
}

// ByWeekday returns totals in Monday..Sunday order. Weekdays missing
// from the series keep zero totals.
func (s Series) ByWeekday() []WeekdayTotal {
	totals := make(map[time.Weekday]*WeekdayTotal, 7)
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]WeekdayTotal, 0, 7)
	for _, wd := range order {
		totals[wd] = &WeekdayTotal{Day: wd.String()[:3]}
	}
	for _, p := range s.Points {
		t := totals[p.Date.Weekday()]
		t.Sales += p.Sales
		t.Revenue = round2(t.Revenue + p.Revenue)
	}
	for _, wd := range order {
		out = append(out, *totals[wd])
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
