// Package standings turns a sparse, unordered set of dated activity
// records into the three projections the dashboard renders: the
// leaderboard (totals, descending), the per-athlete activity feed and
// the cumulative points-over-time series on a shared calendar-day axis.
package standings

import (
	"cmp"
	"slices"
	"time"

	"github.com/fury1991/my-sport-challenge/daykey"
	"github.com/fury1991/my-sport-challenge/scoring"
)

// Activity is one recorded exercise event. Immutable once fetched.
type Activity struct {
	Date     time.Time
	Kind     scoring.Kind
	Distance float64 // km
}

// Athlete is a participant with their fetched activities. TotalPoints
// is a derived projection, filled by Aggregate; it is never a source
// of truth on its own.
type Athlete struct {
	ID          string
	Name        string
	Activities  []Activity
	TotalPoints float64
}

// Standings holds the aggregated view of one challenge. It is built
// once per fetch and never mutated; a challenge switch discards it.
type Standings struct {
	athletes    []Athlete
	byID        map[string]int
	checkpoints []daykey.Key
	series      map[string][]float64
}

// Aggregate scores and aggregates the given athletes against a shared
// checkpoint axis starting at origin. Input athletes are not mutated;
// activity order within the same calendar day follows fetch order
// (stable sort). Aggregating the same input twice yields identical
// results.
func Aggregate(athletes []Athlete, origin time.Time) *Standings {
	s := &Standings{
		athletes: make([]Athlete, len(athletes)),
		byID:     make(map[string]int, len(athletes)),
		series:   make(map[string][]float64, len(athletes)),
	}

	for i, a := range athletes {
		sorted := slices.Clone(a.Activities)
		slices.SortStableFunc(sorted, func(x, y Activity) int {
			return x.Date.Compare(y.Date)
		})

		var total float64
		for _, act := range sorted {
			total += scoring.Score(act.Kind, act.Distance)
		}

		s.athletes[i] = Athlete{
			ID:          a.ID,
			Name:        a.Name,
			Activities:  sorted,
			TotalPoints: total,
		}
		s.byID[a.ID] = i
	}

	s.checkpoints = checkpointAxis(s.athletes, origin)

	for _, a := range s.athletes {
		s.series[a.Name] = cumulative(a.Activities, s.checkpoints)
	}

	return s
}

// checkpointAxis is the union of the origin day and every activity
// day across all athletes, deduplicated per calendar day and sorted
// ascending.
func checkpointAxis(athletes []Athlete, origin time.Time) []daykey.Key {
	seen := map[daykey.Key]struct{}{
		daykey.FromTime(origin): {},
	}
	for _, a := range athletes {
		for _, act := range a.Activities {
			seen[daykey.FromTime(act.Date)] = struct{}{}
		}
	}

	axis := make([]daykey.Key, 0, len(seen))
	for k := range seen {
		axis = append(axis, k)
	}
	slices.SortFunc(axis, daykey.Compare)
	return axis
}

// cumulative walks the shared axis with a merge cursor into the
// athlete's date-sorted activities: each checkpoint consumes every
// not-yet-consumed activity on that calendar day and records the
// running total. Days without activity carry the total forward.
func cumulative(sorted []Activity, axis []daykey.Key) []float64 {
	values := make([]float64, len(axis))
	var total float64
	i := 0
	for c, day := range axis {
		for i < len(sorted) && daykey.FromTime(sorted[i].Date) == day {
			total += scoring.Score(sorted[i].Kind, sorted[i].Distance)
			i++
		}
		values[c] = total
	}
	return values
}

// Athletes returns the aggregated athletes, activities sorted and
// totals filled, in fetch order. The result is a copy; mutating it
// cannot corrupt the aggregation, which is shared across requests.
func (s *Standings) Athletes() []Athlete {
	out := make([]Athlete, len(s.athletes))
	for i, a := range s.athletes {
		a.Activities = slices.Clone(a.Activities)
		out[i] = a
	}
	return out
}

// Athlete looks up one aggregated athlete by store id. Like Athletes,
// the returned value is a copy.
func (s *Standings) Athlete(id string) (Athlete, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Athlete{}, false
	}
	a := s.athletes[i]
	a.Activities = slices.Clone(a.Activities)
	return a, true
}

// LeaderboardRow is one line of the leaderboard table.
type LeaderboardRow struct {
	Name            string
	TotalPoints     float64
	FormattedPoints string
}

// Leaderboard returns athletes sorted descending by total points.
// Equal totals are ordered by name ascending so the table is
// deterministic regardless of store iteration order.
func (s *Standings) Leaderboard() []LeaderboardRow {
	rows := make([]LeaderboardRow, len(s.athletes))
	for i, a := range s.athletes {
		rows[i] = LeaderboardRow{
			Name:            a.Name,
			TotalPoints:     a.TotalPoints,
			FormattedPoints: scoring.FormatPoints(a.TotalPoints),
		}
	}
	slices.SortFunc(rows, func(a, b LeaderboardRow) int {
		if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return rows
}

// FeedEntry is one activity as the feed renders it.
type FeedEntry struct {
	Date        time.Time
	Day         daykey.Key
	Kind        scoring.Kind
	Distance    float64
	Points      float64
	Icon        string
	DisplayName string
}

// ActivityFeed returns one athlete's activities in chronological
// order, scored and decorated for display. The second return value is
// false when the athlete id is not part of this aggregation.
func (s *Standings) ActivityFeed(athleteID string) ([]FeedEntry, bool) {
	a, ok := s.Athlete(athleteID)
	if !ok {
		return nil, false
	}
	feed := make([]FeedEntry, len(a.Activities))
	for i, act := range a.Activities {
		feed[i] = FeedEntry{
			Date:        act.Date,
			Day:         daykey.FromTime(act.Date),
			Kind:        act.Kind,
			Distance:    act.Distance,
			Points:      scoring.Score(act.Kind, act.Distance),
			Icon:        scoring.Icon(act.Kind),
			DisplayName: scoring.DisplayName(act.Kind),
		}
	}
	return feed, true
}

// ChartData is the shared-axis cumulative series for every athlete.
// Series values are aligned index-for-index with Checkpoints; the
// last value of each series equals that athlete's total.
type ChartData struct {
	Checkpoints []daykey.Key
	Series      map[string][]float64
}

// ChartSeries returns copies of the axis and the series maps, so a
// caller mutating the chart data cannot corrupt the aggregation.
func (s *Standings) ChartSeries() ChartData {
	series := make(map[string][]float64, len(s.series))
	for name, values := range s.series {
		series[name] = slices.Clone(values)
	}
	return ChartData{
		Checkpoints: slices.Clone(s.checkpoints),
		Series:      series,
	}
}
