// Package analytics derives the dashboard views from the current task set.
// Everything here is a pure function: no mutation of the input, no state
// between calls, cheap enough to recompute on every read.
package analytics

import (
	"sort"
	"time"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
)

const (
	// MatrixWindowDays is the length of the trailing activity window,
	// today inclusive.
	MatrixWindowDays = 168

	maxIntensity = 4
)

type CategoryStat struct {
	Name      string
	Completed int
	Total     int
	Rate      float64
}

type ActivityDay struct {
	Date      string
	Count     int
	Intensity int
}

// Summary bundles the headline numbers the stats dashboard shows.
type Summary struct {
	EfficiencyRate    float64
	OverallEfficiency float64
	Categories        []CategoryStat
	ConsistencyScore  int
	ActiveRoutines    int
}

// SortTimeline returns a deep copy of the task set in display order: daily
// tasks before normal ones, each partition ascending by scheduled time. The
// sort is stable, so ties keep their original relative order. The copy shares
// no history storage with the input, so callers may hand it out of any lock
// guarding the live set.
func SortTimeline(tasks []domain.Task) []domain.Task {
	sorted := domain.CloneTasks(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TaskType != sorted[j].TaskType {
			return sorted[i].TaskType == domain.TaskTypeDaily
		}
		return sorted[i].ScheduledAt().Before(sorted[j].ScheduledAt())
	})
	return sorted
}

// EfficiencyRate is the percentage of tasks ever completed at least once.
// Zero on an empty set.
func EfficiencyRate(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.DoneEver() {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}

// CategoryStats computes completion counts and rates for every fixed
// category, in category order. Categories with no tasks report a zero rate.
func CategoryStats(tasks []domain.Task) []CategoryStat {
	stats := make([]CategoryStat, 0, len(domain.Categories))
	for _, name := range domain.Categories {
		stat := CategoryStat{Name: name}
		for _, t := range tasks {
			if t.Category != name {
				continue
			}
			stat.Total++
			if t.DoneEver() {
				stat.Completed++
			}
		}
		if stat.Total > 0 {
			stat.Rate = float64(stat.Completed) / float64(stat.Total) * 100
		}
		stats = append(stats, stat)
	}
	return stats
}

// OverallEfficiency is the arithmetic mean of the per-category rates.
// Unlike EfficiencyRate it is not weighted by task count; the two numbers
// intentionally disagree on uneven category distributions.
func OverallEfficiency(stats []CategoryStat) float64 {
	if len(stats) == 0 {
		return 0
	}
	sum := 0.0
	for _, stat := range stats {
		sum += stat.Rate
	}
	return sum / float64(len(stats))
}

// ConsistencyScore is the lifetime completion count of the single
// most-completed daily task. Zero when there are no daily tasks.
func ConsistencyScore(tasks []domain.Task) int {
	best := 0
	for _, t := range tasks {
		if t.TaskType != domain.TaskTypeDaily {
			continue
		}
		if n := len(t.CompletionHistory); n > best {
			best = n
		}
	}
	return best
}

// ActiveRoutines counts the daily tasks currently tracked.
func ActiveRoutines(tasks []domain.Task) int {
	n := 0
	for _, t := range tasks {
		if t.TaskType == domain.TaskTypeDaily {
			n++
		}
	}
	return n
}

// Summarize computes the full stats dashboard in one pass over the set.
func Summarize(tasks []domain.Task) Summary {
	stats := CategoryStats(tasks)
	return Summary{
		EfficiencyRate:    EfficiencyRate(tasks),
		OverallEfficiency: OverallEfficiency(stats),
		Categories:        stats,
		ConsistencyScore:  ConsistencyScore(tasks),
		ActiveRoutines:    ActiveRoutines(tasks),
	}
}

// ActivityMatrix produces the trailing MatrixWindowDays-day completion
// series ending at now's UTC calendar date, oldest day first, contiguous.
// Per day, every daily task with a matching history entry and every
// completed normal task scheduled that day contribute one count; intensity
// caps the count at maxIntensity.
func ActivityMatrix(tasks []domain.Task, now time.Time) []ActivityDay {
	today := now.UTC()
	days := make([]ActivityDay, 0, MatrixWindowDays)
	for i := MatrixWindowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(domain.DateLayout)
		count := 0
		for _, t := range tasks {
			if t.CompletedOn(date) {
				count++
			}
		}
		intensity := count
		if intensity > maxIntensity {
			intensity = maxIntensity
		}
		days = append(days, ActivityDay{Date: date, Count: count, Intensity: intensity})
	}
	return days
}
