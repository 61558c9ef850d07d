package mapper

import (
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/dto"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/analytics"
)

func ToStatsSummary(summary analytics.Summary) dto.StatsSummary {
	stats := make([]dto.CategoryStat, 0, len(summary.Categories))
	for _, stat := range summary.Categories {
		stats = append(stats, dto.CategoryStat{
			Name:      stat.Name,
			Completed: stat.Completed,
			Total:     stat.Total,
			Rate:      stat.Rate,
		})
	}
	return dto.StatsSummary{
		EfficiencyRate:    summary.EfficiencyRate,
		OverallEfficiency: summary.OverallEfficiency,
		CategoryStats:     stats,
		ConsistencyScore:  summary.ConsistencyScore,
		ActiveRoutines:    summary.ActiveRoutines,
	}
}

func ToActivityDays(days []analytics.ActivityDay) []dto.ActivityDay {
	items := make([]dto.ActivityDay, 0, len(days))
	for _, day := range days {
		items = append(items, dto.ActivityDay{
			Date:      day.Date,
			Count:     day.Count,
			Intensity: day.Intensity,
		})
	}
	return items
}
