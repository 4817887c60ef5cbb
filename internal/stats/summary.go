package stats

import (
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
)

// RoutineSummary is the per-routine part of a Summary
type RoutineSummary struct {
	Title          string `json:"title" yaml:"title"`
	CompletedToday bool   `json:"completed_today" yaml:"completed_today"`
	Streak         int    `json:"streak" yaml:"streak"`
	NotifyAt       string `json:"notify_at,omitempty" yaml:"notify_at,omitempty"`
	NotifyDays     string `json:"notify_days,omitempty" yaml:"notify_days,omitempty"`
}

// Summary bundles the aggregate statistics shown in reports
type Summary struct {
	Date          string           `json:"date" yaml:"date"`
	Month         string           `json:"month" yaml:"month"`
	TodayRate     float64          `json:"today_rate" yaml:"today_rate"`
	MonthlyRate   float64          `json:"monthly_rate" yaml:"monthly_rate"`
	CurrentStreak int              `json:"current_streak" yaml:"current_streak"`
	Routines      []RoutineSummary `json:"routines" yaml:"routines"`
}

func Summarize(tasks []models.RoutineTask, now time.Time) Summary {
	s := Summary{
		Date:          now.Format(constants.DateFormat),
		Month:         now.Format(constants.MonthFormat),
		TodayRate:     CompletionRate(tasks, now),
		MonthlyRate:   MonthlyCompletionRate(tasks, now),
		CurrentStreak: CurrentStreak(tasks, now),
		Routines:      make([]RoutineSummary, 0, len(tasks)),
	}

	for _, t := range tasks {
		rs := RoutineSummary{
			Title:          t.Title,
			CompletedToday: t.IsCompletedToday(now),
			Streak:         t.StreakCount(now),
		}
		if at, ok := t.NotifyTimeString(); ok {
			rs.NotifyAt = at
			rs.NotifyDays = t.Notification.Weekdays.String()
		}
		s.Routines = append(s.Routines, rs)
	}
	return s
}
