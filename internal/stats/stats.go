// Package stats derives completion statistics from a snapshot of routine tasks.
//
// Every function is pure: it reads the tasks it is given and the time passed
// in, never the store or the wall clock. Calendar days are judged in the
// location of the time argument.
package stats

import (
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
)

// CompletionRate returns the fraction of tasks with a completion log on day's
// calendar day. It is 0 when there are no tasks.
func CompletionRate(tasks []models.RoutineTask, day time.Time) float64 {
	if len(tasks) == 0 {
		return 0.0
	}

	completed := 0
	for _, t := range tasks {
		if t.CompletedOn(day) {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}

// MonthlyCompletionRate averages the daily completion rate over the days of
// now's month that have already ended. Today is excluded; on the first of the
// month the result is 0.
func MonthlyCompletionRate(tasks []models.RoutineTask, now time.Time) float64 {
	start := utils.StartOfMonth(now)
	elapsed := utils.DaysBetween(start, now)

	total := 0.0
	for i := 0; i < elapsed; i++ {
		total += CompletionRate(tasks, utils.AddDays(start, i))
	}
	return total / float64(max(elapsed, 1))
}

// DailyRates returns the completion rate for n days ending today. Index 0 is
// today, index 1 yesterday, and so on.
func DailyRates(tasks []models.RoutineTask, now time.Time, n int) []float64 {
	rates := make([]float64, 0, max(n, 0))
	cursor := utils.StartOfDay(now)
	for i := 0; i < n; i++ {
		rates = append(rates, CompletionRate(tasks, cursor))
		cursor = utils.AddDays(cursor, -1)
	}
	return rates
}

// CurrentStreak scans the last StreakWindowDays days and returns the longest
// run of consecutive days whose completion rate is at least
// StreakQualifyingRate. The run does not have to include today.
func CurrentStreak(tasks []models.RoutineTask, now time.Time) int {
	if len(tasks) == 0 {
		return 0
	}
	return LongestRun(DailyRates(tasks, now, constants.StreakWindowDays), constants.StreakQualifyingRate)
}

// LongestRun returns the length of the longest contiguous run of rates >= threshold.
func LongestRun(rates []float64, threshold float64) int {
	longest, run := 0, 0
	for _, r := range rates {
		if r >= threshold {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// BandFor classifies a completion rate for display.
func BandFor(rate float64) constants.RateBand {
	switch {
	case rate >= constants.BandCompleteRate:
		return constants.BandComplete
	case rate >= constants.BandPartialRate:
		return constants.BandPartial
	case rate > 0:
		return constants.BandStarted
	default:
		return constants.BandNone
	}
}
