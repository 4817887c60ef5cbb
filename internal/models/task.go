package models

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/routinely/internal/utils"
)

// RoutineTask is a recurring activity tracked for daily completion.
//
// CompletionLogs holds at most one entry per calendar day. The derived
// properties below take the current time explicitly so callers control the clock.
type RoutineTask struct {
	ID             string               `json:"id" yaml:"id"`
	Title          string               `json:"title" yaml:"title"`
	Notification   *NotificationSetting `json:"notification,omitempty" yaml:"notification,omitempty"`
	CompletionLogs []CompletionLog      `json:"completion_logs" yaml:"completion_logs"`
	CreatedAt      time.Time            `json:"created_at" yaml:"created_at"`
}

// NewRoutineTask builds a task with a fresh ID, a trimmed title and no history.
func NewRoutineTask(title string, notification *NotificationSetting, now time.Time) RoutineTask {
	var n *NotificationSetting
	if notification != nil {
		c := notification.Clone()
		n = &c
	}
	return RoutineTask{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(title),
		Notification:   n,
		CompletionLogs: []CompletionLog{},
		CreatedAt:      now,
	}
}

// Clone returns a deep copy that shares no slices or pointers with t.
func (t RoutineTask) Clone() RoutineTask {
	if t.Notification != nil {
		n := t.Notification.Clone()
		t.Notification = &n
	}
	t.CompletionLogs = slices.Clone(t.CompletionLogs)
	if t.CompletionLogs == nil {
		t.CompletionLogs = []CompletionLog{}
	}
	return t
}

// LogIndexOn returns the index of the log recorded on day's calendar day, or -1.
func (t RoutineTask) LogIndexOn(day time.Time) int {
	return slices.IndexFunc(t.CompletionLogs, func(l CompletionLog) bool {
		return utils.SameDay(l.Date, day)
	})
}

// CompletedOn reports whether a log exists on day's calendar day.
func (t RoutineTask) CompletedOn(day time.Time) bool {
	return t.LogIndexOn(day) >= 0
}

func (t RoutineTask) IsCompletedToday(now time.Time) bool {
	return t.CompletedOn(now)
}

// StreakCount returns the number of consecutive days, ending today, with a log.
// It is 0 when today has no log regardless of older history.
func (t RoutineTask) StreakCount(now time.Time) int {
	loc := now.Location()
	days := make(map[string]struct{}, len(t.CompletionLogs))
	for _, l := range t.CompletionLogs {
		days[utils.DayKey(l.Date, loc)] = struct{}{}
	}

	count := 0
	cursor := utils.StartOfDay(now)
	for {
		if _, ok := days[utils.DayKey(cursor, loc)]; !ok {
			break
		}
		count++
		cursor = utils.AddDays(cursor, -1)
	}
	return count
}

// NotifyTimeString returns the reminder time as HH:MM, or false when no
// reminder is configured.
func (t RoutineTask) NotifyTimeString() (string, bool) {
	if t.Notification == nil {
		return "", false
	}
	return t.Notification.TimeString()
}

// ScheduledOn reports whether the routine's reminder covers day's weekday.
// Routines without a reminder are treated as scheduled every day.
func (t RoutineTask) ScheduledOn(day time.Time) bool {
	if t.Notification == nil {
		return true
	}
	return t.Notification.ActiveOn(day.Weekday())
}
