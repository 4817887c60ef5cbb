package models

import (
	"testing"
	"time"
)

func TestWeekdaysNormalized(t *testing.T) {
	got := Weekdays{time.Friday, time.Monday, time.Friday, time.Weekday(9), time.Sunday}.Normalized()
	want := Weekdays{time.Sunday, time.Monday, time.Friday}

	if len(got) != len(want) {
		t.Fatalf("Normalized() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Normalized()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWeekdaysString(t *testing.T) {
	tests := []struct {
		name string
		w    Weekdays
		want string
	}{
		{"empty", nil, "no days"},
		{"all seven", EveryDay(), "every day"},
		{"work week", WorkWeek(), "Mon,Tue,Wed,Thu,Fri"},
		{"unsorted", Weekdays{time.Saturday, time.Sunday}, "Sun,Sat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotificationString(t *testing.T) {
	n := NotificationSetting{Hour: 7, Minute: 0, Weekdays: WorkWeek()}
	if got, want := n.String(), "07:00 Mon,Tue,Wed,Thu,Fri"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !n.ActiveOn(time.Tuesday) || n.ActiveOn(time.Sunday) {
		t.Error("ActiveOn() does not match the weekday set")
	}
}
