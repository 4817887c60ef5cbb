package report

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/stats"
)

func sampleSummary() stats.Summary {
	return stats.Summary{
		Date:          "2026-03-18",
		Month:         "2026-03",
		TodayRate:     2.0 / 3.0,
		MonthlyRate:   0.5,
		CurrentStreak: 4,
		Routines: []stats.RoutineSummary{
			{Title: "Morning stretch", CompletedToday: true, Streak: 3, NotifyAt: "07:00", NotifyDays: "Mon,Tue,Wed,Thu,Fri"},
			{Title: "Brew | coffee", CompletedToday: true, Streak: 1},
			{Title: "Write journal"},
		},
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "0%"},
		{0.5, "50%"},
		{2.0 / 3.0, "66%"},
		{1, "100%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.rate); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	out := Text(sampleSummary())
	for _, want := range []string{"2026-03-18", "Morning stretch", "07:00", "Write journal", "66%", "50%", "4 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestTextEmpty(t *testing.T) {
	out := Text(stats.Summary{Date: "2026-03-18"})
	if !strings.Contains(out, "No routines yet.") {
		t.Errorf("expected empty notice, got:\n%s", out)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleSummary())

	for _, want := range []string{
		"# Routines for 2026-03-18",
		"| [x] | Morning stretch | 07:00 (Mon,Tue,Wed,Thu,Fri) | 3 |",
		`| [x] | Brew \| coffee | - | 1 |`,
		"| [ ] | Write journal | - | 0 |",
		"- **Today:** 66%",
		"- **This month (2026-03):** 50%",
		"- **Best streak (last 30 days):** 4 days",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestYAML(t *testing.T) {
	out, err := YAML(sampleSummary())
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	var decoded stats.Summary
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, out)
	}
	if decoded.CurrentStreak != 4 || len(decoded.Routines) != 3 {
		t.Errorf("decoded = %+v", decoded)
	}
	if strings.Contains(out, "notify_at: \"\"") {
		t.Errorf("empty notify_at should be omitted:\n%s", out)
	}
}

func TestRender(t *testing.T) {
	s := sampleSummary()

	tests := []struct {
		format  constants.ReportFormat
		want    string
		wantErr bool
	}{
		{format: constants.ReportText, want: "Morning stretch"},
		{format: "", want: "Morning stretch"},
		{format: constants.ReportMarkdown, want: "Morning stretch"},
		{format: constants.ReportYAML, want: "current_streak: 4"},
		{format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			out, err := Render(s, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown format")
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Render(%q) missing %q:\n%s", tt.format, tt.want, out)
			}
		})
	}
}

func TestCalendar(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)
	grid := stats.MonthGrid(nil, now, now)

	out := Calendar(grid, now)
	if !strings.Contains(out, "March 2026") {
		t.Errorf("calendar missing month header:\n%s", out)
	}
	if !strings.Contains(out, "Su") || !strings.Contains(out, "Sa") {
		t.Errorf("calendar missing weekday header:\n%s", out)
	}
	for _, day := range []string{" 1", "18", "31"} {
		if !strings.Contains(out, day) {
			t.Errorf("calendar missing day %q:\n%s", day, out)
		}
	}
	// header + weekday row + 5 weeks of two rows + legend
	if lines := strings.Count(out, "\n") + 1; lines != 13 {
		t.Errorf("calendar has %d lines, want 13:\n%s", lines, out)
	}
}
