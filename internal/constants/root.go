package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// ReportFormat selects how the statistics summary is rendered
type ReportFormat string

const (
	AppName           = "routinely"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/routinely/config.yaml"
	DefaultLogDirName = "logs"
	LogFileName       = "routinely.log"
	EnvPrefix         = "ROUTINELY"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is used for month selection flags and calendar headers (YYYY-MM)
	MonthFormat = "2006-01"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Calendar weeks start on Sunday, matching the weekday header row
	WeekStart = time.Sunday

	// Report formats
	ReportText     ReportFormat = "text"
	ReportMarkdown ReportFormat = "markdown"
	ReportYAML     ReportFormat = "yaml"
)

// Session States. The first two are the tabs, in tab order.
const (
	StateDaily SessionState = iota
	StateAchievement
	StateAddRoutine
	StateConfirmDelete
)

// TabCount is the number of tabbed views
const TabCount = 2
