package constants

// RateBand classifies a day's completion rate for calendar rendering
type RateBand string

const (
	// Aggregate streak constants:
	// - StreakWindowDays is how many calendar days (today backward) the aggregate streak scans.
	// - StreakQualifyingRate is the minimum completion rate for a day to count toward it.
	StreakWindowDays     = 30
	StreakQualifyingRate = 0.5

	// Rate band thresholds. Each is an inclusive lower bound.
	BandCompleteRate = 0.8
	BandPartialRate  = 0.5

	BandComplete RateBand = "complete"
	BandPartial  RateBand = "partial"
	BandStarted  RateBand = "started"
	BandNone     RateBand = "none"
)

func init() {
	// Runtime validation: band thresholds must be ordered and within [0,1]
	if BandPartialRate > BandCompleteRate || BandCompleteRate > 1.0 || BandPartialRate <= 0 {
		panic("BandPartialRate and BandCompleteRate must satisfy 0 < partial <= complete <= 1")
	}
}
