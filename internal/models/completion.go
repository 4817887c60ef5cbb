package models

import (
	"time"

	"github.com/google/uuid"
)

// CompletionLog records that a routine was completed on a calendar day.
// Only the day of Date is significant.
type CompletionLog struct {
	ID   string    `json:"id" yaml:"id"`
	Date time.Time `json:"date" yaml:"date"`
}

func NewCompletionLog(at time.Time) CompletionLog {
	return CompletionLog{
		ID:   uuid.New().String(),
		Date: at,
	}
}
