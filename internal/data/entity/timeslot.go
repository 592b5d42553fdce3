package entity

import "time"

// TimeSlot is a reusable, branch-agnostic bookable time interval.
type TimeSlot struct {
	Base
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
}
