package models

import "time"

// Schedule override kinds.
const (
	OverrideHoliday  = "holiday"  // whole day off
	OverrideBlackout = "blackout" // a window inside the day is blocked
)

// ScheduleOverride blocks out bookable time for one doctor on one
// date. A holiday blocks the entire date; a blackout blocks only the
// given window.
type ScheduleOverride struct {
	ID       string `bson:"id" json:"id"`
	DoctorID string `bson:"doctorId" json:"doctorId"`
	Date     string `bson:"date" json:"date"` // "2006-01-02"
	Kind     string `bson:"kind" json:"kind"` // holiday | blackout
	// Blackout window, clock strings; unused for holidays.
	StartTime string    `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   string    `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
