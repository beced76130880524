package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity is one logged exercise session.
type Activity struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Type        string    `gorm:"index;not null" json:"type"` // e.g. "Running"
	DurationMin int       `json:"duration_min"`
	Calories    int       `json:"calories"`
	DistanceKm  float64   `json:"distance_km"`
	Steps       *int      `json:"steps,omitempty"` // absent for activities without step data
	Note        string    `gorm:"type:text" json:"note"`
	RecordedAt  time.Time `gorm:"index;not null" json:"recorded_at"` // immutable once persisted
}

// StepCount treats an absent step count as zero.
func (a *Activity) StepCount() int {
	if a.Steps == nil {
		return 0
	}
	return *a.Steps
}
