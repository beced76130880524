package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	FullName       string    `json:"full_name"`
	Birthday       time.Time `json:"birthday"`
	HeightCm       float64   `json:"height_cm"`
	WeightKg       float64   `json:"weight_kg"`
	DailyStepGoal  int       `gorm:"default:10000" json:"daily_step_goal"`
	ProfilePicture string    `json:"profile_picture"`
}
