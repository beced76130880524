package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal type labels accepted for a FoodIntake.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// ValidMealType reports whether t is one of the fixed meal type labels.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodIntake is one logged consumption of a food item. The nutrition values
// are a snapshot of the looked-up food at logging time, per single serving;
// Servings is the multiplier applied when totalling.
type FoodIntake struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FoodID      string    `gorm:"type:varchar(255);not null" json:"food_id"` // external id from the lookup API
	FoodName    string    `gorm:"not null" json:"food_name"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein_g"`
	Carbs       float64   `json:"carbs_g"`
	Fat         float64   `json:"fat_g"`
	ServingSize string    `gorm:"size:64" json:"serving_size"` // e.g. "100g"
	Servings    float64   `gorm:"default:1" json:"servings"`
	MealType    string    `gorm:"size:16;index" json:"meal_type"` // breakfast|lunch|dinner|snack
	EatenAt     time.Time `gorm:"index;not null" json:"eaten_at"`
}
