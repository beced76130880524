package models

// FoodItem is a normalized entry from the remote food database. It is not
// persisted; logging one produces a FoodIntake snapshot.
type FoodItem struct {
	FoodID      string  `json:"food_id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `json:"serving_size"`
	Calories    int     `json:"calories"`
	Fat         float64 `json:"fat_g"`
	Carbs       float64 `json:"carbs_g"`
	Protein     float64 `json:"protein_g"`
}
