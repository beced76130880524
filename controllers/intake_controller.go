package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/config"
	"github.com/KidKyzo/Smart-Fit-sub000/models"
	"github.com/KidKyzo/Smart-Fit-sub000/services"

	"github.com/gin-gonic/gin"
)

type IntakeInput struct {
	FoodID      string    `json:"food_id" binding:"required"`
	FoodName    string    `json:"food_name" binding:"required"`
	Calories    float64   `json:"calories" binding:"gte=0"`
	Protein     float64   `json:"protein_g" binding:"gte=0"`
	Carbs       float64   `json:"carbs_g" binding:"gte=0"`
	Fat         float64   `json:"fat_g" binding:"gte=0"`
	ServingSize string    `json:"serving_size"`
	Servings    float64   `json:"servings" binding:"gte=0"`
	MealType    string    `json:"meal_type" binding:"required"`
	EatenAt     time.Time `json:"eaten_at"`
}

// parseDateParam reads ?date=YYYY-MM-DD, defaulting to today.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

func LogIntake(c *gin.Context) {
	userID := c.GetUint("userID")

	var input IntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be breakfast, lunch, dinner or snack"})
		return
	}

	intake := models.FoodIntake{
		FoodID:      input.FoodID,
		FoodName:    input.FoodName,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ServingSize: input.ServingSize,
		Servings:    input.Servings,
		MealType:    input.MealType,
		EatenAt:     input.EatenAt,
	}

	if err := services.NewIntakeService(config.DB).Log(userID, &intake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	broadcastToday(userID)
	c.JSON(http.StatusCreated, intake)
}

func ListIntakes(c *gin.Context) {
	userID := c.GetUint("userID")
	day, ok := parseDateParam(c)
	if !ok {
		return
	}

	out, err := services.NewIntakeService(config.DB).ListForDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

func IntakeCalories(c *gin.Context) {
	userID := c.GetUint("userID")
	day, ok := parseDateParam(c)
	if !ok {
		return
	}

	total, err := services.NewIntakeService(config.DB).TotalCaloriesForDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": day.Format("2006-01-02"), "calories": total})
}

// DeleteIntake removes a record and returns it so the client can offer undo
// via RestoreIntake.
func DeleteIntake(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	deleted, err := services.NewIntakeService(config.DB).Delete(userID, uint(id))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "intake not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	broadcastToday(userID)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// RestoreIntake re-inserts a record previously returned by DeleteIntake.
func RestoreIntake(c *gin.Context) {
	userID := c.GetUint("userID")

	var record models.FoodIntake
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "record belongs to another user"})
		return
	}

	if err := services.NewIntakeService(config.DB).Restore(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	broadcastToday(userID)
	c.JSON(http.StatusCreated, record)
}
