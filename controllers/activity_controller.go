package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/config"
	"github.com/KidKyzo/Smart-Fit-sub000/middlewares"
	"github.com/KidKyzo/Smart-Fit-sub000/models"
	"github.com/KidKyzo/Smart-Fit-sub000/services"

	"github.com/gin-gonic/gin"
)

// Numeric fields are validated here rather than coerced; the stores accept
// whatever they are handed.
type ActivityInput struct {
	Type        string    `json:"type" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"gte=0"`
	Calories    int       `json:"calories" binding:"gte=0"`
	DistanceKm  float64   `json:"distance_km" binding:"gte=0"`
	Steps       *int      `json:"steps" binding:"omitempty,gte=0"`
	Note        string    `json:"note"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// broadcastToday pushes the refreshed day summary to the user's subscribed
// screens after a write.
func broadcastToday(userID uint) {
	summary, err := services.NewStatsService(config.DB).TodaySummary(userID, time.Now())
	if err != nil {
		return
	}
	services.Hub.BroadcastSummary(userID, summary)
}

func CreateActivity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.Activity{
		Type:        input.Type,
		DurationMin: input.DurationMin,
		Calories:    input.Calories,
		DistanceKm:  input.DistanceKm,
		Steps:       input.Steps,
		Note:        input.Note,
		RecordedAt:  input.RecordedAt,
	}

	if err := services.NewActivityService(config.DB).Create(userID, &activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middlewares.ActivityOperationsTotal.WithLabelValues("create").Inc()
	broadcastToday(userID)
	c.JSON(http.StatusCreated, activity)
}

// ListActivities returns all of the user's activities newest first, or only
// those of ?type= when given.
func ListActivities(c *gin.Context) {
	userID := c.GetUint("userID")
	svc := services.NewActivityService(config.DB)

	var (
		out []models.Activity
		err error
	)
	if t := c.Query("type"); t != "" {
		out, err = svc.ListByType(userID, t)
	} else {
		out, err = svc.List(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

func GetActivity(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	activity, err := services.NewActivityService(config.DB).GetByID(userID, uint(id))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

func UpdateActivity(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.Activity{
		Type:        input.Type,
		DurationMin: input.DurationMin,
		Calories:    input.Calories,
		DistanceKm:  input.DistanceKm,
		Steps:       input.Steps,
		Note:        input.Note,
	}
	activity.ID = uint(id)

	err = services.NewActivityService(config.DB).Update(userID, &activity)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middlewares.ActivityOperationsTotal.WithLabelValues("update").Inc()
	broadcastToday(userID)
	c.Status(http.StatusNoContent)
}

func DeleteActivity(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err = services.NewActivityService(config.DB).Delete(userID, uint(id))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middlewares.ActivityOperationsTotal.WithLabelValues("delete").Inc()
	broadcastToday(userID)
	c.Status(http.StatusNoContent)
}
