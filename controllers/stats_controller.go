package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/config"
	"github.com/KidKyzo/Smart-Fit-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /stats/today
func TodayStats(c *gin.Context) {
	userID := c.GetUint("userID")

	summary, err := services.NewStatsService(config.DB).TodaySummary(userID, time.Now())
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /stats/weekly?offset=0 — offset 0 is the current week, negative goes
// back. Future weeks are rejected.
func WeeklyStats(c *gin.Context) {
	userID := c.GetUint("userID")

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
		return
	}

	overview, err := services.NewStatsService(config.DB).WeeklyOverview(userID, time.Now(), offset)
	if errors.Is(err, services.ErrFutureWeek) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GET /stats/history — 7 per-day step sums, oldest first.
func StepHistoryStats(c *gin.Context) {
	userID := c.GetUint("userID")

	records, err := services.NewActivityService(config.DB).List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": services.StepHistory(records, time.Now())})
}

// GET /stats/day?date=YYYY-MM-DD
func DayStats(c *gin.Context) {
	userID := c.GetUint("userID")
	day, ok := parseDateParam(c)
	if !ok {
		return
	}

	view, err := services.NewStatsService(config.DB).DailyView(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
