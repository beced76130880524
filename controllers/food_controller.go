package controllers

import (
	"net/http"
	"strconv"

	"github.com/KidKyzo/Smart-Fit-sub000/middlewares"
	"github.com/KidKyzo/Smart-Fit-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?q=chicken&page=0
func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	out, err := services.NewFatSecretService().Search(c.Request.Context(), query, page)
	if err != nil {
		middlewares.FoodLookupsTotal.WithLabelValues("search", "error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	middlewares.FoodLookupsTotal.WithLabelValues("search", "ok").Inc()
	c.JSON(http.StatusOK, out)
}

// GET /food/:id
func GetFood(c *gin.Context) {
	out, err := services.NewFatSecretService().GetFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.FoodLookupsTotal.WithLabelValues("get", "error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	middlewares.FoodLookupsTotal.WithLabelValues("get", "ok").Inc()
	c.JSON(http.StatusOK, out)
}
