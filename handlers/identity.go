package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/models"
	"tourgate/services/resolver"
	"tourgate/utils"
)

func listUsers(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.Users(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func getUser(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.UserByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if user == nil {
			notFound(c, "user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func createUser(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		user, err := svc.CreateUser(c.Request.Context(), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func listDestinations(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		destinations, err := svc.Destinations(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, destinations)
	}
}

func getDestination(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		destination, err := svc.DestinationByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if destination == nil {
			notFound(c, "destination")
			return
		}
		c.JSON(http.StatusOK, destination)
	}
}

func listRecommendations(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		recommendations, err := svc.Recommendations(c.Request.Context(), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, recommendations)
	}
}

func getRecommendation(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := svc.RecommendationByID(c.Request.Context(), c.Param("id"), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if rec == nil {
			notFound(c, "recommendation")
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func recommendationsByUser(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		recommendations, err := svc.RecommendationsByUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, recommendations)
	}
}
