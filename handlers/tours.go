package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/models"
	"tourgate/services/resolver"
	"tourgate/utils"
)

func listTours(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tours, err := svc.Tours(c.Request.Context(), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tours)
	}
}

func getTour(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tour, err := svc.TourByID(c.Request.Context(), c.Param("id"), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if tour == nil {
			notFound(c, "tour")
			return
		}
		c.JSON(http.StatusOK, tour)
	}
}

func toursByCategory(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tours, err := svc.ToursByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tours)
	}
}

func toursByPrice(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		min := floatParam(c, "min")
		max := floatParam(c, "max")
		if min == nil && max == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid price range", "at least one of min or max is required")
			return
		}
		tours, err := svc.ToursByPriceRange(c.Request.Context(), min, max)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tours)
	}
}

func availableTours(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tours, err := svc.AvailableTours(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tours)
	}
}

func createTour(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.TourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		tour, err := svc.CreateTour(c.Request.Context(), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tour)
	}
}

func updateTour(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.TourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		tour, err := svc.UpdateTour(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tour)
	}
}

func deleteTour(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
	}
}

func listGuides(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		guides, err := svc.Guides(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, guides)
	}
}

func getGuide(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		guide, err := svc.GuideByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if guide == nil {
			notFound(c, "guide")
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}
