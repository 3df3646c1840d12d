package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/services/report"
	"tourgate/utils"
)

func popularTours(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := rep.PopularTours(c.Request.Context(), limitParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func toursCategoryReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		shares, err := rep.ToursByCategory(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, shares)
	}
}

func bookingsPeriodReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := c.Query("start")
		end := c.Query("end")
		if start == "" || end == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid range", "start and end are required")
			return
		}
		result, err := rep.BookingsByPeriod(c.Request.Context(), start, end)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func bookingsStatusReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rep.BookingsByStatus(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func guidePerformanceReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := rep.GuidePerformance(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func revenueReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rep.Revenue(c.Request.Context(), c.Query("start"), c.Query("end"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func consolidatedReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rep.Consolidated(c.Request.Context(), c.Query("start"), c.Query("end"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func topOfferingsReport(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := rep.TopOfferings(c.Request.Context(), limitParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
