package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/models"
	"tourgate/services/resolver"
	"tourgate/utils"
)

func listBookings(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.Bookings(c.Request.Context(), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func getBooking(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := svc.BookingByID(c.Request.Context(), c.Param("id"), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if booking == nil {
			notFound(c, "booking")
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

func bookingsByTour(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.BookingsByTour(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func bookingsByUser(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.BookingsByUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func bookingsByStatus(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.BookingsByStatus(c.Request.Context(), c.Param("status"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func bookingsByRange(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := c.Query("start")
		end := c.Query("end")
		if start == "" || end == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid range", "start and end are required")
			return
		}
		bookings, err := svc.BookingsByRange(c.Request.Context(), start, end)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func createBooking(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		booking, err := svc.CreateBooking(c.Request.Context(), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

func updateBooking(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		booking, err := svc.UpdateBooking(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

func cancelBooking(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reason string `json:"reason"`
		}
		// The reason body is optional.
		_ = c.ShouldBindJSON(&input)
		booking, err := svc.CancelBooking(c.Request.Context(), c.Param("id"), input.Reason)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

func confirmBooking(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := svc.ConfirmBooking(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}
