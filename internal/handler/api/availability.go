package api

import (
	"errors"
	"net/http"

	"tablebook/internal/domain/booking"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Available dates
// @Description List the dates currently open for reservation at a restaurant
// @Tags availability
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param area_id query string false "Reservation area ID"
// @Success 200 {object} resdto.AvailableDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/availability/dates [get]
func (h *AvailabilityHandler) GetAvailableDates(c *gin.Context) {
	restaurantID, areaID, ok := h.parseTarget(c)
	if !ok {
		return
	}

	dates, err := h.availabilityQueries.AvailableDates(c.Request.Context(), restaurantID, areaID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailableDatesResponse{Dates: dates})
}

// @Summary Available time slots
// @Description List the bookable times for a restaurant on a given date
// @Tags availability
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param area_id query string false "Reservation area ID"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/availability/slots [get]
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	restaurantID, areaID, ok := h.parseTarget(c)
	if !ok {
		return
	}

	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availabilityQueries.AvailableSlots(c.Request.Context(), restaurantID, areaID, date)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailableSlotsResponse{Date: date.String(), Slots: slots})
}

// @Summary Party size options
// @Description List the selectable party sizes for a restaurant
// @Tags availability
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param area_id query string false "Reservation area ID"
// @Success 200 {object} resdto.PartySizeOptionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/availability/party-sizes [get]
func (h *AvailabilityHandler) GetPartySizeOptions(c *gin.Context) {
	restaurantID, areaID, ok := h.parseTarget(c)
	if !ok {
		return
	}

	options, err := h.availabilityQueries.PartySizeOptions(c.Request.Context(), restaurantID, areaID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPartySizeOptions(options))
}

func (h *AvailabilityHandler) parseTarget(c *gin.Context) (uuid.UUID, *uuid.UUID, bool) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return uuid.Nil, nil, false
	}

	var areaID *uuid.UUID
	if raw := c.Query("area_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid area ID format",
			})
			return uuid.Nil, nil, false
		}
		areaID = &id
	}

	return restaurantID, areaID, true
}

func (h *AvailabilityHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Restaurant not found",
		})
	case errors.Is(err, queries.ErrAreaNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation area not found",
		})
	case errors.Is(err, booking.ErrInvalidConfiguration):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Reservation rules are misconfigured",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
