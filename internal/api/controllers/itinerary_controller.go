package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// Parse godoc
// @Summary Parse markdown itinerary tables
// @Description Turns the day tables of a planner reply into structured days. strict rejects text without a complete table, geocode adds coordinates and drops unplaceable rows.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ParseItineraryRequest true "Markdown"
// @Success 200 {array} itinerary.DayItinerary
// @Router /api/itinerary/parse [post]
func (i *ItineraryController) Parse(c *gin.Context) {
	var req request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "content is required")
		return
	}

	days, err := i.itineraryService.Parse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, days, "Itinerary parsed successfully")
}
