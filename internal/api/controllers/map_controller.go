package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type MapController struct {
	mapService services.MapServiceInterface
}

func NewMapController(mapService services.MapServiceInterface) *MapController {
	return &MapController{mapService: mapService}
}

// Geocode godoc
// @Summary Geocode one address
// @Description data is null when the address cannot be located
// @Tags Map
// @Produce json
// @Param address query string true "Address"
// @Param city query string false "City hint"
// @Success 200 {object} response_models.GeocodeResult
// @Router /api/map/geocode [get]
func (m *MapController) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.RespondError(c, http.StatusBadRequest, "address is required")
		return
	}

	res, err := m.mapService.GeocodeAddress(c.Request.Context(), address, c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if res == nil {
		utils.RespondSuccess(c, nil, "Address not found")
		return
	}
	utils.RespondSuccess(c, res, "Address geocoded successfully")
}

// GenerateMap godoc
// @Summary Geocode locations and build a static map
// @Tags Map
// @Accept json
// @Produce json
// @Param request body request_models.GenerateMapRequest true "Locations"
// @Success 200 {object} response_models.MapData
// @Failure 422 {object} utils.APIResponse
// @Router /api/map/generate [post]
func (m *MapController) GenerateMap(c *gin.Context) {
	var req request_models.GenerateMapRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Locations) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "locations are required")
		return
	}

	data, err := m.mapService.GenerateMapData(c.Request.Context(), req.Locations, req.City)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Map generated successfully")
}
