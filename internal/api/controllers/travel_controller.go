package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TravelController struct {
	travelService services.TravelServiceInterface
}

func NewTravelController(travelService services.TravelServiceInterface) *TravelController {
	return &TravelController{travelService: travelService}
}

// ListPlans godoc
// @Summary List travel plans, newest first
// @Tags Travel
// @Produce json
// @Success 200 {array} response_models.TravelPlanResponse
// @Router /api/travel/plans [get]
func (t *TravelController) ListPlans(c *gin.Context) {
	plans, err := t.travelService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Travel plans fetched successfully")
}

// GetPlan godoc
// @Summary Get a travel plan
// @Tags Travel
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response_models.TravelPlanResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/travel/plans/{id} [get]
func (t *TravelController) GetPlan(c *gin.Context) {
	plan, err := t.travelService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan fetched successfully")
}

// GetPlanMarkdown godoc
// @Summary Export a travel plan as markdown tables
// @Tags Travel
// @Produce text/markdown
// @Param id path string true "Plan ID"
// @Router /api/travel/plans/{id}/markdown [get]
func (t *TravelController) GetPlanMarkdown(c *gin.Context) {
	md, err := t.travelService.GetPlanMarkdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

// DeletePlan godoc
// @Summary Delete a travel plan
// @Tags Travel
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /api/travel/plans/{id} [delete]
func (t *TravelController) DeletePlan(c *gin.Context) {
	if err := t.travelService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
