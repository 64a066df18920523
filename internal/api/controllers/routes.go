package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every API handler on r.
func RegisterRoutes(r *gin.Engine,
	chatController *ChatController,
	mapController *MapController,
	travelController *TravelController,
	itineraryController *ItineraryController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	chatGroup := api.Group("/chat")
	chatGroup.POST("/message", chatController.SendMessage)
	chatGroup.POST("/stream", chatController.StreamMessage)
	chatGroup.GET("/conversations", chatController.ListConversations)
	chatGroup.GET("/:id", chatController.GetConversation)
	chatGroup.DELETE("/:id", chatController.DeleteConversation)

	mapGroup := api.Group("/map")
	mapGroup.GET("/geocode", mapController.Geocode)
	mapGroup.POST("/generate", mapController.GenerateMap)

	travelGroup := api.Group("/travel")
	travelGroup.GET("/plans", travelController.ListPlans)
	travelGroup.GET("/plans/:id", travelController.GetPlan)
	travelGroup.GET("/plans/:id/markdown", travelController.GetPlanMarkdown)
	travelGroup.DELETE("/plans/:id", travelController.DeletePlan)

	api.POST("/itinerary/parse", itineraryController.Parse)
}
