package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// ErrorStatus maps service errors to the HTTP status and the message shown to
// clients.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, ErrConversationNotFound):
		return http.StatusNotFound, "Conversation not found"
	case errors.Is(err, ErrTravelPlanNotFound):
		return http.StatusNotFound, "Travel plan not found"
	case errors.Is(err, ErrNoGeocodedLocations):
		return http.StatusUnprocessableEntity, "No location could be geocoded"
	case errors.Is(err, ErrGeocodeFailed):
		return http.StatusBadGateway, "Geocoding service unavailable"
	case errors.Is(err, ErrLLMUnauthorized):
		return http.StatusBadGateway, "LLM API key is invalid, check the server configuration"
	case errors.Is(err, ErrLLMRateLimited):
		return http.StatusTooManyRequests, "LLM rate limit exceeded, try again later"
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		return http.StatusBadGateway, "AI service failed to respond"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := ErrorStatus(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("service error",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	RespondError(c, code, message)
}
