package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("load: %w", ErrConversationNotFound), http.StatusNotFound},
		{ErrTravelPlanNotFound, http.StatusNotFound},
		{ErrNoGeocodedLocations, http.StatusUnprocessableEntity},
		{ErrGeocodeFailed, http.StatusBadGateway},
		{ErrLLMRateLimited, http.StatusTooManyRequests},
		{fmt.Errorf("qwen: %w", ErrUnexpectedBehaviorOfAI), http.StatusBadGateway},
		{ErrDatabaseError, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.want, body.Code)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestRespondSuccess_WithoutTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, []string{}, "ok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"message":"ok","data":[]}`, w.Body.String())
}
