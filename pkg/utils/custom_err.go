package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrConversationNotFound   = errors.New("conversation not found")
	ErrTravelPlanNotFound     = errors.New("travel plan not found")
	ErrDatabaseError          = errors.New("database error")
	ErrGeocodeFailed          = errors.New("geocode failed")
	ErrNoGeocodedLocations    = errors.New("no location could be geocoded")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrLLMUnauthorized        = errors.New("LLM API key is invalid")
	ErrLLMRateLimited         = errors.New("LLM rate limit exceeded")
)
