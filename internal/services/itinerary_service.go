package services

import (
	"context"
	"fmt"

	"tripmate/internal/itinerary"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

var ErrIncompleteItinerary = fmt.Errorf("%w: itinerary table is not complete yet", utils.ErrInvalidInput)

type ItineraryServiceInterface interface {
	Parse(ctx context.Context, req request_models.ParseItineraryRequest) ([]itinerary.DayItinerary, error)
}

type ItineraryService struct {
	parser     *itinerary.Parser
	mapService MapServiceInterface
}

func NewItineraryService(parser *itinerary.Parser, mapService MapServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{parser: parser, mapService: mapService}
}

func (s *ItineraryService) Parse(ctx context.Context, req request_models.ParseItineraryRequest) ([]itinerary.DayItinerary, error) {
	if req.Strict && !itinerary.IsComplete(req.Content) {
		return nil, ErrIncompleteItinerary
	}

	days := s.parser.Parse(req.Content)
	if !req.Geocode || itinerary.CountLocations(days) == 0 {
		return days, nil
	}
	return s.mapService.EnrichItinerary(ctx, days, req.City)
}
