package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripmate/internal/itinerary"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type MapServiceInterface interface {
	GeocodeAddress(ctx context.Context, address, city string) (*response_models.GeocodeResult, error)
	GenerateMapData(ctx context.Context, locations []request_models.MapLocationInput, city string) (*response_models.MapData, error)
	// EnrichItinerary geocodes every location and drops the ones that
	// could not be placed. Days are kept even when they end up empty.
	EnrichItinerary(ctx context.Context, days []itinerary.DayItinerary, city string) ([]itinerary.DayItinerary, error)
}

type MapService struct {
	amap        AmapClientInterface
	concurrency int
	log         *zap.Logger
}

func NewMapService(amap AmapClientInterface, concurrency int, log *zap.Logger) MapServiceInterface {
	if concurrency < 1 {
		concurrency = 1
	}
	return &MapService{amap: amap, concurrency: concurrency, log: log}
}

func (m *MapService) GeocodeAddress(ctx context.Context, address, city string) (*response_models.GeocodeResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, utils.ErrInvalidInput
	}
	return m.amap.Geocode(ctx, address, city)
}

// locate geocodes by address first and falls back to the place name.
func (m *MapService) locate(ctx context.Context, name, address, city string) (*response_models.GeocodeResult, error) {
	res, err := m.amap.Geocode(ctx, address, city)
	if err == nil && res != nil {
		return res, nil
	}
	if name == "" || name == address {
		return res, err
	}
	return m.amap.Geocode(ctx, name, city)
}

// geocodeAll resolves every location with at most m.concurrency requests in
// flight. Failed lookups are logged and leave a nil slot.
func (m *MapService) geocodeAll(ctx context.Context, locs []itinerary.Location, city string) ([]*response_models.GeocodeResult, error) {
	results := make([]*response_models.GeocodeResult, len(locs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i := range locs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := m.locate(gctx, locs[i].Name, locs[i].Address, city)
			if err != nil {
				m.log.Warn("geocode failed",
					zap.String("name", locs[i].Name),
					zap.String("address", locs[i].Address),
					zap.Error(err))
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (m *MapService) GenerateMapData(ctx context.Context, inputs []request_models.MapLocationInput, city string) (*response_models.MapData, error) {
	if len(inputs) == 0 {
		return nil, utils.ErrInvalidInput
	}

	locs := make([]itinerary.Location, len(inputs))
	for i, in := range inputs {
		locs[i] = itinerary.Location{
			Order:      i + 1,
			Name:       in.Name,
			Address:    in.Address,
			Type:       itinerary.TypeAttraction,
			Highlights: []string{},
			Food:       []string{},
		}
	}

	results, err := m.geocodeAll(ctx, locs, city)
	if err != nil {
		return nil, err
	}

	placed := make([]itinerary.Location, 0, len(locs))
	for i, res := range results {
		if res == nil {
			continue
		}
		loc := locs[i]
		loc.SetCoordinates(res.Lat, res.Lng)
		if loc.Address == "" {
			loc.Address = res.FormattedAddress
		}
		placed = append(placed, loc)
	}
	if len(placed) == 0 {
		return nil, utils.ErrNoGeocodedLocations
	}

	m.log.Info("map data generated", zap.Int("requested", len(inputs)), zap.Int("placed", len(placed)))
	return &response_models.MapData{
		Locations:   placed,
		MapImageURL: m.amap.StaticMapURL(placed, DefaultStaticMapOptions),
	}, nil
}

func (m *MapService) EnrichItinerary(ctx context.Context, days []itinerary.DayItinerary, city string) ([]itinerary.DayItinerary, error) {
	var flat []itinerary.Location
	for _, d := range days {
		flat = append(flat, d.Locations...)
	}

	results, err := m.geocodeAll(ctx, flat, city)
	if err != nil {
		return nil, fmt.Errorf("enrich itinerary: %w", err)
	}

	out := make([]itinerary.DayItinerary, len(days))
	idx := 0
	for i, d := range days {
		out[i] = d
		out[i].Locations = make([]itinerary.Location, 0, len(d.Locations))
		for _, loc := range d.Locations {
			if res := results[idx]; res != nil {
				loc.SetCoordinates(res.Lat, res.Lng)
				out[i].Locations = append(out[i].Locations, loc)
			}
			idx++
		}
	}
	return out, nil
}
