package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripmate/internal/itinerary"
	"tripmate/internal/models/response_models"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

// AmapPOI is a place returned by the Amap keyword search.
type AmapPOI struct {
	Name    string
	Address string
	Type    string
}

type AmapClientInterface interface {
	// Geocode returns nil, nil when Amap knows no location for the address.
	Geocode(ctx context.Context, address, city string) (*response_models.GeocodeResult, error)
	WeatherForecast(ctx context.Context, city string) (string, error)
	SearchPOIs(ctx context.Context, city, keyword string, limit int) ([]AmapPOI, error)
	StaticMapURL(locations []itinerary.Location, opts StaticMapOptions) string
}

type StaticMapOptions struct {
	Width  int
	Height int
	Zoom   int
}

var DefaultStaticMapOptions = StaticMapOptions{Width: 800, Height: 600, Zoom: 13}

// AmapClient calls the Amap (Gaode) REST v3 web service.
type AmapClient struct {
	HTTP     *http.Client
	Key      string
	BaseURL  string
	Cache    mem.Store[response_models.GeocodeResult]
	CacheTTL time.Duration
}

func NewAmapClient(key, baseURL string, cache mem.Store[response_models.GeocodeResult], ttl time.Duration) *AmapClient {
	if baseURL == "" {
		baseURL = "https://restapi.amap.com"
	}
	return &AmapClient{
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		Key:      key,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Cache:    cache,
		CacheTTL: ttl,
	}
}

// amapString decodes Amap fields that are a string when set and an empty
// array when not.
type amapString string

func (s *amapString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = amapString(v)
		return nil
	}
	*s = ""
	return nil
}

type amapStatus struct {
	Status string `json:"status"`
	Info   string `json:"info"`
}

func (s amapStatus) ok() bool { return s.Status == "1" }

func (c *AmapClient) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("key", c.Key)
	q.Set("output", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("amap http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("amap bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("amap decode: %w", err)
	}
	return nil
}

func geocodeCacheKey(address, city string) string {
	return city + "|" + address
}

func (c *AmapClient) Geocode(ctx context.Context, address, city string) (*response_models.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}

	key := geocodeCacheKey(address, city)
	if c.Cache != nil {
		if hit, ok := c.Cache.Get(key); ok {
			return &hit, nil
		}
	}

	q := url.Values{}
	q.Set("address", address)
	if city != "" {
		q.Set("city", city)
	}

	var payload struct {
		amapStatus
		Geocodes []struct {
			FormattedAddress amapString `json:"formatted_address"`
			Adcode           amapString `json:"adcode"`
			Location         amapString `json:"location"`
		} `json:"geocodes"`
	}
	if err := c.get(ctx, "/v3/geocode/geo", q, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGeocodeFailed, err)
	}
	if !payload.ok() {
		return nil, fmt.Errorf("%w: %s", utils.ErrGeocodeFailed, payload.Info)
	}
	if len(payload.Geocodes) == 0 {
		return nil, nil
	}

	g := payload.Geocodes[0]
	lng, lat, ok := parseLngLat(string(g.Location))
	if !ok {
		return nil, nil
	}
	result := response_models.GeocodeResult{
		Lat:              lat,
		Lng:              lng,
		FormattedAddress: string(g.FormattedAddress),
		Adcode:           string(g.Adcode),
	}
	if c.Cache != nil {
		c.Cache.Set(key, result, c.CacheTTL)
	}
	return &result, nil
}

// parseLngLat reads Amap's "lng,lat" coordinate string.
func parseLngLat(s string) (float64, float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lng, lat, true
}

var weekdayNames = map[string]string{
	"1": "周一", "2": "周二", "3": "周三", "4": "周四", "5": "周五", "6": "周六", "7": "周日",
}

// WeatherForecast returns a short multi-line forecast for city, or "" when
// Amap has none.
func (c *AmapClient) WeatherForecast(ctx context.Context, city string) (string, error) {
	loc, err := c.Geocode(ctx, city, "")
	if err != nil {
		return "", err
	}
	if loc == nil || loc.Adcode == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("city", loc.Adcode)
	q.Set("extensions", "all")

	var payload struct {
		amapStatus
		Forecasts []struct {
			City  string `json:"city"`
			Casts []struct {
				Date         string `json:"date"`
				Week         string `json:"week"`
				DayWeather   string `json:"dayweather"`
				NightWeather string `json:"nightweather"`
				DayTemp      string `json:"daytemp"`
				NightTemp    string `json:"nighttemp"`
			} `json:"casts"`
		} `json:"forecasts"`
	}
	if err := c.get(ctx, "/v3/weather/weatherInfo", q, &payload); err != nil {
		return "", err
	}
	if !payload.ok() {
		return "", fmt.Errorf("amap weather: %s", payload.Info)
	}
	if len(payload.Forecasts) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, cast := range payload.Forecasts[0].Casts {
		fmt.Fprintf(&b, "- %s %s：白天%s %s°C，夜间%s %s°C\n",
			cast.Date, weekdayNames[cast.Week],
			cast.DayWeather, cast.DayTemp, cast.NightWeather, cast.NightTemp)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (c *AmapClient) SearchPOIs(ctx context.Context, city, keyword string, limit int) ([]AmapPOI, error) {
	q := url.Values{}
	q.Set("keywords", keyword)
	q.Set("city", city)
	q.Set("citylimit", "true")
	q.Set("offset", strconv.Itoa(limit))
	q.Set("page", "1")

	var payload struct {
		amapStatus
		Pois []struct {
			Name    amapString `json:"name"`
			Address amapString `json:"address"`
			Type    amapString `json:"type"`
		} `json:"pois"`
	}
	if err := c.get(ctx, "/v3/place/text", q, &payload); err != nil {
		return nil, err
	}
	if !payload.ok() {
		return nil, fmt.Errorf("amap place search: %s", payload.Info)
	}

	out := make([]AmapPOI, 0, len(payload.Pois))
	for _, p := range payload.Pois {
		if len(out) == limit {
			break
		}
		out = append(out, AmapPOI{Name: string(p.Name), Address: string(p.Address), Type: string(p.Type)})
	}
	return out, nil
}

const markerLabels = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// StaticMapURL builds an Amap static map link with one labelled marker per
// geocoded location. Locations without coordinates are skipped.
func (c *AmapClient) StaticMapURL(locations []itinerary.Location, opts StaticMapOptions) string {
	markers := make([]string, 0, len(locations))
	for _, loc := range locations {
		if !loc.HasCoordinates() || len(markers) == len(markerLabels) {
			continue
		}
		label := markerLabels[len(markers) : len(markers)+1]
		markers = append(markers, fmt.Sprintf("mid,0xFF0000,%s:%.6f,%.6f", label, *loc.Lng, *loc.Lat))
	}

	q := url.Values{}
	q.Set("key", c.Key)
	q.Set("size", fmt.Sprintf("%d*%d", opts.Width, opts.Height))
	q.Set("zoom", strconv.Itoa(opts.Zoom))
	if len(markers) > 0 {
		q.Set("markers", strings.Join(markers, "|"))
	}
	return c.BaseURL + "/v3/staticmap?" + q.Encode()
}
