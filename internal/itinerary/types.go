package itinerary

type LocationType string

const (
	TypeAttraction LocationType = "attraction"
	TypeRestaurant LocationType = "restaurant"
	TypeHotel      LocationType = "hotel"
)

type Transportation struct {
	NextLocation string `json:"nextLocation,omitempty"`
	Method       string `json:"method,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Cost         string `json:"cost,omitempty"`
}

// Location is one row of a day table. Name and Address are always set;
// Lat and Lng are filled later by geocoding.
type Location struct {
	Order          int             `json:"order"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Lat            *float64        `json:"lat,omitempty"`
	Lng            *float64        `json:"lng,omitempty"`
	Type           LocationType    `json:"type"`
	Time           string          `json:"time,omitempty"`
	Duration       string          `json:"duration,omitempty"`
	Cost           string          `json:"cost,omitempty"`
	Description    string          `json:"description,omitempty"`
	Highlights     []string        `json:"highlights"`
	Food           []string        `json:"food"`
	Transportation *Transportation `json:"transportation,omitempty"`
}

func (l *Location) SetCoordinates(lat, lng float64) {
	l.Lat = &lat
	l.Lng = &lng
}

func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Lng != nil
}

// DayItinerary groups the locations found under one day label.
type DayItinerary struct {
	Day       string     `json:"day"`
	Locations []Location `json:"locations"`
	Weather   string     `json:"weather,omitempty"`
	DailyCost *int       `json:"dailyCost,omitempty"`
}

// CountLocations returns the number of locations across all days.
func CountLocations(days []DayItinerary) int {
	n := 0
	for _, d := range days {
		n += len(d.Locations)
	}
	return n
}
