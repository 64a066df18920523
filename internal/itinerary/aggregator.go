package itinerary

// aggregator collects the locations of the day section being read and
// folds them into the ordered day list on flush.
type aggregator struct {
	days  []DayItinerary
	index map[string]int

	label     string
	pending   []Location
	weather   string
	dailyCost *int
}

func newAggregator(label string) *aggregator {
	return &aggregator{
		index: make(map[string]int),
		label: label,
	}
}

func (a *aggregator) add(loc Location) {
	a.pending = append(a.pending, loc)
}

func (a *aggregator) setDailyCost(n int) {
	a.dailyCost = &n
}

// flush moves pending locations into the day named by the current label,
// merging with an existing day of the same label. Weather and cost only
// fill a merged day when it has none. The pending buffer and metadata are
// cleared on every flush, even when there was nothing to move.
func (a *aggregator) flush() {
	defer a.reset()
	if len(a.pending) == 0 {
		return
	}

	if i, ok := a.index[a.label]; ok {
		day := &a.days[i]
		day.Locations = append(day.Locations, a.pending...)
		if day.Weather == "" && a.weather != "" {
			day.Weather = a.weather
		}
		if costUnset(day.DailyCost) && !costUnset(a.dailyCost) {
			day.DailyCost = a.dailyCost
		}
		return
	}

	a.index[a.label] = len(a.days)
	a.days = append(a.days, DayItinerary{
		Day:       a.label,
		Locations: a.pending,
		Weather:   a.weather,
		DailyCost: a.dailyCost,
	})
}

func (a *aggregator) reset() {
	a.pending = nil
	a.weather = ""
	a.dailyCost = nil
}

// A zero cost counts as unset when merging.
func costUnset(c *int) bool {
	return c == nil || *c == 0
}

func (a *aggregator) result() []DayItinerary {
	if a.days == nil {
		return []DayItinerary{}
	}
	return a.days
}
