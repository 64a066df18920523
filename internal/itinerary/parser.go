package itinerary

import "strings"

const (
	// OverviewLabel names locations found before any day heading.
	OverviewLabel = "行程总览"
	// GenericLabel replaces OverviewLabel when the text has no day heading at all.
	GenericLabel = "行程"
)

// Parser turns itinerary markdown into days. It holds only read-only
// configuration and is safe for concurrent use.
type Parser struct {
	synonyms []HeaderSynonym
	noise    map[string]struct{}
}

func New(cfg Config) *Parser {
	synonyms := DefaultHeaderSynonyms()
	if cfg.HeaderSynonyms != nil {
		synonyms = copySynonyms(cfg.HeaderSynonyms)
	}
	keywords := cfg.NoiseKeywords
	if keywords == nil {
		keywords = defaultNoiseKeywords
	}

	noise := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		noise[k] = struct{}{}
	}
	return &Parser{synonyms: synonyms, noise: noise}
}

var defaultParser = New(DefaultConfig())

// Parse runs the default parser over text.
func Parse(text string) []DayItinerary {
	return defaultParser.Parse(text)
}

// Parse walks text line by line. A day heading closes the open table and
// starts a new day section; a header row opens a table; a blank line closes
// it. Rows of an open table become locations of the current section.
func (p *Parser) Parse(text string) []DayItinerary {
	agg := newAggregator(OverviewLabel)

	var (
		header     HeaderMap
		inTable    bool
		sawHeading bool
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if label, ok := MatchDayHeading(line); ok {
			inTable = false
			agg.flush()
			agg.label = label
			sawHeading = true
			continue
		}

		if weather, ok := MatchWeather(line); ok {
			agg.weather = weather
			continue
		}

		if rawCost, ok := MatchDailyCost(line); ok {
			if cost, ok := ParseDailyCost(rawCost); ok {
				agg.setDailyCost(cost)
			}
			continue
		}

		if IsHeaderRow(line) {
			inTable = true
			cells, _ := SplitCells(line)
			header = p.MapHeader(cells)
			continue
		}

		if !inTable {
			continue
		}

		switch {
		case IsSeparatorRow(line):
		case strings.HasPrefix(line, "|"):
			if loc, ok := p.ExtractRow(line, header, len(agg.pending)); ok {
				agg.add(loc)
			}
		case line == "":
			inTable = false
			agg.flush()
		}
	}
	agg.flush()

	days := agg.result()
	if !sawHeading {
		for i := range days {
			days[i].Day = GenericLabel
		}
	}
	return days
}
