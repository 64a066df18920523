package itinerary

// IsValidName reports whether name looks like a place rather than a
// placeholder, a number, a duration, a time or a filler keyword.
func (p *Parser) IsValidName(name string) bool {
	if IsPlaceholder(name) || IsNumeric(name) || IsDurationLike(name) || IsTimeLike(name) {
		return false
	}
	_, noise := p.noise[name]
	return !noise
}

// ExtractRow turns one data row into a Location. pending is the number of
// locations already collected for the current day and drives the order
// fallback. Malformed and noise rows return false.
func (p *Parser) ExtractRow(line string, header HeaderMap, pending int) (Location, bool) {
	cells, ok := SplitCells(line)
	if !ok {
		return Location{}, false
	}

	name := header.Value(cells, FieldName)
	if !p.IsValidName(name) {
		return Location{}, false
	}

	loc := Location{
		Order:       pending + 1,
		Name:        name,
		Address:     header.Value(cells, FieldAddress),
		Type:        ClassifyType(header.Value(cells, FieldType)),
		Time:        header.Value(cells, FieldTime),
		Duration:    header.Value(cells, FieldDuration),
		Cost:        header.Value(cells, FieldCost),
		Description: header.Value(cells, FieldDescription),
		Highlights:  SplitList(header.Value(cells, FieldHighlights)),
		Food:        SplitList(header.Value(cells, FieldFood)),
	}
	if n, ok := parseLeadingInt(header.Value(cells, FieldOrder)); ok && n != 0 {
		loc.Order = n
	}
	if IsPlaceholder(loc.Address) {
		loc.Address = name
	}
	if method := header.Value(cells, FieldTransportation); !IsPlaceholder(method) {
		loc.Transportation = &Transportation{Method: method}
	}
	return loc, true
}
