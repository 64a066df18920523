// Package itinerary extracts structured day-by-day itineraries from the
// markdown an LLM writes when asked for a travel plan.
//
// The input has no fixed schema. The parser scans line by line, looks for
// day headings such as "#### 第1天" or "### Day 2", finds markdown tables
// whose header row names an index column (序号) and a place column
// (名称/地点), and turns each data row into a Location. Rows that look like
// noise (placeholders, durations, times, filler keywords) are dropped.
// Locations are grouped under their day label; two sections sharing a
// label are merged.
//
// Parsing never fails. Anything that cannot be understood is left out of
// the result.
package itinerary
