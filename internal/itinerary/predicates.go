package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayHeadingPattern = regexp.MustCompile(`(?i)#{2,4}\s*(第[\d一二三四五六七八九十]+天|Day\s*\d+|D\d+)`)
	weatherPattern    = regexp.MustCompile(`(?i)>\s*\*\*(?:天气|Weather)\*\*[：:]\s*(.+)`)
	dailyCostPattern  = regexp.MustCompile(`(?i)>\s*\*\*(?:今日预计花销|Daily Cost|预算|Cost)\*\*[：:]\s*(.+)`)
	durationPattern   = regexp.MustCompile(`(?i)^[\d.]+\s*(?:分钟|min|h|小时|hours?)$`)
	timeLikePattern   = regexp.MustCompile(`^[\d:：\s-]+$`)
	numericPattern    = regexp.MustCompile(`^\d+$`)
	leadingIntPattern = regexp.MustCompile(`^[+-]?\d+`)
	listSeparator     = regexp.MustCompile(`[,、，]`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
)

// MatchDayHeading returns the day label of a heading line such as
// "#### 第1天行程表" (label "第1天").
func MatchDayHeading(line string) (string, bool) {
	m := dayHeadingPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchWeather returns the text of a "> **天气**: ..." line.
func MatchWeather(line string) (string, bool) {
	m := weatherPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// MatchDailyCost returns the raw value of a "> **今日预计花销**: ..." line.
func MatchDailyCost(line string) (string, bool) {
	m := dailyCostPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ParseDailyCost keeps only the digits of raw and parses them.
// "¥1,200元" gives 1200; text without digits gives false.
func ParseDailyCost(raw string) (int, bool) {
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsHeaderRow reports whether line opens an itinerary table.
func IsHeaderRow(line string) bool {
	return strings.HasPrefix(line, "|") &&
		strings.Contains(line, "序号") &&
		(strings.Contains(line, "名称") || strings.Contains(line, "地点"))
}

func IsSeparatorRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Contains(line, "---")
}

// IsPlaceholder reports an empty cell or a lone dash.
func IsPlaceholder(s string) bool {
	return s == "" || s == "-"
}

func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsDurationLike matches cells such as "15分钟", "2h" or "1.5 hours".
func IsDurationLike(s string) bool {
	return durationPattern.MatchString(s)
}

// IsTimeLike matches cells such as "09:00" or "09:00-11:30".
func IsTimeLike(s string) bool {
	return strings.Contains(s, ":") && timeLikePattern.MatchString(s)
}

// ClassifyType maps the free text of a type cell to a LocationType.
func ClassifyType(s string) LocationType {
	switch {
	case strings.Contains(s, "餐厅"), strings.Contains(s, "美食"):
		return TypeRestaurant
	case strings.Contains(s, "酒店"), strings.Contains(s, "住宿"):
		return TypeHotel
	default:
		return TypeAttraction
	}
}

// SplitList splits a list cell on ASCII and CJK commas. Placeholders give
// an empty, non-nil slice.
func SplitList(s string) []string {
	if IsPlaceholder(s) {
		return []string{}
	}
	parts := listSeparator.Split(s, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseLeadingInt reads an optionally signed integer prefix, so "3." and
// "2号" both parse.
func parseLeadingInt(s string) (int, bool) {
	m := leadingIntPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
