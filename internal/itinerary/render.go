package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

var canonicalHeader = []string{
	"序号", "时间", "类型", "名称", "地址", "建议时长", "费用", "描述", "亮点", "美食", "交通",
}

var typeLabels = map[LocationType]string{
	TypeAttraction: "景点",
	TypeRestaurant: "餐厅",
	TypeHotel:      "酒店",
}

var cellEscaper = strings.NewReplacer("|", "｜", "\r\n", " ", "\n", " ")

// Render writes days back as markdown in the layout Parse reads: a day
// heading, optional weather and cost lines, and one table per day.
func Render(days []DayItinerary) string {
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "#### %s\n\n", day.Day)
		if day.Weather != "" {
			fmt.Fprintf(&b, "> **天气**：%s\n", day.Weather)
		}
		if day.DailyCost != nil {
			fmt.Fprintf(&b, "> **今日预计花销**：¥%d\n", *day.DailyCost)
		}
		if day.Weather != "" || day.DailyCost != nil {
			b.WriteString("\n")
		}

		writeRow(&b, canonicalHeader)
		b.WriteString("|" + strings.Repeat("------|", len(canonicalHeader)) + "\n")

		for _, loc := range day.Locations {
			writeRow(&b, locationCells(loc))
		}
	}
	return b.String()
}

func locationCells(loc Location) []string {
	transport := ""
	if loc.Transportation != nil {
		transport = loc.Transportation.Method
	}
	typeLabel, ok := typeLabels[loc.Type]
	if !ok {
		typeLabel = typeLabels[TypeAttraction]
	}
	return []string{
		strconv.Itoa(loc.Order),
		loc.Time,
		typeLabel,
		loc.Name,
		loc.Address,
		loc.Duration,
		loc.Cost,
		loc.Description,
		strings.Join(loc.Highlights, "、"),
		strings.Join(loc.Food, "、"),
		transport,
	}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(cellEscaper.Replace(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
