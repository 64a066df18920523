package utils

import "time"

// China Standard Time, used when a client sends no or an unknown timezone.
var cstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Shanghai"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// LoadLocationOr resolves an IANA zone name, falling back to fallback and
// then to China Standard Time.
func LoadLocationOr(name, fallback string) *time.Location {
	for _, n := range []string{name, fallback} {
		if n == "" {
			continue
		}
		if loc, err := time.LoadLocation(n); err == nil {
			return loc
		}
	}
	return cstLoc
}

var weekdaysZH = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// FormatPromptTime renders t the way the travel planner prompt expects,
// e.g. "2025年10月17日 星期五 14:05".
func FormatPromptTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = cstLoc
	}
	t = t.In(loc)
	return t.Format("2006年01月02日 ") + weekdaysZH[t.Weekday()] + t.Format(" 15:04")
}

func FromUnixSeconds(t int64, loc *time.Location) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	if loc == nil {
		loc = cstLoc
	}
	return time.Unix(t, 0).In(loc)
}
