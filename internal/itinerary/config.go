package itinerary

// Field is a logical column of an itinerary table.
type Field int

const (
	FieldOrder Field = iota
	FieldTime
	FieldName
	FieldAddress
	FieldType
	FieldDuration
	FieldCost
	FieldDescription
	FieldHighlights
	FieldFood
	FieldTransportation
	fieldCount
)

var fieldNames = [fieldCount]string{
	"order", "time", "name", "address", "type", "duration",
	"cost", "description", "highlights", "food", "transportation",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// HeaderSynonym lists the header substrings that identify a field.
type HeaderSynonym struct {
	Field      Field
	Substrings []string
}

// Order matters: a header cell maps to the first synonym it contains.
var defaultHeaderSynonyms = []HeaderSynonym{
	{FieldOrder, []string{"序号"}},
	{FieldTime, []string{"时间"}},
	{FieldName, []string{"名称", "地点"}},
	{FieldAddress, []string{"地址", "位置"}},
	{FieldType, []string{"类型"}},
	{FieldDuration, []string{"时长", "建议时长"}},
	{FieldCost, []string{"费用", "花费"}},
	{FieldDescription, []string{"描述", "备注"}},
	{FieldHighlights, []string{"推荐", "亮点"}},
	{FieldFood, []string{"美食", "餐饮"}},
	{FieldTransportation, []string{"交通"}},
}

// Cell values that are filler rather than a place name.
var defaultNoiseKeywords = []string{
	"未找到", "暂无", "待定", "无", "推荐", "建议时长", "费用",
}

// Columns used when the header did not name a field.
var fallbackColumns = map[Field]int{
	FieldOrder:   0,
	FieldTime:    1,
	FieldType:    2,
	FieldName:    3,
	FieldAddress: 4,
}

// Config holds the tunable word lists of a Parser. A nil list means the
// default list.
type Config struct {
	HeaderSynonyms []HeaderSynonym
	NoiseKeywords  []string
}

func DefaultHeaderSynonyms() []HeaderSynonym {
	return copySynonyms(defaultHeaderSynonyms)
}

// copySynonyms deep copies in so later edits by the caller are not seen.
func copySynonyms(in []HeaderSynonym) []HeaderSynonym {
	out := make([]HeaderSynonym, len(in))
	for i, s := range in {
		out[i] = HeaderSynonym{Field: s.Field, Substrings: append([]string(nil), s.Substrings...)}
	}
	return out
}

func DefaultNoiseKeywords() []string {
	return append([]string(nil), defaultNoiseKeywords...)
}

func DefaultConfig() Config {
	return Config{
		HeaderSynonyms: DefaultHeaderSynonyms(),
		NoiseKeywords:  DefaultNoiseKeywords(),
	}
}

// WithNoiseKeywords returns a copy of c with extra noise keywords appended.
func (c Config) WithNoiseKeywords(keywords ...string) Config {
	base := c.NoiseKeywords
	if base == nil {
		base = defaultNoiseKeywords
	}
	c.NoiseKeywords = append(append([]string(nil), base...), keywords...)
	return c
}
