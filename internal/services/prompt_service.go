package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripmate/pkg/utils"
)

const (
	noWeatherInfo = "（暂无具体天气信息，请按一般季节性气候规划）"
	noPOIInfo     = "（暂无第三方推荐数据，请基于你的知识库推荐知名且真实的地点）"

	poiSuggestionLimit = 5
)

const systemPromptTemplate = `你是一位专业的旅行规划师助手，通过对话收集信息并规划行程。

## 必填信息
生成方案前必须确认以下信息，缺少时先向用户追问：
1. 出发地
2. 目的地（国家/城市）
3. 出行时间（起止日期或天数）
4. 旅行预算（人民币总额）

## 当前时间
{current_time}

## 实时天气参考
{weather_info}

## 真实地点参考数据（来自高德地图）
{poi_info}
优先使用上述参考数据中的餐厅和酒店，其余推荐也必须真实存在。

## 方案要求
1. 往返大交通：推荐真实存在的车次或航班，注明时间、耗时和预估票价。
2. 住宿指南：真实酒店名称、选择理由和参考价格。
3. 每日详细行程：每一天使用一个标题和一个表格，格式如下：

#### 第X天
> **天气**：多云转晴 18-25°C
> **今日预计花销**：¥650

| 序号 | 时间 | 类型 | 名称 | 完整地址 | 建议时长 | 费用(门票/人均) | 备注 | 推荐亮点 | 美食 | 交通(去下一站) |
|------|------|------|------|----------|----------|-----------------|------|----------|------|----------------|
| 1 | 09:00 | 景点 | 清水寺 | 京都市东山区清水1-294 | 120分钟 | ¥400 | 世界文化遗产 | 清水舞台、音羽瀑布 | 抹茶冰淇淋 | 步行15分钟 |

表格要求：
- 只记录目的地城市内部的游玩、餐饮、住宿和市内交通，不要把往返大交通写成表格行。
- 地址必须完整（城市+区+街道+门牌号），用于地图定位。
- 类型只能是 景点、餐厅 或 酒店。
- 遇到雨雪天气尽量安排室内活动，并在说明中备注。
4. 预算明细：交通、住宿、餐饮、门票的预估总价。

## 禁忌
- 严禁臆造航班号、车次、酒店或地址。
- 不确定的数据标注"需查询实时数据"。`

// BuildSystemPrompt fills the planner prompt placeholders. Empty weather or
// POI sections are replaced with a neutral hint.
func BuildSystemPrompt(now, weatherInfo, poiInfo string) string {
	if weatherInfo == "" {
		weatherInfo = noWeatherInfo
	}
	if poiInfo == "" {
		poiInfo = noPOIInfo
	}
	return strings.NewReplacer(
		"{current_time}", now,
		"{weather_info}", weatherInfo,
		"{poi_info}", poiInfo,
	).Replace(systemPromptTemplate)
}

var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:去|玩|游览|到)([\x{4e00}-\x{9fa5}]{2,5})`),
}

// ExtractDestination returns the two to five CJK characters following the
// first travel verb (去, 玩, 游览, 到), or "" when there is none. The match is
// greedy, so "去杭州玩" yields "杭州玩".
func ExtractDestination(text string) string {
	for _, re := range destinationPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

type PromptServiceInterface interface {
	// SystemPrompt builds the planner prompt for a conversation whose
	// latest user message is lastUserMessage.
	SystemPrompt(ctx context.Context, lastUserMessage string, loc *time.Location) string
}

type PromptService struct {
	amap AmapClientInterface
	log  *zap.Logger
	now  func() time.Time
}

func NewPromptService(amap AmapClientInterface, log *zap.Logger) PromptServiceInterface {
	return &PromptService{amap: amap, log: log, now: time.Now}
}

func (p *PromptService) SystemPrompt(ctx context.Context, lastUserMessage string, loc *time.Location) string {
	now := utils.FormatPromptTime(p.now(), loc)

	city := ExtractDestination(lastUserMessage)
	if city == "" {
		return BuildSystemPrompt(now, "", "")
	}

	p.log.Info("destination detected, fetching weather and POIs", zap.String("city", city))
	weather, pois := p.destinationContext(ctx, city)

	weatherInfo := ""
	if weather != "" {
		weatherInfo = fmt.Sprintf("**当前目的地(%s)天气参考**：\n%s\n请根据天气情况调整行程安排。", city, weather)
	}
	return BuildSystemPrompt(now, weatherInfo, pois)
}

// destinationContext fetches the forecast and POI suggestions concurrently.
// A failing source degrades to an empty string.
func (p *PromptService) destinationContext(ctx context.Context, city string) (string, string) {
	var weather, restaurants, hotels string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := p.amap.WeatherForecast(gctx, city)
		if err != nil {
			p.log.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
			return nil
		}
		weather = w
		return nil
	})
	g.Go(func() error {
		restaurants = p.poiSection(gctx, city, "餐厅", "推荐餐厅")
		return nil
	})
	g.Go(func() error {
		hotels = p.poiSection(gctx, city, "酒店", "推荐酒店")
		return nil
	})
	_ = g.Wait()

	return weather, strings.TrimSpace(restaurants + "\n" + hotels)
}

func (p *PromptService) poiSection(ctx context.Context, city, keyword, title string) string {
	pois, err := p.amap.SearchPOIs(ctx, city, keyword, poiSuggestionLimit)
	if err != nil {
		p.log.Warn("poi search failed", zap.String("city", city), zap.String("keyword", keyword), zap.Error(err))
		return ""
	}
	if len(pois) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", title)
	for _, poi := range pois {
		if poi.Address != "" {
			fmt.Fprintf(&b, "- %s（%s）\n", poi.Name, poi.Address)
		} else {
			fmt.Fprintf(&b, "- %s\n", poi.Name)
		}
	}
	return b.String()
}
