package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripmate/internal/itinerary"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

const completeReply = `好的，以下是杭州两日游方案。

#### 第1天
> **天气**：晴 18-25°C
> **今日预计花销**：¥300

| 序号 | 时间 | 类型 | 名称 | 完整地址 | 停留时长 | 门票/人均 | 说明 | 好玩的 | 好吃的 | 交通(去下一站) |
|------|------|------|------|----------|----------|-----------|------|--------|--------|----------------|
| 1 | 09:00 | 景点 | 西湖 | 杭州市西湖区龙井路1号 | 180分钟 | 免费 | 环湖漫步 | 断桥、苏堤 | - | 步行10分钟 |
| 2 | 12:00 | 餐厅 | 楼外楼 | 杭州市西湖区孤山路30号 | 90分钟 | ¥150 | 老字号 | - | 西湖醋鱼、东坡肉 | 打车15分钟 |

#### 第2天

| 序号 | 时间 | 类型 | 名称 | 完整地址 | 停留时长 | 门票/人均 | 说明 | 好玩的 | 好吃的 | 交通(去下一站) |
|------|------|------|------|----------|----------|-----------|------|--------|--------|----------------|
| 1 | 09:00 | 景点 | 灵隐寺 | 杭州市西湖区法云弄1号 | 150分钟 | ¥75 | 千年古刹 | 飞来峰 | 素面 | - |
`

type chatFixture struct {
	svc   ChatServiceInterface
	convs *fakeConversationRepo
	plans *fakePlanRepo
	llm   *fakeLLM
}

func newChatFixture(reply string) *chatFixture {
	plans := &fakePlanRepo{}
	convs := newFakeConversationRepo(plans)
	llm := &fakeLLM{reply: reply}
	travel := NewTravelService(plans, itinerary.New(itinerary.DefaultConfig()), zap.NewNop())
	svc := NewChatService(convs, llm, fakePrompts{}, travel, "Asia/Shanghai", zap.NewNop())
	return &chatFixture{svc: svc, convs: convs, plans: plans, llm: llm}
}

func strPtr(s string) *string { return &s }

func TestChatService_SendMessage_NewConversation(t *testing.T) {
	f := newChatFixture("请问您从哪里出发？")
	ctx := context.Background()

	reply, err := f.svc.SendMessage(ctx, nil, request_models.SendMessageRequest{Content: "  我想去杭州玩两天，预算三千元左右吧  "})
	require.NoError(t, err)

	assert.NotEmpty(t, reply.ConversationID)
	assert.Equal(t, utils.RoleAssistant, reply.Message.Role)
	assert.Equal(t, "请问您从哪里出发？", reply.Message.Content)
	assert.Nil(t, reply.Itinerary)

	conv, _ := f.convs.GetByID(ctx, reply.ConversationID)
	require.NotNil(t, conv)
	assert.Nil(t, conv.UserID)
	assert.Equal(t, "我想去杭州玩两天，预算三千元左右吧", conv.Title)

	msgs, _ := f.convs.ListMessages(ctx, reply.ConversationID)
	require.Len(t, msgs, 2)
	assert.Equal(t, utils.RoleUser, msgs[0].Role)
	assert.Equal(t, utils.RoleAssistant, msgs[1].Role)

	require.Len(t, f.llm.received, 1)
	sent := f.llm.received[0]
	require.Len(t, sent, 2)
	assert.Equal(t, utils.RoleSystem, sent[0].Role)
	assert.Equal(t, "system:我想去杭州玩两天，预算三千元左右吧", sent[0].Content)
	assert.Empty(t, f.plans.plans)
}

func TestChatService_SendMessage_ContinuesWithHistoryAndSavesPlan(t *testing.T) {
	f := newChatFixture("从哪里出发？")
	ctx := context.Background()
	user := strPtr("u1")

	first, err := f.svc.SendMessage(ctx, user, request_models.SendMessageRequest{Content: "我想去杭州"})
	require.NoError(t, err)

	f.llm.reply = completeReply
	second, err := f.svc.SendMessage(ctx, user, request_models.SendMessageRequest{
		ConversationID: first.ConversationID,
		Content:        "从上海出发，两天",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	sent := f.llm.received[1]
	require.Len(t, sent, 4)
	assert.Equal(t, "我想去杭州", sent[1].Content)
	assert.Equal(t, "从哪里出发？", sent[2].Content)
	assert.Equal(t, "从上海出发，两天", sent[3].Content)

	require.Len(t, second.Itinerary, 2)
	assert.Equal(t, "第1天", second.Itinerary[0].Day)
	assert.Len(t, second.Itinerary[0].Locations, 2)
	assert.NotEmpty(t, second.TravelPlanID)

	require.Len(t, f.plans.plans, 1)
	plan := f.plans.plans[0]
	assert.Equal(t, "杭州", plan.Destination)
	assert.Equal(t, []string{"第1天", "第2天"}, []string(plan.DayLabels))
	require.NotNil(t, plan.TotalCost)
	assert.Equal(t, 300, *plan.TotalCost)
}

func TestChatService_SendMessage_Errors(t *testing.T) {
	ctx := context.Background()

	f := newChatFixture("ok")
	_, err := f.svc.SendMessage(ctx, nil, request_models.SendMessageRequest{Content: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = f.svc.SendMessage(ctx, nil, request_models.SendMessageRequest{ConversationID: "not-a-uuid", Content: "hi"})
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)

	owned, err := f.svc.SendMessage(ctx, strPtr("alice"), request_models.SendMessageRequest{Content: "hi"})
	require.NoError(t, err)
	_, err = f.svc.SendMessage(ctx, strPtr("bob"), request_models.SendMessageRequest{ConversationID: owned.ConversationID, Content: "hi"})
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)

	f.llm.err = utils.ErrLLMRateLimited
	_, err = f.svc.SendMessage(ctx, nil, request_models.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, utils.ErrLLMRateLimited)

	f.convs.failWith = errBoom
	_, err = f.svc.SendMessage(ctx, nil, request_models.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestChatService_SendMessage_PlanFailureKeepsReply(t *testing.T) {
	f := newChatFixture(completeReply)
	f.plans.failWith = errBoom

	reply, err := f.svc.SendMessage(context.Background(), nil, request_models.SendMessageRequest{Content: "去杭州"})
	require.NoError(t, err)
	assert.Equal(t, completeReply, reply.Message.Content)
	assert.Nil(t, reply.Itinerary)
}

func TestChatService_StreamMessage(t *testing.T) {
	f := newChatFixture("")
	f.llm.chunks = []string{"你好", "，", "请问出发地？"}

	var events []string
	reply, err := f.svc.StreamMessage(context.Background(), nil, request_models.SendMessageRequest{Content: "去成都"},
		func(id string) error {
			events = append(events, "start:"+id)
			return nil
		},
		func(d string) error {
			events = append(events, d)
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, []string{"start:" + reply.ConversationID, "你好", "，", "请问出发地？"}, events)
	assert.Equal(t, "你好，请问出发地？", reply.Message.Content)

	msgs, _ := f.convs.ListMessages(context.Background(), reply.ConversationID)
	require.Len(t, msgs, 2)
	assert.Equal(t, "你好，请问出发地？", msgs[1].Content)
}

func TestChatService_StreamMessage_ErrorSavesNoReply(t *testing.T) {
	f := newChatFixture("")
	f.llm.err = utils.ErrLLMUnauthorized

	var convID string
	_, err := f.svc.StreamMessage(context.Background(), nil, request_models.SendMessageRequest{Content: "去成都"},
		func(id string) error { convID = id; return nil },
		func(string) error { return nil })
	assert.ErrorIs(t, err, utils.ErrLLMUnauthorized)

	msgs, _ := f.convs.ListMessages(context.Background(), convID)
	require.Len(t, msgs, 1)
	assert.Equal(t, utils.RoleUser, msgs[0].Role)
}

func TestChatService_ListGetDelete(t *testing.T) {
	f := newChatFixture(completeReply)
	ctx := context.Background()
	alice := strPtr("alice")

	guests, err := f.svc.ListConversations(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, guests)
	assert.Empty(t, guests)

	a, err := f.svc.SendMessage(ctx, alice, request_models.SendMessageRequest{Content: "去杭州"})
	require.NoError(t, err)
	_, err = f.svc.SendMessage(ctx, nil, request_models.SendMessageRequest{Content: "去苏州"})
	require.NoError(t, err)

	list, err := f.svc.ListConversations(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ConversationID, list[0].ID)

	detail, err := f.svc.GetConversation(ctx, a.ConversationID, alice)
	require.NoError(t, err)
	assert.Len(t, detail.Messages, 2)
	require.NotNil(t, detail.TravelPlan)
	assert.Len(t, detail.TravelPlan.Itinerary, 2)

	_, err = f.svc.GetConversation(ctx, a.ConversationID, nil)
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)

	err = f.svc.DeleteConversation(ctx, a.ConversationID, strPtr("mallory"))
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)

	require.NoError(t, f.svc.DeleteConversation(ctx, a.ConversationID, alice))
	_, err = f.svc.GetConversation(ctx, a.ConversationID, alice)
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)
}

func TestConversationTitle(t *testing.T) {
	assert.Equal(t, "去杭州", conversationTitle(" 去杭州 "))
	assert.Equal(t, "一二三四五六七八九十一二三四五六七八九十...", conversationTitle("一二三四五六七八九十一二三四五六七八九十多"))
}
