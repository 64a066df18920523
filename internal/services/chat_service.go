package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const titleRunes = 20

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, userID *string, req request_models.SendMessageRequest) (*response_models.ChatReply, error)
	// StreamMessage works like SendMessage but reports the conversation id
	// through onStart before the model answers, then each reply fragment
	// through onDelta.
	StreamMessage(ctx context.Context, userID *string, req request_models.SendMessageRequest,
		onStart func(conversationID string) error, onDelta func(delta string) error) (*response_models.ChatReply, error)
	ListConversations(ctx context.Context, userID *string) ([]response_models.ConversationSummary, error)
	GetConversation(ctx context.Context, id string, userID *string) (*response_models.ConversationDetail, error)
	DeleteConversation(ctx context.Context, id string, userID *string) error
}

type ChatService struct {
	convRepo        repositories.ConversationRepository
	llm             utils.ChatClientInterface
	prompts         PromptServiceInterface
	travelService   TravelServiceInterface
	defaultTimezone string
	log             *zap.Logger
}

func NewChatService(
	convRepo repositories.ConversationRepository,
	llm utils.ChatClientInterface,
	prompts PromptServiceInterface,
	travelService TravelServiceInterface,
	defaultTimezone string,
	log *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		convRepo:        convRepo,
		llm:             llm,
		prompts:         prompts,
		travelService:   travelService,
		defaultTimezone: defaultTimezone,
		log:             log,
	}
}

// turn is one user message ready to be sent to the model.
type turn struct {
	conv     *db_models.Conversation
	messages []utils.ChatMessage
	content  string
	history  []db_models.Message
}

func conversationTitle(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= titleRunes {
		return string(runes)
	}
	return string(runes[:titleRunes]) + "..."
}

// loadOwned returns the conversation or ErrConversationNotFound when it does
// not exist or belongs to someone else.
func (s *ChatService) loadOwned(ctx context.Context, id string, userID *string) (*db_models.Conversation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrConversationNotFound
	}
	conv, err := s.convRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if conv == nil || !conv.OwnedBy(userID) {
		return nil, utils.ErrConversationNotFound
	}
	return conv, nil
}

func (s *ChatService) prepare(ctx context.Context, userID *string, req request_models.SendMessageRequest) (*turn, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, utils.ErrInvalidInput
	}

	var conv *db_models.Conversation
	var history []db_models.Message
	if req.ConversationID == "" {
		conv = &db_models.Conversation{UserID: userID, Title: conversationTitle(content)}
		if err := s.convRepo.Create(ctx, conv); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		s.log.Info("conversation created", zap.String("conversation_id", conv.ID.String()), zap.Bool("guest", userID == nil))
	} else {
		var err error
		if conv, err = s.loadOwned(ctx, req.ConversationID, userID); err != nil {
			return nil, err
		}
		if history, err = s.convRepo.ListMessages(ctx, conv.ID.String()); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	userMsg := &db_models.Message{ConversationID: conv.ID, Role: utils.RoleUser, Content: content}
	if err := s.convRepo.AddMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	loc := utils.LoadLocationOr(req.Timezone, s.defaultTimezone)
	messages := make([]utils.ChatMessage, 0, len(history)+2)
	messages = append(messages, utils.ChatMessage{
		Role:    utils.RoleSystem,
		Content: s.prompts.SystemPrompt(ctx, content, loc),
	})
	for _, m := range history {
		messages = append(messages, utils.ChatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, utils.ChatMessage{Role: utils.RoleUser, Content: content})

	return &turn{conv: conv, messages: messages, content: content, history: history}, nil
}

// destination picks the most recent city named by the user.
func (t *turn) destination() string {
	if city := ExtractDestination(t.content); city != "" {
		return city
	}
	for i := len(t.history) - 1; i >= 0; i-- {
		if t.history[i].Role != utils.RoleUser {
			continue
		}
		if city := ExtractDestination(t.history[i].Content); city != "" {
			return city
		}
	}
	return ""
}

func (s *ChatService) finish(ctx context.Context, t *turn, reply string) (*response_models.ChatReply, error) {
	msg := &db_models.Message{ConversationID: t.conv.ID, Role: utils.RoleAssistant, Content: reply}
	if err := s.convRepo.AddMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := s.convRepo.Touch(ctx, t.conv.ID.String()); err != nil {
		s.log.Warn("conversation touch failed", zap.String("conversation_id", t.conv.ID.String()), zap.Error(err))
	}

	out := &response_models.ChatReply{
		ConversationID: t.conv.ID.String(),
		Message:        toMessageResponse(*msg),
	}

	plan, err := s.travelService.SavePlanFromReply(ctx, t.conv.ID, t.destination(), reply)
	if err != nil {
		s.log.Warn("travel plan not saved", zap.String("conversation_id", t.conv.ID.String()), zap.Error(err))
	} else if plan != nil {
		out.Itinerary = plan.Itinerary
		out.TravelPlanID = plan.ID
	}
	return out, nil
}

func (s *ChatService) SendMessage(ctx context.Context, userID *string, req request_models.SendMessageRequest) (*response_models.ChatReply, error) {
	t, err := s.prepare(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	reply, err := s.llm.Chat(ctx, t.messages)
	if err != nil {
		s.log.Error("llm call failed", zap.String("conversation_id", t.conv.ID.String()), zap.Error(err))
		return nil, err
	}
	s.log.Info("llm replied",
		zap.String("conversation_id", t.conv.ID.String()),
		zap.Int("messages", len(t.messages)),
		zap.Duration("took", time.Since(start)))

	return s.finish(ctx, t, reply)
}

func (s *ChatService) StreamMessage(ctx context.Context, userID *string, req request_models.SendMessageRequest,
	onStart func(conversationID string) error, onDelta func(delta string) error) (*response_models.ChatReply, error) {
	t, err := s.prepare(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if onStart != nil {
		if err := onStart(t.conv.ID.String()); err != nil {
			return nil, err
		}
	}

	reply, err := s.llm.ChatStream(ctx, t.messages, onDelta)
	if err != nil {
		s.log.Error("llm stream failed",
			zap.String("conversation_id", t.conv.ID.String()),
			zap.Int("received", len(reply)),
			zap.Error(err))
		return nil, err
	}
	return s.finish(ctx, t, reply)
}

func toMessageResponse(m db_models.Message) response_models.MessageResponse {
	return response_models.MessageResponse{
		ID:        m.ID.String(),
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func toConversationSummary(c *db_models.Conversation) response_models.ConversationSummary {
	return response_models.ConversationSummary{
		ID:        c.ID.String(),
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *ChatService) ListConversations(ctx context.Context, userID *string) ([]response_models.ConversationSummary, error) {
	out := []response_models.ConversationSummary{}
	if userID == nil {
		return out, nil
	}

	convs, err := s.convRepo.ListByUser(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	for i := range convs {
		out = append(out, toConversationSummary(&convs[i]))
	}
	return out, nil
}

func (s *ChatService) GetConversation(ctx context.Context, id string, userID *string) (*response_models.ConversationDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrConversationNotFound
	}
	conv, err := s.convRepo.GetWithMessages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if conv == nil || !conv.OwnedBy(userID) {
		return nil, utils.ErrConversationNotFound
	}

	detail := &response_models.ConversationDetail{
		ConversationSummary: toConversationSummary(conv),
		Messages:            make([]response_models.MessageResponse, 0, len(conv.Messages)),
	}
	for _, m := range conv.Messages {
		detail.Messages = append(detail.Messages, toMessageResponse(m))
	}
	if conv.TravelPlan != nil {
		plan := toTravelPlanResponse(conv.TravelPlan)
		detail.TravelPlan = &plan
	}
	return detail, nil
}

func (s *ChatService) DeleteConversation(ctx context.Context, id string, userID *string) error {
	if _, err := s.loadOwned(ctx, id, userID); err != nil {
		return err
	}
	deleted, err := s.convRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrConversationNotFound
	}
	s.log.Info("conversation deleted", zap.String("conversation_id", id))
	return nil
}
