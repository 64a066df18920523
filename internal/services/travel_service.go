package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripmate/internal/itinerary"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TravelServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.TravelPlanResponse, error)
	GetPlan(ctx context.Context, id string) (*response_models.TravelPlanResponse, error)
	GetPlanMarkdown(ctx context.Context, id string) (string, error)
	DeletePlan(ctx context.Context, id string) error
	// SavePlanFromReply stores the itinerary found in an assistant reply.
	// It returns nil, nil when the reply holds no complete table.
	SavePlanFromReply(ctx context.Context, conversationID uuid.UUID, destination, reply string) (*response_models.TravelPlanResponse, error)
}

type TravelService struct {
	planRepo repositories.ITravelPlanRepository
	parser   *itinerary.Parser
	log      *zap.Logger
}

func NewTravelService(planRepo repositories.ITravelPlanRepository, parser *itinerary.Parser, log *zap.Logger) TravelServiceInterface {
	return &TravelService{planRepo: planRepo, parser: parser, log: log}
}

func toTravelPlanResponse(p *db_models.TravelPlan) response_models.TravelPlanResponse {
	days := p.Days()
	if days == nil {
		days = []itinerary.DayItinerary{}
	}
	labels := []string(p.DayLabels)
	if labels == nil {
		labels = []string{}
	}
	return response_models.TravelPlanResponse{
		ID:             p.ID.String(),
		ConversationID: p.ConversationID.String(),
		Destination:    p.Destination,
		DayLabels:      labels,
		Itinerary:      days,
		TotalCost:      p.TotalCost,
		CreatedAt:      p.CreatedAt,
	}
}

func (t *TravelService) ListPlans(ctx context.Context) ([]response_models.TravelPlanResponse, error) {
	plans, err := t.planRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.TravelPlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toTravelPlanResponse(&plans[i]))
	}
	return out, nil
}

func (t *TravelService) load(ctx context.Context, id string) (*db_models.TravelPlan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrTravelPlanNotFound
	}
	plan, err := t.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrTravelPlanNotFound
	}
	return plan, nil
}

func (t *TravelService) GetPlan(ctx context.Context, id string) (*response_models.TravelPlanResponse, error) {
	plan, err := t.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTravelPlanResponse(plan)
	return &resp, nil
}

func (t *TravelService) GetPlanMarkdown(ctx context.Context, id string) (string, error) {
	plan, err := t.load(ctx, id)
	if err != nil {
		return "", err
	}
	return itinerary.Render(plan.Days()), nil
}

func (t *TravelService) DeletePlan(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrTravelPlanNotFound
	}
	deleted, err := t.planRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrTravelPlanNotFound
	}
	t.log.Info("travel plan deleted", zap.String("plan_id", id))
	return nil
}

func (t *TravelService) SavePlanFromReply(ctx context.Context, conversationID uuid.UUID, destination, reply string) (*response_models.TravelPlanResponse, error) {
	if !itinerary.IsComplete(reply) {
		return nil, nil
	}
	days := t.parser.Parse(reply)
	if itinerary.CountLocations(days) == 0 {
		return nil, nil
	}

	plan := &db_models.TravelPlan{
		ConversationID: conversationID,
		Destination:    destination,
	}
	plan.SetDays(days)
	if err := t.planRepo.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	t.log.Info("travel plan saved",
		zap.String("conversation_id", conversationID.String()),
		zap.Int("days", len(days)),
		zap.Int("locations", itinerary.CountLocations(days)))
	resp := toTravelPlanResponse(plan)
	return &resp, nil
}
