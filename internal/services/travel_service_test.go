package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripmate/internal/itinerary"
	"tripmate/pkg/utils"
)

func newTravelService(repo *fakePlanRepo) TravelServiceInterface {
	return NewTravelService(repo, itinerary.New(itinerary.DefaultConfig()), zap.NewNop())
}

func TestTravelService_SavePlanFromReply(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := newTravelService(repo)
	ctx := context.Background()
	convID := uuid.New()

	plan, err := svc.SavePlanFromReply(ctx, convID, "杭州", "还需要知道您的预算。")
	require.NoError(t, err)
	assert.Nil(t, plan, "no table, no plan")

	plan, err = svc.SavePlanFromReply(ctx, convID, "杭州", completeReply)
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, convID.String(), plan.ConversationID)
	assert.Equal(t, []string{"第1天", "第2天"}, plan.DayLabels)

	again, err := svc.SavePlanFromReply(ctx, convID, "杭州", completeReply)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, again.ID, "one plan per conversation")
	assert.Len(t, repo.plans, 1)
}

func TestTravelService_ListGetMarkdownDelete(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := newTravelService(repo)
	ctx := context.Background()

	first, err := svc.SavePlanFromReply(ctx, uuid.New(), "杭州", completeReply)
	require.NoError(t, err)
	second, err := svc.SavePlanFromReply(ctx, uuid.New(), "苏州", completeReply)
	require.NoError(t, err)

	list, err := svc.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	got, err := svc.GetPlan(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "杭州", got.Destination)

	md, err := svc.GetPlanMarkdown(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, itinerary.IsComplete(md))
	assert.True(t, strings.Contains(md, "#### 第1天"))
	assert.Equal(t, got.Itinerary, itinerary.Parse(md))

	require.NoError(t, svc.DeletePlan(ctx, first.ID))
	assert.ErrorIs(t, svc.DeletePlan(ctx, first.ID), utils.ErrTravelPlanNotFound)
	_, err = svc.GetPlan(ctx, first.ID)
	assert.ErrorIs(t, err, utils.ErrTravelPlanNotFound)
}

func TestTravelService_Errors(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := newTravelService(repo)
	ctx := context.Background()

	_, err := svc.GetPlan(ctx, "nope")
	assert.ErrorIs(t, err, utils.ErrTravelPlanNotFound)
	assert.ErrorIs(t, svc.DeletePlan(ctx, "nope"), utils.ErrTravelPlanNotFound)

	repo.failWith = errBoom
	_, err = svc.ListPlans(ctx)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	_, err = svc.GetPlan(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	_, err = svc.SavePlanFromReply(ctx, uuid.New(), "", completeReply)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
