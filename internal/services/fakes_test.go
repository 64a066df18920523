package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/itinerary"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

func stamp(b *db_models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
}

type fakeConversationRepo struct {
	mu       sync.Mutex
	convs    map[string]*db_models.Conversation
	messages []db_models.Message
	plans    *fakePlanRepo
	seq      int64
	failWith error
}

func newFakeConversationRepo(plans *fakePlanRepo) *fakeConversationRepo {
	return &fakeConversationRepo{convs: map[string]*db_models.Conversation{}, plans: plans}
}

func (r *fakeConversationRepo) Create(_ context.Context, conv *db_models.Conversation) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&conv.BaseModel)
	cp := *conv
	r.convs[conv.ID.String()] = &cp
	return nil
}

func (r *fakeConversationRepo) GetByID(_ context.Context, id string) (*db_models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConversationRepo) GetWithMessages(ctx context.Context, id string) (*db_models.Conversation, error) {
	c, _ := r.GetByID(ctx, id)
	if c == nil {
		return nil, nil
	}
	c.Messages, _ = r.ListMessages(ctx, id)
	if r.plans != nil {
		c.TravelPlan, _ = r.plans.GetByConversationID(ctx, id)
	}
	return c, nil
}

func (r *fakeConversationRepo) ListByUser(_ context.Context, userID string) ([]db_models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Conversation
	for _, c := range r.convs {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	return out, nil
}

func (r *fakeConversationRepo) Touch(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.convs[id]; ok {
		c.UpdatedAt = time.Now().Unix()
	}
	return nil
}

func (r *fakeConversationRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.convs[id]; !ok {
		return false, nil
	}
	delete(r.convs, id)
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ConversationID.String() != id {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return true, nil
}

func (r *fakeConversationRepo) AddMessage(_ context.Context, msg *db_models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&msg.BaseModel)
	r.seq++
	msg.SentAt = r.seq
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeConversationRepo) ListMessages(_ context.Context, conversationID string) ([]db_models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Message
	for _, m := range r.messages {
		if m.ConversationID.String() == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePlanRepo struct {
	mu       sync.Mutex
	plans    []*db_models.TravelPlan
	failWith error
}

func (r *fakePlanRepo) Upsert(_ context.Context, plan *db_models.TravelPlan) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ConversationID == plan.ConversationID {
			plan.ID = p.ID
			plan.CreatedAt = p.CreatedAt
			*p = *plan
			return nil
		}
	}
	stamp(&plan.BaseModel)
	cp := *plan
	r.plans = append(r.plans, &cp)
	return nil
}

func (r *fakePlanRepo) find(match func(*db_models.TravelPlan) bool) *db_models.TravelPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if match(p) {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id string) (*db_models.TravelPlan, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.find(func(p *db_models.TravelPlan) bool { return p.ID.String() == id }), nil
}

func (r *fakePlanRepo) GetByConversationID(_ context.Context, id string) (*db_models.TravelPlan, error) {
	return r.find(func(p *db_models.TravelPlan) bool { return p.ConversationID.String() == id }), nil
}

func (r *fakePlanRepo) ListAll(_ context.Context) ([]db_models.TravelPlan, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]db_models.TravelPlan, 0, len(r.plans))
	for i := len(r.plans) - 1; i >= 0; i-- {
		out = append(out, *r.plans[i])
	}
	return out, nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plans {
		if p.ID.String() == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeLLM struct {
	mu       sync.Mutex
	reply    string
	chunks   []string
	err      error
	received [][]utils.ChatMessage
}

func (f *fakeLLM) Chat(_ context.Context, messages []utils.ChatMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) ChatStream(_ context.Context, messages []utils.ChatMessage, onDelta func(string) error) (string, error) {
	f.mu.Lock()
	f.received = append(f.received, messages)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	full := ""
	for _, c := range f.chunks {
		full += c
		if err := onDelta(c); err != nil {
			return full, err
		}
	}
	return full, nil
}

type fakePrompts struct{}

func (fakePrompts) SystemPrompt(_ context.Context, last string, _ *time.Location) string {
	return "system:" + last
}

// fakeAmap resolves addresses from a fixed table. Unknown addresses are not
// found; addresses listed in failing return ErrGeocodeFailed.
type fakeAmap struct {
	mu       sync.Mutex
	known    map[string]response_models.GeocodeResult
	failing  map[string]bool
	calls    []string
	weather  string
	weathErr error
	pois     map[string][]AmapPOI
	poiErr   error
}

func (f *fakeAmap) Geocode(_ context.Context, address, _ string) (*response_models.GeocodeResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, address)
	f.mu.Unlock()
	if f.failing[address] {
		return nil, utils.ErrGeocodeFailed
	}
	if r, ok := f.known[address]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeAmap) WeatherForecast(context.Context, string) (string, error) {
	return f.weather, f.weathErr
}

func (f *fakeAmap) SearchPOIs(_ context.Context, _ string, keyword string, _ int) ([]AmapPOI, error) {
	if f.poiErr != nil {
		return nil, f.poiErr
	}
	return f.pois[keyword], nil
}

func (f *fakeAmap) StaticMapURL(locations []itinerary.Location, _ StaticMapOptions) string {
	return "map://" + strconv.Itoa(len(locations))
}

var errBoom = errors.New("boom")

var (
	_ repositories.ConversationRepository = (*fakeConversationRepo)(nil)
	_ repositories.ITravelPlanRepository  = (*fakePlanRepo)(nil)
	_ utils.ChatClientInterface           = (*fakeLLM)(nil)
	_ PromptServiceInterface              = fakePrompts{}
	_ AmapClientInterface                 = (*fakeAmap)(nil)
)
