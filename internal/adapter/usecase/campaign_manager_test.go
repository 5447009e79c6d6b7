package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/adapter/eventbus"
	"mesa-campaigns/internal/catalog"
	"mesa-campaigns/internal/core/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	ctx     context.Context
	catalog *catalog.Catalog
	watch   domain.Product
	kit     domain.Product
	manager *CampaignManager
	bus     *eventbus.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	watch := domain.Product{ID: uuid.New(), Name: "Smartwatch", BasePrice: 199.99, Segment: domain.SegmentMale}
	kit := domain.Product{ID: uuid.New(), Name: "Beauty Kit", BasePrice: 50.00, Segment: domain.SegmentFemale}
	cat := catalog.New([]domain.Product{watch, kit}, nil)

	m := NewCampaignManager(cat.Products(), discard)
	bus := eventbus.New(discard)
	m.SetupSubscriptions(bus)
	return &fixture{ctx: context.Background(), catalog: cat, watch: watch, kit: kit, manager: m, bus: bus}
}

func (f *fixture) campaign(t *testing.T, budget float64, p domain.Product) domain.Campaign {
	t.Helper()
	c, err := f.manager.CreateCampaign("Launch", p.Segment, budget, []uuid.UUID{p.ID})
	require.NoError(t, err)
	return c
}

func (f *fixture) publish(t *testing.T, topic domain.Topic, campaignID, productID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.bus.Publish(f.ctx, topic, domain.Payload{
		CustomerID: "customer-1",
		ProductID:  productID,
		CampaignID: campaignID,
	}))
}

func (f *fixture) get(t *testing.T, id uuid.UUID) domain.Campaign {
	t.Helper()
	c, ok := f.manager.Campaign(id)
	require.True(t, ok)
	return c
}

// set mutates registry state directly to reach preconditions that events
// cannot produce.
func (f *fixture) set(id uuid.UUID, fn func(c *domain.Campaign)) {
	f.manager.mu.Lock()
	defer f.manager.mu.Unlock()
	fn(f.manager.campaigns[id])
}

func TestCreateCampaignZeroedMetrics(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, domain.SegmentMale, c.TargetSegment)
	assert.Equal(t, []uuid.UUID{f.watch.ID}, c.ProductIDs)
	assert.Zero(t, c.TotalImpressions)
	assert.Zero(t, c.TotalConversions)
	assert.Zero(t, c.RevenueGenerated)
	assert.Zero(t, c.ConversionRate)
	assert.Zero(t, c.ROI)
	assert.Equal(t, 100.0, c.Effectiveness)
}

func TestCreateCampaignUniqueIDs(t *testing.T) {
	f := newFixture(t)
	a := f.campaign(t, 1000, f.watch)
	b := f.campaign(t, 1000, f.watch)

	assert.NotEqual(t, a.ID, b.ID)
	all := f.manager.Campaigns()
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
}

func TestCreateCampaignRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.CreateCampaign("x", domain.SegmentMale, 0, []uuid.UUID{f.watch.ID})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "budget", ve.Field)

	_, err = f.manager.CreateCampaign("x", domain.SegmentMale, 10, nil)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "product_ids", ve.Field)

	_, err = f.manager.CreateCampaign("x", domain.SegmentMale, 10, []uuid.UUID{uuid.New()})
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Reason, "unknown product")

	assert.Empty(t, f.manager.Campaigns())
}

func TestSetupSubscriptionsTopics(t *testing.T) {
	f := newFixture(t)
	for _, topic := range domain.Topics() {
		assert.Equal(t, 1, f.bus.SubscriberCount(topic), "topic %s", topic)
	}
}

func TestAdInteractionCountsImpression(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)
	before := f.get(t, c.ID)

	f.publish(t, domain.TopicAdInteraction, c.ID, f.watch.ID)

	after := f.get(t, c.ID)
	assert.EqualValues(t, 1, after.TotalImpressions)
	assert.Equal(t, before.ConversionRate, after.ConversionRate)
	assert.Equal(t, before.ROI, after.ROI)
	assert.Equal(t, before.Effectiveness, after.Effectiveness)
}

func TestPurchaseRecomputesConversionRate(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.kit)
	for i := 0; i < 10; i++ {
		f.publish(t, domain.TopicAdInteraction, c.ID, f.kit.ID)
	}

	f.publish(t, domain.TopicPurchase, c.ID, f.kit.ID)

	got := f.get(t, c.ID)
	assert.EqualValues(t, 10, got.TotalImpressions)
	assert.EqualValues(t, 1, got.TotalConversions)
	assert.InDelta(t, 10.0, got.ConversionRate, 1e-9)
	assert.InDelta(t, 50.0, got.RevenueGenerated, 1e-9)
}

func TestPurchaseRecomputesROI(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)

	f.publish(t, domain.TopicPurchase, c.ID, f.watch.ID)

	got := f.get(t, c.ID)
	assert.InDelta(t, 199.99, got.RevenueGenerated, 1e-9)
	assert.InDelta(t, 2.9998, got.ROI, 1e-9)
	// no impressions yet, so the rate keeps its initial value
	assert.Zero(t, got.ConversionRate)
}

func TestPurchaseOfUnknownProductCountsConversionOnly(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)

	f.publish(t, domain.TopicPurchase, c.ID, uuid.New())

	got := f.get(t, c.ID)
	assert.EqualValues(t, 1, got.TotalConversions)
	assert.Zero(t, got.RevenueGenerated)
	assert.InDelta(t, -1.0, got.ROI, 1e-9)
}

func TestPurchaseWithZeroCostKeepsROI(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)
	f.set(c.ID, func(c *domain.Campaign) {
		c.Budget = 0
		c.ROI = 1.25
	})

	f.publish(t, domain.TopicPurchase, c.ID, f.watch.ID)

	assert.Equal(t, 1.25, f.get(t, c.ID).ROI)
}

func TestCancelClampsEffectiveness(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)
	f.set(c.ID, func(c *domain.Campaign) { c.Effectiveness = 3.0 })

	f.publish(t, domain.TopicCancel, c.ID, f.watch.ID)
	f.publish(t, domain.TopicCancel, c.ID, f.watch.ID)

	assert.Equal(t, 0.0, f.get(t, c.ID).Effectiveness)
}

func TestIgnoreSharesCancelHandler(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)

	f.publish(t, domain.TopicIgnore, c.ID, f.watch.ID)
	f.publish(t, domain.TopicCancel, c.ID, f.watch.ID)

	assert.Equal(t, 90.0, f.get(t, c.ID).Effectiveness)
}

func TestDanglingReferenceIsNoop(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)
	f.publish(t, domain.TopicAdInteraction, c.ID, f.watch.ID)
	before := f.manager.Campaigns()

	for _, topic := range domain.Topics() {
		f.publish(t, topic, uuid.New(), f.watch.ID)
		f.publish(t, topic, uuid.Nil, uuid.Nil)
	}

	assert.Equal(t, before, f.manager.Campaigns())
}

func TestSetupSubscriptionsTwiceDoublesDelivery(t *testing.T) {
	f := newFixture(t)
	f.manager.SetupSubscriptions(f.bus)
	c := f.campaign(t, 1000, f.watch)

	f.publish(t, domain.TopicAdInteraction, c.ID, f.watch.ID)
	f.publish(t, domain.TopicCancel, c.ID, f.watch.ID)

	got := f.get(t, c.ID)
	assert.EqualValues(t, 2, got.TotalImpressions)
	assert.Equal(t, 90.0, got.Effectiveness)
}

func TestHandlersWithoutBus(t *testing.T) {
	m := NewCampaignManager([]domain.Product{{ID: uuid.New(), BasePrice: 10}}, discard)
	var pid uuid.UUID
	for id := range m.products {
		pid = id
	}
	c, err := m.CreateCampaign("direct", domain.SegmentFemale, 200, []uuid.UUID{pid})
	require.NoError(t, err)

	ev := &domain.Event{Topic: domain.TopicPurchase, Payload: domain.Payload{CampaignID: c.ID, ProductID: pid}}
	require.NoError(t, m.OnAdInteraction(context.Background(), ev))
	require.NoError(t, m.OnPurchase(context.Background(), ev))
	require.NoError(t, m.OnCancel(context.Background(), ev))

	got, ok := m.Campaign(c.ID)
	require.True(t, ok)
	assert.EqualValues(t, 1, got.TotalImpressions)
	assert.InDelta(t, 100.0, got.ConversionRate, 1e-9)
	assert.InDelta(t, 0.0, got.ROI, 1e-9) // cost is 10, revenue is 10
	assert.Equal(t, 95.0, got.Effectiveness)
}

func TestSnapshotsAreDetached(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)

	snap := f.manager.Campaigns()
	snap[0].TotalImpressions = 42
	snap[0].ProductIDs[0] = uuid.Nil

	got := f.get(t, c.ID)
	assert.Zero(t, got.TotalImpressions)
	assert.Equal(t, f.watch.ID, got.ProductIDs[0])
}

func TestConcurrentEvents(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1000, f.watch)

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				payload := domain.Payload{CampaignID: c.ID, ProductID: f.watch.ID}
				_ = f.bus.Publish(f.ctx, domain.TopicAdInteraction, payload)
				_ = f.bus.Publish(f.ctx, domain.TopicPurchase, payload)
			}
		}()
	}
	wg.Wait()

	got := f.get(t, c.ID)
	assert.EqualValues(t, workers*perWorker, got.TotalImpressions)
	assert.EqualValues(t, workers*perWorker, got.TotalConversions)
	assert.InDelta(t, float64(workers*perWorker)*199.99, got.RevenueGenerated, 1e-6)
}
