package recommend

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"insureAdvisor/domain"
)

// ---- Stub sources ----

type stubCustomers map[uint]domain.Customer

func (s stubCustomers) CustomerByID(ctx context.Context, id uint) (domain.Customer, error) {
	c, ok := s[id]
	if !ok {
		return domain.Customer{}, domain.NotFoundError{Entity: "customer", ID: uint64(id)}
	}
	return c, nil
}

type stubProducts []domain.Product

func (s stubProducts) Products(ctx context.Context) ([]domain.Product, error) {
	return s, nil
}

type stubEvents struct {
	saved []domain.RecommendationEvent
}

func (s *stubEvents) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	s.saved = append(s.saved, event)
	return nil
}

type failingEvents struct{}

func (failingEvents) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	return errors.New("insert failed")
}

// ---- Fixtures ----

// Profiles carry the derived fields the normalizer would have filled in.
func fixtureCustomers() stubCustomers {
	return stubCustomers{
		1: { // young family, recent new child
			CustomerID: 1, Age: 35, Income: 60000,
			MaritalStatus: domain.MaritalMarried, HasChildren: 2,
			HealthCondition: domain.HealthGood, RiskTolerance: domain.RiskMedium,
			RecentLifeEvent: domain.EventNewChild,
			MaritalCode:     1, HealthCode: 0, RiskCode: 1,
			AgeStd: 0.2, IncomeStd: 0.5,
		},
		2: { // young single, no recent event
			CustomerID: 2, Age: 22, Income: 30000,
			MaritalStatus: domain.MaritalSingle, HasChildren: 0,
			HealthCondition: domain.HealthGood, RiskTolerance: domain.RiskMedium,
			RecentLifeEvent: domain.EventNone,
			MaritalCode:     0, HealthCode: 0, RiskCode: 1,
			AgeStd: -1.1, IncomeStd: -0.8,
		},
	}
}

func fixtureProducts() stubProducts {
	return stubProducts{
		{ProductID: 10, ProductName: "Basic Health Plan", CoverageType: domain.CoverageHealth,
			Premium: 40, CoverageLimit: 150000, RiskLevel: domain.RiskLow,
			RiskCode: 0, AgeMidStd: -0.5, PremiumStd: -0.7},
		{ProductID: 11, ProductName: "Term Life 20", CoverageType: domain.CoverageLife,
			Premium: 60, CoverageLimit: 500000, RiskLevel: domain.RiskMedium,
			RiskCode: 1, AgeMidStd: 0.3, PremiumStd: 0.2},
		{ProductID: 12, ProductName: "Income Shield", CoverageType: domain.CoverageIncome,
			Premium: 55, CoverageLimit: 120000, RiskLevel: domain.RiskMedium,
			RiskCode: 1, AgeMidStd: -0.2, PremiumStd: -0.1},
		{ProductID: 13, ProductName: "Premier Health", CoverageType: domain.CoverageHealth,
			Premium: 120, CoverageLimit: 400000, RiskLevel: domain.RiskHigh,
			RiskCode: 2, AgeMidStd: 0.8, PremiumStd: 1.4},
	}
}

func newTestService(products stubProducts, events EventRepository) *Service {
	return NewService(fixtureCustomers(), products, events, DefaultConfig())
}

// ---- Tests ----

func TestRecommendRanksTopN(t *testing.T) {
	svc := newTestService(fixtureProducts(), nil)

	recs, meta, err := svc.Recommend(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("returned %d recommendations, want default top 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("scores not non-increasing at %d: %v > %v", i, recs[i].Score, recs[i-1].Score)
		}
	}

	if meta.LifeStage != domain.StageYoungFamily {
		t.Errorf("life stage = %q, want %q", meta.LifeStage, domain.StageYoungFamily)
	}
	if meta.EventWeight != 1.2 {
		t.Errorf("event weight = %v, want 1.2", meta.EventWeight)
	}
	if meta.Fallback {
		t.Error("fallback = true, want false with a matching catalog")
	}
	if want := []string{"Health", "Income", "Life"}; !reflect.DeepEqual(meta.Needs, want) {
		t.Errorf("needs = %v, want %v", meta.Needs, want)
	}
}

func TestRecommendRespectsNeeds(t *testing.T) {
	svc := newTestService(fixtureProducts(), nil)

	// customer 2 is young single: needs are Health and Income only
	recs, meta, err := svc.Recommend(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if meta.Fallback {
		t.Fatal("fallback = true, want false")
	}

	for _, r := range recs {
		if r.ProductID == 11 {
			t.Errorf("life product %d recommended outside the need set", r.ProductID)
		}
		if r.Explanation == "" {
			t.Errorf("product %d: empty explanation", r.ProductID)
		}
	}
	if len(recs) != 3 {
		t.Errorf("returned %d recommendations, want the 3 need-matching products", len(recs))
	}
}

func TestRecommendFallback(t *testing.T) {
	// catalog entirely outside the young single's needs
	lifeOnly := stubProducts{
		{ProductID: 20, ProductName: "Term Life A", CoverageType: domain.CoverageLife,
			Premium: 60, CoverageLimit: 300000, RiskLevel: domain.RiskMedium,
			RiskCode: 1, AgeMidStd: 0.4, PremiumStd: 0.1},
		{ProductID: 21, ProductName: "Term Life B", CoverageType: domain.CoverageLife,
			Premium: 90, CoverageLimit: 600000, RiskLevel: domain.RiskHigh,
			RiskCode: 2, AgeMidStd: 0.9, PremiumStd: 0.8},
	}
	cfg := DefaultConfig()
	svc := NewService(fixtureCustomers(), lifeOnly, nil, cfg)

	recs, meta, err := svc.Recommend(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if !meta.Fallback {
		t.Fatal("fallback = false, want true with a disjoint catalog")
	}
	if len(recs) != len(lifeOnly) {
		t.Fatalf("returned %d recommendations, want whole catalog %d", len(recs), len(lifeOnly))
	}

	customer := fixtureCustomers()[2]
	byID := map[uint64]domain.Recommendation{}
	for _, r := range recs {
		byID[r.ProductID] = r
	}
	for _, p := range lifeOnly {
		base, err := cfg.Score(customer, p)
		if err != nil {
			t.Fatalf("Score returned error: %v", err)
		}
		want := base * cfg.FallbackMultiplier
		if got := byID[p.ProductID].Score; math.Abs(got-want) > 1e-9 {
			t.Errorf("product %d: fallback score = %v, want %v", p.ProductID, got, want)
		}
	}
}

func TestRecommendEventWeightBoostsScores(t *testing.T) {
	customers := fixtureCustomers()
	boosted := customers[2]
	boosted.RecentLifeEvent = domain.EventJobChange
	customers[3] = boosted

	svc := NewService(customers, fixtureProducts(), nil, DefaultConfig())

	baseline, _, err := svc.Recommend(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	elevated, _, err := svc.Recommend(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	baseByID := map[uint64]float64{}
	for _, r := range baseline {
		baseByID[r.ProductID] = r.Score
	}
	for _, r := range elevated {
		want := baseByID[r.ProductID] * 1.2
		if math.Abs(r.Score-want) > 1e-9 {
			t.Errorf("product %d: boosted score = %v, want %v", r.ProductID, r.Score, want)
		}
	}
}

func TestRecommendTopNCap(t *testing.T) {
	svc := newTestService(fixtureProducts(), nil)

	recs, _, err := svc.Recommend(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("returned %d recommendations, want 2", len(recs))
	}

	// asking for more than exists returns everything, never pads
	recs, _, err = svc.Recommend(context.Background(), 1, 50)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) != len(fixtureProducts()) {
		t.Errorf("returned %d recommendations, want %d", len(recs), len(fixtureProducts()))
	}
}

func TestRecommendDeterministic(t *testing.T) {
	svc := newTestService(fixtureProducts(), nil)

	first, firstMeta, err := svc.Recommend(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	second, secondMeta, err := svc.Recommend(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated call diverged:\n%v\n%v", first, second)
	}
	if !reflect.DeepEqual(firstMeta, secondMeta) {
		t.Errorf("repeated call meta diverged:\n%v\n%v", firstMeta, secondMeta)
	}
}

func TestRecommendUnknownCustomer(t *testing.T) {
	svc := newTestService(fixtureProducts(), nil)

	_, _, err := svc.Recommend(context.Background(), 999, 3)
	var nferr domain.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("Recommend error = %v, want NotFoundError", err)
	}
	if nferr.ID != 999 {
		t.Errorf("NotFoundError id = %d, want 999", nferr.ID)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	svc := newTestService(stubProducts{}, nil)

	_, _, err := svc.Recommend(context.Background(), 1, 3)
	var ecerr domain.EmptyCatalogError
	if !errors.As(err, &ecerr) {
		t.Fatalf("Recommend error = %v, want EmptyCatalogError", err)
	}
}

func TestRecommendPersistsAuditEvent(t *testing.T) {
	events := &stubEvents{}
	svc := newTestService(fixtureProducts(), events)

	recs, meta, err := svc.Recommend(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if len(events.saved) != 1 {
		t.Fatalf("saved %d events, want 1", len(events.saved))
	}
	event := events.saved[0]
	if event.CustomerID != 1 {
		t.Errorf("event customer = %d, want 1", event.CustomerID)
	}
	if event.LifeStage != string(meta.LifeStage) {
		t.Errorf("event life stage = %q, want %q", event.LifeStage, meta.LifeStage)
	}
	if event.TopScore != recs[0].Score {
		t.Errorf("event top score = %v, want %v", event.TopScore, recs[0].Score)
	}
	if _, ok := event.Context["needs"]; !ok {
		t.Error("event context missing needs")
	}
}

func TestRecommendSurvivesEventLogFailure(t *testing.T) {
	svc := newTestService(fixtureProducts(), failingEvents{})

	recs, _, err := svc.Recommend(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("Recommend returned error despite best-effort audit log: %v", err)
	}
	if len(recs) == 0 {
		t.Error("no recommendations returned")
	}
}
