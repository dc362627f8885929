package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Source interfaces ----

type CustomerSource interface {
	CustomerByID(ctx context.Context, id uint) (domain.Customer, error)
}

type ProductSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// EventRepository persists the per-request audit event. Optional.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.RecommendationEvent) error
}

// ---- Usecase / Service ----

type Service struct {
	customers CustomerSource
	products  ProductSource
	eventRepo EventRepository
	cfg       Config
}

func NewService(
	customers CustomerSource,
	products ProductSource,
	eventRepo EventRepository,
	cfg Config,
) *Service {
	return &Service{
		customers: customers,
		products:  products,
		eventRepo: eventRepo,
		cfg:       cfg,
	}
}

// Recommend runs the full pipeline for one customer: classify life stage,
// assess needs, score matching products and return the top-N ranked
// recommendations with explanations. Deterministic: identical inputs over
// an unchanged product table yield identical output.
func (s *Service) Recommend(
	ctx context.Context,
	customerID uint,
	topN int,
) ([]domain.Recommendation, domain.RecommendationMeta, error) {

	var meta domain.RecommendationMeta

	if err := ctx.Err(); err != nil {
		return nil, meta, fmt.Errorf("context error: %w", err)
	}
	if topN <= 0 {
		topN = s.cfg.TopN
	}

	customer, err := s.customers.CustomerByID(ctx, customerID)
	if err != nil {
		return nil, meta, err
	}

	products, err := s.products.Products(ctx)
	if err != nil {
		return nil, meta, fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 {
		return nil, meta, domain.EmptyCatalogError{}
	}

	stage, eventWeight, err := s.cfg.Classify(customer)
	if err != nil {
		return nil, meta, err
	}

	needs := s.cfg.Assess(customer, stage, products)

	candidates, err := s.matchCandidates(customer, products, needs, stage, eventWeight)
	if err != nil {
		return nil, meta, err
	}

	// A need set disjoint from every coverage type is an expected case,
	// not an error: score the whole catalog at reduced confidence.
	fallback := len(candidates) == 0
	if fallback {
		candidates, err = s.fallbackCandidates(customer, products)
		if err != nil {
			return nil, meta, err
		}
	}

	// Descending by score; ties keep first-seen product order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	meta = domain.RecommendationMeta{
		LifeStage:   stage,
		EventWeight: eventWeight,
		Needs:       needs.Sorted(),
		Fallback:    fallback,
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"customer_id", customerID,
		"life_stage", stage,
		"event_weight", eventWeight,
		"needs", meta.Needs,
		"fallback", fallback,
		"returned", len(candidates),
	)

	s.logEvent(ctx, customerID, meta, candidates, tid)

	RecommendServedTotal.
		WithLabelValues(string(stage), strconv.FormatBool(fallback)).
		Inc()

	return candidates, meta, nil
}

// matchCandidates scores every product whose coverage type is in the need
// set, boosted by the event weight.
func (s *Service) matchCandidates(
	customer domain.Customer,
	products []domain.Product,
	needs NeedSet,
	stage domain.LifeStage,
	eventWeight float64,
) ([]domain.Recommendation, error) {

	candidates := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		if !needs.Has(p.CoverageType) {
			continue
		}
		score, err := s.cfg.Score(customer, p)
		if err != nil {
			return nil, err
		}

		explanation := fmt.Sprintf("Recommended for %s life stage, matches %s need", stage, p.CoverageType)
		if p.RiskLevel == customer.RiskTolerance {
			explanation += fmt.Sprintf(" and matches risk tolerance (%s)", p.RiskLevel)
		}

		candidates = append(candidates, domain.Recommendation{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Score:       score * eventWeight,
			Explanation: explanation,
		})
	}
	return candidates, nil
}

// fallbackCandidates scores the whole catalog at the reduced multiplier.
func (s *Service) fallbackCandidates(
	customer domain.Customer,
	products []domain.Product,
) ([]domain.Recommendation, error) {

	candidates := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		score, err := s.cfg.Score(customer, p)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, domain.Recommendation{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Score:       score * s.cfg.FallbackMultiplier,
			Explanation: "No product matches the assessed needs; closest available option",
		})
	}
	return candidates, nil
}

// logEvent persists the audit event, best effort: a failed insert is
// logged and counted but never fails the request.
func (s *Service) logEvent(
	ctx context.Context,
	customerID uint,
	meta domain.RecommendationMeta,
	recs []domain.Recommendation,
	traceID string,
) {
	if s.eventRepo == nil {
		return
	}

	topScore := 0.0
	productIDs := make([]any, 0, len(recs))
	for i, r := range recs {
		if i == 0 {
			topScore = r.Score
		}
		productIDs = append(productIDs, r.ProductID)
	}

	event := domain.RecommendationEvent{
		CustomerID: customerID,
		LifeStage:  string(meta.LifeStage),
		Fallback:   meta.Fallback,
		TopScore:   topScore,
		Context: datatypes.JSONMap{
			"trace_id":     traceID,
			"event_weight": meta.EventWeight,
			"needs":        meta.Needs,
			"product_ids":  productIDs,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Warn("failed to save recommendation event", "error", err, "customer_id", customerID)
		EventLogFailuresTotal.Inc()
	}
}
