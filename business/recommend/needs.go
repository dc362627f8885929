package recommend

import (
	"sort"

	"insureAdvisor/domain"
)

// NeedSet is a deduplicated, unordered set of coverage categories.
type NeedSet map[string]struct{}

func (n NeedSet) Has(category string) bool {
	_, ok := n[category]
	return ok
}

// Sorted returns the categories in stable order for logging and payloads.
func (n NeedSet) Sorted() []string {
	out := make([]string, 0, len(n))
	for c := range n {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Assess derives the required coverage categories for a profile: the
// life-stage baseline plus overlays independent of life stage. Poor health
// adds Health, low risk tolerance adds Life.
func (cfg Config) Assess(c domain.Customer, stage domain.LifeStage, products []domain.Product) NeedSet {
	needs := make(NeedSet)
	for _, category := range baseNeeds[stage] {
		needs[category] = struct{}{}
	}

	if c.HealthCondition == domain.HealthPoor {
		needs[domain.CoverageHealth] = struct{}{}
	}
	if c.RiskTolerance == domain.RiskLow {
		needs[domain.CoverageLife] = struct{}{}
	}

	if cfg.ProfitabilityFilter {
		needs = cfg.filterProfitable(needs, products)
	}

	return needs
}

// filterProfitable keeps a category only when at least one product of that
// category clears the coverage/premium ratio threshold.
func (cfg Config) filterProfitable(needs NeedSet, products []domain.Product) NeedSet {
	out := make(NeedSet, len(needs))
	for category := range needs {
		for _, p := range products {
			if p.CoverageType != category || p.Premium <= 0 {
				continue
			}
			if p.CoverageLimit/p.Premium > cfg.ProfitabilityMin {
				out[category] = struct{}{}
				break
			}
		}
	}
	return out
}
