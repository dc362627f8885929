package recommend

import (
	"reflect"
	"testing"

	"insureAdvisor/domain"
)

func TestAssessBaseNeedsPerStage(t *testing.T) {
	cfg := DefaultConfig()
	healthy := domain.Customer{HealthCondition: domain.HealthGood, RiskTolerance: domain.RiskMedium}

	cases := []struct {
		stage domain.LifeStage
		want  []string
	}{
		{domain.StageYoungSingle, []string{"Health", "Income"}},
		{domain.StageYoungFamily, []string{"Health", "Income", "Life"}},
		{domain.StageMatureFamily, []string{"Health", "Life"}},
		{domain.StageRetirement, []string{"Health", "Life"}},
		{domain.StageMidlifeSingle, []string{"Health", "Income"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.stage), func(t *testing.T) {
			needs := cfg.Assess(healthy, tc.stage, nil)
			if got := needs.Sorted(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("needs = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAssessOverlays(t *testing.T) {
	cfg := DefaultConfig()

	// poor health adds Health regardless of stage
	poor := domain.Customer{HealthCondition: domain.HealthPoor, RiskTolerance: domain.RiskMedium}
	needs := cfg.Assess(poor, domain.StageMatureFamily, nil)
	if !needs.Has(domain.CoverageHealth) {
		t.Errorf("poor health: needs %v missing Health", needs.Sorted())
	}

	// low risk tolerance adds Life even for stages that don't carry it
	cautious := domain.Customer{HealthCondition: domain.HealthGood, RiskTolerance: domain.RiskLow}
	needs = cfg.Assess(cautious, domain.StageYoungSingle, nil)
	if !needs.Has(domain.CoverageLife) {
		t.Errorf("low risk: needs %v missing Life", needs.Sorted())
	}

	// young family with both overlays covers all three categories
	both := domain.Customer{HealthCondition: domain.HealthPoor, RiskTolerance: domain.RiskLow}
	needs = cfg.Assess(both, domain.StageYoungFamily, nil)
	for _, category := range []string{domain.CoverageLife, domain.CoverageHealth, domain.CoverageIncome} {
		if !needs.Has(category) {
			t.Errorf("young family: needs %v missing %s", needs.Sorted(), category)
		}
	}
}

func TestAssessProfitabilityFilter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProfitabilityFilter = true

	customer := domain.Customer{HealthCondition: domain.HealthGood, RiskTolerance: domain.RiskMedium}
	products := []domain.Product{
		// Health clears the ratio: 100000/50 = 2000
		{ProductID: 1, CoverageType: domain.CoverageHealth, Premium: 50, CoverageLimit: 100000},
		// Income does not: 1000/50 = 20
		{ProductID: 2, CoverageType: domain.CoverageIncome, Premium: 50, CoverageLimit: 1000},
	}

	needs := cfg.Assess(customer, domain.StageYoungSingle, products)
	if !needs.Has(domain.CoverageHealth) {
		t.Errorf("needs %v missing profitable Health category", needs.Sorted())
	}
	if needs.Has(domain.CoverageIncome) {
		t.Errorf("needs %v kept unprofitable Income category", needs.Sorted())
	}

	// off by default: same inputs keep both categories
	needs = DefaultConfig().Assess(customer, domain.StageYoungSingle, products)
	if !needs.Has(domain.CoverageIncome) {
		t.Errorf("filter disabled: needs %v missing Income", needs.Sorted())
	}
}
