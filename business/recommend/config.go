package recommend

import "insureAdvisor/domain"

// Config holds the rule constants of the pipeline. One canonical rule set;
// the thresholds and weights below are the documented source of truth.
type Config struct {
	// life-stage age thresholds
	YoungAdultMax float64
	FamilyMin     float64
	FamilyMax     float64
	RetirementMin float64

	// event weight multipliers
	WeightElevated float64
	WeightHigh     float64

	// similarity score clamp range
	ScoreMin float64
	ScoreMax float64

	// fallback scoring when no product matches the need set
	FallbackMultiplier float64

	TopN int

	// profitability overlay on the needs assessor: keep a need category
	// only if some product of that category clears coverage/premium >
	// ProfitabilityMin. Off by default.
	ProfitabilityFilter bool
	ProfitabilityMin    float64
}

const (
	defaultYoungAdultMax = 25.0
	defaultFamilyMin     = 30.0
	defaultFamilyMax     = 45.0
	defaultRetirementMin = 60.0

	defaultWeightElevated = 1.2
	defaultWeightHigh     = 1.5

	defaultScoreMin = 0.1
	defaultScoreMax = 1.0

	defaultFallbackMultiplier = 0.8
	defaultTopN               = 3

	defaultProfitabilityMin = 100.0
)

func DefaultConfig() Config {
	return Config{
		YoungAdultMax: defaultYoungAdultMax,
		FamilyMin:     defaultFamilyMin,
		FamilyMax:     defaultFamilyMax,
		RetirementMin: defaultRetirementMin,

		WeightElevated: defaultWeightElevated,
		WeightHigh:     defaultWeightHigh,

		ScoreMin: defaultScoreMin,
		ScoreMax: defaultScoreMax,

		FallbackMultiplier: defaultFallbackMultiplier,
		TopN:               defaultTopN,

		ProfitabilityFilter: false,
		ProfitabilityMin:    defaultProfitabilityMin,
	}
}

// baseNeeds maps each life stage to its baseline coverage categories.
var baseNeeds = map[domain.LifeStage][]string{
	domain.StageYoungSingle:   {domain.CoverageHealth, domain.CoverageIncome},
	domain.StageYoungFamily:   {domain.CoverageLife, domain.CoverageHealth, domain.CoverageIncome},
	domain.StageMatureFamily:  {domain.CoverageLife, domain.CoverageHealth},
	domain.StageRetirement:    {domain.CoverageHealth, domain.CoverageLife},
	domain.StageMidlifeSingle: {domain.CoverageHealth, domain.CoverageIncome},
}
