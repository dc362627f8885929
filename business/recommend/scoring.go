package recommend

import (
	"math"

	"insureAdvisor/domain"
)

const featureDim = 6

// customerVector builds the numeric profile features:
// [age, income, marital code, health code, risk code, children].
// Age and income are the standardized columns from the normalizer.
func customerVector(c domain.Customer) [featureDim]float64 {
	return [featureDim]float64{
		c.AgeStd,
		c.IncomeStd,
		float64(c.MaritalCode),
		float64(c.HealthCode),
		float64(c.RiskCode),
		float64(c.HasChildren),
	}
}

// productVector is the comparably-dimensioned product-side vector:
// recommended-age midpoint and premium (standardized), risk code, and
// placeholder zeros for the dimensions with no product-side analogue.
// The zeros are part of the contract; they damp those dimensions rather
// than matching them.
func productVector(p domain.Product) [featureDim]float64 {
	return [featureDim]float64{
		p.AgeMidStd,
		p.PremiumStd,
		0,
		0,
		float64(p.RiskCode),
		0,
	}
}

// Score computes the clamped cosine similarity between a customer and a
// candidate product. The output always lands in [ScoreMin, ScoreMax]: a
// product is never recommended at zero confidence and never above full
// confidence, regardless of input magnitude.
func (cfg Config) Score(c domain.Customer, p domain.Product) (float64, error) {
	cv := customerVector(c)
	pv := productVector(p)

	cn := norm(cv)
	pn := norm(pv)
	if cn == 0 || pn == 0 {
		return 0, domain.ComputationError{Op: "similarity", Reason: "degenerate zero-norm feature vector"}
	}

	sim := dot(cv, pv) / (cn * pn)
	return clamp(sim, cfg.ScoreMin, cfg.ScoreMax), nil
}

func dot(a, b [featureDim]float64) float64 {
	sum := 0.0
	for i := range featureDim {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a [featureDim]float64) float64 {
	return math.Sqrt(dot(a, a))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
