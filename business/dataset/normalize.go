package dataset

import (
	"math"
	"strings"

	"insureAdvisor/domain"
)

// Fixed categorical encodings. Direction matters: health and risk codes
// ascend with severity (Good=0 .. Poor=2, Low=0 .. High=2). Every
// downstream stage reuses these codes; nothing reinterprets the raw
// strings.
var (
	maritalCodes = map[string]int{
		domain.MaritalSingle:   0,
		domain.MaritalMarried:  1,
		domain.MaritalDivorced: 2,
	}
	healthCodes = map[string]int{
		domain.HealthGood:    0,
		domain.HealthAverage: 1,
		domain.HealthPoor:    2,
	}
	riskCodes = map[string]int{
		domain.RiskLow:    0,
		domain.RiskMedium: 1,
		domain.RiskHigh:   2,
	}
	eventCodes = map[string]int{
		domain.EventNone:       0,
		domain.EventMarriage:   1,
		domain.EventNewChild:   2,
		domain.EventJobChange:  3,
		domain.EventRetirement: 4,
	}
)

// Fallback values for missing categoricals.
const (
	defaultMarital = domain.MaritalSingle
	defaultHealth  = domain.HealthAverage
	defaultRisk    = domain.RiskMedium
	defaultEvent   = domain.EventNone
)

// CanonicalCategory folds source spellings like "New Child" or
// "job change" into the canonical enum form ("NewChild", "JobChange").
func CanonicalCategory(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, "")
}

// Normalize prepares freshly loaded working copies of both tables for the
// recommendation pipeline: fills missing values, encodes categoricals and
// standardizes the numeric columns used by the similarity scorer. It
// mutates the slices in place and must run exactly once, before the
// tables are shared read-only across requests.
func Normalize(customers []domain.Customer, products []domain.Product) error {
	if err := normalizeCustomers(customers); err != nil {
		return err
	}
	return normalizeProducts(products, customers)
}

func normalizeCustomers(customers []domain.Customer) error {
	incomes := make([]float64, len(customers))
	for i := range customers {
		incomes[i] = customers[i].Income
	}
	incomeMean := mean(incomes)

	for i := range customers {
		c := &customers[i]

		if math.IsNaN(c.Income) {
			c.Income = incomeMean
		}
		if math.IsNaN(c.Age) || c.Age <= 0 {
			return domain.ValidationError{Field: "age", Value: "", Reason: "required and must be positive"}
		}

		if c.MaritalStatus == "" {
			c.MaritalStatus = defaultMarital
		} else {
			c.MaritalStatus = CanonicalCategory(c.MaritalStatus)
		}
		if c.HealthCondition == "" {
			c.HealthCondition = defaultHealth
		} else {
			c.HealthCondition = CanonicalCategory(c.HealthCondition)
		}
		if c.RiskTolerance == "" {
			c.RiskTolerance = defaultRisk
		} else {
			c.RiskTolerance = CanonicalCategory(c.RiskTolerance)
		}
		if c.RecentLifeEvent == "" {
			c.RecentLifeEvent = defaultEvent
		} else {
			c.RecentLifeEvent = CanonicalCategory(c.RecentLifeEvent)
		}

		var ok bool
		if c.MaritalCode, ok = maritalCodes[c.MaritalStatus]; !ok {
			return domain.ValidationError{Field: "marital_status", Value: c.MaritalStatus, Reason: "unknown value"}
		}
		if c.HealthCode, ok = healthCodes[c.HealthCondition]; !ok {
			return domain.ValidationError{Field: "health_condition", Value: c.HealthCondition, Reason: "unknown value"}
		}
		if c.RiskCode, ok = riskCodes[c.RiskTolerance]; !ok {
			return domain.ValidationError{Field: "risk_tolerance", Value: c.RiskTolerance, Reason: "unknown value"}
		}
		if c.EventCode, ok = eventCodes[c.RecentLifeEvent]; !ok {
			return domain.ValidationError{Field: "recent_life_event", Value: c.RecentLifeEvent, Reason: "unknown value"}
		}
	}

	ages := make([]float64, len(customers))
	for i := range customers {
		ages[i] = customers[i].Age
		incomes[i] = customers[i].Income
	}
	ageMean, ageStd := meanStd(ages)
	incMean, incStd := meanStd(incomes)

	for i := range customers {
		customers[i].AgeStd = standardize(customers[i].Age, ageMean, ageStd)
		customers[i].IncomeStd = standardize(customers[i].Income, incMean, incStd)
	}

	return nil
}

func normalizeProducts(products []domain.Product, customers []domain.Customer) error {
	premiums := make([]float64, len(products))
	limits := make([]float64, len(products))
	for i := range products {
		premiums[i] = products[i].Premium
		limits[i] = products[i].CoverageLimit
	}
	premiumMean := mean(premiums)
	limitMean := mean(limits)

	for i := range products {
		p := &products[i]

		if math.IsNaN(p.Premium) || p.Premium <= 0 {
			p.Premium = premiumMean
		}
		if math.IsNaN(p.CoverageLimit) || p.CoverageLimit <= 0 {
			p.CoverageLimit = limitMean
		}

		if p.RiskLevel == "" {
			p.RiskLevel = defaultRisk
		} else {
			p.RiskLevel = CanonicalCategory(p.RiskLevel)
		}
		var ok bool
		if p.RiskCode, ok = riskCodes[p.RiskLevel]; !ok {
			return domain.ValidationError{Field: "risk_level", Value: p.RiskLevel, Reason: "unknown value"}
		}
	}

	for i := range products {
		premiums[i] = products[i].Premium
		limits[i] = products[i].CoverageLimit
	}
	premMean, premStd := meanStd(premiums)
	limMean, limStd := meanStd(limits)

	// Product age midpoints are standardized against the customer age
	// distribution so the scorer compares like dimensions.
	ages := make([]float64, len(customers))
	for i := range customers {
		ages[i] = customers[i].Age
	}
	ageMean, ageStd := meanStd(ages)

	for i := range products {
		p := &products[i]
		p.PremiumStd = standardize(p.Premium, premMean, premStd)
		p.CoverageStd = standardize(p.CoverageLimit, limMean, limStd)
		p.AgeMidStd = standardize(p.AgeMid(), ageMean, ageStd)
	}

	return nil
}

// mean over non-NaN values; 0 when nothing usable.
func mean(vals []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func meanStd(vals []float64) (float64, float64) {
	m := mean(vals)
	sum, n := 0.0, 0
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		d := v - m
		sum += d * d
		n++
	}
	if n == 0 {
		return m, 0
	}
	return m, math.Sqrt(sum / float64(n))
}

// standardize z-scores a value; zero-variance columns collapse to 0.
func standardize(v, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (v - mean) / std
}
