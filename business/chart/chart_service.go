package chart

import (
	"errors"

	"insureAdvisor/domain"
)

// Service turns a recommendation list into the Chart.js-shaped payload the
// dashboard renders. Pure presentation: no decision logic lives here.
type Service struct {
	normalize bool
}

// NewService builds the chart builder. With normalize set, every series is
// min-max scaled to [0, 1] so the radar view can share one axis.
func NewService(normalize bool) *Service {
	return &Service{normalize: normalize}
}

const monthsPerYear = 12

// coverage limits are charted in $100K units to share an axis with scores
const coverageUnit = 100000

func (s *Service) Build(recs []domain.Recommendation, products []domain.Product) (*domain.ChartData, error) {
	if len(recs) == 0 {
		return nil, errors.New("no recommendations provided for chart data")
	}

	byName := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byName[p.ProductName] = p
	}

	labels := make([]string, 0, len(recs))
	scores := make([]float64, 0, len(recs))
	premiums := make([]float64, 0, len(recs))
	coverages := make([]float64, 0, len(recs))
	risks := make([]float64, 0, len(recs))

	for _, rec := range recs {
		labels = append(labels, rec.ProductName)
		scores = append(scores, rec.Score)

		p, ok := byName[rec.ProductName]
		if !ok {
			premiums = append(premiums, 0)
			coverages = append(coverages, 0)
			risks = append(risks, 0)
			continue
		}
		premiums = append(premiums, p.Premium*monthsPerYear)
		coverages = append(coverages, p.CoverageLimit/coverageUnit)
		risks = append(risks, float64(p.RiskCode))
	}

	if s.normalize {
		scores = minMaxScale(scores)
		premiums = minMaxScale(premiums)
		coverages = minMaxScale(coverages)
		risks = minMaxScale(risks)
	}

	return &domain.ChartData{
		Labels: labels,
		Datasets: []domain.ChartDataset{
			{
				Label:           "Recommendation Scores",
				Data:            scores,
				BackgroundColor: "rgba(255, 99, 132, 0.5)",
				BorderColor:     "rgba(255, 99, 132, 1)",
				BorderWidth:     1,
			},
			{
				Label:           "Annual Premium ($)",
				Data:            premiums,
				BackgroundColor: "rgba(54, 162, 235, 0.5)",
				BorderColor:     "rgba(54, 162, 235, 1)",
				BorderWidth:     1,
			},
			{
				Label:           "Coverage Limit ($100K)",
				Data:            coverages,
				BackgroundColor: "rgba(255, 206, 86, 0.5)",
				BorderColor:     "rgba(255, 206, 86, 1)",
				BorderWidth:     1,
			},
			{
				Label:           "Risk Level",
				Data:            risks,
				BackgroundColor: "rgba(75, 192, 192, 0.5)",
				BorderColor:     "rgba(75, 192, 192, 1)",
				BorderWidth:     1,
			},
		},
	}, nil
}

// minMaxScale maps a series onto [0, 1]; a constant series collapses to 0.
func minMaxScale(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]float64, len(vals))
	if hi == lo {
		return out
	}
	for i, v := range vals {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}
