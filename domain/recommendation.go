package domain

import (
	"time"

	"gorm.io/datatypes"
)

// LifeStage is the closed set of life-phase labels the classifier emits.
type LifeStage string

const (
	StageYoungSingle   LifeStage = "Student/Young Single"
	StageYoungFamily   LifeStage = "Young Family"
	StageMatureFamily  LifeStage = "Mature Family"
	StageRetirement    LifeStage = "Retirement"
	StageMidlifeSingle LifeStage = "Midlife Single"
)

// Recommendation is one ranked entry produced for a single request.
// It is transient; only the audit event below is ever persisted.
type Recommendation struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// RecommendationMeta carries the intermediate pipeline outputs alongside
// the ranked list so callers can render or log them.
type RecommendationMeta struct {
	LifeStage   LifeStage `json:"life_stage"`
	EventWeight float64   `json:"event_weight"`
	Needs       []string  `json:"needs"`
	Fallback    bool      `json:"fallback"`
}

// RecommendationResult is the payload of the one logical core operation.
type RecommendationResult struct {
	CustomerID      uint             `json:"customer_id"`
	Recommendations []Recommendation `json:"recommendations"`
	ChartData       *ChartData       `json:"chart_data,omitempty"`
}

// RecommendationEvent is the audit row written per served request when a
// database is configured. Best effort: a failed insert never fails the
// request.
type RecommendationEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"column:customer_id;not null" json:"customer_id"`
	LifeStage  string    `gorm:"column:life_stage;not null" json:"life_stage"`
	Fallback   bool      `gorm:"column:fallback;not null" json:"fallback"`
	TopScore   float64   `gorm:"column:top_score" json:"top_score"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Context datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}

// ChartData is the Chart.js-shaped presentation payload derived from a
// recommendation list. Built by business/chart; carries no decision logic.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}
