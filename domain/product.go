package domain

// Coverage categories products belong to and need sets are built from.
const (
	CoverageHealth = "Health"
	CoverageLife   = "Life"
	CoverageIncome = "Income"
)

// CREATE TABLE public.products (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id          BIGINT,
//     product_name        TEXT,
//     coverage_type       TEXT,
//     premium             NUMERIC,
//     coverage_limit      NUMERIC,
//     risk_level          TEXT,
//     recommended_age_min NUMERIC,
//     recommended_age_max NUMERIC,
//     description         TEXT,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         uint64  `gorm:"column:product_id" json:"product_id"`
	ProductName       string  `gorm:"column:product_name;type:text" json:"product_name"`
	CoverageType      string  `gorm:"column:coverage_type;type:text" json:"coverage_type"`
	Premium           float64 `gorm:"column:premium;type:numeric" json:"premium"`
	CoverageLimit     float64 `gorm:"column:coverage_limit;type:numeric" json:"coverage_limit"`
	RiskLevel         string  `gorm:"column:risk_level;type:text" json:"risk_level"`
	RecommendedAgeMin float64 `gorm:"column:recommended_age_min;type:numeric" json:"recommended_age_min"`
	RecommendedAgeMax float64 `gorm:"column:recommended_age_max;type:numeric" json:"recommended_age_max"`
	Description       string  `gorm:"column:description;type:text" json:"description,omitempty"`

	// Derived by the normalizer; not persisted.
	RiskCode    int     `gorm:"-" json:"-"`
	PremiumStd  float64 `gorm:"-" json:"-"`
	CoverageStd float64 `gorm:"-" json:"-"`
	AgeMidStd   float64 `gorm:"-" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// AgeMid is the midpoint of the recommended age range, the product-side
// analogue of customer age in the similarity vector.
func (p Product) AgeMid() float64 {
	return (p.RecommendedAgeMin + p.RecommendedAgeMax) / 2
}
