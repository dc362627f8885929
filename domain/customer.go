package domain

// Canonical categorical values. The numeric codes assigned by the
// normalizer (business/dataset) are the single source of truth for
// encoding direction; downstream stages reuse the code fields and never
// reinterpret the raw strings.
const (
	MaritalSingle   = "Single"
	MaritalMarried  = "Married"
	MaritalDivorced = "Divorced"

	HealthGood    = "Good"
	HealthAverage = "Average"
	HealthPoor    = "Poor"

	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"

	EventNone       = "None"
	EventMarriage   = "Marriage"
	EventNewChild   = "NewChild"
	EventJobChange  = "JobChange"
	EventRetirement = "Retirement"
)

// CREATE TABLE public.customers (
//     id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     customer_id       BIGINT,
//     age               NUMERIC,
//     income            NUMERIC,
//     marital_status    TEXT,
//     has_children      INT,
//     health_condition  TEXT,
//     risk_tolerance    TEXT,
//     recent_life_event TEXT,
//     created_at        TIMESTAMPTZ DEFAULT NOW()
// );

type Customer struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      uint    `gorm:"column:customer_id" json:"customer_id"`
	Age             float64 `gorm:"column:age;type:numeric" json:"age"`
	Income          float64 `gorm:"column:income;type:numeric" json:"income"`
	MaritalStatus   string  `gorm:"column:marital_status;type:text" json:"marital_status"`
	HasChildren     int     `gorm:"column:has_children" json:"has_children"`
	HealthCondition string  `gorm:"column:health_condition;type:text" json:"health_condition"`
	RiskTolerance   string  `gorm:"column:risk_tolerance;type:text" json:"risk_tolerance"`
	RecentLifeEvent string  `gorm:"column:recent_life_event;type:text" json:"recent_life_event"`

	// Derived by the normalizer; not persisted.
	MaritalCode int     `gorm:"-" json:"-"`
	HealthCode  int     `gorm:"-" json:"-"`
	RiskCode    int     `gorm:"-" json:"-"`
	EventCode   int     `gorm:"-" json:"-"`
	AgeStd      float64 `gorm:"-" json:"-"`
	IncomeStd   float64 `gorm:"-" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
