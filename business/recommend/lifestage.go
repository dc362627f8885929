package recommend

import (
	"math"

	"insureAdvisor/domain"
)

// Classify derives the life-stage label and the event-recency weight from
// a normalized profile. Rules are ordered, first match wins, and the last
// branch is a catch-all: every well-formed profile classifies.
func (cfg Config) Classify(c domain.Customer) (domain.LifeStage, float64, error) {
	if math.IsNaN(c.Age) || c.Age <= 0 {
		return "", 0, domain.ValidationError{Field: "age", Value: "", Reason: "required and must be positive"}
	}
	if _, ok := eventWeightable[c.RecentLifeEvent]; !ok {
		return "", 0, domain.ValidationError{Field: "recent_life_event", Value: c.RecentLifeEvent, Reason: "unknown value"}
	}

	var stage domain.LifeStage
	switch {
	case c.Age < cfg.YoungAdultMax && c.MaritalStatus == domain.MaritalSingle && c.HasChildren == 0:
		stage = domain.StageYoungSingle
	case c.Age >= cfg.FamilyMin && c.Age <= cfg.FamilyMax && c.MaritalStatus == domain.MaritalMarried && c.HasChildren > 0:
		stage = domain.StageYoungFamily
	case c.Age > cfg.FamilyMax && c.MaritalStatus == domain.MaritalMarried:
		stage = domain.StageMatureFamily
	case c.Age >= cfg.RetirementMin:
		stage = domain.StageRetirement
	default:
		stage = domain.StageMidlifeSingle
	}

	return stage, cfg.eventWeight(c.RecentLifeEvent), nil
}

var eventWeightable = map[string]struct{}{
	domain.EventNone:       {},
	domain.EventMarriage:   {},
	domain.EventNewChild:   {},
	domain.EventJobChange:  {},
	domain.EventRetirement: {},
}

// eventWeight starts at the 1.0 baseline and is bumped for recent life
// events that should boost recommendation scores.
func (cfg Config) eventWeight(event string) float64 {
	switch event {
	case domain.EventMarriage, domain.EventNewChild, domain.EventJobChange:
		return cfg.WeightElevated
	case domain.EventRetirement:
		return cfg.WeightHigh
	default:
		return 1.0
	}
}
