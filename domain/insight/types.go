package insight

import (
	"datalens/domain/core"
)

// Type categorizes an insight for the presentation layer
type Type string

const (
	TypeAnomaly        Type = "anomaly"
	TypeTrend          Type = "trend"
	TypeCorrelation    Type = "correlation"
	TypeRecommendation Type = "recommendation"
	TypeQuality        Type = "quality"
	TypeSegmentation   Type = "segmentation"
	TypeOther          Type = "other"
)

// Importance labels the severity of an insight. It is a deterministic
// function of the underlying magnitude, never freely chosen.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Insight is a synthesized observation about a dataset. Insights are value
// objects: generated fresh on every analysis pass, never mutated.
type Insight struct {
	ID          core.ID        `json:"id"`
	Type        Type           `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Confidence  float64        `json:"confidence"`
	Importance  Importance     `json:"importance"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// New builds an insight with a fresh ID, clamping confidence into [0,1].
func New(t Type, title, description string, confidence float64, importance Importance, meta map[string]any) Insight {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Insight{
		ID:          core.NewID(),
		Type:        t,
		Title:       title,
		Description: description,
		Confidence:  confidence,
		Importance:  importance,
		Meta:        meta,
	}
}
