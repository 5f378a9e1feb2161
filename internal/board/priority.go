package board

// Priority classifies a tender by its estimated value.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Thresholds carries the two cut points for priority classification.
// Values strictly above High are high, values at or above Medium are
// medium, everything else is low.
type Thresholds struct {
	High   float64
	Medium float64
}

// DefaultThresholds mirror the values the business started with. Deployments
// override them through configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 1_000_000, Medium: 500_000}
}

func (t Thresholds) Classify(estimatedValue float64) Priority {
	switch {
	case estimatedValue > t.High:
		return PriorityHigh
	case estimatedValue >= t.Medium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
