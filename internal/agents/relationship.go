package agents

// Sentiment labels for a relationship, derived from trust and closeness.
const (
	SentimentAlly    = "ally"
	SentimentRival   = "rival"
	SentimentNeutral = "neutral"
)

// Relationship is one agent's directed view of another. The reverse
// direction is a separate object held by the other agent.
type Relationship struct {
	Other     string  `json:"other"`
	Closeness float64 `json:"closeness"` // 0.0–1.0
	Trust     float64 `json:"trust"`     // 0.0–1.0
	Sentiment string  `json:"sentiment"`
}

// NewRelationship creates the initial bond toward another agent.
func NewRelationship(other string) *Relationship {
	return &Relationship{
		Other:     other,
		Closeness: 0.1,
		Trust:     0.1,
		Sentiment: SentimentNeutral,
	}
}

// Adjust applies deltas to closeness and trust, clamps both to [0,1],
// and recomputes the sentiment label.
func (r *Relationship) Adjust(closeness, trust float64) {
	r.Closeness = clamp01(r.Closeness + closeness)
	r.Trust = clamp01(r.Trust + trust)

	switch {
	case r.Trust > 0.7 && r.Closeness > 0.6:
		r.Sentiment = SentimentAlly
	case r.Trust < 0.3 && r.Closeness < 0.3:
		r.Sentiment = SentimentRival
	default:
		r.Sentiment = SentimentNeutral
	}
}
