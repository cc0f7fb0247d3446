package agents

// Emotion tracks the emotional well-being of an agent.
// All three dimensions stay within [0,1].
type Emotion struct {
	Happiness float64 `json:"happiness"`
	Stress    float64 `json:"stress"`
	Energy    float64 `json:"energy"`
}

// NewEmotion returns the baseline emotional state for a fresh agent.
func NewEmotion() Emotion {
	return Emotion{
		Happiness: 0.5,
		Stress:    0.2,
		Energy:    0.7,
	}
}

// Adjust applies additive deltas to each dimension, clamping to [0,1].
func (e *Emotion) Adjust(happiness, stress, energy float64) {
	e.Happiness = clamp01(e.Happiness + happiness)
	e.Stress = clamp01(e.Stress + stress)
	e.Energy = clamp01(e.Energy + energy)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
