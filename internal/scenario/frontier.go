package scenario

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/amaz421326/PixelSociety/internal/engine"
)

// frontier resource bounds: noise in [0,1] maps into [floor, floor+span].
const (
	frontierResourceFloor = 10.0
	frontierResourceSpan  = 140.0
)

var frontierFocuses = [4]string{"agriculture", "trade", "industry", "research"}

// GenerateFrontier adds count procedurally generated outlying regions to a
// simulation. Three independent noise layers drive food, energy and
// credits; a fourth picks the culture focus. Identical seeds always build
// identical frontiers.
func GenerateFrontier(sim *engine.Simulation, count int, seed int64) {
	foodNoise := opensimplex.NewNormalized(seed)
	energyNoise := opensimplex.NewNormalized(seed + 1)
	creditsNoise := opensimplex.NewNormalized(seed + 2)
	focusNoise := opensimplex.NewNormalized(seed + 3)

	for i := 0; i < count; i++ {
		// Sample along a diagonal so neighboring regions vary smoothly.
		x := float64(i) * 0.7
		y := float64(i) * 0.4

		resources := map[string]float64{
			"food":    frontierResource(foodNoise.Eval2(x, y)),
			"energy":  frontierResource(energyNoise.Eval2(x, y)),
			"credits": frontierResource(creditsNoise.Eval2(x, y)),
		}

		focusIdx := int(focusNoise.Eval2(x, y) * float64(len(frontierFocuses)))
		if focusIdx >= len(frontierFocuses) {
			focusIdx = len(frontierFocuses) - 1
		}

		name := fmt.Sprintf("Frontier-%02d", i+1)
		sim.AddRegion(name, resources, frontierFocuses[focusIdx])
	}
}

func frontierResource(noise float64) float64 {
	return frontierResourceFloor + noise*frontierResourceSpan
}
