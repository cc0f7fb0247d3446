package scenario

import (
	"fmt"
	"sort"

	"github.com/amaz421326/PixelSociety/internal/agents"
	"github.com/amaz421326/PixelSociety/internal/engine"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// Preset event names. Effects cannot cross a serialization boundary, so
// external callers schedule events by naming one of these.
const (
	PresetHarvestFestival = "harvest_festival"
	PresetMarketSlump     = "market_slump"
	PresetStorm           = "storm"
)

// Preset returns a fresh copy of a named catalog event. The second return
// is false for unknown names.
func Preset(name string) (*engine.Event, bool) {
	builder, ok := presets[name]
	if !ok {
		return nil, false
	}
	return builder(), true
}

// PresetNames lists the catalog in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var presets = map[string]func() *engine.Event{
	PresetHarvestFestival: func() *engine.Event {
		return &engine.Event{
			Name:        "Harvest Festival",
			Description: "A joyful harvest festival boosts morale and cultural identity.",
			WorldEffect: func(w *world.World) {
				w.AdjustGlobalState(0, 0.1, 0.05)
			},
			AgentEffects: []engine.AgentEffect{
				func(a *agents.Agent, _ *world.World) {
					a.AdjustEmotion(0.1, -0.05, 0)
				},
			},
		}
	},
	PresetMarketSlump: func() *engine.Event {
		return &engine.Event{
			Name:        "Market Slump",
			Description: "A sudden market slump drains confidence and credits.",
			WorldEffect: func(w *world.World) {
				w.AdjustGlobalState(-0.1, 0, -0.05)
				for _, region := range w.Regions {
					region.AdjustResource("credits", -10)
				}
			},
			AgentEffects: []engine.AgentEffect{
				func(a *agents.Agent, _ *world.World) {
					a.AdjustResources(map[string]float64{"money": -15})
					a.AdjustEmotion(0, 0.05, 0)
				},
			},
		}
	},
	PresetStorm: func() *engine.Event {
		return &engine.Event{
			Name:        "Storm",
			Description: "A fierce storm disrupts daily life across the regions.",
			WorldEffect: func(w *world.World) {
				w.AdjustGlobalState(-0.05, 0, -0.05)
				for _, region := range w.Regions {
					region.AdjustResource("energy", -5)
				}
			},
			AgentEffects: []engine.AgentEffect{
				func(a *agents.Agent, _ *world.World) {
					a.AdjustEmotion(-0.02, 0.04, -0.05)
				},
			},
		}
	},
}

// CustomEvent builds a schedulable event from free-form text with no
// effects beyond the log entry. Useful for narration-only occurrences.
func CustomEvent(name, description string) *engine.Event {
	if description == "" {
		description = fmt.Sprintf("%s occurs.", name)
	}
	return &engine.Event{Name: name, Description: description}
}
