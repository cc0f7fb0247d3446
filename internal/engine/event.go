package engine

import (
	"github.com/amaz421326/PixelSociety/internal/agents"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// WorldEffect mutates global world state when an event fires.
type WorldEffect func(*world.World)

// AgentEffect mutates one agent when an event fires. Effects are applied to
// every agent in the population; there is no per-agent targeting.
type AgentEffect func(*agents.Agent, *world.World)

// Event is a one-shot effect bundle. The template itself is stateless; a
// ScheduledEvent consumes it exactly once when due.
type Event struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	WorldEffect  WorldEffect   `json:"-"`
	AgentEffects []AgentEffect `json:"-"`
}

// Apply runs the world effect, then each agent effect against the whole
// population, and records the event in the world log. Side effects only.
// A panicking effect is a caller-contract violation and propagates.
func (e *Event) Apply(w *world.World, population []*agents.Agent) {
	if e.WorldEffect != nil {
		e.WorldEffect(w)
	}
	for _, effect := range e.AgentEffects {
		for _, agent := range population {
			effect(agent, w)
		}
	}
	w.RecordEvent(e.Description)
}

// ScheduledEvent pairs an event with the absolute tick it fires on.
type ScheduledEvent struct {
	Tick  int    `json:"tick"`
	Event *Event `json:"event"`
}
