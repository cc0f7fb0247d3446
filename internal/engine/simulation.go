// Package engine provides the tick-based simulation orchestrator: it owns the
// world, the agent registry, the pending-event queue, and the single seeded
// random stream, and sequences one tick end-to-end.
package engine

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/amaz421326/PixelSociety/internal/agents"
	"github.com/amaz421326/PixelSociety/internal/entropy"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// SimulationResult is the immutable snapshot produced by one tick. Feedback
// holds every agent's task messages keyed by name; Events lists the
// descriptions of events that fired this tick.
type SimulationResult struct {
	Tick     int                 `json:"tick"`
	Feedback map[string][]string `json:"feedback"`
	Events   []string            `json:"events"`
}

// Simulation coordinates the world, agents and events. A tick is the atomic
// unit of mutation: nothing else may observe or modify the world or agents
// while a tick executes. Every Simulation owns its world, registry and RNG
// exclusively; nothing is safe to share across instances.
type Simulation struct {
	World   *world.World
	History []SimulationResult

	registry  map[string]*agents.Agent
	order     []string // registry iteration order (insertion order)
	scheduled []ScheduledEvent
	rng       *rand.Rand
	seed      int64
}

// New creates a simulation around a world. A zero seed means "pick one":
// the seed is drawn from crypto-grade entropy and the run is not
// reproducible. Any other seed gives byte-identical runs for identical
// setup sequences.
func New(w *world.World, seed int64) *Simulation {
	if seed == 0 {
		seed = entropy.Seed()
	}
	return &Simulation{
		World:    w,
		registry: make(map[string]*agents.Agent),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
	}
}

// Seed returns the seed this simulation was constructed with.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// AddAgent registers an agent by name, optionally placing it in a region.
// A name collision replaces the previous agent but keeps its position in
// the iteration order (last write wins).
func (s *Simulation) AddAgent(agent *agents.Agent, region string) {
	if _, exists := s.registry[agent.Name]; !exists {
		s.order = append(s.order, agent.Name)
	}
	s.registry[agent.Name] = agent
	if region != "" {
		s.World.PlaceAgent(agent.Name, region)
	}
}

// AddRegion constructs and registers a region. Nil resources default to
// {food: 50, energy: 30}; an empty culture focus defaults to "urban".
func (s *Simulation) AddRegion(name string, resources map[string]float64, cultureFocus string) *world.Region {
	if resources == nil {
		resources = map[string]float64{"food": 50, "energy": 30}
	}
	if cultureFocus == "" {
		cultureFocus = "urban"
	}
	region := world.NewRegion(name, resources, cultureFocus)
	s.World.AddRegion(region)
	return region
}

// ScheduleEvent queues an event to fire inTicks ticks from now. Zero fires
// on the very next tick, since due events are checked after the world clock
// has already advanced.
func (s *Simulation) ScheduleEvent(event *Event, inTicks int) {
	s.scheduled = append(s.scheduled, ScheduledEvent{
		Tick:  s.World.TickCount + inTicks,
		Event: event,
	})
}

// Agent returns a registered agent by name.
func (s *Simulation) Agent(name string) (*agents.Agent, bool) {
	agent, ok := s.registry[name]
	return agent, ok
}

// Agents returns the registered agents in registry iteration order.
func (s *Simulation) Agents() []*agents.Agent {
	population := make([]*agents.Agent, 0, len(s.order))
	for _, name := range s.order {
		population = append(population, s.registry[name])
	}
	return population
}

// AgentNames returns the registry iteration order.
func (s *Simulation) AgentNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// PendingEvents returns how many scheduled events have not yet fired.
func (s *Simulation) PendingEvents() int {
	return len(s.scheduled)
}

// Tick advances the simulation by one step, in fixed order: world clock,
// due events, per-agent updates, the social interaction pass, and world
// feedback from agent averages. The assembled result is appended to History.
func (s *Simulation) Tick() SimulationResult {
	s.World.Tick()

	triggered := s.triggerEvents()

	feedback := make(map[string][]string, len(s.order))
	for _, name := range s.order {
		agent := s.registry[name]
		taskFeedback := agent.Tick(s.World)
		messages := make([]string, 0, len(taskFeedback))
		for _, fb := range taskFeedback {
			messages = append(messages, fb.Message)
		}
		feedback[agent.Name] = messages
	}

	s.runInteractions()
	s.applyWorldFeedback()

	result := SimulationResult{
		Tick:     s.World.TickCount,
		Feedback: feedback,
		Events:   triggered,
	}
	s.History = append(s.History, result)

	slog.Debug("tick complete",
		"tick", result.Tick,
		"agents", len(s.order),
		"events_fired", len(triggered),
		"events_pending", len(s.scheduled),
	)

	return result
}

// Run executes exactly steps ticks. Each tick depends on the side effects
// of the previous one; results are returned in order.
func (s *Simulation) Run(steps int) []SimulationResult {
	results := make([]SimulationResult, 0, steps)
	for i := 0; i < steps; i++ {
		results = append(results, s.Tick())
	}
	return results
}

// triggerEvents fires every due scheduled event in insertion order and
// retains the rest in their original relative order.
func (s *Simulation) triggerEvents() []string {
	triggered := []string{}
	pending := s.scheduled[:0]
	for _, scheduled := range s.scheduled {
		if scheduled.Tick <= s.World.TickCount {
			scheduled.Event.Apply(s.World, s.Agents())
			triggered = append(triggered, scheduled.Event.Description)
		} else {
			pending = append(pending, scheduled)
		}
	}
	s.scheduled = pending
	return triggered
}

// runInteractions shuffles the population with the simulation's own RNG and
// pairs consecutive agents. An odd population leaves the last agent without
// a partner this tick. This shuffle is the engine's only point of randomness.
func (s *Simulation) runInteractions() {
	population := s.Agents()
	s.rng.Shuffle(len(population), func(i, j int) {
		population[i], population[j] = population[j], population[i]
	})
	for i := 0; i+1 < len(population); i += 2 {
		s.handleInteraction(population[i], population[i+1])
	}
}

// handleInteraction computes trait compatibility between two agents and
// updates both directed relationships plus both moods.
func (s *Simulation) handleInteraction(a, b *agents.Agent) {
	affinity := 0.1
	affinity += 0.1 * (1 - math.Abs(a.Traits["sociability"]-b.Traits["sociability"]))
	affinity += 0.05 * (1 - math.Abs(a.Traits["empathy"]-b.Traits["empathy"]))
	affinity -= 0.05 * math.Abs(a.Traits["organization"]-b.Traits["organization"])
	if affinity > 1 {
		affinity = 1
	} else if affinity < -1 {
		affinity = -1
	}

	a.InfluenceRelationship(b.Name, affinity)
	b.InfluenceRelationship(a.Name, affinity)

	if affinity > 0 {
		a.AdjustEmotion(0.02, 0, 0)
		b.AdjustEmotion(0.02, 0, 0)
	} else {
		a.AdjustEmotion(0, 0.02, 0)
		b.AdjustEmotion(0, 0.02, 0)
	}
}

// applyWorldFeedback folds population averages back into the global
// metrics. Skipped entirely when there are no agents.
func (s *Simulation) applyWorldFeedback() {
	if len(s.order) == 0 {
		return
	}

	var totalAmbition, totalHappiness, totalStress float64
	for _, name := range s.order {
		agent := s.registry[name]
		totalAmbition += agent.Traits["ambition"]
		totalHappiness += agent.Emotion.Happiness
		totalStress += agent.Emotion.Stress
	}

	n := float64(len(s.order))
	avgAmbition := totalAmbition / n
	avgHappiness := totalHappiness / n
	avgStress := totalStress / n

	s.World.AdjustGlobalState(
		0.02*avgAmbition-0.01*avgStress,
		0.01*avgHappiness,
		0.02*avgHappiness-0.015*avgStress,
	)
}
