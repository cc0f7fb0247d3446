// Package world provides the shared world state: global metrics, regions,
// agent placement, and the append-only event log.
package world

import "fmt"

// Region is a named location within the world that agents can inhabit.
type Region struct {
	Name         string             `json:"name"`
	Resources    map[string]float64 `json:"resources"` // Amounts are never negative
	CultureFocus string             `json:"culture_focus"`
	Population   int                `json:"population"`
}

// NewRegion creates a region with its own resource map.
func NewRegion(name string, resources map[string]float64, cultureFocus string) *Region {
	owned := make(map[string]float64, len(resources))
	for k, v := range resources {
		owned[k] = v
	}
	return &Region{
		Name:         name,
		Resources:    owned,
		CultureFocus: cultureFocus,
	}
}

// AdjustResource applies a delta to a named resource, flooring at zero.
func (r *Region) AdjustResource(resource string, delta float64) {
	next := r.Resources[resource] + delta
	if next < 0 {
		next = 0
	}
	r.Resources[resource] = next
}

// World is the global state shared across all agents.
// Economy, Culture and Stability are always clamped to [0,1];
// TickCount never decreases.
type World struct {
	Name           string             `json:"name"`
	Economy        float64            `json:"economy"`
	Culture        float64            `json:"culture"`
	Stability      float64            `json:"stability"`
	Regions        map[string]*Region `json:"regions"`
	AgentLocations map[string]string  `json:"agent_locations"`
	EventLog       []string           `json:"event_log"`
	TickCount      int                `json:"tick_count"`
}

// New creates a world with the given starting metrics, each clamped to [0,1].
func New(name string, economy, culture, stability float64) *World {
	return &World{
		Name:           name,
		Economy:        clamp01(economy),
		Culture:        clamp01(culture),
		Stability:      clamp01(stability),
		Regions:        make(map[string]*Region),
		AgentLocations: make(map[string]string),
	}
}

// AddRegion registers a region, replacing any existing region of the same name.
func (w *World) AddRegion(region *Region) {
	w.Regions[region.Name] = region
}

// PlaceAgent records an agent's location and bumps the destination region's
// population. Placing into an unknown region still records the location; only
// the population bookkeeping is skipped.
func (w *World) PlaceAgent(agentName, regionName string) {
	w.AgentLocations[agentName] = regionName
	if region, ok := w.Regions[regionName]; ok {
		region.Population++
	}
}

// RelocateAgent moves an agent to a new region, decrementing the previous
// region's population (floored at zero) before placing.
func (w *World) RelocateAgent(agentName, regionName string) {
	if previous, ok := w.AgentLocations[agentName]; ok {
		if region, ok := w.Regions[previous]; ok && region.Population > 0 {
			region.Population--
		}
	}
	w.PlaceAgent(agentName, regionName)
}

// RecordEvent appends a tick-tagged entry to the event log.
func (w *World) RecordEvent(description string) {
	w.EventLog = append(w.EventLog, fmt.Sprintf("[Tick %d] %s", w.TickCount, description))
}

// AdjustGlobalState applies additive deltas to the three global metrics,
// clamping each to [0,1].
func (w *World) AdjustGlobalState(economy, culture, stability float64) {
	w.Economy = clamp01(w.Economy + economy)
	w.Culture = clamp01(w.Culture + culture)
	w.Stability = clamp01(w.Stability + stability)
}

// RegionForAgent returns the region an agent currently occupies, or nil
// when the agent is unplaced or its region is unknown.
func (w *World) RegionForAgent(agentName string) *Region {
	location, ok := w.AgentLocations[agentName]
	if !ok {
		return nil
	}
	return w.Regions[location]
}

// Tick advances the world clock by one. This is the only mutator of TickCount.
func (w *World) Tick() {
	w.TickCount++
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
