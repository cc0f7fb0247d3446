package reports

import (
	"sort"

	"github.com/amaz421326/PixelSociety/internal/agents"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// RelationshipSnapshot is one directed bond as exposed to consumers.
type RelationshipSnapshot struct {
	Other        string `json:"other"`
	ClosenessPct int    `json:"closeness_pct"`
	TrustPct     int    `json:"trust_pct"`
	Sentiment    string `json:"sentiment"`
}

// AgentSnapshot is the reporting view of one agent. Skill levels and
// emotion dimensions are exposed as percentages.
type AgentSnapshot struct {
	Name          string                 `json:"name"`
	Personality   string                 `json:"personality"`
	Occupation    string                 `json:"occupation"`
	Motivations   []string               `json:"motivations"`
	Values        []string               `json:"values"`
	Traits        map[string]float64     `json:"traits"`
	SkillsPct     map[string]int         `json:"skills_pct"`
	Resources     map[string]float64     `json:"resources"`
	Relationships []RelationshipSnapshot `json:"relationships"`
	HappinessPct  int                    `json:"happiness_pct"`
	StressPct     int                    `json:"stress_pct"`
	EnergyPct     int                    `json:"energy_pct"`
}

// RegionSnapshot is the reporting view of one region.
type RegionSnapshot struct {
	Name         string             `json:"name"`
	CultureFocus string             `json:"culture_focus"`
	Population   int                `json:"population"`
	Resources    map[string]float64 `json:"resources"`
}

// WorldSnapshot is the reporting view of the world: metric percentages,
// regions, placements, and the last few event-log entries.
type WorldSnapshot struct {
	Name           string            `json:"name"`
	Tick           int               `json:"tick"`
	EconomyPct     int               `json:"economy_pct"`
	CulturePct     int               `json:"culture_pct"`
	StabilityPct   int               `json:"stability_pct"`
	Regions        []RegionSnapshot  `json:"regions"`
	AgentLocations map[string]string `json:"agent_locations"`
	RecentEvents   []string          `json:"recent_events"`
}

func pct(v float64) int {
	return int(v*100 + 0.5)
}

// SnapshotAgent builds the reporting view of an agent. All maps and slices
// are copies; mutating a snapshot never touches live simulation state.
func SnapshotAgent(agent *agents.Agent) AgentSnapshot {
	traits := make(map[string]float64, len(agent.Traits))
	for k, v := range agent.Traits {
		traits[k] = v
	}

	skills := make(map[string]int, len(agent.Skills))
	for k, v := range agent.Skills {
		skills[k] = pct(v)
	}

	resources := make(map[string]float64, len(agent.Resources))
	for k, v := range agent.Resources {
		resources[k] = v
	}

	relationships := make([]RelationshipSnapshot, 0, len(agent.Relationships))
	for _, rel := range agent.Relationships {
		relationships = append(relationships, RelationshipSnapshot{
			Other:        rel.Other,
			ClosenessPct: pct(rel.Closeness),
			TrustPct:     pct(rel.Trust),
			Sentiment:    rel.Sentiment,
		})
	}
	sort.Slice(relationships, func(i, j int) bool {
		return relationships[i].Other < relationships[j].Other
	})

	return AgentSnapshot{
		Name:          agent.Name,
		Personality:   agent.Personality.Code,
		Occupation:    agent.Occupation,
		Motivations:   append([]string{}, agent.Motivations...),
		Values:        append([]string{}, agent.Values...),
		Traits:        traits,
		SkillsPct:     skills,
		Resources:     resources,
		Relationships: relationships,
		HappinessPct:  pct(agent.Emotion.Happiness),
		StressPct:     pct(agent.Emotion.Stress),
		EnergyPct:     pct(agent.Emotion.Energy),
	}
}

// SnapshotWorld builds the reporting view of the world.
func SnapshotWorld(w *world.World) WorldSnapshot {
	regions := make([]RegionSnapshot, 0, len(w.Regions))
	for _, name := range sortedRegionNames(w) {
		region := w.Regions[name]
		resources := make(map[string]float64, len(region.Resources))
		for k, v := range region.Resources {
			resources[k] = v
		}
		regions = append(regions, RegionSnapshot{
			Name:         region.Name,
			CultureFocus: region.CultureFocus,
			Population:   region.Population,
			Resources:    resources,
		})
	}

	locations := make(map[string]string, len(w.AgentLocations))
	for k, v := range w.AgentLocations {
		locations[k] = v
	}

	recent := []string{}
	if n := len(w.EventLog); n > 0 {
		start := n - recentEventLimit
		if start < 0 {
			start = 0
		}
		recent = append(recent, w.EventLog[start:]...)
	}

	return WorldSnapshot{
		Name:           w.Name,
		Tick:           w.TickCount,
		EconomyPct:     pct(w.Economy),
		CulturePct:     pct(w.Culture),
		StabilityPct:   pct(w.Stability),
		Regions:        regions,
		AgentLocations: locations,
		RecentEvents:   recent,
	}
}
