// Package reports renders agent and world state for humans. Nothing here
// mutates simulation state; it is a presentation layer over the data the
// engine exposes.
package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/amaz421326/PixelSociety/internal/agents"
	"github.com/amaz421326/PixelSociety/internal/personality"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// recentEventLimit caps how much of the event log a report shows.
const recentEventLimit = 5

func formatPercentage(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

// AgentReport renders a full profile of one agent: personality, traits,
// skills, resources, relationships, and emotional state.
func AgentReport(agent *agents.Agent) string {
	lines := []string{
		fmt.Sprintf("Agent %s (%s)", agent.Name, agent.Personality.Code),
		fmt.Sprintf("Occupation: %s", agent.Occupation),
		fmt.Sprintf("Motivations: %s", joinOrNone(agent.Motivations)),
		fmt.Sprintf("Values: %s", joinOrNone(agent.Values)),
		"Traits:",
	}
	for _, trait := range personality.TraitKeys {
		lines = append(lines, fmt.Sprintf("  - %s: %+.2f", trait, agent.Traits[trait]))
	}

	lines = append(lines, "Skills:")
	if len(agent.Skills) > 0 {
		for _, skill := range sortedKeys(agent.Skills) {
			lines = append(lines, fmt.Sprintf("  - %s: %s", skill, formatPercentage(agent.Skills[skill])))
		}
	} else {
		lines = append(lines, "  - None yet")
	}

	lines = append(lines, "Resources:")
	for _, resource := range sortedKeys(agent.Resources) {
		lines = append(lines, fmt.Sprintf("  - %s: %s", resource, humanize.CommafWithDigits(agent.Resources[resource], 1)))
	}

	lines = append(lines, "Relationships:")
	if len(agent.Relationships) > 0 {
		others := make([]string, 0, len(agent.Relationships))
		for other := range agent.Relationships {
			others = append(others, other)
		}
		sort.Strings(others)
		for _, other := range others {
			rel := agent.Relationships[other]
			lines = append(lines, fmt.Sprintf("  - %s: closeness %s, trust %s (%s)",
				rel.Other, formatPercentage(rel.Closeness), formatPercentage(rel.Trust), rel.Sentiment))
		}
	} else {
		lines = append(lines, "  - None yet")
	}

	lines = append(lines, fmt.Sprintf("Emotion: happiness %s, stress %s, energy %s",
		formatPercentage(agent.Emotion.Happiness),
		formatPercentage(agent.Emotion.Stress),
		formatPercentage(agent.Emotion.Energy)))

	return strings.Join(lines, "\n")
}

// WorldReport renders the global metrics, the region roster, each agent's
// location, and the tail of the event log.
func WorldReport(w *world.World, population []*agents.Agent) string {
	lines := []string{
		fmt.Sprintf("World: %s", w.Name),
		fmt.Sprintf("Economy: %s | Culture: %s | Stability: %s",
			formatPercentage(w.Economy), formatPercentage(w.Culture), formatPercentage(w.Stability)),
		"Regions:",
	}

	for _, name := range sortedRegionNames(w) {
		region := w.Regions[name]
		parts := make([]string, 0, len(region.Resources))
		for _, resource := range sortedKeys(region.Resources) {
			parts = append(parts, fmt.Sprintf("%s: %s", resource, humanize.CommafWithDigits(region.Resources[resource], 0)))
		}
		lines = append(lines, fmt.Sprintf("  - %s (focus: %s, population: %d) resources -> %s",
			region.Name, region.CultureFocus, region.Population, strings.Join(parts, ", ")))
	}

	lines = append(lines, "Agents:")
	for _, agent := range population {
		location, ok := w.AgentLocations[agent.Name]
		if !ok {
			location = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("  - %s located in %s, occupation %s", agent.Name, location, agent.Occupation))
	}

	if len(w.EventLog) > 0 {
		lines = append(lines, "Recent events:")
		start := len(w.EventLog) - recentEventLimit
		if start < 0 {
			start = 0
		}
		for _, entry := range w.EventLog[start:] {
			lines = append(lines, fmt.Sprintf("  * %s", entry))
		}
	}

	return strings.Join(lines, "\n")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedRegionNames(w *world.World) []string {
	names := make([]string, 0, len(w.Regions))
	for name := range w.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
