// Package agents provides the per-entity simulation state: traits, skills,
// resources, emotion, relationships, and owned tasks.
package agents

import (
	"github.com/amaz421326/PixelSociety/internal/personality"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// Agent is an autonomous entity advanced by the simulation. Each agent is
// owned exclusively by one simulation's registry and is never shared.
type Agent struct {
	Name        string              `json:"name"`
	Personality personality.Profile `json:"personality"`
	Prompt      string              `json:"prompt,omitempty"`
	Occupation  string              `json:"occupation"`

	Traits    map[string]float64 `json:"traits"`    // trait name → value in [-1,1]
	Skills    map[string]float64 `json:"skills"`    // skill name → level in [0,1]
	Resources map[string]float64 `json:"resources"` // amounts never negative

	Motivations []string `json:"motivations"`
	Values      []string `json:"values"`

	Relationships map[string]*Relationship `json:"relationships"`
	Tasks         []*Task                  `json:"tasks"`
	Emotion       Emotion                  `json:"emotion"`
}

// New creates an agent seeded from the personality table. Every agent gets
// its own fresh resource map; defaults are never shared between instances.
func New(name, personalityCode string) *Agent {
	profile := personality.Lookup(personalityCode)

	traits := make(map[string]float64, len(profile.TraitModifiers))
	for trait, value := range profile.TraitModifiers {
		traits[trait] = value
	}

	return &Agent{
		Name:        name,
		Personality: profile,
		Occupation:  "Unassigned",
		Traits:      traits,
		Skills:      make(map[string]float64),
		Resources: map[string]float64{
			"money": 100.0,
			"time":  40.0,
		},
		Relationships: make(map[string]*Relationship),
		Emotion:       NewEmotion(),
	}
}

// Customize applies prompt-derived tweaks: trait overrides are added to the
// current values and clamped to [-1,1]; names outside the fixed trait set
// are ignored. Motivations and values are appended, never replaced.
func (a *Agent) Customize(traitOverrides map[string]float64, motivations, values []string) {
	for _, key := range personality.TraitKeys {
		if delta, ok := traitOverrides[key]; ok {
			a.Traits[key] = clampSigned(a.Traits[key] + delta)
		}
	}
	a.Motivations = append(a.Motivations, motivations...)
	a.Values = append(a.Values, values...)
}

// Relationship returns the bond toward another agent, creating it lazily.
func (a *Agent) Relationship(other string) *Relationship {
	rel, ok := a.Relationships[other]
	if !ok {
		rel = NewRelationship(other)
		a.Relationships[other] = rel
	}
	return rel
}

// InfluenceRelationship shifts the bond toward another agent by a scaled
// affinity. Negative affinity erodes the bond.
func (a *Agent) InfluenceRelationship(other string, affinity float64) {
	a.Relationship(other).Adjust(0.1*affinity, 0.1*affinity)
}

// LearnSkill raises a skill level, more effectively for creative agents.
// Levels cap at 1.0.
func (a *Agent) LearnSkill(skill string, effort float64) {
	baseline := 0.5 + a.Traits["creativity"]*0.2
	level := a.Skills[skill] + effort*baseline
	if level > 1.0 {
		level = 1.0
	}
	a.Skills[skill] = level
}

// AdjustResources applies additive deltas per resource, flooring each at zero.
func (a *Agent) AdjustResources(deltas map[string]float64) {
	for resource, delta := range deltas {
		next := a.Resources[resource] + delta
		if next < 0 {
			next = 0
		}
		a.Resources[resource] = next
	}
}

// AdjustEmotion applies additive deltas to the emotional state.
func (a *Agent) AdjustEmotion(happiness, stress, energy float64) {
	a.Emotion.Adjust(happiness, stress, energy)
}

// AssignTask appends a task to the agent's workload. No dedup check.
func (a *Agent) AssignTask(task *Task) {
	a.Tasks = append(a.Tasks, task)
}

// AdvanceTasks progresses every owned task once and drops completed tasks
// from the workload. Completion is reported exactly once, on the tick it
// happens.
func (a *Agent) AdvanceTasks(w *world.World) []TaskFeedback {
	feedback := make([]TaskFeedback, 0, len(a.Tasks))
	remaining := a.Tasks[:0]
	for _, task := range a.Tasks {
		fb := task.Advance(a, w)
		feedback = append(feedback, fb)
		if !task.Completed {
			remaining = append(remaining, task)
		}
	}
	a.Tasks = remaining
	return feedback
}

// Tick updates the agent for a single simulation step: mood shifts from
// time pressure, passive time regeneration, task progress, and relationship
// decay. Returns the task feedback produced this tick.
func (a *Agent) Tick(w *world.World) []TaskFeedback {
	if a.Resources["time"] < 10 {
		a.AdjustEmotion(0, 0.05, 0)
	} else {
		a.AdjustEmotion(0.02, -0.02, 0)
	}

	// Agents naturally regenerate a bit of time each tick.
	a.AdjustResources(map[string]float64{"time": 5.0})

	feedback := a.AdvanceTasks(w)

	// Bonds fade unless maintained.
	for _, rel := range a.Relationships {
		rel.Adjust(-0.02, -0.01)
	}

	return feedback
}

func (a *Agent) bestSkillLevel() float64 {
	if len(a.Skills) == 0 {
		return 0.1
	}
	best := 0.0
	for _, level := range a.Skills {
		if level > best {
			best = level
		}
	}
	return best
}
