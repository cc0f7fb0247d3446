// Package scenario builds starting configurations for simulations: declarative
// spec shapes consumed from external callers, the packaged demo world, an
// event preset catalog, and a procedural frontier-region generator.
package scenario

import (
	"github.com/amaz421326/PixelSociety/internal/agents"
	"github.com/amaz421326/PixelSociety/internal/engine"
)

// RegionSpec declares a region to add to a simulation.
type RegionSpec struct {
	Name         string             `json:"name"`
	Resources    map[string]float64 `json:"resources,omitempty"`
	CultureFocus string             `json:"culture_focus,omitempty"`
}

// TaskSpec declares a task to assign to an agent. ProgressFunc is only
// settable in-process; it never crosses a serialization boundary.
type TaskSpec struct {
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	RequiredProgress  float64             `json:"required_progress,omitempty"`
	Difficulty        float64             `json:"difficulty,omitempty"`
	ResourcesRequired map[string]float64  `json:"resources_required,omitempty"`
	ProgressFunc      agents.ProgressFunc `json:"-"`
}

// AgentSpec declares an agent to register. Optional fields keep their
// engine defaults when omitted.
type AgentSpec struct {
	Name            string             `json:"name"`
	PersonalityCode string             `json:"personality_code"`
	Prompt          string             `json:"prompt,omitempty"`
	TraitOverrides  map[string]float64 `json:"trait_overrides,omitempty"`
	Motivations     []string           `json:"motivations,omitempty"`
	Values          []string           `json:"values,omitempty"`
	Occupation      string             `json:"occupation,omitempty"`
	InitialSkills   map[string]float64 `json:"initial_skills,omitempty"` // skill → learning effort
	InitialTasks    []TaskSpec         `json:"initial_tasks,omitempty"`
	Region          string             `json:"region,omitempty"`
}

// EventSpec declares an event and when to fire it, counted in ticks from
// the moment of scheduling.
type EventSpec struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	WorldEffect  engine.WorldEffect   `json:"-"`
	AgentEffects []engine.AgentEffect `json:"-"`
	InTicks      int                  `json:"in_ticks"`
}

// Build constructs the declared task, applying engine defaults for omitted
// numeric fields.
func (ts TaskSpec) Build() *agents.Task {
	task := agents.NewTask(ts.Name, ts.Description)
	if ts.RequiredProgress > 0 {
		task.RequiredProgress = ts.RequiredProgress
	}
	if ts.Difficulty > 0 {
		task.Difficulty = ts.Difficulty
	}
	for resource, amount := range ts.ResourcesRequired {
		task.ResourcesRequired[resource] = amount
	}
	task.ProgressFunc = ts.ProgressFunc
	return task
}

// Build constructs the declared agent, including customization, initial
// skills, and initial tasks.
func (as AgentSpec) Build() *agents.Agent {
	agent := agents.New(as.Name, as.PersonalityCode)
	agent.Prompt = as.Prompt
	if as.Occupation != "" {
		agent.Occupation = as.Occupation
	}
	agent.Customize(as.TraitOverrides, as.Motivations, as.Values)
	for skill, effort := range as.InitialSkills {
		agent.LearnSkill(skill, effort)
	}
	for _, ts := range as.InitialTasks {
		agent.AssignTask(ts.Build())
	}
	return agent
}

// Apply adds the declared region to a simulation.
func (rs RegionSpec) Apply(sim *engine.Simulation) {
	sim.AddRegion(rs.Name, rs.Resources, rs.CultureFocus)
}

// Apply builds the declared agent and registers it with the simulation.
func (as AgentSpec) Apply(sim *engine.Simulation) *agents.Agent {
	agent := as.Build()
	sim.AddAgent(agent, as.Region)
	return agent
}

// Apply schedules the declared event.
func (es EventSpec) Apply(sim *engine.Simulation) {
	sim.ScheduleEvent(&engine.Event{
		Name:         es.Name,
		Description:  es.Description,
		WorldEffect:  es.WorldEffect,
		AgentEffects: es.AgentEffects,
	}, es.InTicks)
}
