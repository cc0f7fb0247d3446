package scenario

import (
	"github.com/amaz421326/PixelSociety/internal/engine"
	"github.com/amaz421326/PixelSociety/internal/world"
)

// BaseSimulation creates the Neo Arcadia world with its three starting
// regions and no agents.
func BaseSimulation(seed int64) *engine.Simulation {
	w := world.New("Neo Arcadia", 0.6, 0.5, 0.7)
	sim := engine.New(w, seed)

	sim.AddRegion("Metropolis", map[string]float64{"food": 80, "energy": 120, "credits": 60}, "technology")
	sim.AddRegion("HarborTown", map[string]float64{"food": 120, "energy": 40, "credits": 30}, "trade")
	sim.AddRegion("GreenFields", map[string]float64{"food": 160, "energy": 20, "credits": 10}, "agriculture")

	return sim
}

// PopulateDemoAgents fills a simulation with the default demo cast and
// schedules the harvest festival two ticks out.
func PopulateDemoAgents(sim *engine.Simulation) {
	AgentSpec{
		Name:            "Aurora",
		PersonalityCode: "INFP",
		Prompt:          "A compassionate artist seeking social change.",
		TraitOverrides:  map[string]float64{"creativity": 0.3, "empathy": 0.2},
		Motivations:     []string{"Inspire community"},
		Values:          []string{"Harmony", "Art"},
		Occupation:      "Community Planner",
		InitialSkills:   map[string]float64{"Design": 0.6},
		InitialTasks: []TaskSpec{{
			Name:             "Community Garden",
			Description:      "Establish a sustainable garden in GreenFields",
			RequiredProgress: 2.5,
		}},
		Region: "GreenFields",
	}.Apply(sim)

	AgentSpec{
		Name:            "Dex",
		PersonalityCode: "ESTJ",
		Prompt:          "A pragmatic entrepreneur driven to optimize society's logistics.",
		TraitOverrides:  map[string]float64{"organization": 0.3, "ambition": 0.2},
		Motivations:     []string{"Grow wealth"},
		Values:          []string{"Efficiency", "Order"},
		Occupation:      "Logistics Manager",
		InitialSkills:   map[string]float64{"Management": 0.7},
		InitialTasks: []TaskSpec{{
			Name:              "Supply Chain",
			Description:       "Improve the supply chain between Metropolis and HarborTown",
			RequiredProgress:  3.0,
			Difficulty:        1.5,
			ResourcesRequired: map[string]float64{"time": 8.0},
		}},
		Region: "Metropolis",
	}.Apply(sim)

	AgentSpec{
		Name:            "Nova",
		PersonalityCode: "ENTP",
		Prompt:          "A futurist technologist experimenting with AI ethics.",
		TraitOverrides:  map[string]float64{"creativity": 0.2, "rationality": 0.3},
		Motivations:     []string{"Innovate AI"},
		Values:          []string{"Freedom", "Knowledge"},
		Occupation:      "AI Researcher",
		InitialSkills:   map[string]float64{"Engineering": 0.8},
		InitialTasks: []TaskSpec{{
			Name:              "Ethical AI Protocol",
			Description:       "Design guidelines that balance innovation and social harmony",
			RequiredProgress:  2.0,
			Difficulty:        1.2,
			ResourcesRequired: map[string]float64{"time": 6.0},
		}},
		Region: "Metropolis",
	}.Apply(sim)

	festival, _ := Preset(PresetHarvestFestival)
	sim.ScheduleEvent(festival, 2)
}

// DemoSimulation creates the complete demo: Neo Arcadia, the demo cast,
// and the scheduled festival.
func DemoSimulation(seed int64) *engine.Simulation {
	sim := BaseSimulation(seed)
	PopulateDemoAgents(sim)
	return sim
}
