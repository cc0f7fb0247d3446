package agents

import (
	"fmt"
	"sort"

	"github.com/amaz421326/PixelSociety/internal/world"
)

// ProgressFunc computes a custom progress delta for one advancement attempt.
// When nil, Task.Advance falls back to the trait/skill synergy formula.
type ProgressFunc func(*Agent, *world.World) float64

// TaskFeedback is the result of progressing a task for a single tick.
type TaskFeedback struct {
	TaskName      string  `json:"task_name"`
	ProgressDelta float64 `json:"progress_delta"`
	Completed     bool    `json:"completed"`
	Message       string  `json:"message"`
}

// Task is a goal assigned to an agent. It moves one way: pending until
// accumulated progress reaches RequiredProgress, then completed.
type Task struct {
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	RequiredProgress  float64            `json:"required_progress"` // > 0
	Difficulty        float64            `json:"difficulty"`        // effective floor 0.5
	ProgressFunc      ProgressFunc       `json:"-"`
	ResourcesRequired map[string]float64 `json:"resources_required"`
	Completed         bool               `json:"completed"`
	Progress          float64            `json:"progress"`
}

// NewTask creates a pending task with default progress requirements.
func NewTask(name, description string) *Task {
	return &Task{
		Name:              name,
		Description:       description,
		RequiredProgress:  1.0,
		Difficulty:        1.0,
		ResourcesRequired: make(map[string]float64),
	}
}

// Advance attempts one step of progress. Resource shortfall is a reported
// condition, not an error: the agent gains stress, nothing is consumed, and
// the feedback names the missing resource. The full cost is deducted only
// when every required resource is available.
func (t *Task) Advance(agent *Agent, w *world.World) TaskFeedback {
	if t.Completed {
		return TaskFeedback{TaskName: t.Name, Completed: true, Message: "Task already completed."}
	}

	// Stable order so a multi-resource shortfall always names the same one.
	required := make([]string, 0, len(t.ResourcesRequired))
	for resource := range t.ResourcesRequired {
		required = append(required, resource)
	}
	sort.Strings(required)

	for _, resource := range required {
		if agent.Resources[resource] < t.ResourcesRequired[resource] {
			agent.AdjustEmotion(0, 0.05, 0)
			return TaskFeedback{
				TaskName: t.Name,
				Message:  fmt.Sprintf("Insufficient %s to progress %s.", resource, t.Name),
			}
		}
	}

	for _, resource := range required {
		agent.AdjustResources(map[string]float64{resource: -t.ResourcesRequired[resource]})
	}

	var delta float64
	if t.ProgressFunc != nil {
		delta = t.ProgressFunc(agent, w)
	} else {
		// Generic progress from trait and skill synergy.
		creativity := agent.Traits["creativity"]
		organization := agent.Traits["organization"]
		skillBonus := agent.bestSkillLevel()
		delta = 0.2 + creativity*0.1 + organization*0.05 + skillBonus*0.2
		if delta < 0.05 {
			delta = 0.05
		}
	}

	difficulty := t.Difficulty
	if difficulty < 0.5 {
		difficulty = 0.5
	}
	delta /= difficulty
	t.Progress += delta
	message := fmt.Sprintf("Progressed %s by %.2f", t.Name, delta)

	if t.Progress >= t.RequiredProgress {
		t.Completed = true
		agent.AdjustEmotion(0.1, -0.1, 0)
		message = fmt.Sprintf("Completed task %s!", t.Name)
	}

	return TaskFeedback{
		TaskName:      t.Name,
		ProgressDelta: delta,
		Completed:     t.Completed,
		Message:       message,
	}
}
