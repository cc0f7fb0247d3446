package agents

import (
	"math"
	"testing"

	"github.com/amaz421326/PixelSociety/internal/world"
)

func newTestWorld() *world.World {
	return world.New("Testia", 0.5, 0.5, 0.5)
}

// neutralAgent returns an agent with all-zero traits (unknown personality
// code) so formula tests have a clean baseline.
func neutralAgent(name string) *Agent {
	return New(name, "NONE")
}

func TestNewAgentDefaults(t *testing.T) {
	a := New("Ada", "INTJ")

	if a.Occupation != "Unassigned" {
		t.Errorf("occupation = %q, want Unassigned", a.Occupation)
	}
	if a.Resources["money"] != 100 || a.Resources["time"] != 40 {
		t.Errorf("resources = %v, want money 100 / time 40", a.Resources)
	}
	if a.Emotion.Happiness != 0.5 || a.Emotion.Stress != 0.2 || a.Emotion.Energy != 0.7 {
		t.Errorf("emotion = %+v, want 0.5/0.2/0.7", a.Emotion)
	}
	if a.Traits["rationality"] != 0.6 {
		t.Errorf("rationality = %v, want INTJ seed 0.6", a.Traits["rationality"])
	}
}

func TestAgentsDoNotShareDefaultResources(t *testing.T) {
	a := New("Ada", "INTJ")
	b := New("Bo", "INTJ")

	a.Resources["money"] = 0
	if b.Resources["money"] != 100 {
		t.Error("resource map shared between agents")
	}
}

func TestCustomizeClampsAndIgnoresUnknownTraits(t *testing.T) {
	a := neutralAgent("Ada")

	a.Customize(map[string]float64{
		"creativity": 5.0,   // clamps to 1
		"empathy":    -5.0,  // clamps to -1
		"charisma":   0.4,   // not in the trait set, ignored
	}, []string{"explore"}, []string{"truth"})

	if a.Traits["creativity"] != 1 {
		t.Errorf("creativity = %v, want 1", a.Traits["creativity"])
	}
	if a.Traits["empathy"] != -1 {
		t.Errorf("empathy = %v, want -1", a.Traits["empathy"])
	}
	if _, ok := a.Traits["charisma"]; ok {
		t.Error("unknown trait key was added")
	}
	if len(a.Motivations) != 1 || a.Motivations[0] != "explore" {
		t.Errorf("motivations = %v", a.Motivations)
	}

	// Appended, not replaced.
	a.Customize(nil, []string{"build"}, nil)
	if len(a.Motivations) != 2 {
		t.Errorf("motivations after second customize = %v, want 2 entries", a.Motivations)
	}
}

func TestLearnSkillUsesCreativityAndCaps(t *testing.T) {
	a := neutralAgent("Ada")
	a.LearnSkill("design", 0.6)
	if got, want := a.Skills["design"], 0.6*0.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("design = %v, want %v", got, want)
	}

	creative := neutralAgent("Bo")
	creative.Traits["creativity"] = 1.0
	creative.LearnSkill("design", 0.6)
	if got, want := creative.Skills["design"], 0.6*0.7; math.Abs(got-want) > 1e-9 {
		t.Errorf("creative design = %v, want %v", got, want)
	}

	for i := 0; i < 20; i++ {
		a.LearnSkill("design", 1.0)
	}
	if a.Skills["design"] != 1.0 {
		t.Errorf("design = %v, want capped at 1.0", a.Skills["design"])
	}
}

func TestAdjustResourcesFloorsAtZero(t *testing.T) {
	a := neutralAgent("Ada")
	a.AdjustResources(map[string]float64{"money": -500, "time": 10})
	if a.Resources["money"] != 0 {
		t.Errorf("money = %v, want 0", a.Resources["money"])
	}
	if a.Resources["time"] != 50 {
		t.Errorf("time = %v, want 50", a.Resources["time"])
	}
}

func TestAdjustEmotionClampsUnderRepeatedApplication(t *testing.T) {
	a := neutralAgent("Ada")
	for i := 0; i < 100; i++ {
		a.AdjustEmotion(10, -10, 10)
	}
	if a.Emotion.Happiness != 1 || a.Emotion.Stress != 0 || a.Emotion.Energy != 1 {
		t.Errorf("emotion = %+v, want 1/0/1", a.Emotion)
	}
}

func TestInfluenceRelationshipLazyCreation(t *testing.T) {
	a := neutralAgent("Ada")
	a.InfluenceRelationship("Bo", 0.5)

	rel, ok := a.Relationships["Bo"]
	if !ok {
		t.Fatal("relationship not created")
	}
	if math.Abs(rel.Closeness-0.15) > 1e-9 || math.Abs(rel.Trust-0.15) > 1e-9 {
		t.Errorf("closeness/trust = %v/%v, want 0.15/0.15", rel.Closeness, rel.Trust)
	}
	if rel.Sentiment != SentimentNeutral {
		t.Errorf("sentiment = %q, want neutral", rel.Sentiment)
	}
}

func TestSentimentThresholds(t *testing.T) {
	cases := []struct {
		name      string
		trust     float64
		closeness float64
		want      string
	}{
		{"exact boundary is neutral", 0.7, 0.6, SentimentNeutral},
		{"just above boundary is ally", 0.71, 0.61, SentimentAlly},
		{"low both is rival", 0.29, 0.29, SentimentRival},
		{"rival boundary is neutral", 0.3, 0.3, SentimentNeutral},
		{"mixed is neutral", 0.9, 0.1, SentimentNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rel := NewRelationship("Bo")
			rel.Closeness = tc.closeness
			rel.Trust = tc.trust
			rel.Adjust(0, 0) // recompute sentiment without moving values
			if rel.Sentiment != tc.want {
				t.Errorf("sentiment(trust=%v, closeness=%v) = %q, want %q", tc.trust, tc.closeness, rel.Sentiment, tc.want)
			}
		})
	}
}

func TestRelationshipValuesStayClamped(t *testing.T) {
	rel := NewRelationship("Bo")
	rel.Adjust(100, 100)
	if rel.Closeness != 1 || rel.Trust != 1 {
		t.Errorf("closeness/trust = %v/%v, want 1/1", rel.Closeness, rel.Trust)
	}
	rel.Adjust(-100, -100)
	if rel.Closeness != 0 || rel.Trust != 0 {
		t.Errorf("closeness/trust = %v/%v, want 0/0", rel.Closeness, rel.Trust)
	}
}

func TestTickLowTimeRaisesStress(t *testing.T) {
	w := newTestWorld()
	a := neutralAgent("Ada")
	a.Resources["time"] = 5

	a.Tick(w)
	if math.Abs(a.Emotion.Stress-0.25) > 1e-9 {
		t.Errorf("stress = %v, want 0.25", a.Emotion.Stress)
	}
	// Passive regeneration still happens.
	if a.Resources["time"] != 10 {
		t.Errorf("time = %v, want 10", a.Resources["time"])
	}
}

func TestTickAmpleTimeImprovesMood(t *testing.T) {
	w := newTestWorld()
	a := neutralAgent("Ada")

	a.Tick(w)
	if math.Abs(a.Emotion.Happiness-0.52) > 1e-9 {
		t.Errorf("happiness = %v, want 0.52", a.Emotion.Happiness)
	}
	if math.Abs(a.Emotion.Stress-0.18) > 1e-9 {
		t.Errorf("stress = %v, want 0.18", a.Emotion.Stress)
	}
	if a.Resources["time"] != 45 {
		t.Errorf("time = %v, want 45", a.Resources["time"])
	}
}

func TestTickDecaysRelationships(t *testing.T) {
	w := newTestWorld()
	a := neutralAgent("Ada")
	rel := a.Relationship("Bo")
	rel.Closeness = 0.5
	rel.Trust = 0.5

	a.Tick(w)
	if math.Abs(rel.Closeness-0.48) > 1e-9 {
		t.Errorf("closeness = %v, want 0.48", rel.Closeness)
	}
	if math.Abs(rel.Trust-0.49) > 1e-9 {
		t.Errorf("trust = %v, want 0.49", rel.Trust)
	}
}

func TestTickDropsCompletedTasksAndReportsOnce(t *testing.T) {
	w := newTestWorld()
	a := neutralAgent("Ada")

	task := NewTask("Quick Win", "an easy goal")
	task.RequiredProgress = 0.1
	a.AssignTask(task)

	feedback := a.Tick(w)
	if len(feedback) != 1 {
		t.Fatalf("feedback entries = %d, want 1", len(feedback))
	}
	if !feedback[0].Completed {
		t.Error("task should complete on first advance")
	}
	if len(a.Tasks) != 0 {
		t.Errorf("task list length = %d, want 0 after completion", len(a.Tasks))
	}

	// Completed tasks are gone and never reported again.
	if feedback := a.Tick(w); len(feedback) != 0 {
		t.Errorf("second tick feedback = %v, want empty", feedback)
	}
}
