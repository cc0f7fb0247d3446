// Package personality provides the MBTI archetype table used to seed agent traits.
// The lookup is pure: no mutable state, no error cases.
package personality

import (
	"sort"
	"strings"
)

// TraitKeys is the closed set of trait names used across the simulation,
// in presentation order.
var TraitKeys = []string{
	"sociability",
	"creativity",
	"organization",
	"empathy",
	"rationality",
	"ambition",
}

// Profile is a personality archetype used to seed an agent.
// Modifier values represent trait strength relative to a neutral
// baseline (0.0); positive values emphasize the trait.
type Profile struct {
	Code           string             `json:"code"`
	Description    string             `json:"description"`
	TraitModifiers map[string]float64 `json:"trait_modifiers"`
}

func makeProfile(code, description string, sociability, creativity, organization, empathy, rationality, ambition float64) Profile {
	return Profile{
		Code:        code,
		Description: description,
		TraitModifiers: map[string]float64{
			"sociability":  sociability,
			"creativity":   creativity,
			"organization": organization,
			"empathy":      empathy,
			"rationality":  rationality,
			"ambition":     ambition,
		},
	}
}

// profiles is the curated subset of MBTI archetypes.
var profiles = map[string]Profile{
	"INTJ": makeProfile("INTJ", "Strategic mastermind focused on long-term planning and innovation.",
		-0.2, 0.5, 0.4, -0.1, 0.6, 0.5),
	"INFP": makeProfile("INFP", "Idealistic dreamer driven by values and relationships.",
		0.1, 0.6, -0.2, 0.7, -0.1, 0.2),
	"ENTP": makeProfile("ENTP", "Energetic innovator who thrives on debate and new possibilities.",
		0.5, 0.7, -0.3, 0.1, 0.2, 0.4),
	"ESTJ": makeProfile("ESTJ", "Efficient organizer focused on structure, tradition and leadership.",
		0.2, -0.2, 0.7, -0.1, 0.4, 0.6),
	"ESFP": makeProfile("ESFP", "Vibrant performer who seeks excitement and social connection.",
		0.7, 0.3, -0.3, 0.5, -0.2, 0.2),
	"ISFJ": makeProfile("ISFJ", "Loyal caretaker prioritizing harmony and practical support.",
		-0.1, -0.1, 0.6, 0.6, 0.1, -0.1),
	"ENTJ": makeProfile("ENTJ", "Commanding leader focused on achievement and strategic execution.",
		0.4, 0.2, 0.6, -0.2, 0.5, 0.8),
	"ISTP": makeProfile("ISTP", "Curious problem-solver who prefers hands-on experimentation.",
		-0.2, 0.3, -0.1, -0.2, 0.4, 0.1),
}

// Lookup returns the Profile for a code. Matching is case-insensitive;
// unknown codes yield a neutral all-zero profile rather than an error.
func Lookup(code string) Profile {
	normalized := strings.ToUpper(code)
	if p, ok := profiles[normalized]; ok {
		return copyProfile(p)
	}

	neutral := make(map[string]float64, len(TraitKeys))
	for _, key := range TraitKeys {
		neutral[key] = 0.0
	}
	return Profile{
		Code:           normalized,
		Description:    "Custom personality",
		TraitModifiers: neutral,
	}
}

// Codes returns the curated archetype codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Known reports whether a code matches a curated archetype.
func Known(code string) bool {
	_, ok := profiles[strings.ToUpper(code)]
	return ok
}

// copyProfile returns a Profile with its own modifier map so callers
// can never mutate the shared table.
func copyProfile(p Profile) Profile {
	modifiers := make(map[string]float64, len(p.TraitModifiers))
	for k, v := range p.TraitModifiers {
		modifiers[k] = v
	}
	p.TraitModifiers = modifiers
	return p
}
