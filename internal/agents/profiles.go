// internal/agents/profiles.go
package agents

import "fmt"

// DefaultProfiles returns the static agent pool. Each call builds a fresh
// slice so callers can treat the table as immutable.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			ID:        "analyzer",
			Name:      "Analytical Agent",
			Specialty: "Data analysis and logical reasoning",
			Approach:  "analytical",
		},
		{
			ID:        "creative",
			Name:      "Creative Agent",
			Specialty: "Creative problem solving",
			Approach:  "creative",
		},
		{
			ID:        "pragmatic",
			Name:      "Pragmatic Agent",
			Specialty: "Practical solutions",
			Approach:  "pragmatic",
		},
		{
			ID:        "optimizer",
			Name:      "Optimizer Agent",
			Specialty: "Performance optimization",
			Approach:  "optimization",
		},
		{
			ID:        "security",
			Name:      "Security Agent",
			Specialty: "Security and risk assessment",
			Approach:  "security-focused",
		},
	}
}

// suggestionTemplates maps an agent's approach tag to its response template.
var suggestionTemplates = map[string]string{
	"analytical":       "Based on analysis of '%s', consider data-driven approach with metrics",
	"creative":         "Innovative solution for '%s': think outside the box with novel methods",
	"pragmatic":        "Practical approach to '%s': focus on immediate, actionable steps",
	"optimization":     "Optimized solution for '%s': maximize efficiency and minimize resources",
	"security-focused": "Secure implementation of '%s': prioritize safety and risk mitigation",
}

// suggestionFor renders the templated suggestion for a profile and query.
func suggestionFor(profile Profile, query string) string {
	if tmpl, ok := suggestionTemplates[profile.Approach]; ok {
		return fmt.Sprintf(tmpl, query)
	}
	return fmt.Sprintf("Agent %s suggests reviewing '%s' carefully", profile.ID, query)
}

// FindProfile looks up a profile by ID.
func FindProfile(profiles []Profile, id string) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}
