package guide

import "fmt"

// Welcome is the opening chat message sent once a profile is created.
func Welcome(sign Sign, t DesignType, archetype, resonance string) string {
	return fmt.Sprintf(
		"Welcome to your cosmic guide! As a %s %s, you have a unique cosmic signature. "+
			"Your archetype is \"%s\" and your resonance is aligned with %s. "+
			"Ask me anything about your design or how it relates to your life.",
		sign, t, archetype, resonance,
	)
}
