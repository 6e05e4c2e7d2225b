package guide

import (
	"fmt"
	"strings"
)

const closingInvitation = "What specific questions do you have about your design or cosmic path?"

// ComposeResponse renders the answer for a classified topic. Only career, love,
// health and purpose have dedicated templates; every other topic, guidance
// included, renders the general template.
func ComposeResponse(p AstroProfile, d DesignProfile, topic Topic) string {
	var b strings.Builder
	switch topic {
	case TopicCareer:
		composeCareer(&b, p, d)
	case TopicLove:
		composeLove(&b, p, d)
	case TopicHealth:
		composeHealth(&b, p, d)
	case TopicPurpose:
		composePurpose(&b, p, d)
	default:
		composeGeneral(&b, p, d)
	}
	return b.String()
}

// Answer classifies a message and composes the response in one step.
func Answer(p AstroProfile, d DesignProfile, message string) (Topic, string) {
	topic := ClassifyTopic(message)
	return topic, ComposeResponse(p, d, topic)
}

func composeCareer(b *strings.Builder, p AstroProfile, d DesignProfile) {
	fmt.Fprintf(b, "As a %s %s, your professional strengths are unique. ", p.SunSign, d.Type)
	switch {
	case d.Type.sustainsEnergy():
		b.WriteString("Your natural ability to sustain energy makes you excellent at roles requiring consistent output. ")
	case d.Type == Projector:
		b.WriteString("Your gift for seeing others clearly makes you an excellent guide, manager, or advisor. ")
	case d.Type == Manifestor:
		b.WriteString("Your ability to initiate makes you a natural entrepreneur or leader in your field. ")
	default:
		b.WriteString("Your reflective nature gives you unique insights that others might miss. ")
	}
	fmt.Fprintf(b, "With your %s traits, you thrive in environments that value your %s.", p.SunSign, SignStrength(p.SunSign))
}

func composeLove(b *strings.Builder, p AstroProfile, d DesignProfile) {
	fmt.Fprintf(b, "In relationships, your %s energy combines with your %s design in fascinating ways. ", p.SunSign, d.Type)
	switch {
	case d.Type.sustainsEnergy():
		b.WriteString("You bring consistent energy and responsiveness to your partnerships. ")
	case d.Type == Projector:
		b.WriteString("You see your partners deeply and can offer profound guidance when invited. ")
	case d.Type == Manifestor:
		b.WriteString("You initiate and lead in relationships, but remember to inform your partner of your plans. ")
	default:
		b.WriteString("You reflect your partner's energy, giving you deep empathy but requiring time for processing. ")
	}
	fmt.Fprintf(b, "Your %s traits mean you value %s in your connections.", p.SunSign, SignRelationshipValue(p.SunSign))
}

func composeHealth(b *strings.Builder, p AstroProfile, d DesignProfile) {
	fmt.Fprintf(b, "For optimal wellbeing, your %s energy needs specific attention. ", d.Type)
	switch {
	case d.Type.sustainsEnergy():
		b.WriteString("Regular physical activity that you enjoy is essential for your sacral energy. ")
	case d.Type == Projector:
		b.WriteString("Rest and recognition are critical - don't overextend yourself trying to keep up with others. ")
	case d.Type == Manifestor:
		b.WriteString("You need freedom and space to discharge your powerful energy. ")
	default:
		b.WriteString("Your health is tied to your environment - seek places that feel nourishing. ")
	}
	fmt.Fprintf(b, "As a %s, paying attention to your %s can support your overall balance.", p.SunSign, SignBodyFocus(p.SunSign))
}

func composePurpose(b *strings.Builder, p AstroProfile, d DesignProfile) {
	fmt.Fprintf(b, "Your cosmic purpose blends your %s essence with your %s design. ", p.SunSign, d.Type)
	switch d.Authority {
	case Sacral:
		b.WriteString("Trust your gut responses to guide you toward what's correct for you. ")
	case Emotional:
		b.WriteString("Ride the waves of your emotions and make decisions over time for clarity. ")
	case Splenic:
		b.WriteString("Your intuitive hits are instantaneous wisdom - honor them. ")
	default:
		fmt.Fprintf(b, "Your %s authority is your inner guidance system - learn to listen to it. ", d.Authority)
	}
	fmt.Fprintf(b, "When you align with your design and cosmic signature, you'll find yourself %s.", PurposeOutcome(d.Type))
}

func composeGeneral(b *strings.Builder, p AstroProfile, d DesignProfile) {
	fmt.Fprintf(b, "As a %s %s, your cosmic signature has unique gifts and challenges. ", p.SunSign, d.Type)
	fmt.Fprintf(b, "Your %s authority guides your decisions best when you %s. ", d.Authority, AuthorityAdvice(d.Authority))
	moon := p.MoonSign
	if moon == "" {
		moon = "moon sign"
	}
	fmt.Fprintf(b, "Consider exploring how your %s influences your emotional landscape as well. ", moon)
	b.WriteString(closingInvitation)
}

// PurposeOutcome describes where alignment leads for a design type.
func PurposeOutcome(t DesignType) string {
	switch {
	case t.sustainsEnergy():
		return "creating satisfaction and impact through your response to life"
	case t == Projector:
		return "guiding others with your wisdom and experiencing success"
	case t == Manifestor:
		return "initiating important changes and experiencing peace"
	default:
		return "reflecting and sampling life, offering surprise and wonder"
	}
}
