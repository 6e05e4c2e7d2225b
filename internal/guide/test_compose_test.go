package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeCareer(t *testing.T) {
	got := ComposeResponse(AstroProfile{SunSign: Aries}, DesignProfile{Type: Generator, Authority: Sacral}, TopicCareer)
	want := "As a Aries Generator, your professional strengths are unique. " +
		"Your natural ability to sustain energy makes you excellent at roles requiring consistent output. " +
		"With your Aries traits, you thrive in environments that value your initiative and courage."
	require.Equal(t, want, got)
}

func TestComposeCareerUnknownSignAndType(t *testing.T) {
	got := ComposeResponse(AstroProfile{SunSign: "Ophiuchus"}, DesignProfile{Type: "Wanderer"}, TopicCareer)
	require.Contains(t, got, "Your reflective nature gives you unique insights that others might miss. ")
	require.True(t, strings.HasSuffix(got, "value your unique talents."), got)
}

func TestComposeLove(t *testing.T) {
	got := ComposeResponse(AstroProfile{SunSign: Libra}, DesignProfile{Type: Manifestor}, TopicLove)
	want := "In relationships, your Libra energy combines with your Manifestor design in fascinating ways. " +
		"You initiate and lead in relationships, but remember to inform your partner of your plans. " +
		"Your Libra traits mean you value harmony and partnership in your connections."
	require.Equal(t, want, got)

	fallback := ComposeResponse(AstroProfile{}, DesignProfile{Type: Reflector}, TopicLove)
	require.True(t, strings.HasSuffix(fallback, "you value authentic connection in your connections."), fallback)
}

func TestComposeHealth(t *testing.T) {
	got := ComposeResponse(AstroProfile{SunSign: Capricorn}, DesignProfile{Type: Projector}, TopicHealth)
	want := "For optimal wellbeing, your Projector energy needs specific attention. " +
		"Rest and recognition are critical - don't overextend yourself trying to keep up with others. " +
		"As a Capricorn, paying attention to your bones and joints can support your overall balance."
	require.Equal(t, want, got)

	fallback := ComposeResponse(AstroProfile{SunSign: "x"}, DesignProfile{Type: ManifestingGenerator}, TopicHealth)
	require.Contains(t, fallback, "sacral energy")
	require.Contains(t, fallback, "overall energy balance")
}

func TestComposePurposeBranchesOnAuthority(t *testing.T) {
	base := AstroProfile{SunSign: Virgo}
	tests := []struct {
		authority Authority
		typ       DesignType
		sentence  string
		outcome   string
	}{
		{Sacral, Generator, "Trust your gut responses to guide you toward what's correct for you. ", "creating satisfaction and impact through your response to life"},
		{Emotional, Projector, "Ride the waves of your emotions and make decisions over time for clarity. ", "guiding others with your wisdom and experiencing success"},
		{Splenic, Manifestor, "Your intuitive hits are instantaneous wisdom - honor them. ", "initiating important changes and experiencing peace"},
		{Lunar, Reflector, "Your Lunar authority is your inner guidance system - learn to listen to it. ", "reflecting and sampling life, offering surprise and wonder"},
		{"", "Unknown", "Your  authority is your inner guidance system - learn to listen to it. ", "reflecting and sampling life, offering surprise and wonder"},
	}
	for _, tc := range tests {
		got := ComposeResponse(base, DesignProfile{Type: tc.typ, Authority: tc.authority}, TopicPurpose)
		require.True(t, strings.HasPrefix(got, "Your cosmic purpose blends your Virgo essence with your "+string(tc.typ)+" design. "), got)
		require.Contains(t, got, tc.sentence)
		require.True(t, strings.HasSuffix(got, "you'll find yourself "+tc.outcome+"."), got)
	}
}

func TestComposeGeneral(t *testing.T) {
	got := ComposeResponse(
		AstroProfile{SunSign: Scorpio, MoonSign: "Cancer"},
		DesignProfile{Type: Projector, Authority: MentalProjector},
		TopicGeneral,
	)
	want := "As a Scorpio Projector, your cosmic signature has unique gifts and challenges. " +
		"Your Mental Projector authority guides your decisions best when you consult with others you trust before deciding. " +
		"Consider exploring how your Cancer influences your emotional landscape as well. " +
		"What specific questions do you have about your design or cosmic path?"
	require.Equal(t, want, got)
}

func TestComposeGeneralNeverFails(t *testing.T) {
	for _, topic := range []Topic{TopicGeneral, TopicGuidance, "", "weather"} {
		got := ComposeResponse(AstroProfile{}, DesignProfile{Authority: "Telepathic"}, topic)
		require.NotEmpty(t, got)
		require.True(t, strings.HasSuffix(got, closingInvitation), got)
		require.Contains(t, got, "honor your inner knowing")
		require.Contains(t, got, "how your moon sign influences")
	}
}

func TestGuidanceRendersGeneralTemplate(t *testing.T) {
	p := AstroProfile{SunSign: Leo}
	d := DesignProfile{Type: Generator, Authority: Sacral}
	require.Equal(t, ComposeResponse(p, d, TopicGeneral), ComposeResponse(p, d, TopicGuidance))

	topic, answer := Answer(p, d, "any advice for me?")
	require.Equal(t, TopicGuidance, topic)
	require.Equal(t, ComposeResponse(p, d, TopicGeneral), answer)
}

func TestComposeIsDeterministic(t *testing.T) {
	p := AstroProfile{SunSign: Gemini, MoonSign: "Aries"}
	d := DesignProfile{Type: ManifestingGenerator, Authority: Emotional}
	for _, topic := range []Topic{TopicCareer, TopicLove, TopicHealth, TopicPurpose, TopicGeneral} {
		require.Equal(t, ComposeResponse(p, d, topic), ComposeResponse(p, d, topic))
	}
}

func TestWelcome(t *testing.T) {
	got := Welcome(Aries, Generator, "The Warrior (like Achilles)", "Fire energy channeled through creative work")
	want := "Welcome to your cosmic guide! As a Aries Generator, you have a unique cosmic signature. " +
		"Your archetype is \"The Warrior (like Achilles)\" and your resonance is aligned with Fire energy channeled through creative work. " +
		"Ask me anything about your design or how it relates to your life."
	require.Equal(t, want, got)
}
