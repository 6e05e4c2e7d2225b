// Package guide derives resonance and archetype labels from a sun sign and a
// human-design type, and composes rule-based chat answers from a stored profile.
//
// Every function in this package is total: unknown signs, types, authorities or
// topics fall through to a default phrasing and never produce an error.
package guide

// Sign is a tropical zodiac sun sign. Values outside the twelve canonical
// signs are kept verbatim so templates can still interpolate them.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Signs lists the canonical signs in zodiac order.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

func (s Sign) String() string { return string(s) }

// Known reports whether s is one of the twelve canonical signs.
func (s Sign) Known() bool {
	_, ok := signElements[s]
	return ok
}

// Element is the classical element a sign belongs to. ElementNone is the
// empty string and is what unknown signs map to.
type Element string

const (
	ElementNone  Element = ""
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// ElementOf classifies a sign by exact match. Unknown signs yield ElementNone.
func ElementOf(s Sign) Element {
	return signElements[s]
}
