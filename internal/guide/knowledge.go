package guide

// Lookup tables are built once and never mutated.

var signElements = map[Sign]Element{
	Aries: ElementFire, Leo: ElementFire, Sagittarius: ElementFire,
	Taurus: ElementEarth, Virgo: ElementEarth, Capricorn: ElementEarth,
	Gemini: ElementAir, Libra: ElementAir, Aquarius: ElementAir,
	Cancer: ElementWater, Scorpio: ElementWater, Pisces: ElementWater,
}

const (
	defaultStrength          = "unique talents"
	defaultRelationshipValue = "authentic connection"
	defaultBodyFocus         = "overall energy balance"
	defaultAuthorityAdvice   = "honor your inner knowing"
	defaultArchetype         = "The Cosmic Voyager"
)

var signStrengths = map[Sign]string{
	Aries:       "initiative and courage",
	Taurus:      "stability and resourcefulness",
	Gemini:      "versatility and communication",
	Cancer:      "intuition and nurturing",
	Leo:         "creativity and leadership",
	Virgo:       "analysis and practical solutions",
	Libra:       "diplomacy and aesthetic sense",
	Scorpio:     "depth and transformation",
	Sagittarius: "vision and optimism",
	Capricorn:   "discipline and management",
	Aquarius:    "innovation and humanitarian values",
	Pisces:      "compassion and artistic expression",
}

var signRelationshipValues = map[Sign]string{
	Aries:       "excitement and independence",
	Taurus:      "loyalty and sensuality",
	Gemini:      "mental connection and variety",
	Cancer:      "emotional security and nurturing",
	Leo:         "admiration and romance",
	Virgo:       "practical support and thoughtfulness",
	Libra:       "harmony and partnership",
	Scorpio:     "intensity and depth",
	Sagittarius: "freedom and adventure",
	Capricorn:   "commitment and stability",
	Aquarius:    "friendship and intellectual stimulation",
	Pisces:      "spiritual connection and empathy",
}

var signBodyFocus = map[Sign]string{
	Aries:       "head and adrenals",
	Taurus:      "throat and thyroid",
	Gemini:      "lungs and nervous system",
	Cancer:      "digestive system and breasts",
	Leo:         "heart and spine",
	Virgo:       "intestines and assimilation",
	Libra:       "kidneys and balance",
	Scorpio:     "reproductive system and elimination",
	Sagittarius: "liver and thighs",
	Capricorn:   "bones and joints",
	Aquarius:    "circulation and ankles",
	Pisces:      "lymphatic system and feet",
}

var authorityAdvice = map[Authority]string{
	Sacral:          "listen to your gut response (uh-huh or uh-uh)",
	Emotional:       "wait through your emotional wave before deciding",
	Splenic:         "pay attention to immediate intuitive hits",
	Ego:             "listen to your heart's desire and commitments",
	Self:            "wait for clarity and certainty to emerge",
	MentalProjector: "consult with others you trust before deciding",
	Lunar:           "wait through a full lunar cycle for clarity",
}

// archetypes is keyed by the four core types only. Manifesting Generator is
// deliberately absent and resolves to defaultArchetype.
var archetypes = map[Sign]map[DesignType]string{
	Aries: {
		Generator:  "The Warrior (like Achilles)",
		Projector:  "The Strategist (like Sun Tzu)",
		Manifestor: "The Pioneer (like Amelia Earhart)",
		Reflector:  "The Observer (like Jane Goodall)",
	},
	Taurus: {
		Generator:  "The Builder (like Frank Lloyd Wright)",
		Projector:  "The Artisan (like Georgia O'Keeffe)",
		Manifestor: "The Provider (like Jamie Oliver)",
		Reflector:  "The Conservator (like John Muir)",
	},
	Gemini: {
		Generator:  "The Messenger (like Mercury)",
		Projector:  "The Teacher (like Socrates)",
		Manifestor: "The Communicator (like Oscar Wilde)",
		Reflector:  "The Diplomat (like Kofi Annan)",
	},
	Cancer: {
		Generator:  "The Nurturer (like Mother Teresa)",
		Projector:  "The Caretaker (like Florence Nightingale)",
		Manifestor: "The Protector (like Diana)",
		Reflector:  "The Empathizer (like Carl Rogers)",
	},
	Leo: {
		Generator:  "The Performer (like Elvis Presley)",
		Projector:  "The Director (like Steven Spielberg)",
		Manifestor: "The Leader (like Alexander the Great)",
		Reflector:  "The Magnifier (like Oprah Winfrey)",
	},
	Virgo: {
		Generator:  "The Craftsperson (like Leonardo da Vinci)",
		Projector:  "The Analyst (like Sherlock Holmes)",
		Manifestor: "The Perfectionist (like Marie Curie)",
		Reflector:  "The Purifier (like Gandhi)",
	},
	Libra: {
		Generator:  "The Harmonizer (like Jimmy Carter)",
		Projector:  "The Mediator (like Desmond Tutu)",
		Manifestor: "The Peacemaker (like Eleanor Roosevelt)",
		Reflector:  "The Judge (like Ruth Bader Ginsburg)",
	},
	Scorpio: {
		Generator:  "The Investigator (like Marie Curie)",
		Projector:  "The Alchemist (like Carl Jung)",
		Manifestor: "The Phoenix (like Frida Kahlo)",
		Reflector:  "The Mystic (like Rumi)",
	},
	Sagittarius: {
		Generator:  "The Explorer (like Amelia Earhart)",
		Projector:  "The Philosopher (like Aristotle)",
		Manifestor: "The Visionary (like Walt Disney)",
		Reflector:  "The Seeker (like Joseph Campbell)",
	},
	Capricorn: {
		Generator:  "The Builder (like Benjamin Franklin)",
		Projector:  "The Manager (like Warren Buffet)",
		Manifestor: "The Authority (like Margaret Thatcher)",
		Reflector:  "The Elder (like Nelson Mandela)",
	},
	Aquarius: {
		Generator:  "The Innovator (like Thomas Edison)",
		Projector:  "The Humanitarian (like Martin Luther King Jr.)",
		Manifestor: "The Revolutionary (like Galileo)",
		Reflector:  "The Outsider (like Alan Turing)",
	},
	Pisces: {
		Generator:  "The Artist (like Claude Monet)",
		Projector:  "The Healer (like Carl Jung)",
		Manifestor: "The Dreamer (like Albert Einstein)",
		Reflector:  "The Mystic (like Joan of Arc)",
	},
}

// SignStrength returns the professional strength of a sign.
func SignStrength(s Sign) string {
	return lookupOr(signStrengths, s, defaultStrength)
}

// SignRelationshipValue returns what a sign values in relationships.
func SignRelationshipValue(s Sign) string {
	return lookupOr(signRelationshipValues, s, defaultRelationshipValue)
}

// SignBodyFocus returns the body areas a sign is associated with.
func SignBodyFocus(s Sign) string {
	return lookupOr(signBodyFocus, s, defaultBodyFocus)
}

// AuthorityAdvice returns decision advice for an authority.
func AuthorityAdvice(a Authority) string {
	return lookupOr(authorityAdvice, a, defaultAuthorityAdvice)
}

func lookupOr[K comparable](table map[K]string, key K, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}
