package humandesign

var gateDescriptions = map[int]string{
	1:  "The Creative - Self-Expression, Identity",
	2:  "The Direction of the Self - Receptivity, Orientation",
	3:  "Ordering - Innovation, New Beginnings",
	4:  "Formulization - Mental Solutions, Answers",
	5:  "Fixed Rhythms - Patience, Natural Timing",
	6:  "Friction - Emotional Clarity, Intimacy",
	7:  "The Role of the Self - Leadership, Direction",
	8:  "Contribution - Style, Influence",
	9:  "Focus - Detail, Determination",
	10: "Self-Love - Authenticity, Behavior",
	11: "Ideas - Peace, Harmony",
	12: "Caution - Articulation, Voice",
	13: "The Fellowship of Man - Listening, Interaction",
	14: "Power Skills - Direction, Resources",
	15: "Extremes - Flow, Rhythm",
	16: "Skills - Enthusiasm, Mastery",
	17: "Following - Opinion, Perspective",
	18: "Correction - Judgment, Perfection",
	19: "Wanting - Need, Support",
	20: "The Now - Presence, Awareness",
	21: "Control - Authority, Will",
	22: "Openness - Grace, Social Interaction",
	23: "Assimilation - Individual Knowing, Voice",
	24: "Rationalization - Return, Transformation",
	25: "The Spirit of the Self - Love, Spirit",
	26: "The Trickster - Manipulation, Surrender",
	27: "Caring - Nurturance, Resources",
	28: "The Game Player - Purpose, Life Force",
	29: "Saying Yes - Commitment, Perseverance",
	30: "Recognition - Desire, Feelings",
	31: "Leadership - Influence, Democracy",
	32: "Continuity - Duration, Transformation",
	33: "Privacy - Retreat, Withdrawal",
	34: "Power - Force, Manifestation",
	35: "Change - Progress, Adventure",
	36: "Crisis - Experience, Searching",
	37: "Friendship - Equality, Community",
	38: "Opposition - Struggle, Perseverance",
	39: "Provocation - Dynamic Force, Liberation",
	40: "Aloneness - Denial, Independence",
	41: "Fantasy - Desire, Hope",
	42: "Growth - Completion, Maturation",
	43: "Insight - Understanding, Epiphany",
	44: "Coming to Meet - Alertness, Patterns",
	45: "Gathering - Community, Education",
	46: "Determination - Love of Body, Success",
	47: "Realization - Understanding, Oppression",
	48: "Depth - Inadequacy, Talent",
	49: "Revolution - Principles, Rejection",
	50: "Values - Responsibility, Loyalty",
	51: "Initiative - Shock, Awakening",
	52: "Stillness - Concentration, Meditation",
	53: "Development - Gradual Progress, Beginnings",
	54: "Ambition - Transformation, Aspiration",
	55: "Spirit - Abundance, Freedom",
	56: "Stimulation - Enrichment, Stories",
	57: "Intuitive Clarity - Gentle Penetration, Knowing",
	58: "Joy of Life - Vitality, Aliveness",
	59: "Sexuality - Intimacy, Fertility",
	60: "Acceptance - Limitation, Conservation",
	61: "Inner Truth - Mystery, Knowledge",
	62: "Detail - Facts, Precision",
	63: "After Completion - Doubt, Questioning",
	64: "Before Completion - Confusion, Possibilities",
}

var centerDescriptions = map[string]string{
	"Head":         "Center of Inspiration and Mental Pressure",
	"Ajna":         "Center of Conceptualization and Mental Certainty",
	"Throat":       "Center of Manifestation and Communication",
	"G":            "Center of Identity, Love and Direction",
	"Heart":        "Center of Willpower and Ego",
	"Solar Plexus": "Center of Emotions and Awareness",
	"Sacral":       "Center of Life Force Energy and Sexuality",
	"Spleen":       "Center of Intuition and Well-being",
	"Root":         "Center of Pressure and Adrenaline",
}

var typeDescriptions = map[string]string{
	"Generator":             "The Builder - Natural life force for work and creation",
	"Projector":             "The Guide - Natural wisdom for directing and guiding others",
	"Manifestor":            "The Initiator - Independent force for impact and innovation",
	"Reflector":             "The Evaluator - Wise mirror of community health and direction",
	"Manifesting Generator": "The Multi-Faceted Creator - Fast-moving life force for diverse creation",
}

var authorityDescriptions = map[string]string{
	"Sacral":           "Gut response through sounds/feelings - wait to respond",
	"Emotional":        "Clarity through emotional waves - wait for emotional clarity",
	"Splenic":          "Immediate body awareness - trust in-the-moment intuition",
	"Ego":              "Heart-based willpower - trust heart commitments",
	"Self":             "G Center knowing - wait for clarity and direction",
	"Mental Projector": "Outer authority - wait for recognition and invitation",
	"Lunar":            "Monthly lunar cycle - wait through a lunar cycle for clarity",
}

var profileDescriptions = map[string]string{
	"1/3": "Investigator/Martyr - Research and experiential learning",
	"1/4": "Investigator/Opportunist - Research and networking",
	"2/4": "Hermit/Opportunist - Natural sharing through networks",
	"2/5": "Hermit/Heretic - Natural wisdom impacting others",
	"3/5": "Martyr/Heretic - Experiential learning impacting others",
	"3/6": "Martyr/Role Model - Experiential learning to wisdom",
	"4/6": "Opportunist/Role Model - Networking to wisdom",
	"4/1": "Opportunist/Investigator - Networking and research",
	"5/1": "Heretic/Investigator - Impact through research",
	"5/2": "Heretic/Hermit - Impact through natural wisdom",
	"6/2": "Role Model/Hermit - Wisdom through withdrawal",
	"6/3": "Role Model/Martyr - Wisdom through experience",
}

var definitionDescriptions = map[string]string{
	"Single":       "Connected energy flow through defined centers",
	"Split":        "Two separate areas of definition - potential for bridging",
	"Triple Split": "Three separate areas - complex energy dynamics",
	"Quad Split":   "Four separate areas - highly individualized energy",
}
