package guide

// DesignType is a human-design type. Unknown values are kept verbatim.
type DesignType string

const (
	Generator            DesignType = "Generator"
	ManifestingGenerator DesignType = "Manifesting Generator"
	Projector            DesignType = "Projector"
	Manifestor           DesignType = "Manifestor"
	Reflector            DesignType = "Reflector"
)

// DesignTypes lists the five canonical types.
var DesignTypes = []DesignType{Generator, ManifestingGenerator, Projector, Manifestor, Reflector}

func (t DesignType) String() string { return string(t) }

// sustainsEnergy groups Generators and Manifesting Generators, which share
// every type branch in the templates.
func (t DesignType) sustainsEnergy() bool {
	return t == Generator || t == ManifestingGenerator
}

// Authority is the decision-making authority of a design.
type Authority string

const (
	Sacral          Authority = "Sacral"
	Emotional       Authority = "Emotional"
	Splenic         Authority = "Splenic"
	Ego             Authority = "Ego"
	Self            Authority = "Self"
	MentalProjector Authority = "Mental Projector"
	Lunar           Authority = "Lunar"
)

// Authorities lists the seven known authorities.
var Authorities = []Authority{Sacral, Emotional, Splenic, Ego, Self, MentalProjector, Lunar}

func (a Authority) String() string { return string(a) }

// AstroProfile is the astrological input to the composer.
type AstroProfile struct {
	SunSign   Sign
	MoonSign  string
	Ascendant string
}

// DesignProfile is the human-design input to the composer.
type DesignProfile struct {
	Type      DesignType
	Authority Authority
}
