package guide

// DeriveResonance combines the element of a sun sign with a phrase keyed on the
// design type. An unknown sign leaves the element empty; any type other than
// Generator, Manifesting Generator, Projector or Manifestor gets the Reflector phrase.
func DeriveResonance(sign Sign, t DesignType) string {
	return string(ElementOf(sign)) + " energy " + resonancePhrase(t)
}

func resonancePhrase(t DesignType) string {
	switch {
	case t.sustainsEnergy():
		return "channeled through creative work"
	case t == Projector:
		return "focused through guiding others"
	case t == Manifestor:
		return "expressed through initiative"
	default:
		return "sampled and reflected over time"
	}
}
