package guide

// ResolveArchetype looks up the archetype for a sign and type pair, returning
// "The Cosmic Voyager" when either key is missing.
func ResolveArchetype(sign Sign, t DesignType) string {
	byType, ok := archetypes[sign]
	if !ok {
		return defaultArchetype
	}
	if v, ok := byType[t]; ok {
		return v
	}
	return defaultArchetype
}
