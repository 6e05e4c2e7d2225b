package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"astroguide/internal/calculator"
	"astroguide/internal/gateway/entity"
	"astroguide/internal/geo"
	"astroguide/internal/guide"
	"astroguide/internal/humandesign"
)

type readingOutput struct {
	Birthplace  string              `json:"birthplace"`
	Geocoded    bool                `json:"geocoded"`
	Country     string              `json:"country,omitempty"`
	Coordinates string              `json:"coordinates"`
	AstroData   entity.AstroData    `json:"astroData"`
	HDData      entity.HumanDesign  `json:"hdData"`
	Resonance   string              `json:"resonance"`
	Archetype   string              `json:"archetype"`
	Reading     humandesign.Reading `json:"reading"`
	Welcome     string              `json:"welcome"`
}

func newReadingCmd() *cobra.Command {
	var birthday, birthtime, place string
	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Compute a profile with the built-in calculator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := geo.NewResolver(logger)
			if err != nil {
				return err
			}
			loc := resolver.Lookup(place)
			birth := entity.BirthData{
				Birthday:   birthday,
				Birthtime:  birthtime,
				Birthplace: place,
				Lat:        loc.Lat,
				Lng:        loc.Lng,
			}
			calc := calculator.NewBuiltinCalculator()
			astro, err := calc.Astro(cmd.Context(), birth)
			if err != nil {
				return err
			}
			design, err := calc.HumanDesign(cmd.Context(), birth)
			if err != nil {
				return err
			}
			sign := guide.Sign(astro.SunSign)
			designType := guide.DesignType(design.Type)
			resonance := guide.DeriveResonance(sign, designType)
			archetype := guide.ResolveArchetype(sign, designType)
			logger.Debug("reading computed", zap.String("sun_sign", astro.SunSign), zap.String("type", design.Type))

			return writeJSON(cmd.OutOrStdout(), readingOutput{
				Birthplace:  place,
				Geocoded:    loc.Found,
				Country:     loc.Country,
				Coordinates: geo.FormatCoordinates(loc.Lat, loc.Lng),
				AstroData:   astro,
				HDData:      design,
				Resonance:   resonance,
				Archetype:   archetype,
				Reading:     humandesign.Describe(design),
				Welcome:     guide.Welcome(sign, designType, archetype, resonance),
			})
		},
	}
	cmd.Flags().StringVar(&birthday, "birthday", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&birthtime, "birthtime", entity.DefaultBirthtime, "birth time (HH:MM)")
	cmd.Flags().StringVar(&place, "place", "", "birth city")
	_ = cmd.MarkFlagRequired("birthday")
	_ = cmd.MarkFlagRequired("place")
	return cmd
}
