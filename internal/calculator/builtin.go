package calculator

import (
	"context"
	"math/rand/v2"
	"sort"

	"astroguide/internal/gateway/entity"
	"astroguide/internal/guide"
	"astroguide/internal/humandesign"
)

// BuiltinCalculator is a deterministic stand-in for the external scripts. It
// derives the sun sign from tropical date ranges and a pseudo-random but
// reproducible human design from the birth moment and location. Moon sign and
// ascendant are left empty.
type BuiltinCalculator struct{}

func NewBuiltinCalculator() *BuiltinCalculator { return &BuiltinCalculator{} }

func (BuiltinCalculator) Astro(_ context.Context, birth entity.BirthData) (entity.AstroData, error) {
	moment, err := birth.Moment()
	if err != nil {
		return entity.AstroData{}, err
	}
	return entity.AstroData{SunSign: string(SunSign(int(moment.Month()), moment.Day()))}, nil
}

func (BuiltinCalculator) HumanDesign(_ context.Context, birth entity.BirthData) (entity.HumanDesign, error) {
	moment, err := birth.Moment()
	if err != nil {
		return entity.HumanDesign{}, err
	}
	seed := moment.Unix() + int64(birth.Lat*100) + int64(birth.Lng*100)

	// Order matters: the seed indexes into it.
	types := []guide.DesignType{guide.Generator, guide.Projector, guide.Manifestor, guide.Reflector, guide.ManifestingGenerator}
	hdType := types[mod(seed, int64(len(types)))]

	var authority guide.Authority
	switch hdType {
	case guide.Generator, guide.ManifestingGenerator:
		authority = guide.Sacral
	case guide.Reflector:
		authority = guide.Lunar
	default:
		authority = guide.Authorities[moment.Minute()%(len(guide.Authorities)-2)]
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	all := make([]int, 64)
	for i := range all {
		all[i] = i + 1
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	gates := append([]int(nil), all[:15+mod(seed, 10)]...)
	sort.Ints(gates)

	centers := make([]string, 0, len(humandesign.Centers))
	for _, c := range humandesign.Centers {
		if rng.Float64() < 0.5 {
			centers = append(centers, c)
		}
	}

	return entity.HumanDesign{
		Type:       string(hdType),
		Authority:  string(authority),
		Profile:    humandesign.Profiles[(moment.Day()+int(moment.Month()))%len(humandesign.Profiles)],
		Definition: humandesign.Definitions[moment.Year()%len(humandesign.Definitions)],
		Gates:      gates,
		Centers:    centers,
	}, nil
}

type signStart struct {
	month, day int
	sign       guide.Sign
}

// signStarts holds the first day of each sign in calendar order.
var signStarts = []signStart{
	{1, 20, guide.Aquarius},
	{2, 19, guide.Pisces},
	{3, 21, guide.Aries},
	{4, 20, guide.Taurus},
	{5, 21, guide.Gemini},
	{6, 21, guide.Cancer},
	{7, 23, guide.Leo},
	{8, 23, guide.Virgo},
	{9, 23, guide.Libra},
	{10, 23, guide.Scorpio},
	{11, 22, guide.Sagittarius},
	{12, 22, guide.Capricorn},
}

// SunSign returns the tropical sun sign for a calendar day.
func SunSign(month, day int) guide.Sign {
	sign := guide.Capricorn
	for _, s := range signStarts {
		if month > s.month || (month == s.month && day >= s.day) {
			sign = s.sign
		}
	}
	return sign
}

func mod(a, n int64) int {
	return int(((a % n) + n) % n)
}
