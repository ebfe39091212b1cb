package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	randomdata "github.com/Pallinder/go-randomdata"
)

const dateLayout = "2006-01-02"

var (
	minBirthDate = time.Date(1938, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxBirthDate = time.Date(2018, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Generator produces the synthetic patient, provider, and claim datasets.
// Every draw flows through one seeded source, so a run is reproducible from
// its seed alone.
type Generator struct {
	r *rand.Rand
}

// NewGenerator returns a generator seeded once for the whole run. The faker
// library draws from a package-global source, so construction points that
// global at the same seeded stream; only the most recently constructed
// Generator is deterministic.
func NewGenerator(seed int64) *Generator {
	r := rand.New(rand.NewSource(seed))
	randomdata.CustomRand(r)
	return &Generator{r: r}
}

// intBetween returns a draw from [min, max] inclusive.
func (g *Generator) intBetween(min, max int) int {
	return min + g.r.Intn(max-min+1)
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.r.Float64()*(max-min)
}

func (g *Generator) chance(p float64) bool {
	return g.r.Float64() < p
}

func (g *Generator) locale() Locale {
	return Locales[g.r.Intn(len(Locales))]
}

// dateBetween returns a draw from [min, max] inclusive at day granularity.
func (g *Generator) dateBetween(min, max time.Time) time.Time {
	days := int(max.Sub(min).Hours() / 24)
	return min.AddDate(0, 0, g.r.Intn(days+1))
}

// firstName draws the gender from the seeded source and passes it to the
// faker explicitly; the RandomGender shortcut resolves the gender through an
// unseeded global stream and would break run-to-run reproducibility.
func (g *Generator) firstName() string {
	return randomdata.FirstName(g.r.Intn(2))
}

// npi returns a random 10-digit identifier. Uniqueness is only
// probabilistic; collisions between providers are accepted.
func npi() string {
	return randomdata.StringNumberExt(1, "", 10)
}

func phone() string {
	return fmt.Sprintf("%s-%s-%s",
		randomdata.StringNumberExt(1, "", 3),
		randomdata.StringNumberExt(1, "", 3),
		randomdata.StringNumberExt(1, "", 4))
}

func streetAddress() string {
	return fmt.Sprintf("%d %s", randomdata.Number(100, 1000), randomdata.Street())
}

func birthDate() string {
	d := randomdata.FullDateInRange(minBirthDate.Format(randomdata.DateInputLayout),
		maxBirthDate.Format(randomdata.DateInputLayout))
	t, err := time.Parse(randomdata.DateOutputLayout, d)
	// Since we're using the same output format, this should never occur
	if err != nil {
		panic("cannot parse faked birth date " + err.Error())
	}
	return t.Format(dateLayout)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
