package synth

import (
	"fmt"

	randomdata "github.com/Pallinder/go-randomdata"
)

// Provider is one generation of a provider dimension row, keyed by a random
// 10-digit NPI. Same history convention as Patient.
type Provider struct {
	NPI                  string
	FirstName            string
	LastName             string
	Credential           string
	Specialty            string
	PracticeName         string
	AddressLine1         string
	City                 string
	State                string
	ZipCode              string
	Phone                string
	AcceptingNewPatients string
	UpdatedAt            string
}

// Providers generates count providers in insertion order. Roughly 20% of
// providers carry a second row with a prior practice; the historical practice
// follows the "{city} Health Partners" naming while current practices are
// "{city} {specialty} Associates".
func (g *Generator) Providers(count int) []Provider {
	if count < 0 {
		count = 0
	}
	providers := make([]Provider, 0, count)
	for i := 0; i < count; i++ {
		specialty := Specialties[g.r.Intn(len(Specialties))]
		loc := g.locale()
		p := Provider{
			NPI:                  npi(),
			FirstName:            g.firstName(),
			LastName:             randomdata.LastName(),
			Credential:           randomdata.StringSample("MD", "DO", "MD", "MD"),
			Specialty:            specialty.Name,
			PracticeName:         fmt.Sprintf("%s %s Associates", loc.City, specialty.Name),
			AddressLine1:         streetAddress(),
			City:                 loc.City,
			State:                StateCode,
			ZipCode:              loc.ZipCode,
			Phone:                phone(),
			AcceptingNewPatients: randomdata.StringSample("true", "true", "true", "false"),
			UpdatedAt:            initialLoadTimestamp,
		}
		providers = append(providers, p)

		if g.chance(0.2) {
			old := p
			oldLoc := g.locale()
			old.PracticeName = fmt.Sprintf("%s Health Partners", oldLoc.City)
			old.City = oldLoc.City
			old.ZipCode = oldLoc.ZipCode
			old.UpdatedAt = providerChangeTimestamp
			providers = append(providers, old)
		}
	}
	return providers
}

// ProviderIDs returns the distinct provider identifiers in insertion order.
func ProviderIDs(providers []Provider) []string {
	seen := make(map[string]struct{}, len(providers))
	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		if _, ok := seen[p.NPI]; ok {
			continue
		}
		seen[p.NPI] = struct{}{}
		ids = append(ids, p.NPI)
	}
	return ids
}
