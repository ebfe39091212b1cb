package synth

import (
	"fmt"

	randomdata "github.com/Pallinder/go-randomdata"
)

// Patient is one generation of a patient dimension row. There is no
// is_current flag; when a patient carries a second row, consumers derive
// currency from the updated-at ordering.
type Patient struct {
	PatientID     string
	FirstName     string
	LastName      string
	DateOfBirth   string
	Gender        string
	AddressLine1  string
	City          string
	State         string
	ZipCode       string
	PlanType      string
	PlanName      string
	MemberID      string
	EffectiveDate string
	TermDate      string
	UpdatedAt     string
}

// Fixed timestamps marking the original load and the later attribute change
// that produces a patient's or provider's second row.
const (
	enrollmentEffectiveDate = "2022-01-01"
	initialLoadTimestamp    = "2023-01-01"
	patientChangeTimestamp  = "2024-03-15"
	providerChangeTimestamp = "2024-01-15"
)

// Patients generates count patients in insertion order. Roughly 30% of
// patients carry a second row modeling a prior enrollment state; that row
// immediately follows its current row and shares the patient and member
// identifiers by construction.
func (g *Generator) Patients(count int) []Patient {
	if count < 0 {
		count = 0
	}
	patients := make([]Patient, 0, count)
	for i := 1; i <= count; i++ {
		loc := g.locale()
		planType := g.planType()
		p := Patient{
			PatientID:     fmt.Sprintf("P%03d", i),
			FirstName:     g.firstName(),
			LastName:      randomdata.LastName(),
			DateOfBirth:   birthDate(),
			Gender:        randomdata.StringSample("M", "F"),
			AddressLine1:  streetAddress(),
			City:          loc.City,
			State:         StateCode,
			ZipCode:       loc.ZipCode,
			PlanType:      planType,
			PlanName:      g.planName(planType),
			MemberID:      fmt.Sprintf("MEM%03d", i),
			EffectiveDate: enrollmentEffectiveDate,
			TermDate:      "",
			UpdatedAt:     initialLoadTimestamp,
		}
		patients = append(patients, p)

		if g.chance(0.3) {
			old := p
			oldLoc := g.locale()
			old.City = oldLoc.City
			old.ZipCode = oldLoc.ZipCode
			old.PlanType = g.planType()
			old.UpdatedAt = patientChangeTimestamp
			patients = append(patients, old)
		}
	}
	return patients
}

func (g *Generator) planType() string {
	return PlanTypes[g.r.Intn(len(PlanTypes))]
}

func (g *Generator) planName(planType string) string {
	names := planNamesFor(planType)
	return names[g.r.Intn(len(names))]
}

// PatientIDs returns the distinct patient identifiers in insertion order.
func PatientIDs(patients []Patient) []string {
	seen := make(map[string]struct{}, len(patients))
	ids := make([]string, 0, len(patients))
	for _, p := range patients {
		if _, ok := seen[p.PatientID]; ok {
			continue
		}
		seen[p.PatientID] = struct{}{}
		ids = append(ids, p.PatientID)
	}
	return ids
}
