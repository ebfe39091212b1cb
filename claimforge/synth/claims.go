package synth

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ClaimLine is one billable line of a claim. Lines of the same claim share
// patient, provider, service and paid dates, place of service, and diagnosis;
// the procedure may differ per line.
type ClaimLine struct {
	ClaimID               string
	LineNumber            int
	PatientID             string
	ProviderNPI           string
	DiagnosisCode         string
	ProcedureCode         string
	ServiceDate           string
	PaidDate              string
	PlaceOfService        string
	BilledAmount          float64
	AllowedAmount         float64
	PaidAmount            float64
	PatientResponsibility float64
	Units                 int
	ClaimStatus           string
}

// Place of service codes: 11=Office, 22=Outpatient. Office visits dominate
// 3:1.
var placesOfService = []string{"11", "22", "11", "11"}

// Claims generates count claims as a flat sequence of claim lines in
// generation order. Patients and providers are drawn uniformly from the
// supplied identifier sets; the service date falls within [start, end] and
// payment lands 10 to 45 days later. Roughly 30% of claims gain a second
// line carrying an independently drawn non-invasive procedure.
func (g *Generator) Claims(patientIDs, providerIDs []string, count int, start, end time.Time) ([]ClaimLine, error) {
	if count < 0 {
		count = 0
	}
	if count > 0 && len(patientIDs) == 0 {
		return nil, errors.New("claim generation requires at least one patient")
	}
	if count > 0 && len(providerIDs) == 0 {
		return nil, errors.New("claim generation requires at least one provider")
	}

	lines := make([]ClaimLine, 0, count)
	for i := 1; i <= count; i++ {
		claimID := fmt.Sprintf("CLM%03d", i)
		patientID := patientIDs[g.r.Intn(len(patientIDs))]
		providerNPI := providerIDs[g.r.Intn(len(providerIDs))]

		serviceDate := g.dateBetween(start, end)
		paidDate := serviceDate.AddDate(0, 0, g.intBetween(10, 45))
		diagnosis := Diagnoses[g.r.Intn(len(Diagnoses))]
		pos := placesOfService[g.r.Intn(len(placesOfService))]

		procedure := Procedures[g.r.Intn(len(Procedures))]
		lines = append(lines, g.claimLine(claimID, 1, patientID, providerNPI,
			diagnosis, procedure, serviceDate, paidDate, pos))

		if g.chance(0.3) {
			extra := nonInvasiveProcedures[g.r.Intn(len(nonInvasiveProcedures))]
			lines = append(lines, g.claimLine(claimID, 2, patientID, providerNPI,
				diagnosis, extra, serviceDate, paidDate, pos))
		}
	}
	return lines, nil
}

// claimLine derives the monetary fields from the procedure's reference price.
// The allowed and paid multipliers sit below one, so
// billed >= allowed >= paid holds by construction.
func (g *Generator) claimLine(claimID string, lineNumber int, patientID, providerNPI string,
	diagnosis Diagnosis, procedure Procedure, serviceDate, paidDate time.Time, placeOfService string) ClaimLine {

	billed := round2(procedure.BasePrice * g.uniform(0.9, 1.1))
	allowed := round2(billed * g.uniform(0.7, 0.85))
	paid := round2(allowed * 0.8)

	return ClaimLine{
		ClaimID:               claimID,
		LineNumber:            lineNumber,
		PatientID:             patientID,
		ProviderNPI:           providerNPI,
		DiagnosisCode:         diagnosis.Code,
		ProcedureCode:         procedure.Code,
		ServiceDate:           serviceDate.Format(dateLayout),
		PaidDate:              paidDate.Format(dateLayout),
		PlaceOfService:        placeOfService,
		BilledAmount:          billed,
		AllowedAmount:         allowed,
		PaidAmount:            paid,
		PatientResponsibility: round2(allowed - paid),
		Units:                 1,
		ClaimStatus:           "PAID",
	}
}
