package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/claimforge/claimforge/claimforge/synth"
)

// Seed file names expected by the downstream dbt project.
const (
	PatientsFile  = "raw_patients.csv"
	ProvidersFile = "raw_providers.csv"
	ClaimsFile    = "raw_claims.csv"
)

var patientHeader = []string{
	"patient_id", "first_name", "last_name", "date_of_birth", "gender",
	"address_line_1", "city", "state", "zip_code",
	"plan_type", "plan_name", "member_id",
	"effective_date", "term_date", "updated_at",
}

var providerHeader = []string{
	"npi", "provider_first_name", "provider_last_name", "credential",
	"specialty", "practice_name",
	"address_line_1", "city", "state", "zip_code",
	"phone", "accepting_new_patients", "updated_at",
}

var claimHeader = []string{
	"claim_id", "line_number", "patient_id", "provider_npi",
	"diagnosis_code", "procedure_code", "service_date", "paid_date",
	"place_of_service", "billed_amount", "allowed_amount", "paid_amount",
	"patient_responsibility", "units", "claim_status",
}

// WritePatients writes the patient seed file into dir and returns its path.
func WritePatients(dir string, patients []synth.Patient) (string, error) {
	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, []string{
			p.PatientID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
			p.AddressLine1, p.City, p.State, p.ZipCode,
			p.PlanType, p.PlanName, p.MemberID,
			p.EffectiveDate, p.TermDate, p.UpdatedAt,
		})
	}
	path := filepath.Join(dir, PatientsFile)
	return path, writeFile(path, patientHeader, rows)
}

// WriteProviders writes the provider seed file into dir and returns its path.
func WriteProviders(dir string, providers []synth.Provider) (string, error) {
	rows := make([][]string, 0, len(providers))
	for _, p := range providers {
		rows = append(rows, []string{
			p.NPI, p.FirstName, p.LastName, p.Credential,
			p.Specialty, p.PracticeName,
			p.AddressLine1, p.City, p.State, p.ZipCode,
			p.Phone, p.AcceptingNewPatients, p.UpdatedAt,
		})
	}
	path := filepath.Join(dir, ProvidersFile)
	return path, writeFile(path, providerHeader, rows)
}

// WriteClaims writes the claim line seed file into dir and returns its path.
func WriteClaims(dir string, claims []synth.ClaimLine) (string, error) {
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		rows = append(rows, []string{
			c.ClaimID, strconv.Itoa(c.LineNumber), c.PatientID, c.ProviderNPI,
			c.DiagnosisCode, c.ProcedureCode, c.ServiceDate, c.PaidDate,
			c.PlaceOfService, money(c.BilledAmount), money(c.AllowedAmount),
			money(c.PaidAmount), money(c.PatientResponsibility),
			strconv.Itoa(c.Units), c.ClaimStatus,
		})
	}
	path := filepath.Join(dir, ClaimsFile)
	return path, writeFile(path, claimHeader, rows)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeFile(path string, header []string, rows [][]string) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return errors.Wrapf(err, "could not create seed file %s", path)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logrus.Warnf("Failed to close file %s", err.Error())
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, "could not write header to %s", path)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "could not write row to %s", path)
		}
	}
	w.Flush()
	return w.Error()
}
