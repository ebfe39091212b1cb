package output

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"

	"github.com/claimforge/claimforge/claimforge/synth"
)

func readSeedFile(t *testing.T, path string) dataframe.DataFrame {
	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	df := dataframe.ReadCSV(file, dataframe.HasHeader(true), dataframe.DetectTypes(false))
	assert.NoError(t, df.Err)
	return df
}

func TestWritePatients(t *testing.T) {
	g := synth.NewGenerator(42)
	patients := g.Patients(8)

	path, err := WritePatients(t.TempDir(), patients)
	assert.NoError(t, err)

	df := readSeedFile(t, path)
	assert.Equal(t, len(patients), df.Nrow())
	assert.Equal(t, patientHeader, df.Names())
	assert.Equal(t, patients[0].PatientID, df.Col("patient_id").Records()[0])
}

func TestWriteProviders(t *testing.T) {
	g := synth.NewGenerator(42)
	providers := g.Providers(6)

	path, err := WriteProviders(t.TempDir(), providers)
	assert.NoError(t, err)

	df := readSeedFile(t, path)
	assert.Equal(t, len(providers), df.Nrow())
	assert.Equal(t, providerHeader, df.Names())
	assert.Equal(t, providers[0].NPI, df.Col("npi").Records()[0])
}

func TestWriteClaims(t *testing.T) {
	g := synth.NewGenerator(42)
	patients := g.Patients(5)
	providers := g.Providers(4)
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	claims, err := g.Claims(synth.PatientIDs(patients), synth.ProviderIDs(providers), 10, start, end)
	assert.NoError(t, err)

	path, err := WriteClaims(t.TempDir(), claims)
	assert.NoError(t, err)

	df := readSeedFile(t, path)
	assert.Equal(t, len(claims), df.Nrow())
	assert.Equal(t, claimHeader, df.Names())

	// Monetary fields serialize with two decimal places
	billed := df.Col("billed_amount").Records()
	for i, line := range claims {
		assert.Equal(t, strconv.FormatFloat(line.BilledAmount, 'f', 2, 64), billed[i])
	}
}

func TestWriteEmptyTables(t *testing.T) {
	dir := t.TempDir()

	path, err := WritePatients(dir, nil)
	assert.NoError(t, err)

	// Header row is still present for schema-sensitive consumers
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "patient_id,first_name")
}

func TestWriteFileBadDirectory(t *testing.T) {
	_, err := WritePatients("/nonexistent/claimforge-test", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not create seed file")
}
