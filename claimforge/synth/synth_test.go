package synth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorDeterminism(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	run := func(seed int64) ([]Patient, []Provider, []ClaimLine) {
		g := NewGenerator(seed)
		patients := g.Patients(25)
		providers := g.Providers(15)
		claims, err := g.Claims(PatientIDs(patients), ProviderIDs(providers), 50, start, end)
		assert.NoError(t, err)
		return patients, providers, claims
	}

	patientsA, providersA, claimsA := run(42)
	patientsB, providersB, claimsB := run(42)

	assert.Equal(t, patientsA, patientsB)
	assert.Equal(t, providersA, providersB)
	assert.Equal(t, claimsA, claimsB)
}

func TestFirstNamesDeterministic(t *testing.T) {
	// The gender behind each name draw must come from the seeded source,
	// or names desynchronize between otherwise identical runs.
	draw := func() []string {
		g := NewGenerator(42)
		names := make([]string, 50)
		for i := range names {
			names[i] = g.firstName()
		}
		return names
	}
	assert.Equal(t, draw(), draw())
}

func TestNPIFormat(t *testing.T) {
	NewGenerator(42)
	format := regexp.MustCompile(`^\d{10}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, format, npi())
	}
}

func TestPhoneFormat(t *testing.T) {
	NewGenerator(42)
	format := regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, format, phone())
	}
}

func TestBirthDateWithinRange(t *testing.T) {
	NewGenerator(42)
	for i := 0; i < 50; i++ {
		d, err := time.Parse(dateLayout, birthDate())
		assert.NoError(t, err)
		assert.False(t, d.Before(minBirthDate))
		assert.False(t, d.After(maxBirthDate))
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	g := NewGenerator(42)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		n := g.intBetween(10, 12)
		assert.GreaterOrEqual(t, n, 10)
		assert.LessOrEqual(t, n, 12)
		seen[n] = true
	}
	assert.True(t, seen[10] && seen[12], "inclusive bounds should both be drawn")
}

func TestDateBetweenSingleDay(t *testing.T) {
	g := NewGenerator(42)
	day := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, g.dateBetween(day, day))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, round2(12.3456))
	assert.Equal(t, 12.34, round2(12.3416))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 99.99, round2(99.994))
}
