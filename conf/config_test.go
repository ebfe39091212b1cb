package conf

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGetEnv(t *testing.T) {
	const key = "CLAIMFORGE_CONF_TEST_KEY"

	assert.NoError(t, SetEnv(t, key, "somevalue"))
	assert.Equal(t, "somevalue", GetEnv(key))

	value, ok := LookupEnv(key)
	assert.True(t, ok)
	assert.Equal(t, "somevalue", value)

	assert.NoError(t, UnsetEnv(t, key))
	assert.Equal(t, "", GetEnv(key))
}

func TestLookupEnvMissing(t *testing.T) {
	value, ok := LookupEnv("CLAIMFORGE_CONF_TEST_MISSING")
	assert.False(t, ok)
	assert.Equal(t, "", value)
}

func TestLookupEnvNonStringValue(t *testing.T) {
	origVars, origState := envVars, state
	defer func() { envVars, state = origVars, origState }()

	envVars = viper.New()
	state = configGood
	envVars.Set("CLAIMFORGE_CONF_TEST_NUM", 123)

	value, ok := LookupEnv("CLAIMFORGE_CONF_TEST_NUM")
	assert.True(t, ok)
	assert.Equal(t, "123", value)
}

func TestGetEnvFallsBackToEnvironment(t *testing.T) {
	const key = "CLAIMFORGE_CONF_TEST_OS_KEY"

	t.Setenv(key, "fromos")
	assert.Equal(t, "fromos", GetEnv(key))
}
