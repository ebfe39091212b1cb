package conf

/*
   This package wraps viper to load an env-style configuration file once at
   startup. Anything the file does not track falls back to the process
   environment, so deployments without a config file keep working on plain
   environment variables.

   Assumptions:
   1. The configuration file is an env file named local.env
   2. The configuration file, once loaded, stays immutable during the
   uptime of the application (exception is test)
*/

import (
	"os"
	"testing"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// An instance of the viper struct containing the conf information. Only made
// accessible through public functions GetEnv, SetEnv, etc.
var envVars *viper.Viper

const (
	configGood uint8 = iota
	configBad
	noConfigFound
)

var state = noConfigFound

func setup(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("local")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	// Viper is lazy, do the read and parse of the config file
	if err := v.ReadInConfig(); err != nil {
		state = configBad
		return v
	}
	state = configGood
	return v
}

func init() {
	// Possible config file locations: an operator-supplied directory first,
	// then the working directory.
	locations := []string{os.Getenv("CLAIMFORGE_CONFIG_DIR"), "."}
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		if _, err := os.Stat(loc + "/local.env"); err == nil {
			envVars = setup(loc)
			break
		}
	}
}

// GetEnv retrieves the value stored in conf. If the key is not tracked by the
// config file, the process environment is consulted instead.
func GetEnv(key string) string {
	if state == configGood {
		if value := envVars.GetString(key); value != "" {
			return value
		}
	}
	return os.Getenv(key)
}

// LookupEnv augments os.LookupEnv to look in the conf struct first.
func LookupEnv(key string) (string, bool) {
	if state == configGood {
		// Viper may hand back a non-string for numeric-looking entries
		if value := envVars.Get(key); value != nil && value != "" {
			return cast.ToString(value), true
		}
	}
	return os.LookupEnv(key)
}

// SetEnv adds a key value into conf. This function should only be used either
// in this package itself or testing. The protect parameter is type *testing.T
// to ensure developers knowingly use it in the appropriate scope.
func SetEnv(protect *testing.T, key string, value string) error {
	if state == configGood {
		envVars.Set(key, value)
		return nil
	}
	return os.Setenv(key, value)
}

// UnsetEnv "unsets" a variable. Like SetEnv, this should only be used either
// in this package itself or testing.
func UnsetEnv(protect *testing.T, key string) error {
	if state == configGood {
		envVars.Set(key, "")
	}
	return os.Unsetenv(key)
}
