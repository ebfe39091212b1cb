package utils

import (
	"os"
	"strconv"
)

// GetEnvInt parses varName from the environment, returning defaultVal when
// the variable is unset or not an integer.
func GetEnvInt(varName string, defaultVal int) int {
	if v := os.Getenv(varName); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
