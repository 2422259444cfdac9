package env

import (
	"os"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// TrySetDurationFromEnv leaves val untouched when the variable is missing or
// does not parse as a time.Duration.
func TrySetDurationFromEnv(envName string, val *time.Duration) bool {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return false
	}

	parsed, err := time.ParseDuration(envVal)
	if err != nil {
		return false
	}

	*val = parsed
	return true
}
