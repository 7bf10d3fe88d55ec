// Package config centralizes gameplay tunables and environment lookups.
package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool reports whether the environment variable is set to a truthy
// value ("1", "true" or "yes"). Unset or anything else is false.
func GetEnvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	}
	return false
}
