package config

import (
	"fmt"
	"os"
	"strconv"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared.
// Every other variable has a default.
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvSchemaVersion)
	if !ok {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that load but probably do not do what the operator wants
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	enabled, err := strconv.ParseBool(os.Getenv(EnvUpdateCheckEnabled))
	if err != nil {
		enabled = DefaultUpdateCheckEnabled
	}
	if enabled && os.Getenv(EnvCurseProjectID) == "" {
		warnings = append(warnings, "UPDATE_CHECK_ENABLED is on but CURSE_PROJECT_ID is empty - update checks will not run")
	}

	if os.Getenv(EnvPluginVersion) == "" {
		warnings = append(warnings, "PLUGIN_VERSION is not set - update checks compare against \"dev\"")
	}

	return warnings, nil
}
