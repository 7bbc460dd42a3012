package config_test

import (
	"os"
	"testing"

	"github.com/dmitrymomot/recordcheck/pkg/config"
)

var settingKeys = []string{
	"APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
	"RECORDS_INPUT", "RECORDS_STORAGE", "RECORDS_DIR", "REPORT_FORMAT",
	"S3_BUCKET", "S3_REGION", "S3_ACCESS_KEY_ID", "S3_SECRET_KEY",
	"S3_ENDPOINT", "S3_FORCE_PATH_STYLE", "S3_READ_TIMEOUT",
}

// cleanEnv unsets every setting for the duration of the test and empties the
// config cache. Values written by LoadEnv are rolled back by t.Setenv.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range settingKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}
