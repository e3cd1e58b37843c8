package testutil

import (
	"os"
	"regexp"
	"testing"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether credentialed integration tests
// are enabled for the given env prefix. It requires PREFIX_API_KEY,
// PREFIX_API_SECRET and TEST_PREFIX=1 to be set.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}
