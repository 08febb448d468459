// Package testhelpers holds shared test setup and the session exit-code
// rewrite used by tag-gated packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// codeNoTestsCollected is the status meaning a session collected no tests at
// all. The value 5 is the pytest convention; Go's own test binary exits zero
// in that case, so the rewrite only fires when the suite runs under a
// harness that reports empty collection this way. Tag-gated packages hit the
// condition whenever their tag is off; that is not a failure of the suite.
const codeNoTestsCollected = 5

// Main runs the test binary and exits, rewriting the one "no tests
// collected" status to success. Every other status passes through
// unmodified. Use as the body of TestMain in packages whose tests can all be
// compiled out or filtered away.
func Main(m *testing.M) {
	code := m.Run()
	if code == codeNoTestsCollected {
		code = 0
	}
	os.Exit(code)
}

// WriteSecretsFile writes a minimal secrets file into dir and returns its
// path. Shared by config and updater tests.
func WriteSecretsFile(t *testing.T, dir, password string) string {
	t.Helper()
	path := filepath.Join(dir, "secrets.yaml")
	if err := os.WriteFile(path, []byte("password: "+password+"\n"), 0o600); err != nil {
		t.Fatalf("write secrets file: %v", err)
	}
	return path
}
