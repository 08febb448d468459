package testhelpers

import (
	"testing"

	"github.com/kjstillabower/devtasks/internal/config"
)

// TestWriteSecretsFile_RoundTripsThroughLoader verifies the helper produces
// a file the real loader accepts.
func TestWriteSecretsFile_RoundTripsThroughLoader(t *testing.T) {
	path := WriteSecretsFile(t, t.TempDir(), "hunter2")

	sec, err := config.LoadSecrets(path)
	if err != nil {
		t.Fatalf("LoadSecrets() error = %v", err)
	}

	pw, err := sec.Password()
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if pw != "hunter2" {
		t.Errorf("Password() = %q, want %q", pw, "hunter2")
	}
}
