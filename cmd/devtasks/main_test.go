package main

import (
	"testing"

	"go.uber.org/zap"
)

// TestNewApp_RegistersUpdateCommand covers the one piece of wiring main owns:
// the command surface. Task logic lives in internal/updater with its own
// tests.
func TestNewApp_RegistersUpdateCommand(t *testing.T) {
	app := newApp(zap.NewNop())

	if app.Name != "devtasks" {
		t.Errorf("app.Name = %q, want devtasks", app.Name)
	}
	if app.Command("update-vscode") == nil {
		t.Fatal("update-vscode command not registered")
	}
}
