package observability

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger()
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger() returned nil logger")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	logger, err := NewConsoleLogger()
	if err != nil {
		t.Fatalf("NewConsoleLogger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("NewConsoleLogger() returned nil logger")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want zap.AtomicLevel
	}{
		{name: "debug", in: "debug", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "warn upper", in: "WARN", want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "error padded", in: " error ", want: zap.NewAtomicLevelAt(zap.ErrorLevel)},
		{name: "default", in: "", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "unknown", in: "verbose", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseLogLevel(tc.in)
			if got.Level() != tc.want.Level() {
				t.Fatalf("parseLogLevel(%q) = %v, want %v", tc.in, got.Level(), tc.want.Level())
			}
		})
	}
}
