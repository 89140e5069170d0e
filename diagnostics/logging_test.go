package diagnostics

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetLevelLastCallWins(t *testing.T) {
	SetLevel(log.WarnLevel)
	SetLevel(log.DebugLevel)
	if getLogger().GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want DebugLevel", getLogger().GetLevel())
	}
}

func TestLoggingDoesNotPanic(t *testing.T) {
	Debug("debug message", "k", 1)
	Info("info message", "k", 2)
	Warn("warn message", "k", 3)
	Error("error message", "k", 4)
}
