package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure(t *testing.T) {
	defer SetLogger(zap.NewNop())

	for _, level := range []string{"none", "normal", "debug"} {
		if err := Configure(level); err != nil {
			t.Fatalf("level %s: %s", level, err)
		}
	}
	if err := Configure("verbose"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(zap.NewNop())

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	WarningLogger.Warnf("ignored declaration %s", "color")
	ProgressLogger.Debug("step")

	if logs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.LoggerName != "warning" || entry.Message != "ignored declaration color" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}
