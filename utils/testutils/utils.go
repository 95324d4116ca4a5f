package testutils

import (
	"testing"

	"github.com/benoitkugler/boxgeom/logger"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("expected\n%v\n got \n%v\n(-exp +got)\n%s", exp, got, diff)
	}
}

// CapturedLogs redirects the warnings emitted by the package loggers
// until one of its assertion methods is called.
type CapturedLogs struct {
	logs              *observer.ObservedLogs
	progress, warning *zap.SugaredLogger
}

// CaptureLogs start capturing log output.
func CaptureLogs() *CapturedLogs {
	core, logs := observer.New(zap.WarnLevel)
	out := CapturedLogs{logs: logs, progress: logger.ProgressLogger, warning: logger.WarningLogger}
	logger.SetLogger(zap.New(core))
	return &out
}

func (c *CapturedLogs) restore() {
	logger.ProgressLogger = c.progress
	logger.WarningLogger = c.warning
}

// Logs restores the loggers and returns the captured messages.
func (c *CapturedLogs) Logs() []string {
	c.restore()
	var out []string
	for _, entry := range c.logs.All() {
		out = append(out, entry.Message)
	}
	return out
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if l := c.Logs(); len(l) > 0 {
		t.Fatalf("expected no logs, got %d: %v", len(l), l)
	}
}

// CheckEqual asserts that the captured messages are exactly [refs].
func (c *CapturedLogs) CheckEqual(refs []string, t *testing.T) {
	t.Helper()
	AssertEqual(t, c.Logs(), refs)
}
