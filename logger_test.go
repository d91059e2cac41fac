package inorder

import (
	"fmt"
	"testing"
)

// tLogger forwards verification traces to the log of the running test, so they only
// show up for failing tests or with -v.
type tLogger struct {
	t *testing.T
}

func (l *tLogger) logf(line string) {
	l.t.Helper()
	l.t.Log("[inorder] " + line)
}

func (l *tLogger) Print(v ...interface{})                 { l.t.Helper(); l.logf(fmt.Sprint(v...)) }
func (l *tLogger) Printf(format string, v ...interface{}) { l.t.Helper(); l.logf(fmt.Sprintf(format, v...)) }
func (l *tLogger) Println(v ...interface{})               { l.t.Helper(); l.logf(fmt.Sprintln(v...)) }

// useTestLogger routes Logger to t until the test ends.
func useTestLogger(t *testing.T) {
	previous := Logger
	Logger = &tLogger{t: t}
	t.Cleanup(func() { Logger = previous })
}

func TestLoggerReceivesSessionTraces(t *testing.T) {
	rec := &recordingLogger{}
	previous := Logger
	Logger = rec
	defer func() { Logger = previous }()

	ledger := NewLedger()
	m := ledger.NewMock("m")
	m.Record(simpleMethod, 1)

	s, err := InOrder(m)
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Verify(m, simpleMethod, 2)
	_ = s.Verify(m, simpleMethod, 1)

	if len(rec.lines) != 3 {
		t.Fatalf("Expected 3 trace lines (created, failed, consumed), got %q", rec.lines)
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Print(v ...interface{}) { l.lines = append(l.lines, fmt.Sprint(v...)) }
func (l *recordingLogger) Printf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Println(v ...interface{}) { l.lines = append(l.lines, fmt.Sprintln(v...)) }
