package applog

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel("info")
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")

	const msg = "wrote results/0min_value-100%max_value.csv (100.0% of rows)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of rows)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	if !SetLogLevel("WARN") {
		t.Fatalf("expected WARN to be accepted")
	}
	Infof("hidden %d", 1)
	Debugf("hidden too")
	Warnf("shown %s", "warn")
	Errorf("shown error")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown warn") || !strings.Contains(out, "[ERROR] shown error") {
		t.Fatalf("missing warn/error lines: %s", out)
	}
}

func TestSetLogLevel_UnknownKeepsLevel(t *testing.T) {
	captureLogs(t)
	SetLogLevel("debug")
	if SetLogLevel("verbose") {
		t.Fatalf("unknown level should be rejected")
	}
	if GetLogLevel() != LevelDebug {
		t.Fatalf("level changed on unknown name: %v", GetLogLevel())
	}
}

func TestComponentLogger(t *testing.T) {
	buf := captureLogs(t)
	New("viewer").Warnf("render: %v", "boom")
	if got := strings.TrimSpace(buf.String()); got != "[WARN] viewer: render: boom" {
		t.Fatalf("line = %q", got)
	}
}

func TestTimeTrackAtDebug(t *testing.T) {
	buf := captureLogs(t)
	TimeTrack(time.Now(), "save figure")
	if buf.Len() != 0 {
		t.Fatalf("TimeTrack logged at info level: %s", buf.String())
	}
	SetLogLevel("debug")
	TimeTrack(time.Now(), "save figure")
	if !strings.Contains(buf.String(), "[DEBUG] save figure took") {
		t.Fatalf("missing timing line: %s", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" || Level(9).String() != "Level(9)" {
		t.Fatalf("unexpected level names %s %s", LevelWarn, Level(9))
	}
}
