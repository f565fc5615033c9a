package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

// execute runs the CLI with args and captures combined output. The
// command tree and viper registry are process-wide, so each test sets
// every flag it depends on explicitly.
func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

// TestVersionCommand checks the plain version output.
func TestVersionCommand(t *testing.T) {
	out, err := execute(t, context.Background(), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "picoprime version 1.0.0") {
		t.Errorf("version output = %q", out)
	}
}

// TestVersionAtLeast checks both directions of the semver gate.
func TestVersionAtLeast(t *testing.T) {
	defer func() { atLeast = "" }()

	if _, err := execute(t, context.Background(), "version", "--at-least", "0.1.0"); err != nil {
		t.Errorf("version --at-least 0.1.0 failed: %v", err)
	}
	if _, err := execute(t, context.Background(), "version", "--at-least", "999.0.0"); err == nil {
		t.Error("version --at-least 999.0.0 succeeded on an older runtime")
	}
}

// TestBenchCommand runs two real passes at a tiny capacity and checks
// the full report sequence.
func TestBenchCommand(t *testing.T) {
	out, err := execute(t, context.Background(), "bench", "--capacity", "10", "--passes", "2")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("bench printed %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "FreeHeap = ") {
		t.Errorf("line 0 = %q, want FreeHeap diagnostic", lines[0])
	}
	if lines[1] != "Last Prime = 29" {
		t.Errorf("line 1 = %q, want \"Last Prime = 29\"", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Runtime = ") {
		t.Errorf("line 2 = %q, want first-pass runtime", lines[2])
	}
	if !strings.Contains(lines[3], "Pass = 2, Average Runtime = ") {
		t.Errorf("line 3 = %q, want second-pass summary", lines[3])
	}
}

// TestBenchRejectsInvalidCapacity checks validation runs before any
// trial.
func TestBenchRejectsInvalidCapacity(t *testing.T) {
	out, err := execute(t, context.Background(), "bench", "--capacity", "2", "--passes", "1")
	if err == nil {
		t.Fatalf("bench accepted capacity 2, output:\n%s", out)
	}
	if strings.Contains(out, "FreeHeap") {
		t.Error("benchmark started despite invalid capacity")
	}
}

// TestRunCommandStopsOnContext checks the triggered loop exits cleanly
// when its context ends with no trigger ever firing.
func TestRunCommandStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	out, err := execute(t, ctx, "run",
		"--capacity", "10", "--source", "stdin", "--interval", "10ms", "--passes", "0")
	if err != nil {
		t.Fatalf("run failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "FreeHeap = ") {
		t.Errorf("run output missing startup diagnostic: %q", out)
	}
	if strings.Contains(out, "Last Prime") {
		t.Errorf("a trial ran without a trigger: %q", out)
	}
}

// TestConfigCommand checks the YAML dump reflects flag overrides.
func TestConfigCommand(t *testing.T) {
	out, err := execute(t, context.Background(), "config", "--capacity", "4242")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "capacity: 4242") {
		t.Errorf("config output missing override:\n%s", out)
	}
	if !strings.Contains(out, "source: stdin") {
		t.Errorf("config output missing default source:\n%s", out)
	}
}
