package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/limitless/tilemap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagConfig, flagSave, flagMap, flagTPS, flagSeed, flagDebug = "", "", "", 0, 0, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimStartsGameFromMenu(t *testing.T) {
	out, err := execute(t, "sim", "--ticks", "30", "--script", "confirm*1", "--seed", "1")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	for _, want := range []string{"mode:    play", "tick:    30", "weapon=none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSimAcceptsInventoryActions(t *testing.T) {
	out, err := execute(t, "sim", "--ticks", "10", "--script", "confirm*1,none*1,inventory*1,drop*1,history*1,inventory*1", "--seed", "1")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	if !strings.Contains(out, "mode:    play") || strings.Contains(out, "bag:") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestSimRejectsBadScript(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"unknown_action", []string{"sim", "--ticks", "10", "--script", "jump*2"}},
		{"bad_count", []string{"sim", "--ticks", "10", "--script", "up*x"}},
		{"zero_ticks", []string{"sim", "--ticks", "0", "--script", "up"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestMapcheckReportsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.txt")
	if err := os.WriteFile(path, []byte("0 1\n3 x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "mapcheck", path)
	if err != nil {
		t.Fatalf("mapcheck: %v", err)
	}
	for _, want := range []string{`malformed tile "x"`, "map has 2 rows, want 68", "69x68"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMapcheckEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "mapcheck", path)
	if !errors.Is(err, tilemap.ErrEmptyMap) {
		t.Fatalf("mapcheck = %v, want ErrEmptyMap", err)
	}
}

func TestMapcheckNeedsOneFile(t *testing.T) {
	if _, err := execute(t, "mapcheck"); err == nil {
		t.Fatalf("expected an argument error")
	}
}
