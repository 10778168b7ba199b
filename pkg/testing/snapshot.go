package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/material/pkg/errors"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a widget's layout and the operations it painted.
type Snapshot struct {
	Size       [2]float64  `json:"size"`
	Baseline   float64     `json:"baseline"`
	Value      bool        `json:"value"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// CaptureSnapshot lays the widget out, paints it and serializes the result.
func (t *Tester) CaptureSnapshot() *Snapshot {
	res := t.Layout()
	dl := t.Paint()
	return &Snapshot{
		Size:       [2]float64{round2(res.Size.Width), round2(res.Size.Height)},
		Baseline:   round2(res.Baseline),
		Value:      t.Value,
		DisplayOps: serializeDisplayList(dl),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// MATERIAL_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("MATERIAL_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: MATERIAL_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: MATERIAL_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New("testing.UpdateFile", errors.KindIO, path, err)
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return errors.New("testing.UpdateFile", errors.KindParsing, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("testing.UpdateFile", errors.KindIO, path, err)
	}
	return nil
}

// Diff returns a line diff between this snapshot and other, or the empty
// string when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("testing.loadSnapshot", errors.KindIO, path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.New("testing.loadSnapshot", errors.KindParsing, path, fmt.Errorf("invalid snapshot JSON: %w", err))
	}
	return &snap, nil
}

// marshalSnapshot round-trips through JSON first so a fresh capture and a
// loaded golden file encode numbers and slices identically.
func marshalSnapshot(s *Snapshot) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
