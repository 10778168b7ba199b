package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/material/pkg/theme"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureOutput(t *testing.T) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	prev := stdout
	stdout = buf
	t.Cleanup(func() { stdout = prev })
	return buf
}

func writeTheme(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecute_HelpAndVersion(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, Execute(nil))
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "theme")
	assert.Contains(t, out.String(), "demo")

	out = captureOutput(t)
	require.NoError(t, Execute([]string{"--version"}))
	assert.Contains(t, out.String(), Version)
}

func TestExecute_Errors(t *testing.T) {
	captureOutput(t)
	assert.Error(t, Execute([]string{"nope"}))
	assert.Error(t, Execute([]string{"--log-level"}))
	assert.Error(t, Execute([]string{"--log-level=loud", "theme"}))
	assert.Error(t, Execute([]string{"theme"}))
	assert.Error(t, Execute([]string{"theme", "frobnicate"}))
}

func TestExecute_SubcommandHelp(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, Execute([]string{"theme", "--help"}))
	assert.Contains(t, out.String(), "material theme <check|dump|watch>")
}

func TestThemeCheck(t *testing.T) {
	good := writeTheme(t, "good.yaml", "schema: v1\ncolors:\n  primary: \"#1E88E5\"\nsizes:\n  text-size: 14\n")
	out := captureOutput(t)
	require.NoError(t, Execute([]string{"theme", "check", good}))
	assert.Equal(t, fmt.Sprintf("%s: ok (v1, 1 colors, 1 sizes)\n", good), out.String())

	bad := writeTheme(t, "bad.toml", "schema = 'v1'\n[colors]\nnot-a-color = 'red'\n")
	assert.Error(t, Execute([]string{"theme", "check", bad}))
	assert.Error(t, Execute([]string{"theme", "check", good, bad}))
}

func TestThemeDump_RoundTrips(t *testing.T) {
	src := writeTheme(t, "src.yaml", "colors:\n  primary: \"#112233\"\n")
	for _, format := range []theme.Format{theme.FormatYAML, theme.FormatTOML} {
		name := map[theme.Format]string{theme.FormatYAML: "yaml", theme.FormatTOML: "toml"}[format]
		t.Run(name, func(t *testing.T) {
			out := captureOutput(t)
			require.NoError(t, Execute([]string{"theme", "dump", "--format", name, src}))

			f, err := theme.Parse([]byte(out.String()), format)
			require.NoError(t, err)
			assert.Equal(t, theme.SchemaVersion, f.Schema)
			assert.Equal(t, "#112233FF", f.Colors["primary"])
			assert.Equal(t, 18.0, f.Sizes["basic-widget-height"])
			assert.Len(t, f.Colors, len(theme.ColorKeys()))
		})
	}
}

func TestThemeDump_Defaults(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, Execute([]string{"theme", "dump"}))
	f, err := theme.Parse([]byte(out.String()), theme.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, theme.Primary.Default.String(), f.Colors["primary"])

	assert.Error(t, Execute([]string{"theme", "dump", "--format=json"}))
}

func TestWatchTheme_PrintsReloads(t *testing.T) {
	path := writeTheme(t, "live.yaml", "colors:\n  primary: \"#000000\"\n")
	out := captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchTheme(ctx, path) }()

	// Keep rewriting until the watcher, which starts asynchronously, sees one.
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "reloaded") && time.Now().Before(deadline) {
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  primary: \"#FF0000\"\n"), 0o644))
		time.Sleep(50 * time.Millisecond)
	}
	cancel()
	require.NoError(t, <-done)
	assert.Contains(t, out.String(), "reloaded (primary #FF0000FF, widget height 18)")
}

func TestDemo_ClicksEveryWidget(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, Execute([]string{"demo"}))

	for _, want := range []struct {
		name      string
		value     bool
		animating bool
	}{
		{"radio-true", true, false},
		{"radio-false", false, true},
		{"button", false, true},
		{"checkbox", true, true},
		{"switch", true, true},
	} {
		assert.Contains(t, out.String(), fmt.Sprintf("click %-12s value=%-5v animating=%v\n", want.name, want.value, want.animating))
	}
	assert.Contains(t, out.String(), "drawText")
}

func TestDemo_JSONAndTheme(t *testing.T) {
	path := writeTheme(t, "demo.toml", "[sizes]\nbasic-widget-height = 24.0\n")
	out := captureOutput(t)
	require.NoError(t, Execute([]string{"demo", "--json", "--theme", path}))
	assert.Contains(t, out.String(), `"checkbox"`)
	assert.Contains(t, out.String(), `"displayOps"`)

	assert.Error(t, Execute([]string{"demo", "--bogus"}))
	assert.Error(t, Execute([]string{"demo", "--theme", filepath.Join(t.TempDir(), "missing.yaml")}))
}
