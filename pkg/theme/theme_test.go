package theme

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/material/pkg/errors"
	"github.com/go-drift/material/pkg/graphics"
)

func TestKey_DefaultWhenUnset(t *testing.T) {
	var e Env
	assert.Equal(t, graphics.RGBA32(0x6200EEFF), Primary.Get(&e))
	assert.Equal(t, 18.0, BasicWidgetHeight.Get(nil))

	_, ok := Primary.Lookup(&e)
	assert.False(t, ok)
}

func TestConfigure_InstallsDefaultsOnce(t *testing.T) {
	var e Env
	Configure(&e)
	require.True(t, e.Configured())
	assert.Equal(t, len(ColorKeys())+len(SizeKeys()), e.Len())

	v, ok := BorderLight.Lookup(&e)
	require.True(t, ok)
	assert.Equal(t, graphics.RGBA32(0x444444FF), v)

	Primary.Set(&e, graphics.ColorBlack)
	Configure(&e)
	assert.Equal(t, graphics.ColorBlack, Primary.Get(&e), "second Configure must not reset overrides")
}

func TestClone_IsIndependent(t *testing.T) {
	a := NewEnv()
	b := a.Clone()
	TextSize.Set(b, 30)
	assert.Equal(t, 18.0, TextSize.Get(a))
	assert.Equal(t, 30.0, TextSize.Get(b))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    graphics.Color
		wantErr bool
	}{
		{"#1E88E5", graphics.RGBA32(0x1E88E5FF), false},
		{"#1e88e580", graphics.RGBA32(0x1E88E580), false},
		{"red", graphics.RGBA32(0xFF0000FF), false},
		{" SlateGray ", graphics.RGBA32(0x708090FF), false},
		{"#123", 0, true},
		{"#zzzzzz", 0, true},
		{"notacolor", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_YAMLAndTOML(t *testing.T) {
	yamlDoc := []byte("schema: v1.2.0\ncolors:\n  primary: \"#112233\"\nsizes:\n  text-size: 14\n")
	tomlDoc := []byte("schema = \"1.0.0\"\n[colors]\nprimary = \"#112233\"\n[sizes]\ntext-size = 14.0\n")

	for name, tc := range map[string]struct {
		data   []byte
		format Format
	}{
		"yaml": {yamlDoc, FormatYAML},
		"toml": {tomlDoc, FormatTOML},
	} {
		t.Run(name, func(t *testing.T) {
			f, err := Parse(tc.data, tc.format)
			require.NoError(t, err)
			env := NewEnv()
			require.NoError(t, f.Apply(env))
			assert.Equal(t, graphics.RGBA32(0x112233FF), Primary.Get(env))
			assert.Equal(t, 14.0, TextSize.Get(env))
			assert.Equal(t, graphics.RGBA32(0x03DAC6FF), Secondary.Get(env))
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	f, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, f.Colors)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind errors.ErrorKind
	}{
		{"bad yaml", "colors: [", errors.KindParsing},
		{"unknown field", "colours:\n  primary: red\n", errors.KindParsing},
		{"future major", "schema: v2.0.0\n", errors.KindVersion},
		{"garbage version", "schema: latest\n", errors.KindVersion},
		{"unknown color key", "colors:\n  tertiary: red\n", errors.KindConfig},
		{"bad color", "colors:\n  primary: \"#12\"\n", errors.KindConfig},
		{"unknown size", "sizes:\n  gutter: 3\n", errors.KindConfig},
		{"negative size", "sizes:\n  text-size: -1\n", errors.KindConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.KindOf(err))
		})
	}
}

func TestApply_LeavesEnvUntouchedOnError(t *testing.T) {
	env := NewEnv()
	f := &File{
		Colors: map[string]string{"primary": "#000000"},
		Sizes:  map[string]float64{"nope": 1},
	}
	require.Error(t, f.Apply(env))
	assert.Equal(t, Primary.Default, Primary.Get(env))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "theme.yml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  label-color: navy\n"), 0o644))
	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, graphics.RGBA32(0x000080FF), LabelColor.Get(env))

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Equal(t, errors.KindIO, errors.KindOf(err))

	_, err = LoadFile(filepath.Join(dir, "theme.json"))
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("schema = 3"), 0o644))
	_, err = LoadFile(bad)
	var me *errors.MaterialError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, bad, me.Path)
}

func TestComponentThemes(t *testing.T) {
	env := NewEnv()
	Primary.Set(env, graphics.ColorBlack)

	cb := CheckboxThemeOf(env)
	assert.Equal(t, graphics.ColorBlack, cb.ActiveColor)
	assert.Equal(t, 18.0, cb.Size)

	sw := SwitchThemeOf(env)
	assert.Equal(t, 24.0, sw.Height)
	assert.Equal(t, BorderDark.Default, sw.TrackBorder)

	btn := ButtonThemeOf(env)
	assert.Equal(t, graphics.ColorBlack, btn.BackgroundColor)
}

type recordingHandler struct {
	errs chan *errors.MaterialError
}

func (h *recordingHandler) HandleError(err *errors.MaterialError) { h.errs <- err }
func (h *recordingHandler) HandlePanic(*errors.PanicError)        {}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  primary: red\n"), 0o644))

	h := &recordingHandler{errs: make(chan *errors.MaterialError, 64)}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan *Env, 64)
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, func(e *Env) { changes <- e }) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("colors:\n  primary: bogus\n"), 0o644))
	select {
	case err := <-h.errs:
		assert.Equal(t, errors.KindConfig, err.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("bad reload was not reported")
	}

	require.NoError(t, os.WriteFile(path, []byte("colors:\n  primary: blue\n"), 0o644))
	deadline := time.After(5 * time.Second)
	for {
		select {
		case env := <-changes:
			if Primary.Get(env) != graphics.RGBA32(0x0000FFFF) {
				continue
			}
			cancel()
			require.NoError(t, <-done)
			return
		case <-deadline:
			t.Fatal("theme change was not delivered")
		}
	}
}

func TestFileFromEnv_EncodeRoundTrip(t *testing.T) {
	env := NewEnv()
	Primary.Set(env, graphics.RGB(0x12, 0x34, 0x56))
	TextSize.Set(env, 13)

	for _, format := range []Format{FormatYAML, FormatTOML} {
		var buf bytes.Buffer
		require.NoError(t, FileFromEnv(env).Encode(&buf, format))

		f, err := Parse(buf.Bytes(), format)
		require.NoError(t, err)
		loaded := NewEnv()
		require.NoError(t, f.Apply(loaded))
		assert.Equal(t, graphics.RGB(0x12, 0x34, 0x56), Primary.Get(loaded))
		assert.Equal(t, 13.0, TextSize.Get(loaded))
		assert.Equal(t, Secondary.Default, Secondary.Get(loaded))
	}
}
