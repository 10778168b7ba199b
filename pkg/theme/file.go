package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/material/pkg/errors"
	"github.com/go-drift/material/pkg/graphics"
)

// SchemaVersion is the newest theme file schema this package understands.
// Files declaring any v1 schema are accepted.
const SchemaVersion = "v1.0.0"

// Format is a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported theme file extension %q", filepath.Ext(path))
	}
}

// File is the decoded form of a theme file:
//
//	schema: v1
//	colors:
//	  primary: "#1E88E5"
//	  border-light: slategray
//	sizes:
//	  basic-widget-height: 20
type File struct {
	Schema string             `yaml:"schema" toml:"schema"`
	Colors map[string]string  `yaml:"colors" toml:"colors"`
	Sizes  map[string]float64 `yaml:"sizes" toml:"sizes"`
}

// LoadFile reads and validates a theme file.
func LoadFile(path string) (*File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, errors.New("theme.LoadFile", errors.KindConfig, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("theme.LoadFile", errors.KindIO, path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		var me *errors.MaterialError
		if errors.As(err, &me) {
			me.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Parse decodes and validates theme file contents.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	var err error
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return nil, errors.New("theme.Parse", errors.KindParsing, "", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the schema version and every key and value without
// touching an env.
func (f *File) Validate() error {
	if err := checkSchema(f.Schema); err != nil {
		return errors.New("theme.Validate", errors.KindVersion, "", err)
	}
	return f.Apply(&Env{})
}

func checkSchema(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid schema version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("schema %s not supported, want %s.x", v, semver.Major(SchemaVersion))
	}
	return nil
}

// Apply overrides the env values named in the file. Names are the short
// key names returned by ColorKeys and SizeKeys. On error e is left
// unchanged.
func (f *File) Apply(e *Env) error {
	colors := make(map[Key[graphics.Color]]graphics.Color, len(f.Colors))
	for _, name := range sortedKeys(f.Colors) {
		k, ok := colorKeys[name]
		if !ok {
			return errors.New("theme.Apply", errors.KindConfig, "", fmt.Errorf("unknown color %q", name))
		}
		c, err := ParseColor(f.Colors[name])
		if err != nil {
			return errors.New("theme.Apply", errors.KindConfig, "", fmt.Errorf("color %s: %w", name, err))
		}
		colors[k] = c
	}
	sizes := make(map[Key[float64]]float64, len(f.Sizes))
	for _, name := range sortedKeys(f.Sizes) {
		k, ok := sizeKeys[name]
		if !ok {
			return errors.New("theme.Apply", errors.KindConfig, "", fmt.Errorf("unknown size %q", name))
		}
		v := f.Sizes[name]
		if v <= 0 {
			return errors.New("theme.Apply", errors.KindConfig, "", fmt.Errorf("size %s must be positive, got %v", name, v))
		}
		sizes[k] = v
	}
	for k, c := range colors {
		k.Set(e, c)
	}
	for k, v := range sizes {
		k.Set(e, v)
	}
	return nil
}

// LoadEnv builds a configured env and applies the theme file at path.
func LoadEnv(path string) (*Env, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	env := NewEnv()
	if err := f.Apply(env); err != nil {
		return nil, err
	}
	return env, nil
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or an SVG color name.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 6:
			hex += "ff"
		case 8:
		default:
			return 0, fmt.Errorf("bad hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad hex color %q", s)
		}
		return graphics.RGBA32(uint32(v)), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return graphics.FromStd(c), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FileFromEnv captures every known color and size in e, filling unset keys
// with their defaults.
func FileFromEnv(e *Env) *File {
	f := &File{
		Schema: SchemaVersion,
		Colors: make(map[string]string, len(colorKeys)),
		Sizes:  make(map[string]float64, len(sizeKeys)),
	}
	for name, k := range colorKeys {
		f.Colors[name] = k.Get(e).String()
	}
	for name, k := range sizeKeys {
		f.Sizes[name] = k.Get(e)
	}
	return f
}

// Encode writes f in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(f)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(f); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return errors.New("theme.Encode", errors.KindIO, "", err)
	}
	return nil
}
