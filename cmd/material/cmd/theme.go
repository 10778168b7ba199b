package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-drift/material/cmd/material/internal/config"
	"github.com/go-drift/material/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate, print or watch theme files",
		Long: `Work with theme files.

A theme file is YAML or TOML, chosen by extension, and overrides any of the
named colors and sizes:

  schema: v1
  colors:
    primary: "#1E88E5"
    border-light: slategray
  sizes:
    basic-widget-height: 20

When FILE is omitted the theme.file entry of material.yaml is used.

Usage:
  material theme check [FILE]                    Validate a theme file
  material theme dump [--format yaml|toml] [FILE] Print the effective theme
  material theme watch [FILE]                    Revalidate on every save`,
		Usage: "material theme <check|dump|watch> [flags] [FILE]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand is required (check, dump or watch)\n\nUsage: material theme <check|dump|watch> [FILE]")
	}

	switch sub := strings.ToLower(args[0]); sub {
	case "check":
		return runThemeCheck(args[1:])
	case "dump":
		return runThemeDump(args[1:])
	case "watch":
		return runThemeWatch(args[1:])
	default:
		return fmt.Errorf("unknown theme subcommand %q", sub)
	}
}

func runThemeCheck(args []string) error {
	path, err := themePath(args, true)
	if err != nil {
		return err
	}
	f, err := theme.LoadFile(path)
	if err != nil {
		return err
	}
	schema := f.Schema
	if schema == "" {
		schema = "unversioned"
	}
	fmt.Fprintf(stdout, "%s: ok (%s, %d colors, %d sizes)\n", path, schema, len(f.Colors), len(f.Sizes))
	return nil
}

func runThemeDump(args []string) error {
	var formatName string
	var rest []string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--format":
			if i+1 >= len(args) {
				return fmt.Errorf("--format requires yaml or toml")
			}
			formatName = args[i+1]
			i++
		case strings.HasPrefix(arg, "--format="):
			formatName = strings.TrimPrefix(arg, "--format=")
		default:
			rest = append(rest, arg)
		}
	}

	format := theme.FormatYAML
	if formatName == "" {
		if cfg, ok := projectConfig(); ok {
			format = cfg.DumpFormat
		}
	} else {
		f, err := config.ParseFormat(formatName)
		if err != nil {
			return err
		}
		format = f
	}

	path, err := themePath(rest, false)
	if err != nil {
		return err
	}
	env := theme.NewEnv()
	if path != "" {
		if env, err = theme.LoadEnv(path); err != nil {
			return err
		}
	}
	return theme.FileFromEnv(env).Encode(stdout, format)
}

func runThemeWatch(args []string) error {
	path, err := themePath(args, true)
	if err != nil {
		return err
	}
	if _, err := theme.LoadFile(path); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "Watching %s (Ctrl+C to stop)\n", path)
	return watchTheme(ctx, path)
}

func watchTheme(ctx context.Context, path string) error {
	return theme.Watch(ctx, path, func(env *theme.Env) {
		slog.Info("theme reloaded", "path", path, "values", env.Len())
		th := theme.CheckboxThemeOf(env)
		fmt.Fprintf(stdout, "%s: reloaded (primary %s, widget height %v)\n", path, th.ActiveColor, th.Size)
	})
}

// themePath returns the single positional argument, falling back to the
// project's configured theme file.
func themePath(args []string, required bool) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected a single theme file, got %d arguments", len(args))
	}
	if cfg, ok := projectConfig(); ok && cfg.ThemeFile != "" {
		return cfg.ThemeFile, nil
	}
	if required {
		return "", fmt.Errorf("theme file is required (pass FILE or set theme.file in %s)", config.FileName)
	}
	return "", nil
}
