package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mtesting "github.com/go-drift/material/pkg/testing"
	"github.com/go-drift/material/pkg/theme"
	"github.com/go-drift/material/pkg/widgets"
)

// settleTimeout bounds how long one click may animate in the demo.
const settleTimeout = 2 * time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Exercise every widget headlessly",
		Long: `Mount the demo column (two radios sharing one value, a button, a
checkbox and a switch) in an offscreen harness, click each widget in turn,
run its animation to completion and print what it painted.

Flags:
  --theme FILE   Theme file to paint with (default: material.yaml theme.file)
  --json         Print full paint snapshots as JSON`,
		Usage: "material demo [--theme FILE] [--json]",
		Run:   runDemo,
	})
}

// demoEntry is one row of the demo column. Rows sharing a group are bound
// to the same value.
type demoEntry struct {
	name   string
	group  string
	tester *mtesting.Tester
}

func demoColumn(env *theme.Env) []*demoEntry {
	mount := func(name, group string, w widgets.Widget, value bool) *demoEntry {
		t := mtesting.NewTester(w, value)
		t.SetEnv(env)
		return &demoEntry{name: name, group: group, tester: t}
	}
	return []*demoEntry{
		mount("radio-true", "choice", widgets.NewRadio("Some Checkbox", true), true),
		mount("radio-false", "choice", widgets.NewRadio("Some Radio", false), true),
		mount("button", "", widgets.NewButton("Btn"), false),
		mount("checkbox", "", widgets.NewCheckbox("Checkbox"), false),
		mount("switch", "", widgets.NewSwitch(), false),
	}
}

func runDemo(args []string) error {
	var themeFile string
	var asJSON bool
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--json":
			asJSON = true
		case arg == "--theme":
			if i+1 >= len(args) {
				return fmt.Errorf("--theme requires a file path")
			}
			themeFile = args[i+1]
			i++
		case strings.HasPrefix(arg, "--theme="):
			themeFile = strings.TrimPrefix(arg, "--theme=")
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}

	env := theme.NewEnv()
	if themeFile == "" {
		if cfg, ok := projectConfig(); ok {
			themeFile = cfg.ThemeFile
		}
	}
	if themeFile != "" {
		var err error
		if env, err = theme.LoadEnv(themeFile); err != nil {
			return err
		}
	}

	column := demoColumn(env)
	for _, e := range column {
		if err := clickEntry(column, e); err != nil {
			return err
		}
	}

	if asJSON {
		snaps := make(map[string]*mtesting.Snapshot, len(column))
		for _, e := range column {
			snaps[e.name] = e.tester.CaptureSnapshot()
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}

	fmt.Fprintln(stdout)
	for _, e := range column {
		snap := e.tester.CaptureSnapshot()
		ops := make([]string, len(snap.DisplayOps))
		for i, op := range snap.DisplayOps {
			ops[i] = op.Op
		}
		fmt.Fprintf(stdout, "%-12s %-5v %7.2fx%-7.2f %s\n", e.name, snap.Value, snap.Size[0], snap.Size[1], strings.Join(ops, ","))
	}
	return nil
}

// clickEntry clicks e, propagates the new value to its group and runs every
// animation the click started to completion.
func clickEntry(column []*demoEntry, e *demoEntry) error {
	e.tester.Click()
	e.tester.SetHot(false)
	frames := len(e.tester.PendingFrames())
	if e.group != "" {
		for _, other := range column {
			if other != e && other.group == e.group {
				other.tester.SetValue(e.tester.Value)
			}
		}
	}
	for _, other := range column {
		if err := other.tester.PumpAndSettle(settleTimeout); err != nil {
			return fmt.Errorf("%s did not settle: %w", other.name, err)
		}
	}
	fmt.Fprintf(stdout, "click %-12s value=%-5v animating=%v\n", e.name, e.tester.Value, frames > 0)
	return nil
}
