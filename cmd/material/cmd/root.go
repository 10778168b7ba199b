// Package cmd implements the material CLI commands.
//
// A root command dispatches to subcommands (theme, demo) registered from
// init functions.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/material/cmd/material/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "material",
	Short: "Material - themeable toggle widgets for Drift",
	Long: `Material provides checkbox, switch, radio and button widgets with
ripple, hover and focus feedback driven by a themeable environment.

Use "material <command> --help" for more information about a command.`,
	Usage: "material <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --log-level
	var level string
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "Material CLI version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--log-level":
			if i+1 < len(args) {
				level = args[i+1]
				i++
			} else {
				return fmt.Errorf("--log-level requires a level (debug, info, warn, error)")
			}
		default:
			if v, ok := strings.CutPrefix(arg, "--log-level="); ok {
				level = v
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	if err := setupLogging(level); err != nil {
		return err
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// setupLogging installs a text slog handler on stderr. An explicit level
// wins over the one in material.yaml.
func setupLogging(level string) error {
	lvl := slog.LevelInfo
	if level == "" {
		if cfg, ok := projectConfig(); ok {
			lvl = cfg.LogLevel
		}
	} else if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// projectConfig resolves material.yaml for the enclosing module, if any.
// A broken config is logged and otherwise ignored.
func projectConfig() (*config.Resolved, bool) {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		return nil, false
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		slog.Warn("ignoring project config", "root", root, "err", err)
		return nil, false
	}
	return cfg, true
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --log-level LEVEL    Log level (default: material.yaml log.level, else info)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  material theme check theme.yaml    Validate a theme file")
	fmt.Fprintln(stdout, "  material theme dump --format toml  Print the default theme")
	fmt.Fprintln(stdout, "  material demo --theme theme.yaml   Exercise every widget headlessly")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
