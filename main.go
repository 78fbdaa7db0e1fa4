package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"growify/pkg/engine/input"
	"growify/pkg/game/director"
	"growify/pkg/game/i18n"
	"growify/pkg/game/logging"
)

var (
	logFile  string
	logLevel string
	lang     string
	dumpPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "growify",
		Short: "Convert plopped buildings into growable zoned lots",
		Long: `growify hosts the Growify cheat against a city described in YAML.

Cheat syntax:
  Growify <zone type> <zone density> [make historical]

Zone types and densities are matched by their first letter, so
"Growify c h false" is the same as "Growify Commercial High false".
Agriculture has a single density and may be given alone: "Growify A".`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultFileName, `log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", i18n.DefaultLanguage, "message language")

	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(cheatCmd())
	rootCmd.AddCommand(mapCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console [scenario.yaml]",
		Short: "Load a city and type cheats at a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(args[0], os.Stdin, cmd.OutOrStdout())
		},
	}
}

func cheatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cheat [scenario.yaml] [cheat]...",
		Short: "Run cheats against a city and print the resulting zone map",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheats(args[0], args[1:], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&dumpPath, "dump", "", "also write a plain-text zone map dump to this file")
	return cmd
}

func mapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [scenario.yaml]",
		Short: "Print a city's zone map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(sessionConfigFromFlags(args[0], cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()
			s.Handle(input.Intent{Action: input.ActionMap})
			return s.Dump(dumpPath)
		},
	}
	cmd.Flags().StringVar(&dumpPath, "dump", "", "also write a plain-text zone map dump to this file")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), director.Header())
		},
	}
}

func sessionConfigFromFlags(scenario string, out io.Writer) sessionConfig {
	return sessionConfig{
		Scenario: scenario,
		LogFile:  logFile,
		LogLevel: logLevel,
		Lang:     lang,
		Out:      out,
	}
}

// runConsole reads console lines until quit or end of input
func runConsole(scenario string, in io.Reader, out io.Writer) error {
	s, err := newSession(sessionConfigFromFlags(scenario, out))
	if err != nil {
		return err
	}
	defer s.Close()

	r := input.NewLineReader(in, out, "> ")
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading console input: %w", err)
		}
		if !s.Handle(input.MapToIntent(line)) {
			return nil
		}
	}
}

// runCheats submits each cheat in order, then prints the map
func runCheats(scenario string, cheats []string, out io.Writer) error {
	s, err := newSession(sessionConfigFromFlags(scenario, out))
	if err != nil {
		return err
	}
	defer s.Close()

	for _, cheat := range cheats {
		s.Handle(input.Intent{Action: input.ActionCheat, Text: cheat})
	}
	s.Handle(input.Intent{Action: input.ActionMap})
	return s.Dump(dumpPath)
}
