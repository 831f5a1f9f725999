package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zrc/internal/actions"
	"zrc/internal/config"
	"zrc/internal/rcfile"
	"zrc/internal/render"
	"zrc/internal/scanner"
	"zrc/internal/stats"
	"zrc/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "zrc [file]",
	Short: "Browse your zsh configuration as structured sections",
	Long: `zrc scans a zsh configuration file, classifies every line (aliases,
exports, plugins, functions, ...) and groups them into the sections your
comment markers delimit.

Run without a subcommand to browse interactively: search entries, preview
sections, copy lines to the clipboard, or jump into your editor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

var entriesCmd = &cobra.Command{
	Use:   "entries [file]",
	Short: "Print the classified entry list",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEntries,
}

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "Print the logical section list with entry counts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSections,
}

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print aggregate statistics over entries and sections",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(statsCmd)

	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: text, yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringP("query", "q", "", "Initial search query")
	entriesCmd.Flags().StringP("kind", "k", "", "Only entries of this kind (alias, export, ...)")
	entriesCmd.Flags().StringP("query", "q", "", "Only entries containing this text")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// load resolves the target file and runs the scanner over it
func load(cmd *cobra.Command, args []string) (*rcfile.File, *scanner.Scanner, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	path := config.GetPath()
	if len(args) > 0 {
		path = args[0]
	}

	file, err := rcfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return file, scanner.New(config.ScannerOptions()), nil
}

func outputFormat() (render.Format, error) {
	return render.ParseFormat(config.GetFormat())
}

func runBrowse(cmd *cobra.Command, args []string) error {
	file, s, err := load(cmd, args)
	if err != nil {
		return err
	}

	entries, sections := s.Scan(file.Content)
	if len(entries) == 0 {
		return fmt.Errorf("nothing to browse in %s", file.Path)
	}

	query, _ := cmd.Flags().GetString("query")
	return ui.Run(file.Path, entries, sections, actions.New(), query)
}

func runEntries(cmd *cobra.Command, args []string) error {
	file, s, err := load(cmd, args)
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	entries := s.Entries(file.Content)

	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		entries = filterByKind(entries, scanner.EntryKind(kind))
	}
	if query, _ := cmd.Flags().GetString("query"); query != "" {
		entries = filterByQuery(entries, query)
	}

	return render.Entries(os.Stdout, entries, format)
}

func runSections(cmd *cobra.Command, args []string) error {
	file, s, err := load(cmd, args)
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	return render.Sections(os.Stdout, s.Sections(file.Content), format)
}

func runStats(cmd *cobra.Command, args []string) error {
	file, s, err := load(cmd, args)
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	entries, sections := s.Scan(file.Content)
	return render.Stats(os.Stdout, stats.Collect(entries, sections), format)
}

func filterByKind(entries []scanner.Entry, kind scanner.EntryKind) []scanner.Entry {
	var out []scanner.Entry
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func filterByQuery(entries []scanner.Entry, query string) []scanner.Entry {
	var out []scanner.Entry
	for _, e := range entries {
		if containsFold(e.Original, query) || containsFold(e.Section, query) || containsFold(e.Name, query) {
			out = append(out, e)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
