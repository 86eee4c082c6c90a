package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shaderfmt/internal/config"
	"shaderfmt/internal/diagfmt"
	"shaderfmt/internal/driver"
	"shaderfmt/internal/engine"
	"shaderfmt/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format shader source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report findings without rewriting files")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("cache", false, "skip files with a cached clean outcome")
	fmtCmd.Flags().Int("jobs", 0, "number of files processed in parallel (0 = all CPUs)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("shaderfmt")
		if err != nil {
			return fmt.Errorf("fmt: failed to open cache: %w", err)
		}
	}

	fileSet, results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:          check,
		Stdout:         writeToStdout,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Resolver:       config.NewResolver(config.OSFS{}),
		Cache:          cache,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges, needsManualFix bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(cmd, fileSet, results, check, quiet, &hasErrors, &hasChanges, &needsManualFix)
	case "json":
		if err := renderFmtJSON(fileSet, results, &hasErrors, &hasChanges, &needsManualFix); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	switch {
	case hasErrors:
		return fmt.Errorf("fmt: failed to format some files")
	case needsManualFix:
		return fmt.Errorf("fmt: manual fixes required")
	case check && hasChanges:
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Output)
	}
}

func renderFmtText(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges, needsManualFix *bool) {
	pretty := diagfmt.PrettyOpts{
		Color:     colorEnabled(cmd),
		ShowNotes: true,
	}
	for _, res := range results {
		if res.Bag != nil && res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, pretty)
		}
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		switch res.Status {
		case engine.StatusManualFix:
			*needsManualFix = true
		case engine.StatusFormatted:
			*hasChanges = true
			if quiet {
				break
			}
			if check {
				fmt.Fprintln(os.Stdout, res.Path)
			} else {
				fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
			}
		}
	}
}

type fmtResultJSON struct {
	Path        string                    `json:"path"`
	Status      string                    `json:"status"`
	Changed     bool                      `json:"changed"`
	CacheHit    bool                      `json:"cache_hit,omitempty"`
	Error       string                    `json:"error,omitempty"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

func renderFmtJSON(fileSet *source.FileSet, results []driver.FormatResult, hasErrors, hasChanges, needsManualFix *bool) error {
	out := make([]fmtResultJSON, 0, len(results))
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
	}
	for _, res := range results {
		entry := fmtResultJSON{
			Path:     res.Path,
			Status:   res.Status.String(),
			Changed:  res.Changed,
			CacheHit: res.CacheHit,
		}
		if res.Err != nil {
			*hasErrors = true
			entry.Error = res.Err.Error()
		}
		if res.Bag != nil {
			entry.Diagnostics = diagfmt.BuildDiagnosticsOutput(res.Bag, fileSet, jsonOpts)
		}
		switch res.Status {
		case engine.StatusManualFix:
			*needsManualFix = true
		case engine.StatusFormatted:
			*hasChanges = true
		}
		out = append(out, entry)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
