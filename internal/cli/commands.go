package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/xab-mack/solscan/internal/cache"
	"github.com/xab-mack/solscan/internal/config"
	"github.com/xab-mack/solscan/internal/engine"
	"github.com/xab-mack/solscan/internal/model"
	"github.com/xab-mack/solscan/internal/report"
	"github.com/xab-mack/solscan/internal/rules"
	"github.com/xab-mack/solscan/internal/solidity"
	"github.com/xab-mack/solscan/internal/tui"
	"github.com/xab-mack/solscan/internal/vcs"
)

// cacheVersion invalidates cached scan results when the rule set or the
// finding shape changes.
const cacheVersion = "scan-v1"

func AddCommands(root *cobra.Command) {
	root.AddCommand(newScanCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newInitCmd())
}

func newScanCmd() *cobra.Command {
	var (
		format        string
		outputFile    string
		minSeverity   string
		includeRules  []string
		excludeRules  []string
		failOn        string
		deltaOnly     bool
		useTUI        bool
		baselinePath  string
		writeBaseline string
		noCache       bool
		verbose       bool
	)
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Analyze Solidity sources for security, gas and style issues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "solscan",
				Level:  level,
				Output: cmd.ErrOrStderr(),
			})

			cfg, cfgPath, err := config.Load(path)
			if err != nil {
				return err
			}
			if cfgPath != "" {
				logger.Debug("using config", "path", cfgPath)
			}

			if minSeverity == "" {
				minSeverity = cfg.SeverityThreshold
			}
			if len(includeRules) == 0 {
				includeRules = cfg.IncludeRules
			}
			if len(excludeRules) == 0 {
				excludeRules = cfg.ExcludeRules
			}
			if failOn == "" {
				failOn = cfg.FailOn
			}
			opts := engine.Options{
				IncludeRules: includeRules,
				ExcludeRules: excludeRules,
				MinSeverity:  model.ParseSeverity(minSeverity),
				Verbose:      verbose,
			}

			files, err := targetFiles(path, deltaOnly)
			if err != nil {
				return err
			}

			reg := rules.NewRegistry()
			reg.RegisterBuiltin()
			eng := engine.New(reg, logger)

			sources := map[string]string{}
			var all []model.Finding
			for _, f := range files {
				data, err := os.ReadFile(f)
				if err != nil {
					logger.Warn("skipping unreadable file", "file", f, "error", err)
					continue
				}
				source := string(data)
				sources[f] = source

				key := cache.Key(cacheVersion, f, source,
					strings.Join(includeRules, ","), strings.Join(excludeRules, ","), minSeverity)
				if !noCache {
					if b, ok := cache.Load(key); ok {
						var cached []model.Finding
						if json.Unmarshal(b, &cached) == nil {
							all = append(all, cached...)
							continue
						}
					}
				}

				tree, perrs := solidity.Parse(source)
				if len(perrs) > 0 {
					for _, pe := range perrs {
						logger.Warn("parse error, file not analyzed", "file", f, "line", pe.Line, "column", pe.Column, "message", pe.Message)
					}
					continue
				}
				findings := eng.Analyze(tree, source, f, opts)
				if b, err := json.Marshal(findings); err == nil {
					_ = cache.Store(key, b)
				}
				all = append(all, findings...)
			}

			all = engine.ApplyIgnores(all, cfg, sources)
			if baselinePath != "" {
				baseline, err := engine.LoadBaseline(baselinePath)
				if err != nil {
					return err
				}
				all = engine.FilterByBaseline(all, baseline)
			}

			result := engine.Aggregate(engine.SplitByCategory(all))

			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, result.Issues); err != nil {
					return err
				}
			}
			if useTUI {
				return tui.Run(result.Issues)
			}
			if err := render(cmd, result, format, outputFile); err != nil {
				return err
			}

			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, f := range result.Issues {
					if model.SeverityGTE(f.Severity, threshold) {
						return fmt.Errorf("findings at or above %s severity", threshold)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "", "Drop findings below this severity (info|low|medium|high|critical)")
	cmd.Flags().StringSliceVar(&includeRules, "include-rules", nil, "Run only these rule ids")
	cmd.Flags().StringSliceVar(&excludeRules, "exclude-rules", nil, "Skip these rule ids")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Exit non-zero if a finding of this severity or higher exists")
	cmd.Flags().BoolVar(&deltaOnly, "delta", false, "Analyze only files changed in the enclosing git worktree")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Browse findings interactively")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Suppress findings listed in this baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write finding fingerprints to a baseline file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the per-file result cache")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}

func render(cmd *cobra.Command, result model.AnalysisResult, format, outputFile string) error {
	var data []byte
	switch format {
	case "json":
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		data = b
	case "sarif":
		b, err := report.ToSARIF(result)
		if err != nil {
			return err
		}
		data = b
	default:
		report.WriteTable(cmd.OutOrStdout(), result)
		return nil
	}
	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// targetFiles resolves the set of .sol files to analyze.
func targetFiles(root string, deltaOnly bool) ([]string, error) {
	if deltaOnly {
		changed, err := vcs.ChangedFiles(root)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, f := range changed {
			if strings.EqualFold(filepath.Ext(f), ".sol") {
				out = append(out, f)
			}
		}
		return out, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".sol") {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}
