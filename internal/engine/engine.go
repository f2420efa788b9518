package engine

import (
	"github.com/hashicorp/go-hclog"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
	"github.com/xab-mack/solscan/internal/rules"
)

// Options configures one Analyze call. It is a plain value threaded through
// the invocation, never global state. When both lists are set the include
// list applies first, then the exclude list; an id unknown to the registry
// simply matches nothing.
type Options struct {
	IncludeRules []string
	ExcludeRules []string
	// MinSeverity drops findings strictly below the threshold. Empty means
	// no filtering.
	MinSeverity model.Severity
	Verbose     bool
}

// Engine applies a rule registry to parsed trees. It holds no per-file
// state, so one engine may analyze many files and independent engines may
// run in parallel.
type Engine struct {
	registry *rules.Registry
	logger   hclog.Logger
}

func New(registry *rules.Registry, logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{registry: registry, logger: logger}
}

// Analyze walks the tree once and replays the visit order for every active
// rule, in registry order. Findings keep that order: rule by rule, and
// pre-order within a rule. A rule that panics on a node is logged and
// treated as having produced no finding for that node; the scan continues.
func (e *Engine) Analyze(root *ast.Node, source, file string, opts Options) []model.Finding {
	active := e.activeRules(opts)
	if len(active) == 0 {
		return nil
	}

	nodes := ast.Collect(root, ast.Any)
	var out []model.Finding
	for _, rule := range active {
		if opts.Verbose {
			e.logger.Debug("applying rule", "rule", rule.Meta().ID, "file", file)
		}
		for _, n := range nodes {
			out = append(out, e.detect(rule, n, source, file)...)
		}
	}

	if opts.MinSeverity != "" {
		out = filterBySeverity(out, opts.MinSeverity)
	}
	return out
}

// detect isolates one rule invocation; a panic inside Detect must not
// abort the rest of the scan.
func (e *Engine) detect(rule rules.Rule, n *ast.Node, source, file string) (fs []model.Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Warn("rule failed on node, skipping",
				"rule", rule.Meta().ID, "file", file, "node", n.Kind, "error", rec)
			fs = nil
		}
	}()
	return rule.Detect(n, source, file)
}

func (e *Engine) activeRules(opts Options) []rules.Rule {
	active := e.registry.Rules()
	if len(opts.IncludeRules) > 0 {
		keep := toSet(opts.IncludeRules)
		active = filterRules(active, func(r rules.Rule) bool {
			_, ok := keep[r.Meta().ID]
			return ok
		})
	}
	if len(opts.ExcludeRules) > 0 {
		drop := toSet(opts.ExcludeRules)
		active = filterRules(active, func(r rules.Rule) bool {
			_, ok := drop[r.Meta().ID]
			return !ok
		})
	}
	return active
}

func filterRules(rs []rules.Rule, keep func(rules.Rule) bool) []rules.Rule {
	var out []rules.Rule
	for _, r := range rs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterBySeverity(findings []model.Finding, threshold model.Severity) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if model.SeverityGTE(f.Severity, threshold) {
			out = append(out, f)
		}
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
