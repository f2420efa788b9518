package rules

import "github.com/xab-mack/solscan/internal/model"

// Registry is an ordered, append-only rule collection. It is a plain value
// handed to the engine at call time, not a process-wide singleton, so tests
// and parallel analyses can each build their own.
type Registry struct {
	rules []Rule
	ids   map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{ids: map[string]struct{}{}}
}

// Register appends rules, skipping any whose ID is already present.
func (r *Registry) Register(rs ...Rule) {
	for _, rule := range rs {
		id := rule.Meta().ID
		if _, dup := r.ids[id]; dup {
			continue
		}
		r.ids[id] = struct{}{}
		r.rules = append(r.rules, rule)
	}
}

// RegisterBuiltin adds the built-in rule set in its canonical order.
func (r *Registry) RegisterBuiltin() {
	r.Register(
		// security
		&reentrancyRule{},
		&txOriginRule{},
		&selfdestructRule{},
		&delegatecallRule{},
		&uncheckedCallRule{},
		&weakRandomnessRule{},
		// gas
		&unboundedLoopRule{},
		&storageLoopRule{},
		&nonImmutableAddressRule{},
		// style
		&floatingPragmaRule{},
		&implicitVisibilityRule{},
		&missingEventRule{},
		&funcNamingRule{},
	)
}

// Rules returns the rules in registration order.
func (r *Registry) Rules() []Rule { return r.rules }

func (r *Registry) ByCategory(c model.Category) []Rule {
	var out []Rule
	for _, rule := range r.rules {
		if rule.Meta().Category == c {
			out = append(out, rule)
		}
	}
	return out
}

func (r *Registry) Lookup(id string) (Rule, bool) {
	for _, rule := range r.rules {
		if rule.Meta().ID == id {
			return rule, true
		}
	}
	return nil, false
}
