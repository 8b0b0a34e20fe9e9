package validator

import (
	"context"

	"billbook/internal/domain"
)

// Registry holds rules keyed by rule key, run in registration order.
type Registry struct {
	rules map[string]Rule
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry returns a registry with every built-in document rule.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, v := range RequiredRules() {
		r.Register(v)
	}
	for _, v := range FormatRules() {
		r.Register(v)
	}
	return r
}

// Register adds a rule, replacing any rule with the same key.
func (r *Registry) Register(v Rule) {
	if _, ok := r.rules[v.RuleKey()]; !ok {
		r.order = append(r.order, v.RuleKey())
	}
	r.rules[v.RuleKey()] = v
}

// Get returns the rule for a given key, or nil if not found.
func (r *Registry) Get(key string) Rule {
	return r.rules[key]
}

// All returns all registered rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.rules[k])
	}
	return out
}

// Check runs every rule and returns a *domain.ValidationError listing all
// failures, or nil.
func (r *Registry) Check(ctx context.Context, d *Draft) error {
	verr := &domain.ValidationError{}
	for _, rule := range r.All() {
		verr.Fields = append(verr.Fields, rule.Validate(ctx, d)...)
	}
	return verr.OrNil()
}
