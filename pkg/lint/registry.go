package lint

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds lint rules and the keys that select them. A rule is
// reachable by its ID, its name, or any alias registered for its ID.
type Registry struct {
	mu      sync.RWMutex
	rules   map[string]Rule   // ID -> rule
	keys    map[string]string // ID or name -> ID
	aliases map[string]string // alias -> ID
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:   make(map[string]Rule),
		keys:    make(map[string]string),
		aliases: make(map[string]string),
	}
}

// Register adds a rule, replacing any rule with the same ID.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.rules[rule.ID()]; ok {
		delete(r.keys, old.Name())
	}
	r.rules[rule.ID()] = rule
	r.keys[rule.ID()] = rule.ID()
	r.keys[rule.Name()] = rule.ID()
}

// RegisterAlias maps an alternative name to a rule ID. The target does not
// need to be registered yet.
func (r *Registry) RegisterAlias(alias, ruleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = ruleID
}

// Resolve returns the ID and rule selected by key, which may be an ID, a
// name or an alias.
func (r *Registry) Resolve(key string) (string, Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[key]
	if !ok {
		id, ok = r.aliases[key]
	}
	if !ok {
		return "", nil, false
	}
	rule, ok := r.rules[id]
	if !ok {
		return "", nil, false
	}
	return id, rule, true
}

// Get returns the rule selected by key.
func (r *Registry) Get(key string) (Rule, bool) {
	_, rule, ok := r.Resolve(key)
	return rule, ok
}

// Canonical returns the rule name for a rule ID, name or alias.
// Unknown keys are returned unchanged.
func (r *Registry) Canonical(key string) string {
	if _, rule, ok := r.Resolve(key); ok {
		return rule.Name()
	}
	return key
}

// Rules returns all registered rules ordered by ID.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return result
}

// Tagged returns the rules carrying tag, ordered by ID.
func (r *Registry) Tagged(tag string) []Rule {
	var result []Rule
	for _, rule := range r.Rules() {
		if slices.Contains(rule.Tags(), tag) {
			result = append(result, rule)
		}
	}
	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DefaultRegistry holds the built-in rules, which register themselves on import.
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
