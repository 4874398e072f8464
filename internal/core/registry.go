package core

import (
	"fmt"
	"sort"
)

// RuleFactory constructs a Strategy. Rules that depend on neighbour state read
// it through cells; rules that do not may ignore it.
type RuleFactory func(cells StateReader) Strategy

type ruleEntry struct {
	factory       RuleFactory
	neighbourhood string
}

var rules = map[string]ruleEntry{}

// RegisterRule adds a rule factory under the provided name.
func RegisterRule(name string, f RuleFactory) {
	RegisterRuleWithNeighbourhood(name, "", f)
}

// RegisterRuleWithNeighbourhood adds a rule that only gives meaningful results
// over the named neighbourhood, e.g. rules that read neighbours by index.
func RegisterRuleWithNeighbourhood(name, neighbourhood string, f RuleFactory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = ruleEntry{factory: f, neighbourhood: neighbourhood}
}

// Rules exposes a copy of the registry of available rule factories.
func Rules() map[string]RuleFactory {
	out := make(map[string]RuleFactory, len(rules))
	for name, e := range rules {
		out[name] = e.factory
	}
	return out
}

// RuleNeighbourhood returns the neighbourhood name required by a registered
// rule, or "" when the rule works with any neighbourhood or is unknown.
func RuleNeighbourhood(name string) string {
	return rules[name].neighbourhood
}

// RuleNames returns the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRule looks up name and builds the strategy.
func NewRule(name string, cells StateReader) (Strategy, error) {
	e, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownRule, name, RuleNames())
	}
	return e.factory(cells), nil
}
