package resolve

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BoosterRule appends vocabulary to a query when its keyword matches.
type BoosterRule struct {
	Match  string `yaml:"match" json:"match"`
	Append string `yaml:"append" json:"append"`
}

// Booster rewrites a raw query by appending mood/theme vocabulary. Rules fire
// in list order; every matching rule appends. Deterministic: the same input
// always yields the same boosted string and booster list.
type Booster struct {
	rules []BoosterRule
}

// defaultBoosterRules covers common mood/genre/season keywords when no rule
// file is configured.
var defaultBoosterRules = []BoosterRule{
	{Match: "christmas", Append: "holiday classics"},
	{Match: "halloween", Append: "spooky hits"},
	{Match: "workout", Append: "high energy"},
	{Match: "chill", Append: "lofi relaxing"},
	{Match: "party", Append: "dance hits"},
	{Match: "summer", Append: "summer hits"},
	{Match: "80s", Append: "80s hits"},
	{Match: "90s", Append: "90s hits"},
	{Match: "rock", Append: "classic rock"},
	{Match: "jazz", Append: "jazz standards"},
}

// NewBooster creates a booster with the given rules, or the compiled-in
// defaults when rules is empty.
func NewBooster(rules []BoosterRule) *Booster {
	if len(rules) == 0 {
		rules = defaultBoosterRules
	}
	return &Booster{rules: rules}
}

// LoadBoosterRules reads an ordered rule list from a YAML file. File order is
// application order.
func LoadBoosterRules(path string) ([]BoosterRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read booster rules: %w", err)
	}
	var rules []BoosterRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse booster rules: %w", err)
	}
	for i, rule := range rules {
		if strings.TrimSpace(rule.Match) == "" || strings.TrimSpace(rule.Append) == "" {
			return nil, fmt.Errorf("booster rule %d: match and append are required", i)
		}
	}
	return rules, nil
}

// Boost applies every matching rule to the query and returns the boosted
// query plus the list of applied rule keywords, in rule-list order.
func (b *Booster) Boost(query string) (string, []string) {
	lowered := strings.ToLower(query)
	boosted := query
	applied := []string{}
	for _, rule := range b.rules {
		if strings.Contains(lowered, strings.ToLower(rule.Match)) {
			boosted += " " + rule.Append
			applied = append(applied, rule.Match)
		}
	}
	return boosted, applied
}
