package state

import (
	"sort"
	"strings"
)

// Matcher resolves which state-config key governs a scene node, given the
// node's mesh name and material name. Implementations differ in how far they
// relax the comparison.
type Matcher interface {
	// Match picks the governing key for a node.
	//
	// Parameters:
	//   - meshName: the node's name
	//   - materialName: the node's material name, empty when it has none
	//   - keys: the candidate part keys of the state config
	//
	// Returns:
	//   - string: the matched key
	//   - bool: whether any key matched
	Match(meshName, materialName string, keys []string) (string, bool)
}

type exactMatcher struct{}

type fuzzyMatcher struct{}

var _ Matcher = exactMatcher{}
var _ Matcher = fuzzyMatcher{}

// NewExactMatcher returns a Matcher that only accepts exact key matches,
// material name first, then mesh name.
func NewExactMatcher() Matcher {
	return exactMatcher{}
}

// NewFuzzyMatcher returns a Matcher that falls back to case-insensitive
// bidirectional substring containment when no exact match exists. Precedence
// is exact material, exact mesh, fuzzy material, fuzzy mesh. Fuzzy candidates
// are scanned in sorted key order so results do not depend on map iteration.
func NewFuzzyMatcher() Matcher {
	return fuzzyMatcher{}
}

func (exactMatcher) Match(meshName, materialName string, keys []string) (string, bool) {
	for _, key := range keys {
		if materialName != "" && key == materialName {
			return key, true
		}
	}
	for _, key := range keys {
		if key == meshName {
			return key, true
		}
	}
	return "", false
}

func (m fuzzyMatcher) Match(meshName, materialName string, keys []string) (string, bool) {
	if key, ok := (exactMatcher{}).Match(meshName, materialName, keys); ok {
		return key, true
	}

	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	if materialName != "" {
		if key, ok := containsEither(materialName, sorted); ok {
			return key, true
		}
	}
	return containsEither(meshName, sorted)
}

// containsEither finds the first key that contains the name or is contained by
// it, ignoring case.
func containsEither(name string, keys []string) (string, bool) {
	if name == "" {
		return "", false
	}
	lower := strings.ToLower(name)
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if strings.Contains(lower, lowerKey) || strings.Contains(lowerKey, lower) {
			return key, true
		}
	}
	return "", false
}
