package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nfrframework/nfrassist/metamodel"
)

// MatchOptions tunes fuzzy matching. The zero value is not useful; start from
// DefaultMatchOptions.
type MatchOptions struct {
	// MinThreshold is the smallest edit distance always tolerated.
	MinThreshold int
	// LenFraction scales the tolerated distance with input length.
	LenFraction float64
	// MaxSuggestions caps the "Did you mean" list.
	MaxSuggestions int
}

// DefaultMatchOptions tolerates up to max(3, 0.4×len(input)) edits and
// suggests at most three alternatives.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{MinThreshold: 3, LenFraction: 0.4, MaxSuggestions: 3}
}

// FuzzyMatch resolves free text to a canonical entity name, tolerating typos.
// It returns the matched name and a user-facing message: a confirmation when
// the match was inexact, suggestions when only a distant match exists, or an
// explanatory message with an empty name when nothing is close enough. It
// never fails in any other way.
func (e *Engine) FuzzyMatch(input string) (string, string) {
	return e.FuzzyMatchWith(input, DefaultMatchOptions())
}

// FuzzyMatchWith is FuzzyMatch with explicit tuning.
func (e *Engine) FuzzyMatchWith(input string, opts MatchOptions) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "Please enter an entity name"
	}

	// Tier 1: the resolver already handles aliases, suffix variants and
	// prefixes. Confirm the match when the input differs from the bare name.
	if n, ok := e.ResolveName(input); ok {
		if !strings.EqualFold(input, SearchName(n.Name)) {
			return n.Name, fmt.Sprintf("Matched '%s' → %s\n\n", input, DisplayName(n.Name))
		}
		return n.Name, ""
	}

	// Tier 2: edit distance over every type and instance name, both the full
	// form and the suffix-stripped form.
	threshold := float64(opts.MinThreshold)
	if t := float64(len(input)) * opts.LenFraction; t > threshold {
		threshold = t
	}

	type candidate struct {
		name string
		dist int
	}
	lower := strings.ToLower(input)
	var matches []candidate
	for _, n := range e.reg.Nodes() {
		if n.Kind == metamodel.KindMetaType {
			continue
		}
		dist := Levenshtein(lower, strings.ToLower(n.Name))
		if d := Levenshtein(lower, strings.ToLower(SearchName(n.Name))); d < dist {
			dist = d
		}
		if float64(dist) <= threshold {
			matches = append(matches, candidate{n.Name, dist})
		}
	}

	if len(matches) == 0 {
		return "", fmt.Sprintf("Could not find entity: %s\n\nTry: Performance, Security, Usability, Indexing, Encryption, etc.", input)
	}

	// Type-suffixed names outrank Softgoal-suffixed names, which outrank the
	// rest; distance breaks ties within a class.
	class := func(name string) int {
		switch {
		case strings.HasSuffix(name, "Type"):
			return 0
		case strings.HasSuffix(name, "Softgoal"):
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ci, cj := class(matches[i].name), class(matches[j].name)
		if ci != cj {
			return ci < cj
		}
		return matches[i].dist < matches[j].dist
	})

	// Suggest only Type-suffixed names when any exist; role-class duplicates
	// add noise.
	suggestions := matches
	var typed []candidate
	for _, m := range matches {
		if strings.HasSuffix(m.name, "Type") {
			typed = append(typed, m)
		}
	}
	if len(typed) > 0 {
		suggestions = typed
	}
	if len(suggestions) > opts.MaxSuggestions {
		suggestions = suggestions[:opts.MaxSuggestions]
	}
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = DisplayName(s.name)
	}

	return matches[0].name, fmt.Sprintf("Did you mean: %s?\n\n", strings.Join(names, ", "))
}

// Levenshtein computes the edit distance between two strings using the
// two-row dynamic programming form.
func Levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 0; i < len(a); i++ {
		cur[0] = i + 1
		for j := 0; j < len(b); j++ {
			cost := 0
			if a[i] != b[j] {
				cost = 1
			}
			cur[j+1] = min3(prev[j+1]+1, cur[j]+1, prev[j]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
