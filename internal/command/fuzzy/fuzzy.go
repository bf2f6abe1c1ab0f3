// Package fuzzy matches spoken command segments against user-configured
// custom command phrases using approximate token-set comparison.
//
// Matching is deterministic, table- and edit-distance-based — no
// probabilistic inference. A configured phrase matches a segment when:
//
//  1. Every configured token pairs with a distinct segment token that is
//     either within Levenshtein distance 1 of it or is
//     numeric-word-equivalent ("one" ≈ "1"), and the token-count
//     difference between the two sides is at most one, which tolerates a
//     single stray filler word; or
//  2. both sides reduce to the same string once word boundaries are
//     removed and number words are mapped to digits, which tolerates
//     recognizer word splits ("work space 1" ≈ "workspace one").
//
// Ties are broken by exact match first, then by the longest configured
// phrase, then by declaration order in the configuration.
package fuzzy

import (
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/sqrew/ss9k/internal/token"
)

// Command is one user-configured spoken phrase bound to a shell command.
type Command struct {
	// Phrase is the configured spoken phrase, as written in the config.
	Phrase string

	// Shell is the command line to execute when the phrase matches.
	Shell string
}

// entry is a Command with its normalized token list and declaration order.
type entry struct {
	Command
	tokens []string
	order  int
}

// Matcher resolves token sequences against the configured phrases. It is
// read-only after construction and safe for concurrent use.
type Matcher struct {
	entries []entry
}

// New builds a Matcher from commands in declaration order.
func New(commands []Command) *Matcher {
	entries := make([]entry, 0, len(commands))
	for i, c := range commands {
		toks := strings.Fields(strings.ToLower(c.Phrase))
		if len(toks) == 0 {
			continue
		}
		entries = append(entries, entry{Command: c, tokens: toks, order: i})
	}
	return &Matcher{entries: entries}
}

// Len reports the number of configured phrases.
func (m *Matcher) Len() int { return len(m.entries) }

// ranked is a matching entry with its tie-break attributes.
type ranked struct {
	e     *entry
	exact bool
}

// Match resolves the segment tokens against the configured phrases and
// returns the winning command. The second return value is false when no
// phrase matches.
func (m *Matcher) Match(tokens []string) (Command, bool) {
	var best *ranked

	for i := range m.entries {
		e := &m.entries[i]
		if !matches(e.tokens, tokens) {
			continue
		}
		cand := ranked{e: e, exact: exactMatch(e.tokens, tokens)}
		if best == nil || better(cand, *best) {
			best = &cand
		}
	}

	if best == nil {
		return Command{}, false
	}
	return best.e.Command, true
}

// better reports whether a outranks b: exact beats fuzzy, then longer
// phrase, then earlier declaration.
func better(a, b ranked) bool {
	if a.exact != b.exact {
		return a.exact
	}
	if len(a.e.tokens) != len(b.e.tokens) {
		return len(a.e.tokens) > len(b.e.tokens)
	}
	return a.e.order < b.e.order
}

// matches reports whether the segment is accepted for the phrase via
// either the per-token pairing rule or the concatenated-form rule.
func matches(phrase, segment []string) bool {
	if countDiff(len(phrase), len(segment)) <= 1 && tokensMatch(phrase, segment) {
		return true
	}
	return concatKey(phrase) == concatKey(segment)
}

// concatKey reduces a token list to its word-boundary-free form with
// number words mapped to digits, so "work space 1" and "workspace one"
// produce the same key.
func concatKey(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		if n, ok := token.Number(t); ok {
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteString(t)
	}
	return b.String()
}

func countDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// exactMatch reports whether both sides are the same token multiset.
func exactMatch(phrase, segment []string) bool {
	if len(phrase) != len(segment) {
		return false
	}
	used := make([]bool, len(segment))
	for _, p := range phrase {
		found := false
		for i, s := range segment {
			if !used[i] && p == s {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// tokensMatch pairs every phrase token with a distinct segment token.
// Exact pairings are claimed in a first pass so a fuzzy pairing cannot
// steal a token another phrase word needs verbatim.
func tokensMatch(phrase, segment []string) bool {
	used := make([]bool, len(segment))
	unmatched := make([]string, 0, len(phrase))

	for _, p := range phrase {
		found := false
		for i, s := range segment {
			if !used[i] && p == s {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, p)
		}
	}

	for _, p := range unmatched {
		found := false
		for i, s := range segment {
			if !used[i] && tokenEquivalent(p, s) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// tokenEquivalent reports whether two normalized tokens should be treated
// as the same word: within edit distance 1, or both parse to the same
// number ("one" ≈ "1").
func tokenEquivalent(a, b string) bool {
	if a == b {
		return true
	}
	if na, ok := token.NumberLoose(a); ok {
		if nb, ok := token.NumberLoose(b); ok && na == nb {
			return true
		}
	}
	return matchr.Levenshtein(a, b) <= 1
}
