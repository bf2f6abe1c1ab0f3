// Package token turns a raw transcript string into the normalized token
// sequence the rest of the engine operates on.
//
// Normalization happens in a fixed order: the transcript is split on
// whitespace, each word has leading and trailing punctuation stripped and is
// lowercased, then the alias table rewrites exact multi-word phrases (for
// example "come and" → "command"), and finally the per-word
// mishearing-correction table rewrites single words ("carrot" → "caret").
// Aliases run before corrections so that a multi-word fix is not torn apart
// by a later single-word substitution.
//
// Normalization is a pure function: it has no side effects and never fails;
// unmapped words pass through unchanged.
package token

import (
	"sort"
	"strings"
	"unicode"
)

// Token is one normalized word of an utterance. Immutable once produced.
type Token struct {
	// Text is the normalized form used for all matching.
	Text string

	// Raw is the word as it appeared in the transcript.
	Raw string

	// Index is the token's position in the utterance after normalization.
	Index int
}

// aliasRule is one multi-word phrase substitution, pre-split into tokens.
type aliasRule struct {
	from []string
	to   []string
}

// Normalizer applies the alias and mishearing-correction tables. It is
// read-only after construction and safe for concurrent use; config reloads
// build a fresh Normalizer rather than mutating an existing one.
type Normalizer struct {
	aliases     []aliasRule
	corrections map[string]string
}

// defaultCorrections are single-word substitutions for transcription
// mistakes the recognizer makes systematically, applied on top of the
// user-configured table (user entries win on conflict).
var defaultCorrections = map[string]string{
	"carrot":  "caret",
	"karet":   "caret",
	"carret":  "caret",
	"colin":   "colon",
	"cologne": "colon",
	"coma":    "comma",
	"asterix": "asterisk",
	"astrix":  "asterisk",
	"tilda":   "tilde",
	"punk":    "punctuation",
}

// NewNormalizer builds a Normalizer from the configured alias and
// correction tables. Aliases are matched longest phrase first so that
// overlapping entries behave deterministically; equal-length phrases match
// in lexical order.
func NewNormalizer(aliases, corrections map[string]string) *Normalizer {
	rules := make([]aliasRule, 0, len(aliases))
	for from, to := range aliases {
		f := strings.Fields(strings.ToLower(from))
		if len(f) == 0 {
			continue
		}
		rules = append(rules, aliasRule{from: f, to: strings.Fields(strings.ToLower(to))})
	}
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].from) != len(rules[j].from) {
			return len(rules[i].from) > len(rules[j].from)
		}
		return strings.Join(rules[i].from, " ") < strings.Join(rules[j].from, " ")
	})

	corr := make(map[string]string, len(defaultCorrections)+len(corrections))
	for k, v := range defaultCorrections {
		corr[strings.ToLower(k)] = strings.ToLower(v)
	}
	for k, v := range corrections {
		corr[strings.ToLower(k)] = strings.ToLower(v)
	}

	return &Normalizer{aliases: rules, corrections: corr}
}

// word is an intermediate form between splitting and correction.
type word struct{ text, raw string }

// Normalize converts a raw transcript into its token sequence.
func (n *Normalizer) Normalize(transcript string) []Token {
	var words []word
	for _, raw := range strings.Fields(transcript) {
		text := strings.ToLower(strings.TrimFunc(raw, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		}))
		if text == "" {
			continue
		}
		words = append(words, word{text: text, raw: raw})
	}

	// Alias phrase substitution on the normalized word sequence.
	for i := 0; i < len(words); {
		rule := n.aliasAt(words, i)
		if rule == nil {
			i++
			continue
		}
		replaced := make([]word, 0, len(words)-len(rule.from)+len(rule.to))
		replaced = append(replaced, words[:i]...)
		for _, t := range rule.to {
			replaced = append(replaced, word{text: t, raw: t})
		}
		replaced = append(replaced, words[i+len(rule.from):]...)
		words = replaced
		i += len(rule.to)
	}

	tokens := make([]Token, 0, len(words))
	for i, w := range words {
		text := w.text
		if fixed, ok := n.corrections[text]; ok {
			text = fixed
		}
		tokens = append(tokens, Token{Text: text, Raw: w.raw, Index: i})
	}
	return tokens
}

// aliasAt returns the first alias rule whose phrase matches the words
// starting at position i, or nil.
func (n *Normalizer) aliasAt(words []word, i int) *aliasRule {
	for r := range n.aliases {
		rule := &n.aliases[r]
		if i+len(rule.from) > len(words) {
			continue
		}
		match := true
		for j, f := range rule.from {
			if words[i+j].text != f {
				match = false
				break
			}
		}
		if match {
			return rule
		}
	}
	return nil
}

// Texts returns the normalized text of each token, in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
