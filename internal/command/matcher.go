package command

import (
	"strings"

	"github.com/sqrew/ss9k/internal/command/fuzzy"
	"github.com/sqrew/ss9k/internal/token"
)

// categoryKeywords are the sub-grammar leader tokens. A segment starting
// with one of these is always dispatched to that grammar, even when the
// remainder does not parse, so "spell" never falls through to a custom
// command by accident.
var categoryKeywords = map[string]Category{
	"punctuation": CategoryPunctuation,
	"spell":       CategorySpell,
	"shift":       CategoryShift,
	"hold":        CategoryHold,
	"release":     CategoryRelease,
	"emoji":       CategoryEmoji,
	"mode":        CategoryMode,
	"insert":      CategoryInsert,
	"wrap":        CategoryWrap,
	"repeat":      CategoryRepeat,
}

// Matcher resolves command segments. Built from one configuration
// snapshot; immutable once constructed.
type Matcher struct {
	custom *fuzzy.Matcher
}

// NewMatcher builds a Matcher over the configured custom commands.
func NewMatcher(customs []fuzzy.Command) *Matcher {
	return &Matcher{custom: fuzzy.New(customs)}
}

// Resolve maps a normalized command segment to a [Command]. The priority
// order is category keyword, then flat built-in, then custom command. The
// second return is false only when the segment matches nothing, in which
// case the caller falls back to emitting the words as dictation.
func (m *Matcher) Resolve(tokens []string) (Command, bool) {
	if len(tokens) == 0 {
		return Command{}, false
	}

	if cat, ok := categoryKeywords[tokens[0]]; ok {
		return resolveCategory(cat, tokens[1:]), true
	}

	base, q := ParseQuantifier(tokens)
	joined := strings.Join(base, " ")

	if cat, ok := specials[joined]; ok {
		return Command{Category: cat, Name: joined, Count: 1}, true
	}
	if entry, ok := builtins[joined]; ok {
		return Command{
			Category: CategoryBuiltin,
			Name:     entry.name,
			Count:    q.Count,
			Clamped:  q.Clamped,
		}, true
	}

	// Custom commands match on the full token list; quantifiers do not
	// apply to shell commands.
	if c, ok := m.custom.Match(tokens); ok {
		return Command{
			Category: CategoryCustom,
			Name:     c.Phrase,
			Shell:    c.Shell,
			Count:    1,
		}, true
	}

	return Command{}, false
}

// resolveCategory parses the argument tokens of a sub-grammar segment.
// Table lookups (punctuation glyphs, emoji, wrapper templates) happen at
// compile time; resolution only fixes the structure.
func resolveCategory(cat Category, rest []string) Command {
	switch cat {
	case CategorySpell:
		// Letters and one-shot capital markers stay as-is.
		return Command{Category: cat, Args: rest, Count: 1}

	case CategoryShift, CategoryEmoji, CategoryPunctuation:
		base, q := ParseQuantifier(rest)
		return Command{
			Category: cat,
			Name:     strings.Join(base, " "),
			Count:    q.Count,
			Clamped:  q.Clamped,
		}

	case CategoryHold, CategoryMode, CategoryInsert:
		// A spoken quantifier on these runs the command once with a
		// warning; repeating a mode switch or a held key is meaningless.
		base, q := ParseQuantifier(rest)
		return Command{
			Category: cat,
			Name:     strings.Join(base, " "),
			Args:     base,
			Count:    1,
			Clamped:  q.Clamped || q.Explicit,
		}

	case CategoryRelease:
		joined := strings.Join(rest, " ")
		if joined == "all" || joined == "everything" {
			return Command{Category: CategoryReleaseAll, Count: 1}
		}
		return Command{Category: cat, Name: joined, Count: 1}

	case CategoryRepeat:
		return resolveRepeat(rest)

	default:
		// Wrap: the remainder after the wrapper name is verbatim payload
		// text, so a trailing number belongs to the text and no quantifier
		// is parsed.
		return Command{Category: cat, Name: strings.Join(rest, " "), Args: rest, Count: 1}
	}
}

// resolveRepeat parses the repeat grammar: "repeat", "repeat three",
// "repeat times three". Anything else clamps to a single repetition.
func resolveRepeat(rest []string) Command {
	cmd := Command{Category: CategoryRepeat, Count: 1}
	switch {
	case len(rest) == 0:
	case len(rest) == 1:
		if v, ok := token.NumberLoose(rest[0]); ok {
			q := clamp(v)
			cmd.Count, cmd.Clamped = q.Count, q.Clamped
		} else {
			cmd.Clamped = true
		}
	case len(rest) == 2 && rest[0] == "times":
		if v, ok := token.NumberLoose(rest[1]); ok {
			q := clamp(v)
			cmd.Count, cmd.Clamped = q.Count, q.Clamped
		} else {
			cmd.Clamped = true
		}
	default:
		cmd.Clamped = true
	}
	return cmd
}
