// Package command resolves the token list of a command segment against the
// built-in grammars and user-configured custom commands, and compiles the
// result into primitive actions.
//
// Resolution follows a fixed priority order so precedence stays
// deterministic and testable:
//
//  1. Category keyword dispatch — the first token names a sub-grammar
//     ("punctuation", "spell", "shift", "hold", "release", "emoji",
//     "mode", "insert", "wrap", "repeat", "help", "config").
//  2. Flat built-in action names — "enter", "copy", "page up", "volume
//     down", and the rest of the navigation/editing/media vocabulary,
//     with an optional trailing quantifier.
//  3. Custom command fuzzy matching against the configured phrases.
//
// Built-ins always win over custom commands. A segment that resolves
// nowhere is reported back to the caller, which re-emits it as literal
// dictation — commands never silently vanish.
package command

// Category is the closed set of command families. Dispatch over Category
// is exhaustive; adding a family requires a change to this package.
type Category int

const (
	// CategoryBuiltin covers the flat navigation/editing/media table.
	CategoryBuiltin Category = iota
	CategoryPunctuation
	CategorySpell
	CategoryShift
	CategoryHold
	CategoryRelease
	CategoryReleaseAll
	CategoryEmoji
	CategoryMode
	CategoryInsert
	CategoryWrap
	CategoryRepeat
	CategoryScratch
	CategoryHelp
	CategoryConfig
	CategoryCustom
)

// String names the category for logs and metrics.
func (c Category) String() string {
	switch c {
	case CategoryBuiltin:
		return "builtin"
	case CategoryPunctuation:
		return "punctuation"
	case CategorySpell:
		return "spell"
	case CategoryShift:
		return "shift"
	case CategoryHold:
		return "hold"
	case CategoryRelease:
		return "release"
	case CategoryReleaseAll:
		return "release-all"
	case CategoryEmoji:
		return "emoji"
	case CategoryMode:
		return "mode"
	case CategoryInsert:
		return "insert"
	case CategoryWrap:
		return "wrap"
	case CategoryRepeat:
		return "repeat"
	case CategoryScratch:
		return "scratch"
	case CategoryHelp:
		return "help"
	case CategoryConfig:
		return "config"
	case CategoryCustom:
		return "custom"
	}
	return "unknown"
}

// Command is a resolved command segment ready for compilation.
type Command struct {
	// Category selects the compile rule.
	Category Category

	// Name is the canonical identifier within the category: the built-in
	// action name, the punctuation/emoji/mode/key/insert/wrapper name, or
	// the matched custom phrase.
	Name string

	// Args are the remaining argument tokens (spell letters, wrap text).
	Args []string

	// Count is the parsed quantifier, always at least 1.
	Count int

	// Clamped reports that the spoken quantifier was malformed or out of
	// range and Count was adjusted.
	Clamped bool

	// Shell is the command line for CategoryCustom.
	Shell string
}

// Repeatable reports whether the command may be stored as repeat history
// and re-run by "repeat". Mode switches, hold/release and template inserts
// are deliberately excluded: repeating them is either meaningless or
// surprising.
func (c Command) Repeatable() bool {
	switch c.Category {
	case CategoryBuiltin, CategoryPunctuation, CategoryEmoji, CategoryShift, CategorySpell:
		return true
	}
	return false
}
