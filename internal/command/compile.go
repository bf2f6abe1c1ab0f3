package command

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sqrew/ss9k/internal/action"
	"github.com/sqrew/ss9k/internal/casing"
	"github.com/sqrew/ss9k/internal/expand"
	"github.com/sqrew/ss9k/internal/lookup"
)

// Env carries the configuration tables a compile pass needs. Built from
// one snapshot alongside the [Matcher]; immutable during a pass.
type Env struct {
	Inserts    map[string]string
	Wrappers   map[string]string
	Expander   *expand.Expander
	ConfigPath string

	// Quiet suppresses the per-utterance warning log lines.
	Quiet bool
}

// warn logs unless the quiet flag is set. Interpretation problems are
// never fatal; the worst outcome of a bad utterance is a warning.
func (e Env) warn(msg string, args ...any) {
	if e.Quiet {
		return
	}
	slog.Warn(msg, args...)
}

// Compile turns a resolved command into its ordered action list. It is a
// pure function of the command and the environment tables; interpreter
// state (case mode, repeat history, held keys) is applied by the caller.
// Unresolvable table lookups warn and compile to nothing.
func Compile(ctx context.Context, cmd Command, env Env) []action.Action {
	if cmd.Clamped {
		env.warn("command: quantifier ignored or clamped",
			"category", cmd.Category.String(),
			"count", cmd.Count,
		)
	}

	switch cmd.Category {
	case CategoryBuiltin:
		return compileBuiltin(cmd, env)
	case CategoryPunctuation:
		return compilePunctuation(cmd, env)
	case CategorySpell:
		return compileSpell(cmd, env)
	case CategoryShift:
		return compileShift(cmd, env)
	case CategoryHold:
		return compileHold(cmd, env)
	case CategoryRelease:
		return compileRelease(cmd, env)
	case CategoryReleaseAll:
		return []action.Action{action.ReleaseAll()}
	case CategoryEmoji:
		return compileEmoji(cmd, env)
	case CategoryMode:
		return compileMode(cmd, env)
	case CategoryInsert:
		return compileInsert(ctx, cmd, env)
	case CategoryWrap:
		return compileWrap(cmd, env)
	case CategoryRepeat:
		return []action.Action{action.RepeatLast(cmd.Count)}
	case CategoryScratch:
		// Needs the interpreter's typed-length history; handled there.
		return nil
	case CategoryHelp:
		return []action.Action{action.ShowHelp()}
	case CategoryConfig:
		return compileConfig(cmd, env)
	case CategoryCustom:
		return []action.Action{action.ShellExec(expand.Env(cmd.Shell))}
	}
	return nil
}

func compileBuiltin(cmd Command, env Env) []action.Action {
	entry, ok := builtins[cmd.Name]
	if !ok {
		env.warn("command: unknown builtin", "name", cmd.Name)
		return nil
	}
	out := make([]action.Action, 0, len(entry.actions)*cmd.Count)
	for i := 0; i < cmd.Count; i++ {
		out = append(out, entry.actions...)
	}
	return out
}

func compilePunctuation(cmd Command, env Env) []action.Action {
	if cmd.Name == "" {
		env.warn("command: punctuation needs a symbol name")
		return nil
	}
	glyph, ok := lookup.Punctuation(cmd.Name)
	if !ok {
		env.warn("command: unknown punctuation name", "name", cmd.Name)
		return nil
	}
	return []action.Action{action.TypeText(strings.Repeat(glyph, cmd.Count))}
}

// compileSpell types the spelled characters as one text injection. The
// words "capital", "cap", "upper" and "uppercase" uppercase the next
// character only. A multi-character word with no table entry is typed
// verbatim, so "spell alpha at bravo dot com" spells the "com" suffix
// instead of dropping it.
func compileSpell(cmd Command, env Env) []action.Action {
	var b strings.Builder
	nextUpper := false
	for _, word := range cmd.Args {
		switch word {
		case "capital", "cap", "upper", "uppercase":
			nextUpper = true
			continue
		}
		r, ok := lookup.SpellChar(word)
		if !ok {
			if utf8.RuneCountInString(word) > 1 {
				b.WriteString(upperFirst(word, nextUpper))
				nextUpper = false
				continue
			}
			env.warn("command: unknown spell word", "word", word)
			continue
		}
		if nextUpper {
			r = upperRune(r)
			nextUpper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		env.warn("command: spell produced no characters")
		return nil
	}
	return []action.Action{action.TypeText(b.String())}
}

func upperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// upperFirst uppercases the first rune of word when upper is set.
func upperFirst(word string, upper bool) string {
	if !upper || word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(upperRune(r)) + word[size:]
}

func compileShift(cmd Command, env Env) []action.Action {
	dir, ok := shiftDirections[cmd.Name]
	if !ok {
		env.warn("command: unknown shift direction", "direction", cmd.Name)
		return nil
	}
	return []action.Action{action.SelectExtend(dir, cmd.Count)}
}

func compileHold(cmd Command, env Env) []action.Action {
	key, ok := action.ParseKey(cmd.Name)
	if !ok {
		env.warn("command: unknown key to hold", "key", cmd.Name)
		return nil
	}
	return []action.Action{action.HoldKey(key)}
}

func compileRelease(cmd Command, env Env) []action.Action {
	key, ok := action.ParseKey(cmd.Name)
	if !ok {
		env.warn("command: unknown key to release", "key", cmd.Name)
		return nil
	}
	return []action.Action{action.ReleaseKey(key)}
}

func compileEmoji(cmd Command, env Env) []action.Action {
	if cmd.Name == "" {
		env.warn("command: emoji needs a name")
		return nil
	}
	glyph, ok := lookup.Emoji(cmd.Name)
	if !ok {
		env.warn("command: unknown emoji name", "name", cmd.Name)
		return nil
	}
	return []action.Action{action.TypeText(strings.Repeat(glyph, cmd.Count))}
}

func compileMode(cmd Command, env Env) []action.Action {
	name := cmd.Name
	// "mode snake case" and "snake mode" both resolve to snake.
	name = strings.TrimSuffix(name, " case")
	name = strings.TrimSuffix(name, " mode")
	m, ok := casing.ParseMode(name)
	if !ok {
		env.warn("command: unknown case mode", "mode", cmd.Name)
		return nil
	}
	return []action.Action{action.ModeChange(string(m))}
}

func compileInsert(ctx context.Context, cmd Command, env Env) []action.Action {
	template, ok := env.Inserts[cmd.Name]
	if !ok {
		env.warn("command: unknown insert", "name", cmd.Name)
		return nil
	}
	return []action.Action{action.TypeText(env.Expander.Expand(ctx, template))}
}

// compileWrap surrounds the trailing words with a configured wrapper.
// Wrapper names may be multi-word, so the longest name prefix wins:
// "wrap double quotes hello" prefers the "double quotes" wrapper over a
// "double" one.
func compileWrap(cmd Command, env Env) []action.Action {
	if len(cmd.Args) == 0 {
		env.warn("command: wrap needs a wrapper name")
		return nil
	}
	for n := len(cmd.Args); n >= 1; n-- {
		name := strings.Join(cmd.Args[:n], " ")
		template, ok := env.Wrappers[name]
		if !ok {
			continue
		}
		prefix, suffix, found := strings.Cut(template, "|")
		if !found {
			suffix = prefix
		}
		text := strings.Join(cmd.Args[n:], " ")
		return []action.Action{action.TypeText(prefix + text + suffix)}
	}
	env.warn("command: unknown wrapper", "name", strings.Join(cmd.Args, " "))
	return nil
}

// compileConfig opens the configuration file in the user's editor, falling
// back to xdg-open when EDITOR is unset.
func compileConfig(cmd Command, env Env) []action.Action {
	if env.ConfigPath == "" {
		env.warn("command: no configuration file to open")
		return nil
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "xdg-open"
	}
	return []action.Action{action.ShellExec(editor + " " + env.ConfigPath)}
}
