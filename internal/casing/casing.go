// Package casing implements the persistent dictation transforms: the case
// modes (snake, camel, pascal, …) and the math-mode grammar that rewrites
// spoken arithmetic into symbols.
package casing

import "strings"

// Mode is a dictation case mode. It persists until explicitly changed.
type Mode string

const (
	ModeOff       Mode = "off"
	ModeSnake     Mode = "snake"
	ModeCamel     Mode = "camel"
	ModePascal    Mode = "pascal"
	ModeKebab     Mode = "kebab"
	ModeScreaming Mode = "screaming"
	ModeCaps      Mode = "caps"
	ModeLower     Mode = "lower"
	ModeMath      Mode = "math"
)

// modeNames maps spoken mode names, including colloquial variants, to modes.
var modeNames = map[string]Mode{
	"off": ModeOff, "normal": ModeOff, "default": ModeOff,
	"snake": ModeSnake, "snek": ModeSnake,
	"camel":  ModeCamel,
	"pascal": ModePascal,
	"kebab":  ModeKebab, "kebob": ModeKebab,
	"screaming": ModeScreaming, "scream": ModeScreaming, "yelling": ModeScreaming, "yell": ModeScreaming,
	"caps": ModeCaps, "upper": ModeCaps, "uppercase": ModeCaps, "capital": ModeCaps, "capitals": ModeCaps,
	"lower": ModeLower, "lowercase": ModeLower,
	"math": ModeMath, "maths": ModeMath, "numeral": ModeMath, "numerals": ModeMath, "numbers": ModeMath,
}

// ParseMode resolves a spoken mode name. Unknown names return false.
func ParseMode(name string) (Mode, bool) {
	m, ok := modeNames[strings.ToLower(name)]
	return m, ok
}

// DisplayName renders the mode the way it is announced to the user.
func (m Mode) DisplayName() string {
	switch m {
	case ModeOff:
		return "off (normal)"
	case ModeSnake:
		return "snake_case"
	case ModeCamel:
		return "camelCase"
	case ModePascal:
		return "PascalCase"
	case ModeKebab:
		return "kebab-case"
	case ModeScreaming:
		return "SCREAMING_SNAKE_CASE"
	case ModeCaps:
		return "CAPS LOCK"
	case ModeLower:
		return "lowercase"
	case ModeMath:
		return "math (one plus one → 1 + 1)"
	}
	return string(m)
}

// Apply transforms dictated text according to the mode. ModeOff returns the
// text verbatim.
func Apply(m Mode, text string) string {
	if m == ModeOff {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	switch m {
	case ModeSnake:
		return joinLower(words, "_")
	case ModeCamel:
		var b strings.Builder
		b.WriteString(strings.ToLower(words[0]))
		for _, w := range words[1:] {
			b.WriteString(capitalize(strings.ToLower(w)))
		}
		return b.String()
	case ModePascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(strings.ToLower(w)))
		}
		return b.String()
	case ModeKebab:
		return joinLower(words, "-")
	case ModeScreaming:
		return joinUpper(words, "_")
	case ModeCaps:
		return joinUpper(words, " ")
	case ModeLower:
		return joinLower(words, " ")
	case ModeMath:
		return mathTransform(words)
	}
	return text
}

func joinLower(words []string, sep string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return strings.Join(out, sep)
}

func joinUpper(words []string, sep string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToUpper(w)
	}
	return strings.Join(out, sep)
}

// capitalize uppercases the first letter of a word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
