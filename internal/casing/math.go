package casing

import (
	"strings"
	"unicode"
)

// Math mode rewrites spoken arithmetic into symbols: numbers zero through
// twenty, operators, comparisons, grouping, and the decimal point. Longest
// phrase wins ("greater than or equal to" before "greater than" before
// "greater"); anything unrecognized passes through verbatim so variable
// names survive.

// mathFive are five-word comparison phrases.
var mathFive = map[string]string{
	"greater than or equal to": ">=",
	"less than or equal to":    "<=",
}

// mathThree are three-word phrases.
var mathThree = map[string]string{
	"is equal to":   "=",
	"not equal to":  "!=",
	"not equals to": "!=",
	"to the power":  "^",
}

// mathTwo are two-word phrases.
var mathTwo = map[string]string{
	"divided by":    "/",
	"divided over":  "/",
	"multiplied by": "*",
	"greater than":  ">",
	"less than":     "<",
	"equal to":      "=",
	"equals to":     "=",
	"not equal":     "!=",
	"not equals":    "!=",
	"double equals": "==", "double equal": "==",
	"triple equals": "==", "strict equals": "==",
	"open paren": "(", "open parenthesis": "(", "left paren": "(", "left parenthesis": "(",
	"close paren": ")", "close parenthesis": ")", "right paren": ")", "right parenthesis": ")",
	"open bracket": "[", "left bracket": "[",
	"close bracket": "]", "right bracket": "]",
	"open brace": "{", "left brace": "{",
	"close brace": "}", "right brace": "}",
	"at least": ">=",
	"at most":  "<=",
}

// mathOne are single-word rewrites. Number homophones ("to", "for") are
// corrected here because inside math mode a number is the likeliest reading.
var mathOne = map[string]string{
	"zero": "0", "one": "1", "two": "2", "to": "2", "too": "2",
	"three": "3", "four": "4", "for": "4", "five": "5", "six": "6",
	"seven": "7", "eight": "8", "nine": "9", "ten": "10",
	"eleven": "11", "twelve": "12", "thirteen": "13", "fourteen": "14",
	"fifteen": "15", "sixteen": "16", "seventeen": "17", "eighteen": "18",
	"nineteen": "19", "twenty": "20",

	"plus": "+", "add": "+",
	"minus": "-", "subtract": "-",
	"times": "*", "multiplied": "*", "multiply": "*",
	"divided": "/", "divide": "/", "over": "/",
	"equals": "=", "equal": "=",
	"modulo": "%", "mod": "%",
	"caret": "^", "power": "^", "exponent": "^",

	"greater": ">",
	"less":    "<",

	"point": ".", "dot": ".", "decimal": ".",
	"comma":   ",",
	"percent": "%",
	"paren":   "(", "parenthesis": "(",
	"bracket": "[",
	"brace":   "{",

	"pi":       "π",
	"infinity": "∞",
}

// mathTransform rewrites the word sequence, preferring the longest matching
// phrase at each position.
func mathTransform(words []string) string {
	clean := make([]string, len(words))
	for i, w := range words {
		clean[i] = stripNonAlnum(w)
	}

	var out []string
	for i := 0; i < len(words); {
		if sym, n := matchPhrase(clean[i:]); n > 0 {
			out = append(out, sym)
			i += n
			continue
		}
		if sym, ok := mathOne[clean[i]]; ok {
			out = append(out, sym)
		} else {
			out = append(out, clean[i])
		}
		i++
	}
	return strings.Join(out, " ")
}

// matchPhrase tries the multi-word tables against the head of rest,
// longest first, and returns the symbol and consumed word count.
func matchPhrase(rest []string) (string, int) {
	if len(rest) >= 5 {
		if sym, ok := mathFive[strings.Join(rest[:5], " ")]; ok {
			return sym, 5
		}
	}
	if len(rest) >= 3 {
		if sym, ok := mathThree[strings.Join(rest[:3], " ")]; ok {
			return sym, 3
		}
	}
	if len(rest) >= 2 {
		if sym, ok := mathTwo[strings.Join(rest[:2], " ")]; ok {
			return sym, 2
		}
	}
	return "", 0
}

// stripNonAlnum removes everything but letters and digits and lowercases,
// so trailing transcript punctuation does not break phrase matching.
func stripNonAlnum(w string) string {
	var b strings.Builder
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
