package command

import "github.com/sqrew/ss9k/internal/token"

// MaxQuantifier caps repetition so a misheard number cannot generate an
// unbounded action list.
const MaxQuantifier = 1000

// Quantifier is a parsed repetition count.
type Quantifier struct {
	// Count is the effective repetition count, clamped to [1, MaxQuantifier].
	Count int

	// Explicit reports whether the utterance carried a quantifier at all.
	Explicit bool

	// Clamped reports that the spoken value was malformed or out of range
	// and Count was adjusted. Callers warn on this.
	Clamped bool
}

// ParseQuantifier strips a trailing repetition quantifier from tokens and
// returns the remaining base tokens. Recognized forms, checked against the
// tail of the token list:
//
//	<command> times five
//	<command> times 5
//	<command> five times
//	<command> 5
//
// Numbers go through the shared number-word table with homophone
// correction ("times to" reads as "times 2"). A missing quantifier yields
// Count 1. "times" followed by a non-number is malformed: the quantifier
// tokens are consumed and Count clamps to 1.
func ParseQuantifier(tokens []string) ([]string, Quantifier) {
	n := len(tokens)

	// "<command> times N"
	if n >= 3 && tokens[n-2] == "times" {
		if v, ok := token.NumberLoose(tokens[n-1]); ok {
			return tokens[:n-2], clamp(v)
		}
		return tokens[:n-2], Quantifier{Count: 1, Explicit: true, Clamped: true}
	}

	// "<command> N times"
	if n >= 3 && tokens[n-1] == "times" {
		if v, ok := token.NumberLoose(tokens[n-2]); ok {
			return tokens[:n-2], clamp(v)
		}
	}

	// Bare trailing number: "<command> N". Requires at least one base
	// token so a lone number is not consumed as a quantifier.
	if n >= 2 {
		if v, ok := token.NumberLoose(tokens[n-1]); ok {
			return tokens[:n-1], clamp(v)
		}
	}

	return tokens, Quantifier{Count: 1}
}

// clamp bounds a spoken count to [1, MaxQuantifier].
func clamp(v int) Quantifier {
	q := Quantifier{Count: v, Explicit: true}
	if v < 1 {
		q.Count = 1
		q.Clamped = true
	} else if v > MaxQuantifier {
		q.Count = MaxQuantifier
		q.Clamped = true
	}
	return q
}
