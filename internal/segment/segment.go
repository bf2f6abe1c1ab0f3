// Package segment splits a normalized token sequence into alternating
// dictation and command segments around the configured leader word.
//
// Every occurrence of the leader word opens a command segment; the tokens
// accumulated since the previous boundary become a dictation segment. A
// command segment runs until the next leader-word token or the end of the
// utterance. An utterance with no leader word is a single dictation segment.
package segment

import "github.com/sqrew/ss9k/internal/token"

// Kind distinguishes dictation from command segments.
type Kind int

const (
	// Dictation tokens are typed as literal text after the case-mode
	// transform.
	Dictation Kind = iota

	// Command tokens are resolved against the command grammars.
	Command
)

// Segment is a contiguous token span of one kind. For Command segments the
// tokens exclude the leader word itself.
type Segment struct {
	Kind   Kind
	Tokens []token.Token
}

// Split scans tokens left to right and returns the segment sequence in
// utterance order. Empty spans (a leader word at the start of the
// utterance, or two adjacent leader words) produce no segment except that
// an empty command segment is kept so the caller can report it.
func Split(tokens []token.Token, leader string) []Segment {
	var segs []Segment
	start := 0
	inCommand := false

	flush := func(end int) {
		span := tokens[start:end]
		if inCommand {
			// Keep empty command segments: a bare leader word is a
			// recognizable user mistake worth a warning downstream.
			segs = append(segs, Segment{Kind: Command, Tokens: span})
		} else if len(span) > 0 {
			segs = append(segs, Segment{Kind: Dictation, Tokens: span})
		}
	}

	for i, t := range tokens {
		if t.Text == leader {
			flush(i)
			start = i + 1
			inCommand = true
		}
	}
	flush(len(tokens))

	return segs
}
