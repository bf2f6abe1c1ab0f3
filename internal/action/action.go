// Package action defines the primitive output vocabulary of the SS9K
// interpretation engine. An interpretation pass compiles each utterance into
// an ordered []Action; the output adapter consumes the list strictly in
// order and translates it into physical key events, text injection, and
// process spawning.
//
// The set of variants is closed: dispatch over a [Kind] is exhaustive and
// new variants require a change to this package. Actions are immutable
// values once produced.
package action

import (
	"fmt"
	"strings"
)

// Kind discriminates the Action variants.
type Kind int

const (
	// KindKeyPress taps a single key once.
	KindKeyPress Kind = iota

	// KindKeyChord presses all keys together (modifiers first) and
	// releases them in reverse order.
	KindKeyChord

	// KindTypeText injects literal text.
	KindTypeText

	// KindSelectExtend extends the current selection by moving the cursor
	// with shift held: Count steps in Direction.
	KindSelectExtend

	// KindHoldKey starts a repeating press of Key until released.
	KindHoldKey

	// KindReleaseKey stops the repeating press of Key.
	KindReleaseKey

	// KindReleaseAll stops every repeating press.
	KindReleaseAll

	// KindShellExec spawns a shell command.
	KindShellExec

	// KindModeChange switches the persistent dictation case mode.
	KindModeChange

	// KindRepeatLast re-runs the most recent repeatable command Count
	// times. The interpreter resolves this against its own history before
	// the list reaches the output adapter, so adapters normally never see
	// it; it is part of the vocabulary so the compile step stays a pure
	// function of its inputs.
	KindRepeatLast

	// KindShowHelp asks the host to surface the command reference.
	KindShowHelp
)

// Action is one primitive output operation. Only the fields relevant to
// Kind are populated; the rest stay zero.
type Action struct {
	Kind Kind

	// Key is the target for KeyPress, HoldKey and ReleaseKey.
	Key Key

	// Keys holds the chord members for KeyChord, modifiers first.
	Keys []Key

	// Text is the payload for TypeText and the command line for ShellExec.
	Text string

	// Direction is the cursor movement for SelectExtend.
	Direction Direction

	// Count is the step count for SelectExtend and RepeatLast.
	Count int

	// Mode is the case-mode name for ModeChange.
	Mode string
}

// KeyPress returns an Action that taps key once.
func KeyPress(key Key) Action { return Action{Kind: KindKeyPress, Key: key} }

// Chord returns an Action that presses keys together, modifiers first.
func Chord(keys ...Key) Action { return Action{Kind: KindKeyChord, Keys: keys} }

// TypeText returns an Action that injects text verbatim.
func TypeText(text string) Action { return Action{Kind: KindTypeText, Text: text} }

// SelectExtend returns an Action that extends the selection count steps in dir.
func SelectExtend(dir Direction, count int) Action {
	return Action{Kind: KindSelectExtend, Direction: dir, Count: count}
}

// HoldKey returns an Action that starts repeatedly pressing key.
func HoldKey(key Key) Action { return Action{Kind: KindHoldKey, Key: key} }

// ReleaseKey returns an Action that stops repeatedly pressing key.
func ReleaseKey(key Key) Action { return Action{Kind: KindReleaseKey, Key: key} }

// ReleaseAll returns an Action that stops every held key.
func ReleaseAll() Action { return Action{Kind: KindReleaseAll} }

// ShellExec returns an Action that runs command in a shell.
func ShellExec(command string) Action { return Action{Kind: KindShellExec, Text: command} }

// ModeChange returns an Action that switches the dictation case mode.
func ModeChange(mode string) Action { return Action{Kind: KindModeChange, Mode: mode} }

// RepeatLast returns an Action that re-runs the last repeatable command
// count times.
func RepeatLast(count int) Action { return Action{Kind: KindRepeatLast, Count: count} }

// ShowHelp returns an Action that surfaces the command reference.
func ShowHelp() Action { return Action{Kind: KindShowHelp} }

// String renders the action for logs and the text sink.
func (a Action) String() string {
	switch a.Kind {
	case KindKeyPress:
		return fmt.Sprintf("press(%s)", a.Key)
	case KindKeyChord:
		parts := make([]string, len(a.Keys))
		for i, k := range a.Keys {
			parts[i] = string(k)
		}
		return fmt.Sprintf("chord(%s)", strings.Join(parts, "+"))
	case KindTypeText:
		return fmt.Sprintf("type(%q)", a.Text)
	case KindSelectExtend:
		return fmt.Sprintf("select(%s x%d)", a.Direction, a.Count)
	case KindHoldKey:
		return fmt.Sprintf("hold(%s)", a.Key)
	case KindReleaseKey:
		return fmt.Sprintf("release(%s)", a.Key)
	case KindReleaseAll:
		return "release-all"
	case KindShellExec:
		return fmt.Sprintf("shell(%s)", a.Text)
	case KindModeChange:
		return fmt.Sprintf("mode(%s)", a.Mode)
	case KindRepeatLast:
		return fmt.Sprintf("repeat-last(x%d)", a.Count)
	case KindShowHelp:
		return "show-help"
	}
	return "unknown"
}

// Direction is a cursor movement used by SelectExtend.
type Direction string

const (
	DirLeft      Direction = "left"
	DirRight     Direction = "right"
	DirUp        Direction = "up"
	DirDown      Direction = "down"
	DirWordLeft  Direction = "word-left"
	DirWordRight Direction = "word-right"
	DirHome      Direction = "home"
	DirEnd       Direction = "end"
	DirPageUp    Direction = "page-up"
	DirPageDown  Direction = "page-down"
	DirTab       Direction = "tab"
	DirEnter     Direction = "enter"
)
