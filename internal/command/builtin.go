package command

import "github.com/sqrew/ss9k/internal/action"

// builtinEntry is one flat built-in command: its canonical name and the
// action template for a single execution.
type builtinEntry struct {
	name    string
	actions []action.Action
}

// builtinDef declares a built-in with its spoken variants, mishearing
// variants included.
type builtinDef struct {
	name     string
	variants []string
	actions  []action.Action
}

// builtinDefs is the navigation/editing/media vocabulary. Multi-word
// variants are written space-joined; lookup happens on the space-joined
// quantifier-stripped segment.
var builtinDefs = []builtinDef{
	// Navigation.
	{name: "enter", variants: []string{"enter", "new line", "newline", "return"},
		actions: []action.Action{action.KeyPress(action.KeyEnter)}},
	{name: "tab", variants: []string{"tab"},
		actions: []action.Action{action.KeyPress(action.KeyTab)}},
	{name: "escape", variants: []string{"escape", "cancel"},
		actions: []action.Action{action.KeyPress(action.KeyEscape)}},
	{name: "backspace", variants: []string{"backspace", "delete", "delete that", "oops"},
		actions: []action.Action{action.KeyPress(action.KeyBackspace)}},
	{name: "space", variants: []string{"space"},
		actions: []action.Action{action.KeyPress(action.KeySpace)}},
	{name: "up", variants: []string{"up", "arrow up"},
		actions: []action.Action{action.KeyPress(action.KeyUp)}},
	{name: "down", variants: []string{"down", "arrow down"},
		actions: []action.Action{action.KeyPress(action.KeyDown)}},
	{name: "left", variants: []string{"left", "arrow left"},
		actions: []action.Action{action.KeyPress(action.KeyLeft)}},
	{name: "right", variants: []string{"right", "arrow right"},
		actions: []action.Action{action.KeyPress(action.KeyRight)}},
	{name: "home", variants: []string{"home"},
		actions: []action.Action{action.KeyPress(action.KeyHome)}},
	{name: "end", variants: []string{"end"},
		actions: []action.Action{action.KeyPress(action.KeyEnd)}},
	{name: "page up", variants: []string{"page up"},
		actions: []action.Action{action.KeyPress(action.KeyPageUp)}},
	{name: "page down", variants: []string{"page down"},
		actions: []action.Action{action.KeyPress(action.KeyPageDown)}},

	// Editing shortcuts.
	{name: "select all", variants: []string{"select all"},
		actions: []action.Action{action.Chord(action.KeyControl, "a")}},
	{name: "copy", variants: []string{"copy", "copy that"},
		actions: []action.Action{action.Chord(action.KeyControl, "c")}},
	{name: "paste", variants: []string{"paste"},
		actions: []action.Action{action.Chord(action.KeyControl, "v")}},
	{name: "cut", variants: []string{"cut"},
		actions: []action.Action{action.Chord(action.KeyControl, "x")}},
	{name: "redo", variants: []string{"redo"},
		actions: []action.Action{action.Chord(action.KeyControl, action.KeyShift, "z")}},
	{name: "save", variants: []string{"save"},
		actions: []action.Action{action.Chord(action.KeyControl, "s")}},
	{name: "find", variants: []string{"find"},
		actions: []action.Action{action.Chord(action.KeyControl, "f")}},
	{name: "close", variants: []string{"close", "close tab"},
		actions: []action.Action{action.Chord(action.KeyControl, "w")}},
	{name: "new tab", variants: []string{"new tab"},
		actions: []action.Action{action.Chord(action.KeyControl, "t")}},

	// Media controls.
	{name: "play pause", variants: []string{"play", "pause", "play pause", "playpause"},
		actions: []action.Action{action.KeyPress(action.KeyMediaPlayPause)}},
	{name: "next track", variants: []string{"next", "next track", "skip"},
		actions: []action.Action{action.KeyPress(action.KeyMediaNext)}},
	{name: "previous track", variants: []string{"previous", "previous track", "prev", "back"},
		actions: []action.Action{action.KeyPress(action.KeyMediaPrev)}},
	{name: "volume up", variants: []string{"volume up", "louder"},
		actions: []action.Action{action.KeyPress(action.KeyVolumeUp)}},
	{name: "volume down", variants: []string{"volume down", "quieter", "softer"},
		actions: []action.Action{action.KeyPress(action.KeyVolumeDown)}},
	{name: "mute", variants: []string{"mute", "unmute", "mute toggle"},
		actions: []action.Action{action.KeyPress(action.KeyVolumeMute)}},
}

// builtins maps every spoken variant to its entry. Built once at package
// init; read-only afterwards.
var builtins = func() map[string]*builtinEntry {
	m := make(map[string]*builtinEntry)
	for i := range builtinDefs {
		def := &builtinDefs[i]
		entry := &builtinEntry{name: def.name, actions: def.actions}
		for _, v := range def.variants {
			m[v] = entry
		}
	}
	return m
}()

// specials maps flat spoken phrases to categories that the flat table
// cannot express as an action template: scratch needs typing history,
// help and config are host side-effects. "undo" deliberately means
// scratch, not the editor shortcut, matching the spoken-command tradition
// of "undo what I just dictated".
var specials = map[string]Category{
	"scratch that": CategoryScratch,
	"scratch":      CategoryScratch,
	"undo":         CategoryScratch,
	"help":         CategoryHelp,
	"config":       CategoryConfig,
	"settings":     CategoryConfig,
	"edit config":  CategoryConfig,
}

// shiftDirections maps shift sub-grammar direction phrases to selection
// directions.
var shiftDirections = map[string]action.Direction{
	"left":       action.DirLeft,
	"right":      action.DirRight,
	"up":         action.DirUp,
	"down":       action.DirDown,
	"word left":  action.DirWordLeft,
	"word right": action.DirWordRight,
	"home":       action.DirHome,
	"end":        action.DirEnd,
	"page up":    action.DirPageUp,
	"page down":  action.DirPageDown,
	"tab":        action.DirTab,
	"enter":      action.DirEnter,
	"return":     action.DirEnter,
}
