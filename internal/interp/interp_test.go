package interp

import (
	"context"
	"reflect"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/sqrew/ss9k/internal/action"
	"github.com/sqrew/ss9k/internal/casing"
	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/observe"
)

// newTestInterpreter builds an interpreter over cfg with metrics on a
// no-op provider so tests cannot pollute the global registry.
func newTestInterpreter(t *testing.T, cfg *config.Config) *Interpreter {
	t.Helper()
	met, err := observe.NewMetrics(noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	i := New(cfg.Snapshot(""), WithMetrics(met))
	t.Cleanup(func() { i.ReleaseAll() })
	return i
}

func interpret(t *testing.T, i *Interpreter, transcript string) []action.Action {
	t.Helper()
	return i.Interpret(context.Background(), transcript)
}

func TestInterpret_PureDictation(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	got := interpret(t, i, "Hello there world")
	want := []action.Action{action.TypeText("Hello there world")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_Empty(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	if got := interpret(t, i, ""); len(got) != 0 {
		t.Errorf("got %v, want no actions", got)
	}
}

func TestInterpret_Spell(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	got := interpret(t, i, "command spell alpha bravo charlie")
	want := []action.Action{action.TypeText("abc")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_SpellAddress(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	got := interpret(t, i, "command spell alpha at bravo dot com")
	want := []action.Action{action.TypeText("a@b.com")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_QuantifiedModeStillSwitches(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	// The count cannot apply to a mode switch; the switch still happens.
	interpret(t, i, "command mode snake times two")
	if got := i.CaseMode(); got != casing.ModeSnake {
		t.Errorf("CaseMode = %s, want snake", got)
	}
}

func TestInterpret_DictationCommandOrdering(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	got := interpret(t, i, "hello command enter world")
	want := []action.Action{
		action.TypeText("hello"),
		action.KeyPress(action.KeyEnter),
		action.TypeText("world"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_QuantifiedBuiltin(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	got := interpret(t, i, "command backspace times five")
	if len(got) != 5 {
		t.Fatalf("got %d actions, want 5", len(got))
	}
	for _, a := range got {
		if a.Kind != action.KindKeyPress || a.Key != action.KeyBackspace {
			t.Errorf("action = %v, want backspace press", a)
		}
	}
}

func TestInterpret_ModePersistsAcrossUtterances(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command mode snake")
	if got := i.CaseMode(); got != casing.ModeSnake {
		t.Fatalf("CaseMode = %s, want snake", got)
	}

	got := interpret(t, i, "hello big world")
	want := []action.Action{action.TypeText("hello_big_world")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Still snake on the next utterance.
	got = interpret(t, i, "second utterance")
	want = []action.Action{action.TypeText("second_utterance")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	interpret(t, i, "command mode off")
	got = interpret(t, i, "Back To Normal")
	want = []action.Action{action.TypeText("Back To Normal")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_MathMode(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command mode math")
	got := interpret(t, i, "one plus one")
	want := []action.Action{action.TypeText("1 + 1")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_ModeChangeInMixedUtterance(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	// Dictation before the mode switch is unaffected; dictation after a
	// later utterance uses the new mode.
	got := interpret(t, i, "plain text command mode caps")
	if got[0].Text != "plain text" {
		t.Errorf("pre-switch dictation = %q, want verbatim", got[0].Text)
	}
	got = interpret(t, i, "loud now")
	want := []action.Action{action.TypeText("LOUD NOW")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_HoldAndRelease(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command hold shift")
	if got := i.holds.HeldCount(); got != 1 {
		t.Fatalf("HeldCount = %d, want 1", got)
	}

	// Holding again is a no-op and the duplicate action is dropped.
	got := interpret(t, i, "command hold shift")
	if len(got) != 0 {
		t.Errorf("duplicate hold produced %v, want nothing", got)
	}
	if got := i.holds.HeldCount(); got != 1 {
		t.Errorf("HeldCount = %d, want still 1", got)
	}

	interpret(t, i, "command release shift")
	if got := i.holds.HeldCount(); got != 0 {
		t.Errorf("HeldCount = %d, want 0 after release", got)
	}

	// Releasing an unheld key is a no-op.
	if got := interpret(t, i, "command release shift"); len(got) != 0 {
		t.Errorf("release of unheld key produced %v, want nothing", got)
	}
}

func TestInterpret_ReleaseAll(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command hold shift")
	interpret(t, i, "command hold w")
	if got := i.holds.HeldCount(); got != 2 {
		t.Fatalf("HeldCount = %d, want 2", got)
	}

	interpret(t, i, "command release all")
	if got := i.holds.HeldCount(); got != 0 {
		t.Errorf("HeldCount = %d, want 0", got)
	}
}

func TestInterpret_ScratchThat(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "hello")
	got := interpret(t, i, "command scratch that")
	if len(got) != 5 {
		t.Fatalf("got %d actions, want 5 backspaces", len(got))
	}
	for _, a := range got {
		if a.Kind != action.KindKeyPress || a.Key != action.KeyBackspace {
			t.Errorf("action = %v, want backspace", a)
		}
	}

	// Scratch consumed the history; a second scratch does nothing.
	if got := interpret(t, i, "command scratch that"); len(got) != 0 {
		t.Errorf("second scratch produced %v, want nothing", got)
	}
}

func TestInterpret_ScratchCountsRunes(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command emoji shrug")
	got := interpret(t, i, "command scratch that")
	if len(got) != 1 {
		t.Errorf("got %d backspaces, want 1 (emoji is one rune)", len(got))
	}
}

func TestInterpret_RepeatLastCommand(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command tab")
	got := interpret(t, i, "command repeat times two")
	want := []action.Action{
		action.KeyPress(action.KeyTab),
		action.KeyPress(action.KeyTab),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_RepeatWithNoHistory(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	if got := interpret(t, i, "command repeat"); len(got) != 0 {
		t.Errorf("repeat with no history produced %v, want nothing", got)
	}
}

func TestInterpret_NonRepeatableCommandsSkipHistory(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command tab")
	interpret(t, i, "command mode snake")

	// Mode switch must not become the repeat target.
	got := interpret(t, i, "command repeat")
	want := []action.Action{action.KeyPress(action.KeyTab)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want the tab press repeated", got)
	}
}

func TestInterpret_UnknownCommandFallsBackToDictation(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	got := interpret(t, i, "command gibberish words")
	want := []action.Action{action.TypeText("gibberish words")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want dictation fallback %v", got, want)
	}
}

func TestInterpret_BareLeaderEmitsNothing(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	if got := interpret(t, i, "command"); len(got) != 0 {
		t.Errorf("bare leader produced %v, want nothing", got)
	}
}

func TestInterpret_CustomCommand(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Commands = config.CommandList{
		{Phrase: "workspace one", Shell: "wmctrl -s 0"},
	}
	i := newTestInterpreter(t, cfg)

	want := []action.Action{action.ShellExec("wmctrl -s 0")}
	for _, utterance := range []string{
		"command workspace one",
		"command work space 1",
		"command Workspace One",
	} {
		got := interpret(t, i, utterance)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("interpret(%q) = %v, want %v", utterance, got, want)
		}
	}
}

func TestInterpret_CustomLeaderFromConfig(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Leader = "jarvis"
	i := newTestInterpreter(t, cfg)

	got := interpret(t, i, "jarvis enter")
	want := []action.Action{action.KeyPress(action.KeyEnter)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// The default leader is plain dictation now.
	got = interpret(t, i, "command enter")
	want = []action.Action{action.TypeText("command enter")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_AliasesAndCorrectionsFromConfig(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Aliases = map[string]string{"come and": "command"}
	i := newTestInterpreter(t, cfg)

	got := interpret(t, i, "come and punctuation carrot")
	want := []action.Action{action.TypeText("^")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetSnapshot_SwapsRules(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	cfg := config.Default()
	cfg.Leader = "computer"
	i.SetSnapshot(cfg.Snapshot(""))

	got := interpret(t, i, "computer enter")
	want := []action.Action{action.KeyPress(action.KeyEnter)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetSnapshot_SessionStateSurvivesReload(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command mode snake")
	i.SetSnapshot(config.Default().Snapshot(""))

	got := interpret(t, i, "still snake")
	want := []action.Action{action.TypeText("still_snake")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpret_Deterministic(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	first := interpret(t, i, "command spell alpha bravo")
	second := interpret(t, i, "command spell alpha bravo")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input diverged: %v vs %v", first, second)
	}
}

func TestHealthSurface(t *testing.T) {
	t.Parallel()
	i := newTestInterpreter(t, config.Default())

	interpret(t, i, "command mode snake")
	if got := i.CaseModeName(); got != "snake_case" {
		t.Errorf("CaseModeName = %q, want snake_case", got)
	}

	interpret(t, i, "command hold shift")
	if got := i.HeldKeyNames(); len(got) != 1 || got[0] != "shift" {
		t.Errorf("HeldKeyNames = %v, want [shift]", got)
	}
	if got := i.ConfigPath(); got != "" {
		t.Errorf("ConfigPath = %q, want empty for default snapshot", got)
	}
}
