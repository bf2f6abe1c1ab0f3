// Package interp is the interpretation engine: it drives one transcript
// through normalization, segmentation, command resolution and compilation,
// and owns the mutable session state (case mode, repeat history, typed
// length, held keys).
//
// Configuration is consumed as immutable snapshots. The table set derived
// from a snapshot is published through an atomic pointer and captured once
// at the start of each pass, so a concurrent reload never changes the
// rules mid-utterance. Session state survives reloads.
package interp

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/sqrew/ss9k/internal/action"
	"github.com/sqrew/ss9k/internal/casing"
	"github.com/sqrew/ss9k/internal/command"
	"github.com/sqrew/ss9k/internal/command/fuzzy"
	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/expand"
	"github.com/sqrew/ss9k/internal/hold"
	"github.com/sqrew/ss9k/internal/observe"
	"github.com/sqrew/ss9k/internal/segment"
	"github.com/sqrew/ss9k/internal/token"
)

// tables is the rule set derived from one configuration snapshot. Built
// once per snapshot, immutable afterwards, replaced atomically.
type tables struct {
	snap    *config.Snapshot
	norm    *token.Normalizer
	matcher *command.Matcher
	env     command.Env
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithPresser sets the backend receiving repeated presses of held keys.
func WithPresser(p hold.Presser) Option {
	return func(i *Interpreter) { i.presser = p }
}

// WithMetrics replaces the metrics instance. Tests pass one built on a
// private meter provider.
func WithMetrics(m *observe.Metrics) Option {
	return func(i *Interpreter) { i.metrics = m }
}

// WithShellRunner replaces the shell runner used for {shell:} placeholder
// expansion. Used in tests to avoid spawning processes.
func WithShellRunner(r expand.ShellRunner) Option {
	return func(i *Interpreter) { i.runner = r }
}

// WithClock replaces the wall-clock source for date placeholders.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) { i.now = now }
}

// Interpreter turns transcripts into ordered action lists. Interpret is
// serialized internally; SetSnapshot may be called concurrently from a
// config watcher callback.
type Interpreter struct {
	tables  atomic.Pointer[tables]
	holds   *hold.Manager
	metrics *observe.Metrics

	presser hold.Presser
	runner  expand.ShellRunner
	now     func() time.Time

	// Session state. Guarded by mu; one utterance is interpreted at a time.
	mu           sync.Mutex
	caseMode     casing.Mode
	lastCommand  *command.Command
	lastTypedLen int
}

// New creates an Interpreter for the given snapshot.
func New(snap *config.Snapshot, opts ...Option) *Interpreter {
	i := &Interpreter{
		metrics:  observe.DefaultMetrics(),
		now:      time.Now,
		caseMode: casing.ModeOff,
	}
	for _, o := range opts {
		o(i)
	}
	i.holds = hold.NewManager(snap.KeyRepeat, i.presser)
	i.SetSnapshot(snap)
	return i
}

// SetSnapshot derives a fresh table set from snap and publishes it. An
// interpretation pass already in flight keeps the tables it captured.
func (i *Interpreter) SetSnapshot(snap *config.Snapshot) {
	expandOpts := []expand.Option{
		expand.WithTimeout(snap.ShellTimeout),
		expand.WithClock(i.now),
		expand.WithShellErrorHook(func() {
			i.metrics.ShellErrors.Add(context.Background(), 1)
		}),
	}
	if i.runner != nil {
		expandOpts = append(expandOpts, expand.WithRunner(i.runner))
	}

	customs := make([]fuzzy.Command, 0, len(snap.Commands))
	for _, c := range snap.Commands {
		customs = append(customs, fuzzy.Command{Phrase: c.Phrase, Shell: c.Shell})
	}

	t := &tables{
		snap:    snap,
		norm:    token.NewNormalizer(snap.Aliases, snap.Corrections),
		matcher: command.NewMatcher(customs),
		env: command.Env{
			Inserts:    snap.Inserts,
			Wrappers:   snap.Wrappers,
			Expander:   expand.New(expandOpts...),
			ConfigPath: snap.SourcePath,
			Quiet:      snap.Quiet,
		},
	}
	i.tables.Store(t)
	i.holds.SetInterval(snap.KeyRepeat)
}

// Snapshot returns the configuration snapshot behind the current tables.
func (i *Interpreter) Snapshot() *config.Snapshot {
	return i.tables.Load().snap
}

// CaseMode returns the active dictation case mode.
func (i *Interpreter) CaseMode() casing.Mode {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.caseMode
}

// HeldKeys returns the keys currently held by repeat tasks.
func (i *Interpreter) HeldKeys() []action.Key {
	return i.holds.Held()
}

// CaseModeName reports the active case mode's display name. Part of the
// health status surface.
func (i *Interpreter) CaseModeName() string {
	return i.CaseMode().DisplayName()
}

// HeldKeyNames reports the held keys as strings. Part of the health status
// surface.
func (i *Interpreter) HeldKeyNames() []string {
	held := i.holds.Held()
	out := make([]string, len(held))
	for j, k := range held {
		out[j] = string(k)
	}
	return out
}

// ConfigPath reports the configuration file behind the current snapshot.
func (i *Interpreter) ConfigPath() string {
	return i.tables.Load().snap.SourcePath
}

// ReleaseAll releases every held key. Called on shutdown.
func (i *Interpreter) ReleaseAll() int {
	n := i.holds.ReleaseAll()
	if n > 0 {
		i.metrics.HeldKeys.Add(context.Background(), int64(-n))
	}
	return n
}

// Interpret runs one full interpretation pass and returns the ordered
// action list. Interpretation never fails: unknown commands warn and fall
// back to dictation, so the worst outcome of a bad utterance is literal
// text.
func (i *Interpreter) Interpret(ctx context.Context, transcript string) []action.Action {
	ctx, span := observe.StartSpan(ctx, "interp.Interpret")
	defer span.End()

	start := time.Now()
	t := i.tables.Load()

	i.mu.Lock()
	defer i.mu.Unlock()

	tokens := t.norm.Normalize(transcript)
	segs := segment.Split(tokens, t.snap.Leader)

	var out []action.Action
	typed := 0

	for _, seg := range segs {
		switch seg.Kind {
		case segment.Dictation:
			out = i.emitDictation(out, seg.Tokens, &typed)
		case segment.Command:
			out = i.interpretCommand(ctx, t, out, seg.Tokens, &typed)
		}
	}

	if typed > 0 {
		i.lastTypedLen = typed
	}

	i.metrics.Utterances.Add(ctx, 1)
	i.metrics.UtteranceDuration.Record(ctx, time.Since(start).Seconds())
	return out
}

// emitDictation appends the tokens as literal text after the case-mode
// transform and accounts the typed length.
func (i *Interpreter) emitDictation(out []action.Action, toks []token.Token, typed *int) []action.Action {
	text := i.renderDictation(toks)
	if text == "" {
		return out
	}
	*typed += utf8.RuneCountInString(text)
	return append(out, action.TypeText(text))
}

// renderDictation joins the tokens and applies the active case mode. Off
// mode preserves the transcript's own capitalization and punctuation; the
// transforming modes work on the normalized words.
func (i *Interpreter) renderDictation(toks []token.Token) string {
	if len(toks) == 0 {
		return ""
	}
	if i.caseMode == casing.ModeOff {
		raws := make([]string, len(toks))
		for j, t := range toks {
			raws[j] = t.Raw
		}
		return strings.Join(raws, " ")
	}
	return casing.Apply(i.caseMode, strings.Join(token.Texts(toks), " "))
}

// interpretCommand resolves one command segment, compiles it, applies its
// state effects, and appends the surviving actions.
func (i *Interpreter) interpretCommand(ctx context.Context, t *tables, out []action.Action, toks []token.Token, typed *int) []action.Action {
	if len(toks) == 0 {
		i.warn(t, "interp: leader word with no command")
		return out
	}
	texts := token.Texts(toks)

	cmd, ok := t.matcher.Resolve(texts)
	if !ok {
		// Fallback: the words were probably dictation that happened to
		// follow the leader.
		i.metrics.Fallbacks.Add(ctx, 1)
		i.warn(t, "interp: unknown command, emitting as dictation",
			"segment", strings.Join(texts, " "),
		)
		return i.emitDictation(out, toks, typed)
	}
	i.metrics.RecordCommand(ctx, cmd.Category.String())

	switch cmd.Category {
	case command.CategoryScratch:
		return i.emitScratch(t, out)
	case command.CategoryRepeat:
		return i.emitRepeat(ctx, t, out, cmd.Count, typed)
	}

	acts := command.Compile(ctx, cmd, t.env)
	if cmd.Repeatable() && len(acts) > 0 {
		last := cmd
		i.lastCommand = &last
	}
	return i.applyActions(ctx, t, out, acts, typed)
}

// emitScratch deletes the text typed by the previous utterance.
func (i *Interpreter) emitScratch(t *tables, out []action.Action) []action.Action {
	if i.lastTypedLen == 0 {
		i.warn(t, "interp: nothing to scratch")
		return out
	}
	for n := 0; n < i.lastTypedLen; n++ {
		out = append(out, action.KeyPress(action.KeyBackspace))
	}
	i.lastTypedLen = 0
	return out
}

// emitRepeat re-runs the last repeatable command count times. The compile
// step emits this as a RepeatLast action; the interpreter resolves it here
// against its own history so output adapters never see it.
func (i *Interpreter) emitRepeat(ctx context.Context, t *tables, out []action.Action, count int, typed *int) []action.Action {
	if i.lastCommand == nil {
		i.warn(t, "interp: nothing to repeat")
		return out
	}
	for n := 0; n < count; n++ {
		acts := command.Compile(ctx, *i.lastCommand, t.env)
		out = i.applyActions(ctx, t, out, acts, typed)
	}
	return out
}

// applyActions applies the state effects of compiled actions and appends
// the ones that survive. Mode changes update the case mode; hold and
// release actions drive the hold manager, and redundant ones (holding a
// held key, releasing an unheld one) are dropped with a warning.
func (i *Interpreter) applyActions(ctx context.Context, t *tables, out []action.Action, acts []action.Action, typed *int) []action.Action {
	for _, a := range acts {
		switch a.Kind {
		case action.KindModeChange:
			m, ok := casing.ParseMode(a.Mode)
			if !ok {
				m = casing.Mode(a.Mode)
			}
			i.caseMode = m
			slog.Info("interp: case mode changed", "mode", m.DisplayName())

		case action.KindHoldKey:
			if !i.holds.Hold(a.Key) {
				i.warn(t, "interp: key already held", "key", a.Key)
				continue
			}
			i.metrics.HeldKeys.Add(ctx, 1)

		case action.KindReleaseKey:
			if !i.holds.Release(a.Key) {
				i.warn(t, "interp: key not held", "key", a.Key)
				continue
			}
			i.metrics.HeldKeys.Add(ctx, -1)

		case action.KindReleaseAll:
			if n := i.holds.ReleaseAll(); n > 0 {
				i.metrics.HeldKeys.Add(ctx, int64(-n))
			}

		case action.KindTypeText:
			*typed += utf8.RuneCountInString(a.Text)
		}
		out = append(out, a)
	}
	return out
}

// warn logs unless the active snapshot sets quiet.
func (i *Interpreter) warn(t *tables, msg string, args ...any) {
	if t.snap.Quiet {
		return
	}
	slog.Warn(msg, args...)
}
