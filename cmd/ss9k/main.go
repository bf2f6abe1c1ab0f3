// Command ss9k is the SS9K voice command interpreter. It reads transcript
// lines from stdin, interprets each one, and renders the resulting action
// stream to stdout, one action per line.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sqrew/ss9k/internal/action"
	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/expand"
	"github.com/sqrew/ss9k/internal/health"
	"github.com/sqrew/ss9k/internal/interp"
	"github.com/sqrew/ss9k/internal/observe"
)

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	metricsAddr := flag.String("metrics-addr", "", "listen address for the Prometheus /metrics endpoint (empty disables)")
	dryRun := flag.Bool("dry-run", false, "render shell actions without executing them")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	// A missing config file is not an error: the engine runs on defaults and
	// the watcher is simply not started.
	var snap *config.Snapshot
	cfg, err := config.Load(*configPath)
	switch {
	case err == nil:
		snap = cfg.Snapshot(*configPath)
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(os.Stderr, "ss9k: config file %q not found, using defaults\n", *configPath)
		snap = config.Default().Snapshot("")
	default:
		fmt.Fprintf(os.Stderr, "ss9k: %v\n", err)
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	level := config.LogInfo
	if cfg != nil {
		level = cfg.LogLevel
	}
	slog.SetDefault(newLogger(level))

	slog.Info("ss9k starting",
		"config", *configPath,
		"leader", snap.Leader,
		"log_level", level,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()


	// ── Interpreter ───────────────────────────────────────────────────────────
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	sink := &textSink{w: out, dryRun: *dryRun}

	engine := interp.New(snap, interp.WithPresser(sink))
	sink.engine = engine
	defer engine.ReleaseAll()

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, engine, *configPath)
	}

	// ── Config hot reload ─────────────────────────────────────────────────────
	if snap.SourcePath != "" {
		watcher, err := config.NewWatcher(*configPath, func(old, new *config.Snapshot) {
			engine.SetSnapshot(new)
			observe.DefaultMetrics().ConfigReloads.Add(context.Background(), 1)
		})
		if err != nil {
			slog.Error("failed to start config watcher", "err", err)
			return 1
		}
		defer watcher.Stop()
	}

	// ── REPL ──────────────────────────────────────────────────────────────────
	slog.Info("reading transcripts from stdin, one utterance per line")

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
		if err := sc.Err(); err != nil {
			slog.Error("stdin read error", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("shutdown signal received, stopping")
			return 0
		case line, ok := <-lines:
			if !ok {
				return 0
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			for _, a := range engine.Interpret(ctx, line) {
				sink.Emit(ctx, a)
			}
			out.Flush()
		}
	}
}

// textSink renders actions as text lines and executes shell actions. It
// also serves as the hold backend, logging each repeated press.
type textSink struct {
	w      *bufio.Writer
	dryRun bool
	engine *interp.Interpreter
	runner expand.ExecRunner
}

// Emit renders one action. Shell actions are executed under the configured
// timeout unless dry-run is set; help prints the command reference.
func (s *textSink) Emit(ctx context.Context, a action.Action) {
	fmt.Fprintln(s.w, a.String())

	switch a.Kind {
	case action.KindShellExec:
		if s.dryRun {
			return
		}
		s.execShell(ctx, a.Text)
	case action.KindShowHelp:
		fmt.Fprintln(s.w, helpText)
	}
}

// Press implements [hold.Presser] for held-key repeats. Repeats go to the
// debug log rather than stdout so they cannot interleave with a render in
// progress.
func (s *textSink) Press(key action.Key) {
	slog.Debug("held key repeat", "key", key)
}

// execShell runs one shell command line, bounded by the snapshot's shell
// timeout. Failures warn; a voice command never takes the process down.
func (s *textSink) execShell(ctx context.Context, command string) {
	timeout := expand.DefaultShellTimeout
	if s.engine != nil {
		timeout = s.engine.Snapshot().ShellTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	output, err := s.runner.Run(runCtx, command)
	observe.DefaultMetrics().ShellExecDuration.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		slog.Warn("shell command failed", "command", command, "err", err)
		return
	}
	if output != "" {
		fmt.Fprintln(s.w, output)
	}
}

// serveMetrics exposes the Prometheus bridge and the health endpoints on
// addr.
func serveMetrics(addr string, engine *interp.Interpreter, configPath string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	checks := []health.Checker{
		{Name: "shell", Check: func(ctx context.Context) error {
			_, err := expand.ExecRunner{}.Run(ctx, "true")
			return err
		}},
	}
	if engine.ConfigPath() != "" {
		checks = append(checks, health.Checker{Name: "config", Check: func(ctx context.Context) error {
			_, err := config.Load(configPath)
			return err
		}})
	}
	health.New(engine, checks...).Register(mux)

	slog.Info("metrics endpoint listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics endpoint error", "err", err)
	}
}

// newLogger builds the default text logger at the configured level.
func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

const helpText = `ss9k command reference
  <words>                        type the words as dictation
  command punctuation <name>     type a punctuation symbol (period, comma, open paren, ...)
  command spell <letters>        type letters via NATO alphabet; "capital" uppercases the next one
  command shift <direction> [N]  extend the selection (left, right, word left, home, ...)
  command hold <key>             hold a key with auto-repeat
  command release <key|all>      release a held key, or all of them
  command emoji <name> [N]       type an emoji (shrug, thumbs up, fire, ...)
  command mode <name>            switch case mode (snake, camel, pascal, kebab, screaming, caps, lower, math, off)
  command insert <name>          type a configured snippet ({date}, {time}, {shell:...} expand)
  command wrap <name> <words>    wrap the words in a configured pair ("quotes", ...)
  command repeat [N]             repeat the last repeatable command
  command scratch that           delete the text typed by the previous utterance
  command <builtin> [times N]    enter, tab, backspace, copy, paste, select all, volume up, ...
  command help                   show this reference
  command config                 open the configuration file in $EDITOR`
