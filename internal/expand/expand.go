// Package expand resolves template placeholders in insert snippets and
// custom command strings.
//
// Supported placeholders: {date}, {time}, {datetime}, {timestamp}, {iso},
// and {shell:<command>}, plus the literal escapes \n and \t. Date and time
// placeholders resolve from the wall clock at expansion time. Shell
// placeholders run under a bounded timeout; on failure or timeout the
// placeholder resolves to the empty string and a warning is logged.
// Expansion is not recursive: placeholder output is never re-scanned.
package expand

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultShellTimeout bounds a single {shell:} substitution when no other
// timeout is configured.
const DefaultShellTimeout = 5 * time.Second

// ShellRunner executes one shell command and returns its standard output.
// The context carries the deadline; implementations must honour it.
type ShellRunner interface {
	Run(ctx context.Context, command string) (string, error)
}

// ExecRunner runs commands through "sh -c". It is the production
// ShellRunner.
type ExecRunner struct{}

// Run executes command and returns its trimmed standard output.
func (ExecRunner) Run(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("expand: shell %q: %w", command, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Option configures an [Expander].
type Option func(*Expander)

// WithTimeout sets the per-command shell timeout. Default:
// [DefaultShellTimeout].
func WithTimeout(d time.Duration) Option {
	return func(e *Expander) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithRunner replaces the shell runner. Used in tests to avoid spawning
// processes.
func WithRunner(r ShellRunner) Option {
	return func(e *Expander) {
		e.runner = r
	}
}

// WithClock replaces the wall-clock source. Used in tests for
// deterministic date placeholders.
func WithClock(now func() time.Time) Option {
	return func(e *Expander) {
		e.now = now
	}
}

// Expander resolves template placeholders. Safe for concurrent use.
type Expander struct {
	timeout time.Duration
	runner  ShellRunner
	now     func() time.Time

	// onShellError is invoked once per failed shell substitution, after
	// the warning is logged. Nil means no extra reporting.
	onShellError func()
}

// New returns an Expander with the given options applied.
func New(opts ...Option) *Expander {
	e := &Expander{
		timeout: DefaultShellTimeout,
		runner:  ExecRunner{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// WithShellErrorHook sets a callback invoked once per failed shell
// substitution. Used to feed metrics without coupling this package to the
// metrics registry.
func WithShellErrorHook(fn func()) Option {
	return func(e *Expander) {
		e.onShellError = fn
	}
}

// Expand resolves all placeholders in template and returns the result.
// It never fails: broken placeholders expand to the empty string.
func (e *Expander) Expand(ctx context.Context, template string) string {
	now := e.now()
	result := template

	result = strings.ReplaceAll(result, "{date}", now.Format("2006-01-02"))
	result = strings.ReplaceAll(result, "{time}", now.Format("15:04"))
	result = strings.ReplaceAll(result, "{datetime}", now.Format("2006-01-02 15:04"))
	result = strings.ReplaceAll(result, "{iso}", now.Format(time.RFC3339))
	result = strings.ReplaceAll(result, "{timestamp}", fmt.Sprintf("%d", now.Unix()))

	result = e.expandShell(ctx, result)

	result = strings.ReplaceAll(result, `\n`, "\n")
	result = strings.ReplaceAll(result, `\t`, "\t")
	return result
}

// shellSpan is one {shell:<command>} occurrence within a template.
type shellSpan struct {
	start, end int // byte offsets including the braces
	command    string
	output     string
}

// expandShell resolves every {shell:} placeholder. Independent commands run
// concurrently; each is individually bounded by the configured timeout.
func (e *Expander) expandShell(ctx context.Context, template string) string {
	spans := findShellSpans(template)
	if len(spans) == 0 {
		return template
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range spans {
		span := &spans[i]
		g.Go(func() error {
			runCtx, cancel := context.WithTimeout(gctx, e.timeout)
			defer cancel()

			out, err := e.runner.Run(runCtx, span.command)
			if err != nil {
				slog.Warn("expand: shell placeholder failed",
					"command", span.command,
					"err", err,
				)
				if e.onShellError != nil {
					e.onShellError()
				}
				return nil // failure substitutes empty, never aborts
			}
			span.output = out
			return nil
		})
	}
	// Errors are swallowed per span, so Wait only synchronizes.
	_ = g.Wait()

	var b strings.Builder
	prev := 0
	for _, span := range spans {
		b.WriteString(template[prev:span.start])
		b.WriteString(span.output)
		prev = span.end
	}
	b.WriteString(template[prev:])
	return b.String()
}

// findShellSpans locates {shell:<command>} occurrences. A "{shell:" with no
// closing brace is left alone, matching the non-recursive contract.
func findShellSpans(template string) []shellSpan {
	const marker = "{shell:"
	var spans []shellSpan
	for i := 0; i < len(template); {
		start := strings.Index(template[i:], marker)
		if start < 0 {
			break
		}
		start += i
		closing := strings.IndexByte(template[start:], '}')
		if closing < 0 {
			break
		}
		end := start + closing + 1
		spans = append(spans, shellSpan{
			start:   start,
			end:     end,
			command: template[start+len(marker) : end-1],
		})
		i = end
	}
	return spans
}

// Env expands $VAR references using the process environment, as custom
// command strings from the configuration allow.
func Env(s string) string {
	return os.Expand(s, os.Getenv)
}
