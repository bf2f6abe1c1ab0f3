// Package config provides the configuration schema, loader, and hot-reload
// watcher for the SS9K voice command engine.
//
// The engine itself never reads the config file: it consumes immutable
// [Snapshot] values published by the loader or the [Watcher]. A reload that
// fails to parse or validate keeps the previous snapshot in effect.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure, typically loaded from a YAML
// file using [Load] or [LoadFromReader].
type Config struct {
	// Leader is the spoken word that marks the following tokens as a
	// command rather than dictation. Default: "command".
	Leader string `yaml:"leader"`

	// KeyRepeatMS is the interval in milliseconds between repeated presses
	// of a held key. Default: 50.
	KeyRepeatMS int `yaml:"key_repeat_ms"`

	// ShellTimeoutSecs bounds each {shell:} placeholder and custom command
	// execution. Default: 5.
	ShellTimeoutSecs int `yaml:"shell_timeout_secs"`

	// Quiet suppresses informational warnings (unknown commands, clamped
	// quantifiers). Errors always log.
	Quiet bool `yaml:"quiet"`

	// LogLevel controls verbosity. Default: info.
	LogLevel LogLevel `yaml:"log_level"`

	// Commands maps spoken phrases to shell command lines. Declaration
	// order matters: it is the final tie-breaker for fuzzy matching.
	Commands CommandList `yaml:"commands"`

	// Aliases rewrites exact multi-word phrases before any other
	// correction, e.g. "come and" → "command".
	Aliases map[string]string `yaml:"aliases"`

	// Corrections rewrites single misheard words after alias substitution,
	// e.g. "carrot" → "caret". Merged over the built-in correction table.
	Corrections map[string]string `yaml:"corrections"`

	// Inserts maps names to text templates for "insert <name>". Templates
	// may contain {date}, {time}, {datetime}, {timestamp}, {iso} and
	// {shell:<command>} placeholders plus \n and \t escapes.
	Inserts map[string]string `yaml:"inserts"`

	// Wrappers maps names to wrapper strings for "wrap <name> <text>".
	// A value containing "|" splits into a left|right pair; otherwise the
	// same string is used on both sides.
	Wrappers map[string]string `yaml:"wrappers"`
}

// CustomCommand is one spoken phrase bound to a shell command line.
type CustomCommand struct {
	Phrase string
	Shell  string
}

// CommandList preserves the declaration order of the commands mapping,
// which a plain map would lose.
type CommandList []CustomCommand

// UnmarshalYAML decodes a YAML mapping node into the list, keeping the
// order in which keys appear in the file.
func (c *CommandList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("config: commands must be a mapping of phrase to shell command")
	}
	out := make(CommandList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var phrase, shell string
		if err := node.Content[i].Decode(&phrase); err != nil {
			return fmt.Errorf("config: commands key: %w", err)
		}
		if err := node.Content[i+1].Decode(&shell); err != nil {
			return fmt.Errorf("config: commands[%q]: %w", phrase, err)
		}
		out = append(out, CustomCommand{Phrase: phrase, Shell: shell})
	}
	*c = out
	return nil
}

// Default configuration values.
const (
	DefaultLeader           = "command"
	DefaultKeyRepeatMS      = 50
	DefaultShellTimeoutSecs = 5
)

// applyDefaults fills zero-valued fields with their defaults.
func (c *Config) applyDefaults() {
	if c.Leader == "" {
		c.Leader = DefaultLeader
	}
	if c.KeyRepeatMS == 0 {
		c.KeyRepeatMS = DefaultKeyRepeatMS
	}
	if c.ShellTimeoutSecs == 0 {
		c.ShellTimeoutSecs = DefaultShellTimeoutSecs
	}
	if c.LogLevel == "" {
		c.LogLevel = LogInfo
	}
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Snapshot is the immutable view of the configuration consumed by the
// interpretation engine. Snapshots are never mutated after creation; a
// reload publishes a fresh one.
type Snapshot struct {
	Leader       string
	KeyRepeat    time.Duration
	ShellTimeout time.Duration
	Quiet        bool

	Commands    []CustomCommand
	Aliases     map[string]string
	Corrections map[string]string
	Inserts     map[string]string
	Wrappers    map[string]string

	// SourcePath is the config file this snapshot came from, used by the
	// "config" voice command to open it for editing. Empty when the
	// snapshot was built from defaults.
	SourcePath string
}

// Snapshot builds an immutable snapshot of c. Maps are copied so later
// mutation of c cannot leak into a published snapshot.
func (c *Config) Snapshot(sourcePath string) *Snapshot {
	return &Snapshot{
		Leader:       c.Leader,
		KeyRepeat:    time.Duration(c.KeyRepeatMS) * time.Millisecond,
		ShellTimeout: time.Duration(c.ShellTimeoutSecs) * time.Second,
		Quiet:        c.Quiet,
		Commands:     append([]CustomCommand(nil), c.Commands...),
		Aliases:      copyMap(c.Aliases),
		Corrections:  copyMap(c.Corrections),
		Inserts:      copyMap(c.Inserts),
		Wrappers:     copyMap(c.Wrappers),
		SourcePath:   sourcePath,
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
