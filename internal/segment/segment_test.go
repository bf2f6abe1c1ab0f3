package segment

import (
	"reflect"
	"testing"

	"github.com/sqrew/ss9k/internal/token"
)

// toks builds a token slice from words, normalized text equal to the word.
func toks(words ...string) []token.Token {
	out := make([]token.Token, len(words))
	for i, w := range words {
		out[i] = token.Token{Text: w, Raw: w, Index: i}
	}
	return out
}

func texts(s Segment) []string {
	return token.Texts(s.Tokens)
}

func TestSplit_NoLeaderIsPureDictation(t *testing.T) {
	t.Parallel()
	segs := Split(toks("hello", "world"), "command")

	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Kind != Dictation {
		t.Errorf("kind = %v, want Dictation", segs[0].Kind)
	}
	if got, want := texts(segs[0]), []string{"hello", "world"}; !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestSplit_DictationThenCommand(t *testing.T) {
	t.Parallel()
	segs := Split(toks("hello", "command", "spell", "alpha"), "command")

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Kind != Dictation || segs[1].Kind != Command {
		t.Fatalf("kinds = %v,%v, want Dictation,Command", segs[0].Kind, segs[1].Kind)
	}
	if got, want := texts(segs[1]), []string{"spell", "alpha"}; !reflect.DeepEqual(got, want) {
		t.Errorf("command tokens = %v, want %v", got, want)
	}
}

func TestSplit_LeaderExcludedFromSegment(t *testing.T) {
	t.Parallel()
	segs := Split(toks("command", "enter"), "command")

	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	for _, tok := range segs[0].Tokens {
		if tok.Text == "command" {
			t.Error("leader word leaked into command segment")
		}
	}
}

func TestSplit_MultipleCommands(t *testing.T) {
	t.Parallel()
	segs := Split(toks("command", "enter", "command", "tab"), "command")

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if got := texts(segs[0]); !reflect.DeepEqual(got, []string{"enter"}) {
		t.Errorf("first command = %v, want [enter]", got)
	}
	if got := texts(segs[1]); !reflect.DeepEqual(got, []string{"tab"}) {
		t.Errorf("second command = %v, want [tab]", got)
	}
}

func TestSplit_AdjacentLeadersKeepEmptyCommand(t *testing.T) {
	t.Parallel()
	segs := Split(toks("command", "command", "enter"), "command")

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Kind != Command || len(segs[0].Tokens) != 0 {
		t.Errorf("first segment = %+v, want empty command", segs[0])
	}
	if got := texts(segs[1]); !reflect.DeepEqual(got, []string{"enter"}) {
		t.Errorf("second command = %v, want [enter]", got)
	}
}

func TestSplit_TrailingBareLeader(t *testing.T) {
	t.Parallel()
	segs := Split(toks("hello", "command"), "command")

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[1].Kind != Command || len(segs[1].Tokens) != 0 {
		t.Errorf("trailing segment = %+v, want empty command", segs[1])
	}
}

func TestSplit_CustomLeader(t *testing.T) {
	t.Parallel()
	segs := Split(toks("command", "jarvis", "enter"), "jarvis")

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	// "command" is ordinary dictation under a custom leader.
	if segs[0].Kind != Dictation {
		t.Errorf("first kind = %v, want Dictation", segs[0].Kind)
	}
	if got := texts(segs[1]); !reflect.DeepEqual(got, []string{"enter"}) {
		t.Errorf("command = %v, want [enter]", got)
	}
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()
	if segs := Split(nil, "command"); len(segs) != 0 {
		t.Errorf("Split(nil) = %v, want empty", segs)
	}
}
