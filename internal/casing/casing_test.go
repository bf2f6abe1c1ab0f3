package casing

import "testing"

func TestApply_Modes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		mode Mode
		in   string
		want string
	}{
		{ModeOff, "Hello World", "Hello World"},
		{ModeSnake, "hello world", "hello_world"},
		{ModeSnake, "HELLO World", "hello_world"},
		{ModeCamel, "hello big world", "helloBigWorld"},
		{ModePascal, "hello big world", "HelloBigWorld"},
		{ModeKebab, "hello world", "hello-world"},
		{ModeScreaming, "hello world", "HELLO_WORLD"},
		{ModeCaps, "hello world", "HELLO WORLD"},
		{ModeLower, "Hello WORLD", "hello world"},
	}
	for _, c := range cases {
		if got := Apply(c.mode, c.in); got != c.want {
			t.Errorf("Apply(%s, %q) = %q, want %q", c.mode, c.in, got, c.want)
		}
	}
}

func TestApply_EmptyText(t *testing.T) {
	t.Parallel()
	if got := Apply(ModeSnake, ""); got != "" {
		t.Errorf("Apply(snake, \"\") = %q, want empty", got)
	}
}

func TestParseMode_Synonyms(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want Mode
	}{
		{"snake", ModeSnake},
		{"snek", ModeSnake},
		{"kebob", ModeKebab},
		{"scream", ModeScreaming},
		{"yelling", ModeScreaming},
		{"upper", ModeCaps},
		{"lowercase", ModeLower},
		{"numbers", ModeMath},
		{"normal", ModeOff},
		{"OFF", ModeOff},
	}
	for _, c := range cases {
		got, ok := ParseMode(c.in)
		if !ok || got != c.want {
			t.Errorf("ParseMode(%q) = (%s, %v), want (%s, true)", c.in, got, ok, c.want)
		}
	}
	if _, ok := ParseMode("mumble"); ok {
		t.Error("ParseMode(mumble) = ok, want false")
	}
}

func TestApply_MathBasicArithmetic(t *testing.T) {
	t.Parallel()
	if got := Apply(ModeMath, "one plus one"); got != "1 + 1" {
		t.Errorf("got %q, want %q", got, "1 + 1")
	}
}

func TestApply_MathPhrases(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"x greater than or equal to five", "x >= 5"},
		{"a is equal to b", "a = b"},
		{"ten divided by two", "10 / 2"},
		{"x not equal to y", "x != y"},
		{"two to the power three", "2 ^ 3"},
		{"open paren one plus two close paren times four", "( 1 + 2 ) * 4"},
	}
	for _, c := range cases {
		if got := Apply(ModeMath, c.in); got != c.want {
			t.Errorf("Apply(math, %q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestApply_MathHomophones(t *testing.T) {
	t.Parallel()
	// Inside math mode "to" and "for" read as digits.
	if got := Apply(ModeMath, "one plus to"); got != "1 + 2" {
		t.Errorf("got %q, want %q", got, "1 + 2")
	}
	if got := Apply(ModeMath, "for times for"); got != "4 * 4" {
		t.Errorf("got %q, want %q", got, "4 * 4")
	}
}

func TestApply_MathUnknownWordsPassThrough(t *testing.T) {
	t.Parallel()
	if got := Apply(ModeMath, "velocity times mass"); got != "velocity * mass" {
		t.Errorf("got %q, want %q", got, "velocity * mass")
	}
}

func TestApply_MathStripsTranscriptPunctuation(t *testing.T) {
	t.Parallel()
	if got := Apply(ModeMath, "one plus, one."); got != "1 + 1" {
		t.Errorf("got %q, want %q", got, "1 + 1")
	}
}

func TestDisplayName_Covered(t *testing.T) {
	t.Parallel()
	modes := []Mode{ModeOff, ModeSnake, ModeCamel, ModePascal, ModeKebab, ModeScreaming, ModeCaps, ModeLower, ModeMath}
	for _, m := range modes {
		if m.DisplayName() == "" {
			t.Errorf("DisplayName(%s) is empty", m)
		}
	}
}
