package action

import "testing"

func TestString_Renderings(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   Action
		want string
	}{
		{KeyPress(KeyEnter), "press(enter)"},
		{Chord(KeyControl, "a"), "chord(control+a)"},
		{TypeText("hi"), `type("hi")`},
		{SelectExtend(DirWordLeft, 3), "select(word-left x3)"},
		{HoldKey(KeyShift), "hold(shift)"},
		{ReleaseKey(KeyShift), "release(shift)"},
		{ReleaseAll(), "release-all"},
		{ShellExec("ls -l"), "shell(ls -l)"},
		{ModeChange("snake"), "mode(snake)"},
		{RepeatLast(2), "repeat-last(x2)"},
		{ShowHelp(), "show-help"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"shift", KeyShift, true},
		{"ctrl", KeyControl, true},
		{"super", KeyMeta, true},
		{"arrow up", KeyUp, true},
		{"esc", KeyEscape, true},
		{"w", "w", true},
		{"7", "7", true},
		{"W", "", false},
		{"frob", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseKey(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseKey(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
