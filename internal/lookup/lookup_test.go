package lookup

import "testing"

func TestPunctuation_CommonNames(t *testing.T) {
	t.Parallel()
	cases := []struct{ name, want string }{
		{"period", "."},
		{"comma", ","},
		{"open paren", "("},
		{"close bracket", "]"},
		{"underscore", "_"},
		{"arrow", "=>"},
		{"thin arrow", "->"},
		{"double colon", "::"},
		{"ellipsis", "..."},
	}
	for _, c := range cases {
		got, ok := Punctuation(c.name)
		if !ok || got != c.want {
			t.Errorf("Punctuation(%q) = (%q, %v), want (%q, true)", c.name, got, ok, c.want)
		}
	}
}

func TestPunctuation_Mishearings(t *testing.T) {
	t.Parallel()
	cases := []struct{ name, want string }{
		{"carrot", "^"},
		{"colin", ":"},
		{"coma", ","},
		{"asterix", "*"},
		{"tilda", "~"},
		{"apostrophy", "'"},
	}
	for _, c := range cases {
		got, ok := Punctuation(c.name)
		if !ok || got != c.want {
			t.Errorf("Punctuation(%q) = (%q, %v), want (%q, true)", c.name, got, ok, c.want)
		}
	}
}

func TestPunctuation_Unknown(t *testing.T) {
	t.Parallel()
	if _, ok := Punctuation("frobnicator"); ok {
		t.Error("Punctuation(frobnicator) = ok, want false")
	}
}

func TestEmoji_CommonNames(t *testing.T) {
	t.Parallel()
	cases := []string{"shrug", "thumbs up", "fire", "heart"}
	for _, name := range cases {
		got, ok := Emoji(name)
		if !ok || got == "" {
			t.Errorf("Emoji(%q) = (%q, %v), want a glyph", name, got, ok)
		}
	}
	if _, ok := Emoji("nonexistent emoji"); ok {
		t.Error("Emoji(nonexistent) = ok, want false")
	}
}

func TestSpellChar_NATO(t *testing.T) {
	t.Parallel()
	cases := []struct {
		word string
		want rune
	}{
		{"alpha", 'a'},
		{"alfa", 'a'},
		{"bravo", 'b'},
		{"charlie", 'c'},
		{"xray", 'x'},
		{"x-ray", 'x'},
		{"zulu", 'z'},
	}
	for _, c := range cases {
		got, ok := SpellChar(c.word)
		if !ok || got != c.want {
			t.Errorf("SpellChar(%q) = (%q, %v), want (%q, true)", c.word, got, ok, c.want)
		}
	}
}

func TestSpellChar_NumbersAndRawChars(t *testing.T) {
	t.Parallel()
	cases := []struct {
		word string
		want rune
	}{
		{"zero", '0'},
		{"nine", '9'},
		{"a", 'a'},
		{"7", '7'},
		{"dot", '.'},
		{"at", '@'},
		{"underscore", '_'},
		{"space", ' '},
	}
	for _, c := range cases {
		got, ok := SpellChar(c.word)
		if !ok || got != c.want {
			t.Errorf("SpellChar(%q) = (%q, %v), want (%q, true)", c.word, got, ok, c.want)
		}
	}
}

func TestSpellChar_NoNumberHomophones(t *testing.T) {
	t.Parallel()
	// "for" while spelling is a literal word, not the digit 4.
	if got, ok := SpellChar("for"); ok {
		t.Errorf("SpellChar(for) = (%q, true), want miss", got)
	}
	if got, ok := SpellChar("to"); ok {
		t.Errorf("SpellChar(to) = (%q, true), want miss", got)
	}
}

func TestSpellChar_Unknown(t *testing.T) {
	t.Parallel()
	for _, w := range []string{"banana", "Q!", ""} {
		if _, ok := SpellChar(w); ok {
			t.Errorf("SpellChar(%q) = ok, want false", w)
		}
	}
}
