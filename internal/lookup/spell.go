package lookup

// nato maps the NATO phonetic alphabet (plus common spelling variants) to
// letters.
var nato = map[string]rune{
	"alpha": 'a', "alfa": 'a',
	"bravo":   'b',
	"charlie": 'c',
	"delta":   'd',
	"echo":    'e',
	"foxtrot": 'f',
	"golf":    'g',
	"hotel":   'h',
	"india":   'i',
	"juliet":  'j', "juliett": 'j',
	"kilo":     'k',
	"lima":     'l',
	"mike":     'm',
	"november": 'n',
	"oscar":    'o',
	"papa":     'p',
	"quebec":   'q',
	"romeo":    'r',
	"sierra":   's',
	"tango":    't',
	"uniform":  'u',
	"victor":   'v',
	"whiskey":  'w',
	"xray":     'x', "x-ray": 'x',
	"yankee": 'y',
	"zulu":   'z',
}

// spellNumbers maps number words to digits for spelling. Homophones are
// deliberately absent here: when spelling, "for" is more likely a literal
// word the user gave up on than the digit 4.
var spellNumbers = map[string]rune{
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
}

// spellPunct maps punctuation names usable while spelling (emails, URLs,
// identifiers) to single characters, mishearing variants included.
var spellPunct = map[string]rune{
	"space":  ' ',
	"period": '.', "dot": '.', "point": '.',
	"comma": ',', "coma": ',',
	"at":   '@',
	"dash": '-', "hyphen": '-', "minus": '-',
	"underscore": '_', "underline": '_',
	"slash": '/',
	"colon": ':', "colin": ':', "cologne": ':',
	"semicolon": ';',
	"hash":      '#', "pound": '#', "hashtag": '#', "octothorpe": '#',
	"dollar": '$', "dollars": '$',
	"percent": '%', "percentage": '%',
	"ampersand": '&', "and": '&',
	"asterisk": '*', "star": '*', "asterix": '*', "astrix": '*',
	"plus": '+', "positive": '+',
	"equals": '=', "equal": '=',
	"question":    '?',
	"exclamation": '!', "bang": '!',
	"tilde": '~', "tilda": '~', "tildy": '~', "squiggle": '~',
	"caret": '^', "carrot": '^', "karet": '^', "carret": '^', "hat": '^',
	"pipe": '|', "bar": '|', "vertical": '|',
	"backslash": '\\',
}

// SpellChar resolves one spelling token to a single character. Resolution
// order: NATO phonetic word, number word, punctuation name, then a raw
// single letter or digit. Unknown tokens return false.
func SpellChar(word string) (rune, bool) {
	if c, ok := nato[word]; ok {
		return c, true
	}
	if c, ok := spellNumbers[word]; ok {
		return c, true
	}
	if c, ok := spellPunct[word]; ok {
		return c, true
	}
	if len(word) == 1 {
		c := rune(word[0])
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			return c, true
		}
	}
	return 0, false
}
