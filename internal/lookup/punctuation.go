// Package lookup holds the data-driven tables of the interpretation engine:
// spoken punctuation names, emoji names, and the spelling alphabet. The
// tables deliberately include systematic transcription mistakes ("colin"
// for "colon", "carrot" for "caret") so that commands survive imperfect
// speech-to-text output.
//
// All lookups take already-normalized (lowercased, punctuation-stripped)
// input and are safe for concurrent use; the tables are read-only.
package lookup

// punctuation maps spoken symbol names, including common mishearings, to
// the literal text to type. Multi-word names are keyed space-joined.
var punctuation = map[string]string{
	// Basic punctuation.
	"period": ".", "dot": ".", "full stop": ".", "point": ".",
	"comma": ",", "coma": ",",
	"question": "?", "question mark": "?",
	"exclamation": "!", "exclamation mark": "!", "exclamation point": "!", "bang": "!",
	"colon": ":", "colin": ":", "cologne": ":",
	"semicolon": ";", "semi colon": ";", "semi colin": ";", "semicolin": ";",
	"ellipsis": "...", "ellipses": "...", "dot dot dot": "...",

	// Quotes.
	"quote": `"`, "double quote": `"`, "quotes": `"`, "quotation": `"`,
	"single quote": "'", "apostrophe": "'", "apostrophy": "'",
	"backtick": "`", "grave": "`", "back tick": "`", "back tic": "`", "backtic": "`",

	// Brackets.
	"open paren": "(", "left paren": "(", "open parenthesis": "(", "open parentheses": "(",
	"close paren": ")", "right paren": ")", "close parenthesis": ")", "close parentheses": ")",
	"open bracket": "[", "left bracket": "[", "open square": "[",
	"close bracket": "]", "right bracket": "]", "close square": "]",
	"open brace": "{", "left brace": "{", "open curly": "{", "open curley": "{",
	"close brace": "}", "right brace": "}", "close curly": "}", "close curley": "}",
	"less than": "<", "open angle": "<", "left angle": "<", "left chevron": "<",
	"greater than": ">", "close angle": ">", "right angle": ">", "right chevron": ">",

	// Math and symbols.
	"plus": "+", "positive": "+",
	"minus": "-", "dash": "-", "hyphen": "-", "negative": "-",
	"equals": "=", "equal": "=", "equal sign": "=", "equals sign": "=",
	"underscore": "_", "under score": "_", "underline": "_",
	"asterisk": "*", "star": "*", "asterix": "*", "astrix": "*", "asterisks": "*",
	"slash": "/", "forward slash": "/", "forwardslash": "/",
	"backslash": `\`, "back slash": `\`, "backward slash": `\`,
	"pipe": "|", "bar": "|", "vertical bar": "|", "vertical line": "|",
	"caret": "^", "carrot": "^", "karet": "^", "carret": "^", "hat": "^",
	"tilde": "~", "tilda": "~", "tildy": "~", "squiggle": "~",
	"percent": "%", "percentage": "%", "per cent": "%",
	"ampersand": "&", "and sign": "&", "and symbol": "&",
	"at": "@", "at sign": "@", "at symbol": "@",
	"hash": "#", "hashtag": "#", "pound": "#", "number sign": "#", "hash tag": "#", "octothorpe": "#",
	"dollar": "$", "dollar sign": "$", "dollars": "$",

	// Programming digraphs.
	"arrow": "=>", "fat arrow": "=>", "thick arrow": "=>", "rocket": "=>",
	"thin arrow": "->", "skinny arrow": "->", "dash arrow": "->", "hyphen arrow": "->",
	"double colon": "::", "scope": "::", "colon colon": "::", "colin colin": "::",
	"double equals": "==", "equals equals": "==", "equal equal": "==",
	"not equals": "!=", "not equal": "!=", "bang equals": "!=", "exclamation equals": "!=",
	"less than or equal": "<=", "less equal": "<=", "less or equal": "<=",
	"greater than or equal": ">=", "greater equal": ">=", "greater or equal": ">=",
	"plus equals": "+=", "plus equal": "+=",
	"minus equals": "-=", "minus equal": "-=", "dash equals": "-=",
	"and and": "&&", "double and": "&&", "ampersand ampersand": "&&",
	"or or": "||", "double or": "||", "pipe pipe": "||", "double pipe": "||",
}

// Punctuation resolves a spoken symbol name to its literal text. name may
// be a single word or a space-joined multi-word phrase.
func Punctuation(name string) (string, bool) {
	s, ok := punctuation[name]
	return s, ok
}
