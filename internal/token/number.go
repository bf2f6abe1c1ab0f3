package token

import "strconv"

// numberWords maps spelled-out numbers zero through twenty to their values.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
}

// numberHomophones are words the recognizer produces for spoken digits.
var numberHomophones = map[string]int{
	"to": 2, "too": 2, "for": 4,
}

// Number parses a normalized token as a number: a digit string or a number
// word zero through twenty.
func Number(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := numberWords[s]
	return n, ok
}

// NumberLoose is Number extended with homophone correction ("to" → 2,
// "for" → 4). Used where the surrounding grammar makes a number the only
// plausible reading, such as quantifiers and math mode.
func NumberLoose(s string) (int, bool) {
	if n, ok := Number(s); ok {
		return n, true
	}
	n, ok := numberHomophones[s]
	return n, ok
}
