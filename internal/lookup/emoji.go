package lookup

// emoji maps spoken emoji names to glyphs. Multi-word names are keyed
// space-joined.
var emoji = map[string]string{
	// Faces.
	"smile": "😊", "happy": "😊",
	"laugh": "😂", "lol": "😂", "laughing": "😂",
	"joy":  "🤣",
	"wink": "😉",
	"love": "😍", "heart eyes": "😍",
	"cool": "😎", "sunglasses": "😎",
	"think": "🤔", "thinking": "🤔", "hmm": "🤔",
	"cry": "😭", "sad": "😭", "crying": "😭",
	"angry": "😠", "mad": "😠",
	"skull": "💀", "dead": "💀",
	"eye roll": "🙄", "roll eyes": "🙄",
	"shush": "🤫", "quiet": "🤫",
	"mind blown": "🤯", "exploding head": "🤯",
	"clown": "🤡",
	"nerd":  "🤓",
	"sick":  "🤢", "ill": "🤢",
	"scream": "😱",

	// Gestures.
	"thumbs up": "👍", "thumb up": "👍", "yes": "👍",
	"thumbs down": "👎", "thumb down": "👎", "no": "👎",
	"clap": "👏", "clapping": "👏",
	"wave": "👋", "hi": "👋", "bye": "👋",
	"shrug":    "🤷",
	"facepalm": "🤦", "face palm": "🤦",
	"pray": "🙏", "please": "🙏", "thanks": "🙏",
	"muscle": "💪", "strong": "💪", "flex": "💪",
	"point up":    "☝️",
	"point right": "👉",
	"point left":  "👈",
	"point down":  "👇",
	"ok":          "👌", "okay": "👌",
	"peace": "✌️", "victory": "✌️",
	"rock": "🤘", "metal": "🤘",
	"middle finger": "🖕",

	// Hearts.
	"heart": "❤️", "red heart": "❤️",
	"blue heart":      "💙",
	"green heart":     "💚",
	"yellow heart":    "💛",
	"purple heart":    "💜",
	"black heart":     "🖤",
	"white heart":     "🤍",
	"orange heart":    "🧡",
	"broken heart":    "💔",
	"sparkling heart": "💖",
	"kiss":            "😘",

	// Animals.
	"dog": "🐕", "wag": "🐕",
	"cat":  "🐈",
	"crab": "🦀", "rust": "🦀",
	"snake": "🐍",
	"bug":   "🐛", "beetle": "🐛",
	"butterfly": "🦋",
	"unicorn":   "🦄",
	"dragon":    "🐉",
	"shark":     "🦈",
	"whale":     "🐋",
	"octopus":   "🐙",

	// Objects and symbols.
	"fire": "🔥", "lit": "🔥",
	"star": "⭐", "gold star": "⭐",
	"sparkles": "✨", "sparkle": "✨",
	"lightning": "⚡", "zap": "⚡",
	"poop": "💩", "shit": "💩",
	"100": "💯", "hundred": "💯",
	"check": "✅", "checkmark": "✅",
	"x": "❌", "cross": "❌",
	"warning":     "⚠️",
	"question":    "❓",
	"exclamation": "❗",
	"pin":         "📌", "pushpin": "📌",
	"bulb": "💡", "idea": "💡", "lightbulb": "💡",
	"gear": "⚙️", "settings": "⚙️",
	"rocket": "🚀",
	"trophy": "🏆",
	"medal":  "🏅",
	"crown":  "👑",
	"money":  "💰", "cash": "💰",
	"gem": "💎", "diamond": "💎",
	"gift": "🎁", "present": "🎁",
	"party": "🎉", "celebrate": "🎉",
	"balloon": "🎈",
	"beer":    "🍺", "cheers": "🍺",
	"coffee": "☕",
	"pizza":  "🍕",
	"taco":   "🌮",
}

// Emoji resolves a spoken emoji name to its glyph. name may be a single
// word or a space-joined multi-word phrase.
func Emoji(name string) (string, bool) {
	g, ok := emoji[name]
	return g, ok
}
