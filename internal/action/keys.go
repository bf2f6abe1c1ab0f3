package action

// Key identifies a physical key for press, chord, hold and release actions.
// Single letters and digits are their own identifiers ("a", "7"); named keys
// use the constants below.
type Key string

const (
	KeyShift     Key = "shift"
	KeyControl   Key = "control"
	KeyAlt       Key = "alt"
	KeyMeta      Key = "meta"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyEscape    Key = "escape"
	KeyBackspace Key = "backspace"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPageUp    Key = "page-up"
	KeyPageDown  Key = "page-down"

	KeyMediaPlayPause Key = "media-play-pause"
	KeyMediaNext      Key = "media-next"
	KeyMediaPrev      Key = "media-prev"
	KeyVolumeUp       Key = "volume-up"
	KeyVolumeDown     Key = "volume-down"
	KeyVolumeMute     Key = "volume-mute"
)

// namedKeys maps spoken key names to Key identifiers for hold/release
// targets. Letters and digits are handled separately in ParseKey.
var namedKeys = map[string]Key{
	"shift":      KeyShift,
	"control":    KeyControl,
	"ctrl":       KeyControl,
	"alt":        KeyAlt,
	"meta":       KeyMeta,
	"super":      KeyMeta,
	"windows":    KeyMeta,
	"win":        KeyMeta,
	"up":         KeyUp,
	"arrow up":   KeyUp,
	"down":       KeyDown,
	"arrow down": KeyDown,
	"left":       KeyLeft,
	"arrow left": KeyLeft,
	"right":      KeyRight,
	"arrow right": KeyRight,
	"space":     KeySpace,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"backspace": KeyBackspace,
}

// ParseKey resolves a spoken key name to a Key. It accepts single letters
// and digits ("w", "3"), modifier names, arrows, and the common named keys.
// The second return value is false for unmapped names.
func ParseKey(name string) (Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			return Key(name), true
		}
	}
	return "", false
}
