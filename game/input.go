package game

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// namedKeys covers the names used by the default bindings that ebiten's own
// key names spell differently. Number pad variants share the main keys.
var namedKeys = map[string][]ebiten.Key{
	"0":          {ebiten.KeyDigit0, ebiten.KeyNumpad0},
	".":          {ebiten.KeyPeriod, ebiten.KeyNumpadDecimal},
	"/":          {ebiten.KeySlash, ebiten.KeyNumpadDivide},
	";":          {ebiten.KeySemicolon},
	",":          {ebiten.KeyComma},
	"'":          {ebiten.KeyQuote},
	"-":          {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
	" ":          {ebiten.KeySpace},
	"ArrowLeft":  {ebiten.KeyArrowLeft},
	"ArrowRight": {ebiten.KeyArrowRight},
	"ArrowUp":    {ebiten.KeyArrowUp},
	"ArrowDown":  {ebiten.KeyArrowDown},
}

// lookupKeys resolves a binding name to ebiten keys.
func lookupKeys(name string) []ebiten.Key {
	if keys, ok := namedKeys[name]; ok {
		return keys
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return []ebiten.Key{ebiten.KeyA + ebiten.Key(c-'a')}
		case c >= 'A' && c <= 'Z':
			return []ebiten.Key{ebiten.KeyA + ebiten.Key(c-'A')}
		case c >= '1' && c <= '9':
			return []ebiten.Key{ebiten.KeyDigit0 + ebiten.Key(c-'0'), ebiten.KeyNumpad0 + ebiten.Key(c-'0')}
		}
	}
	// ebiten names such as "Enter" or "ShiftLeft"
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err == nil {
		return []ebiten.Key{k}
	}
	return nil
}

// Keyboard implements sim.Keys on top of ebiten's key state.
type Keyboard struct {
	keys     map[string][]ebiten.Key
	released map[string]bool
}

// NewKeyboard resolves every bound name once. Unknown names never report pressed.
func NewKeyboard(names ...string) *Keyboard {
	kb := &Keyboard{
		keys:     make(map[string][]ebiten.Key, len(names)),
		released: make(map[string]bool),
	}
	for _, name := range names {
		kb.keys[name] = lookupKeys(name)
	}
	return kb
}

// Update clears forced releases for keys pressed again this tick.
func (kb *Keyboard) Update() {
	for name, keys := range kb.keys {
		if !kb.released[name] {
			continue
		}
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				kb.released[name] = false
				break
			}
		}
	}
}

// Pressed reports whether any key bound to name is held.
func (kb *Keyboard) Pressed(name string) bool {
	if kb.released[name] {
		return false
	}
	for _, k := range kb.keys[name] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Release treats name as up until it is pressed again.
func (kb *Keyboard) Release(name string) {
	kb.released[name] = true
}

// Reset forgets forced releases, e.g. between matches.
func (kb *Keyboard) Reset() {
	for name := range kb.released {
		delete(kb.released, name)
	}
}
