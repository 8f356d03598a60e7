package controls

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned for keys with no bound action
var ErrUnknownKey = errors.New("unknown key")

// Key identifies an input event
type Key string

const (
	KeyW     Key = "W"
	KeyS     Key = "S"
	KeyA     Key = "A"
	KeyD     Key = "D"
	KeyUp    Key = "UP"
	KeyDown  Key = "DOWN"
	KeyJ     Key = "J"
	KeyR     Key = "R"
	KeyG     Key = "G"
	KeyP     Key = "P"
	KeyPlus  Key = "+"
	KeyMinus Key = "-"
	KeyK     Key = "K"
)

// Step sizes applied by the movement keys
const (
	ZStep          float32 = 10
	PixelSizeStep  float32 = 0.5
	ResolutionStep float32 = 2
	GridStep       uint8   = 2
	DefaultSamples uint8   = 16
)

// Binding describes what a key does, for help output
type Binding struct {
	Key         Key
	Description string
}

// Bindings lists every key in display order
func Bindings() []Binding {
	return []Binding{
		{KeyW, "move view plane towards the scene (z -10)"},
		{KeyS, "move view plane away from the scene (z +10)"},
		{KeyA, "shrink pixel size by 0.5"},
		{KeyD, "grow pixel size by 0.5"},
		{KeyUp, "double resolution"},
		{KeyDown, "halve resolution"},
		{KeyJ, "jitter sampler, 16 samples"},
		{KeyR, "random sampler, 16 samples"},
		{KeyG, "regular sampler, 16 samples"},
		{KeyP, "simple sampler, 1 sample"},
		{KeyPlus, "grow sample grid by 2 per axis"},
		{KeyMinus, "shrink sample grid by 2 per axis"},
		{KeyK, "set sample count to 1"},
	}
}

// ParseKey normalizes user input such as "w", "up" or "+" into a Key.
// A blank but non-empty string is read as "+", which is what a literal plus
// becomes after URL query decoding.
func ParseKey(s string) (Key, error) {
	if s != "" && strings.TrimSpace(s) == "" {
		return KeyPlus, nil
	}
	k := Key(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case "PLUS", "=":
		k = KeyPlus
	case "MINUS", "_":
		k = KeyMinus
	}
	for _, b := range Bindings() {
		if b.Key == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// ParseKeys splits a comma separated key list, e.g. "W,W,D". In URLs use
// PLUS or %2B for the plus key.
func ParseKeys(s string) ([]Key, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	keys := make([]Key, 0, len(parts))
	for _, p := range parts {
		k, err := ParseKey(p)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
