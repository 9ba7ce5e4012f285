package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/actor"
)

// Keyboard answers actor.Controls from the live ebiten key state.
type Keyboard struct {
	bindings map[actor.Action][]ebiten.Key
}

// NewKeyboard resolves key names ("ArrowLeft", "Space", "A") per action.
func NewKeyboard(names map[actor.Action][]string) (*Keyboard, error) {
	kb := &Keyboard{bindings: make(map[actor.Action][]ebiten.Key, len(names))}
	for action, keys := range names {
		for _, name := range keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("input: %s: unknown key %q: %w", action, name, err)
			}
			kb.bindings[action] = append(kb.bindings[action], k)
		}
	}
	return kb, nil
}

func (kb *Keyboard) KeyDown(a actor.Action) bool {
	for _, k := range kb.bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (kb *Keyboard) KeyPressed(a actor.Action) bool {
	for _, k := range kb.bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// FixedClock reports one fixed ebiten tick as the elapsed time.
type FixedClock struct{}

func (FixedClock) ElapsedTime() float64 {
	return 1.0 / float64(ebiten.TPS())
}
