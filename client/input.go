package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spaceshooter/game"
)

// binding maps a physical key to the logical actions it produces
type binding struct {
	key     ebiten.Key
	actions []game.Action
}

var keyBindings = []binding{
	{ebiten.KeyW, []game.Action{game.ActionMoveUp, game.ActionMenuUp}},
	{ebiten.KeyArrowUp, []game.Action{game.ActionMoveUp, game.ActionMenuUp}},
	{ebiten.KeyS, []game.Action{game.ActionMoveDown, game.ActionMenuDown}},
	{ebiten.KeyArrowDown, []game.Action{game.ActionMoveDown, game.ActionMenuDown}},
	{ebiten.KeyA, []game.Action{game.ActionMoveLeft}},
	{ebiten.KeyArrowLeft, []game.Action{game.ActionMoveLeft}},
	{ebiten.KeyD, []game.Action{game.ActionMoveRight}},
	{ebiten.KeyArrowRight, []game.Action{game.ActionMoveRight}},
	{ebiten.KeyEnter, []game.Action{game.ActionConfirm}},
	{ebiten.KeyNumpadEnter, []game.Action{game.ActionConfirm}},
	{ebiten.KeyR, []game.Action{game.ActionRestart}},
	{ebiten.KeyEscape, []game.Action{game.ActionQuit}},
}

// KeyboardMouse turns ebiten device state into logical input events.
// It knows nothing about game modes; the game ignores what it does not need.
type KeyboardMouse struct {
	events []game.Event
}

// NewKeyboardMouse creates a new device adapter
func NewKeyboardMouse() *KeyboardMouse {
	return &KeyboardMouse{
		events: make([]game.Event, 0, 16),
	}
}

// Poll returns the events produced since the previous frame. The returned
// slice is reused by the next call.
func (k *KeyboardMouse) Poll() []game.Event {
	k.events = k.events[:0]

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			for _, a := range b.actions {
				k.events = append(k.events, game.KeyDown(a))
			}
		}
		if inpututil.IsKeyJustReleased(b.key) {
			for _, a := range b.actions {
				k.events = append(k.events, game.KeyUp(a))
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	k.events = append(k.events, game.PointerMoved(x, y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		k.events = append(k.events, game.FireRequested(x, y))
	}

	return k.events
}
