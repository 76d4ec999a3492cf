//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"firstgame/internal/platform"
)

// moveStep is how far one arrow press moves the character.
const moveStep = 10.0

var commandKeys = []struct {
	key glfw.Key
	cmd platform.Command
}{
	{glfw.KeyS, platform.CmdStart},
	{glfw.KeyP, platform.CmdPause},
	{glfw.KeyR, platform.CmdResume},
	{glfw.KeyX, platform.CmdStop},
}

var moveKeys = []struct {
	key    glfw.Key
	dx, dy float64
}{
	{glfw.KeyLeft, -moveStep, 0},
	{glfw.KeyRight, moveStep, 0},
	{glfw.KeyUp, 0, -moveStep},
	{glfw.KeyDown, 0, moveStep},
}

type keyState interface {
	GetKey(key glfw.Key) glfw.Action
}

// Input edge-triggers keys so a held key fires once.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window keyState, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Apply routes this frame's key presses to the host.
func (in *Input) Apply(window keyState, host *platform.Host) {
	for _, k := range commandKeys {
		if in.JustPressed(window, k.key) {
			host.Handle(k.cmd)
		}
	}
	for _, k := range moveKeys {
		if in.JustPressed(window, k.key) {
			host.MoveCharacter(k.dx, k.dy)
		}
	}
	if in.JustPressed(window, glfw.KeyEnter) {
		host.SolvePuzzle()
	}
}
