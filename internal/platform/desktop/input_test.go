//go:build !android

package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"firstgame/internal/config"
	"firstgame/internal/game"
	"firstgame/internal/platform"
)

type fakeKeys map[glfw.Key]bool

func (k fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if k[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestJustPressedEdgeTriggers(t *testing.T) {
	in := NewInput()
	keys := fakeKeys{}

	assert.False(t, in.JustPressed(keys, glfw.KeyS))
	keys[glfw.KeyS] = true
	assert.True(t, in.JustPressed(keys, glfw.KeyS))
	assert.False(t, in.JustPressed(keys, glfw.KeyS), "held key fires once")
	keys[glfw.KeyS] = false
	assert.False(t, in.JustPressed(keys, glfw.KeyS))
	keys[glfw.KeyS] = true
	assert.True(t, in.JustPressed(keys, glfw.KeyS))
}

func TestApplyRoutesKeys(t *testing.T) {
	host := platform.NewHost(config.Default().Game, nil)
	in := NewInput()
	keys := fakeKeys{}

	keys[glfw.KeyS] = true
	in.Apply(keys, host)
	assert.Equal(t, game.StateRunning, host.Snapshot().State)

	keys[glfw.KeyS] = false
	keys[glfw.KeyP] = true
	in.Apply(keys, host)
	assert.Equal(t, game.StatePaused, host.Snapshot().State)

	keys[glfw.KeyP] = false
	keys[glfw.KeyR] = true
	in.Apply(keys, host)
	assert.Equal(t, game.StateRunning, host.Snapshot().State)

	keys[glfw.KeyR] = false
	keys[glfw.KeyX] = true
	keys[glfw.KeyRight] = true
	keys[glfw.KeyDown] = true
	keys[glfw.KeyEnter] = true
	in.Apply(keys, host)
	assert.Equal(t, game.StateStopped, host.Snapshot().State)
	assert.Equal(t, game.Character{X: moveStep, Y: moveStep}, host.Character())
	assert.True(t, host.PuzzleSolved())

	in.Apply(keys, host)
	assert.Equal(t, game.Character{X: moveStep, Y: moveStep}, host.Character())
}
