// Package platform ties the game session, the renderer and audio to the
// desktop and Android front-ends.
package platform

import (
	"log/slog"

	"firstgame/internal/audio"
	"firstgame/internal/config"
	"firstgame/internal/game"
	"firstgame/internal/logsink"
)

// Command is a player request routed to the session.
type Command int

const (
	CmdStart Command = iota
	CmdPause
	CmdResume
	CmdStop
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdStop:
		return "stop"
	}
	return "unknown"
}

func (c Command) op() (game.Op, bool) {
	switch c {
	case CmdStart:
		return game.OpStart, true
	case CmdPause:
		return game.OpPause, true
	case CmdResume:
		return game.OpResume, true
	case CmdStop:
		return game.OpStop, true
	}
	return 0, false
}

// FrameRenderer is satisfied by *render.Renderer.
type FrameRenderer interface {
	Init() error
	Resize(width, height int)
	Render()
	Release()
}

// CuePlayer is satisfied by *audio.System.
type CuePlayer interface {
	Play(c audio.Cue)
}

// Host is the narrow surface a front-end drives. It is not safe for
// concurrent use; call it from the thread that owns the GL context.
type Host struct {
	session   *game.Session
	bus       *game.EventBus
	character *game.Character
	puzzle    *game.Puzzle
	renderer  FrameRenderer
	sound     CuePlayer
	log       *slog.Logger

	width, height int
}

// NewHost builds a stopped session. sound may be nil.
func NewHost(cfg config.Game, sound CuePlayer) *Host {
	bus := game.NewEventBus()
	h := &Host{
		session:   game.NewSession(cfg, bus),
		bus:       bus,
		character: game.NewCharacter(),
		puzzle:    game.NewPuzzle(),
		sound:     sound,
		log:       logsink.For(logsink.TagPlatform),
	}
	bus.Subscribe(game.EventStateChanged, func(e game.Event) {
		switch e.Op {
		case game.OpInit, game.OpStart:
			h.play(audio.CueStart)
		case game.OpPause:
			h.play(audio.CuePause)
		case game.OpResume:
			h.play(audio.CueResume)
		case game.OpStop:
			h.play(audio.CueStop)
		}
	})
	bus.Subscribe(game.EventPlayerWrapped, func(game.Event) {
		h.play(audio.CueWrap)
	})
	return h
}

func (h *Host) play(c audio.Cue) {
	if h.sound != nil {
		h.sound.Play(c)
	}
}

// InitGame places the player and starts the session.
func (h *Host) InitGame() { h.session.Init() }

// Tick advances the session by one update.
func (h *Host) Tick() { h.session.Update() }

// Handle applies a player command and reports whether the state changed.
func (h *Host) Handle(c Command) bool {
	op, ok := c.op()
	if !ok {
		h.log.Warn("unknown command", "command", int(c))
		return false
	}
	return h.session.Apply(op)
}

func (h *Host) MoveCharacter(dx, dy float64) { h.character.Move(dx, dy) }

func (h *Host) SolvePuzzle() { h.puzzle.Solve() }

func (h *Host) Snapshot() game.Snapshot { return h.session.Snapshot() }

func (h *Host) Character() game.Character { return *h.character }

func (h *Host) PuzzleSolved() bool { return h.puzzle.Solved() }

// AttachRenderer initializes r for the current surface. The renderer is kept
// even when Init fails so frames are still cleared and presented.
func (h *Host) AttachRenderer(r FrameRenderer) error {
	h.DetachRenderer()
	h.renderer = r
	err := r.Init()
	if err != nil {
		h.log.Error("renderer init failed", "err", err)
	}
	if h.width > 0 && h.height > 0 {
		r.Resize(h.width, h.height)
	}
	return err
}

// DetachRenderer releases the current renderer, if any.
func (h *Host) DetachRenderer() {
	if h.renderer == nil {
		return
	}
	h.renderer.Release()
	h.renderer = nil
}

// Resize records the drawable size in pixels.
func (h *Host) Resize(width, height int) {
	h.width, h.height = width, height
	if h.renderer != nil {
		h.renderer.Resize(width, height)
	}
}

// Frame draws one frame when a renderer is attached.
func (h *Host) Frame() {
	if h.renderer != nil {
		h.renderer.Render()
	}
}

// Shutdown stops the session and releases the renderer.
func (h *Host) Shutdown() {
	h.session.Stop()
	h.DetachRenderer()
}

// CommandForTouch maps a touch at x on a surface width pixels wide onto one
// of four equal columns: start, pause, resume, stop.
func CommandForTouch(x float32, width int) (Command, bool) {
	if width <= 0 || x < 0 || x >= float32(width) {
		return 0, false
	}
	col := int(x * 4 / float32(width))
	if col > 3 {
		col = 3
	}
	return Command(col), true
}
